package qgate

import "time"

// Job is one chunk of work handed to a Worker.
type Job struct {
	ID       string
	Chunk    Chunk
	Symbols  Sequence
	QueuedAt time.Time
}

// ChunkResult is what a worker leaves in its chunk's slot.
type ChunkResult struct {
	Matrix  GateMatrix
	Symbols int
	Wait    time.Duration
	Elapsed time.Duration
}
