package qgate

import (
	"context"
	"time"

	"github.com/theapemachine/errnie"
)

/*
Worker reduces chunks to GateMatrix values. Each worker owns nothing but its
identity: it reads disjoint read-only slices of the sequence and writes each
result into the slot reserved for that chunk, so workers never touch the same
memory and need no locks.
*/
type Worker struct {
	id      int
	jobs    <-chan Job
	results []ChunkResult
	verbose bool
}

func (w *Worker) run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case job, ok := <-w.jobs:
			if !ok {
				return nil
			}
			if err := w.processJob(job); err != nil {
				return err
			}
		}
	}
}

// processJob turns a panic inside the exact core into a PanicError so it can
// cross the join and be raised again on the caller's goroutine.
func (w *Worker) processJob(job Job) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &PanicError{JobID: job.ID, WorkerID: w.id, Value: r}
		}
	}()

	startTime := time.Now()
	matrix := MatrixOf(job.Symbols)

	w.results[job.Chunk.Index] = ChunkResult{
		Matrix:  matrix,
		Symbols: len(job.Symbols),
		Wait:    startTime.Sub(job.QueuedAt),
		Elapsed: time.Since(startTime),
	}

	if w.verbose {
		errnie.Info("Worker %d - %s reduced %d symbols", w.id, job.ID, len(job.Symbols))
	}
	return nil
}
