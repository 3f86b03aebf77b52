package qgate

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/theapemachine/errnie"
	"golang.org/x/sync/errgroup"
)

// ErrNoChunks is returned when Reduce is given nothing to do.
var ErrNoChunks = errors.New("no chunks to reduce")

/*
Q is a scatter/gather pool: every call to Reduce starts a fixed set of
workers, hands each chunk of the sequence to one of them, and joins them all
before returning the per-chunk matrices in chunk order.
*/
type Q struct {
	ctx     context.Context
	workers int
	verbose bool
}

// NewQ creates a pool that runs up to workers goroutines per Reduce.
func NewQ(ctx context.Context, workers int) *Q {
	return &Q{
		ctx:     ctx,
		workers: workers,
	}
}

// Reduce computes one GateMatrix per chunk in parallel. The result slice is
// indexed by Chunk.Index. A panic in any worker is raised again here, after
// the join.
func (q *Q) Reduce(seq Sequence, chunks []Chunk) ([]ChunkResult, error) {
	if len(chunks) == 0 {
		return nil, ErrNoChunks
	}
	if err := q.ctx.Err(); err != nil {
		return nil, fmt.Errorf("reduce not started: %w", err)
	}

	workerCount := min(q.workers, len(chunks))
	if workerCount < 1 {
		workerCount = 1
	}

	results := make([]ChunkResult, len(chunks))
	jobs := make(chan Job, len(chunks))

	now := time.Now()
	for _, chunk := range chunks {
		jobs <- Job{
			ID:       fmt.Sprintf("chunk-%d", chunk.Index),
			Chunk:    chunk,
			Symbols:  seq[chunk.Start:chunk.End],
			QueuedAt: now,
		}
	}
	close(jobs)

	if q.verbose {
		errnie.Info("Reduce - %d symbols, %d chunks, %d workers", len(seq), len(chunks), workerCount)
	}

	g, ctx := errgroup.WithContext(q.ctx)
	for i := 0; i < workerCount; i++ {
		worker := &Worker{
			id:      i,
			jobs:    jobs,
			results: results,
			verbose: q.verbose,
		}
		g.Go(func() error {
			return worker.run(ctx)
		})
	}

	if err := g.Wait(); err != nil {
		var panicErr *PanicError
		if errors.As(err, &panicErr) {
			panic(panicErr.Value)
		}
		return nil, fmt.Errorf("reduce interrupted: %w", err)
	}

	return results, nil
}
