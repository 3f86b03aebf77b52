package qgate

import (
	"context"
	"time"

	"github.com/theapemachine/errnie"
)

/*
Composer is the parallel evaluator. Generator application is composition of
linear maps, which is associative, so the sequence can be cut into
contiguous chunks, each chunk reduced to its own GateMatrix on a separate
worker, and the chunk matrices folded back together in sequence order.

Only the reduction runs in parallel. The fold is sequential but touches one
small matrix per chunk, so its cost does not depend on the sequence length.
*/
type Composer struct {
	config  *Config
	metrics *Metrics
}

// ComposerOption is a function type for configuring a composer.
type ComposerOption func(*Composer)

// NewComposer creates a composer; a nil config uses NewConfig. The config is
// copied, so options never change the caller's value.
func NewComposer(config *Config, opts ...ComposerOption) *Composer {
	if config == nil {
		config = NewConfig()
	}
	cfg := *config

	c := &Composer{
		config:  &cfg,
		metrics: NewMetrics(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithWorkers sets the number of chunks a sequence is split into.
func WithWorkers(n int) ComposerOption {
	return func(c *Composer) {
		c.config.Workers = n
	}
}

// WithMinChunkSize sets the smallest chunk a worker is handed.
func WithMinChunkSize(n int) ComposerOption {
	return func(c *Composer) {
		c.config.MinChunkSize = n
	}
}

// WithMetrics shares a metrics collector between composers.
func WithMetrics(m *Metrics) ComposerOption {
	return func(c *Composer) {
		if m != nil {
			c.metrics = m
		}
	}
}

// WithFold selects how chunk matrices are combined.
func WithFold(mode FoldMode) ComposerOption {
	return func(c *Composer) {
		c.config.Fold = mode
	}
}

// WithVerbose turns on pool and fold logging.
func WithVerbose(verbose bool) ComposerOption {
	return func(c *Composer) {
		c.config.Verbose = verbose
	}
}

func (c *Composer) Metrics() *Metrics {
	return c.metrics
}

// Compose evaluates seq starting from |0⟩. The only error is cancellation
// of ctx; an invalid generator panics, as it does in Simulate.
func (c *Composer) Compose(ctx context.Context, seq Sequence) (Amplitudes, error) {
	chunks := Partition(len(seq), c.config.Workers, c.config.MinChunkSize)
	if len(chunks) == 0 {
		return Ground(), nil
	}

	q := NewQ(ctx, len(chunks))
	q.verbose = c.config.Verbose

	results, err := q.Reduce(seq, chunks)
	if err != nil {
		return Amplitudes{}, err
	}

	foldStart := time.Now()
	var amplitudes Amplitudes
	switch c.config.Fold {
	case FoldFloating:
		amplitudes = FoldFloatingResults(results)
	default:
		amplitudes = FoldExactResults(results).ApplyTo(Ground())
	}
	foldTime := time.Since(foldStart)

	c.metrics.recordComposition(results, len(chunks), foldTime)

	if c.config.Verbose {
		errnie.Info("Compose - %s fold of %d chunks, metrics %v", c.config.Fold, len(chunks), c.metrics.ExportMetrics())
	}

	return amplitudes, nil
}

// FoldExactResults multiplies chunk matrices in chunk order, later chunks on
// the left.
func FoldExactResults(results []ChunkResult) GateMatrix {
	m := Identity()
	for _, r := range results {
		m = m.Then(r.Matrix)
	}
	return m
}

// FoldFloatingResults applies chunk matrices in chunk order to |0⟩ in
// floating point.
func FoldFloatingResults(results []ChunkResult) Amplitudes {
	a := Ground()
	for _, r := range results {
		a = r.Matrix.ApplyTo(a)
	}
	return a
}

// Compose is a convenience wrapper running a one-off Composer.
func Compose(ctx context.Context, seq Sequence, workers int) (Amplitudes, error) {
	return NewComposer(nil, WithWorkers(workers)).Compose(ctx, seq)
}
