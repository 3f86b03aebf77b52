package qgate

import "runtime"

// FoldMode selects how chunk matrices are combined after the join.
type FoldMode int

const (
	// FoldExact multiplies the chunk matrices exactly and converts the
	// product to floating point once. Results equal Simulate bit for bit.
	FoldExact FoldMode = iota
	// FoldFloating applies each chunk matrix in turn to a floating
	// amplitude pair. Results agree with Simulate to within rounding.
	FoldFloating
)

func (f FoldMode) String() string {
	switch f {
	case FoldExact:
		return "exact"
	case FoldFloating:
		return "floating"
	}
	return "unknown"
}

type Config struct {
	// Workers is the number of chunks to split a sequence into. Zero or
	// less composes nothing and yields |0⟩.
	Workers int
	// MinChunkSize caps the effective worker count at len(seq)/MinChunkSize.
	MinChunkSize int
	Fold         FoldMode
	Verbose      bool
}

func NewConfig() *Config {
	return &Config{
		Workers:      runtime.GOMAXPROCS(0),
		MinChunkSize: 1,
		Fold:         FoldExact,
	}
}
