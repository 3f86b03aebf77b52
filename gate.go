package qgate

import "fmt"

// Gate is one of the five generator symbols.
type Gate byte

const (
	H Gate = 'H'
	X Gate = 'X'
	Y Gate = 'Y'
	Z Gate = 'Z'
	S Gate = 'S'
)

// NumGenerators is the width of a transition table row.
const NumGenerators = 5

// Generators lists the gates in transition table column order.
var Generators = [NumGenerators]Gate{H, X, Y, Z, S}

// Index returns the gate's column in a transition table row.
func (g Gate) Index() int {
	switch g {
	case H:
		return 0
	case X:
		return 1
	case Y:
		return 2
	case Z:
		return 3
	case S:
		return 4
	}
	invariant(ErrInvalidGate, "%q", byte(g))
	return -1
}

func (g Gate) Valid() bool {
	switch g {
	case H, X, Y, Z, S:
		return true
	}
	return false
}

func (g Gate) String() string {
	return string(rune(g))
}

// ParseGate validates a raw symbol byte.
func ParseGate(b byte) (Gate, error) {
	if g := Gate(b); g.Valid() {
		return g, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidGate, b)
}

// Sequence is an ordered list of generators. The core never mutates one.
type Sequence []Gate

// ParseSequence validates every symbol of s.
func ParseSequence(s string) (Sequence, error) {
	seq := make(Sequence, len(s))
	for i := 0; i < len(s); i++ {
		g, err := ParseGate(s[i])
		if err != nil {
			return nil, fmt.Errorf("position %d: %w", i, err)
		}
		seq[i] = g
	}
	return seq, nil
}

// MustParseSequence is ParseSequence for literals; it panics on error.
func MustParseSequence(s string) Sequence {
	seq, err := ParseSequence(s)
	if err != nil {
		panic(err)
	}
	return seq
}

// Validate returns the first invalid symbol, if any.
func (seq Sequence) Validate() error {
	for i, g := range seq {
		if !g.Valid() {
			return fmt.Errorf("position %d: %w: %q", i, ErrInvalidGate, byte(g))
		}
	}
	return nil
}

func (seq Sequence) String() string {
	b := make([]byte, len(seq))
	for i, g := range seq {
		b[i] = byte(g)
	}
	return string(b)
}
