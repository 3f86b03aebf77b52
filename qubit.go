package qgate

import (
	"cmp"
	"fmt"
	"math"
)

/*
Qubit is an exact single-qubit state (Alpha|0⟩ + Beta|1⟩). The same pair is
used as one column of a GateMatrix, where it is the image of a basis state.
*/
type Qubit struct {
	Alpha Complex // |0⟩ amplitude
	Beta  Complex // |1⟩ amplitude
}

// Basis0 returns |0⟩.
func Basis0() Qubit {
	return Qubit{ComplexOne, ComplexZero}
}

// Basis1 returns |1⟩.
func Basis1() Qubit {
	return Qubit{ComplexZero, ComplexOne}
}

// Apply returns the state after one generator.
func (q Qubit) Apply(g Gate) Qubit {
	if g == H {
		return q.ApplyHadamard()
	}
	return q.applyMonomial(g)
}

// Evolve applies seq in order.
func (q Qubit) Evolve(seq Sequence) Qubit {
	for _, g := range seq {
		q = q.Apply(g)
	}
	return q
}

func (q Qubit) ApplyHadamard() Qubit {
	// H = 1/√2 * [1  1]
	//           [1 -1]
	return Qubit{
		Alpha: q.Alpha.AddDivSqrt2(q.Beta),
		Beta:  q.Alpha.AddDivSqrt2(q.Beta.Neg()),
	}
}

// applyFused is Apply with H taken from the fused combine table.
func (q Qubit) applyFused(g Gate) Qubit {
	if g == H {
		return Qubit{
			Alpha: q.Alpha.addDivSqrt2Fused(q.Beta),
			Beta:  q.Alpha.addDivSqrt2Fused(q.Beta.Neg()),
		}
	}
	return q.applyMonomial(g)
}

// applyMonomial handles X, Y, Z and S, which only permute and rephase the
// amplitudes.
func (q Qubit) applyMonomial(g Gate) Qubit {
	switch g {
	case X:
		return Qubit{q.Beta, q.Alpha}
	case Y:
		return Qubit{q.Beta.MulI().Neg(), q.Alpha.MulI()}
	case Z:
		return Qubit{q.Alpha, q.Beta.Neg()}
	case S:
		return Qubit{q.Alpha, q.Beta.MulI()}
	}
	invariant(ErrInvalidGate, "%q", byte(g))
	return q
}

func (q Qubit) Valid() bool {
	return q.Alpha.Valid() && q.Beta.Valid()
}

// Validate reports a tag outside the domain or a state that is not normalized.
func (q Qubit) Validate() error {
	if !q.Valid() {
		return fmt.Errorf("%w: %w", ErrInvalidState, ErrInvalidAmplitude)
	}
	if norm := q.Materialize().Norm(); math.Abs(norm-1) > normTolerance {
		return fmt.Errorf("%w: norm %g", ErrInvalidState, norm)
	}
	return nil
}

// Compare orders by Alpha, then Beta.
func (q Qubit) Compare(o Qubit) int {
	return cmp.Or(q.Alpha.Compare(o.Alpha), q.Beta.Compare(o.Beta))
}

func (q Qubit) Materialize() Amplitudes {
	return Amplitudes{Alpha: q.Alpha.Materialize(), Beta: q.Beta.Materialize()}
}

func (q Qubit) String() string {
	return q.Alpha.String() + "|0⟩ + " + q.Beta.String() + "|1⟩"
}
