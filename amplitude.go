package qgate

import (
	"cmp"
	"fmt"
)

// InvSqrt2 is 1/√2 at double precision.
const InvSqrt2 = 0.70710678118654752440084436210485

/*
Amplitude is one value of the exact domain {0, ±1, ±1/2, ±1/√2}.

The tag codes double as the canonical sort key and as the numbers written by
Table.WriteTo: 0, ±1, ±2 for ±1/√2 and ±4 for ±1/2. No arithmetic is done on
the codes themselves; every operation is an explicit table over the seven
members, so the closure of the domain stays visible.
*/
type Amplitude int8

const (
	Zero        Amplitude = 0
	PosOne      Amplitude = 1
	NegOne      Amplitude = -1
	PosInvSqrt2 Amplitude = 2
	NegInvSqrt2 Amplitude = -2
	PosHalf     Amplitude = 4
	NegHalf     Amplitude = -4
)

// Domain lists the exact values in canonical order.
var Domain = [...]Amplitude{
	NegHalf, NegInvSqrt2, NegOne, Zero, PosOne, PosInvSqrt2, PosHalf,
}

// Valid reports whether a is a member of the exact domain.
func (a Amplitude) Valid() bool {
	switch a {
	case Zero, PosOne, NegOne, PosInvSqrt2, NegInvSqrt2, PosHalf, NegHalf:
		return true
	}
	return false
}

// ParseAmplitude maps a tag code back to its Amplitude.
func ParseAmplitude(code int) (Amplitude, error) {
	if code < -128 || code > 127 || !Amplitude(code).Valid() {
		return Zero, fmt.Errorf("%w: code %d", ErrInvalidAmplitude, code)
	}
	return Amplitude(code), nil
}

// Code returns the tag code.
func (a Amplitude) Code() int {
	return int(a)
}

// Neg returns -a.
func (a Amplitude) Neg() Amplitude {
	switch a {
	case Zero:
		return Zero
	case PosOne:
		return NegOne
	case NegOne:
		return PosOne
	case PosInvSqrt2:
		return NegInvSqrt2
	case NegInvSqrt2:
		return PosInvSqrt2
	case PosHalf:
		return NegHalf
	case NegHalf:
		return PosHalf
	}
	invariant(ErrInvalidAmplitude, "negate %d", int8(a))
	return Zero
}

// DivSqrt2 returns a/√2 along the chain 1 → 1/√2 → 1/2. A half divided
// by √2 leaves the domain and panics.
func (a Amplitude) DivSqrt2() Amplitude {
	switch a {
	case Zero:
		return Zero
	case PosOne:
		return PosInvSqrt2
	case NegOne:
		return NegInvSqrt2
	case PosInvSqrt2:
		return PosHalf
	case NegInvSqrt2:
		return NegHalf
	}
	invariant(ErrMagnitudeMismatch, "%v/√2 is outside the domain", a)
	return Zero
}

/*
AddDivSqrt2 returns (a+b)/√2, one step at a time: opposite operands cancel,
a zero operand reduces to DivSqrt2 of the other, and equal operands promote
one step (1/2 → 1/√2, 1/√2 → 1). Any other pair is a contract violation.
*/
func (a Amplitude) AddDivSqrt2(b Amplitude) Amplitude {
	if a == b.Neg() {
		return Zero
	}
	if a == Zero {
		return b.DivSqrt2()
	}
	if b == Zero {
		return a.DivSqrt2()
	}
	if a != b {
		invariant(ErrMagnitudeMismatch, "(%v + %v)/√2", a, b)
	}

	switch a {
	case PosHalf:
		return PosInvSqrt2
	case NegHalf:
		return NegInvSqrt2
	case PosInvSqrt2:
		return PosOne
	case NegInvSqrt2:
		return NegOne
	}
	invariant(ErrMagnitudeMismatch, "(%v + %v)/√2 is outside the domain", a, b)
	return Zero
}

// undefined marks the holes of fusedCombine.
const undefined Amplitude = 127

// ordinal maps code+4 to the row/column of fusedCombine.
var ordinal = [9]int8{0, -1, 1, 2, 3, 4, 5, -1, 6}

// fusedCombine is (a+b)/√2 as one lookup, rows and columns in canonical order.
var fusedCombine = [7][7]Amplitude{
	{NegInvSqrt2, undefined, undefined, undefined, undefined, undefined, Zero}, // -1/2
	{undefined, NegOne, undefined, NegHalf, undefined, Zero, undefined},        // -1/√2
	{undefined, undefined, undefined, NegInvSqrt2, Zero, undefined, undefined}, // -1
	{undefined, NegHalf, NegInvSqrt2, Zero, PosInvSqrt2, PosHalf, undefined},   // 0
	{undefined, undefined, Zero, PosInvSqrt2, undefined, undefined, undefined}, // 1
	{undefined, Zero, undefined, PosHalf, undefined, PosOne, undefined},        // 1/√2
	{Zero, undefined, undefined, undefined, undefined, undefined, PosInvSqrt2}, // 1/2
}

func (a Amplitude) ordinal() int {
	i := int(a) + 4
	if i < 0 || i >= len(ordinal) || ordinal[i] < 0 {
		invariant(ErrInvalidAmplitude, "tag %d", int8(a))
	}
	return int(ordinal[i])
}

// addDivSqrt2Fused is AddDivSqrt2 as a single table lookup. It must agree
// with AddDivSqrt2 on every pair.
func (a Amplitude) addDivSqrt2Fused(b Amplitude) Amplitude {
	r := fusedCombine[a.ordinal()][b.ordinal()]
	if r == undefined {
		invariant(ErrMagnitudeMismatch, "(%v + %v)/√2", a, b)
	}
	return r
}

// Materialize converts a to float64.
func (a Amplitude) Materialize() float64 {
	switch a {
	case Zero:
		return 0.0
	case PosOne:
		return 1.0
	case NegOne:
		return -1.0
	case PosHalf:
		return 0.5
	case NegHalf:
		return -0.5
	case PosInvSqrt2:
		return InvSqrt2
	case NegInvSqrt2:
		return -InvSqrt2
	}
	invariant(ErrInvalidAmplitude, "materialize %d", int8(a))
	return 0
}

// Compare orders amplitudes by tag code.
func (a Amplitude) Compare(b Amplitude) int {
	return cmp.Compare(a, b)
}

func (a Amplitude) String() string {
	switch a {
	case Zero:
		return "0"
	case PosOne:
		return "1"
	case NegOne:
		return "-1"
	case PosInvSqrt2:
		return "1/√2"
	case NegInvSqrt2:
		return "-1/√2"
	case PosHalf:
		return "1/2"
	case NegHalf:
		return "-1/2"
	}
	return fmt.Sprintf("Amplitude(%d)", int8(a))
}
