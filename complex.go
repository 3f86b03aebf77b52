package qgate

import (
	"cmp"
	"fmt"
)

// Complex is an exact complex number over the Amplitude domain.
type Complex struct {
	Real Amplitude
	Imag Amplitude
}

var (
	ComplexZero = Complex{Zero, Zero}
	ComplexOne  = Complex{PosOne, Zero}
	ComplexI    = Complex{Zero, PosOne}
)

func (c Complex) Neg() Complex {
	return Complex{c.Real.Neg(), c.Imag.Neg()}
}

// MulI returns i·c.
func (c Complex) MulI() Complex {
	return Complex{c.Imag.Neg(), c.Real}
}

// AddDivSqrt2 returns (c+o)/√2 component-wise.
func (c Complex) AddDivSqrt2(o Complex) Complex {
	return Complex{c.Real.AddDivSqrt2(o.Real), c.Imag.AddDivSqrt2(o.Imag)}
}

func (c Complex) addDivSqrt2Fused(o Complex) Complex {
	return Complex{c.Real.addDivSqrt2Fused(o.Real), c.Imag.addDivSqrt2Fused(o.Imag)}
}

func (c Complex) Valid() bool {
	return c.Real.Valid() && c.Imag.Valid()
}

func (c Complex) Materialize() complex128 {
	return complex(c.Real.Materialize(), c.Imag.Materialize())
}

// Compare orders by real part, then imaginary part.
func (c Complex) Compare(o Complex) int {
	return cmp.Or(c.Real.Compare(o.Real), c.Imag.Compare(o.Imag))
}

func (c Complex) String() string {
	if c.Imag < Zero {
		return fmt.Sprintf("(%v-%vi)", c.Real, c.Imag.Neg())
	}
	return fmt.Sprintf("(%v+%vi)", c.Real, c.Imag)
}
