package qgate

import (
	"fmt"
	"math/cmplx"
)

// Amplitudes is the floating-point state vector handed back to callers.
type Amplitudes struct {
	Alpha complex128
	Beta  complex128
}

// Ground returns |0⟩ as floating amplitudes.
func Ground() Amplitudes {
	return Amplitudes{Alpha: 1, Beta: 0}
}

// Probabilities returns the measurement probabilities of |0⟩ and |1⟩.
func (a Amplitudes) Probabilities() (p0, p1 float64) {
	p0 = cmplx.Abs(a.Alpha)
	p0 *= p0 // Square of the modulus
	p1 = cmplx.Abs(a.Beta)
	p1 *= p1
	return p0, p1
}

// Norm returns |α|² + |β|², which stays 1 for every reachable state.
func (a Amplitudes) Norm() float64 {
	p0, p1 := a.Probabilities()
	return p0 + p1
}

func (a Amplitudes) String() string {
	return fmt.Sprintf(
		"Final state: alpha = %.12f + %.12fi, beta = %.12f + %.12fi",
		real(a.Alpha), imag(a.Alpha), real(a.Beta), imag(a.Beta),
	)
}
