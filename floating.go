package qgate

/*
ApplyHadamard applies H in double precision.

H = 1/√2 * [1  1]
           [1 -1]
*/
func (a *Amplitudes) ApplyHadamard() {
	newAlpha := (a.Alpha + a.Beta) * complex(InvSqrt2, 0)
	newBeta := (a.Alpha - a.Beta) * complex(InvSqrt2, 0)
	a.Alpha = newAlpha
	a.Beta = newBeta
}

// Apply applies one generator in double precision. Both new amplitudes are
// computed from the old pair.
func (a *Amplitudes) Apply(g Gate) {
	switch g {
	case H:
		a.ApplyHadamard()
	case X:
		a.Alpha, a.Beta = a.Beta, a.Alpha
	case Y:
		a.Alpha, a.Beta = a.Beta*complex(0, -1), a.Alpha*complex(0, 1)
	case Z:
		a.Beta = -a.Beta
	case S:
		a.Beta *= complex(0, 1)
	default:
		invariant(ErrInvalidGate, "%q", byte(g))
	}
}

/*
SimulateFloating evaluates seq from |0⟩ with plain complex128 arithmetic.
It rounds after every generator, so it only agrees with Simulate to within
a few ulps: "HH" already leaves Alpha at 1.0000000000000002.
*/
func SimulateFloating(seq Sequence) Amplitudes {
	a := Ground()
	for _, g := range seq {
		a.Apply(g)
	}
	return a
}
