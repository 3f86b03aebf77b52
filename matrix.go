package qgate

/*
GateMatrix is an accumulated 2×2 unitary in exact form, stored as the images
of |0⟩ (C1) and |1⟩ (C2):

	M = [C1.Alpha  C2.Alpha]
	    [C1.Beta   C2.Beta ]
*/
type GateMatrix struct {
	C1 Qubit
	C2 Qubit
}

func Identity() GateMatrix {
	return GateMatrix{C1: Basis0(), C2: Basis1()}
}

// Apply left-multiplies m by generator g, acting on both columns.
func (m GateMatrix) Apply(g Gate) GateMatrix {
	return GateMatrix{C1: m.C1.applyFused(g), C2: m.C2.applyFused(g)}
}

// ApplySequence folds seq onto m in order.
func (m GateMatrix) ApplySequence(seq Sequence) GateMatrix {
	for _, g := range seq {
		m = m.Apply(g)
	}
	return m
}

// MatrixOf returns the unitary of seq.
func MatrixOf(seq Sequence) GateMatrix {
	return Identity().ApplySequence(seq)
}

// Transform returns m·q exactly.
func (m GateMatrix) Transform(q Qubit) Qubit {
	return Qubit{
		Alpha: mulAdd(m.C1.Alpha, q.Alpha, m.C2.Alpha, q.Beta),
		Beta:  mulAdd(m.C1.Beta, q.Alpha, m.C2.Beta, q.Beta),
	}
}

// Then returns next·m: the effect of m followed by next.
func (m GateMatrix) Then(next GateMatrix) GateMatrix {
	return GateMatrix{C1: next.Transform(m.C1), C2: next.Transform(m.C2)}
}

// ApplyTo applies m to floating amplitudes. This is the one place exact
// values cross into floating point.
func (m GateMatrix) ApplyTo(a Amplitudes) Amplitudes {
	m00 := m.C1.Alpha.Materialize()
	m01 := m.C2.Alpha.Materialize()
	m10 := m.C1.Beta.Materialize()
	m11 := m.C2.Beta.Materialize()

	return Amplitudes{
		Alpha: m00*a.Alpha + m01*a.Beta,
		Beta:  m10*a.Alpha + m11*a.Beta,
	}
}

func (m GateMatrix) Valid() bool {
	return m.C1.Valid() && m.C2.Valid()
}
