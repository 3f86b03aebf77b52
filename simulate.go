package qgate

// Simulate is the sequential reference evaluator: the exact state starts at
// |0⟩, every generator is applied in order, and only the final state is
// converted to floating point.
func Simulate(seq Sequence) Amplitudes {
	return Basis0().Evolve(seq).Materialize()
}
