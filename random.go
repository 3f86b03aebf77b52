package qgate

import "math/rand/v2"

// RandomSequence draws n generators uniformly from H, X, Y, Z, S. The same
// seed always yields the same sequence.
func RandomSequence(n int, seed uint64) Sequence {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	seq := make(Sequence, n)
	for i := range seq {
		seq[i] = Generators[rng.IntN(NumGenerators)]
	}
	return seq
}
