package qgate

/*
Chunk is a contiguous, half-open slice [Start, End) of a gate sequence,
reduced by one worker.
*/
type Chunk struct {
	Index int
	Start int
	End   int
}

func (c Chunk) Len() int {
	return c.End - c.Start
}

/*
Partition splits n symbols into contiguous chunks for the given worker count.

Every symbol lands in exactly one chunk. All chunks have n/w symbols except
the last, which absorbs the remainder. The effective worker count w is
clamped so that no chunk is shorter than minChunk (so w ≤ n). A length of
zero, or a worker count of zero or less, yields no chunks, which folds to
the identity.
*/
func Partition(n, workers, minChunk int) []Chunk {
	if n <= 0 || workers <= 0 {
		return nil
	}
	if minChunk < 1 {
		minChunk = 1
	}

	w := min(workers, n/minChunk)
	if w < 1 {
		w = 1
	}

	size := n / w
	chunks := make([]Chunk, w)
	for i := range chunks {
		chunks[i] = Chunk{Index: i, Start: i * size, End: (i + 1) * size}
	}
	chunks[w-1].End = n
	return chunks
}
