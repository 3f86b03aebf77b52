package qgate

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
)

/*
WriteSequence writes the gate file format: a little-endian uint64 symbol
count followed by one byte per symbol.
*/
func WriteSequence(w io.Writer, seq Sequence) error {
	if err := seq.Validate(); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, uint64(len(seq))); err != nil {
		return fmt.Errorf("write length: %w", err)
	}
	if _, err := w.Write([]byte(seq.String())); err != nil {
		return fmt.Errorf("write symbols: %w", err)
	}
	return nil
}

// ReadSequence reads and validates a sequence written by WriteSequence.
func ReadSequence(r io.Reader) (Sequence, error) {
	var n uint64
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("%w: missing length", ErrTruncated)
		}
		return nil, fmt.Errorf("read length: %w", err)
	}
	if n > math.MaxInt64 {
		return nil, fmt.Errorf("%w: %d reads as %d", ErrNegativeLength, n, int64(n))
	}

	// Grow with the data actually present rather than trusting n up front.
	var buf bytes.Buffer
	read, err := io.CopyN(&buf, r, int64(n))
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: got %d of %d symbols", ErrTruncated, read, n)
		}
		return nil, fmt.Errorf("read symbols: %w", err)
	}

	raw := buf.Bytes()
	seq := make(Sequence, len(raw))
	for i, b := range raw {
		g, err := ParseGate(b)
		if err != nil {
			return nil, fmt.Errorf("position %d: %w", i, err)
		}
		seq[i] = g
	}
	return seq, nil
}
