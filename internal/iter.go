package internal

import (
	"iter"
)

// IterSeqConcat concatenates multiple iterators into a single iterator sequence.
func IterSeqConcat[T any](seqs ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, seq := range seqs {
			for val := range seq {
				if !yield(val) {
					return // Stop if the consumer stops
				}
			}
		}
	}
}

// IterSeqInterleave yields one value from each iterator in turn, stopping
// as soon as any of them is exhausted.
func IterSeqInterleave[T any](seqs ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		if len(seqs) == 0 {
			return
		}

		nexts := make([]func() (T, bool), len(seqs))
		for n, seq := range seqs {
			next, stop := iter.Pull(seq)
			defer stop()
			nexts[n] = next
		}

		for {
			for _, next := range nexts {
				val, ok := next()
				if !ok {
					return
				}
				if !yield(val) {
					return
				}
			}
		}
	}
}

// IterSeqString yields each byte of a string as a one character string.
func IterSeqString(s string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for n := range len(s) {
			if !yield(s[n : n+1]) {
				return
			}
		}
	}
}
