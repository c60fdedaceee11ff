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

// IterSeqLimit yields at most count values of seq. A negative count does
// not limit the sequence.
func IterSeqLimit[T any](seq iter.Seq[T], count int) iter.Seq[T] {
	if count < 0 {
		return seq
	}

	return func(yield func(T) bool) {
		if count == 0 {
			return
		}
		n := 0
		for val := range seq {
			if !yield(val) {
				return
			}
			n++
			if n == count {
				return
			}
		}
	}
}

// IterSeqCount returns the number of values in seq.
func IterSeqCount[T any](seq iter.Seq[T]) (count int) {
	for range seq {
		count++
	}
	return
}
