package nest

import "iter"

// Zip yields tuples of the i-th elements of all inputs, stopping at the end of
// the shortest input. With no inputs it yields nothing.
func Zip[T any](seqs ...[]T) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		if len(seqs) == 0 {
			return
		}
		n := len(seqs[0])
		for _, s := range seqs[1:] {
			n = min(n, len(s))
		}
		for i := range n {
			tuple := make([]T, len(seqs))
			for j, s := range seqs {
				tuple[j] = s[i]
			}
			if !yield(tuple) {
				return
			}
		}
	}
}

// ZipLongest yields tuples of the i-th elements of all inputs up to the length
// of the longest input. Inputs which are exhausted contribute None.
func ZipLongest[T any](seqs ...[]T) iter.Seq[[]Option[T]] {
	return func(yield func([]Option[T]) bool) {
		n := longest(seqs)
		for i := range n {
			tuple := make([]Option[T], len(seqs))
			for j, s := range seqs {
				if i < len(s) {
					tuple[j] = Some(s[i])
				} else {
					tuple[j] = None[T]()
				}
			}
			if !yield(tuple) {
				return
			}
		}
	}
}

// ZipLongestFill is like ZipLongest, but substitutes fill for missing elements.
func ZipLongestFill[T any](fill T, seqs ...[]T) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		n := longest(seqs)
		for i := range n {
			tuple := make([]T, len(seqs))
			for j, s := range seqs {
				if i < len(s) {
					tuple[j] = s[i]
				} else {
					tuple[j] = fill
				}
			}
			if !yield(tuple) {
				return
			}
		}
	}
}

// ZipRepeat yields tuples up to the length of the longest input. Shorter inputs
// are padded by repeating their last element, so a single-element input is
// broadcast against all others. If any input is empty, nothing is yielded.
func ZipRepeat[T any](seqs ...[]T) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		for _, s := range seqs {
			if len(s) == 0 {
				return
			}
		}
		n := longest(seqs)
		for i := range n {
			tuple := make([]T, len(seqs))
			for j, s := range seqs {
				tuple[j] = s[min(i, len(s)-1)]
			}
			if !yield(tuple) {
				return
			}
		}
	}
}

func longest[T any](seqs [][]T) int {
	n := 0
	for _, s := range seqs {
		n = max(n, len(s))
	}
	return n
}
