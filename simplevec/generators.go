package simplevec

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// Fill returns a generator which always produces value.
func Fill[T Number](value T) func() T {
	return func() T {
		return value
	}
}

// Iota returns a generator which produces start, start+1, start+2, ...
func Iota[T Number](start T) func() T {
	next := start
	return func() T {
		res := next
		next++
		return res
	}
}

// Range returns a generator which produces the elements of values in order.
//
// The slice is copied, so later changes to values do not affect the
// generator. Pulling more values than the slice contains panics.
func Range[T Number](values []T) func() T {
	values = slices.Clone(values)
	var idx int
	return func() T {
		if idx >= len(values) {
			panic(fmt.Sprintf("range generator exhausted after %d values", len(values)))
		}
		res := values[idx]
		idx++
		return res
	}
}

// RangeVector returns a generator which produces the elements of v in
// order. This can be used to seed a vector of a different shape.
func RangeVector[T Number, A Array[T]](v Vector[T, A]) func() T {
	return Range(v.Slice())
}
