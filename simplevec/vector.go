package simplevec

import (
	"fmt"
	"iter"
	"strings"
	"unsafe"
)

// A Vector is a fixed-dimension mathematical vector with elements of type T.
//
// The storage type A is an array whose length is the number of dimensions,
// e.g. Vector[float64, [3]float64] for a 3D point. The aliases Vec2, Vec3
// and Vec4 spell out the common cases.
//
// The zero value is the zero vector. Vectors are plain values: assignment
// copies the elements, and two vectors can be compared with ==.
type Vector[T Number, A Array[T]] struct {
	values A
}

type (
	Vec1[T Number] = Vector[T, [1]T]
	Vec2[T Number] = Vector[T, [2]T]
	Vec3[T Number] = Vector[T, [3]T]
	Vec4[T Number] = Vector[T, [4]T]
)

// New returns the zero vector.
func New[T Number, A Array[T]]() Vector[T, A] {
	return Vector[T, A]{}
}

// Of creates a vector from exactly as many values as it has dimensions.
func Of[T Number, A Array[T]](values ...T) Vector[T, A] {
	var res Vector[T, A]
	if len(values) != len(res.values) {
		panic(fmt.Sprintf("expected %d values but got %d", len(res.values), len(values)))
	}
	copy(res.Slice(), values)
	return res
}

// FromArray creates a vector from its backing array.
func FromArray[T Number, A Array[T]](a A) Vector[T, A] {
	return Vector[T, A]{values: a}
}

// Generate creates a vector by calling gen once per dimension, in index
// order, and storing the results.
func Generate[T Number, A Array[T]](gen func() T) Vector[T, A] {
	var res Vector[T, A]
	for i := 0; i < len(res.values); i++ {
		res.values[i] = gen()
	}
	return res
}

// Convert casts every element of v to TO and changes the dimension to that
// of AO.
//
// If the target has fewer dimensions, the trailing elements of v are
// dropped. If it has more, the extra elements are zero.
func Convert[TO Number, AO Array[TO], T Number, A Array[T]](v Vector[T, A]) Vector[TO, AO] {
	var res Vector[TO, AO]
	n := min(len(res.values), len(v.values))
	Transform(SequentialPolicy, v.Slice()[:n], res.Slice()[:n], CastInvokeResult[TO](identity[T]))
	return res
}

// V1 creates a one dimensional vector.
func V1[T Number](x T) Vec1[T] {
	return Vec1[T]{values: [1]T{x}}
}

// V2 creates a two dimensional vector.
func V2[T Number](x, y T) Vec2[T] {
	return Vec2[T]{values: [2]T{x, y}}
}

// V3 creates a three dimensional vector.
func V3[T Number](x, y, z T) Vec3[T] {
	return Vec3[T]{values: [3]T{x, y, z}}
}

// V4 creates a four dimensional vector.
func V4[T Number](x, y, z, w T) Vec4[T] {
	return Vec4[T]{values: [4]T{x, y, z, w}}
}

// Dims returns the number of dimensions.
func (v Vector[T, A]) Dims() int {
	return len(v.values)
}

// At returns the element at index i.
func (v Vector[T, A]) At(i int) T {
	return v.values[i]
}

// Set changes the element at index i.
func (v *Vector[T, A]) Set(i int, x T) {
	v.values[i] = x
}

// Ptr returns a pointer to the element at index i.
func (v *Vector[T, A]) Ptr(i int) *T {
	return &v.values[i]
}

// X returns the first element.
func (v Vector[T, A]) X() T {
	return v.values[0]
}

// Array returns a copy of the backing array.
func (v Vector[T, A]) Array() A {
	return v.values
}

// Slice returns a slice which aliases the elements of v.
//
// Writes through the slice modify v, which makes it possible to use v with
// any algorithm that works on slices.
func (v *Vector[T, A]) Slice() []T {
	return unsafe.Slice((*T)(unsafe.Pointer(&v.values)), len(v.values))
}

// Equal checks if all elements are pairwise equal.
func (v Vector[T, A]) Equal(other Vector[T, A]) bool {
	return v.values == other.values
}

// All iterates over the indices and elements in order.
func (v Vector[T, A]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < len(v.values); i++ {
			if !yield(i, v.values[i]) {
				return
			}
		}
	}
}

// Values iterates over the elements in order.
func (v Vector[T, A]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < len(v.values); i++ {
			if !yield(v.values[i]) {
				return
			}
		}
	}
}

// Backward iterates over the indices and elements from last to first.
func (v Vector[T, A]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := len(v.values) - 1; i >= 0; i-- {
			if !yield(i, v.values[i]) {
				return
			}
		}
	}
}

func (v Vector[T, A]) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i := 0; i < len(v.values); i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprint(&b, v.values[i])
	}
	b.WriteByte(')')
	return b.String()
}

// X returns the first element of v.
func X[T Number, A Array[T]](v Vector[T, A]) T {
	return v.values[0]
}

// Y returns the second element of v.
func Y[T Number, A Array2Plus[T]](v Vector[T, A]) T {
	return v.values[1]
}

// Z returns the third element of v.
func Z[T Number, A Array3Plus[T]](v Vector[T, A]) T {
	return v.values[2]
}

// W returns the fourth element of v.
func W[T Number, A Array4Plus[T]](v Vector[T, A]) T {
	return v.values[3]
}

// SetX changes the first element of v.
func SetX[T Number, A Array[T]](v *Vector[T, A], x T) {
	v.values[0] = x
}

// SetY changes the second element of v.
func SetY[T Number, A Array2Plus[T]](v *Vector[T, A], y T) {
	v.values[1] = y
}

// SetZ changes the third element of v.
func SetZ[T Number, A Array3Plus[T]](v *Vector[T, A], z T) {
	v.values[2] = z
}

// SetW changes the fourth element of v.
func SetW[T Number, A Array4Plus[T]](v *Vector[T, A], w T) {
	v.values[3] = w
}
