package simplevec

import "golang.org/x/exp/constraints"

// Number is the set of element types a Vector can hold.
//
// Every member is comparable and supports the arithmetic operators + - * /
// with a result of the same type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Addable, Subable, Mulable and Divable are the element types which support
// the corresponding operator (and its compound assignment form).
type (
	Addable = Number
	Subable = Number
	Mulable = Number
	Divable = Number
)

// Modable is the set of element types which support the % operator.
type Modable interface {
	constraints.Integer
}

// Floating is the set of floating point element types.
type Floating interface {
	constraints.Float
}

// Array is the set of storage types for a Vector with elements of type T.
// The array length is the dimension of the Vector, which must be in the
// range [1, 16].
type Array[T Number] interface {
	[1]T | [2]T | [3]T | [4]T | [5]T | [6]T | [7]T | [8]T |
		[9]T | [10]T | [11]T | [12]T | [13]T | [14]T | [15]T | [16]T
}

// Array2Plus is the subset of Array with at least two dimensions.
type Array2Plus[T Number] interface {
	[2]T | [3]T | [4]T | [5]T | [6]T | [7]T | [8]T |
		[9]T | [10]T | [11]T | [12]T | [13]T | [14]T | [15]T | [16]T
}

// Array3Plus is the subset of Array with at least three dimensions.
type Array3Plus[T Number] interface {
	[3]T | [4]T | [5]T | [6]T | [7]T | [8]T |
		[9]T | [10]T | [11]T | [12]T | [13]T | [14]T | [15]T | [16]T
}

// Array4Plus is the subset of Array with at least four dimensions.
type Array4Plus[T Number] interface {
	[4]T | [5]T | [6]T | [7]T | [8]T |
		[9]T | [10]T | [11]T | [12]T | [13]T | [14]T | [15]T | [16]T
}

// Vectorial is implemented by vector-like types with scalar type T.
//
// Self is the implementing type, so that operations can produce new values
// of the same shape. Both Vector and model3d.Coord3D satisfy this
// interface, which lets the batch helpers in this package work on either.
type Vectorial[T Number, Self any] interface {
	Add(Self) Self
	Sub(Self) Self
	Scale(T) Self
	Dot(Self) T
}

// Dims returns the number of dimensions of a Vector with storage type A.
func Dims[T Number, A Array[T]]() int {
	var a A
	return len(a)
}
