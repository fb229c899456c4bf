package simplevec

import "math"

// Dot computes the dot product of v1 and v2.
func Dot[T Number, A Array[T]](v1, v2 Vector[T, A]) T {
	return TransformReduce2(DefaultPolicy, v1.Slice(), v2.Slice(), 0, add[T], mul[T])
}

// DotMixed computes the dot product of two vectors with different element
// types. Each product is converted to T before it is summed.
// Both vectors must have the same dimension.
func DotMixed[T Number, A Array[T], U Number, B Array[U]](v1 Vector[T, A], v2 Vector[U, B]) T {
	checkSameDims(v1.Dims(), v2.Dims())
	return TransformReduce2(DefaultPolicy, v1.Slice(), v2.Slice(), 0, add[T], func(x T, y U) T {
		return x * T(y)
	})
}

// Dot computes the dot product of v and other.
func (v Vector[T, A]) Dot(other Vector[T, A]) T {
	return Dot(v, other)
}

// LengthSquared computes the dot product of v with itself.
func LengthSquared[T Number, A Array[T]](v Vector[T, A]) T {
	return Dot(v, v)
}

// Length computes the Euclidean norm of v.
//
// The result is always a float64, even for integer vectors.
func Length[T Number, A Array[T]](v Vector[T, A]) float64 {
	return LengthOf[T](v)
}

// Norm is like Length, but returns the element type.
func (v Vector[T, A]) Norm() T {
	return T(Length(v))
}

// Normalized scales v to unit length.
//
// Panics if v is the zero vector.
func Normalized[T Floating, A Array[T]](v Vector[T, A]) Vector[T, A] {
	return NormalizedOf[T](v)
}

// Projected computes the orthogonal projection of v onto target.
//
// Panics if target is the zero vector.
func Projected[T Floating, A Array[T]](v, target Vector[T, A]) Vector[T, A] {
	return ProjectedOf[T](v, target)
}

// Lerp linearly interpolates between v1 (t=0) and v2 (t=1).
//
// Values of t outside of [0, 1] extrapolate.
func Lerp[T Floating, A Array[T], S Number](v1, v2 Vector[T, A], t S) Vector[T, A] {
	ft := T(t)
	s := v1.Slice()
	Transform2(DefaultPolicy, s, v2.Slice(), s, func(a, b T) T {
		return lerp(a, b, ft)
	})
	return v1
}

func lerp[T Floating](a, b, t T) T {
	if (a <= 0 && b >= 0) || (a >= 0 && b <= 0) {
		return t*b + (1-t)*a
	}
	if t == 1 {
		return b
	}
	x := a + t*(b-a)
	// Keep the result monotonic in t around the endpoint.
	if (t > 1) == (b > a) {
		return max(b, x)
	}
	return min(b, x)
}

// Inversed computes the reciprocal of every element.
//
// Zero elements become +Inf (or -Inf for negative zero).
func Inversed[T Floating, A Array[T]](v Vector[T, A]) Vector[T, A] {
	s := v.Slice()
	Transform(DefaultPolicy, s, s, func(x T) T {
		return 1 / x
	})
	return v
}

// DistanceSquared computes the squared Euclidean distance between v1 and v2.
func DistanceSquared[T Number, A Array[T]](v1, v2 Vector[T, A]) T {
	return TransformReduce2(DefaultPolicy, v1.Slice(), v2.Slice(), 0, add[T], func(x, y T) T {
		d := x - y
		return d * d
	})
}

// Distance computes the Euclidean distance between v1 and v2.
func Distance[T Number, A Array[T]](v1, v2 Vector[T, A]) float64 {
	return math.Sqrt(float64(DistanceSquared(v1, v2)))
}

// Sum adds up all of the elements of v.
func Sum[T Number, A Array[T]](v Vector[T, A]) T {
	return TransformReduce(DefaultPolicy, v.Slice(), 0, add[T], identity[T])
}

// MinElem computes the element-wise minimum of v1 and v2.
func MinElem[T Number, A Array[T]](v1, v2 Vector[T, A]) Vector[T, A] {
	s := v1.Slice()
	Transform2(DefaultPolicy, s, v2.Slice(), s, func(x, y T) T {
		return min(x, y)
	})
	return v1
}

// MaxElem computes the element-wise maximum of v1 and v2.
func MaxElem[T Number, A Array[T]](v1, v2 Vector[T, A]) Vector[T, A] {
	s := v1.Slice()
	Transform2(DefaultPolicy, s, v2.Slice(), s, func(x, y T) T {
		return max(x, y)
	})
	return v1
}

// Abs computes the absolute value of every element.
func Abs[T Number, A Array[T]](v Vector[T, A]) Vector[T, A] {
	s := v.Slice()
	Transform(DefaultPolicy, s, s, func(x T) T {
		if x < 0 {
			return -x
		}
		return x
	})
	return v
}

// Cross computes the cross product of two 3D vectors.
func Cross[T Number](v1, v2 Vec3[T]) Vec3[T] {
	a, b := v1.values, v2.values
	return V3(
		a[1]*b[2]-a[2]*b[1],
		a[2]*b[0]-a[0]*b[2],
		a[0]*b[1]-a[1]*b[0],
	)
}
