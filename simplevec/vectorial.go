package simplevec

import "math"

// The functions in this file work on any Vectorial type, including Vector,
// model3d.Coord3D and model2d.Coord. The scalar type usually has to be
// given explicitly, e.g. NormalizedOf[float64](c).

// DotOf computes the dot product of v1 and v2.
func DotOf[T Number, V Vectorial[T, V]](v1, v2 V) T {
	return v1.Dot(v2)
}

// LengthSquaredOf computes the dot product of v with itself.
func LengthSquaredOf[T Number, V Vectorial[T, V]](v V) T {
	return v.Dot(v)
}

// LengthOf computes the Euclidean norm of v as a float64.
func LengthOf[T Number, V Vectorial[T, V]](v V) float64 {
	return math.Sqrt(float64(v.Dot(v)))
}

// NormalizedOf scales v to unit length.
//
// Panics if v has zero length.
func NormalizedOf[T Floating, V Vectorial[T, V]](v V) V {
	length := LengthOf[T](v)
	if length == 0 {
		panic("cannot normalize zero vector")
	}
	return v.Scale(T(1 / length))
}

// ProjectedOf computes the orthogonal projection of v onto target.
//
// Panics if target has zero length.
func ProjectedOf[T Floating, V Vectorial[T, V]](v, target V) V {
	lengthSq := target.Dot(target)
	if lengthSq == 0 {
		panic("cannot project onto zero vector")
	}
	return target.Scale(v.Dot(target) / lengthSq)
}
