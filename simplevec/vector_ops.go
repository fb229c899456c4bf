package simplevec

import "fmt"

// AddAssign adds other to v element-wise.
func (v *Vector[T, A]) AddAssign(other Vector[T, A]) {
	s := v.Slice()
	Transform2(DefaultPolicy, s, other.Slice(), s, add[T])
}

// SubAssign subtracts other from v element-wise.
func (v *Vector[T, A]) SubAssign(other Vector[T, A]) {
	s := v.Slice()
	Transform2(DefaultPolicy, s, other.Slice(), s, sub[T])
}

// MulElemAssign multiplies v by other element-wise.
func (v *Vector[T, A]) MulElemAssign(other Vector[T, A]) {
	s := v.Slice()
	Transform2(DefaultPolicy, s, other.Slice(), s, mul[T])
}

// AddScalarAssign adds x to every element.
func (v *Vector[T, A]) AddScalarAssign(x T) {
	s := v.Slice()
	Transform(DefaultPolicy, s, s, func(e T) T {
		return e + x
	})
}

// SubScalarAssign subtracts x from every element.
func (v *Vector[T, A]) SubScalarAssign(x T) {
	s := v.Slice()
	Transform(DefaultPolicy, s, s, func(e T) T {
		return e - x
	})
}

// MulAssign multiplies every element by x.
func (v *Vector[T, A]) MulAssign(x T) {
	s := v.Slice()
	Transform(DefaultPolicy, s, s, func(e T) T {
		return e * x
	})
}

// DivAssign divides every element by x.
//
// Panics if x is zero.
func (v *Vector[T, A]) DivAssign(x T) {
	if x == 0 {
		panic("division by zero")
	}
	s := v.Slice()
	Transform(DefaultPolicy, s, s, func(e T) T {
		return e / x
	})
}

// ModAssign replaces every element of v with its remainder modulo x.
//
// Panics if x is zero.
func ModAssign[T Modable, A Array[T]](v *Vector[T, A], x T) {
	if x == 0 {
		panic("division by zero")
	}
	s := v.Slice()
	Transform(DefaultPolicy, s, s, func(e T) T {
		return e % x
	})
}

// AddMixed adds src to dst element-wise, converting every element of src
// to the element type of dst. Both vectors must have the same dimension.
func AddMixed[T Number, A Array[T], U Number, B Array[U]](dst *Vector[T, A], src Vector[U, B]) {
	checkSameDims(dst.Dims(), src.Dims())
	d := dst.Slice()
	Transform2(DefaultPolicy, d, src.Slice(), d, func(x T, y U) T {
		return x + T(y)
	})
}

// SubMixed is like AddMixed, but subtracts src from dst.
func SubMixed[T Number, A Array[T], U Number, B Array[U]](dst *Vector[T, A], src Vector[U, B]) {
	checkSameDims(dst.Dims(), src.Dims())
	d := dst.Slice()
	Transform2(DefaultPolicy, d, src.Slice(), d, func(x T, y U) T {
		return x - T(y)
	})
}

// Add returns v + other.
func (v Vector[T, A]) Add(other Vector[T, A]) Vector[T, A] {
	v.AddAssign(other)
	return v
}

// Sub returns v - other.
func (v Vector[T, A]) Sub(other Vector[T, A]) Vector[T, A] {
	v.SubAssign(other)
	return v
}

// Mul returns the element-wise product of v and other.
func (v Vector[T, A]) Mul(other Vector[T, A]) Vector[T, A] {
	v.MulElemAssign(other)
	return v
}

// AddScalar returns v with x added to every element.
func (v Vector[T, A]) AddScalar(x T) Vector[T, A] {
	v.AddScalarAssign(x)
	return v
}

// SubScalar returns v with x subtracted from every element.
func (v Vector[T, A]) SubScalar(x T) Vector[T, A] {
	v.SubScalarAssign(x)
	return v
}

// Scale returns v * x.
func (v Vector[T, A]) Scale(x T) Vector[T, A] {
	v.MulAssign(x)
	return v
}

// Div returns v / x. Panics if x is zero.
func (v Vector[T, A]) Div(x T) Vector[T, A] {
	v.DivAssign(x)
	return v
}

// Neg returns -v.
func (v Vector[T, A]) Neg() Vector[T, A] {
	var zero Vector[T, A]
	return zero.Sub(v)
}

// ScaleLeft returns x * v, which is the same as v.Scale(x).
func ScaleLeft[T Number, A Array[T]](x T, v Vector[T, A]) Vector[T, A] {
	v.MulAssign(x)
	return v
}

// Mod returns v % x. Panics if x is zero.
func Mod[T Modable, A Array[T]](v Vector[T, A], x T) Vector[T, A] {
	ModAssign(&v, x)
	return v
}

func checkSameDims(d1, d2 int) {
	if d1 != d2 {
		panic(fmt.Sprintf("dimension mismatch: %d != %d", d1, d2))
	}
}
