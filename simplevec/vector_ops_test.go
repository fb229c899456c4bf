package simplevec

import (
	"math/rand"
	"testing"
)

func TestVectorCompoundAssign(t *testing.T) {
	v := Generate[int, [3]int](Iota(1))
	v.AddAssign(Generate[int, [3]int](Fill(1)))
	if v != V3(2, 3, 4) {
		t.Errorf("unexpected sum %v", v)
	}
	v.SubAssign(V3(1, 1, 1))
	if v != V3(1, 2, 3) {
		t.Errorf("unexpected difference %v", v)
	}
	v.MulElemAssign(V3(2, 3, 4))
	if v != V3(2, 6, 12) {
		t.Errorf("unexpected product %v", v)
	}
	v.MulAssign(2)
	if v != V3(4, 12, 24) {
		t.Errorf("unexpected scaled vector %v", v)
	}
	v.DivAssign(4)
	if v != V3(1, 3, 6) {
		t.Errorf("unexpected quotient %v", v)
	}
	v.AddScalarAssign(10)
	v.SubScalarAssign(1)
	if v != V3(10, 12, 15) {
		t.Errorf("unexpected vector after scalar ops %v", v)
	}
	ModAssign(&v, 4)
	if v != V3(2, 0, 3) {
		t.Errorf("unexpected remainder %v", v)
	}
}

func TestVectorBinaryOps(t *testing.T) {
	v1 := V3(1.0, 2.0, 3.0)
	v2 := V3(0.5, -1.0, 2.0)

	if sum := v1.Add(v2); sum != V3(1.5, 1.0, 5.0) {
		t.Errorf("unexpected sum %v", sum)
	}
	if diff := v1.Sub(v2); diff != V3(0.5, 3.0, 1.0) {
		t.Errorf("unexpected difference %v", diff)
	}
	if prod := v1.Mul(v2); prod != V3(0.5, -2.0, 6.0) {
		t.Errorf("unexpected product %v", prod)
	}
	if scaled := v1.Scale(2); scaled != V3(2.0, 4.0, 6.0) {
		t.Errorf("unexpected scaled vector %v", scaled)
	}
	if quot := v1.Div(2); quot != V3(0.5, 1.0, 1.5) {
		t.Errorf("unexpected quotient %v", quot)
	}
	if neg := v1.Neg(); neg != V3(-1.0, -2.0, -3.0) {
		t.Errorf("unexpected negation %v", neg)
	}
	if v := v1.AddScalar(1).SubScalar(2); v != V3(0.0, 1.0, 2.0) {
		t.Errorf("unexpected scalar result %v", v)
	}
	if v1 != V3(1.0, 2.0, 3.0) {
		t.Errorf("operands should not be modified: %v", v1)
	}
	if m := Mod(V4(7, -7, 9, 3), 3); m != V4(1, -1, 0, 0) {
		t.Errorf("unexpected remainder %v", m)
	}
}

func TestVectorOpsProperties(t *testing.T) {
	r := rand.New(rand.NewSource(1337))
	randVec := func() Vector[int64, [7]int64] {
		return Generate[int64, [7]int64](func() int64 {
			return r.Int63n(2001) - 1000
		})
	}
	for i := 0; i < 1000; i++ {
		a, b, c := randVec(), randVec(), randVec()
		s := r.Int63n(201) - 100

		if a.Add(b) != b.Add(a) {
			t.Fatalf("addition should commute for %v and %v", a, b)
		}
		if a.Add(b).Add(c) != a.Add(b.Add(c)) {
			t.Fatalf("addition should associate for %v, %v and %v", a, b, c)
		}
		if a.Add(b).Sub(b) != a {
			t.Fatalf("subtraction should undo addition for %v and %v", a, b)
		}
		if a.Add(a.Neg()) != New[int64, [7]int64]() {
			t.Fatalf("a + (-a) should be zero for %v", a)
		}
		if ScaleLeft(s, a) != a.Scale(s) {
			t.Fatalf("scaling should commute for %v and %d", a, s)
		}
		if a.Add(b).Scale(s) != a.Scale(s).Add(b.Scale(s)) {
			t.Fatalf("scaling should distribute for %v, %v and %d", a, b, s)
		}
		if a.Mul(b) != b.Mul(a) {
			t.Fatalf("element-wise product should commute for %v and %v", a, b)
		}
		if a.Scale(s).Dot(b) != s*a.Dot(b) {
			t.Fatalf("dot product should be linear for %v, %v and %d", a, b, s)
		}
		if a.AddScalar(s).SubScalar(s) != a {
			t.Fatalf("subtracting a scalar should undo adding it for %v and %d", a, s)
		}
		if a.SubScalar(s).AddScalar(s) != a {
			t.Fatalf("adding a scalar should undo subtracting it for %v and %d", a, s)
		}
		if s != 0 && a.Scale(s).Div(s) != a {
			t.Fatalf("division should undo scaling for %v and %d", a, s)
		}
	}
}

func TestVectorOpsPropertiesFloat(t *testing.T) {
	r := rand.New(rand.NewSource(1338))
	for i := 0; i < 1000; i++ {
		a := Generate[float64, [5]float64](r.NormFloat64)
		s := r.NormFloat64()
		if s == 0 {
			continue
		}
		if d := Distance(a.AddScalar(s).SubScalar(s), a); d > 1e-8 {
			t.Fatalf("subtracting a scalar should undo adding it (error %e)", d)
		}
		if d := Distance(a.SubScalar(s).AddScalar(s), a); d > 1e-8 {
			t.Fatalf("adding a scalar should undo subtracting it (error %e)", d)
		}
		if d := Distance(a.Scale(s).Div(s), a); d > 1e-8 {
			t.Fatalf("division should undo scaling (error %e)", d)
		}
		if d := Distance(ScaleLeft(s, a), a.Scale(s)); d != 0 {
			t.Fatalf("scaling should commute (error %e)", d)
		}
	}
}

func TestVectorMixedOps(t *testing.T) {
	v := V3(1.5, 2.5, 3.5)
	AddMixed(&v, V3(1, 2, 3))
	if v != V3(2.5, 4.5, 6.5) {
		t.Errorf("unexpected mixed sum %v", v)
	}
	SubMixed(&v, V3[float32](0.5, 0.5, 0.5))
	if v != V3(2.0, 4.0, 6.0) {
		t.Errorf("unexpected mixed difference %v", v)
	}

	ints := V2(1, 2)
	AddMixed(&ints, V2(0.9, 0.4))
	if ints != V2(1, 2) {
		t.Errorf("elements should be truncated before adding but got %v", ints)
	}

	mustPanic(t, func() {
		AddMixed(&v, V2(1, 2))
	})
}

func TestVectorDivByZero(t *testing.T) {
	mustPanic(t, func() {
		V3(1, 2, 3).Div(0)
	})
	mustPanic(t, func() {
		v := V3(1.0, 2.0, 3.0)
		v.DivAssign(0)
	})
	mustPanic(t, func() {
		Mod(V2(1, 2), 0)
	})
}
