package simplevec

import (
	"math"
	"math/rand"
	"testing"

	"github.com/unixpickle/model3d/model3d"
)

func TestCentroid(t *testing.T) {
	points := []Vec3[float64]{V3(1.0, 0.0, 0.0), V3(0.0, 2.0, 0.0), V3(2.0, 1.0, 3.0)}
	c := Centroid[float64, Vec3[float64]](points)
	if Distance(c, V3(1.0, 1.0, 1.0)) > 1e-12 {
		t.Errorf("unexpected centroid %v", c)
	}

	coords := ToCoords3D(points)
	coordCenter := Centroid[float64, model3d.Coord3D](coords)
	if coordCenter.Dist(ToCoord3D(c)) > 1e-12 {
		t.Errorf("centroid mismatch: %v vs %v", coordCenter, c)
	}

	mustPanic(t, func() {
		Centroid[float64, Vec3[float64]](nil)
	})
}

func TestNormalizeAll(t *testing.T) {
	r := rand.New(rand.NewSource(1337))
	for _, n := range []int{10, batchParallelThreshold + 17} {
		vs := make([]Vec4[float64], n)
		for i := range vs {
			vs[i] = Generate[float64, [4]float64](r.NormFloat64)
		}
		normed := NormalizeAll[float64, Vec4[float64]](vs)
		for i, v := range normed {
			if math.Abs(Length(v)-1) > 1e-8 {
				t.Fatalf("vector %d: expected unit length but got %f", i, Length(v))
			}
			if Distance(v, Normalized(vs[i])) > 1e-8 {
				t.Fatalf("vector %d: expected %v but got %v", i, Normalized(vs[i]), v)
			}
		}
	}

	coords := NormalizeAll[float64, model3d.Coord3D]([]model3d.Coord3D{model3d.XYZ(0, 3, 4)})
	if coords[0].Dist(model3d.XYZ(0, 0.6, 0.8)) > 1e-12 {
		t.Errorf("unexpected normalized coordinate %v", coords[0])
	}

	mustPanic(t, func() {
		NormalizeAll[float64, Vec2[float64]]([]Vec2[float64]{V2(1.0, 0.0), {}})
	})
}

func TestProjectAll(t *testing.T) {
	vs := []Vec2[float64]{V2(1.0, 1.0), V2(1.0, 4.0), V2(-3.0, 2.0)}
	target := V2(2.0, 1.0)
	projected := ProjectAll[float64, Vec2[float64]](vs, target)
	for i, v := range vs {
		if Distance(projected[i], Projected(v, target)) > 1e-12 {
			t.Errorf("vector %d: expected %v but got %v", i, Projected(v, target), projected[i])
		}
	}
	mustPanic(t, func() {
		ProjectAll[float64, Vec2[float64]](vs, Vec2[float64]{})
	})
}

func TestBounds(t *testing.T) {
	vs := []Vec3[int]{V3(1, 5, -2), V3(0, 7, 3), V3(4, -1, 0)}
	minVec, maxVec := Bounds(vs)
	if minVec != V3(0, -1, -2) {
		t.Errorf("unexpected min %v", minVec)
	}
	if maxVec != V3(4, 7, 3) {
		t.Errorf("unexpected max %v", maxVec)
	}
	mustPanic(t, func() {
		Bounds([]Vec3[int]{})
	})
}

func TestBatchStats(t *testing.T) {
	vs := []Vec2[float64]{V2(3.0, 4.0), V2(0.0, 0.0), V2(0.0, 1.0), V2(6.0, 8.0)}
	var stats BatchStats[float64, [2]float64]
	res := stats.Lengths(vs)
	expected := LengthStats{Count: 4, Min: 0, Max: 10, Mean: 4, Zero: 1}
	if res != expected {
		t.Errorf("expected %+v but got %+v", expected, res)
	}

	if res := stats.Lengths(nil); res != (LengthStats{}) {
		t.Errorf("unexpected stats for empty list: %+v", res)
	}
}

func TestBatchStatsLarge(t *testing.T) {
	vs := make([]Vec3[int], batchParallelThreshold*2)
	for i := range vs {
		if i%2 == 0 {
			vs[i] = V3(2, 3, 6)
		}
	}
	stats := BatchStats[int, [3]int]{Concurrency: 4}
	res := stats.Lengths(vs)
	if res.Count != len(vs) || res.Zero != len(vs)/2 {
		t.Errorf("unexpected counts: %+v", res)
	}
	if res.Min != 0 || res.Max != 7 || res.Mean != 3.5 {
		t.Errorf("unexpected lengths: %+v", res)
	}
}
