package simplevec

import (
	"log"
	"math"

	"github.com/unixpickle/essentials"
)

// batchParallelThreshold is the batch size at which the batch helpers start
// using multiple Goroutines.
const batchParallelThreshold = 1 << 12

// Centroid computes the mean of a non-empty list of vectors.
//
// It works with any Vectorial type, for example
//
//	Centroid[float64, Vec3[float64]](points)
//	Centroid[float64, model3d.Coord3D](coords)
func Centroid[T Floating, V Vectorial[T, V]](vs []V) V {
	if len(vs) == 0 {
		panic("cannot compute centroid of empty list")
	}
	sum := vs[0]
	for _, v := range vs[1:] {
		sum = sum.Add(v)
	}
	return sum.Scale(1 / T(len(vs)))
}

// NormalizeAll returns a copy of vs where every vector has unit length.
//
// Panics if any vector has zero length.
func NormalizeAll[T Floating, V Vectorial[T, V]](vs []V) []V {
	res := make([]V, len(vs))
	normalize := func(i int) {
		res[i] = NormalizedOf[T](vs[i])
	}
	if len(vs) < batchParallelThreshold {
		for i := range vs {
			normalize(i)
		}
	} else {
		essentials.ConcurrentMap(0, len(vs), normalize)
	}
	return res
}

// ProjectAll projects every vector in vs onto target.
//
// Panics if target is the zero vector and vs is not empty.
func ProjectAll[T Floating, V Vectorial[T, V]](vs []V, target V) []V {
	res := make([]V, len(vs))
	for i, v := range vs {
		res[i] = ProjectedOf[T](v, target)
	}
	return res
}

// Bounds computes the element-wise minimum and maximum of a non-empty list
// of vectors.
func Bounds[T Number, A Array[T]](vs []Vector[T, A]) (minVec, maxVec Vector[T, A]) {
	if len(vs) == 0 {
		panic("cannot compute bounds of empty list")
	}
	minVec, maxVec = vs[0], vs[0]
	for _, v := range vs[1:] {
		minVec = MinElem(minVec, v)
		maxVec = MaxElem(maxVec, v)
	}
	return
}

// LengthStats summarizes the lengths of a list of vectors.
type LengthStats struct {
	Count int
	Min   float64
	Max   float64
	Mean  float64

	// Zero is the number of zero-length vectors.
	Zero int
}

// BatchStats computes LengthStats for lists of vectors.
type BatchStats[T Number, A Array[T]] struct {
	// Concurrency is the maximum number of Goroutines used to compute
	// lengths. If zero, GOMAXPROCS is used.
	Concurrency int

	// Verbose, if true, logs the result of every call.
	Verbose bool
}

// Lengths computes statistics about the lengths of vs.
func (b *BatchStats[T, A]) Lengths(vs []Vector[T, A]) LengthStats {
	lengths := make([]float64, len(vs))
	if len(vs) < batchParallelThreshold {
		for i, v := range vs {
			lengths[i] = Length(v)
		}
	} else {
		essentials.ConcurrentMap(b.Concurrency, len(vs), func(i int) {
			lengths[i] = Length(vs[i])
		})
	}

	stats := LengthStats{Count: len(vs)}
	if len(vs) == 0 {
		return stats
	}
	policy := Policy{Workers: b.Concurrency}
	stats.Min = TransformReduce(policy, lengths, math.Inf(1), math.Min, identity[float64])
	stats.Max = TransformReduce(policy, lengths, math.Inf(-1), math.Max, identity[float64])
	stats.Mean = TransformReduce(policy, lengths, 0, add[float64], identity[float64]) /
		float64(len(vs))
	stats.Zero = TransformReduce(policy, lengths, 0, add[int], func(l float64) int {
		if l == 0 {
			return 1
		}
		return 0
	})
	if b.Verbose {
		log.Printf("count=%d min=%f max=%f mean=%f zero=%d", stats.Count, stats.Min,
			stats.Max, stats.Mean, stats.Zero)
	}
	return stats
}
