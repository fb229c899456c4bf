package simplevec

import (
	"github.com/unixpickle/essentials"
)

// Transform writes op(src[i]) to dst[i] for every index of src.
//
// The destination may be the same slice as the source. The destination must
// be at least as long as the source. Every policy produces the same output;
// op must not depend on the order in which it is invoked.
func Transform[S, D any](p Policy, src []S, dst []D, op func(S) D) {
	if len(dst) < len(src) {
		panic("destination is shorter than source")
	}
	dst = dst[:len(src)]
	switch p.Resolve(len(src)) {
	case Sequential:
		for i, x := range src {
			dst[i] = op(x)
		}
	case Unsequenced:
		transformUnrolled(src, dst, op)
	case Parallel:
		parallelChunks(p, len(src), func(start, end int) {
			transformUnrolled(src[start:end], dst[start:end], op)
		})
	}
}

// Transform2 writes op(src1[i], src2[i]) to dst[i] for every index.
//
// Both sources must have the same length, and dst must be at least that
// long. The destination may alias either source.
func Transform2[S1, S2, D any](p Policy, src1 []S1, src2 []S2, dst []D, op func(S1, S2) D) {
	if len(src1) != len(src2) {
		panic("source ranges must have same length")
	}
	if len(dst) < len(src1) {
		panic("destination is shorter than source")
	}
	dst = dst[:len(src1)]
	switch p.Resolve(len(src1)) {
	case Sequential:
		for i, x := range src1 {
			dst[i] = op(x, src2[i])
		}
	case Unsequenced:
		transform2Unrolled(src1, src2, dst, op)
	case Parallel:
		parallelChunks(p, len(src1), func(start, end int) {
			transform2Unrolled(src1[start:end], src2[start:end], dst[start:end], op)
		})
	}
}

// TransformReduce folds op(x) for every x in src into init using reduce.
//
// The order and grouping in which values are combined is unspecified, so
// reduce should be associative and commutative. For floating point sums,
// different policies may give results which differ by rounding.
func TransformReduce[S, R any](p Policy, src []S, init R, reduce func(R, R) R, op func(S) R) R {
	return reduceIndexed(p, len(src), init, reduce, func(i int) R {
		return op(src[i])
	})
}

// TransformReduce2 folds op(src1[i], src2[i]) into init using reduce.
//
// Both sources must have the same length. See TransformReduce for the
// ordering contract.
func TransformReduce2[S1, S2, R any](p Policy, src1 []S1, src2 []S2, init R,
	reduce func(R, R) R, op func(S1, S2) R) R {
	if len(src1) != len(src2) {
		panic("source ranges must have same length")
	}
	return reduceIndexed(p, len(src1), init, reduce, func(i int) R {
		return op(src1[i], src2[i])
	})
}

// TransformUnseq is Transform with DefaultPolicy.
func TransformUnseq[S, D any](src []S, dst []D, op func(S) D) {
	Transform(DefaultPolicy, src, dst, op)
}

// Transform2Unseq is Transform2 with DefaultPolicy.
func Transform2Unseq[S1, S2, D any](src1 []S1, src2 []S2, dst []D, op func(S1, S2) D) {
	Transform2(DefaultPolicy, src1, src2, dst, op)
}

// TransformReduceUnseq is TransformReduce with DefaultPolicy.
func TransformReduceUnseq[S, R any](src []S, init R, reduce func(R, R) R, op func(S) R) R {
	return TransformReduce(DefaultPolicy, src, init, reduce, op)
}

// TransformReduce2Unseq is TransformReduce2 with DefaultPolicy.
func TransformReduce2Unseq[S1, S2, R any](src1 []S1, src2 []S2, init R,
	reduce func(R, R) R, op func(S1, S2) R) R {
	return TransformReduce2(DefaultPolicy, src1, src2, init, reduce, op)
}

func transformUnrolled[S, D any](src []S, dst []D, op func(S) D) {
	lanes := laneWidth
	i := 0
	for ; i+lanes <= len(src); i += lanes {
		s := src[i : i+lanes]
		d := dst[i : i+lanes]
		for j := range s {
			d[j] = op(s[j])
		}
	}
	for ; i < len(src); i++ {
		dst[i] = op(src[i])
	}
}

func transform2Unrolled[S1, S2, D any](src1 []S1, src2 []S2, dst []D, op func(S1, S2) D) {
	lanes := laneWidth
	i := 0
	for ; i+lanes <= len(src1); i += lanes {
		s1 := src1[i : i+lanes]
		s2 := src2[i : i+lanes]
		d := dst[i : i+lanes]
		for j := range s1 {
			d[j] = op(s1[j], s2[j])
		}
	}
	for ; i < len(src1); i++ {
		dst[i] = op(src1[i], src2[i])
	}
}

func reduceIndexed[R any](p Policy, n int, init R, reduce func(R, R) R, get func(int) R) R {
	if n == 0 {
		return init
	}
	switch p.Resolve(n) {
	case Unsequenced:
		return reduce(init, reduceLanes(0, n, reduce, get))
	case Parallel:
		total := newForkQueue[R](p.workers()).Reduce(0, n, p.grain(), reduce, get)
		return reduce(init, total)
	default:
		acc := init
		for i := 0; i < n; i++ {
			acc = reduce(acc, get(i))
		}
		return acc
	}
}

// reduceLanes combines get(start), ..., get(end-1) using one accumulator
// per lane. The range must not be empty.
func reduceLanes[R any](start, end int, reduce func(R, R) R, get func(int) R) R {
	lanes := laneWidth
	if end-start < lanes*2 {
		acc := get(start)
		for i := start + 1; i < end; i++ {
			acc = reduce(acc, get(i))
		}
		return acc
	}

	var accs [maxLanes]R
	for j := 0; j < lanes; j++ {
		accs[j] = get(start + j)
	}
	i := start + lanes
	for ; i+lanes <= end; i += lanes {
		for j := 0; j < lanes; j++ {
			accs[j] = reduce(accs[j], get(i+j))
		}
	}
	acc := accs[0]
	for j := 1; j < lanes; j++ {
		acc = reduce(acc, accs[j])
	}
	for ; i < end; i++ {
		acc = reduce(acc, get(i))
	}
	return acc
}

// parallelChunks calls f on consecutive [start, end) chunks of [0, n),
// possibly from many Goroutines at once.
func parallelChunks(p Policy, n int, f func(start, end int)) {
	if n == 0 {
		return
	}
	grain := p.grain()
	numChunks := (n + grain - 1) / grain
	essentials.ConcurrentMap(essentials.MinInt(p.workers(), numChunks), numChunks, func(i int) {
		start := i * grain
		f(start, essentials.MinInt(start+grain, n))
	})
}
