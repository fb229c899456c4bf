package main

import (
	"fmt"

	"github.com/unixpickle/simple-vector/simplevec"
)

func main() {
	// Construction.
	v1 := simplevec.V3(1.0, 2.0, 3.0)
	v2 := simplevec.Generate[float64, [3]float64](simplevec.Iota(3.0))
	zero := simplevec.New[int, [4]int]()
	ones := simplevec.Generate[int, [4]int](simplevec.Fill(1))
	fmt.Println("v1:", v1)
	fmt.Println("v2:", v2)
	fmt.Println("zero:", zero, "ones:", ones)

	// Element access.
	fmt.Println("x, y, z of v1:", simplevec.X(v1), simplevec.Y(v1), simplevec.Z(v1))
	for i, x := range v2.Backward() {
		fmt.Printf("v2[%d] = %v\n", i, x)
	}
	for i := range v1.Slice() {
		v1.Slice()[i] *= 10
	}
	fmt.Println("v1 * 10 (in place):", v1)
	v1.DivAssign(10)

	// Arithmetic.
	fmt.Println("v1 + v2:", v1.Add(v2))
	fmt.Println("v1 - v2:", v1.Sub(v2))
	fmt.Println("2 * v1:", simplevec.ScaleLeft(2.0, v1))
	fmt.Println("v1 == v2:", v1 == v2)

	// Algorithms.
	fmt.Println("dot(v1, v2):", simplevec.Dot(v1, v2))
	fmt.Println("length(v1):", simplevec.Length(v1))
	fmt.Println("normalized(v1):", simplevec.Normalized(v1))
	fmt.Println("projected(v1, v2):", simplevec.Projected(v1, v2))
	fmt.Println("lerp(v1, v2, 0.5):", simplevec.Lerp(v1, v2, 0.5))
	fmt.Println("inversed(1, 2, 0):", simplevec.Inversed(simplevec.V3(1.0, 2.0, 0.0)))
	fmt.Println("cross(v1, v2):", simplevec.Cross(v1, v2))

	// Conversion between element types and dimensions.
	ints := simplevec.Convert[int, [2]int](simplevec.V3(1.5, 2.5, 3.5))
	fmt.Println("(1.5, 2.5, 3.5) as 2D ints:", ints)

	// Execution policies.
	large := make([]float64, 1<<20)
	for i := range large {
		large[i] = float64(i % 10)
	}
	for _, p := range []simplevec.Policy{
		simplevec.SequentialPolicy,
		simplevec.UnsequencedPolicy,
		simplevec.ParallelPolicy,
	} {
		sum := simplevec.TransformReduce(p, large, 0.0, func(x, y float64) float64 {
			return x + y
		}, func(x float64) float64 {
			return x * x
		})
		fmt.Printf("sum of squares (%s): %f\n", p.Mode, sum)
	}
	fmt.Println("lane width:", simplevec.LaneWidth())
}
