package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/unixpickle/essentials"
	"github.com/unixpickle/simple-vector/simplevec"
)

func main() {
	var concurrency int
	flag.IntVar(&concurrency, "concurrency", 0, "maximum number of Goroutines (0 uses GOMAXPROCS)")
	flag.Parse()

	args := flag.Args()
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "Usage: vector_info [flags] <input.bin>")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
		os.Exit(1)
	}
	inputPath := args[0]

	log.Println("Loading vectors...")
	vs, err := simplevec.Load(inputPath, simplevec.ReadVectors[float64, [3]float64])
	essentials.Must(err)

	fmt.Println("Number of vectors:", len(vs))
	if len(vs) == 0 {
		return
	}

	stats := simplevec.BatchStats[float64, [3]float64]{Concurrency: concurrency}
	lengths := stats.Lengths(vs)
	fmt.Println("Min length:", lengths.Min)
	fmt.Println("Max length:", lengths.Max)
	fmt.Println("Mean length:", lengths.Mean)
	fmt.Println("Zero vectors:", lengths.Zero)

	minVec, maxVec := simplevec.Bounds(vs)
	fmt.Println("Bounds:", minVec, maxVec)
	fmt.Println("Centroid:", simplevec.Centroid[float64, simplevec.Vec3[float64]](vs))
}
