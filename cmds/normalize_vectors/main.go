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
	var dropZero bool
	var verbose bool
	flag.BoolVar(&dropZero, "drop-zero", false, "skip zero vectors instead of failing")
	flag.BoolVar(&verbose, "verbose", false, "print length statistics before and after")
	flag.Parse()

	args := flag.Args()
	if len(args) != 2 {
		fmt.Fprintln(os.Stderr, "Usage: normalize_vectors [flags] <input.bin> <output.bin>")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
		os.Exit(1)
	}
	inputPath, outputPath := args[0], args[1]

	log.Println("Loading vectors...")
	vs, err := simplevec.Load(inputPath, simplevec.ReadVectors[float64, [3]float64])
	essentials.Must(err)

	stats := simplevec.BatchStats[float64, [3]float64]{Verbose: verbose}
	if s := stats.Lengths(vs); s.Zero > 0 {
		if !dropZero {
			essentials.Die(fmt.Sprintf("found %d zero vectors (use -drop-zero to skip them)", s.Zero))
		}
		log.Printf("Dropping %d zero vectors...", s.Zero)
		nonZero := make([]simplevec.Vec3[float64], 0, len(vs)-s.Zero)
		for _, v := range vs {
			if simplevec.LengthSquared(v) != 0 {
				nonZero = append(nonZero, v)
			}
		}
		vs = nonZero
	}

	log.Println("Normalizing...")
	vs = simplevec.NormalizeAll[float64, simplevec.Vec3[float64]](vs)
	if verbose {
		stats.Lengths(vs)
	}

	log.Println("Saving vectors...")
	essentials.Must(simplevec.Save(outputPath, vs, simplevec.WriteVectors[float64, [3]float64]))
}
