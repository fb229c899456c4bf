package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/unixpickle/essentials"
	"github.com/unixpickle/model3d/model3d"
	"github.com/unixpickle/simple-vector/simplevec"
)

func main() {
	var normals bool
	var center bool
	flag.BoolVar(&normals, "normals", false, "export triangle normals instead of vertices")
	flag.BoolVar(&center, "center", false, "subtract the centroid from every vertex")
	flag.Parse()

	args := flag.Args()
	if len(args) != 2 {
		fmt.Fprintln(os.Stderr, "Usage: mesh_to_vectors [flags] <input.stl> <output.bin>")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
		os.Exit(1)
	}
	inputPath, outputPath := args[0], args[1]

	log.Println("Loading mesh...")
	inputTris, err := simplevec.Load(inputPath, model3d.ReadSTL)
	essentials.Must(err)
	mesh := model3d.NewMeshTriangles(inputTris)

	var coords []model3d.Coord3D
	if normals {
		log.Println("Computing normals...")
		for _, t := range mesh.TriangleSlice() {
			coords = append(coords, t.Normal())
		}
	} else {
		coords = mesh.VertexSlice()
	}
	vs := simplevec.FromCoords3D(coords)
	if center && len(vs) > 0 {
		c := simplevec.Centroid[float64, simplevec.Vec3[float64]](vs)
		log.Println("Centering around", c)
		for i := range vs {
			vs[i].SubAssign(c)
		}
	}

	log.Printf("Saving %d vectors...", len(vs))
	essentials.Must(simplevec.Save(outputPath, vs, simplevec.WriteVectors[float64, [3]float64]))
}
