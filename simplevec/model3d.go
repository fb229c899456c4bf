package simplevec

import (
	"github.com/unixpickle/model3d/model2d"
	"github.com/unixpickle/model3d/model3d"
)

// FromCoord3D converts a model3d coordinate to a vector.
func FromCoord3D(c model3d.Coord3D) Vec3[float64] {
	return V3(c.X, c.Y, c.Z)
}

// ToCoord3D converts a 3D vector to a model3d coordinate.
func ToCoord3D[T Number](v Vec3[T]) model3d.Coord3D {
	return model3d.XYZ(float64(v.values[0]), float64(v.values[1]), float64(v.values[2]))
}

// FromCoord2D converts a model2d coordinate to a vector.
func FromCoord2D(c model2d.Coord) Vec2[float64] {
	return V2(c.X, c.Y)
}

// ToCoord2D converts a 2D vector to a model2d coordinate.
func ToCoord2D[T Number](v Vec2[T]) model2d.Coord {
	return model2d.XY(float64(v.values[0]), float64(v.values[1]))
}

// FromCoords3D converts a list of model3d coordinates to vectors.
func FromCoords3D(cs []model3d.Coord3D) []Vec3[float64] {
	res := make([]Vec3[float64], len(cs))
	Transform(DefaultPolicy, cs, res, FromCoord3D)
	return res
}

// ToCoords3D converts a list of 3D vectors to model3d coordinates.
func ToCoords3D[T Number](vs []Vec3[T]) []model3d.Coord3D {
	res := make([]model3d.Coord3D, len(vs))
	Transform(DefaultPolicy, vs, res, ToCoord3D[T])
	return res
}
