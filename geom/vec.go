// Euclidean vector primitives shared by the 2D and 3D hull generators.
// These are plain value types; unlike the triangulation side of the world
// we never rely on pointer identity, so hulls can copy and reorder points
// freely.
package geom

import "math"

type Vec2 struct {
	X, Y float64
}

func (v Vec2) Sub(w Vec2) Vec2 {
	return Vec2{v.X - w.X, v.Y - w.Y}
}

func (v Vec2) Add(w Vec2) Vec2 {
	return Vec2{v.X + w.X, v.Y + w.Y}
}

func (v Vec2) Dot(w Vec2) float64 {
	return v.X*w.X + v.Y*w.Y
}

// Cross is the z component of the 3D cross product of the two vectors
// embedded in the plane.
func (v Vec2) Cross(w Vec2) float64 {
	return v.X*w.Y - v.Y*w.X
}

func (v Vec2) Norm() float64 {
	return math.Hypot(v.X, v.Y)
}

func (v Vec2) Dist(w Vec2) float64 {
	return v.Sub(w).Norm()
}

// SignedArea is twice the signed area of the triangle (o, a, b). Positive
// when the triple makes a counterclockwise turn, negative when clockwise,
// zero when collinear.
func SignedArea(o, a, b Vec2) float64 {
	return a.Sub(o).Cross(b.Sub(o))
}

type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Sub(w Vec3) Vec3 {
	return Vec3{v.X - w.X, v.Y - w.Y, v.Z - w.Z}
}

func (v Vec3) Add(w Vec3) Vec3 {
	return Vec3{v.X + w.X, v.Y + w.Y, v.Z + w.Z}
}

func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

func (v Vec3) Dot(w Vec3) float64 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

func (v Vec3) Cross(w Vec3) Vec3 {
	return Vec3{
		v.Y*w.Z - v.Z*w.Y,
		v.Z*w.X - v.X*w.Z,
		v.X*w.Y - v.Y*w.X,
	}
}

func (v Vec3) Norm() float64 {
	return math.Sqrt(v.Dot(v))
}

func (v Vec3) Dist(w Vec3) float64 {
	return v.Sub(w).Norm()
}
