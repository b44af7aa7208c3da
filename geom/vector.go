// Package geom provides the minimal 3D geometry needed to describe detector
// surfaces: vectors, rotations, planes and their bounds.
package geom

import "math"

// Vec3 is a point or a direction in cartesian coordinates.
type Vec3 struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

func (v Vec3) Scale(f float64) Vec3 { return Vec3{f * v.X, f * v.Y, f * v.Z} }

func (v Vec3) Dot(o Vec3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

func (v Vec3) Mag() float64 { return math.Sqrt(v.Dot(v)) }

// Perp is the magnitude of the transverse (x, y) component.
func (v Vec3) Perp() float64 { return math.Hypot(v.X, v.Y) }

// Unit returns v scaled to unit length. The zero vector is returned as is.
func (v Vec3) Unit() Vec3 {
	m := v.Mag()
	if m == 0 {
		return v
	}
	return v.Scale(1 / m)
}

// Rotation maps global directions to local ones. Its rows are the local
// x, y and z axes expressed in global coordinates.
type Rotation [3]Vec3

// Identity is the rotation of a frame aligned with the global one.
var Identity = Rotation{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}

// IsZero reports whether r is the zero value, i.e. was never set.
func (r Rotation) IsZero() bool { return r == Rotation{} }

// Apply rotates a global direction into the local frame.
func (r Rotation) Apply(v Vec3) Vec3 {
	return Vec3{r[0].Dot(v), r[1].Dot(v), r[2].Dot(v)}
}

// Inverse rotates a local direction into the global frame.
func (r Rotation) Inverse(v Vec3) Vec3 {
	return r[0].Scale(v.X).Add(r[1].Scale(v.Y)).Add(r[2].Scale(v.Z))
}
