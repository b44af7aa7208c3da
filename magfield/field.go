// Package magfield describes magnetic field maps.
package magfield

import (
	"math"

	"github.com/decibelcooper/gemdqm/geom"
)

// Field returns the field in Tesla at a global position in cm.
type Field interface {
	InTesla(p geom.Vec3) geom.Vec3
}

// Uniform is a constant field.
type Uniform struct {
	B geom.Vec3
}

func (f Uniform) InTesla(geom.Vec3) geom.Vec3 { return f.B }

// Solenoid is an axial field Bz inside a cylinder of the given radius and
// half length, and zero outside.
type Solenoid struct {
	Bz         float64
	Radius     float64
	HalfLength float64
}

// CMS approximates the field inside the CMS solenoid.
var CMS = Solenoid{Bz: 3.8, Radius: 295, HalfLength: 650}

func (f Solenoid) InTesla(p geom.Vec3) geom.Vec3 {
	if p.Perp() > f.Radius || math.Abs(p.Z) > f.HalfLength {
		return geom.Vec3{}
	}
	return geom.Vec3{Z: f.Bz}
}
