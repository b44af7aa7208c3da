package propagation

import (
	"math"

	"github.com/decibelcooper/gemdqm/geom"
)

// AnalyticalHelix propagates on a helix whose axis is along z, using the
// axial field at the starting position. The crossing with the target plane
// is found with Newton iterations, exact after one for planes of constant z.
type AnalyticalHelix struct {
	MaxIterations int
}

func (h AnalyticalHelix) Propagate(fts FreeTrajectoryState, target geom.Plane) StateOnSurface {
	p := fts.Momentum.Mag()
	if p == 0 {
		return StateOnSurface{}
	}

	var bz float64
	if fts.Field != nil {
		bz = fts.Field.InTesla(fts.Position).Z
	}
	hx := helix{
		r0: fts.Position,
		p0: fts.Momentum,
		p:  p,
		a:  -float64(fts.Charge) * kappa * bz,
	}

	maxIter := h.MaxIterations
	if maxIter <= 0 {
		maxIter = 20
	}

	n := target.Normal()
	s := 0.0
	for i := 0; i < maxIter; i++ {
		r, t := hx.at(s)
		d := distance(target, r)
		if math.Abs(d) < Tolerance {
			if s < 0 {
				return StateOnSurface{}
			}
			return StateOnSurface{Valid: true, Position: r, Momentum: t.Scale(p), Path: s}
		}
		vn := n.Dot(t)
		if vn == 0 {
			return StateOnSurface{}
		}
		s -= d / vn
	}
	return StateOnSurface{}
}

type helix struct {
	r0 geom.Vec3
	p0 geom.Vec3
	p  float64
	a  float64
}

// at returns the position and unit direction after a path length s.
func (hx helix) at(s float64) (geom.Vec3, geom.Vec3) {
	if math.Abs(hx.a) < 1e-12 {
		t := hx.p0.Scale(1 / hx.p)
		return hx.r0.Add(t.Scale(s)), t
	}

	theta := hx.a * s / hx.p
	sin, cos := math.Sincos(theta)
	px, py, pz := hx.p0.X, hx.p0.Y, hx.p0.Z
	r := geom.Vec3{
		X: hx.r0.X + (px*sin-py*(1-cos))/hx.a,
		Y: hx.r0.Y + (py*sin+px*(1-cos))/hx.a,
		Z: hx.r0.Z + pz*s/hx.p,
	}
	t := geom.Vec3{
		X: px*cos - py*sin,
		Y: px*sin + py*cos,
		Z: pz,
	}.Scale(1 / hx.p)
	return r, t
}

// StraightLine ignores the field.
type StraightLine struct{}

func (StraightLine) Propagate(fts FreeTrajectoryState, target geom.Plane) StateOnSurface {
	fts.Charge = 0
	return AnalyticalHelix{MaxIterations: 2}.Propagate(fts, target)
}
