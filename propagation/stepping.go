package propagation

import (
	"math"

	"github.com/decibelcooper/gemdqm/geom"
)

// SteppingHelix integrates the equation of motion through the field with
// fourth-order Runge-Kutta steps. When the straight-line distance to the
// target falls below one step, the next step is resized to land on it.
// Propagation fails beyond MaxPath.
type SteppingHelix struct {
	Step    float64 // cm
	MaxPath float64 // cm
}

// DefaultSteppingHelix suits muons crossing a solenoid into the endcaps.
var DefaultSteppingHelix = SteppingHelix{Step: 5, MaxPath: 3000}

func (sh SteppingHelix) Propagate(fts FreeTrajectoryState, target geom.Plane) StateOnSurface {
	p := fts.Momentum.Mag()
	if p == 0 || sh.Step <= 0 {
		return StateOnSurface{}
	}

	c := float64(fts.Charge) * kappa / p
	n := target.Normal()

	r := fts.Position
	t := fts.Momentum.Unit()
	s := 0.0

	maxSteps := int(sh.MaxPath/sh.Step) + 100
	for i := 0; i < maxSteps && s <= sh.MaxPath; i++ {
		d := distance(target, r)
		if math.Abs(d) < Tolerance {
			return StateOnSurface{Valid: true, Position: r, Momentum: t.Scale(p), Path: s}
		}

		h := sh.Step
		if vn := n.Dot(t); vn != 0 {
			if sl := -d / vn; math.Abs(sl) < sh.Step && s+sl >= 0 {
				h = sl
			}
		}

		r, t = sh.rk4(fts, c, r, t, h)
		s += h
	}
	return StateOnSurface{}
}

func (sh SteppingHelix) rk4(fts FreeTrajectoryState, c float64, r, t geom.Vec3, h float64) (geom.Vec3, geom.Vec3) {
	if c == 0 || fts.Field == nil {
		return r.Add(t.Scale(h)), t
	}

	deriv := func(r, t geom.Vec3) geom.Vec3 {
		return t.Cross(fts.Field.InTesla(r)).Scale(c)
	}

	k1r, k1t := t, deriv(r, t)

	t2 := t.Add(k1t.Scale(h / 2))
	k2r, k2t := t2, deriv(r.Add(k1r.Scale(h/2)), t2)

	t3 := t.Add(k2t.Scale(h / 2))
	k3r, k3t := t3, deriv(r.Add(k2r.Scale(h/2)), t3)

	t4 := t.Add(k3t.Scale(h))
	k4r, k4t := t4, deriv(r.Add(k3r.Scale(h)), t4)

	dr := k1r.Add(k2r.Scale(2)).Add(k3r.Scale(2)).Add(k4r).Scale(h / 6)
	dt := k1t.Add(k2t.Scale(2)).Add(k3t.Scale(2)).Add(k4t).Scale(h / 6)

	return r.Add(dr), t.Add(dt).Unit()
}
