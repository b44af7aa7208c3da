// Package propagation extrapolates charged particle trajectories through a
// magnetic field onto surfaces.
package propagation

import (
	"github.com/decibelcooper/gemdqm/geom"
	"github.com/decibelcooper/gemdqm/magfield"
)

// kappa converts q*B to a momentum change per unit path length, in GeV/(T cm).
const kappa = 0.299792458e-2

// Tolerance is the distance in cm below which a state is considered on its
// target surface.
const Tolerance = 1e-6

// FreeTrajectoryState is a trajectory state not bound to any surface.
// Position is in cm, Momentum in GeV, Charge in units of e.
type FreeTrajectoryState struct {
	Position geom.Vec3
	Momentum geom.Vec3
	Charge   int
	Field    magfield.Field
}

// StateOnSurface is the result of a propagation. Position and Momentum are
// meaningless unless Valid.
type StateOnSurface struct {
	Valid    bool
	Position geom.Vec3
	Momentum geom.Vec3
	Path     float64
}

// Propagator propagates a state along its momentum onto a plane.
type Propagator interface {
	Propagate(fts FreeTrajectoryState, target geom.Plane) StateOnSurface
}

// Labels under which the propagators of this package are usually
// registered.
const (
	AnalyticalLabel    = "AnalyticalPropagator"
	SteppingHelixLabel = "SteppingHelixPropagatorAlong"
	StraightLineLabel  = "StraightLinePropagator"
)

func distance(target geom.Plane, p geom.Vec3) float64 {
	return target.Normal().Dot(p.Sub(target.Position))
}
