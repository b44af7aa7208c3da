// Package edm is the boundary between the analysis modules and the event
// processing runtime: typed, label-addressed access to event products and
// to the geometry, field and propagator services of the current run.
package edm

import (
	"github.com/decibelcooper/gemdqm/gen"
	"github.com/decibelcooper/gemdqm/geometry"
	"github.com/decibelcooper/gemdqm/magfield"
	"github.com/decibelcooper/gemdqm/propagation"
	"github.com/decibelcooper/gemdqm/reco"
)

// ID identifies an event.
type ID struct {
	Run   int
	Event int
}

// Event gives access to the products of one event. Getters report false
// when no product exists under the label; an empty product is reported
// with true.
type Event interface {
	ID() ID

	GEMCSCSegments(label string) ([]reco.GEMCSCSegment, bool)
	GEMRecHits(label string) ([]reco.GEMRecHit, bool)
	CSCSegments(label string) ([]reco.CSCSegment, bool)
	DTSegments(label string) ([]reco.DTSegment, bool)
	Muons(label string) ([]reco.Muon, bool)
	MuonSimInfos(label string) ([]reco.MuonSimInfo, bool)
	GenParticles(label string) ([]gen.Particle, bool)
}

// Setup gives access to the services valid for the current run. Epoch
// changes whenever the geometry does.
type Setup interface {
	Epoch() int

	CSCGeometry() (*geometry.CSCGeometry, bool)
	GEMGeometry() (*geometry.GEMGeometry, bool)
	MagneticField() (magfield.Field, bool)
	Propagator(label string) (propagation.Propagator, bool)
}
