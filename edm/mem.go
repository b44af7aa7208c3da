package edm

import (
	"github.com/decibelcooper/gemdqm/gen"
	"github.com/decibelcooper/gemdqm/geometry"
	"github.com/decibelcooper/gemdqm/magfield"
	"github.com/decibelcooper/gemdqm/propagation"
	"github.com/decibelcooper/gemdqm/reco"
)

// MemEvent is an Event held in memory. Products are keyed by label.
type MemEvent struct {
	Run    int `yaml:"run"`
	Number int `yaml:"event"`

	GEMCSCSegmentProducts map[string][]reco.GEMCSCSegment `yaml:"gemcscSegments,omitempty"`
	GEMRecHitProducts     map[string][]reco.GEMRecHit     `yaml:"gemRecHits,omitempty"`
	CSCSegmentProducts    map[string][]reco.CSCSegment    `yaml:"cscSegments,omitempty"`
	DTSegmentProducts     map[string][]reco.DTSegment     `yaml:"dtSegments,omitempty"`
	MuonProducts          map[string][]reco.Muon          `yaml:"muons,omitempty"`
	MuonSimInfoProducts   map[string][]reco.MuonSimInfo   `yaml:"muonSimInfos,omitempty"`
	GenParticleProducts   map[string][]gen.Particle       `yaml:"genParticles,omitempty"`
}

func (evt *MemEvent) ID() ID { return ID{Run: evt.Run, Event: evt.Number} }

func (evt *MemEvent) GEMCSCSegments(label string) ([]reco.GEMCSCSegment, bool) {
	v, ok := evt.GEMCSCSegmentProducts[label]
	return v, ok
}

func (evt *MemEvent) GEMRecHits(label string) ([]reco.GEMRecHit, bool) {
	v, ok := evt.GEMRecHitProducts[label]
	return v, ok
}

func (evt *MemEvent) CSCSegments(label string) ([]reco.CSCSegment, bool) {
	v, ok := evt.CSCSegmentProducts[label]
	return v, ok
}

func (evt *MemEvent) DTSegments(label string) ([]reco.DTSegment, bool) {
	v, ok := evt.DTSegmentProducts[label]
	return v, ok
}

func (evt *MemEvent) Muons(label string) ([]reco.Muon, bool) {
	v, ok := evt.MuonProducts[label]
	return v, ok
}

func (evt *MemEvent) MuonSimInfos(label string) ([]reco.MuonSimInfo, bool) {
	v, ok := evt.MuonSimInfoProducts[label]
	return v, ok
}

func (evt *MemEvent) GenParticles(label string) ([]gen.Particle, bool) {
	v, ok := evt.GenParticleProducts[label]
	return v, ok
}

// PutGenParticles stores generated particles under label.
func (evt *MemEvent) PutGenParticles(label string, parts []gen.Particle) {
	if evt.GenParticleProducts == nil {
		evt.GenParticleProducts = make(map[string][]gen.Particle)
	}
	evt.GenParticleProducts[label] = parts
}

// MemSetup is a Setup whose services are plain fields. Nil services are
// reported missing.
type MemSetup struct {
	Run         int
	CSC         *geometry.CSCGeometry
	GEM         *geometry.GEMGeometry
	Field       magfield.Field
	Propagators map[string]propagation.Propagator
}

func (s *MemSetup) Epoch() int { return s.Run }

func (s *MemSetup) CSCGeometry() (*geometry.CSCGeometry, bool) {
	return s.CSC, s.CSC != nil
}

func (s *MemSetup) GEMGeometry() (*geometry.GEMGeometry, bool) {
	return s.GEM, s.GEM != nil
}

func (s *MemSetup) MagneticField() (magfield.Field, bool) {
	return s.Field, s.Field != nil
}

func (s *MemSetup) Propagator(label string) (propagation.Propagator, bool) {
	p, ok := s.Propagators[label]
	return p, ok && p != nil
}

// DefaultPropagators returns the propagators of package propagation under
// their usual labels.
func DefaultPropagators() map[string]propagation.Propagator {
	return map[string]propagation.Propagator{
		propagation.AnalyticalLabel:    propagation.AnalyticalHelix{},
		propagation.SteppingHelixLabel: propagation.DefaultSteppingHelix,
		propagation.StraightLineLabel:  propagation.StraightLine{},
	}
}
