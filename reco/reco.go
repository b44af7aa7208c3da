// Package reco defines the reconstructed muon-system products consumed by
// the analyzers: rec hits, segments, tracks and muons.
package reco

import (
	"go-hep.org/x/hep/fmom"

	"github.com/decibelcooper/gemdqm/detid"
	"github.com/decibelcooper/gemdqm/geom"
)

// CSCRecHit is a 2D hit in a CSC layer.
type CSCRecHit struct {
	ID            detid.CSCDetID `yaml:"id"`
	LocalPosition geom.Vec3      `yaml:"localPosition"`
}

// CSCSegment is a straight-line fit of the rec hits of one CSC chamber.
type CSCSegment struct {
	ID             detid.CSCDetID `yaml:"id"`
	LocalPosition  geom.Vec3      `yaml:"localPosition"`
	LocalDirection geom.Vec3      `yaml:"localDirection"`
	Chi2           float64        `yaml:"chi2"`
	DOF            int            `yaml:"dof"`
	RecHits        []CSCRecHit    `yaml:"recHits"`
}

// ReducedChi2 returns chi2/dof in single precision.
func (s *CSCSegment) ReducedChi2() float32 {
	return float32(s.Chi2) / float32(s.DOF)
}

// GEMRecHit is a GEM strip cluster.
type GEMRecHit struct {
	ID            detid.GEMDetID `yaml:"id"`
	LocalPosition geom.Vec3      `yaml:"localPosition"`
	ClusterSize   int            `yaml:"clusterSize"`
	BX            int            `yaml:"bx"`
}

// GEMCSCSegment is a CSC segment refitted together with the GEM hits found
// along its extrapolation.
type GEMCSCSegment struct {
	CSCSegment CSCSegment  `yaml:"cscSegment"`
	GEMRecHits []GEMRecHit `yaml:"gemRecHits"`
	Chi2       float64     `yaml:"chi2"`
	DOF        int         `yaml:"dof"`
}

// CSCDetID is the id of the underlying CSC chamber.
func (s *GEMCSCSegment) CSCDetID() detid.CSCDetID {
	return s.CSCSegment.ID
}

// CSCRecHits returns the CSC hits of the underlying segment.
func (s *GEMCSCSegment) CSCRecHits() []CSCRecHit {
	return s.CSCSegment.RecHits
}

// ReducedChi2 returns chi2/dof of the combined fit in single precision.
func (s *GEMCSCSegment) ReducedChi2() float32 {
	return float32(s.Chi2) / float32(s.DOF)
}

// DTRecHit is a hit in a DT layer.
type DTRecHit struct {
	ID            detid.DTLayerID `yaml:"id"`
	LocalPosition geom.Vec3       `yaml:"localPosition"`
}

// DTSegment is a segment in a DT chamber.
type DTSegment struct {
	ID            detid.DTLayerID `yaml:"id"`
	LocalPosition geom.Vec3       `yaml:"localPosition"`
	RecHits       []DTRecHit      `yaml:"recHits"`
}

// Track is a muon-system track, described by the hits it was built from.
type Track struct {
	CSCHits []CSCRecHit `yaml:"cscHits"`
	DTHits  []DTRecHit  `yaml:"dtHits"`
}

// Muon is a reconstructed muon candidate. OuterTrack is the standalone
// muon-system track, nil if the muon has none.
type Muon struct {
	P4         fmom.PxPyPzE `yaml:"p4"`
	Charge     int          `yaml:"charge"`
	StandAlone bool         `yaml:"standAlone"`
	OuterTrack *Track       `yaml:"outerTrack"`
}

// IsStandAloneMuon reports whether the muon was reconstructed in the muon
// system alone.
func (m *Muon) IsStandAloneMuon() bool {
	return m.StandAlone && m.OuterTrack != nil
}

func (m *Muon) Pt() float64 { return m.P4.Pt() }
func (m *Muon) Eta() float64 { return m.P4.Eta() }
func (m *Muon) Phi() float64 { return m.P4.Phi() }

// MuonSimInfo is the simulation-based classification of a muon.
type MuonSimInfo struct {
	Flavour       int `yaml:"flavour"`
	PdgID         int `yaml:"pdgId"`
	PrimaryClass  int `yaml:"primaryClass"`
	MotherFlavour int `yaml:"motherFlavour"`
	MotherPdgID   int `yaml:"motherPdgId"`
}
