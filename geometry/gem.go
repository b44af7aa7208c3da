package geometry

import (
	"math"

	"github.com/decibelcooper/gemdqm/detid"
	"github.com/decibelcooper/gemdqm/geom"
)

// GEMEtaPartition is a GEM readout sector. Its strips fan out from the apex
// of the trapezoid so each strip covers a constant fraction of the local
// width.
type GEMEtaPartition struct {
	ID      detid.GEMDetID  `yaml:"id"`
	NStrips int             `yaml:"nstrips"`
	Surface geom.BoundPlane `yaml:",inline"`
}

// Strip returns the fractional strip number at a local position, in
// [0, NStrips].
func (p *GEMEtaPartition) Strip(l geom.Vec3) float64 {
	w := p.Surface.Bounds.HalfWidthAt(l.Y)
	if w <= 0 || p.NStrips <= 0 {
		return 0
	}
	s := float64(p.NStrips) * (l.X + w) / (2 * w)
	return math.Max(0, math.Min(float64(p.NStrips), s))
}

// LocalPosition returns the local position of the centre of a fractional
// strip on the partition's central line.
func (p *GEMEtaPartition) LocalPosition(strip float64) geom.Vec3 {
	w := p.Surface.Bounds.HalfWidthAt(0)
	return geom.Vec3{X: -w + 2*w*strip/float64(p.NStrips)}
}

// GEMGeometry holds the GEM eta partitions.
type GEMGeometry struct {
	partitions []*GEMEtaPartition
	byID       map[detid.GEMDetID]*GEMEtaPartition
}

// NewGEMGeometry indexes the given eta partitions.
func NewGEMGeometry(partitions []*GEMEtaPartition) *GEMGeometry {
	g := &GEMGeometry{byID: make(map[detid.GEMDetID]*GEMEtaPartition, len(partitions))}
	for _, p := range partitions {
		if p.Surface.Rotation.IsZero() {
			p.Surface.Rotation = geom.Identity
		}
		g.partitions = append(g.partitions, p)
		g.byID[p.ID] = p
	}
	return g
}

// EtaPartitions returns all partitions in declaration order.
func (g *GEMGeometry) EtaPartitions() []*GEMEtaPartition {
	return g.partitions
}

// EtaPartition returns the partition with the given id, if any.
func (g *GEMGeometry) EtaPartition(id detid.GEMDetID) (*GEMEtaPartition, bool) {
	p, ok := g.byID[id]
	return p, ok
}
