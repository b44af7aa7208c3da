// Package geometry provides the CSC and GEM geometry services: chamber and
// eta partition surfaces addressed by detector id.
package geometry

import (
	"github.com/decibelcooper/gemdqm/detid"
	"github.com/decibelcooper/gemdqm/geom"
)

// CSCChamber is a CSC chamber and its bounded surface.
type CSCChamber struct {
	ID      detid.CSCDetID  `yaml:"id"`
	Surface geom.BoundPlane `yaml:",inline"`
}

// CSCGeometry holds the CSC chambers in declaration order.
type CSCGeometry struct {
	chambers []*CSCChamber
	byID     map[detid.CSCDetID]*CSCChamber
}

// NewCSCGeometry indexes the given chambers. Layers are cleared from ids.
func NewCSCGeometry(chambers []*CSCChamber) *CSCGeometry {
	g := &CSCGeometry{byID: make(map[detid.CSCDetID]*CSCChamber, len(chambers))}
	for _, ch := range chambers {
		ch.ID = ch.ID.ChamberID()
		if ch.Surface.Rotation.IsZero() {
			ch.Surface.Rotation = geom.Identity
		}
		g.chambers = append(g.chambers, ch)
		g.byID[ch.ID] = ch
	}
	return g
}

// Chambers returns all chambers in declaration order.
func (g *CSCGeometry) Chambers() []*CSCChamber {
	return g.chambers
}

// Chamber returns the chamber containing id, if any.
func (g *CSCGeometry) Chamber(id detid.CSCDetID) (*CSCChamber, bool) {
	ch, ok := g.byID[id.ChamberID()]
	return ch, ok
}
