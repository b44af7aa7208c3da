package gen

import (
	"io"
	"sort"

	"go-hep.org/x/hep/fmom"
	"go-hep.org/x/hep/hepmc"

	"github.com/decibelcooper/gemdqm/geom"
)

// FromHepMC converts a HepMC event, ordering particles by barcode. Lengths
// are converted to cm and momenta to GeV.
func FromHepMC(evt *hepmc.Event) *Event {
	lscale := 1.0
	if evt.LengthUnit == hepmc.MM {
		lscale = 0.1
	}
	pscale := 1.0
	if evt.MomentumUnit == hepmc.MEV {
		pscale = 1e-3
	}

	out := &Event{
		Number:    int(evt.EventNumber),
		Particles: make([]Particle, 0, len(evt.Particles)),
	}
	for _, p := range evt.Particles {
		var vtx geom.Vec3
		if p.ProdVertex != nil {
			pos := p.ProdVertex.Position
			vtx = geom.Vec3{X: pos[0], Y: pos[1], Z: pos[2]}.Scale(lscale)
		}
		mom := p.Momentum
		out.Particles = append(out.Particles, Particle{
			Barcode:  p.Barcode,
			Status:   p.Status,
			PdgID:    int(p.PdgID),
			Vertex:   vtx,
			Momentum: fmom.NewPxPyPzE(pscale*mom[0], pscale*mom[1], pscale*mom[2], pscale*mom[3]),
		})
	}
	sort.Slice(out.Particles, func(i, j int) bool {
		return out.Particles[i].Barcode < out.Particles[j].Barcode
	})
	return out
}

// HepMCSource decodes HepMC ASCII events.
type HepMCSource struct {
	dec *hepmc.Decoder
}

func NewHepMCSource(r io.Reader) *HepMCSource {
	return &HepMCSource{dec: hepmc.NewDecoder(r)}
}

func (src *HepMCSource) Next() (*Event, error) {
	var evt hepmc.Event
	if err := src.dec.Decode(&evt); err != nil {
		return nil, err
	}
	return FromHepMC(&evt), nil
}
