// Package gen provides generator-level particles read from HepMC or proio
// streams.
package gen

import (
	"go-hep.org/x/hep/fmom"

	"github.com/decibelcooper/gemdqm/geom"
)

// Final-state status code, as in HepMC.
const StatusFinal = 1

// Particle is a generated particle. Vertex is the production vertex in cm,
// Momentum is in GeV.
type Particle struct {
	Barcode  int          `yaml:"barcode"`
	Status   int          `yaml:"status"`
	PdgID    int          `yaml:"pdgId"`
	Vertex   geom.Vec3    `yaml:"vertex"`
	Momentum fmom.PxPyPzE `yaml:"momentum"`
}

// P3 returns the 3-momentum.
func (p *Particle) P3() geom.Vec3 {
	return geom.Vec3{X: p.Momentum.Px(), Y: p.Momentum.Py(), Z: p.Momentum.Pz()}
}

// Event is one generated event.
type Event struct {
	Number    int
	Particles []Particle
}

// Source yields generated events until io.EOF.
type Source interface {
	Next() (*Event, error)
}
