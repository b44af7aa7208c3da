package gen

import (
	"io"
	"math"

	"github.com/proio-org/go-proio"
	"github.com/proio-org/go-proio-pb/model/eic"
	"go-hep.org/x/hep/fmom"

	"github.com/decibelcooper/gemdqm/geom"
)

// StableTag is the proio tag of final-state generated particles.
const StableTag = "GenStable"

// ProioSource reads eic.Particle entries from a proio stream. Particles
// tagged StableTag are final state; lengths are converted from mm to cm.
type ProioSource struct {
	reader *proio.Reader
	events <-chan *proio.Event
	n      int
}

// OpenProio opens a proio file.
func OpenProio(fname string) (*ProioSource, error) {
	reader, err := proio.Open(fname)
	if err != nil {
		return nil, err
	}
	return newProioSource(reader), nil
}

// NewProioSource reads a proio stream from r.
func NewProioSource(r io.Reader) *ProioSource {
	return newProioSource(proio.NewReader(r))
}

func newProioSource(reader *proio.Reader) *ProioSource {
	return &ProioSource{reader: reader, events: reader.ScanEvents()}
}

func (src *ProioSource) Next() (*Event, error) {
	event, ok := <-src.events
	if !ok {
		return nil, io.EOF
	}

	out := &Event{Number: src.n}
	src.n++

	for _, id := range event.TaggedEntries(StableTag) {
		part, ok := event.GetEntry(id).(*eic.Particle)
		if !ok {
			continue
		}
		out.Particles = append(out.Particles, fromEIC(id, part))
	}
	return out, nil
}

// Close stops the scan and closes the file opened by OpenProio.
func (src *ProioSource) Close() error {
	src.reader.Close()
	return nil
}

func fromEIC(id uint64, part *eic.Particle) Particle {
	vtx := part.GetVertex()
	p := part.GetP()
	px, py, pz := float64(p.GetX()), float64(p.GetY()), float64(p.GetZ())
	m := float64(part.GetMass())
	return Particle{
		Barcode:  int(id),
		Status:   StatusFinal,
		PdgID:    int(part.GetPdg()),
		Vertex:   geom.Vec3{X: vtx.GetX(), Y: vtx.GetY(), Z: vtx.GetZ()}.Scale(0.1),
		Momentum: fmom.NewPxPyPzE(px, py, pz, math.Sqrt(px*px+py*py+pz*pz+m*m)),
	}
}
