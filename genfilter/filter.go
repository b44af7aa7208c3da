// Package genfilter selects generated events with a final-state muon whose
// trajectory crosses the ME1/1 acceptance of either endcap.
package genfilter

import (
	"log/slog"

	"github.com/decibelcooper/gemdqm/edm"
	"github.com/decibelcooper/gemdqm/gen"
	"github.com/decibelcooper/gemdqm/geom"
	"github.com/decibelcooper/gemdqm/logging"
	"github.com/decibelcooper/gemdqm/propagation"
)

// Category is the logging category of the filter.
const Category = "ME11GenFilter"

const muonPdgID = 13

// Filter is an event filter holding the acceptance disks of the current
// geometry epoch.
type Filter struct {
	cfg Config
	msg *slog.Logger

	built bool
	epoch int
	disks []*geom.Disk

	seen     int
	accepted int
}

// New returns a filter. A nil logger selects the default one of the
// Category.
func New(cfg Config, msg *slog.Logger) *Filter {
	if msg == nil {
		msg = logging.New(Category)
	}
	return &Filter{cfg: cfg, msg: msg}
}

// BeginRun builds the disks from the CSC geometry of setup, unless they
// were already built for its epoch.
func (f *Filter) BeginRun(setup edm.Setup) {
	if f.built && f.epoch == setup.Epoch() {
		return
	}
	csc, ok := setup.CSCGeometry()
	if !ok {
		f.msg.Error("CSCGeometry is not valid", "epoch", setup.Epoch())
		f.built = false
		f.disks = nil
		return
	}
	f.disks = BuildDisks(csc, f.msg)
	f.epoch = setup.Epoch()
	f.built = true
}

// Disks returns the disks of the current epoch.
func (f *Filter) Disks() []*geom.Disk { return f.disks }

// Filter reports whether a final-state muon of the event reaches a disk.
func (f *Filter) Filter(evt edm.Event, setup edm.Setup) bool {
	f.seen++

	id := evt.ID()
	parts, ok := evt.GenParticles(f.cfg.GenParticleTag)
	if !ok {
		f.msg.Error("HepMCProduct is not valid", "run", id.Run, "event", id.Event)
		return false
	}
	if _, ok := setup.CSCGeometry(); !ok {
		f.msg.Error("CSCGeometry is not valid", "run", id.Run, "event", id.Event)
		return false
	}
	field, ok := setup.MagneticField()
	if !ok {
		f.msg.Error("MagneticField is not valid", "run", id.Run, "event", id.Event)
		return false
	}
	prop, ok := setup.Propagator(f.cfg.PropagatorTag)
	if !ok {
		f.msg.Error("Propagator is not valid", "run", id.Run, "event", id.Event, "label", f.cfg.PropagatorTag)
		return false
	}
	f.BeginRun(setup)

	for i := range parts {
		part := &parts[i]
		if part.Status != gen.StatusFinal || abs(part.PdgID) != muonPdgID {
			continue
		}

		fts := propagation.FreeTrajectoryState{
			Position: part.Vertex,
			Momentum: part.P3(),
			Charge:   charge(part.PdgID),
			Field:    field,
		}
		for _, disk := range f.disks {
			state := prop.Propagate(fts, disk.Plane)
			if !state.Valid {
				continue
			}
			if disk.Contains(state.Position) {
				f.msg.Debug("accepted",
					"run", id.Run,
					"event", id.Event,
					"barcode", part.Barcode,
					"z", disk.Position.Z,
				)
				f.accepted++
				return true
			}
		}
	}
	return false
}

// Seen returns the number of events given to Filter.
func (f *Filter) Seen() int { return f.seen }

// Accepted returns the number of events accepted by Filter.
func (f *Filter) Accepted() int { return f.accepted }

// charge follows the PDG convention: negative leptons have positive ids.
func charge(pdgID int) int {
	if pdgID > 0 {
		return -1
	}
	return +1
}

func abs(i int) int {
	if i < 0 {
		return -i
	}
	return i
}
