package genfilter

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"

	"go-hep.org/x/hep/fmom"

	"github.com/decibelcooper/gemdqm/detid"
	"github.com/decibelcooper/gemdqm/edm"
	"github.com/decibelcooper/gemdqm/gen"
	"github.com/decibelcooper/gemdqm/geom"
	"github.com/decibelcooper/gemdqm/geometry"
	"github.com/decibelcooper/gemdqm/magfield"
	"github.com/decibelcooper/gemdqm/propagation"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func newSetup() *edm.MemSetup {
	csc, gem := geometry.NewIdealStation1(geometry.DefaultStation1)
	return &edm.MemSetup{
		Run:         1,
		CSC:         csc,
		GEM:         gem,
		Field:       magfield.CMS,
		Propagators: edm.DefaultPropagators(),
	}
}

func newEvent(parts ...gen.Particle) *edm.MemEvent {
	evt := &edm.MemEvent{Run: 1, Number: 1}
	evt.PutGenParticles("generator", parts)
	return evt
}

func muon(pdgID int, px, py, pz float64) gen.Particle {
	return gen.Particle{
		Barcode:  1,
		Status:   gen.StatusFinal,
		PdgID:    pdgID,
		Momentum: fmom.NewPxPyPzE(px, py, pz, 0),
	}
}

func chamber(endcap, ring int, pos geom.Vec3, bounds geom.TrapezoidBounds) *geometry.CSCChamber {
	return &geometry.CSCChamber{
		ID:      detid.CSCDetID{Endcap: endcap, Station: 1, Ring: ring, Chamber: 1},
		Surface: geom.BoundPlane{Plane: geom.Plane{Position: pos}, Bounds: bounds},
	}
}

func trap(hwb, hwt, hl, ht float64) geom.TrapezoidBounds {
	return geom.TrapezoidBounds{HalfWidthBottom: hwb, HalfWidthTop: hwt, HalfLength: hl, HalfThickness: ht}
}

func TestDiskIsUnionOfChambers(t *testing.T) {
	a := chamber(1, 1, geom.Vec3{Y: 150, Z: 600}, trap(10, 20, 50, 1))
	b := chamber(1, 4, geom.Vec3{Y: 220, Z: 610}, trap(15, 25, 40, 2))
	me12 := chamber(1, 2, geom.Vec3{Y: 400, Z: 700}, trap(30, 40, 100, 2))
	other := chamber(2, 1, geom.Vec3{Y: 150, Z: -600}, trap(10, 20, 50, 1))
	csc := geometry.NewCSCGeometry([]*geometry.CSCChamber{other, a, me12, b})

	disks := BuildDisks(csc, discard)
	if len(disks) != 2 {
		t.Fatalf("got %d disks, want 2", len(disks))
	}

	d := disks[0]
	if d.Position.Z != 600 {
		t.Errorf("endcap 1 disk at z=%v, want 600", d.Position.Z)
	}
	r := a.Surface.RSpan().Union(b.Surface.RSpan())
	want := geom.DiskBounds{RMin: r.Min, RMax: r.Max, ZMin: -1, ZMax: 12}
	if d.Bounds != want {
		t.Errorf("endcap 1 bounds = %v, want %v", d.Bounds, want)
	}
	if d.Bounds.RMin >= b.Surface.RSpan().Min || d.Bounds.RMax <= a.Surface.RSpan().Max {
		t.Errorf("bounds %v do not enclose both chambers", d.Bounds)
	}

	if z := disks[1].Position.Z; z != -600 {
		t.Errorf("endcap 2 disk at z=%v, want -600", z)
	}
}

func TestInvertedEnvelopeIsSkipped(t *testing.T) {
	var buf bytes.Buffer
	msg := slog.New(slog.NewTextHandler(&buf, nil))

	disks := buildDisks([]envelope{
		{endcap: 1, z: 600, r: geom.Span{Min: 100, Max: 260}, zs: geom.Span{Min: 590, Max: 620}},
		{endcap: 2, z: -600, r: geom.Span{Min: 260, Max: 100}, zs: geom.Span{Min: -620, Max: -590}},
	}, msg)

	if len(disks) != 1 {
		t.Fatalf("got %d disks, want 1", len(disks))
	}
	if z := disks[0].Position.Z; z != 600 {
		t.Errorf("kept disk at z=%v, want 600", z)
	}
	if !strings.Contains(buf.String(), "level=ERROR") || !strings.Contains(buf.String(), "endcap=2") {
		t.Errorf("missing error log, got %q", buf.String())
	}
}

func TestIdealStation1Disks(t *testing.T) {
	f := New(DefaultConfig(), discard)
	f.BeginRun(newSetup())

	disks := f.Disks()
	if len(disks) != 2 {
		t.Fatalf("got %d disks, want 2", len(disks))
	}
	for i, sign := range []float64{+1, -1} {
		d := disks[i]
		if d.Position.Z != sign*geometry.DefaultStation1.CSCZFar {
			t.Errorf("disk %d at z=%v", i, d.Position.Z)
		}
		if d.Bounds.RMin < geometry.DefaultStation1.CSCRInner || d.Bounds.RMax < geometry.DefaultStation1.CSCROuter {
			t.Errorf("disk %d bounds %v", i, d.Bounds)
		}
	}
}

func TestFilter(t *testing.T) {
	for _, tc := range []struct {
		name  string
		parts []gen.Particle
		want  bool
	}{
		{"no particles", nil, false},
		{"forward mu-", []gen.Particle{muon(13, 20, 0, 66)}, true},
		{"backward mu+", []gen.Particle{muon(-13, 0, -20, -66)}, true},
		{"central muon", []gen.Particle{muon(13, 20, 0, 10)}, false},
		{"forward electron", []gen.Particle{muon(11, 20, 0, 66)}, false},
		{"forward non-final muon", []gen.Particle{func() gen.Particle {
			p := muon(13, 20, 0, 66)
			p.Status = 2
			return p
		}()}, false},
		{"second muon accepted", []gen.Particle{muon(13, 20, 0, 10), muon(-13, 20, 0, 66)}, true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			f := New(DefaultConfig(), discard)
			if got := f.Filter(newEvent(tc.parts...), newSetup()); got != tc.want {
				t.Errorf("Filter = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestFilterLandingAtDiskOrigin(t *testing.T) {
	setup := newSetup()
	f := New(DefaultConfig(), discard)
	f.BeginRun(setup)

	disk, err := geom.NewDisk(600, geom.DiskBounds{RMin: 0, RMax: 300, ZMin: -10, ZMax: 10})
	if err != nil {
		t.Fatal(err)
	}
	f.disks = []*geom.Disk{disk}

	if !f.Filter(newEvent(muon(13, 0, 0, 50)), setup) {
		t.Errorf("muon along the axis not accepted")
	}
}

func TestFilterMissingInput(t *testing.T) {
	for _, tc := range []struct {
		name  string
		event func(*edm.MemEvent)
		setup func(*edm.MemSetup)
	}{
		{name: "gen particles", event: func(evt *edm.MemEvent) { evt.GenParticleProducts = nil }},
		{name: "csc geometry", setup: func(s *edm.MemSetup) { s.CSC = nil }},
		{name: "magnetic field", setup: func(s *edm.MemSetup) { s.Field = nil }},
		{name: "propagator", setup: func(s *edm.MemSetup) { delete(s.Propagators, propagation.SteppingHelixLabel) }},
	} {
		t.Run(tc.name, func(t *testing.T) {
			evt := newEvent(muon(13, 20, 0, 66))
			setup := newSetup()
			if tc.event != nil {
				tc.event(evt)
			}
			if tc.setup != nil {
				tc.setup(setup)
			}

			f := New(DefaultConfig(), discard)
			if f.Filter(evt, setup) {
				t.Errorf("event accepted")
			}
			if f.Seen() != 1 || f.Accepted() != 0 {
				t.Errorf("seen=%d accepted=%d", f.Seen(), f.Accepted())
			}
		})
	}
}

func TestFilterMissingGeometryLoggedOnce(t *testing.T) {
	var buf bytes.Buffer
	f := New(DefaultConfig(), slog.New(slog.NewTextHandler(&buf, nil)))

	setup := newSetup()
	setup.CSC = nil
	if f.Filter(newEvent(muon(13, 20, 0, 66)), setup) {
		t.Errorf("event accepted")
	}
	if n := strings.Count(buf.String(), "CSCGeometry is not valid"); n != 1 {
		t.Errorf("got %d geometry errors, want 1:\n%s", n, buf.String())
	}
}

type countingPropagator struct {
	propagation.Propagator
	n int
}

func (p *countingPropagator) Propagate(fts propagation.FreeTrajectoryState, target geom.Plane) propagation.StateOnSurface {
	p.n++
	return p.Propagator.Propagate(fts, target)
}

func TestFilterStopsAtFirstSuccess(t *testing.T) {
	prop := &countingPropagator{Propagator: propagation.DefaultSteppingHelix}
	setup := newSetup()
	setup.Propagators = map[string]propagation.Propagator{"counting": prop}

	cfg := DefaultConfig()
	cfg.PropagatorTag = "counting"
	f := New(cfg, discard)

	evt := newEvent(muon(13, 20, 0, 66), muon(-13, 0, 20, 66))
	if !f.Filter(evt, setup) {
		t.Fatalf("event not accepted")
	}
	if prop.n != 1 {
		t.Errorf("got %d propagations, want 1", prop.n)
	}
	if f.Seen() != 1 || f.Accepted() != 1 {
		t.Errorf("seen=%d accepted=%d", f.Seen(), f.Accepted())
	}
}

func TestDisksRebuiltOnEpochChange(t *testing.T) {
	setup := newSetup()
	f := New(DefaultConfig(), discard)
	f.BeginRun(setup)
	if len(f.Disks()) != 2 {
		t.Fatalf("got %d disks, want 2", len(f.Disks()))
	}

	setup.CSC = geometry.NewCSCGeometry([]*geometry.CSCChamber{
		chamber(1, 1, geom.Vec3{Y: 150, Z: 600}, trap(10, 20, 50, 1)),
	})
	f.Filter(newEvent(), setup)
	if len(f.Disks()) != 2 {
		t.Errorf("disks rebuilt within the same epoch")
	}

	setup.Run = 2
	f.Filter(newEvent(), setup)
	if len(f.Disks()) != 1 {
		t.Errorf("got %d disks after epoch change, want 1", len(f.Disks()))
	}
}

func TestConfigValidate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("default config: %v", err)
	}
	cfg := DefaultConfig()
	cfg.PropagatorTag = ""
	if err := cfg.Validate(); err == nil {
		t.Errorf("empty propagator tag accepted")
	}
}
