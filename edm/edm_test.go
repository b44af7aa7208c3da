package edm

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/decibelcooper/gemdqm/detid"
	"github.com/decibelcooper/gemdqm/geom"
	"github.com/decibelcooper/gemdqm/propagation"
	"github.com/decibelcooper/gemdqm/reco"
)

const events = `
run: 1
event: 10
gemcscSegments:
  gemcscSegments: []
muons:
  muons:
    - p4: [3, 4, 12, 13]
      charge: -1
      standAlone: true
      outerTrack:
        cscHits:
          - id: {endcap: 1, station: 1, ring: 1, chamber: 4, layer: 2}
            localPosition: {x: 1.5, y: -2, z: 0}
---
run: 1
event: 11
cscSegments:
  cscSegments:
    - id: {endcap: 2, station: 1, ring: 4, chamber: 9}
      localPosition: {x: 0.25, y: 3, z: 0}
      chi2: 4
      dof: 8
`

func TestYAMLSource(t *testing.T) {
	src := NewYAMLSource(strings.NewReader(events))

	evt, err := src.Next()
	if err != nil {
		t.Fatal(err)
	}
	if evt.ID() != (ID{Run: 1, Event: 10}) {
		t.Errorf("id = %+v", evt.ID())
	}

	segs, ok := evt.GEMCSCSegments("gemcscSegments")
	if !ok || len(segs) != 0 {
		t.Errorf("present empty product: ok=%v len=%d", ok, len(segs))
	}
	if _, ok := evt.GEMRecHits("gemRecHits"); ok {
		t.Errorf("missing product reported present")
	}

	muons, ok := evt.Muons("muons")
	if !ok || len(muons) != 1 {
		t.Fatalf("muons: ok=%v len=%d", ok, len(muons))
	}
	mu := muons[0]
	if !mu.IsStandAloneMuon() || mu.Charge != -1 || mu.Pt() != 5 {
		t.Errorf("unexpected muon %+v", mu)
	}
	want := []reco.CSCRecHit{{
		ID:            detid.CSCDetID{Endcap: 1, Station: 1, Ring: 1, Chamber: 4, Layer: 2},
		LocalPosition: geom.Vec3{X: 1.5, Y: -2},
	}}
	if diff := cmp.Diff(want, mu.OuterTrack.CSCHits); diff != "" {
		t.Errorf("csc hits mismatch (-want +got):\n%s", diff)
	}

	evt, err = src.Next()
	if err != nil {
		t.Fatal(err)
	}
	csc, ok := evt.CSCSegments("cscSegments")
	if !ok || len(csc) != 1 || csc[0].ReducedChi2() != 0.5 {
		t.Errorf("csc segments: ok=%v %+v", ok, csc)
	}

	if _, err := src.Next(); err != io.EOF {
		t.Errorf("expected io.EOF, got %v", err)
	}
}

func TestYAMLSourceRejectsUnknownFields(t *testing.T) {
	src := NewYAMLSource(strings.NewReader("run: 1\nhits: {}\n"))
	if _, err := src.Next(); err == nil || err == io.EOF {
		t.Errorf("expected a decoding error, got %v", err)
	}
}

func TestYAMLRoundTrip(t *testing.T) {
	evt := &MemEvent{
		Run:    3,
		Number: 42,
		GEMRecHitProducts: map[string][]reco.GEMRecHit{
			"gemRecHits": {{
				ID:            detid.GEMDetID{Region: -1, Ring: 1, Station: 1, Layer: 2, Chamber: 5, Roll: 3},
				LocalPosition: geom.Vec3{X: -4.25},
				ClusterSize:   3,
				BX:            -1,
			}},
		},
	}

	var buf bytes.Buffer
	sink := NewYAMLSink(&buf)
	if err := sink.Write(evt); err != nil {
		t.Fatal(err)
	}
	if err := sink.Close(); err != nil {
		t.Fatal(err)
	}

	got, err := NewYAMLSource(&buf).Next()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(evt, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestMemSetup(t *testing.T) {
	var s MemSetup
	if _, ok := s.CSCGeometry(); ok {
		t.Errorf("nil CSC geometry reported present")
	}
	if _, ok := s.MagneticField(); ok {
		t.Errorf("nil field reported present")
	}
	if _, ok := s.Propagator(propagation.SteppingHelixLabel); ok {
		t.Errorf("propagator reported present without registry")
	}

	s.Propagators = DefaultPropagators()
	if _, ok := s.Propagator(propagation.SteppingHelixLabel); !ok {
		t.Errorf("default stepping propagator missing")
	}
}
