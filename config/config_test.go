package config

import (
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoadEmpty(t *testing.T) {
	job, err := Load(strings.NewReader(""))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(Default(), job); diff != "" {
		t.Errorf("empty job mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	job, err := Load(strings.NewReader(`
GEMCSCSegmentEfficiencyAnalyzer:
  recoMuonTag: standAloneMuons
  MatchParameters:
    TightMatchCSC: false
ME11GenFilter:
  propagatorTag: AnalyticalPropagator
logging:
  level: debug
  format: json
`))
	if err != nil {
		t.Fatal(err)
	}

	want := Default()
	want.Analyzer.RecoMuonTag = "standAloneMuons"
	want.Analyzer.MatchParameters.TightMatchCSC = false
	want.Filter.PropagatorTag = "AnalyticalPropagator"
	want.Logging = Logging{Level: "debug", Format: "json"}
	if diff := cmp.Diff(want, job); diff != "" {
		t.Errorf("job mismatch (-want +got):\n%s", diff)
	}

	level, err := job.Level()
	if err != nil {
		t.Fatal(err)
	}
	if level != slog.LevelDebug {
		t.Errorf("level = %v", level)
	}
}

func TestLoadRejects(t *testing.T) {
	for _, tc := range []struct {
		name string
		yaml string
	}{
		{"unknown key", "GEMCSCSegmentEfficiencyAnalyzer:\n  patMuonTag: muons\n"},
		{"empty tag", "ME11GenFilter:\n  genParticleTag: \"\"\n"},
		{"negative radius", "GEMCSCSegmentEfficiencyAnalyzer:\n  MatchParameters:\n    DTradius: -1\n"},
		{"bad level", "logging:\n  level: loud\n"},
		{"bad format", "logging:\n  format: xml\n"},
		{"not yaml", "[\n"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Load(strings.NewReader(tc.yaml)); err == nil {
				t.Errorf("no error")
			}
		})
	}
}
