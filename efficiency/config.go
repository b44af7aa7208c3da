package efficiency

import (
	"errors"
	"fmt"

	"github.com/decibelcooper/gemdqm/segmatch"
)

// Config holds the product labels read by the analyzer.
type Config struct {
	GEMRecHitTag     string              `yaml:"gemRecHitTag"`
	CSCSegmentTag    string              `yaml:"cscSegmentTag"`
	GEMCSCSegmentTag string              `yaml:"gemcscSegmentTag"`
	RecoMuonTag      string              `yaml:"recoMuonTag"`
	MuonSimInfoTag   string              `yaml:"muonSimInfoTag"`
	MatchParameters  segmatch.Parameters `yaml:"MatchParameters"`
}

// DefaultConfig returns the labels of the standard reconstruction.
func DefaultConfig() Config {
	return Config{
		GEMRecHitTag:     "gemRecHits",
		CSCSegmentTag:    "cscSegments",
		GEMCSCSegmentTag: "gemcscSegments",
		RecoMuonTag:      "muons",
		MuonSimInfoTag:   "muonSimClassifier",
		MatchParameters: segmatch.Parameters{
			CSCSegments:   "cscSegments",
			DTSegments:    "dt4DSegments",
			DTRadius:      0.01,
			TightMatchDT:  false,
			TightMatchCSC: true,
		},
	}
}

// Validate checks that every label is set and the DT window is not negative.
func (cfg Config) Validate() error {
	for _, tag := range []struct {
		name, value string
	}{
		{"gemRecHitTag", cfg.GEMRecHitTag},
		{"cscSegmentTag", cfg.CSCSegmentTag},
		{"gemcscSegmentTag", cfg.GEMCSCSegmentTag},
		{"recoMuonTag", cfg.RecoMuonTag},
		{"muonSimInfoTag", cfg.MuonSimInfoTag},
		{"MatchParameters.CSCsegments", cfg.MatchParameters.CSCSegments},
		{"MatchParameters.DTsegments", cfg.MatchParameters.DTSegments},
	} {
		if tag.value == "" {
			return fmt.Errorf("efficiency: empty %s", tag.name)
		}
	}
	if cfg.MatchParameters.DTRadius < 0 {
		return errors.New("efficiency: negative MatchParameters.DTradius")
	}
	return nil
}
