package genfilter

import (
	"errors"

	"github.com/decibelcooper/gemdqm/propagation"
)

// Config holds the labels read by the filter.
type Config struct {
	GenParticleTag string `yaml:"genParticleTag"`
	PropagatorTag  string `yaml:"propagatorTag"`
}

func DefaultConfig() Config {
	return Config{
		GenParticleTag: "generator",
		PropagatorTag:  propagation.SteppingHelixLabel,
	}
}

func (cfg Config) Validate() error {
	if cfg.GenParticleTag == "" {
		return errors.New("genfilter: empty genParticleTag")
	}
	if cfg.PropagatorTag == "" {
		return errors.New("genfilter: empty propagatorTag")
	}
	return nil
}
