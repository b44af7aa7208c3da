// Package config reads the parameters of a job: the product labels and
// matching parameters of the analyzer and the filter, and the log setup.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/decibelcooper/gemdqm/efficiency"
	"github.com/decibelcooper/gemdqm/genfilter"
	"github.com/decibelcooper/gemdqm/logging"
)

// Logging selects the level and the handler format of the job logs.
type Logging struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Job is the configuration of a job. Keys are those of the module
// descriptions, e.g.
//
//	GEMCSCSegmentEfficiencyAnalyzer:
//	  gemRecHitTag: gemRecHits
//	  MatchParameters:
//	    TightMatchCSC: true
//	ME11GenFilter:
//	  propagatorTag: SteppingHelixPropagatorAlong
//	logging:
//	  level: debug
type Job struct {
	Analyzer efficiency.Config `yaml:"GEMCSCSegmentEfficiencyAnalyzer"`
	Filter   genfilter.Config  `yaml:"ME11GenFilter"`
	Logging  Logging           `yaml:"logging"`
}

// Default returns the configuration of the standard reconstruction.
func Default() Job {
	return Job{
		Analyzer: efficiency.DefaultConfig(),
		Filter:   genfilter.DefaultConfig(),
		Logging:  Logging{Level: "info", Format: "text"},
	}
}

// Load decodes a YAML job over the defaults. Unknown keys are rejected.
func Load(r io.Reader) (Job, error) {
	job := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&job); err != nil && !errors.Is(err, io.EOF) {
		return Job{}, fmt.Errorf("config: could not decode job: %w", err)
	}
	if err := job.Validate(); err != nil {
		return Job{}, err
	}
	return job, nil
}

// LoadFile decodes a YAML job file over the defaults.
func LoadFile(fname string) (Job, error) {
	f, err := os.Open(fname)
	if err != nil {
		return Job{}, fmt.Errorf("config: %w", err)
	}
	defer f.Close()
	return Load(f)
}

func (job Job) Validate() error {
	if err := job.Analyzer.Validate(); err != nil {
		return err
	}
	if err := job.Filter.Validate(); err != nil {
		return err
	}
	if _, err := job.Level(); err != nil {
		return err
	}
	switch job.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("config: invalid log format %q", job.Logging.Format)
	}
	return nil
}

// Level returns the parsed log level.
func (job Job) Level() (slog.Level, error) {
	return logging.ParseLevel(job.Logging.Level)
}

// InitLogging configures the default logger of the process.
func (job Job) InitLogging(w io.Writer) error {
	level, err := job.Level()
	if err != nil {
		return err
	}
	logging.Init(level, job.Logging.Format, w)
	return nil
}
