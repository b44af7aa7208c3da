package geometry

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

type description struct {
	CSC []*CSCChamber      `yaml:"csc"`
	GEM []*GEMEtaPartition `yaml:"gem"`
}

// Load reads a YAML geometry description.
//
//	csc:
//	  - id: {endcap: 1, station: 1, ring: 1, chamber: 1}
//	    position: {x: 0, y: 190, z: 585}
//	    bounds: {halfWidthBottom: 12, halfWidthTop: 23, halfLength: 70, halfThickness: 7}
//	gem:
//	  - id: {region: 1, ring: 1, station: 1, layer: 1, chamber: 1, roll: 1}
//	    nstrips: 384
//	    ...
//
// A missing rotation means a frame aligned with the global one.
func Load(r io.Reader) (*CSCGeometry, *GEMGeometry, error) {
	var desc description
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&desc); err != nil && err != io.EOF {
		return nil, nil, fmt.Errorf("geometry: could not decode description: %w", err)
	}

	for _, p := range desc.GEM {
		if p.NStrips <= 0 {
			return nil, nil, fmt.Errorf("geometry: eta partition %v has %d strips", p.ID, p.NStrips)
		}
	}

	return NewCSCGeometry(desc.CSC), NewGEMGeometry(desc.GEM), nil
}

// LoadFile reads a YAML geometry description from a file.
func LoadFile(fname string) (*CSCGeometry, *GEMGeometry, error) {
	f, err := os.Open(fname)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()
	return Load(f)
}
