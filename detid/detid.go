// Package detid defines the muon detector identifiers used to address
// CSC, GEM and DT elements.
package detid

import "fmt"

// CSCDetID addresses a CSC chamber or, with a non-zero Layer, one of its
// layers. Endcap is 1 for the forward (+z) endcap and 2 for the backward one.
type CSCDetID struct {
	Endcap  int `yaml:"endcap"`
	Station int `yaml:"station"`
	Ring    int `yaml:"ring"`
	Chamber int `yaml:"chamber"`
	Layer   int `yaml:"layer"`
}

// IsME11 reports whether the id lies in ME1/1, either the ME1/1b (ring 1)
// or the ME1/1a (ring 4) part.
func (id CSCDetID) IsME11() bool {
	return id.Station == 1 && (id.Ring == 1 || id.Ring == 4)
}

// IsME1a reports whether the id lies in ME1/1a.
func (id CSCDetID) IsME1a() bool {
	return id.Station == 1 && id.Ring == 4
}

// ZEndcap returns +1 for the forward endcap and -1 for the backward one.
func (id CSCDetID) ZEndcap() int {
	if id.Endcap == 2 {
		return -1
	}
	return +1
}

// ChamberID returns the id with the layer cleared.
func (id CSCDetID) ChamberID() CSCDetID {
	id.Layer = 0
	return id
}

func (id CSCDetID) String() string {
	return fmt.Sprintf("ME%s%d/%d/%d L%d", endcapSign(id.ZEndcap()), id.Station, id.Ring, id.Chamber, id.Layer)
}

// GEMDetID addresses a GEM eta partition. Region is +1 or -1, Roll is the
// eta partition index.
type GEMDetID struct {
	Region  int `yaml:"region"`
	Ring    int `yaml:"ring"`
	Station int `yaml:"station"`
	Layer   int `yaml:"layer"`
	Chamber int `yaml:"chamber"`
	Roll    int `yaml:"roll"`
}

// ChamberID returns the id with layer and roll cleared.
func (id GEMDetID) ChamberID() GEMDetID {
	id.Layer = 0
	id.Roll = 0
	return id
}

func (id GEMDetID) String() string {
	return fmt.Sprintf("GE%s%d/%d/%d L%d R%d", endcapSign(id.Region), id.Station, id.Ring, id.Chamber, id.Layer, id.Roll)
}

// DTLayerID addresses a DT layer.
type DTLayerID struct {
	Wheel      int `yaml:"wheel"`
	Station    int `yaml:"station"`
	Sector     int `yaml:"sector"`
	SuperLayer int `yaml:"superlayer"`
	Layer      int `yaml:"layer"`
}

// ChamberID returns the id with superlayer and layer cleared.
func (id DTLayerID) ChamberID() DTLayerID {
	id.SuperLayer = 0
	id.Layer = 0
	return id
}

func (id DTLayerID) String() string {
	return fmt.Sprintf("MB%d/%d/%d SL%d L%d", id.Wheel, id.Station, id.Sector, id.SuperLayer, id.Layer)
}

func endcapSign(z int) string {
	if z < 0 {
		return "-"
	}
	return "+"
}
