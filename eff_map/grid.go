package main

import (
	"math"

	"go-hep.org/x/hep/hbook"

	"github.com/decibelcooper/gemdqm/efficiency"
)

// EffGrid is a tag and probe efficiency map over CSC chamber and GEM eta
// partition. A segment with a hit in the other layer tags the eta
// partition; the probed layer passes if it has a hit too.
type EffGrid struct {
	hAll, hPass *hbook.H2D
	nChambers   int
	nRolls      int

	// Floor is the lowest efficiency reported, and that of empty cells.
	Floor float64
}

func NewEffGrid(nChambers, nRolls int) *EffGrid {
	return &EffGrid{
		hAll:      hbook.NewH2D(nChambers, 0.5, float64(nChambers)+0.5, nRolls, 0.5, float64(nRolls)+0.5),
		hPass:     hbook.NewH2D(nChambers, 0.5, float64(nChambers)+0.5, nRolls, 0.5, float64(nRolls)+0.5),
		nChambers: nChambers,
		nRolls:    nRolls,
	}
}

// Fill adds a record probing the given layer.
func (g *EffGrid) Fill(rec *efficiency.Record, layer int) {
	tagged, ieta, passed := rec.GEMHasLayer2, rec.GEMLayer2IEta, rec.GEMHasLayer1
	if layer == 2 {
		tagged, ieta, passed = rec.GEMHasLayer1, rec.GEMLayer1IEta, rec.GEMHasLayer2
	}
	if !tagged {
		return
	}

	x, y := float64(rec.CSCChamber), float64(ieta)
	g.hAll.Fill(x, y, 1)
	if passed {
		g.hPass.Fill(x, y, 1)
	}
}

func (g *EffGrid) Dims() (int, int) {
	return g.nChambers, g.nRolls
}

// Z returns the efficiency of a cell, clamped to [Floor, 1].
func (g *EffGrid) Z(i, j int) float64 {
	n := g.hAll.GridXYZ().Z(i, j)
	if n == 0 {
		return g.Floor
	}
	return math.Max(g.Floor, math.Min(1, g.hPass.GridXYZ().Z(i, j)/n))
}

func (g *EffGrid) X(i int) float64 {
	return g.hAll.GridXYZ().X(i)
}

func (g *EffGrid) Y(j int) float64 {
	return g.hAll.GridXYZ().Y(j)
}
