package main

import (
	"testing"

	"github.com/decibelcooper/gemdqm/efficiency"
)

func probe(chamber, ieta int, hasLayer1 bool) *efficiency.Record {
	rec := efficiency.NewRecord()
	rec.CSCChamber = chamber
	rec.GEMHasLayer2 = true
	rec.GEMLayer2IEta = ieta
	rec.GEMHasLayer1 = hasLayer1
	if hasLayer1 {
		rec.GEMLayer1IEta = ieta
	}
	return rec
}

func TestEffGrid(t *testing.T) {
	g := NewEffGrid(efficiency.NChambers, 8)

	g.Fill(probe(3, 5, true), 1)
	g.Fill(probe(3, 5, true), 1)
	g.Fill(probe(3, 5, true), 1)
	g.Fill(probe(3, 5, false), 1)

	untagged := efficiency.NewRecord()
	untagged.CSCChamber = 3
	untagged.GEMHasLayer1 = true
	untagged.GEMLayer1IEta = 5
	g.Fill(untagged, 1)

	if nx, ny := g.Dims(); nx != efficiency.NChambers || ny != 8 {
		t.Fatalf("dims = %d, %d", nx, ny)
	}
	if got := g.Z(2, 4); got != 0.75 {
		t.Errorf("efficiency = %v, want 0.75", got)
	}
	if got := g.X(2); got != 3 {
		t.Errorf("X(2) = %v, want 3", got)
	}
	if got := g.Y(4); got != 5 {
		t.Errorf("Y(4) = %v, want 5", got)
	}

	g.Floor = 0.8
	if got := g.Z(2, 4); got != 0.8 {
		t.Errorf("clamped efficiency = %v, want 0.8", got)
	}
	if got := g.Z(0, 0); got != 0.8 {
		t.Errorf("empty cell = %v, want 0.8", got)
	}
}
