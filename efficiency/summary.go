package efficiency

import (
	"math"

	"go-hep.org/x/hep/hbook"
)

// Binning of the summary histograms.
const (
	NChambers = 36
	NEtaBins  = 20
	MinAbsEta = 1.5
	MaxAbsEta = 2.3
)

// Summary accumulates, for segments matched with a standalone muon, the
// number of segments and the number with a GEM hit in each layer, versus
// CSC chamber and muon |eta|.
type Summary struct {
	Chamber       *hbook.H1D
	ChamberLayer1 *hbook.H1D
	ChamberLayer2 *hbook.H1D

	Eta       *hbook.H1D
	EtaLayer1 *hbook.H1D
	EtaLayer2 *hbook.H1D
}

func NewSummary() *Summary {
	return &Summary{
		Chamber:       hbook.NewH1D(NChambers, 0.5, NChambers+0.5),
		ChamberLayer1: hbook.NewH1D(NChambers, 0.5, NChambers+0.5),
		ChamberLayer2: hbook.NewH1D(NChambers, 0.5, NChambers+0.5),

		Eta:       hbook.NewH1D(NEtaBins, MinAbsEta, MaxAbsEta),
		EtaLayer1: hbook.NewH1D(NEtaBins, MinAbsEta, MaxAbsEta),
		EtaLayer2: hbook.NewH1D(NEtaBins, MinAbsEta, MaxAbsEta),
	}
}

// Append fills the histograms; it makes a Summary usable as a Writer.
func (s *Summary) Append(rec *Record) error {
	if !rec.IsMatchedWithMuon {
		return nil
	}

	chamber := float64(rec.CSCChamber)
	eta := math.Abs(float64(rec.MuonEta))

	s.Chamber.Fill(chamber, 1)
	s.Eta.Fill(eta, 1)
	if rec.GEMHasLayer1 {
		s.ChamberLayer1.Fill(chamber, 1)
		s.EtaLayer1.Fill(eta, 1)
	}
	if rec.GEMHasLayer2 {
		s.ChamberLayer2.Fill(chamber, 1)
		s.EtaLayer2.Fill(eta, 1)
	}
	return nil
}

// Point is an efficiency measurement at the centre of a bin.
type Point struct {
	X, XErr float64
	Y, YErr float64
}

// Ratio divides pass by total bin by bin, with binomial errors. Both
// histograms must share the binning given by n, xmin and xmax. Empty total
// bins give a zero efficiency with no error.
func Ratio(pass, total *hbook.H1D, n int, xmin, xmax float64) []Point {
	halfWidth := 0.5 * (xmax - xmin) / float64(n)
	sigma := halfWidth / math.Sqrt(3.)

	points := make([]Point, n)
	for i := range points {
		totalX, totalY := total.XY(i)
		_, passY := pass.XY(i)

		points[i].X = totalX + halfWidth
		points[i].XErr = sigma
		if totalY > 0 {
			eff := passY / totalY
			points[i].Y = eff
			points[i].YErr = math.Sqrt((1 - eff) * passY / math.Pow(totalY, 2))
		}
	}
	return points
}

// Writers fans records out to several writers.
type Writers []Writer

func (ws Writers) Append(rec *Record) error {
	for _, w := range ws {
		if err := w.Append(rec); err != nil {
			return err
		}
	}
	return nil
}
