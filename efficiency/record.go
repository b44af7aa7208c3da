package efficiency

// Record is one row of the efficiency table, filled for each ME1/1
// GEM-CSC segment. Field order is column order.
type Record struct {
	GEMCSCReducedChi2 float32
	GEMCSCGEMHitSize  int
	GEMCSCCSCHitSize  int
	GEMCSCRegion      int

	CSCChamber     int
	CSCIsME1a      bool
	CSCReducedChi2 float32

	GEMChamber int

	GEMHasLayer1   bool
	GEMLayer1IEta  int
	GEMLayer1Strip int
	GEMLayer1CLS   int
	GEMLayer1BX    int

	GEMHasLayer2   bool
	GEMLayer2IEta  int
	GEMLayer2Strip int
	GEMLayer2CLS   int
	GEMLayer2BX    int

	IsMatchedWithMuon bool
	MuonPt            float32
	MuonEta           float32
	MuonPhi           float32
	MuonCharge        int
}

// Columns lists the column names, in field order.
var Columns = []string{
	"gemcsc_reduced_chi2",
	"gemcsc_gemhit_size",
	"gemcsc_cschit_size",
	"gemcsc_region",
	"csc_chamber",
	"csc_is_me1a",
	"csc_reduced_chi2",
	"gem_chamber",
	"gem_has_layer1",
	"gem_layer1_ieta",
	"gem_layer1_strip",
	"gem_layer1_cls",
	"gem_layer1_bx",
	"gem_has_layer2",
	"gem_layer2_ieta",
	"gem_layer2_strip",
	"gem_layer2_cls",
	"gem_layer2_bx",
	"is_matched_with_muon",
	"muon_pt",
	"muon_eta",
	"muon_phi",
	"muon_charge",
}

// NewRecord returns a record with every field at its unset value.
func NewRecord() *Record {
	return &Record{
		GEMCSCReducedChi2: -1,
		GEMCSCGEMHitSize:  -1,
		GEMCSCCSCHitSize:  -1,
		GEMCSCRegion:      0,

		CSCChamber:     -1,
		CSCIsME1a:      false,
		CSCReducedChi2: -1,

		GEMChamber: -1,

		GEMHasLayer1:   false,
		GEMLayer1IEta:  -1,
		GEMLayer1Strip: -1,
		GEMLayer1CLS:   -1,
		GEMLayer1BX:    -1000,

		GEMHasLayer2:   false,
		GEMLayer2IEta:  -1,
		GEMLayer2Strip: -1,
		GEMLayer2CLS:   -1,
		GEMLayer2BX:    -1000,

		IsMatchedWithMuon: false,
		MuonPt:            -1,
		MuonEta:           -1000,
		MuonPhi:           -1000,
		MuonCharge:        0,
	}
}

// Values returns the fields in column order.
func (rec *Record) Values() []interface{} {
	return []interface{}{
		rec.GEMCSCReducedChi2,
		rec.GEMCSCGEMHitSize,
		rec.GEMCSCCSCHitSize,
		rec.GEMCSCRegion,
		rec.CSCChamber,
		rec.CSCIsME1a,
		rec.CSCReducedChi2,
		rec.GEMChamber,
		rec.GEMHasLayer1,
		rec.GEMLayer1IEta,
		rec.GEMLayer1Strip,
		rec.GEMLayer1CLS,
		rec.GEMLayer1BX,
		rec.GEMHasLayer2,
		rec.GEMLayer2IEta,
		rec.GEMLayer2Strip,
		rec.GEMLayer2CLS,
		rec.GEMLayer2BX,
		rec.IsMatchedWithMuon,
		rec.MuonPt,
		rec.MuonEta,
		rec.MuonPhi,
		rec.MuonCharge,
	}
}

// Writer receives the records of the analyzer, one at a time.
type Writer interface {
	Append(rec *Record) error
}

// Records is a Writer keeping records in memory.
type Records []*Record

func (r *Records) Append(rec *Record) error {
	*r = append(*r, rec)
	return nil
}
