package table

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/decibelcooper/gemdqm/efficiency"
)

func TestRoundTrip(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "gem.csv")

	w, err := Create(fname)
	if err != nil {
		t.Fatal(err)
	}

	unmatched := efficiency.NewRecord()
	unmatched.GEMCSCReducedChi2 = 2.5
	unmatched.GEMCSCGEMHitSize = 2
	unmatched.GEMCSCCSCHitSize = 6
	unmatched.GEMCSCRegion = -1
	unmatched.CSCChamber = 17
	unmatched.CSCIsME1a = true
	unmatched.CSCReducedChi2 = 0.75
	unmatched.GEMChamber = 17
	unmatched.GEMHasLayer1 = true
	unmatched.GEMLayer1IEta = 8
	unmatched.GEMLayer1Strip = 191
	unmatched.GEMLayer1CLS = 3
	unmatched.GEMLayer1BX = 0

	matched := efficiency.NewRecord()
	matched.GEMCSCRegion = 1
	matched.CSCChamber = 3
	matched.IsMatchedWithMuon = true
	matched.MuonPt = 25.5
	matched.MuonEta = 1.875
	matched.MuonPhi = -0.5
	matched.MuonCharge = -1

	want := []*efficiency.Record{unmatched, matched}
	for _, rec := range want {
		if err := w.Append(rec); err != nil {
			t.Fatal(err)
		}
	}
	if w.Len() != 2 {
		t.Errorf("Len = %d", w.Len())
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	raw, err := os.ReadFile(fname)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(raw), "# gemcsc_reduced_chi2;gemcsc_gemhit_size;") {
		t.Errorf("unexpected header: %q", strings.SplitN(string(raw), "\n", 2)[0])
	}

	got, err := ReadAll(fname)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestScanMissingFile(t *testing.T) {
	err := Scan(filepath.Join(t.TempDir(), "none.csv"), func(*efficiency.Record) error { return nil })
	if err == nil {
		t.Errorf("expected an error")
	}
}

func TestScanEndOfTable(t *testing.T) {
	for _, n := range []int{0, 1, 3} {
		fname := filepath.Join(t.TempDir(), "gem.csv")
		w, err := Create(fname)
		if err != nil {
			t.Fatal(err)
		}
		for i := 0; i < n; i++ {
			if err := w.Append(efficiency.NewRecord()); err != nil {
				t.Fatal(err)
			}
		}
		if err := w.Close(); err != nil {
			t.Fatal(err)
		}

		got := 0
		err = Scan(fname, func(*efficiency.Record) error {
			got++
			return nil
		})
		if err != nil {
			t.Errorf("%d rows: unexpected error: %v", n, err)
		}
		if got != n {
			t.Errorf("scanned %d rows, want %d", got, n)
		}
	}
}

func TestScanMalformedRow(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "bad.csv")
	if err := os.WriteFile(fname, []byte("# header\nnot;a;number\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadAll(fname); err == nil {
		t.Errorf("malformed row accepted")
	}
}
