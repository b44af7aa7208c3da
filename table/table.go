// Package table stores efficiency records as flat ';'-separated text tables
// with a '#'-commented header naming the columns.
package table

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"go-hep.org/x/hep/csvutil"

	"github.com/decibelcooper/gemdqm/efficiency"
)

const (
	comma   = ';'
	comment = '#'
)

// Writer appends records to a table file.
type Writer struct {
	tbl *csvutil.Table
	n   int
}

// Create creates the table file and writes its header.
func Create(fname string) (*Writer, error) {
	tbl, err := csvutil.Create(fname)
	if err != nil {
		return nil, fmt.Errorf("table: could not create %q: %w", fname, err)
	}
	tbl.Writer.Comma = comma

	hdr := string(comment) + " " + strings.Join(efficiency.Columns, string(comma)) + "\n"
	if err := tbl.WriteHeader(hdr); err != nil {
		tbl.Close()
		return nil, fmt.Errorf("table: could not write header: %w", err)
	}
	return &Writer{tbl: tbl}, nil
}

// Append writes one row.
func (w *Writer) Append(rec *efficiency.Record) error {
	if err := w.tbl.WriteRow(rec.Values()...); err != nil {
		return fmt.Errorf("table: could not write row %d: %w", w.n, err)
	}
	w.n++
	return nil
}

// Len returns the number of rows written.
func (w *Writer) Len() int { return w.n }

// Close flushes and closes the file.
func (w *Writer) Close() error {
	return w.tbl.Close()
}

// Scan calls fn for every record of the table file, in order.
func Scan(fname string, fn func(*efficiency.Record) error) error {
	tbl, err := csvutil.Open(fname)
	if err != nil {
		return fmt.Errorf("table: could not open %q: %w", fname, err)
	}
	defer tbl.Close()
	tbl.Reader.Comma = comma
	tbl.Reader.Comment = comment

	rows, err := tbl.ReadRows(0, -1)
	if err != nil {
		return fmt.Errorf("table: could not read rows of %q: %w", fname, err)
	}
	defer rows.Close()

	for rows.Next() {
		rec := efficiency.NewRecord()
		if err := rows.Scan(fields(rec)...); err != nil {
			return fmt.Errorf("table: could not scan row of %q: %w", fname, err)
		}
		if err := fn(rec); err != nil {
			return err
		}
	}
	if err := rows.Err(); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("table: could not read rows of %q: %w", fname, err)
	}
	return nil
}

// ReadAll reads every record of the table file.
func ReadAll(fname string) ([]*efficiency.Record, error) {
	var recs []*efficiency.Record
	err := Scan(fname, func(rec *efficiency.Record) error {
		recs = append(recs, rec)
		return nil
	})
	return recs, err
}

func fields(rec *efficiency.Record) []interface{} {
	return []interface{}{
		&rec.GEMCSCReducedChi2,
		&rec.GEMCSCGEMHitSize,
		&rec.GEMCSCCSCHitSize,
		&rec.GEMCSCRegion,
		&rec.CSCChamber,
		&rec.CSCIsME1a,
		&rec.CSCReducedChi2,
		&rec.GEMChamber,
		&rec.GEMHasLayer1,
		&rec.GEMLayer1IEta,
		&rec.GEMLayer1Strip,
		&rec.GEMLayer1CLS,
		&rec.GEMLayer1BX,
		&rec.GEMHasLayer2,
		&rec.GEMLayer2IEta,
		&rec.GEMLayer2Strip,
		&rec.GEMLayer2CLS,
		&rec.GEMLayer2BX,
		&rec.IsMatchedWithMuon,
		&rec.MuonPt,
		&rec.MuonEta,
		&rec.MuonPhi,
		&rec.MuonCharge,
	}
}
