package survey

import (
	"encoding/csv"
	"io"
	"os"

	"github.com/streamsurvey/rba-georef/internal/errors"
)

// WriteGeoCSVFile creates (or truncates) path and writes the georeferenced
// survey table to it. See WriteGeoCSV.
func WriteGeoCSVFile(path string, table *Table, extraHeader []string, extra func(*Record) []string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.New(err).
			Component("survey").
			Category(errors.CategoryFileIO).
			FileContext(path).
			Build()
	}
	defer f.Close()
	return WriteGeoCSV(f, table, extraHeader, extra)
}

// WriteGeoCSV writes the table back out with every original column
// preserved and the given extra columns appended. extra is called once per
// record, in input order, and must return len(extraHeader) values; records
// on transects that failed georeferencing get blank values rather than
// being dropped.
func WriteGeoCSV(w io.Writer, table *Table, extraHeader []string, extra func(*Record) []string) error {
	cw := csv.NewWriter(w)

	header := make([]string, 0, len(table.Header)+len(extraHeader))
	header = append(header, table.Header...)
	header = append(header, extraHeader...)
	if err := cw.Write(header); err != nil {
		return errors.Newf("writing output header: %w", err).
			Component("survey").
			Category(errors.CategoryFileIO).
			Build()
	}

	blank := make([]string, len(extraHeader))
	for _, rec := range table.Records {
		values := extra(rec)
		if values == nil {
			values = blank
		}
		row := make([]string, 0, len(rec.Fields)+len(values))
		row = append(row, rec.Fields...)
		row = append(row, values...)
		if err := cw.Write(row); err != nil {
			return errors.Newf("writing output line for record %s: %w", rec.RecordID, err).
				Component("survey").
				Category(errors.CategoryFileIO).
				TransectContext(rec.TransectID).
				Build()
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return errors.Newf("flushing output: %w", err).
			Component("survey").
			Category(errors.CategoryFileIO).
			Build()
	}
	return nil
}
