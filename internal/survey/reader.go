package survey

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/streamsurvey/rba-georef/internal/conf"
	"github.com/streamsurvey/rba-georef/internal/errors"
	"github.com/streamsurvey/rba-georef/internal/logging"
)

// truthy sync-flag spellings accepted in the input, case-insensitive.
var syncFlagValues = map[string]bool{
	"1": true, "t": true, "true": true, "y": true, "yes": true, "x": true,
}

// ReadFile opens and parses a survey CSV file.
func ReadFile(path string, cols *conf.ColumnSettings) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.New(err).
			Component("survey").
			Category(errors.CategoryFileIO).
			FileContext(path).
			Build()
	}
	defer f.Close()
	return Read(f, cols)
}

// Read parses a survey table from r. The first row is the header; column
// positions are resolved by name from cols. Rows without a transect ID are
// logged and skipped, matching the source-data conventions this tool
// inherits. Malformed numeric fields fail the read with the line number.
func Read(r io.Reader, cols *conf.ColumnSettings) (*Table, error) {
	log := logging.ForService("survey")

	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, errors.Newf("reading survey header: %w", err).
			Component("survey").
			Category(errors.CategoryFileParsing).
			Build()
	}

	idx := columnIndex(header)
	// TransectID, Distance, X and Y are required; the rest are optional
	// and resolve to -1 when the file does not carry them.
	required := map[string]string{
		cols.TransectID: "transect ID",
		cols.Distance:   "distance",
		cols.X:          "x coordinate",
		cols.Y:          "y coordinate",
	}
	for name, role := range required {
		if _, ok := idx[name]; !ok {
			return nil, errors.Newf("survey file has no %s column %q", role, name).
				Component("survey").
				Category(errors.CategoryFileParsing).
				Build()
		}
	}

	lookup := func(name string) int {
		if name == "" {
			return -1
		}
		if i, ok := idx[name]; ok {
			return i
		}
		return -1
	}
	colTransect := lookup(cols.TransectID)
	colRecord := lookup(cols.RecordID)
	colStream := lookup(cols.StreamName)
	colTrib := lookup(cols.TribTo)
	colDist := lookup(cols.Distance)
	colSync := lookup(cols.SyncFlag)
	colX := lookup(cols.X)
	colY := lookup(cols.Y)
	colNote := lookup(cols.Note)
	colComment := lookup(cols.Comment)

	table := &Table{Header: header}
	line := 1
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, errors.Newf("reading survey line %d: %w", line, err).
				Component("survey").
				Category(errors.CategoryFileParsing).
				Build()
		}

		rec := &Record{
			TransectID: field(row, colTransect),
			RecordID:   field(row, colRecord),
			StreamName: field(row, colStream),
			TribTo:     field(row, colTrib),
			Note:       field(row, colNote),
			Comment:    field(row, colComment),
			Fields:     row,
			Line:       line,
		}

		if rec.TransectID == "" {
			if log != nil {
				log.Warn("no transect ID given for input row, skipping entry",
					"line", line,
					"stream", rec.StreamName,
					"trib_to", rec.TribTo,
					"record_id", rec.RecordID)
			}
			table.Skipped++
			continue
		}

		rec.Distance, err = strconv.ParseFloat(field(row, colDist), 64)
		if err != nil {
			return nil, errors.Newf("survey line %d: bad distance value %q", line, field(row, colDist)).
				Component("survey").
				Category(errors.CategoryFileParsing).
				TransectContext(rec.TransectID).
				Build()
		}

		rec.X, rec.Y, rec.HasXY, err = parseXY(field(row, colX), field(row, colY))
		if err != nil {
			return nil, errors.Newf("survey line %d: %w", line, err).
				Component("survey").
				Category(errors.CategoryFileParsing).
				TransectContext(rec.TransectID).
				Build()
		}

		if colSync >= 0 {
			rec.IsSync = syncFlagValues[strings.ToLower(strings.TrimSpace(field(row, colSync)))]
		} else {
			// No flag column; coordinate presence marks the sync points.
			rec.IsSync = rec.HasXY
		}

		table.Records = append(table.Records, rec)
	}

	return table, nil
}

// columnIndex maps header names to their position.
func columnIndex(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.TrimSpace(name)] = i
	}
	return idx
}

// field returns the trimmed value at position i, or "" when the column is
// absent or the row is short.
func field(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// parseXY parses an X/Y pair where both may be blank (no surveyed
// coordinate for this row). A half-populated pair parses as absent; the
// sync-point validation downstream reports it as a data error.
func parseXY(xs, ys string) (x, y float64, ok bool, err error) {
	if xs == "" || ys == "" {
		return 0, 0, false, nil
	}
	x, err = strconv.ParseFloat(xs, 64)
	if err != nil {
		return 0, 0, false, errors.Newf("bad x coordinate %q", xs).Build()
	}
	y, err = strconv.ParseFloat(ys, 64)
	if err != nil {
		return 0, 0, false, errors.Newf("bad y coordinate %q", ys).Build()
	}
	return x, y, true, nil
}
