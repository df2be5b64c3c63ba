package georef

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/streamsurvey/rba-georef/internal/errors"
)

// TransectFactors is the reviewed unit of the factor table: one transect's
// segments plus the stream metadata a reviewer needs to locate it.
type TransectFactors struct {
	TransectID string
	StreamName string
	TribTo     string
	Segments   []Segment
}

// Factor table column headers. The table is written for human review and
// read back as the authoritative input to georeferencing, so the layout
// stays stable and spreadsheet-friendly.
var factorTableHeader = []string{
	"LocationID",
	"Stream_Name",
	"Trib_To",
	"Begin_Record_ID",
	"Begin_Survey_Cum_Dist",
	"Begin_X_coord",
	"Begin_Y_coord",
	"Begin_XY_Note",
	"End_Record_ID",
	"End_Survey_Cum_Dist",
	"End_X_coord",
	"End_Y_coord",
	"End_XY_Note",
	"Adj_Factor",
}

// WriteFactorTableFile creates (or truncates) path and writes the factor
// table to it.
func WriteFactorTableFile(path string, factors []TransectFactors) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.New(err).
			Component("georef").
			Category(errors.CategoryFileIO).
			FileContext(path).
			Build()
	}
	defer f.Close()
	return WriteFactorTable(f, factors)
}

// WriteFactorTable writes one row per segment. Floats are formatted with
// the shortest representation that parses back to the identical value, so
// an untouched table reloads to exactly the computed segments.
func WriteFactorTable(w io.Writer, factors []TransectFactors) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(factorTableHeader); err != nil {
		return errors.Newf("writing factor table header: %w", err).
			Component("georef").
			Category(errors.CategoryFileIO).
			Build()
	}

	for i := range factors {
		tf := &factors[i]
		for j := range tf.Segments {
			seg := &tf.Segments[j]
			row := []string{
				tf.TransectID,
				tf.StreamName,
				tf.TribTo,
				seg.BeginID,
				formatFloat(seg.StartDistance),
				formatFloat(seg.StartX),
				formatFloat(seg.StartY),
				seg.BeginNote,
				seg.EndID,
				formatFloat(seg.EndDistance),
				formatFloat(seg.EndX),
				formatFloat(seg.EndY),
				seg.EndNote,
				formatFloat(seg.Factor),
			}
			if err := cw.Write(row); err != nil {
				return errors.Newf("writing factor table row: %w", err).
					Component("georef").
					Category(errors.CategoryFileIO).
					TransectContext(tf.TransectID).
					Build()
			}
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return errors.Newf("flushing factor table: %w", err).
			Component("georef").
			Category(errors.CategoryFileIO).
			Build()
	}
	return nil
}

// ReadFactorTableFile opens and parses a factor table file.
func ReadFactorTableFile(path string) ([]TransectFactors, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.New(err).
			Component("georef").
			Category(errors.CategoryFileIO).
			FileContext(path).
			Build()
	}
	defer f.Close()
	return ReadFactorTable(f)
}

// ReadFactorTable parses a (possibly operator-edited) factor table.
// Rows for the same transect are grouped in order of appearance. Values
// are read as-is: an edited Adj_Factor is honored, never recomputed.
func ReadFactorTable(r io.Reader) ([]TransectFactors, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, errors.Newf("reading factor table header: %w", err).
			Component("georef").
			Category(errors.CategoryFileParsing).
			Build()
	}
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.TrimSpace(name)] = i
	}
	for _, name := range factorTableHeader {
		if _, ok := idx[name]; !ok {
			return nil, errors.Newf("factor table has no %q column", name).
				Component("georef").
				Category(errors.CategoryFileParsing).
				Build()
		}
	}

	var out []TransectFactors
	byID := make(map[string]int)
	line := 1
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, errors.Newf("reading factor table line %d: %w", line, err).
				Component("georef").
				Category(errors.CategoryFileParsing).
				Build()
		}

		get := func(name string) string {
			i := idx[name]
			if i >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[i])
		}
		getFloat := func(name string) (float64, error) {
			v, err := strconv.ParseFloat(get(name), 64)
			if err != nil {
				return 0, errors.Newf("factor table line %d: bad %s value %q", line, name, get(name)).
					Component("georef").
					Category(errors.CategoryFileParsing).
					Build()
			}
			return v, nil
		}

		// Spreadsheet tools sometimes force the ID to text with a
		// leading apostrophe; strip it.
		transectID := strings.Trim(get("LocationID"), "'")

		seg := Segment{
			TransectID: transectID,
			BeginID:    get("Begin_Record_ID"),
			EndID:      get("End_Record_ID"),
			BeginNote:  get("Begin_XY_Note"),
			EndNote:    get("End_XY_Note"),
		}
		fields := []struct {
			name string
			dst  *float64
		}{
			{"Begin_Survey_Cum_Dist", &seg.StartDistance},
			{"Begin_X_coord", &seg.StartX},
			{"Begin_Y_coord", &seg.StartY},
			{"End_Survey_Cum_Dist", &seg.EndDistance},
			{"End_X_coord", &seg.EndX},
			{"End_Y_coord", &seg.EndY},
			{"Adj_Factor", &seg.Factor},
		}
		for _, f := range fields {
			if *f.dst, err = getFloat(f.name); err != nil {
				return nil, err
			}
		}

		i, ok := byID[transectID]
		if !ok {
			out = append(out, TransectFactors{
				TransectID: transectID,
				StreamName: get("Stream_Name"),
				TribTo:     get("Trib_To"),
			})
			i = len(out) - 1
			byID[transectID] = i
		}
		out[i].Segments = append(out[i].Segments, seg)
	}

	return out, nil
}

// formatFloat renders v with the shortest decimal representation that
// parses back to the same float64.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
