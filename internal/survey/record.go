// Package survey reads and writes RBA stream-survey tables. A survey table
// is an ordered set of records, each a cumulative distance measurement
// along a transect, some of which carry independently surveyed X/Y
// coordinates (sync points).
package survey

// Record represents a single survey row: one observation unit (pool) at a
// cumulative distance along a transect. Fields holds the raw CSV row so
// every input column survives to the output untouched.
type Record struct {
	TransectID string  // stream location ID (LLID)
	RecordID   string  // pool number or other per-row identity
	StreamName string
	TribTo     string  // name of the stream this one flows into
	Distance   float64 // cumulative survey distance
	IsSync     bool    // row is flagged (or inferred) as a sync point
	X          float64 // surveyed X, valid only when HasXY
	Y          float64 // surveyed Y, valid only when HasXY
	HasXY      bool
	Note       string // XY note
	Comment    string

	Fields []string // raw CSV fields, passthrough
	Line   int      // 1-based line number in the source file
}

// Transect groups the records sharing one transect ID, in file order.
type Transect struct {
	ID      string
	Records []*Record
}

// Table is a parsed survey file: the original header plus all usable records.
type Table struct {
	Header  []string
	Records []*Record
	Skipped int // rows dropped for missing transect ID
}

// Transects groups the table's records by transect ID, preserving the
// order in which transects first appear in the file. Survey files are
// sorted by transect and distance by convention, but grouping here does
// not depend on that.
func (t *Table) Transects() []*Transect {
	index := make(map[string]*Transect)
	var out []*Transect
	for _, rec := range t.Records {
		tr, ok := index[rec.TransectID]
		if !ok {
			tr = &Transect{ID: rec.TransectID}
			index[rec.TransectID] = tr
			out = append(out, tr)
		}
		tr.Records = append(tr.Records, rec)
	}
	return out
}
