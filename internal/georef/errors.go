package georef

import "fmt"

// DegenerateSegmentError reports two consecutive sync points at the same
// survey distance. The segment has no distance span, so no adjustment
// factor exists; the source rows need fixing.
type DegenerateSegmentError struct {
	TransectID string
	BeginID    string
	EndID      string
	Distance   float64
}

func (e *DegenerateSegmentError) Error() string {
	return fmt.Sprintf("transect %s: sync points %s and %s are both at survey distance %v, segment is degenerate",
		e.TransectID, e.BeginID, e.EndID, e.Distance)
}

// UnresolvedTransectError reports a transect that cannot be georeferenced:
// it has fewer than two sync points, or no segments were supplied for it.
type UnresolvedTransectError struct {
	TransectID string
	SyncPoints int
}

func (e *UnresolvedTransectError) Error() string {
	return fmt.Sprintf("transect %s: cannot georeference with %d sync point(s), at least 2 required",
		e.TransectID, e.SyncPoints)
}

// MissingCoordinateError reports a record flagged as a sync point that
// lacks a usable X/Y pair.
type MissingCoordinateError struct {
	TransectID string
	RecordID   string
	Line       int
}

func (e *MissingCoordinateError) Error() string {
	return fmt.Sprintf("transect %s: record %s (line %d) is flagged as a sync point but has no X/Y coordinates",
		e.TransectID, e.RecordID, e.Line)
}

// OutOfOrderSyncPointError reports a sync point whose survey distance is
// less than that of the sync point before it.
type OutOfOrderSyncPointError struct {
	TransectID   string
	RecordID     string
	Distance     float64
	PrevDistance float64
}

func (e *OutOfOrderSyncPointError) Error() string {
	return fmt.Sprintf("transect %s: sync point %s at distance %v is out of order, previous sync point is at %v",
		e.TransectID, e.RecordID, e.Distance, e.PrevDistance)
}
