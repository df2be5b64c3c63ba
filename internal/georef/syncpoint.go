// Package georef turns distance-along-transect survey measurements into
// real-world point coordinates. Sparse sync points with surveyed X/Y
// calibrate each transect: consecutive pairs form segments, each with an
// adjustment factor (real-world length over reported survey length), and
// every record is placed by interpolating within its segment or
// extrapolating past the first or last sync point.
package georef

import (
	"github.com/streamsurvey/rba-georef/internal/survey"
)

// SyncPoint is a survey record with an independently known coordinate,
// used to calibrate the distance-to-coordinate mapping for its transect.
type SyncPoint struct {
	RecordID string
	Distance float64
	X        float64
	Y        float64
	Note     string
}

// CollectSyncPoints extracts the sync points from a transect in order,
// validating them. Flagged records without coordinates yield a
// MissingCoordinateError; decreasing distances yield an
// OutOfOrderSyncPointError. Equal distances pass through here and surface
// as DegenerateSegmentError from BuildSegments, which knows the pair.
func CollectSyncPoints(tr *survey.Transect) ([]SyncPoint, error) {
	var pts []SyncPoint
	for _, rec := range tr.Records {
		if !rec.IsSync {
			continue
		}
		if !rec.HasXY {
			return nil, &MissingCoordinateError{
				TransectID: tr.ID,
				RecordID:   rec.RecordID,
				Line:       rec.Line,
			}
		}
		if n := len(pts); n > 0 && rec.Distance < pts[n-1].Distance {
			return nil, &OutOfOrderSyncPointError{
				TransectID:   tr.ID,
				RecordID:     rec.RecordID,
				Distance:     rec.Distance,
				PrevDistance: pts[n-1].Distance,
			}
		}
		pts = append(pts, SyncPoint{
			RecordID: rec.RecordID,
			Distance: rec.Distance,
			X:        rec.X,
			Y:        rec.Y,
			Note:     rec.Note,
		})
	}
	return pts, nil
}
