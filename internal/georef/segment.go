package georef

import "math"

// Segment is the transect interval between two consecutive sync points.
// Factor is the ratio of the straight-line (chord) distance between the
// endpoints to the reported survey distance between them; it corrects for
// meander and measurement error accumulated over the interval.
type Segment struct {
	TransectID    string
	BeginID       string
	EndID         string
	StartDistance float64
	EndDistance   float64
	StartX        float64
	StartY        float64
	EndX          float64
	EndY          float64
	Factor        float64
	BeginNote     string
	EndNote       string
}

// RealLength returns the straight-line distance between the segment
// endpoints.
func (s *Segment) RealLength() float64 {
	return math.Hypot(s.EndX-s.StartX, s.EndY-s.StartY)
}

// RawLength returns the reported survey distance spanned by the segment.
func (s *Segment) RawLength() float64 {
	return s.EndDistance - s.StartDistance
}

// BuildSegments computes the ordered segment list for one transect from
// its ordered sync points. At least two sync points are required. A pair
// of sync points at the same survey distance is a data-entry error and
// fails with DegenerateSegmentError rather than defaulting the factor.
func BuildSegments(transectID string, pts []SyncPoint) ([]Segment, error) {
	if len(pts) < 2 {
		return nil, &UnresolvedTransectError{TransectID: transectID, SyncPoints: len(pts)}
	}

	segments := make([]Segment, 0, len(pts)-1)
	for i := 1; i < len(pts); i++ {
		begin, end := pts[i-1], pts[i]
		raw := end.Distance - begin.Distance
		if raw <= 0 {
			return nil, &DegenerateSegmentError{
				TransectID: transectID,
				BeginID:    begin.RecordID,
				EndID:      end.RecordID,
				Distance:   begin.Distance,
			}
		}
		real := math.Hypot(end.X-begin.X, end.Y-begin.Y)
		segments = append(segments, Segment{
			TransectID:    transectID,
			BeginID:       begin.RecordID,
			EndID:         end.RecordID,
			StartDistance: begin.Distance,
			EndDistance:   end.Distance,
			StartX:        begin.X,
			StartY:        begin.Y,
			EndX:          end.X,
			EndY:          end.Y,
			Factor:        real / raw,
			BeginNote:     begin.Note,
			EndNote:       end.Note,
		})
	}
	return segments, nil
}
