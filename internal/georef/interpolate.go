package georef

// Position is a computed real-world location for a survey record, plus the
// distance-corrected cumulative distance used to place it.
type Position struct {
	X            float64
	Y            float64
	AdjustedDist float64
	Extrapolated bool // placed beyond the first or last sync point
}

// Interpolate computes the position of a record at the given survey
// distance from the ordered segment list of its transect.
//
// A distance exactly at a sync point reproduces that point's surveyed
// coordinates; the identity check runs before any arithmetic so no
// floating-point path can perturb it. A distance on the boundary shared
// by two segments belongs to the earlier segment. Distances inside a
// segment interpolate linearly along the chord between its endpoints.
// Distances before the first or after the last sync point extrapolate
// along the nearest boundary segment's direction, scaled by its
// adjustment factor; this assumes the transect continues straight past
// the surveyed range, so accuracy there degrades with distance.
//
// AdjustedDist is the corrected cumulative distance: anchored at the
// first sync point's survey distance, accumulating Factor·RawLength per
// completed segment, so operator edits to persisted factors carry
// through.
func Interpolate(transectID string, segments []Segment, distance float64) (Position, error) {
	if len(segments) == 0 {
		return Position{}, &UnresolvedTransectError{TransectID: transectID}
	}

	origin := segments[0].StartDistance
	cumulative := 0.0

	for i := range segments {
		seg := &segments[i]

		// Exact sync-point matches take precedence over arithmetic.
		if distance == seg.StartDistance {
			return Position{X: seg.StartX, Y: seg.StartY, AdjustedDist: origin + cumulative}, nil
		}
		if distance == seg.EndDistance {
			return Position{
				X:            seg.EndX,
				Y:            seg.EndY,
				AdjustedDist: origin + cumulative + seg.Factor*seg.RawLength(),
			}, nil
		}

		if distance > seg.StartDistance && distance < seg.EndDistance {
			t := (distance - seg.StartDistance) / seg.RawLength()
			return Position{
				X:            seg.StartX + t*(seg.EndX-seg.StartX),
				Y:            seg.StartY + t*(seg.EndY-seg.StartY),
				AdjustedDist: origin + cumulative + seg.Factor*(distance-seg.StartDistance),
			}, nil
		}

		cumulative += seg.Factor * seg.RawLength()
	}

	// Outside the sync-point range: project along the boundary segment.
	if distance < segments[0].StartDistance {
		seg := &segments[0]
		offset := (distance - seg.StartDistance) * seg.Factor
		ux, uy := seg.unitDirection()
		return Position{
			X:            seg.StartX + ux*offset,
			Y:            seg.StartY + uy*offset,
			AdjustedDist: origin + offset,
			Extrapolated: true,
		}, nil
	}

	seg := &segments[len(segments)-1]
	offset := (distance - seg.EndDistance) * seg.Factor
	ux, uy := seg.unitDirection()
	return Position{
		X:            seg.EndX + ux*offset,
		Y:            seg.EndY + uy*offset,
		AdjustedDist: origin + cumulative + offset,
		Extrapolated: true,
	}, nil
}

// unitDirection returns the unit vector from the segment start to its end.
// A zero-length chord (both sync points at the same place) has no
// direction; the zero vector pins extrapolated records to the endpoint.
func (s *Segment) unitDirection() (ux, uy float64) {
	length := s.RealLength()
	if length == 0 {
		return 0, 0
	}
	return (s.EndX - s.StartX) / length, (s.EndY - s.StartY) / length
}
