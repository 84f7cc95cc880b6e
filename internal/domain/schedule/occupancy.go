package schedule

import (
	"github.com/google/uuid"

	"github.com/navalhaapp/barber-dashboard/internal/models"
)

// Interval is a half-open [Start, End) span in minutes since midnight.
type Interval struct {
	Start int
	End   int
}

func NewInterval(startMin, durationMin int) Interval {
	return Interval{Start: startMin, End: startMin + durationMin}
}

func (i Interval) Overlaps(o Interval) bool {
	return i.Start < o.End && i.End > o.Start
}

// RowInterval is the span a slot row occupies on the day grid. Rows written
// by the expander carry their own duration; legacy rows without one occupy a
// single slot of the configured granularity.
func RowInterval(row *models.Appointment, granularityMin int) (Interval, bool) {
	startMin, err := MinuteOfDay(row.Time)
	if err != nil {
		return Interval{}, false
	}

	dur := row.DurationMin
	if dur <= 0 {
		dur = granularityMin
	}

	return NewInterval(startMin, dur), true
}

// IsOccupied reports whether the candidate interval overlaps any
// non-cancelled row in rows. Rows of excludeVisit are ignored, which lets a
// visit being edited keep its own slots.
func IsOccupied(
	rows []models.Appointment,
	candidate Interval,
	granularityMin int,
	excludeVisit uuid.UUID,
) bool {

	for i := range rows {
		row := &rows[i]

		if Status(row.Status) == StatusCancelled {
			continue
		}
		if excludeVisit != uuid.Nil && row.VisitID == excludeVisit {
			continue
		}

		occupied, ok := RowInterval(row, granularityMin)
		if !ok {
			continue
		}

		if candidate.Overlaps(occupied) {
			return true
		}
	}

	return false
}
