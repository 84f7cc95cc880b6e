package schedule

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const minutesPerDay = 24 * 60

var (
	ErrInvalidTime        = errors.New("invalid time, expected HH:MM")
	ErrInvalidDuration    = errors.New("duration must be positive")
	ErrInvalidGranularity = errors.New("slot granularity must be positive")
	ErrNotAligned         = errors.New("time is not on the slot grid")
	ErrCrossesMidnight    = errors.New("slot run crosses midnight")
)

// MinuteOfDay parses a strict HH:MM clock into minutes since midnight.
func MinuteOfDay(hm string) (int, error) {
	parts := strings.SplitN(hm, ":", 2)
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return 0, ErrInvalidTime
	}

	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, ErrInvalidTime
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, ErrInvalidTime
	}

	return h*60 + m, nil
}

func FormatMinute(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// ExpandSlots converts a visit starting at start with the given total
// duration into the ordered, contiguous HH:MM slots it consumes on a grid of
// granularityMin. The start must sit on the grid; a run that would cross
// midnight is rejected rather than wrapped.
func ExpandSlots(start string, durationMin, granularityMin int) ([]string, error) {
	if granularityMin <= 0 {
		return nil, ErrInvalidGranularity
	}
	if durationMin <= 0 {
		return nil, ErrInvalidDuration
	}

	startMin, err := MinuteOfDay(start)
	if err != nil {
		return nil, err
	}
	if startMin%granularityMin != 0 {
		return nil, ErrNotAligned
	}

	needed := (durationMin + granularityMin - 1) / granularityMin
	if startMin+needed*granularityMin > minutesPerDay {
		return nil, ErrCrossesMidnight
	}

	slots := make([]string, 0, needed)
	for i := 0; i < needed; i++ {
		slots = append(slots, FormatMinute(startMin+i*granularityMin))
	}

	return slots, nil
}
