package models

import (
	"database/sql/driver"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Weekdays is a set of weekday numbers (0=Sunday .. 6=Saturday) stored as a
// comma-separated text column.
type Weekdays []int

func (w Weekdays) Contains(day time.Weekday) bool {
	for _, d := range w {
		if d == int(day) {
			return true
		}
	}
	return false
}

func (w Weekdays) Value() (driver.Value, error) {
	if len(w) == 0 {
		return "", nil
	}

	sorted := make([]int, len(w))
	copy(sorted, w)
	sort.Ints(sorted)

	parts := make([]string, 0, len(sorted))
	for _, d := range sorted {
		if d < 0 || d > 6 {
			return nil, fmt.Errorf("weekday out of range: %d", d)
		}
		parts = append(parts, strconv.Itoa(d))
	}
	return strings.Join(parts, ","), nil
}

func (w *Weekdays) Scan(src any) error {
	var raw string
	switch v := src.(type) {
	case nil:
		*w = nil
		return nil
	case string:
		raw = v
	case []byte:
		raw = string(v)
	default:
		return fmt.Errorf("cannot scan %T into Weekdays", src)
	}

	raw = strings.TrimSpace(raw)
	if raw == "" {
		*w = nil
		return nil
	}

	parts := strings.Split(raw, ",")
	days := make(Weekdays, 0, len(parts))
	for _, p := range parts {
		d, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || d < 0 || d > 6 {
			return fmt.Errorf("invalid weekday value %q", p)
		}
		days = append(days, d)
	}

	*w = days
	return nil
}
