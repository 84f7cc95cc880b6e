package schedule

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/navalhaapp/barber-dashboard/internal/models"
)

// ErrNoOperatingHours marks a date with no active booking window. It is a
// configuration condition, not a booking conflict.
var ErrNoOperatingHours = errors.New("no operating hours configured for this date")

type Reason string

const (
	ReasonAvailable    Reason = "available"
	ReasonBarberDayOff Reason = "barber_day_off"
	ReasonExpired      Reason = "expired"
	ReasonBlocked      Reason = "barber_unavailable"
	ReasonSlotTaken    Reason = "slot_taken"
)

var weekdayNames = [7]string{
	"domingo", "segunda-feira", "terça-feira", "quarta-feira",
	"quinta-feira", "sexta-feira", "sábado",
}

func (r Reason) Message(day time.Weekday) string {
	switch r {
	case ReasonAvailable:
		return "Horário disponível."
	case ReasonBarberDayOff:
		return "Barbeiro não atende na " + weekdayNames[int(day)] + "."
	case ReasonExpired:
		return "Horário já passou."
	case ReasonBlocked:
		return "Barbeiro indisponível neste horário."
	case ReasonSlotTaken:
		return "Horário já reservado."
	}
	return string(r)
}

type SlotCheck struct {
	Time     string `json:"time"`
	Bookable bool   `json:"bookable"`
	Reason   Reason `json:"reason"`
	Message  string `json:"message"`
}

type EvaluateInput struct {
	Barber *models.Barber
	// Calendar day of the slot and the current clock, both in the shop's
	// timezone.
	Date time.Time
	Now  time.Time

	Slot        string
	DurationMin int
	Granularity int

	Blocks       []models.UnavailabilityBlock
	Appointments []models.Appointment
	ExcludeVisit uuid.UUID
}

// EvaluateSlot runs the booking rules in user-facing priority order; the
// first failing rule decides the reason.
func EvaluateSlot(in EvaluateInput) SlotCheck {
	day := in.Date.Weekday()

	check := func(bookable bool, reason Reason) SlotCheck {
		return SlotCheck{
			Time:     in.Slot,
			Bookable: bookable,
			Reason:   reason,
			Message:  reason.Message(day),
		}
	}

	if in.Barber != nil && !in.Barber.WorksOn(day) {
		return check(false, ReasonBarberDayOff)
	}

	slotMin, err := MinuteOfDay(in.Slot)
	if err != nil {
		return check(false, ReasonExpired)
	}

	if expired(in.Date, in.Now, slotMin) {
		return check(false, ReasonExpired)
	}

	dur := in.DurationMin
	if dur <= 0 {
		dur = in.Granularity
	}
	candidate := NewInterval(slotMin, dur)

	for _, block := range in.Blocks {
		blockStart, err1 := MinuteOfDay(block.StartTime)
		blockEnd, err2 := MinuteOfDay(block.EndTime)
		if err1 != nil || err2 != nil {
			continue
		}
		if candidate.Overlaps(Interval{Start: blockStart, End: blockEnd}) {
			return check(false, ReasonBlocked)
		}
	}

	if IsOccupied(in.Appointments, candidate, in.Granularity, in.ExcludeVisit) {
		return check(false, ReasonSlotTaken)
	}

	return check(true, ReasonAvailable)
}

func expired(date, now time.Time, slotMin int) bool {
	y1, m1, d1 := date.Date()
	y2, m2, d2 := now.Date()

	switch {
	case y1 < y2 || (y1 == y2 && m1 < m2) || (y1 == y2 && m1 == m2 && d1 < d2):
		return true
	case y1 == y2 && m1 == m2 && d1 == d2:
		return slotMin <= now.Hour()*60+now.Minute()
	default:
		return false
	}
}

// GridTimes generates the candidate slot starts inside the day's active
// booking window. The window start is aligned up to the grid when needed.
func GridTimes(hours *models.OperatingHours, granularityMin int) ([]string, error) {
	if hours == nil || !hours.Active {
		return nil, ErrNoOperatingHours
	}

	startMin, err := MinuteOfDay(hours.StartTime)
	if err != nil {
		return nil, ErrNoOperatingHours
	}
	endMin, err := MinuteOfDay(hours.EndTime)
	if err != nil || endMin <= startMin {
		return nil, ErrNoOperatingHours
	}

	if rem := startMin % granularityMin; rem != 0 {
		startMin += granularityMin - rem
	}

	var times []string
	for cur := startMin; cur+granularityMin <= endMin; cur += granularityMin {
		times = append(times, FormatMinute(cur))
	}

	if len(times) == 0 {
		return nil, ErrNoOperatingHours
	}
	return times, nil
}

// FitsWindow reports whether a run of minutes starting at startMin stays
// inside the day's active window.
func FitsWindow(hours *models.OperatingHours, startMin, durationMin int) bool {
	if hours == nil || !hours.Active {
		return false
	}

	winStart, err1 := MinuteOfDay(hours.StartTime)
	winEnd, err2 := MinuteOfDay(hours.EndTime)
	if err1 != nil || err2 != nil {
		return false
	}

	return startMin >= winStart && startMin+durationMin <= winEnd
}
