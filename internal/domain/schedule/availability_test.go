package schedule

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/navalhaapp/barber-dashboard/internal/models"
)

func tuesday() time.Time {
	// 2026-09-01 é uma terça-feira
	return time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
}

func baseInput(slot string) EvaluateInput {
	return EvaluateInput{
		Barber:      &models.Barber{Active: true},
		Date:        tuesday(),
		Now:         time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
		Slot:        slot,
		DurationMin: 30,
		Granularity: 30,
	}
}

func TestEvaluateSlotAvailable(t *testing.T) {
	check := EvaluateSlot(baseInput("10:00"))

	assert.True(t, check.Bookable)
	assert.Equal(t, ReasonAvailable, check.Reason)
	assert.Equal(t, "10:00", check.Time)
	assert.Equal(t, "Horário disponível.", check.Message)
}

func TestEvaluateSlotBarberDayOff(t *testing.T) {
	in := baseInput("10:00")
	in.Barber.AvailableDays = models.Weekdays{1, 3, 5} // seg, qua, sex

	check := EvaluateSlot(in)
	assert.False(t, check.Bookable)
	assert.Equal(t, ReasonBarberDayOff, check.Reason)
	assert.Contains(t, check.Message, "terça-feira")
}

func TestEvaluateSlotExpired(t *testing.T) {
	in := baseInput("10:00")
	in.Now = time.Date(2026, 9, 2, 8, 0, 0, 0, time.UTC) // dia seguinte

	check := EvaluateSlot(in)
	assert.False(t, check.Bookable)
	assert.Equal(t, ReasonExpired, check.Reason)
}

func TestEvaluateSlotExpiredSameDay(t *testing.T) {
	in := baseInput("10:00")
	in.Now = time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	// o slot das 10:00 expira às 10:00 em ponto
	check := EvaluateSlot(in)
	assert.False(t, check.Bookable)
	assert.Equal(t, ReasonExpired, check.Reason)

	in.Now = time.Date(2026, 9, 1, 9, 59, 0, 0, time.UTC)
	check = EvaluateSlot(in)
	assert.True(t, check.Bookable)
}

func TestEvaluateSlotBlocked(t *testing.T) {
	in := baseInput("10:00")
	in.Blocks = []models.UnavailabilityBlock{
		{StartTime: "10:15", EndTime: "11:00"},
	}

	check := EvaluateSlot(in)
	assert.False(t, check.Bookable)
	assert.Equal(t, ReasonBlocked, check.Reason)

	in.Slot = "09:30"
	check = EvaluateSlot(in)
	assert.True(t, check.Bookable)
}

func TestEvaluateSlotTaken(t *testing.T) {
	in := baseInput("10:00")
	in.Appointments = []models.Appointment{
		row(uuid.New(), "10:00", 30, StatusConfirmed),
	}

	check := EvaluateSlot(in)
	assert.False(t, check.Bookable)
	assert.Equal(t, ReasonSlotTaken, check.Reason)
}

// A primeira regra que falha decide o motivo: folga do barbeiro vence
// bloqueio, que vence ocupação.
func TestEvaluateSlotReasonPriority(t *testing.T) {
	in := baseInput("10:00")
	in.Barber.AvailableDays = models.Weekdays{1}
	in.Blocks = []models.UnavailabilityBlock{{StartTime: "09:00", EndTime: "12:00"}}
	in.Appointments = []models.Appointment{
		row(uuid.New(), "10:00", 30, StatusConfirmed),
	}

	check := EvaluateSlot(in)
	assert.Equal(t, ReasonBarberDayOff, check.Reason)

	in.Barber.AvailableDays = nil
	check = EvaluateSlot(in)
	assert.Equal(t, ReasonBlocked, check.Reason)

	in.Blocks = nil
	check = EvaluateSlot(in)
	assert.Equal(t, ReasonSlotTaken, check.Reason)
}

func TestEvaluateSlotMultiSlotVisit(t *testing.T) {
	in := baseInput("10:00")
	in.DurationMin = 60
	in.Appointments = []models.Appointment{
		row(uuid.New(), "10:30", 30, StatusPending),
	}

	// 10:00–11:00 colide com a linha de 10:30
	check := EvaluateSlot(in)
	assert.False(t, check.Bookable)
	assert.Equal(t, ReasonSlotTaken, check.Reason)

	in.DurationMin = 30
	check = EvaluateSlot(in)
	assert.True(t, check.Bookable)
}

func TestGridTimes(t *testing.T) {
	hours := &models.OperatingHours{StartTime: "09:00", EndTime: "11:00", Active: true}

	times, err := GridTimes(hours, 30)
	assert.NoError(t, err)
	assert.Equal(t, []string{"09:00", "09:30", "10:00", "10:30"}, times)
}

func TestGridTimesAlignsStartUp(t *testing.T) {
	hours := &models.OperatingHours{StartTime: "08:50", EndTime: "10:00", Active: true}

	times, err := GridTimes(hours, 30)
	assert.NoError(t, err)
	assert.Equal(t, []string{"09:00", "09:30"}, times)
}

func TestGridTimesNoHours(t *testing.T) {
	_, err := GridTimes(nil, 30)
	assert.ErrorIs(t, err, ErrNoOperatingHours)

	_, err = GridTimes(&models.OperatingHours{StartTime: "09:00", EndTime: "18:00"}, 30)
	assert.ErrorIs(t, err, ErrNoOperatingHours) // inativo

	_, err = GridTimes(&models.OperatingHours{StartTime: "10:00", EndTime: "09:00", Active: true}, 30)
	assert.ErrorIs(t, err, ErrNoOperatingHours)
}

func TestFitsWindow(t *testing.T) {
	hours := &models.OperatingHours{StartTime: "09:00", EndTime: "18:00", Active: true}

	assert.True(t, FitsWindow(hours, 540, 60))   // 09:00–10:00
	assert.True(t, FitsWindow(hours, 1020, 60))  // 17:00–18:00
	assert.False(t, FitsWindow(hours, 1050, 60)) // 17:30–18:30
	assert.False(t, FitsWindow(hours, 510, 60))  // 08:30–09:30
	assert.False(t, FitsWindow(nil, 540, 60))
}
