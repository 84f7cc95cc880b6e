package booking

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	domain "github.com/navalhaapp/barber-dashboard/internal/domain/schedule"
	"github.com/navalhaapp/barber-dashboard/internal/models"
)

func slotTimes(checks []domain.SlotCheck) []string {
	out := make([]string, 0, len(checks))
	for _, c := range checks {
		out = append(out, c.Time)
	}
	return out
}

func TestDayAvailabilityGrid(t *testing.T) {
	repo := new(MockScheduleRepository)

	repo.On("GetBarbershopByID", mock.Anything, uint(1)).Return(testShop(), nil)
	repo.On("GetBarber", mock.Anything, uint(1), uint(2)).
		Return(&models.Barber{ID: 2, Active: true}, nil)
	repo.On("GetOperatingHours", mock.Anything, uint(1), mock.Anything).
		Return(&models.OperatingHours{StartTime: "09:00", EndTime: "11:00", Active: true}, nil)
	repo.On("ListUnavailabilityBlocks", mock.Anything, uint(2), testDate).
		Return([]models.UnavailabilityBlock{}, nil)
	repo.On("ListAppointmentsForDay", mock.Anything, uint(2), testDate).
		Return([]models.Appointment{
			{VisitID: uuid.New(), Time: "09:30", DurationMin: 30, Status: "pendente"},
		}, nil)

	uc := NewGetDayAvailability(repo)
	out, err := uc.Execute(context.Background(), AvailabilityInput{
		BarbershopID: 1,
		BarberID:     2,
		Date:         testDate,
	})

	assert.NoError(t, err)
	assert.True(t, out.HasHours)
	assert.Equal(t, 30, out.Granularity)
	assert.Equal(t, []string{"09:00", "09:30", "10:00", "10:30"}, slotTimes(out.Slots))

	assert.True(t, out.Slots[0].Bookable)
	assert.False(t, out.Slots[1].Bookable)
	assert.Equal(t, domain.ReasonSlotTaken, out.Slots[1].Reason)
	assert.True(t, out.Slots[2].Bookable)
}

// Com serviços escolhidos, só aparecem os inícios em que a visita inteira
// cabe na janela e na agenda.
func TestDayAvailabilityWithServiceDuration(t *testing.T) {
	repo := new(MockScheduleRepository)

	repo.On("GetBarbershopByID", mock.Anything, uint(1)).Return(testShop(), nil)
	repo.On("GetBarber", mock.Anything, uint(1), uint(2)).
		Return(&models.Barber{ID: 2, Active: true}, nil)
	repo.On("GetOperatingHours", mock.Anything, uint(1), mock.Anything).
		Return(&models.OperatingHours{StartTime: "09:00", EndTime: "11:00", Active: true}, nil)
	repo.On("GetService", mock.Anything, uint(1), uint(10)).
		Return(&models.BarberService{ID: 10, DurationMin: 60, Price: 50, Active: true}, nil)
	repo.On("ListUnavailabilityBlocks", mock.Anything, uint(2), testDate).
		Return([]models.UnavailabilityBlock{}, nil)
	repo.On("ListAppointmentsForDay", mock.Anything, uint(2), testDate).
		Return([]models.Appointment{
			{VisitID: uuid.New(), Time: "10:00", DurationMin: 30, Status: "confirmado"},
		}, nil)

	uc := NewGetDayAvailability(repo)
	out, err := uc.Execute(context.Background(), AvailabilityInput{
		BarbershopID: 1,
		BarberID:     2,
		Date:         testDate,
		ServiceIDs:   []uint{10},
	})

	assert.NoError(t, err)
	// 10:30 nem aparece: 60min a partir dali estouram a janela
	assert.Equal(t, []string{"09:00", "09:30", "10:00"}, slotTimes(out.Slots))

	assert.True(t, out.Slots[0].Bookable)
	// 09:30–10:30 e 10:00–11:00 colidem com a linha das 10:00
	assert.False(t, out.Slots[1].Bookable)
	assert.False(t, out.Slots[2].Bookable)
}

func TestDayAvailabilityExcludesOwnVisit(t *testing.T) {
	repo := new(MockScheduleRepository)
	mine := uuid.New()

	repo.On("GetBarbershopByID", mock.Anything, uint(1)).Return(testShop(), nil)
	repo.On("GetBarber", mock.Anything, uint(1), uint(2)).
		Return(&models.Barber{ID: 2, Active: true}, nil)
	repo.On("GetOperatingHours", mock.Anything, uint(1), mock.Anything).
		Return(&models.OperatingHours{StartTime: "09:00", EndTime: "10:00", Active: true}, nil)
	repo.On("ListUnavailabilityBlocks", mock.Anything, uint(2), testDate).
		Return([]models.UnavailabilityBlock{}, nil)
	repo.On("ListAppointmentsForDay", mock.Anything, uint(2), testDate).
		Return([]models.Appointment{
			{VisitID: mine, Time: "09:00", DurationMin: 30, Status: "confirmado"},
		}, nil)

	uc := NewGetDayAvailability(repo)
	out, err := uc.Execute(context.Background(), AvailabilityInput{
		BarbershopID: 1,
		BarberID:     2,
		Date:         testDate,
		ExcludeVisit: mine,
	})

	assert.NoError(t, err)
	assert.True(t, out.Slots[0].Bookable)
}

// Dia sem janela configurada não é erro; volta vazio com aviso.
func TestDayAvailabilityNoOperatingHours(t *testing.T) {
	repo := new(MockScheduleRepository)

	repo.On("GetBarbershopByID", mock.Anything, uint(1)).Return(testShop(), nil)
	repo.On("GetBarber", mock.Anything, uint(1), uint(2)).
		Return(&models.Barber{ID: 2, Active: true}, nil)
	repo.On("GetOperatingHours", mock.Anything, uint(1), mock.Anything).
		Return(nil, errors.New("record not found"))

	uc := NewGetDayAvailability(repo)
	out, err := uc.Execute(context.Background(), AvailabilityInput{
		BarbershopID: 1,
		BarberID:     2,
		Date:         testDate,
	})

	assert.NoError(t, err)
	assert.False(t, out.HasHours)
	assert.Empty(t, out.Slots)
	assert.NotEmpty(t, out.Message)
}

func TestDayAvailabilityInactiveWindow(t *testing.T) {
	repo := new(MockScheduleRepository)

	repo.On("GetBarbershopByID", mock.Anything, uint(1)).Return(testShop(), nil)
	repo.On("GetBarber", mock.Anything, uint(1), uint(2)).
		Return(&models.Barber{ID: 2, Active: true}, nil)
	repo.On("GetOperatingHours", mock.Anything, uint(1), mock.Anything).
		Return(&models.OperatingHours{StartTime: "09:00", EndTime: "18:00", Active: false}, nil)

	uc := NewGetDayAvailability(repo)
	out, err := uc.Execute(context.Background(), AvailabilityInput{
		BarbershopID: 1,
		BarberID:     2,
		Date:         testDate,
	})

	assert.NoError(t, err)
	assert.False(t, out.HasHours)
	assert.Empty(t, out.Slots)
}
