package booking

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	domain "github.com/navalhaapp/barber-dashboard/internal/domain/schedule"
	"github.com/navalhaapp/barber-dashboard/internal/httperr"
	"github.com/navalhaapp/barber-dashboard/internal/models"
)

const testDate = "2030-01-08"

func testShop() *models.Barbershop {
	return &models.Barbershop{
		ID:          1,
		Name:        "Navalha de Ouro",
		Timezone:    "America/Sao_Paulo",
		SlotMinutes: 30,
	}
}

func setupCreateMocks(repo *MockScheduleRepository, existing []models.Appointment) {
	repo.On("GetBarbershopByID", mock.Anything, uint(1)).Return(testShop(), nil)
	repo.On("GetBarber", mock.Anything, uint(1), uint(2)).
		Return(&models.Barber{ID: 2, Name: "João", Active: true}, nil)
	repo.On("GetClient", mock.Anything, uint(1), uint(3)).
		Return(&models.Client{ID: 3, Name: "Carlos"}, nil)
	repo.On("GetService", mock.Anything, uint(1), uint(10)).
		Return(&models.BarberService{ID: 10, Name: "Corte", DurationMin: 45, Price: 50, Active: true}, nil)
	repo.On("GetOperatingHours", mock.Anything, uint(1), mock.Anything).
		Return(&models.OperatingHours{StartTime: "09:00", EndTime: "18:00", Active: true}, nil)
	repo.On("ListUnavailabilityBlocks", mock.Anything, uint(2), testDate).
		Return([]models.UnavailabilityBlock{}, nil)
	repo.On("ListAppointmentsForDay", mock.Anything, uint(2), testDate).
		Return(existing, nil)
}

func baseCreateInput() CreateVisitInput {
	return CreateVisitInput{
		BarbershopID: 1,
		ActorID:      7,
		BarberID:     2,
		ClientID:     3,
		ServiceIDs:   []uint{10},
		Date:         testDate,
		Time:         "10:00",
	}
}

func TestCreateVisitExpandsIntoSlotRows(t *testing.T) {
	repo := new(MockScheduleRepository)
	locker := new(MockLocker)
	setupCreateMocks(repo, nil)

	locker.On("Acquire", mock.Anything, "booking:2:"+testDate, mock.Anything).Return(true, nil)
	locker.On("Release", mock.Anything, "booking:2:"+testDate).Return(nil)

	repo.On("CreateVisit", mock.Anything, mock.MatchedBy(func(w domain.VisitWrite) bool {
		return len(w.Rows) == 2 &&
			w.Rows[0].Time == "10:00" &&
			w.Rows[1].Time == "10:30" &&
			w.Rows[0].VisitID == w.Rows[1].VisitID
	})).Return(nil)

	uc := NewCreateVisit(repo, locker, nil)
	result, err := uc.Execute(context.Background(), baseCreateInput())

	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, result.VisitID)
	assert.Len(t, result.Rows, 2)

	// 45min em grade de 30 ocupa dois slots; cada linha carrega o agregado
	for _, row := range result.Rows {
		assert.Equal(t, 30, row.DurationMin)
		assert.Equal(t, 45, row.TotalDurationMin)
		assert.Equal(t, 50.0, row.TotalPrice)
		assert.Equal(t, "pendente", row.Status)
	}

	repo.AssertExpectations(t)
	locker.AssertExpectations(t)
}

func TestCreateVisitRejectsOccupiedSlot(t *testing.T) {
	repo := new(MockScheduleRepository)
	locker := new(MockLocker)

	existing := []models.Appointment{
		{VisitID: uuid.New(), Time: "10:30", DurationMin: 30, Status: "confirmado"},
	}
	setupCreateMocks(repo, existing)

	uc := NewCreateVisit(repo, locker, nil)
	_, err := uc.Execute(context.Background(), baseCreateInput())

	assert.True(t, httperr.IsBusiness(err, "time_conflict"))

	// o conflito é detectado antes do lock e da escrita
	locker.AssertNotCalled(t, "Acquire", mock.Anything, mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "CreateVisit", mock.Anything, mock.Anything)
}

func TestCreateVisitIgnoresCancelledRows(t *testing.T) {
	repo := new(MockScheduleRepository)
	locker := new(MockLocker)

	existing := []models.Appointment{
		{VisitID: uuid.New(), Time: "10:00", DurationMin: 30, Status: "cancelado"},
		{VisitID: uuid.New(), Time: "10:30", DurationMin: 30, Status: "cancelado"},
	}
	setupCreateMocks(repo, existing)

	locker.On("Acquire", mock.Anything, mock.Anything, mock.Anything).Return(true, nil)
	locker.On("Release", mock.Anything, mock.Anything).Return(nil)
	repo.On("CreateVisit", mock.Anything, mock.Anything).Return(nil)

	uc := NewCreateVisit(repo, locker, nil)
	_, err := uc.Execute(context.Background(), baseCreateInput())

	assert.NoError(t, err)
}

func TestCreateVisitLockDenied(t *testing.T) {
	repo := new(MockScheduleRepository)
	locker := new(MockLocker)
	setupCreateMocks(repo, nil)

	locker.On("Acquire", mock.Anything, mock.Anything, mock.Anything).Return(false, nil)

	uc := NewCreateVisit(repo, locker, nil)
	_, err := uc.Execute(context.Background(), baseCreateInput())

	assert.True(t, httperr.IsBusiness(err, "booking_in_progress"))
	repo.AssertNotCalled(t, "CreateVisit", mock.Anything, mock.Anything)
}

// Corrida perdida: a checagem em memória passou, mas o banco rejeitou a
// escrita pelo índice parcial.
func TestCreateVisitDatabaseConflict(t *testing.T) {
	repo := new(MockScheduleRepository)
	locker := new(MockLocker)
	setupCreateMocks(repo, nil)

	locker.On("Acquire", mock.Anything, mock.Anything, mock.Anything).Return(true, nil)
	locker.On("Release", mock.Anything, mock.Anything).Return(nil)

	repo.On("CreateVisit", mock.Anything, mock.Anything).
		Return(httperr.ErrBusiness("time_conflict"))

	uc := NewCreateVisit(repo, locker, nil)
	_, err := uc.Execute(context.Background(), baseCreateInput())

	assert.True(t, httperr.IsBusiness(err, "time_conflict"))
}

func TestCreateVisitUnalignedStart(t *testing.T) {
	repo := new(MockScheduleRepository)
	locker := new(MockLocker)
	setupCreateMocks(repo, nil)

	in := baseCreateInput()
	in.Time = "10:15"

	uc := NewCreateVisit(repo, locker, nil)
	_, err := uc.Execute(context.Background(), in)

	assert.True(t, httperr.IsBusiness(err, "slot_not_aligned"))
}

func TestCreateVisitOutsideWindow(t *testing.T) {
	repo := new(MockScheduleRepository)
	locker := new(MockLocker)
	setupCreateMocks(repo, nil)

	in := baseCreateInput()
	in.Time = "17:30" // 45min estoura a janela que fecha às 18:00

	uc := NewCreateVisit(repo, locker, nil)
	_, err := uc.Execute(context.Background(), in)

	assert.True(t, httperr.IsBusiness(err, "outside_operating_hours"))
}

func TestCreateVisitBarberDayOff(t *testing.T) {
	repo := new(MockScheduleRepository)
	locker := new(MockLocker)

	repo.On("GetBarbershopByID", mock.Anything, uint(1)).Return(testShop(), nil)
	repo.On("GetBarber", mock.Anything, uint(1), uint(2)).
		Return(&models.Barber{ID: 2, Active: true, AvailableDays: models.Weekdays{1}}, nil)
	repo.On("GetClient", mock.Anything, uint(1), uint(3)).
		Return(&models.Client{ID: 3}, nil)
	repo.On("GetService", mock.Anything, uint(1), uint(10)).
		Return(&models.BarberService{ID: 10, DurationMin: 45, Price: 50, Active: true}, nil)
	repo.On("GetOperatingHours", mock.Anything, uint(1), mock.Anything).
		Return(&models.OperatingHours{StartTime: "09:00", EndTime: "18:00", Active: true}, nil)
	repo.On("ListUnavailabilityBlocks", mock.Anything, uint(2), testDate).
		Return([]models.UnavailabilityBlock{}, nil)
	repo.On("ListAppointmentsForDay", mock.Anything, uint(2), testDate).
		Return([]models.Appointment{}, nil)

	// 2030-01-08 é terça; o barbeiro só atende segunda
	uc := NewCreateVisit(repo, locker, nil)
	_, err := uc.Execute(context.Background(), baseCreateInput())

	assert.True(t, httperr.IsBusiness(err, "barber_day_off"))
}

func TestCreateVisitWithoutServices(t *testing.T) {
	uc := NewCreateVisit(new(MockScheduleRepository), new(MockLocker), nil)

	in := baseCreateInput()
	in.ServiceIDs = nil

	_, err := uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "missing_services"))
}
