package booking

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	domain "github.com/navalhaapp/barber-dashboard/internal/domain/schedule"
	"github.com/navalhaapp/barber-dashboard/internal/models"
)

// Mock repositories

type MockScheduleRepository struct {
	mock.Mock
}

func (m *MockScheduleRepository) GetBarbershopByID(ctx context.Context, id uint) (*models.Barbershop, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Barbershop), args.Error(1)
}

func (m *MockScheduleRepository) GetBarber(ctx context.Context, barbershopID, barberID uint) (*models.Barber, error) {
	args := m.Called(ctx, barbershopID, barberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Barber), args.Error(1)
}

func (m *MockScheduleRepository) GetClient(ctx context.Context, barbershopID, clientID uint) (*models.Client, error) {
	args := m.Called(ctx, barbershopID, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Client), args.Error(1)
}

func (m *MockScheduleRepository) GetService(ctx context.Context, barbershopID, serviceID uint) (*models.BarberService, error) {
	args := m.Called(ctx, barbershopID, serviceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BarberService), args.Error(1)
}

func (m *MockScheduleRepository) GetRetailProduct(ctx context.Context, barbershopID, productID uint) (*models.RetailProduct, error) {
	args := m.Called(ctx, barbershopID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RetailProduct), args.Error(1)
}

func (m *MockScheduleRepository) GetOperatingHours(ctx context.Context, barbershopID uint, weekday int) (*models.OperatingHours, error) {
	args := m.Called(ctx, barbershopID, weekday)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.OperatingHours), args.Error(1)
}

func (m *MockScheduleRepository) ListUnavailabilityBlocks(ctx context.Context, barberID uint, date string) ([]models.UnavailabilityBlock, error) {
	args := m.Called(ctx, barberID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.UnavailabilityBlock), args.Error(1)
}

func (m *MockScheduleRepository) ListAppointmentsForDay(ctx context.Context, barberID uint, date string) ([]models.Appointment, error) {
	args := m.Called(ctx, barberID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *MockScheduleRepository) CreateVisit(ctx context.Context, write domain.VisitWrite) error {
	args := m.Called(ctx, write)
	return args.Error(0)
}

func (m *MockScheduleRepository) GetVisitRows(ctx context.Context, barbershopID uint, visitID uuid.UUID) ([]models.Appointment, error) {
	args := m.Called(ctx, barbershopID, visitID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *MockScheduleRepository) GetVisitItems(ctx context.Context, visitID uuid.UUID) ([]models.VisitService, []models.VisitProduct, error) {
	args := m.Called(ctx, visitID)
	var services []models.VisitService
	var products []models.VisitProduct
	if args.Get(0) != nil {
		services = args.Get(0).([]models.VisitService)
	}
	if args.Get(1) != nil {
		products = args.Get(1).([]models.VisitProduct)
	}
	return services, products, args.Error(2)
}

func (m *MockScheduleRepository) UpdateVisitStatus(ctx context.Context, clientID, barberID uint, date string, status domain.Status, now time.Time) (int64, error) {
	args := m.Called(ctx, clientID, barberID, date, status, now)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockScheduleRepository) ApplyVisitPricing(ctx context.Context, visitID uuid.UUID, pricing domain.VisitPricing) error {
	args := m.Called(ctx, visitID, pricing)
	return args.Error(0)
}

func (m *MockScheduleRepository) ListAppointmentsForPeriod(ctx context.Context, barbershopID uint, from, to string) ([]models.Appointment, error) {
	args := m.Called(ctx, barbershopID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *MockScheduleRepository) ListCompletedVisits(ctx context.Context, barbershopID uint, from, to string) ([]models.Appointment, error) {
	args := m.Called(ctx, barbershopID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Appointment), args.Error(1)
}

type MockSubscriptionRepository struct {
	mock.Mock
}

func (m *MockSubscriptionRepository) GetActiveSubscription(ctx context.Context, barbershopID, clientID uint) (*models.Subscription, error) {
	args := m.Called(ctx, barbershopID, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Subscription), args.Error(1)
}

func (m *MockSubscriptionRepository) CountBenefitVisitsBetween(ctx context.Context, clientID uint, from, to time.Time) (int, error) {
	args := m.Called(ctx, clientID, from, to)
	return args.Int(0), args.Error(1)
}

type MockLocker struct {
	mock.Mock
}

func (m *MockLocker) Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	args := m.Called(ctx, key, ttl)
	return args.Bool(0), args.Error(1)
}

func (m *MockLocker) Release(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}
