package schedule

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/navalhaapp/barber-dashboard/internal/models"
)

// VisitWrite is everything persisted for one booking: one appointment row per
// slot plus the rendered items, written as a single transaction.
type VisitWrite struct {
	Rows     []models.Appointment
	Services []models.VisitService
	Products []models.VisitProduct
}

// VisitPricing carries the finalized totals applied at checkout.
type VisitPricing struct {
	TotalPrice    float64
	FullPrice     float64
	ServiceFinals map[uint]float64 // VisitService.ID -> final price
	ProductFinals map[uint]float64 // VisitProduct.ID -> final price
}

type Repository interface {
	// -------- Barbershop / catalog --------
	GetBarbershopByID(
		ctx context.Context,
		id uint,
	) (*models.Barbershop, error)

	GetBarber(
		ctx context.Context,
		barbershopID uint,
		barberID uint,
	) (*models.Barber, error)

	GetClient(
		ctx context.Context,
		barbershopID uint,
		clientID uint,
	) (*models.Client, error)

	GetService(
		ctx context.Context,
		barbershopID uint,
		serviceID uint,
	) (*models.BarberService, error)

	GetRetailProduct(
		ctx context.Context,
		barbershopID uint,
		productID uint,
	) (*models.RetailProduct, error)

	// -------- Schedule configuration --------
	GetOperatingHours(
		ctx context.Context,
		barbershopID uint,
		weekday int,
	) (*models.OperatingHours, error)

	ListUnavailabilityBlocks(
		ctx context.Context,
		barberID uint,
		date string,
	) ([]models.UnavailabilityBlock, error)

	// -------- Appointments --------
	ListAppointmentsForDay(
		ctx context.Context,
		barberID uint,
		date string,
	) ([]models.Appointment, error)

	CreateVisit(
		ctx context.Context,
		write VisitWrite,
	) error

	GetVisitRows(
		ctx context.Context,
		barbershopID uint,
		visitID uuid.UUID,
	) ([]models.Appointment, error)

	GetVisitItems(
		ctx context.Context,
		visitID uuid.UUID,
	) ([]models.VisitService, []models.VisitProduct, error)

	// UpdateVisitStatus cascades the status to every row of the visit
	// identified by (client, barber, date) and returns the affected count.
	UpdateVisitStatus(
		ctx context.Context,
		clientID uint,
		barberID uint,
		date string,
		status Status,
		now time.Time,
	) (int64, error)

	ApplyVisitPricing(
		ctx context.Context,
		visitID uuid.UUID,
		pricing VisitPricing,
	) error

	ListAppointmentsForPeriod(
		ctx context.Context,
		barbershopID uint,
		from string,
		to string,
	) ([]models.Appointment, error)

	// -------- Reporting --------
	ListCompletedVisits(
		ctx context.Context,
		barbershopID uint,
		from string,
		to string,
	) ([]models.Appointment, error)
}
