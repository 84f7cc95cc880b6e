package booking

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/navalhaapp/barber-dashboard/internal/audit"
	"github.com/navalhaapp/barber-dashboard/internal/cache"
	domain "github.com/navalhaapp/barber-dashboard/internal/domain/schedule"
	"github.com/navalhaapp/barber-dashboard/internal/httperr"
	"github.com/navalhaapp/barber-dashboard/internal/models"
	"github.com/navalhaapp/barber-dashboard/internal/timezone"
)

// ======================================================
// INPUT / OUTPUT
// ======================================================

type ProductLine struct {
	ProductID uint
	Quantity  int
}

type CreateVisitInput struct {
	BarbershopID uint
	ActorID      uint

	BarberID uint
	ClientID uint

	ServiceIDs []uint
	Products   []ProductLine

	Date  string
	Time  string
	Notes string
}

type VisitResult struct {
	VisitID  uuid.UUID             `json:"visit_id"`
	Rows     []models.Appointment  `json:"rows"`
	Services []models.VisitService `json:"services"`
	Products []models.VisitProduct `json:"products"`
}

// ======================================================
// USE CASE
// ======================================================

type CreateVisit struct {
	repo   domain.Repository
	locker cache.Locker
	audit  *audit.Dispatcher
}

func NewCreateVisit(
	repo domain.Repository,
	locker cache.Locker,
	audit *audit.Dispatcher,
) *CreateVisit {
	return &CreateVisit{
		repo:   repo,
		locker: locker,
		audit:  audit,
	}
}

const lockTTL = 10 * time.Second

func (uc *CreateVisit) Execute(
	ctx context.Context,
	in CreateVisitInput,
) (*VisitResult, error) {

	if len(in.ServiceIDs) == 0 {
		return nil, httperr.ErrBusiness("missing_services")
	}

	shop, err := uc.repo.GetBarbershopByID(ctx, in.BarbershopID)
	if err != nil {
		return nil, err
	}

	granularity := shop.SlotMinutes
	if granularity <= 0 {
		granularity = 30
	}

	loc := timezone.Location(shop.Timezone)
	day, err := time.ParseInLocation("2006-01-02", in.Date, loc)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	barber, err := uc.repo.GetBarber(ctx, in.BarbershopID, in.BarberID)
	if err != nil {
		return nil, httperr.ErrBusiness("barber_not_found")
	}
	if !barber.Active {
		return nil, httperr.ErrBusiness("barber_inactive")
	}

	client, err := uc.repo.GetClient(ctx, in.BarbershopID, in.ClientID)
	if err != nil {
		return nil, httperr.ErrBusiness("client_not_found")
	}

	visitID := uuid.New()

	totalDuration := 0
	fullPrice := 0.0
	services := make([]models.VisitService, 0, len(in.ServiceIDs))
	for _, id := range in.ServiceIDs {
		svc, err := uc.repo.GetService(ctx, in.BarbershopID, id)
		if err != nil {
			return nil, httperr.ErrBusiness("service_not_found")
		}
		if !svc.Active {
			return nil, httperr.ErrBusiness("service_not_found")
		}
		totalDuration += svc.DurationMin
		fullPrice += svc.Price
		services = append(services, models.VisitService{
			VisitID:     visitID,
			ServiceID:   svc.ID,
			Name:        svc.Name,
			DurationMin: svc.DurationMin,
			Price:       svc.Price,
			FinalPrice:  svc.Price,
		})
	}

	products := make([]models.VisitProduct, 0, len(in.Products))
	for _, line := range in.Products {
		product, err := uc.repo.GetRetailProduct(ctx, in.BarbershopID, line.ProductID)
		if err != nil {
			return nil, httperr.ErrBusiness("product_not_found")
		}
		qty := line.Quantity
		if qty <= 0 {
			qty = 1
		}
		fullPrice += product.Price * float64(qty)
		products = append(products, models.VisitProduct{
			VisitID:    visitID,
			ProductID:  product.ID,
			Name:       product.Name,
			Quantity:   qty,
			UnitPrice:  product.Price,
			FinalPrice: product.Price * float64(qty),
		})
	}

	slots, err := domain.ExpandSlots(in.Time, totalDuration, granularity)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotAligned):
			return nil, httperr.ErrBusiness("slot_not_aligned")
		case errors.Is(err, domain.ErrCrossesMidnight):
			return nil, httperr.ErrBusiness("outside_operating_hours")
		default:
			return nil, httperr.ErrBusiness("invalid_date_or_time")
		}
	}

	startMin, _ := domain.MinuteOfDay(in.Time)
	runMinutes := len(slots) * granularity

	hours, err := uc.repo.GetOperatingHours(ctx, in.BarbershopID, int(day.Weekday()))
	if err != nil {
		return nil, httperr.ErrBusiness("no_operating_hours")
	}
	if !domain.FitsWindow(hours, startMin, runMinutes) {
		if !hours.Active {
			return nil, httperr.ErrBusiness("no_operating_hours")
		}
		return nil, httperr.ErrBusiness("outside_operating_hours")
	}

	now := timezone.NowIn(shop.Timezone)
	if shop.MinAdvanceMinutes > 0 {
		start := day.Add(time.Duration(startMin) * time.Minute)
		if start.Before(now.Add(time.Duration(shop.MinAdvanceMinutes) * time.Minute)) {
			return nil, httperr.ErrBusiness("too_soon")
		}
	}

	blocks, err := uc.repo.ListUnavailabilityBlocks(ctx, in.BarberID, in.Date)
	if err != nil {
		return nil, err
	}
	existing, err := uc.repo.ListAppointmentsForDay(ctx, in.BarberID, in.Date)
	if err != nil {
		return nil, err
	}

	for _, slot := range slots {
		ev := domain.EvaluateSlot(domain.EvaluateInput{
			Barber:       barber,
			Date:         day,
			Now:          now,
			Slot:         slot,
			DurationMin:  granularity,
			Granularity:  granularity,
			Blocks:       blocks,
			Appointments: existing,
		})
		if !ev.Bookable {
			return nil, httperr.ErrBusiness(conflictCode(ev.Reason))
		}
	}

	lockKey := cache.BookingKey(in.BarberID, in.Date)
	locked, err := uc.locker.Acquire(ctx, lockKey, lockTTL)
	if err != nil {
		return nil, err
	}
	if !locked {
		return nil, httperr.ErrBusiness("booking_in_progress")
	}
	defer func() { _ = uc.locker.Release(ctx, lockKey) }()

	rows := make([]models.Appointment, 0, len(slots))
	for _, slot := range slots {
		rows = append(rows, models.Appointment{
			BarbershopID:     in.BarbershopID,
			VisitID:          visitID,
			BarberID:         in.BarberID,
			ClientID:         client.ID,
			Date:             in.Date,
			Time:             slot,
			DurationMin:      granularity,
			Status:           string(domain.InitialStatus()),
			TotalDurationMin: totalDuration,
			TotalPrice:       fullPrice,
			FullPrice:        fullPrice,
			Notes:            in.Notes,
		})
	}

	err = uc.repo.CreateVisit(ctx, domain.VisitWrite{
		Rows:     rows,
		Services: services,
		Products: products,
	})
	if err != nil {
		if httperr.IsBusiness(err, "time_conflict") || httperr.IsSlotTaken(err) {
			uc.audit.Dispatch(audit.Event{
				BarbershopID: in.BarbershopID,
				UserID:       &in.ActorID,
				Action:       audit.ActionVisitConflict,
				Entity:       "visit",
				Metadata: map[string]any{
					"barber_id": in.BarberID,
					"date":      in.Date,
					"time":      in.Time,
				},
			})
			return nil, httperr.ErrBusiness("time_conflict")
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BarbershopID: in.BarbershopID,
		UserID:       &in.ActorID,
		Action:       audit.ActionVisitBooked,
		Entity:       "visit",
		EntityID:     &rows[0].ID,
		Metadata: map[string]any{
			"visit_id": visitID.String(),
			"slots":    slots,
		},
	})

	return &VisitResult{
		VisitID:  visitID,
		Rows:     rows,
		Services: services,
		Products: products,
	}, nil
}

func conflictCode(reason domain.Reason) string {
	switch reason {
	case domain.ReasonBarberDayOff:
		return "barber_day_off"
	case domain.ReasonExpired:
		return "slot_expired"
	case domain.ReasonBlocked:
		return "barber_unavailable"
	case domain.ReasonSlotTaken:
		return "time_conflict"
	}
	return "time_conflict"
}
