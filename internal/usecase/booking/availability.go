package booking

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	domain "github.com/navalhaapp/barber-dashboard/internal/domain/schedule"
	"github.com/navalhaapp/barber-dashboard/internal/httperr"
	"github.com/navalhaapp/barber-dashboard/internal/timezone"
)

type AvailabilityInput struct {
	BarbershopID uint
	BarberID     uint
	Date         string
	ServiceIDs   []uint
	ExcludeVisit uuid.UUID
}

type DayAvailability struct {
	Date        string             `json:"date"`
	Granularity int                `json:"granularity_min"`
	HasHours    bool               `json:"has_hours"`
	Message     string             `json:"message,omitempty"`
	Slots       []domain.SlotCheck `json:"slots"`
}

type GetDayAvailability struct {
	repo domain.Repository
}

func NewGetDayAvailability(repo domain.Repository) *GetDayAvailability {
	return &GetDayAvailability{repo: repo}
}

func (uc *GetDayAvailability) Execute(
	ctx context.Context,
	in AvailabilityInput,
) (*DayAvailability, error) {

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
		return nil, httperr.ErrBusiness("invalid_date")
	}

	barber, err := uc.repo.GetBarber(ctx, in.BarbershopID, in.BarberID)
	if err != nil {
		return nil, httperr.ErrBusiness("barber_not_found")
	}

	out := &DayAvailability{
		Date:        in.Date,
		Granularity: granularity,
		Slots:       []domain.SlotCheck{},
	}

	hours, err := uc.repo.GetOperatingHours(ctx, in.BarbershopID, int(day.Weekday()))
	if err != nil {
		out.Message = "Sem horário de funcionamento configurado para esta data."
		return out, nil
	}

	times, err := domain.GridTimes(hours, granularity)
	if err != nil {
		if errors.Is(err, domain.ErrNoOperatingHours) {
			out.Message = "Sem horário de funcionamento configurado para esta data."
			return out, nil
		}
		return nil, err
	}
	out.HasHours = true

	// With services selected, a slot is offered only when the whole visit
	// fits from that start; browsing without services checks one bare slot.
	duration := 0
	for _, id := range in.ServiceIDs {
		svc, err := uc.repo.GetService(ctx, in.BarbershopID, id)
		if err != nil {
			return nil, httperr.ErrBusiness("service_not_found")
		}
		duration += svc.DurationMin
	}
	if duration <= 0 {
		duration = granularity
	}

	blocks, err := uc.repo.ListUnavailabilityBlocks(ctx, in.BarberID, in.Date)
	if err != nil {
		return nil, err
	}
	existing, err := uc.repo.ListAppointmentsForDay(ctx, in.BarberID, in.Date)
	if err != nil {
		return nil, err
	}

	now := timezone.NowIn(shop.Timezone)

	for _, slot := range times {
		startMin, err := domain.MinuteOfDay(slot)
		if err != nil {
			continue
		}
		if !domain.FitsWindow(hours, startMin, duration) {
			continue
		}

		out.Slots = append(out.Slots, domain.EvaluateSlot(domain.EvaluateInput{
			Barber:       barber,
			Date:         day,
			Now:          now,
			Slot:         slot,
			DurationMin:  duration,
			Granularity:  granularity,
			Blocks:       blocks,
			Appointments: existing,
			ExcludeVisit: in.ExcludeVisit,
		}))
	}

	return out, nil
}
