package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	domain "github.com/navalhaapp/barber-dashboard/internal/domain/schedule"
	"github.com/navalhaapp/barber-dashboard/internal/dto"
	"github.com/navalhaapp/barber-dashboard/internal/httperr"
	"github.com/navalhaapp/barber-dashboard/internal/models"
)

type ListVisits struct {
	repo domain.Repository
}

func NewListVisits(repo domain.Repository) *ListVisits {
	return &ListVisits{repo: repo}
}

// ByDate lists the visits of one calendar day, slot rows collapsed.
func (uc *ListVisits) ByDate(
	ctx context.Context,
	barbershopID uint,
	date string,
) ([]dto.VisitListDTO, error) {

	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	rows, err := uc.repo.ListAppointmentsForPeriod(
		ctx,
		barbershopID,
		date,
		day.AddDate(0, 0, 1).Format("2006-01-02"),
	)
	if err != nil {
		return nil, err
	}

	return collapseVisits(rows), nil
}

// ByMonth lists a whole month, used by the calendar view.
func (uc *ListVisits) ByMonth(
	ctx context.Context,
	barbershopID uint,
	year int,
	month int,
) ([]dto.VisitListDTO, error) {

	if year < 2000 || year > 2100 || month < 1 || month > 12 {
		return nil, httperr.ErrBusiness("invalid_year_or_month")
	}

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	rows, err := uc.repo.ListAppointmentsForPeriod(
		ctx,
		barbershopID,
		start.Format("2006-01-02"),
		start.AddDate(0, 1, 0).Format("2006-01-02"),
	)
	if err != nil {
		return nil, err
	}

	return collapseVisits(rows), nil
}

// collapseVisits folds slot rows into one entry per visit. Rows arrive
// ordered by date and time, so the first row of a visit is its start.
func collapseVisits(rows []models.Appointment) []dto.VisitListDTO {
	out := make([]dto.VisitListDTO, 0)
	index := make(map[uuid.UUID]int)

	for i := range rows {
		row := &rows[i]

		idx, ok := index[row.VisitID]
		if !ok {
			index[row.VisitID] = len(out)
			out = append(out, dto.VisitListDTO{
				VisitID:          row.VisitID,
				Date:             row.Date,
				StartTime:        row.Time,
				Status:           row.Status,
				ClientName:       row.Client.Name,
				BarberName:       row.Barber.Name,
				TotalDurationMin: row.TotalDurationMin,
				TotalPrice:       row.TotalPrice,
				FullPrice:        row.FullPrice,
			})
			idx = len(out) - 1
		}

		entry := &out[idx]
		entry.SlotCount++

		if startMin, err := domain.MinuteOfDay(row.Time); err == nil {
			dur := row.DurationMin
			if dur <= 0 {
				dur = 30
			}
			if end := startMin + dur; end > mustMinute(entry.EndTime) {
				entry.EndTime = domain.FormatMinute(end)
			}
		}
	}

	return out
}

func mustMinute(hm string) int {
	if hm == "" {
		return 0
	}
	m, err := domain.MinuteOfDay(hm)
	if err != nil {
		return 0
	}
	return m
}
