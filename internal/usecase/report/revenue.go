package report

import (
	"context"
	"math"

	"github.com/google/uuid"

	"github.com/navalhaapp/barber-dashboard/internal/models"
)

// VisitSource is the slice of the schedule repository this report needs.
type VisitSource interface {
	ListCompletedVisits(
		ctx context.Context,
		barbershopID uint,
		from string,
		to string,
	) ([]models.Appointment, error)
}

type BarberLine struct {
	BarberID          uint    `json:"barber_id"`
	BarberName        string  `json:"barber_name"`
	Visits            int     `json:"visits"`
	Revenue           float64 `json:"revenue"`
	CommissionPercent float64 `json:"commission_percent"`
	Commission        float64 `json:"commission"`
}

type RevenueReport struct {
	From string `json:"from"`
	To   string `json:"to"`

	Visits      int     `json:"visits"`
	Revenue     float64 `json:"revenue"`
	FullRevenue float64 `json:"full_revenue"`
	Savings     float64 `json:"savings_granted"`

	Commissions float64      `json:"commissions"`
	Barbers     []BarberLine `json:"barbers"`
}

type BuildRevenueReport struct {
	repo VisitSource
}

func NewBuildRevenueReport(repo VisitSource) *BuildRevenueReport {
	return &BuildRevenueReport{repo: repo}
}

// Execute aggregates completed visits in [from, to). Visit totals ride on
// every slot row, so rows are collapsed by visit before summing.
func (uc *BuildRevenueReport) Execute(
	ctx context.Context,
	barbershopID uint,
	from string,
	to string,
) (*RevenueReport, error) {

	rows, err := uc.repo.ListCompletedVisits(ctx, barbershopID, from, to)
	if err != nil {
		return nil, err
	}

	out := &RevenueReport{From: from, To: to, Barbers: []BarberLine{}}

	seen := make(map[uuid.UUID]bool)
	perBarber := make(map[uint]*BarberLine)
	var barberOrder []uint

	for i := range rows {
		row := &rows[i]
		if seen[row.VisitID] {
			continue
		}
		seen[row.VisitID] = true

		out.Visits++
		out.Revenue += row.TotalPrice
		out.FullRevenue += row.FullPrice

		line, ok := perBarber[row.BarberID]
		if !ok {
			line = &BarberLine{
				BarberID:          row.BarberID,
				BarberName:        row.Barber.Name,
				CommissionPercent: row.Barber.CommissionPercent,
			}
			perBarber[row.BarberID] = line
			barberOrder = append(barberOrder, row.BarberID)
		}
		line.Visits++
		line.Revenue += row.TotalPrice
	}

	for _, id := range barberOrder {
		line := perBarber[id]
		line.Revenue = roundCents(line.Revenue)
		line.Commission = roundCents(line.Revenue * line.CommissionPercent / 100)
		out.Commissions += line.Commission
		out.Barbers = append(out.Barbers, *line)
	}

	out.Revenue = roundCents(out.Revenue)
	out.FullRevenue = roundCents(out.FullRevenue)
	out.Savings = roundCents(out.FullRevenue - out.Revenue)
	out.Commissions = roundCents(out.Commissions)

	return out, nil
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
