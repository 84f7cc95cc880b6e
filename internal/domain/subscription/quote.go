package subscription

import (
	"math"
	"time"

	"github.com/navalhaapp/barber-dashboard/internal/models"
)

type QuoteItem struct {
	ID         uint    `json:"id"`
	Name       string  `json:"name"`
	Quantity   int     `json:"quantity"`
	BasePrice  float64 `json:"base_price"`
	FinalPrice float64 `json:"final_price"`
	Discounted bool    `json:"discounted"`
}

// Quote is the checkout total for one visit, with the pre-discount total
// retained for the savings display.
type Quote struct {
	Services []QuoteItem `json:"services"`
	Products []QuoteItem `json:"products"`

	Total     float64 `json:"total"`
	FullTotal float64 `json:"full_total"`
	Savings   float64 `json:"savings"`

	BenefitValid bool `json:"benefit_valid"`

	// Informational usage against the plan's monthly cap; never blocks.
	UsedThisCycle int  `json:"used_this_cycle"`
	MonthlyCap    int  `json:"monthly_cap"`
	CapExceeded   bool `json:"cap_exceeded"`
}

// BuildQuote resolves every item of a visit against the client's plan.
func BuildQuote(
	services []models.VisitService,
	products []models.VisitProduct,
	plan *models.Plan,
	validToday bool,
) Quote {

	q := Quote{BenefitValid: validToday}

	for _, s := range services {
		final := ResolvePrice(s.Price, BenefitFor(plan, ItemService, s.ServiceID), validToday)
		q.Services = append(q.Services, QuoteItem{
			ID:         s.ID,
			Name:       s.Name,
			Quantity:   1,
			BasePrice:  s.Price,
			FinalPrice: final,
			Discounted: final < s.Price,
		})
		q.Total += final
		q.FullTotal += s.Price
	}

	for _, p := range products {
		qty := p.Quantity
		if qty <= 0 {
			qty = 1
		}
		unitFinal := ResolvePrice(p.UnitPrice, BenefitFor(plan, ItemProduct, p.ProductID), validToday)
		q.Products = append(q.Products, QuoteItem{
			ID:         p.ID,
			Name:       p.Name,
			Quantity:   qty,
			BasePrice:  p.UnitPrice,
			FinalPrice: unitFinal * float64(qty),
			Discounted: unitFinal < p.UnitPrice,
		})
		q.Total += unitFinal * float64(qty)
		q.FullTotal += p.UnitPrice * float64(qty)
	}

	q.Total = roundCents(q.Total)
	q.FullTotal = roundCents(q.FullTotal)
	q.Savings = roundCents(q.FullTotal - q.Total)

	return q
}

// Discounted reports whether any benefit actually lowered a price.
func (q Quote) Discounted() bool {
	return q.Savings > 0
}

// CycleBounds returns the current monthly benefit cycle of the subscription:
// the anniversary window of StartDate containing the reference day.
func CycleBounds(sub *models.Subscription, ref time.Time) (time.Time, time.Time) {
	start := truncateDay(sub.StartDate)
	cycleStart := start
	for {
		next := cycleStart.AddDate(0, 1, 0)
		if next.After(ref) {
			return cycleStart, next
		}
		cycleStart = next
	}
}

// ProRatedFirstCycle charges only the remaining share of the start month,
// counting the start day itself.
func ProRatedFirstCycle(price float64, start time.Time) float64 {
	daysInMonth := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, start.Location()).
		AddDate(0, 1, -1).Day()
	remaining := daysInMonth - start.Day() + 1

	return roundCents(price * float64(remaining) / float64(daysInMonth))
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
