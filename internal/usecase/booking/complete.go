package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/navalhaapp/barber-dashboard/internal/audit"
	domain "github.com/navalhaapp/barber-dashboard/internal/domain/schedule"
	sub "github.com/navalhaapp/barber-dashboard/internal/domain/subscription"
	"github.com/navalhaapp/barber-dashboard/internal/httperr"
	"github.com/navalhaapp/barber-dashboard/internal/models"
	"github.com/navalhaapp/barber-dashboard/internal/timezone"
)

type CompleteResult struct {
	CascadeResult
	Quote sub.Quote `json:"quote"`
}

// CompleteVisit finalizes a visit: resolves subscription benefits into the
// checkout quote, stores the final totals and cascades "atendido" to every
// slot row. Re-finalizing an already completed visit reprices it.
type CompleteVisit struct {
	repo    domain.Repository
	subRepo sub.Repository
	audit   *audit.Dispatcher
}

func NewCompleteVisit(
	repo domain.Repository,
	subRepo sub.Repository,
	audit *audit.Dispatcher,
) *CompleteVisit {
	return &CompleteVisit{
		repo:    repo,
		subRepo: subRepo,
		audit:   audit,
	}
}

func (uc *CompleteVisit) Execute(
	ctx context.Context,
	barbershopID uint,
	actorID uint,
	visitID uuid.UUID,
) (*CompleteResult, error) {

	shop, err := uc.repo.GetBarbershopByID(ctx, barbershopID)
	if err != nil {
		return nil, err
	}

	rows, err := uc.repo.GetVisitRows(ctx, barbershopID, visitID)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, httperr.ErrBusiness("visit_not_found")
	}

	head := rows[0]
	if err := domain.CanComplete(domain.Status(head.Status)); err != nil {
		return nil, err
	}

	services, products, err := uc.repo.GetVisitItems(ctx, visitID)
	if err != nil {
		return nil, err
	}

	loc := timezone.Location(shop.Timezone)
	visitDay, err := time.ParseInLocation("2006-01-02", head.Date, loc)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	subscription, err := uc.subRepo.GetActiveSubscription(ctx, barbershopID, head.ClientID)
	if err != nil {
		return nil, err
	}

	validToday := sub.ValidOn(subscription, visitDay)
	var plan *models.Plan
	if subscription != nil {
		plan = &subscription.Plan
	}

	quote := sub.BuildQuote(services, products, plan, validToday)

	if subscription != nil && subscription.Plan.MaxBenefitsPerMonth > 0 {
		from, to := sub.CycleBounds(subscription, visitDay)
		used, err := uc.subRepo.CountBenefitVisitsBetween(ctx, head.ClientID, from, to)
		if err != nil {
			return nil, err
		}
		quote.UsedThisCycle = used
		quote.MonthlyCap = subscription.Plan.MaxBenefitsPerMonth
		quote.CapExceeded = used >= subscription.Plan.MaxBenefitsPerMonth
	}

	pricing := domain.VisitPricing{
		TotalPrice:    quote.Total,
		FullPrice:     quote.FullTotal,
		ServiceFinals: make(map[uint]float64, len(quote.Services)),
		ProductFinals: make(map[uint]float64, len(quote.Products)),
	}
	for _, item := range quote.Services {
		pricing.ServiceFinals[item.ID] = item.FinalPrice
	}
	for _, item := range quote.Products {
		pricing.ProductFinals[item.ID] = item.FinalPrice
	}

	if err := uc.repo.ApplyVisitPricing(ctx, visitID, pricing); err != nil {
		return nil, err
	}

	now := timezone.NowIn(shop.Timezone)
	count, err := uc.repo.UpdateVisitStatus(
		ctx,
		head.ClientID,
		head.BarberID,
		head.Date,
		domain.StatusCompleted,
		now,
	)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BarbershopID: barbershopID,
		UserID:       &actorID,
		Action:       audit.ActionVisitCompleted,
		Entity:       "visit",
		EntityID:     &head.ID,
		Metadata: map[string]any{
			"visit_id": visitID.String(),
			"total":    quote.Total,
			"savings":  quote.Savings,
		},
	})

	return &CompleteResult{
		CascadeResult: CascadeResult{
			VisitID:     visitID,
			Status:      domain.StatusCompleted,
			RowsUpdated: count,
		},
		Quote: quote,
	}, nil
}
