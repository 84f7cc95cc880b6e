package checkout

import (
	"context"
	"time"

	schedDomain "github.com/navalhaapp/barber-dashboard/internal/domain/schedule"
	sub "github.com/navalhaapp/barber-dashboard/internal/domain/subscription"
	"github.com/navalhaapp/barber-dashboard/internal/httperr"
	"github.com/navalhaapp/barber-dashboard/internal/models"
	"github.com/navalhaapp/barber-dashboard/internal/timezone"
)

type ProductLine struct {
	ProductID uint
	Quantity  int
}

type PreviewInput struct {
	BarbershopID uint
	ClientID     uint
	Date         string
	ServiceIDs   []uint
	Products     []ProductLine
}

// PreviewQuote prices a prospective visit against the client's subscription
// before anything is booked, so the form can show the savings up front.
type PreviewQuote struct {
	repo    schedDomain.Repository
	subRepo sub.Repository
}

func NewPreviewQuote(
	repo schedDomain.Repository,
	subRepo sub.Repository,
) *PreviewQuote {
	return &PreviewQuote{
		repo:    repo,
		subRepo: subRepo,
	}
}

func (uc *PreviewQuote) Execute(
	ctx context.Context,
	in PreviewInput,
) (*sub.Quote, error) {

	shop, err := uc.repo.GetBarbershopByID(ctx, in.BarbershopID)
	if err != nil {
		return nil, err
	}

	loc := timezone.Location(shop.Timezone)
	day, err := time.ParseInLocation("2006-01-02", in.Date, loc)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	services := make([]models.VisitService, 0, len(in.ServiceIDs))
	for _, id := range in.ServiceIDs {
		svc, err := uc.repo.GetService(ctx, in.BarbershopID, id)
		if err != nil {
			return nil, httperr.ErrBusiness("service_not_found")
		}
		services = append(services, models.VisitService{
			ServiceID:   svc.ID,
			Name:        svc.Name,
			DurationMin: svc.DurationMin,
			Price:       svc.Price,
		})
	}

	products := make([]models.VisitProduct, 0, len(in.Products))
	for _, line := range in.Products {
		product, err := uc.repo.GetRetailProduct(ctx, in.BarbershopID, line.ProductID)
		if err != nil {
			return nil, httperr.ErrBusiness("product_not_found")
		}
		products = append(products, models.VisitProduct{
			ProductID: product.ID,
			Name:      product.Name,
			Quantity:  line.Quantity,
			UnitPrice: product.Price,
		})
	}

	subscription, err := uc.subRepo.GetActiveSubscription(ctx, in.BarbershopID, in.ClientID)
	if err != nil {
		return nil, err
	}

	validToday := sub.ValidOn(subscription, day)
	var plan *models.Plan
	if subscription != nil {
		plan = &subscription.Plan
	}

	quote := sub.BuildQuote(services, products, plan, validToday)

	if subscription != nil && subscription.Plan.MaxBenefitsPerMonth > 0 {
		from, to := sub.CycleBounds(subscription, day)
		used, err := uc.subRepo.CountBenefitVisitsBetween(ctx, in.ClientID, from, to)
		if err != nil {
			return nil, err
		}
		quote.UsedThisCycle = used
		quote.MonthlyCap = subscription.Plan.MaxBenefitsPerMonth
		quote.CapExceeded = used >= subscription.Plan.MaxBenefitsPerMonth
	}

	return &quote, nil
}
