package subscription

import (
	"context"
	"time"

	"github.com/navalhaapp/barber-dashboard/internal/models"
)

type Repository interface {
	// GetActiveSubscription returns the client's active subscription with
	// plan and benefits preloaded, or nil when there is none.
	GetActiveSubscription(
		ctx context.Context,
		barbershopID uint,
		clientID uint,
	) (*models.Subscription, error)

	// CountBenefitVisitsBetween counts completed visits of the client that
	// actually consumed a benefit inside [from, to).
	CountBenefitVisitsBetween(
		ctx context.Context,
		clientID uint,
		from time.Time,
		to time.Time,
	) (int, error)
}
