package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	domain "github.com/navalhaapp/barber-dashboard/internal/domain/subscription"
	"github.com/navalhaapp/barber-dashboard/internal/models"
)

type SubscriptionGormRepository struct {
	db *gorm.DB
}

func NewSubscriptionGormRepository(db *gorm.DB) *SubscriptionGormRepository {
	return &SubscriptionGormRepository{db: db}
}

func (r *SubscriptionGormRepository) GetActiveSubscription(
	ctx context.Context,
	barbershopID uint,
	clientID uint,
) (*models.Subscription, error) {

	var sub models.Subscription
	err := r.db.WithContext(ctx).
		Preload("Plan").
		Preload("Plan.Benefits").
		Where(
			"barbershop_id = ? AND client_id = ? AND active = ?",
			barbershopID, clientID, true,
		).
		Order("start_date DESC").
		First(&sub).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *SubscriptionGormRepository) CountBenefitVisitsBetween(
	ctx context.Context,
	clientID uint,
	from time.Time,
	to time.Time,
) (int, error) {

	// Distinct visits where the final price came out under the full price,
	// i.e. a benefit was actually consumed.
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Distinct("visit_id").
		Where(
			"client_id = ? AND status = ? AND total_price < full_price AND date >= ? AND date < ?",
			clientID, "atendido",
			from.Format("2006-01-02"), to.Format("2006-01-02"),
		).
		Count(&count).Error

	return int(count), err
}

// Compile-time check
var _ domain.Repository = (*SubscriptionGormRepository)(nil)
