package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/navalhaapp/barber-dashboard/internal/domain/schedule"
	"github.com/navalhaapp/barber-dashboard/internal/httperr"
	"github.com/navalhaapp/barber-dashboard/internal/models"
)

type ScheduleGormRepository struct {
	db *gorm.DB
}

func NewScheduleGormRepository(db *gorm.DB) *ScheduleGormRepository {
	return &ScheduleGormRepository{db: db}
}

// --------------------------------------------------
// Barbershop / catalog
// --------------------------------------------------

func (r *ScheduleGormRepository) GetBarbershopByID(
	ctx context.Context,
	id uint,
) (*models.Barbershop, error) {

	var shop models.Barbershop
	if err := r.db.WithContext(ctx).First(&shop, id).Error; err != nil {
		return nil, err
	}
	return &shop, nil
}

func (r *ScheduleGormRepository) GetBarber(
	ctx context.Context,
	barbershopID uint,
	barberID uint,
) (*models.Barber, error) {

	var barber models.Barber
	if err := r.db.WithContext(ctx).
		Where("id = ? AND barbershop_id = ?", barberID, barbershopID).
		First(&barber).Error; err != nil {
		return nil, err
	}
	return &barber, nil
}

func (r *ScheduleGormRepository) GetClient(
	ctx context.Context,
	barbershopID uint,
	clientID uint,
) (*models.Client, error) {

	var client models.Client
	if err := r.db.WithContext(ctx).
		Where("id = ? AND barbershop_id = ?", clientID, barbershopID).
		First(&client).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *ScheduleGormRepository) GetService(
	ctx context.Context,
	barbershopID uint,
	serviceID uint,
) (*models.BarberService, error) {

	var svc models.BarberService
	if err := r.db.WithContext(ctx).
		Where("id = ? AND barbershop_id = ?", serviceID, barbershopID).
		First(&svc).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}

func (r *ScheduleGormRepository) GetRetailProduct(
	ctx context.Context,
	barbershopID uint,
	productID uint,
) (*models.RetailProduct, error) {

	var product models.RetailProduct
	if err := r.db.WithContext(ctx).
		Where("id = ? AND barbershop_id = ?", productID, barbershopID).
		First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// --------------------------------------------------
// Schedule configuration
// --------------------------------------------------

func (r *ScheduleGormRepository) GetOperatingHours(
	ctx context.Context,
	barbershopID uint,
	weekday int,
) (*models.OperatingHours, error) {

	var hours models.OperatingHours
	if err := r.db.WithContext(ctx).
		Where("barbershop_id = ? AND weekday = ?", barbershopID, weekday).
		First(&hours).Error; err != nil {
		return nil, err
	}
	return &hours, nil
}

func (r *ScheduleGormRepository) ListUnavailabilityBlocks(
	ctx context.Context,
	barberID uint,
	date string,
) ([]models.UnavailabilityBlock, error) {

	var blocks []models.UnavailabilityBlock
	if err := r.db.WithContext(ctx).
		Where("barber_id = ? AND date = ?", barberID, date).
		Order("start_time ASC").
		Find(&blocks).Error; err != nil {
		return nil, err
	}
	return blocks, nil
}

// --------------------------------------------------
// Appointments
// --------------------------------------------------

func (r *ScheduleGormRepository) ListAppointmentsForDay(
	ctx context.Context,
	barberID uint,
	date string,
) ([]models.Appointment, error) {

	var rows []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("barber_id = ? AND date = ?", barberID, date).
		Order("time ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// CreateVisit writes every slot row of the visit plus its items in one
// transaction, after re-checking conflicts under a row lock. Either the whole
// visit lands or nothing does.
func (r *ScheduleGormRepository) CreateVisit(
	ctx context.Context,
	write domain.VisitWrite,
) error {

	if len(write.Rows) == 0 {
		return nil
	}

	head := write.Rows[0]

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var locked []models.Appointment
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(
				"barber_id = ? AND date = ? AND status <> ?",
				head.BarberID, head.Date, string(domain.StatusCancelled),
			).
			Find(&locked).Error; err != nil {
			return err
		}

		granularity := head.DurationMin
		for i := range write.Rows {
			startMin, err := domain.MinuteOfDay(write.Rows[i].Time)
			if err != nil {
				return err
			}
			candidate := domain.NewInterval(startMin, write.Rows[i].DurationMin)
			if domain.IsOccupied(locked, candidate, granularity, uuid.Nil) {
				return httperr.ErrBusiness("time_conflict")
			}
		}

		if err := tx.Create(&write.Rows).Error; err != nil {
			return err
		}
		if len(write.Services) > 0 {
			if err := tx.Create(&write.Services).Error; err != nil {
				return err
			}
		}
		if len(write.Products) > 0 {
			if err := tx.Create(&write.Products).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

func (r *ScheduleGormRepository) GetVisitRows(
	ctx context.Context,
	barbershopID uint,
	visitID uuid.UUID,
) ([]models.Appointment, error) {

	var rows []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("barbershop_id = ? AND visit_id = ?", barbershopID, visitID).
		Order("time ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *ScheduleGormRepository) GetVisitItems(
	ctx context.Context,
	visitID uuid.UUID,
) ([]models.VisitService, []models.VisitProduct, error) {

	var services []models.VisitService
	if err := r.db.WithContext(ctx).
		Where("visit_id = ?", visitID).
		Find(&services).Error; err != nil {
		return nil, nil, err
	}

	var products []models.VisitProduct
	if err := r.db.WithContext(ctx).
		Where("visit_id = ?", visitID).
		Find(&products).Error; err != nil {
		return nil, nil, err
	}

	return services, products, nil
}

// UpdateVisitStatus cascades the status to every slot row of the visit in a
// single UPDATE, stamping the matching lifecycle timestamp.
func (r *ScheduleGormRepository) UpdateVisitStatus(
	ctx context.Context,
	clientID uint,
	barberID uint,
	date string,
	status domain.Status,
	now time.Time,
) (int64, error) {

	updates := map[string]any{
		"status":     string(status),
		"updated_at": now,
	}
	switch status {
	case domain.StatusCancelled:
		updates["cancelled_at"] = now
	case domain.StatusCompleted:
		updates["completed_at"] = now
	}

	res := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"client_id = ? AND barber_id = ? AND date = ?",
			clientID, barberID, date,
		).
		Updates(updates)

	return res.RowsAffected, res.Error
}

func (r *ScheduleGormRepository) ApplyVisitPricing(
	ctx context.Context,
	visitID uuid.UUID,
	pricing domain.VisitPricing,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		if err := tx.
			Model(&models.Appointment{}).
			Where("visit_id = ?", visitID).
			Updates(map[string]any{
				"total_price": pricing.TotalPrice,
				"full_price":  pricing.FullPrice,
			}).Error; err != nil {
			return err
		}

		for id, final := range pricing.ServiceFinals {
			if err := tx.
				Model(&models.VisitService{}).
				Where("id = ? AND visit_id = ?", id, visitID).
				Update("final_price", final).Error; err != nil {
				return err
			}
		}

		for id, final := range pricing.ProductFinals {
			if err := tx.
				Model(&models.VisitProduct{}).
				Where("id = ? AND visit_id = ?", id, visitID).
				Update("final_price", final).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

func (r *ScheduleGormRepository) ListAppointmentsForPeriod(
	ctx context.Context,
	barbershopID uint,
	from string,
	to string,
) ([]models.Appointment, error) {

	var rows []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Barber").
		Preload("Client").
		Where(
			"barbershop_id = ? AND date >= ? AND date < ?",
			barbershopID, from, to,
		).
		Order("date ASC, time ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// --------------------------------------------------
// Reporting
// --------------------------------------------------

func (r *ScheduleGormRepository) ListCompletedVisits(
	ctx context.Context,
	barbershopID uint,
	from string,
	to string,
) ([]models.Appointment, error) {

	var rows []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Barber").
		Preload("Client").
		Where(
			"barbershop_id = ? AND status = ? AND date >= ? AND date < ?",
			barbershopID, string(domain.StatusCompleted), from, to,
		).
		Order("date ASC, time ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Compile-time check
var _ domain.Repository = (*ScheduleGormRepository)(nil)
