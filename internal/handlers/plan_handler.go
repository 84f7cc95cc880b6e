package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/navalhaapp/barber-dashboard/internal/audit"
	sub "github.com/navalhaapp/barber-dashboard/internal/domain/subscription"
	"github.com/navalhaapp/barber-dashboard/internal/httperr"
	"github.com/navalhaapp/barber-dashboard/internal/httpresp"
	"github.com/navalhaapp/barber-dashboard/internal/middleware"
	"github.com/navalhaapp/barber-dashboard/internal/models"
	"github.com/navalhaapp/barber-dashboard/internal/timezone"
)

type PlanHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewPlanHandler(db *gorm.DB, dispatcher *audit.Dispatcher) *PlanHandler {
	return &PlanHandler{db: db, audit: dispatcher}
}

// ======================================================
// PLANOS
// ======================================================

type PlanBenefitRequest struct {
	ItemType    string  `json:"item_type" binding:"required,oneof=service product"`
	ItemID      uint    `json:"item_id" binding:"required"`
	BenefitType string  `json:"benefit_type" binding:"required,oneof=free percentage"`
	Percent     float64 `json:"percent" binding:"min=0,max=100"`
}

type PlanRequest struct {
	Name                string               `json:"name" binding:"required"`
	Description         string               `json:"description"`
	Price               float64              `json:"price" binding:"min=0"`
	DurationMonths      int                  `json:"duration_months" binding:"min=1"`
	AllowedDays         []int                `json:"allowed_days"`
	MaxBenefitsPerMonth int                  `json:"max_benefits_per_month" binding:"min=0"`
	Active              *bool                `json:"active"`
	Benefits            []PlanBenefitRequest `json:"benefits"`
}

func (h *PlanHandler) List(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	var plans []models.Plan
	h.db.
		Preload("Benefits").
		Where("barbershop_id = ?", barbershopID).
		Order("name ASC").
		Find(&plans)

	httpresp.List(c, plans)
}

func (h *PlanHandler) Create(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	var req PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	days, ok := parseWeekdays(req.AllowedDays)
	if !ok {
		httperr.BadRequest(c, "invalid_weekday", "Dia da semana inválido.")
		return
	}

	plan := models.Plan{
		BarbershopID:        barbershopID,
		Name:                req.Name,
		Description:         req.Description,
		Price:               req.Price,
		DurationMonths:      req.DurationMonths,
		AllowedDays:         days,
		MaxBenefitsPerMonth: req.MaxBenefitsPerMonth,
		Active:              true,
	}
	if req.Active != nil {
		plan.Active = *req.Active
	}
	for _, b := range req.Benefits {
		plan.Benefits = append(plan.Benefits, models.PlanBenefit{
			ItemType:    b.ItemType,
			ItemID:      b.ItemID,
			BenefitType: b.BenefitType,
			Percent:     b.Percent,
		})
	}

	if err := h.db.Create(&plan).Error; err != nil {
		httperr.Internal(c, "failed_to_create_plan", "Erro ao criar plano.")
		return
	}

	httpresp.Created(c, plan)
}

func (h *PlanHandler) Update(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)
	id := c.Param("id")

	var plan models.Plan
	if err := h.db.
		Where("barbershop_id = ? AND id = ?", barbershopID, id).
		First(&plan).Error; err != nil {
		httperr.NotFound(c, "plan_not_found", "Plano não encontrado.")
		return
	}

	var req PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	days, ok := parseWeekdays(req.AllowedDays)
	if !ok {
		httperr.BadRequest(c, "invalid_weekday", "Dia da semana inválido.")
		return
	}

	plan.Name = req.Name
	plan.Description = req.Description
	plan.Price = req.Price
	plan.DurationMonths = req.DurationMonths
	plan.AllowedDays = days
	plan.MaxBenefitsPerMonth = req.MaxBenefitsPerMonth
	if req.Active != nil {
		plan.Active = *req.Active
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&plan).Error; err != nil {
			return err
		}
		if err := tx.
			Where("plan_id = ?", plan.ID).
			Delete(&models.PlanBenefit{}).Error; err != nil {
			return err
		}
		for _, b := range req.Benefits {
			benefit := models.PlanBenefit{
				PlanID:      plan.ID,
				ItemType:    b.ItemType,
				ItemID:      b.ItemID,
				BenefitType: b.BenefitType,
				Percent:     b.Percent,
			}
			if err := tx.Create(&benefit).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		httperr.Internal(c, "failed_to_update_plan", "Erro ao atualizar plano.")
		return
	}

	h.db.Preload("Benefits").First(&plan, plan.ID)
	httpresp.OK(c, plan)
}

// ======================================================
// ASSINATURAS
// ======================================================

type SubscribeRequest struct {
	ClientID uint `json:"client_id" binding:"required"`
	PlanID   uint `json:"plan_id" binding:"required"`
}

func (h *PlanHandler) ListSubscriptions(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	query := h.db.
		Preload("Client").
		Preload("Plan").
		Preload("Plan.Benefits").
		Where("barbershop_id = ?", barbershopID)

	if clientID := c.Query("client_id"); clientID != "" {
		query = query.Where("client_id = ?", clientID)
	}
	if c.Query("active") == "true" {
		query = query.Where("active = true")
	}

	var subscriptions []models.Subscription
	query.Order("created_at DESC").Find(&subscriptions)

	httpresp.List(c, subscriptions)
}

func (h *PlanHandler) Subscribe(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	var req SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	var shop models.Barbershop
	if err := h.db.First(&shop, barbershopID).Error; err != nil {
		httperr.Internal(c, "failed_to_load_barbershop", "Erro ao carregar barbearia.")
		return
	}

	var client models.Client
	if err := h.db.
		Where("barbershop_id = ? AND id = ?", barbershopID, req.ClientID).
		First(&client).Error; err != nil {
		httperr.NotFound(c, "client_not_found", "Cliente não encontrado.")
		return
	}

	var plan models.Plan
	if err := h.db.
		Where("barbershop_id = ? AND id = ? AND active = true", barbershopID, req.PlanID).
		First(&plan).Error; err != nil {
		httperr.NotFound(c, "plan_not_found", "Plano não encontrado ou inativo.")
		return
	}

	var count int64
	h.db.Model(&models.Subscription{}).
		Where("barbershop_id = ? AND client_id = ? AND active = true", barbershopID, req.ClientID).
		Count(&count)
	if count > 0 {
		httperr.Conflict(c, "already_subscribed", "Cliente já possui assinatura ativa.")
		return
	}

	now := timezone.NowIn(shop.Timezone)

	subscription := models.Subscription{
		BarbershopID:    barbershopID,
		ClientID:        req.ClientID,
		PlanID:          plan.ID,
		StartDate:       now,
		EndDate:         now.AddDate(0, plan.DurationMonths, 0),
		FirstCyclePrice: sub.ProRatedFirstCycle(plan.Price, now),
		Active:          true,
	}

	if err := h.db.Create(&subscription).Error; err != nil {
		httperr.Internal(c, "failed_to_subscribe", "Erro ao criar assinatura.")
		return
	}

	h.audit.Dispatch(audit.Event{
		BarbershopID: barbershopID,
		UserID:       &userID,
		Action:       audit.ActionSubscribed,
		Entity:       "subscription",
		EntityID:     &subscription.ID,
		Metadata: gin.H{
			"client_id":         subscription.ClientID,
			"plan_id":           subscription.PlanID,
			"first_cycle_price": subscription.FirstCyclePrice,
		},
	})

	h.db.Preload("Client").Preload("Plan").Preload("Plan.Benefits").
		First(&subscription, subscription.ID)
	httpresp.Created(c, subscription)
}

func (h *PlanHandler) CancelSubscription(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)
	id := c.Param("id")

	var subscription models.Subscription
	if err := h.db.
		Where("barbershop_id = ? AND id = ?", barbershopID, id).
		First(&subscription).Error; err != nil {
		httperr.NotFound(c, "subscription_not_found", "Assinatura não encontrada.")
		return
	}

	if !subscription.Active {
		httpresp.OK(c, subscription)
		return
	}

	var shop models.Barbershop
	if err := h.db.First(&shop, barbershopID).Error; err != nil {
		httperr.Internal(c, "failed_to_load_barbershop", "Erro ao carregar barbearia.")
		return
	}

	now := timezone.NowIn(shop.Timezone)
	subscription.Active = false
	subscription.CancelledAt = &now

	if err := h.db.Save(&subscription).Error; err != nil {
		httperr.Internal(c, "failed_to_cancel_subscription", "Erro ao cancelar assinatura.")
		return
	}

	h.audit.Dispatch(audit.Event{
		BarbershopID: barbershopID,
		UserID:       &userID,
		Action:       audit.ActionSubCancelled,
		Entity:       "subscription",
		EntityID:     &subscription.ID,
	})

	httpresp.OK(c, subscription)
}
