package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/navalhaapp/barber-dashboard/internal/domain/schedule"
	"github.com/navalhaapp/barber-dashboard/internal/httperr"
	"github.com/navalhaapp/barber-dashboard/internal/httpresp"
	"github.com/navalhaapp/barber-dashboard/internal/middleware"
	"github.com/navalhaapp/barber-dashboard/internal/models"
	"github.com/navalhaapp/barber-dashboard/internal/timezone"
	"github.com/navalhaapp/barber-dashboard/internal/validators"
)

type BarbershopHandler struct {
	db *gorm.DB
}

func NewBarbershopHandler(db *gorm.DB) *BarbershopHandler {
	return &BarbershopHandler{db: db}
}

func (h *BarbershopHandler) GetMeBarbershop(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	var shop models.Barbershop
	if err := h.db.First(&shop, barbershopID).Error; err != nil {
		httperr.NotFound(c, "barbershop_not_found", "Barbearia não encontrada.")
		return
	}

	httpresp.OK(c, shop)
}

type UpdateBarbershopRequest struct {
	Name              *string `json:"name"`
	Document          *string `json:"document"`
	Phone             *string `json:"phone"`
	Address           *string `json:"address"`
	Timezone          *string `json:"timezone"`
	SlotMinutes       *int    `json:"slot_minutes"`
	MinAdvanceMinutes *int    `json:"min_advance_minutes"`
}

func (h *BarbershopHandler) UpdateMeBarbershop(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	var shop models.Barbershop
	if err := h.db.First(&shop, barbershopID).Error; err != nil {
		httperr.NotFound(c, "barbershop_not_found", "Barbearia não encontrada.")
		return
	}

	var req UpdateBarbershopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Name != nil {
		shop.Name = *req.Name
	}
	if req.Document != nil {
		document := validators.NormalizeDocument(*req.Document)
		if document != "" && !validators.IsValidCNPJ(document) {
			httperr.BadRequest(c, "invalid_document", "CNPJ inválido.")
			return
		}
		shop.Document = document
	}
	if req.Phone != nil {
		shop.Phone = *req.Phone
	}
	if req.Address != nil {
		shop.Address = *req.Address
	}
	if req.Timezone != nil {
		if !timezone.IsValid(*req.Timezone) {
			httperr.BadRequest(c, "invalid_timezone", "Fuso horário inválido.")
			return
		}
		shop.Timezone = *req.Timezone
	}
	if req.SlotMinutes != nil {
		if *req.SlotMinutes != 15 && *req.SlotMinutes != 30 {
			httperr.BadRequest(c, "invalid_slot_minutes", "Duração de slot deve ser 15 ou 30 minutos.")
			return
		}
		shop.SlotMinutes = *req.SlotMinutes
	}
	if req.MinAdvanceMinutes != nil && *req.MinAdvanceMinutes >= 0 {
		shop.MinAdvanceMinutes = *req.MinAdvanceMinutes
	}

	if err := h.db.Save(&shop).Error; err != nil {
		httperr.Internal(c, "failed_to_update_barbershop", "Erro ao salvar barbearia.")
		return
	}

	httpresp.OK(c, shop)
}

// ======================================================
// OPERATING HOURS
// ======================================================

type OperatingDayConfig struct {
	Weekday   int    `json:"weekday" binding:"min=0,max=6"`
	Active    bool   `json:"active"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

func (h *BarbershopHandler) GetOperatingHours(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	var hours []models.OperatingHours
	h.db.
		Where("barbershop_id = ?", barbershopID).
		Order("weekday ASC").
		Find(&hours)

	httpresp.List(c, hours)
}

func (h *BarbershopHandler) UpdateOperatingHours(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	var req []OperatingDayConfig
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	for _, day := range req {
		if !day.Active {
			continue
		}
		start, err1 := domain.MinuteOfDay(day.StartTime)
		end, err2 := domain.MinuteOfDay(day.EndTime)
		if err1 != nil || err2 != nil || end <= start {
			httperr.BadRequest(c, "invalid_window", "Janela de atendimento inválida.")
			return
		}
	}

	rows := make([]models.OperatingHours, 0, len(req))
	for _, day := range req {
		rows = append(rows, models.OperatingHours{
			BarbershopID: barbershopID,
			Weekday:      day.Weekday,
			StartTime:    day.StartTime,
			EndTime:      day.EndTime,
			Active:       day.Active,
		})
	}

	err := h.db.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "barbershop_id"}, {Name: "weekday"}},
			DoUpdates: clause.AssignmentColumns([]string{"start_time", "end_time", "active", "updated_at"}),
		}).
		Create(&rows).Error
	if err != nil {
		httperr.Internal(c, "failed_to_update_hours", "Erro ao salvar horários.")
		return
	}

	httpresp.List(c, rows)
}
