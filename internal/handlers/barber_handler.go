package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/navalhaapp/barber-dashboard/internal/httperr"
	"github.com/navalhaapp/barber-dashboard/internal/httpresp"
	"github.com/navalhaapp/barber-dashboard/internal/middleware"
	"github.com/navalhaapp/barber-dashboard/internal/models"
)

type BarberHandler struct {
	db *gorm.DB
}

func NewBarberHandler(db *gorm.DB) *BarberHandler {
	return &BarberHandler{db: db}
}

type BarberRequest struct {
	Name              string  `json:"name" binding:"required"`
	Phone             string  `json:"phone"`
	CommissionPercent float64 `json:"commission_percent" binding:"min=0,max=100"`
	Active            *bool   `json:"active"`
	AvailableDays     []int   `json:"available_days"`
}

func (h *BarberHandler) List(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	var barbers []models.Barber
	h.db.
		Where("barbershop_id = ?", barbershopID).
		Order("name ASC").
		Find(&barbers)

	httpresp.List(c, barbers)
}

func (h *BarberHandler) Create(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	var req BarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	days, ok := parseWeekdays(req.AvailableDays)
	if !ok {
		httperr.BadRequest(c, "invalid_weekday", "Dia da semana inválido.")
		return
	}

	barber := models.Barber{
		BarbershopID:      barbershopID,
		Name:              req.Name,
		Phone:             req.Phone,
		CommissionPercent: req.CommissionPercent,
		Active:            true,
		AvailableDays:     days,
	}
	if req.Active != nil {
		barber.Active = *req.Active
	}

	if err := h.db.Create(&barber).Error; err != nil {
		httperr.Internal(c, "failed_to_create_barber", "Erro ao criar barbeiro.")
		return
	}

	httpresp.Created(c, barber)
}

func (h *BarberHandler) Update(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)
	id := c.Param("id")

	var barber models.Barber
	if err := h.db.
		Where("id = ? AND barbershop_id = ?", id, barbershopID).
		First(&barber).Error; err != nil {
		httperr.NotFound(c, "barber_not_found", "Barbeiro não encontrado.")
		return
	}

	var req BarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	days, ok := parseWeekdays(req.AvailableDays)
	if !ok {
		httperr.BadRequest(c, "invalid_weekday", "Dia da semana inválido.")
		return
	}

	barber.Name = req.Name
	barber.Phone = req.Phone
	barber.CommissionPercent = req.CommissionPercent
	barber.AvailableDays = days
	if req.Active != nil {
		barber.Active = *req.Active
	}

	if err := h.db.Save(&barber).Error; err != nil {
		httperr.Internal(c, "failed_to_update_barber", "Erro ao salvar barbeiro.")
		return
	}

	httpresp.OK(c, barber)
}

func parseWeekdays(days []int) (models.Weekdays, bool) {
	out := make(models.Weekdays, 0, len(days))
	for _, d := range days {
		if d < 0 || d > 6 {
			return nil, false
		}
		out = append(out, d)
	}
	return out, true
}
