package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/navalhaapp/barber-dashboard/internal/domain/schedule"
	"github.com/navalhaapp/barber-dashboard/internal/httperr"
	"github.com/navalhaapp/barber-dashboard/internal/httpresp"
	"github.com/navalhaapp/barber-dashboard/internal/middleware"
	"github.com/navalhaapp/barber-dashboard/internal/models"
)

type UnavailabilityHandler struct {
	db *gorm.DB
}

func NewUnavailabilityHandler(db *gorm.DB) *UnavailabilityHandler {
	return &UnavailabilityHandler{db: db}
}

type UnavailabilityRequest struct {
	BarberID  uint   `json:"barber_id" binding:"required"`
	Date      string `json:"date" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
	Reason    string `json:"reason"`
}

func (h *UnavailabilityHandler) List(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	q := h.db.Where("barbershop_id = ?", barbershopID)
	if barberID := c.Query("barber_id"); barberID != "" {
		q = q.Where("barber_id = ?", barberID)
	}
	if date := c.Query("date"); date != "" {
		q = q.Where("date = ?", date)
	}

	var blocks []models.UnavailabilityBlock
	q.Order("date ASC, start_time ASC").Find(&blocks)

	httpresp.List(c, blocks)
}

func (h *UnavailabilityHandler) Create(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	var req UnavailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	start, err1 := domain.MinuteOfDay(req.StartTime)
	end, err2 := domain.MinuteOfDay(req.EndTime)
	if err1 != nil || err2 != nil || end <= start {
		httperr.BadRequest(c, "invalid_window", "Intervalo inválido.")
		return
	}

	var barber models.Barber
	if err := h.db.
		Where("id = ? AND barbershop_id = ?", req.BarberID, barbershopID).
		First(&barber).Error; err != nil {
		httperr.NotFound(c, "barber_not_found", "Barbeiro não encontrado.")
		return
	}

	block := models.UnavailabilityBlock{
		BarbershopID: barbershopID,
		BarberID:     req.BarberID,
		Date:         req.Date,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		Reason:       req.Reason,
	}

	if err := h.db.Create(&block).Error; err != nil {
		httperr.Internal(c, "failed_to_create_block", "Erro ao criar bloqueio.")
		return
	}

	httpresp.Created(c, block)
}

func (h *UnavailabilityHandler) Delete(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)
	id := c.Param("id")

	res := h.db.
		Where("id = ? AND barbershop_id = ?", id, barbershopID).
		Delete(&models.UnavailabilityBlock{})
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_block", "Erro ao remover bloqueio.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "block_not_found", "Bloqueio não encontrado.")
		return
	}

	httpresp.OK(c, gin.H{"deleted": true})
}
