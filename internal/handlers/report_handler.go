package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/navalhaapp/barber-dashboard/internal/httperr"
	"github.com/navalhaapp/barber-dashboard/internal/httpresp"
	"github.com/navalhaapp/barber-dashboard/internal/middleware"
	"github.com/navalhaapp/barber-dashboard/internal/models"
	ucReport "github.com/navalhaapp/barber-dashboard/internal/usecase/report"
)

type ReportHandler struct {
	db        *gorm.DB
	revenueUC *ucReport.BuildRevenueReport
}

func NewReportHandler(db *gorm.DB, revenueUC *ucReport.BuildRevenueReport) *ReportHandler {
	return &ReportHandler{db: db, revenueUC: revenueUC}
}

func parsePeriod(c *gin.Context) (string, string, bool) {
	from := c.Query("from")
	to := c.Query("to")

	if _, err := time.Parse("2006-01-02", from); err != nil {
		httperr.BadRequest(c, "invalid_period", "Período inválido.")
		return "", "", false
	}
	if _, err := time.Parse("2006-01-02", to); err != nil {
		httperr.BadRequest(c, "invalid_period", "Período inválido.")
		return "", "", false
	}
	if to < from {
		httperr.BadRequest(c, "invalid_period", "Período inválido.")
		return "", "", false
	}

	return from, to, true
}

// Revenue resume o faturamento dos atendimentos concluídos no período,
// com comissão por barbeiro.
func (h *ReportHandler) Revenue(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	from, to, ok := parsePeriod(c)
	if !ok {
		return
	}

	report, err := h.revenueUC.Execute(c.Request.Context(), barbershopID, from, to)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, report)
}

type SubscriptionReport struct {
	From string `json:"from"`
	To   string `json:"to"`

	ActiveSubscriptions int64   `json:"active_subscriptions"`
	NewSubscriptions    int64   `json:"new_subscriptions"`
	Cancelled           int64   `json:"cancelled"`
	FirstCycleRevenue   float64 `json:"first_cycle_revenue"`
}

// SubscriptionRevenue conta assinaturas ativas, novas e canceladas no
// período, além da receita de primeiro ciclo das novas.
func (h *ReportHandler) SubscriptionRevenue(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	from, to, ok := parsePeriod(c)
	if !ok {
		return
	}

	out := SubscriptionReport{From: from, To: to}

	h.db.Model(&models.Subscription{}).
		Where("barbershop_id = ? AND active = true", barbershopID).
		Count(&out.ActiveSubscriptions)

	newScope := h.db.Model(&models.Subscription{}).
		Where("barbershop_id = ?", barbershopID).
		Where("start_date >= ? AND start_date < ?", from, to)
	newScope.Count(&out.NewSubscriptions)

	h.db.Model(&models.Subscription{}).
		Where("barbershop_id = ?", barbershopID).
		Where("cancelled_at >= ? AND cancelled_at < ?", from, to).
		Count(&out.Cancelled)

	var revenue *float64
	h.db.Model(&models.Subscription{}).
		Where("barbershop_id = ?", barbershopID).
		Where("start_date >= ? AND start_date < ?", from, to).
		Select("SUM(first_cycle_price)").
		Scan(&revenue)
	if revenue != nil {
		out.FirstCycleRevenue = *revenue
	}

	httpresp.OK(c, out)
}
