package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/navalhaapp/barber-dashboard/internal/httperr"
	"github.com/navalhaapp/barber-dashboard/internal/httpresp"
	"github.com/navalhaapp/barber-dashboard/internal/middleware"
	ucBooking "github.com/navalhaapp/barber-dashboard/internal/usecase/booking"
	ucCheckout "github.com/navalhaapp/barber-dashboard/internal/usecase/checkout"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	createUC       *ucBooking.CreateVisit
	availabilityUC *ucBooking.GetDayAvailability
	listUC         *ucBooking.ListVisits
	confirmUC      *ucBooking.ConfirmVisit
	cancelUC       *ucBooking.CancelVisit
	completeUC     *ucBooking.CompleteVisit
	quoteUC        *ucCheckout.PreviewQuote
}

func NewAppointmentHandler(
	createUC *ucBooking.CreateVisit,
	availabilityUC *ucBooking.GetDayAvailability,
	listUC *ucBooking.ListVisits,
	confirmUC *ucBooking.ConfirmVisit,
	cancelUC *ucBooking.CancelVisit,
	completeUC *ucBooking.CompleteVisit,
	quoteUC *ucCheckout.PreviewQuote,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC:       createUC,
		availabilityUC: availabilityUC,
		listUC:         listUC,
		confirmUC:      confirmUC,
		cancelUC:       cancelUC,
		completeUC:     completeUC,
		quoteUC:        quoteUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type ProductLineRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity"`
}

type CreateVisitRequest struct {
	BarberID   uint                 `json:"barber_id" binding:"required"`
	ClientID   uint                 `json:"client_id" binding:"required"`
	ServiceIDs []uint               `json:"service_ids" binding:"required,min=1"`
	Products   []ProductLineRequest `json:"products"`
	Date       string               `json:"date" binding:"required"`
	Time       string               `json:"time" binding:"required"`
	Notes      string               `json:"notes"`
}

type QuoteRequest struct {
	ClientID   uint                 `json:"client_id" binding:"required"`
	Date       string               `json:"date" binding:"required"`
	ServiceIDs []uint               `json:"service_ids"`
	Products   []ProductLineRequest `json:"products"`
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *AppointmentHandler) Availability(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	barberID, err := strconv.ParseUint(c.Query("barber_id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "missing_barber", "Barbeiro obrigatório.")
		return
	}

	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	var serviceIDs []uint
	if raw := c.Query("service_ids"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			id, err := strconv.ParseUint(strings.TrimSpace(part), 10, 32)
			if err != nil {
				httperr.BadRequest(c, "invalid_service_ids", "Serviços inválidos.")
				return
			}
			serviceIDs = append(serviceIDs, uint(id))
		}
	}

	excludeVisit := uuid.Nil
	if raw := c.Query("exclude_visit"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			httperr.BadRequest(c, "invalid_visit_id", "Visita inválida.")
			return
		}
		excludeVisit = parsed
	}

	out, err := h.availabilityUC.Execute(c.Request.Context(), ucBooking.AvailabilityInput{
		BarbershopID: barbershopID,
		BarberID:     uint(barberID),
		Date:         date,
		ServiceIDs:   serviceIDs,
		ExcludeVisit: excludeVisit,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, out)
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	var req CreateVisitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	products := make([]ucBooking.ProductLine, 0, len(req.Products))
	for _, line := range req.Products {
		products = append(products, ucBooking.ProductLine{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
		})
	}

	result, err := h.createUC.Execute(c.Request.Context(), ucBooking.CreateVisitInput{
		BarbershopID: barbershopID,
		ActorID:      userID,
		BarberID:     req.BarberID,
		ClientID:     req.ClientID,
		ServiceIDs:   req.ServiceIDs,
		Products:     products,
		Date:         req.Date,
		Time:         req.Time,
		Notes:        req.Notes,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.Created(c, result)
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	visits, err := h.listUC.ByDate(c.Request.Context(), barbershopID, date)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.List(c, visits)
}

func (h *AppointmentHandler) ListByMonth(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		httperr.BadRequest(c, "invalid_year", "Ano inválido.")
		return
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil {
		httperr.BadRequest(c, "invalid_month", "Mês inválido.")
		return
	}

	visits, err := h.listUC.ByMonth(c.Request.Context(), barbershopID, year, month)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.List(c, visits)
}

// ======================================================
// STATUS TRANSITIONS
// ======================================================

func (h *AppointmentHandler) Confirm(c *gin.Context) {
	h.transition(c, func(barbershopID, userID uint, visitID uuid.UUID, c *gin.Context) {
		result, err := h.confirmUC.Execute(c.Request.Context(), barbershopID, userID, visitID)
		if err != nil {
			writeBusinessError(c, err)
			return
		}
		httpresp.OK(c, result)
	})
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	h.transition(c, func(barbershopID, userID uint, visitID uuid.UUID, c *gin.Context) {
		result, err := h.cancelUC.Execute(c.Request.Context(), barbershopID, userID, visitID)
		if err != nil {
			writeBusinessError(c, err)
			return
		}
		httpresp.OK(c, result)
	})
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	h.transition(c, func(barbershopID, userID uint, visitID uuid.UUID, c *gin.Context) {
		result, err := h.completeUC.Execute(c.Request.Context(), barbershopID, userID, visitID)
		if err != nil {
			writeBusinessError(c, err)
			return
		}
		httpresp.OK(c, result)
	})
}

func (h *AppointmentHandler) transition(
	c *gin.Context,
	run func(barbershopID, userID uint, visitID uuid.UUID, c *gin.Context),
) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	visitID, err := uuid.Parse(c.Param("visitId"))
	if err != nil {
		httperr.BadRequest(c, "invalid_visit_id", "Visita inválida.")
		return
	}

	run(barbershopID, userID, visitID, c)
}

// ======================================================
// CHECKOUT PREVIEW
// ======================================================

func (h *AppointmentHandler) Quote(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	var req QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	products := make([]ucCheckout.ProductLine, 0, len(req.Products))
	for _, line := range req.Products {
		products = append(products, ucCheckout.ProductLine{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
		})
	}

	quote, err := h.quoteUC.Execute(c.Request.Context(), ucCheckout.PreviewInput{
		BarbershopID: barbershopID,
		ClientID:     req.ClientID,
		Date:         req.Date,
		ServiceIDs:   req.ServiceIDs,
		Products:     products,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, quote)
}

// ======================================================
// ERROR MAPPING
// ======================================================

var businessStatus = map[string]int{
	"time_conflict":           http.StatusConflict,
	"booking_in_progress":     http.StatusConflict,
	"slot_expired":            http.StatusConflict,
	"barber_unavailable":      http.StatusConflict,
	"barber_day_off":          http.StatusConflict,
	"invalid_state":           http.StatusConflict,
	"visit_not_found":         http.StatusNotFound,
	"barber_not_found":        http.StatusNotFound,
	"client_not_found":        http.StatusNotFound,
	"service_not_found":       http.StatusNotFound,
	"product_not_found":       http.StatusNotFound,
	"no_operating_hours":      http.StatusUnprocessableEntity,
	"outside_operating_hours": http.StatusUnprocessableEntity,
}

var businessMessages = map[string]string{
	"time_conflict":           "Conflito de horário.",
	"booking_in_progress":     "Outro agendamento está em andamento para este barbeiro. Tente novamente.",
	"slot_expired":            "Horário já passou.",
	"barber_unavailable":      "Barbeiro indisponível neste horário.",
	"barber_day_off":          "Barbeiro não atende neste dia.",
	"barber_inactive":         "Barbeiro inativo.",
	"invalid_state":           "Transição de status inválida.",
	"visit_not_found":         "Visita não encontrada.",
	"barber_not_found":        "Barbeiro não encontrado.",
	"client_not_found":        "Cliente não encontrado.",
	"service_not_found":       "Serviço não encontrado.",
	"product_not_found":       "Produto não encontrado.",
	"no_operating_hours":      "Sem horário de funcionamento configurado para esta data.",
	"outside_operating_hours": "Fora do horário de atendimento.",
	"slot_not_aligned":        "Horário fora da grade de agendamento.",
	"invalid_date_or_time":    "Data ou hora inválida.",
	"invalid_date":            "Data inválida.",
	"too_soon":                "Antecedência mínima não respeitada.",
	"missing_services":        "Selecione ao menos um serviço.",
	"invalid_year_or_month":   "Ano ou mês inválido.",
}

func writeBusinessError(c *gin.Context, err error) {
	code, ok := httperr.BusinessCode(err)
	if !ok {
		httperr.Internal(c, "internal_error", "Erro interno.")
		return
	}

	status, ok := businessStatus[code]
	if !ok {
		status = http.StatusBadRequest
	}

	message, ok := businessMessages[code]
	if !ok {
		message = code
	}

	httperr.Write(c, status, code, message)
}
