package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/navalhaapp/barber-dashboard/internal/httperr"
	"github.com/navalhaapp/barber-dashboard/internal/httpresp"
	"github.com/navalhaapp/barber-dashboard/internal/middleware"
	"github.com/navalhaapp/barber-dashboard/internal/models"
	"github.com/navalhaapp/barber-dashboard/internal/validators"
)

type ClientHandler struct {
	db *gorm.DB
}

func NewClientHandler(db *gorm.DB) *ClientHandler {
	return &ClientHandler{db: db}
}

type ClientRequest struct {
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Document string `json:"document"`
}

func (h *ClientHandler) List(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	var clients []models.Client
	h.db.
		Where("barbershop_id = ?", barbershopID).
		Order("name ASC").
		Find(&clients)

	httpresp.List(c, clients)
}

func (h *ClientHandler) Create(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	document := validators.NormalizeDocument(req.Document)
	if document != "" && !validators.IsValidCPF(document) {
		httperr.BadRequest(c, "invalid_document", "CPF inválido.")
		return
	}

	client := models.Client{
		BarbershopID: barbershopID,
		Name:         req.Name,
		Phone:        req.Phone,
		Email:        req.Email,
		Document:     document,
	}

	if err := h.db.Create(&client).Error; err != nil {
		httperr.Internal(c, "failed_to_create_client", "Erro ao criar cliente.")
		return
	}

	httpresp.Created(c, client)
}

func (h *ClientHandler) Update(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)
	id := c.Param("id")

	var client models.Client
	if err := h.db.
		Where("id = ? AND barbershop_id = ?", id, barbershopID).
		First(&client).Error; err != nil {
		httperr.NotFound(c, "client_not_found", "Cliente não encontrado.")
		return
	}

	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	document := validators.NormalizeDocument(req.Document)
	if document != "" && !validators.IsValidCPF(document) {
		httperr.BadRequest(c, "invalid_document", "CPF inválido.")
		return
	}

	client.Name = req.Name
	client.Phone = req.Phone
	client.Email = req.Email
	client.Document = document

	if err := h.db.Save(&client).Error; err != nil {
		httperr.Internal(c, "failed_to_update_client", "Erro ao salvar cliente.")
		return
	}

	httpresp.OK(c, client)
}
