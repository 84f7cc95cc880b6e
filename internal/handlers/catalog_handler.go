package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/navalhaapp/barber-dashboard/internal/httperr"
	"github.com/navalhaapp/barber-dashboard/internal/httpresp"
	"github.com/navalhaapp/barber-dashboard/internal/middleware"
	"github.com/navalhaapp/barber-dashboard/internal/models"
)

// CatalogHandler manages the bookable services and the retail products.
type CatalogHandler struct {
	db *gorm.DB
}

func NewCatalogHandler(db *gorm.DB) *CatalogHandler {
	return &CatalogHandler{db: db}
}

// ======================================================
// SERVICES
// ======================================================

type ServiceRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	DurationMin int     `json:"duration_min" binding:"required,min=5"`
	Price       float64 `json:"price" binding:"min=0"`
	Category    string  `json:"category"`
	Active      *bool   `json:"active"`
}

func (h *CatalogHandler) ListServices(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	var services []models.BarberService
	h.db.
		Where("barbershop_id = ?", barbershopID).
		Order("name ASC").
		Find(&services)

	httpresp.List(c, services)
}

func (h *CatalogHandler) CreateService(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	svc := models.BarberService{
		BarbershopID: barbershopID,
		Name:         req.Name,
		Description:  req.Description,
		DurationMin:  req.DurationMin,
		Price:        req.Price,
		Category:     req.Category,
		Active:       true,
	}
	if req.Active != nil {
		svc.Active = *req.Active
	}

	if err := h.db.Create(&svc).Error; err != nil {
		httperr.Internal(c, "failed_to_create_service", "Erro ao criar serviço.")
		return
	}

	httpresp.Created(c, svc)
}

func (h *CatalogHandler) UpdateService(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)
	id := c.Param("id")

	var svc models.BarberService
	if err := h.db.
		Where("id = ? AND barbershop_id = ?", id, barbershopID).
		First(&svc).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
		return
	}

	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	svc.Name = req.Name
	svc.Description = req.Description
	svc.DurationMin = req.DurationMin
	svc.Price = req.Price
	svc.Category = req.Category
	if req.Active != nil {
		svc.Active = *req.Active
	}

	if err := h.db.Save(&svc).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service", "Erro ao salvar serviço.")
		return
	}

	httpresp.OK(c, svc)
}

// ======================================================
// PRODUCTS
// ======================================================

type ProductRequest struct {
	Name   string  `json:"name" binding:"required"`
	Price  float64 `json:"price" binding:"min=0"`
	Active *bool   `json:"active"`
}

func (h *CatalogHandler) ListProducts(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	var products []models.RetailProduct
	h.db.
		Where("barbershop_id = ?", barbershopID).
		Order("name ASC").
		Find(&products)

	httpresp.List(c, products)
}

func (h *CatalogHandler) CreateProduct(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	product := models.RetailProduct{
		BarbershopID: barbershopID,
		Name:         req.Name,
		Price:        req.Price,
		Active:       true,
	}
	if req.Active != nil {
		product.Active = *req.Active
	}

	if err := h.db.Create(&product).Error; err != nil {
		httperr.Internal(c, "failed_to_create_product", "Erro ao criar produto.")
		return
	}

	httpresp.Created(c, product)
}

func (h *CatalogHandler) UpdateProduct(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)
	id := c.Param("id")

	var product models.RetailProduct
	if err := h.db.
		Where("id = ? AND barbershop_id = ?", id, barbershopID).
		First(&product).Error; err != nil {
		httperr.NotFound(c, "product_not_found", "Produto não encontrado.")
		return
	}

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	product.Name = req.Name
	product.Price = req.Price
	if req.Active != nil {
		product.Active = *req.Active
	}

	if err := h.db.Save(&product).Error; err != nil {
		httperr.Internal(c, "failed_to_update_product", "Erro ao salvar produto.")
		return
	}

	httpresp.OK(c, product)
}
