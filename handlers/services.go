package handlers

import (
	"errors"
	"net/http"

	catalogRepo "salonbook/database/repository/catalog"
	"salonbook/models"
	"salonbook/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CatalogHandler exposes the service catalogue endpoints.
type CatalogHandler struct {
	Repo catalogRepo.CatalogRepository
}

func NewCatalogHandler(repo catalogRepo.CatalogRepository) *CatalogHandler {
	return &CatalogHandler{Repo: repo}
}

// CreateService handles POST /api/services.
func (h *CatalogHandler) CreateService(c *gin.Context) {
	var req struct {
		Name            string  `json:"name" binding:"required"`
		Description     string  `json:"description"`
		DurationMinutes int     `json:"durationMinutes" binding:"required,gt=0"`
		Price           float64 `json:"price" binding:"gte=0"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	svc := &models.Service{
		ID:              uuid.New().String(),
		Name:            req.Name,
		Description:     req.Description,
		DurationMinutes: req.DurationMinutes,
		Price:           req.Price,
	}
	if err := h.Repo.Create(c.Request.Context(), svc); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create service", err.Error())
		return
	}
	c.JSON(http.StatusCreated, svc)
}

// GetService handles GET /api/services/:id.
func (h *CatalogHandler) GetService(c *gin.Context) {
	svc, err := h.Repo.GetByID(c.Request.Context(), c.Param("id"))
	if errors.Is(err, catalogRepo.ErrNotFound) {
		utils.JSONError(c, http.StatusNotFound, "Not found", err.Error())
		return
	}
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch service", err.Error())
		return
	}
	c.JSON(http.StatusOK, svc)
}

// ListServices handles GET /api/services.
func (h *CatalogHandler) ListServices(c *gin.Context) {
	services, err := h.Repo.GetAll(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list services", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": services})
}

// DeleteService handles DELETE /api/services/:id.
func (h *CatalogHandler) DeleteService(c *gin.Context) {
	err := h.Repo.Delete(c.Request.Context(), c.Param("id"))
	if errors.Is(err, catalogRepo.ErrNotFound) {
		utils.JSONError(c, http.StatusNotFound, "Not found", err.Error())
		return
	}
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete service", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
