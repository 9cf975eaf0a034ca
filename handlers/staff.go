package handlers

import (
	"errors"
	"net/http"

	staffRepo "salonbook/database/repository/staff"
	"salonbook/models"
	"salonbook/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// StaffHandler exposes staff and working-hours management endpoints.
type StaffHandler struct {
	Repo staffRepo.StaffRepository
}

func NewStaffHandler(repo staffRepo.StaffRepository) *StaffHandler {
	return &StaffHandler{Repo: repo}
}

// CreateStaff handles POST /api/staff.
func (h *StaffHandler) CreateStaff(c *gin.Context) {
	var req struct {
		Name         string                     `json:"name" binding:"required"`
		Phone        string                     `json:"phone"`
		Email        string                     `json:"email"`
		WorkingHours []models.WorkingHoursEntry `json:"workingHours"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	for _, e := range req.WorkingHours {
		if err := e.Validate(); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid working hours", err.Error())
			return
		}
	}

	staff := &models.StaffMember{
		ID:           uuid.New().String(),
		Name:         req.Name,
		Phone:        req.Phone,
		Email:        req.Email,
		WorkingHours: req.WorkingHours,
	}
	if err := h.Repo.Create(c.Request.Context(), staff); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create staff member", err.Error())
		return
	}
	c.JSON(http.StatusCreated, staff)
}

// GetStaff handles GET /api/staff/:id.
func (h *StaffHandler) GetStaff(c *gin.Context) {
	staff, err := h.Repo.GetByID(c.Request.Context(), c.Param("id"))
	if errors.Is(err, staffRepo.ErrNotFound) {
		utils.JSONError(c, http.StatusNotFound, "Not found", err.Error())
		return
	}
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch staff member", err.Error())
		return
	}
	c.JSON(http.StatusOK, staff)
}

// ListStaff handles GET /api/staff.
func (h *StaffHandler) ListStaff(c *gin.Context) {
	staff, err := h.Repo.GetAll(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list staff", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"staff": staff})
}

// SetWorkingHours handles PUT /api/staff/:id/working-hours. The full weekly
// schedule is replaced in one call, matching how the settings screen saves.
func (h *StaffHandler) SetWorkingHours(c *gin.Context) {
	var req struct {
		WorkingHours []models.WorkingHoursEntry `json:"workingHours" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	seen := map[int]bool{}
	for _, e := range req.WorkingHours {
		if err := e.Validate(); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid working hours", err.Error())
			return
		}
		if seen[e.Weekday] {
			utils.JSONError(c, http.StatusBadRequest, "Invalid working hours", "duplicate weekday entry")
			return
		}
		seen[e.Weekday] = true
	}

	err := h.Repo.UpdateWorkingHours(c.Request.Context(), c.Param("id"), req.WorkingHours)
	if errors.Is(err, staffRepo.ErrNotFound) {
		utils.JSONError(c, http.StatusNotFound, "Not found", err.Error())
		return
	}
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update working hours", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": true})
}

// DeleteStaff handles DELETE /api/staff/:id.
func (h *StaffHandler) DeleteStaff(c *gin.Context) {
	err := h.Repo.Delete(c.Request.Context(), c.Param("id"))
	if errors.Is(err, staffRepo.ErrNotFound) {
		utils.JSONError(c, http.StatusNotFound, "Not found", err.Error())
		return
	}
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete staff member", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
