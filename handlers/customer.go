package handlers

import (
	"errors"
	"net/http"

	customerRepo "salonbook/database/repository/customer"
	"salonbook/models"
	"salonbook/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CustomerHandler exposes the minimal customer endpoints the booking flow needs.
type CustomerHandler struct {
	Repo customerRepo.CustomerRepository
}

func NewCustomerHandler(repo customerRepo.CustomerRepository) *CustomerHandler {
	return &CustomerHandler{Repo: repo}
}

// CreateCustomer handles POST /api/customers.
func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var req struct {
		Name  string `json:"name" binding:"required"`
		Phone string `json:"phone"`
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	customer := &models.Customer{
		ID:    uuid.New().String(),
		Name:  req.Name,
		Phone: req.Phone,
		Email: req.Email,
	}
	if err := h.Repo.Create(c.Request.Context(), customer); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create customer", err.Error())
		return
	}
	c.JSON(http.StatusCreated, customer)
}

// GetCustomer handles GET /api/customers/:id.
func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	customer, err := h.Repo.GetByID(c.Request.Context(), c.Param("id"))
	if errors.Is(err, customerRepo.ErrNotFound) {
		utils.JSONError(c, http.StatusNotFound, "Not found", err.Error())
		return
	}
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch customer", err.Error())
		return
	}
	c.JSON(http.StatusOK, customer)
}
