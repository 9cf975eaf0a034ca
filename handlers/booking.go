package handlers

import (
	"net/http"

	"salonbook/config"
	"salonbook/models"
	"salonbook/services/booking"
	"salonbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the availability and booking endpoints.
type BookingHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

// respondBookingError maps coded booking errors to HTTP statuses; uncoded
// errors are storage/internal failures and surface as 500.
func respondBookingError(c *gin.Context, err error) {
	switch booking.CodeOf(err) {
	case booking.CodeInvalidArgument:
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
	case booking.CodeNotFound:
		utils.JSONError(c, http.StatusNotFound, "Not found", err.Error())
	case booking.CodeSlotConflict:
		utils.JSONError(c, http.StatusConflict, "Slot conflict", err.Error())
	case booking.CodePolicyViolation:
		utils.JSONError(c, http.StatusUnprocessableEntity, "Policy violation", err.Error())
	default:
		utils.JSONError(c, http.StatusInternalServerError, "Internal error", err.Error())
	}
}

// GetAvailableSlots handles GET /api/booking/slots.
func (h *BookingHandler) GetAvailableSlots(c *gin.Context) {
	var req models.AvailableSlotsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	slots, err := h.Service.GetAvailableSlots(c.Request.Context(), req.StaffMemberID, req.ServiceID, req.Date)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"slots": slots})
}

// CreateBooking handles POST /api/booking. Self-service bookings start in the
// configured default status.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	h.createBooking(c, config.AppConfig.DefaultBookingStatus)
}

// AdminCreateBooking handles POST /api/admin/bookings. Bookings created at
// the front desk are confirmed immediately.
func (h *BookingHandler) AdminCreateBooking(c *gin.Context) {
	h.createBooking(c, models.StatusConfirmed)
}

func (h *BookingHandler) createBooking(c *gin.Context, initialStatus string) {
	var req models.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	b, err := h.Service.CreateBooking(c.Request.Context(), req, initialStatus)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, models.NewBookingResponse(*b))
}

// GetBooking handles GET /api/booking/:id.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	b, err := h.Service.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.NewBookingResponse(*b))
}

// ListCustomerBookings handles GET /api/customers/:id/bookings.
func (h *BookingHandler) ListCustomerBookings(c *gin.Context) {
	bookings, err := h.Service.ListCustomerBookings(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondBookingError(c, err)
		return
	}
	out := make([]models.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, models.NewBookingResponse(b))
	}
	c.JSON(http.StatusOK, gin.H{"bookings": out})
}

// UpdateBookingStatus handles PATCH /api/booking/:id/status.
func (h *BookingHandler) UpdateBookingStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	b, err := h.Service.UpdateBookingStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.NewBookingResponse(*b))
}

// CancelBooking handles DELETE /api/booking/:id (customer, notice-gated).
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	h.cancelBooking(c, false)
}

// AdminCancelBooking handles DELETE /api/admin/bookings/:id (no notice gate).
func (h *BookingHandler) AdminCancelBooking(c *gin.Context) {
	h.cancelBooking(c, true)
}

func (h *BookingHandler) cancelBooking(c *gin.Context, byStaff bool) {
	b, err := h.Service.CancelBooking(c.Request.Context(), c.Param("id"), byStaff)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.NewBookingResponse(*b))
}
