package routes

import (
	"net/http"
	"time"

	"salonbook/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle carries every handler the router needs.
type HandlerBundle struct {
	Booking  *handlers.BookingHandler
	Staff    *handlers.StaffHandler
	Catalog  *handlers.CatalogHandler
	Customer *handlers.CustomerHandler
}

// RegisterBookingRoutes sets up the endpoints for the booking engine.
func RegisterBookingRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/booking")
	{
		api.GET("/slots", hb.Booking.GetAvailableSlots)
		api.POST("", hb.Booking.CreateBooking)
		api.GET("/:id", hb.Booking.GetBooking)
		api.PATCH("/:id/status", hb.Booking.UpdateBookingStatus)
		api.DELETE("/:id", hb.Booking.CancelBooking)
	}
}

// RegisterStaffRoutes registers staff management endpoints.
func RegisterStaffRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/staff")
	{
		api.POST("", hb.Staff.CreateStaff)
		api.GET("", hb.Staff.ListStaff)
		api.GET("/:id", hb.Staff.GetStaff)
		api.PUT("/:id/working-hours", hb.Staff.SetWorkingHours)
		api.DELETE("/:id", hb.Staff.DeleteStaff)
	}
}

// RegisterCatalogRoutes registers service catalogue endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/services")
	{
		api.POST("", hb.Catalog.CreateService)
		api.GET("", hb.Catalog.ListServices)
		api.GET("/:id", hb.Catalog.GetService)
		api.DELETE("/:id", hb.Catalog.DeleteService)
	}
}

// RegisterCustomerRoutes registers customer endpoints.
func RegisterCustomerRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/customers")
	{
		api.POST("", hb.Customer.CreateCustomer)
		api.GET("/:id", hb.Customer.GetCustomer)
		api.GET("/:id/bookings", hb.Booking.ListCustomerBookings)
	}
}

// RegisterAdminRoutes sets up endpoints for front-desk operations: bookings
// created here are confirmed immediately and cancellations skip the
// customer-notice gate.
func RegisterAdminRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/admin")
	{
		api.POST("/bookings", hb.Booking.AdminCreateBooking)
		api.DELETE("/bookings/:id", hb.Booking.AdminCancelBooking)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm SalonBook"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterBookingRoutes(r, hb)
	RegisterStaffRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterCustomerRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
