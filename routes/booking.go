package routes

import (
	"civicbook/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes registers all endpoints for the booking engine.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	booking := r.Group("/api/booking")
	{
		booking.GET("/calendar/:year/:month", hb.GetMonthGrid)
		booking.POST("/session", hb.StartSession)
		booking.GET("/session/:sessionID/availability", hb.GetAvailability)
		booking.POST("/confirm", hb.ConfirmBooking)
		booking.DELETE("/session/:sessionID", hb.CancelSession)
	}
}
