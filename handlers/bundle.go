package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Calendar & booking endpoints.
	GetMonthGrid    gin.HandlerFunc
	StartSession    gin.HandlerFunc
	GetAvailability gin.HandlerFunc
	ConfirmBooking  gin.HandlerFunc
	CancelSession   gin.HandlerFunc

	// Appointment-times (restriction table) endpoints.
	GetAppointmentTimes    gin.HandlerFunc
	UpdateAppointmentTimes gin.HandlerFunc
}
