package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"civicbook/models"
	"civicbook/services/booking"
	"civicbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves the calendar-booking endpoints.
type BookingHandler struct {
	Service booking.BookingSessionService
	Logger  *zap.Logger
}

func NewBookingHandler(service booking.BookingSessionService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: service, Logger: logger}
}

// GetMonthGrid returns the month's selectable dates.
func (h *BookingHandler) GetMonthGrid(c *gin.Context) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil || year < 1 {
		utils.JSONError(c, http.StatusBadRequest, "invalid year", c.Param("year"))
		return
	}
	month, err := strconv.Atoi(c.Param("month"))
	if err != nil || month < 1 || month > 12 {
		utils.JSONError(c, http.StatusBadRequest, "invalid month", "month must be 1-12")
		return
	}

	grid := h.Service.MonthGrid(year, time.Month(month))
	c.JSON(http.StatusOK, grid)
}

// StartSession creates a new booking session.
func (h *BookingHandler) StartSession(c *gin.Context) {
	session, err := h.Service.StartSession(c.Request.Context())
	if err != nil {
		h.Logger.Error("failed to start booking session", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to start booking session", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessionID": session.ID})
}

// GetAvailability selects a date within a session and returns its candidate
// slots with booked flags.
func (h *BookingHandler) GetAvailability(c *gin.Context) {
	sessionID := c.Param("sessionID")
	date := c.Query("date")
	if date == "" {
		utils.JSONError(c, http.StatusBadRequest, "missing date", "date query parameter is required (YYYY-MM-DD)")
		return
	}

	result, err := h.Service.SelectDate(c.Request.Context(), sessionID, date)
	if err != nil {
		h.respondError(c, err, "failed to compute availability")
		return
	}
	c.JSON(http.StatusOK, result)
}

// ConfirmBooking finalizes the booking.
func (h *BookingHandler) ConfirmBooking(c *gin.Context) {
	var input struct {
		SessionID   string                  `json:"sessionID" binding:"required"`
		Appointment models.AppointmentInput `json:"appointment" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	appointment, err := h.Service.Confirm(c.Request.Context(), input.SessionID, input.Appointment)
	if err != nil {
		h.respondError(c, err, "booking confirmation failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointment": appointment})
}

// CancelSession drops a booking session.
func (h *BookingHandler) CancelSession(c *gin.Context) {
	sessionID := c.Param("sessionID")
	if err := h.Service.CancelSession(c.Request.Context(), sessionID); err != nil {
		h.Logger.Error("failed to cancel booking session", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to cancel booking session", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "session cancelled"})
}

// respondError maps engine error types onto HTTP statuses.
func (h *BookingHandler) respondError(c *gin.Context, err error, fallback string) {
	var (
		validationErr *booking.ValidationError
		timeErr       *booking.InvalidTimeFormatError
		conflictErr   *booking.ConflictError
		sourceErr     *booking.SourceUnavailableError
		persistErr    *booking.PersistenceError
	)

	switch {
	case errors.Is(err, booking.ErrSessionNotFound):
		utils.JSONError(c, http.StatusNotFound, "booking session not found or expired", "")
	case errors.As(err, &validationErr):
		utils.JSONError(c, http.StatusBadRequest, "validation failed", validationErr.Error())
	case errors.As(err, &timeErr):
		utils.JSONError(c, http.StatusBadRequest, "invalid time", timeErr.Error())
	case errors.As(err, &conflictErr):
		slots := make([]string, len(conflictErr.Slots))
		for i, s := range conflictErr.Slots {
			slots[i] = s.String()
		}
		h.Logger.Warn("booking conflict", zap.Strings("slots", slots))
		c.JSON(http.StatusConflict, gin.H{
			"message":          "time conflicts with an existing appointment",
			"conflictingSlots": slots,
		})
	case errors.As(err, &sourceErr):
		h.Logger.Error("collaborator unavailable", zap.Error(err))
		utils.JSONError(c, http.StatusServiceUnavailable, "service temporarily unavailable", sourceErr.Error())
	case errors.As(err, &persistErr):
		h.Logger.Error("appointment store write failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to save appointment", persistErr.Error())
	default:
		h.Logger.Error(fallback, zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, fallback, err.Error())
	}
}
