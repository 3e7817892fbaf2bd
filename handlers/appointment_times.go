package handlers

import (
	"net/http"

	restrictionRepo "civicbook/database/repository/restriction"
	"civicbook/models"
	"civicbook/services/booking"
	"civicbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AppointmentTimesHandler serves the office's per-weekday booking-window
// table.
type AppointmentTimesHandler struct {
	Repo   restrictionRepo.RestrictionRepository
	Logger *zap.Logger
}

func NewAppointmentTimesHandler(repo restrictionRepo.RestrictionRepository, logger *zap.Logger) *AppointmentTimesHandler {
	return &AppointmentTimesHandler{Repo: repo, Logger: logger}
}

// GetAppointmentTimes returns the current restriction table.
func (h *AppointmentTimesHandler) GetAppointmentTimes(c *gin.Context) {
	restrictions, err := h.Repo.Fetch(c.Request.Context())
	if err != nil {
		h.Logger.Error("failed to fetch appointment times", zap.Error(err))
		utils.JSONError(c, http.StatusServiceUnavailable, "failed to fetch appointment times", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"restrictions": restrictions})
}

// UpdateAppointmentTimes writes one or more weekday windows. Each window's
// begin/end must parse as 12-hour clock strings before anything is stored.
func (h *AppointmentTimesHandler) UpdateAppointmentTimes(c *gin.Context) {
	var req struct {
		Restrictions []models.Restriction `json:"restrictions" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload", err.Error())
		return
	}

	for _, r := range req.Restrictions {
		if _, err := booking.ParseTimeOfDay(r.Begin); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid begin time", err.Error())
			return
		}
		if _, err := booking.ParseTimeOfDay(r.End); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid end time", err.Error())
			return
		}
	}

	for _, r := range req.Restrictions {
		if err := h.Repo.Set(c.Request.Context(), r); err != nil {
			h.Logger.Error("failed to save appointment times", zap.String("day", r.Day), zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "failed to save appointment times", err.Error())
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"message": "appointment times saved"})
}
