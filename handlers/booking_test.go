package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"civicbook/models"
	"civicbook/services/booking"
)

type stubBookingService struct {
	startErr   error
	selectFn   func(sessionID, date string) (*models.AvailabilityResult, error)
	confirmFn  func(sessionID string, input models.AppointmentInput) (*models.Appointment, error)
	cancelErr  error
	lastCancel string
}

func (s *stubBookingService) StartSession(ctx context.Context) (*models.BookingSession, error) {
	if s.startErr != nil {
		return nil, s.startErr
	}
	return &models.BookingSession{ID: "sess-1", CreatedAt: time.Now()}, nil
}

func (s *stubBookingService) SelectDate(ctx context.Context, sessionID, date string) (*models.AvailabilityResult, error) {
	return s.selectFn(sessionID, date)
}

func (s *stubBookingService) Confirm(ctx context.Context, sessionID string, input models.AppointmentInput) (*models.Appointment, error) {
	return s.confirmFn(sessionID, input)
}

func (s *stubBookingService) CancelSession(ctx context.Context, sessionID string) error {
	s.lastCancel = sessionID
	return s.cancelErr
}

func (s *stubBookingService) MonthGrid(year int, month time.Month) *models.MonthGrid {
	return &models.MonthGrid{Year: year, Month: int(month)}
}

func newBookingRouter(svc booking.BookingSessionService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewBookingHandler(svc, zap.NewNop())

	r := gin.New()
	r.GET("/api/booking/calendar/:year/:month", h.GetMonthGrid)
	r.POST("/api/booking/session", h.StartSession)
	r.GET("/api/booking/session/:sessionID/availability", h.GetAvailability)
	r.POST("/api/booking/confirm", h.ConfirmBooking)
	r.DELETE("/api/booking/session/:sessionID", h.CancelSession)
	return r
}

func TestGetMonthGrid(t *testing.T) {
	r := newBookingRouter(&stubBookingService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/booking/calendar/2026/3", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var grid models.MonthGrid
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &grid))
	require.Equal(t, 2026, grid.Year)
	require.Equal(t, 3, grid.Month)
}

func TestGetMonthGrid_BadParams(t *testing.T) {
	r := newBookingRouter(&stubBookingService{})

	for _, path := range []string{
		"/api/booking/calendar/abc/3",
		"/api/booking/calendar/2026/0",
		"/api/booking/calendar/2026/13",
	} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusBadRequest, w.Code, "path %s", path)
	}
}

func TestStartSessionHandler(t *testing.T) {
	r := newBookingRouter(&stubBookingService{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/booking/session", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "sess-1", body["sessionID"])
}

func TestGetAvailability(t *testing.T) {
	svc := &stubBookingService{
		selectFn: func(sessionID, date string) (*models.AvailabilityResult, error) {
			require.Equal(t, "sess-1", sessionID)
			return &models.AvailabilityResult{
				Date:    date,
				Weekday: "monday",
				Slots:   []models.CandidateSlot{{Time: "9:00 AM"}, {Time: "9:15 AM", IsBooked: true}},
			}, nil
		},
	}
	r := newBookingRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/booking/session/sess-1/availability?date=2026-03-02", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var result models.AvailabilityResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	require.Equal(t, "2026-03-02", result.Date)
	require.Len(t, result.Slots, 2)
	require.True(t, result.Slots[1].IsBooked)
}

func TestGetAvailability_MissingDate(t *testing.T) {
	r := newBookingRouter(&stubBookingService{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/booking/session/sess-1/availability", nil))
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetAvailability_SessionExpired(t *testing.T) {
	svc := &stubBookingService{
		selectFn: func(sessionID, date string) (*models.AvailabilityResult, error) {
			return nil, booking.ErrSessionNotFound
		},
	}
	r := newBookingRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/booking/session/gone/availability?date=2026-03-02", nil))
	require.Equal(t, http.StatusNotFound, w.Code)
}

func confirmRequest(t *testing.T, sessionID string, input models.AppointmentInput) *http.Request {
	t.Helper()
	payload, err := json.Marshal(gin.H{"sessionID": sessionID, "appointment": input})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/booking/confirm", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestConfirmBooking(t *testing.T) {
	svc := &stubBookingService{
		confirmFn: func(sessionID string, input models.AppointmentInput) (*models.Appointment, error) {
			return &models.Appointment{ID: "appt-1", Date: input.Date, Time: input.Time}, nil
		},
	}
	r := newBookingRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, confirmRequest(t, "sess-1", models.AppointmentInput{
		Date: "2026-03-02", Time: "10:00 AM", Name: "Pat Candidate", Email: "pat@example.com",
	}))

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Appointment models.Appointment `json:"appointment"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "appt-1", body.Appointment.ID)
}

func TestConfirmBooking_Conflict(t *testing.T) {
	slot, _ := booking.ParseTimeOfDay("10:00 AM")
	svc := &stubBookingService{
		confirmFn: func(sessionID string, input models.AppointmentInput) (*models.Appointment, error) {
			return nil, &booking.ConflictError{Slots: []booking.TimeOfDay{slot}}
		},
	}
	r := newBookingRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, confirmRequest(t, "sess-1", models.AppointmentInput{
		Date: "2026-03-02", Time: "10:00 AM",
	}))

	require.Equal(t, http.StatusConflict, w.Code)
	var body struct {
		ConflictingSlots []string `json:"conflictingSlots"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, []string{"10:00 AM"}, body.ConflictingSlots)
}

func TestConfirmBooking_ValidationError(t *testing.T) {
	svc := &stubBookingService{
		confirmFn: func(sessionID string, input models.AppointmentInput) (*models.Appointment, error) {
			return nil, &booking.ValidationError{Field: "date", Message: "cannot book a past date"}
		},
	}
	r := newBookingRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, confirmRequest(t, "sess-1", models.AppointmentInput{
		Date: "2020-01-01", Time: "10:00 AM",
	}))
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestConfirmBooking_MissingBody(t *testing.T) {
	r := newBookingRouter(&stubBookingService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/booking/confirm", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCancelSessionHandler(t *testing.T) {
	svc := &stubBookingService{}
	r := newBookingRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/booking/session/sess-1", nil))

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "sess-1", svc.lastCancel)
}
