package booking

import (
	"context"
	"time"

	"civicbook/models"
)

// BookingSessionService manages a client's booking flow: session lifecycle,
// date selection with availability computation, and final submission.
type BookingSessionService interface {
	StartSession(ctx context.Context) (*models.BookingSession, error)
	// SelectDate picks a date within a session, clears any previously chosen
	// time, and returns the candidate slots for that date.
	SelectDate(ctx context.Context, sessionID, date string) (*models.AvailabilityResult, error)
	// Confirm validates and persists the booking.
	Confirm(ctx context.Context, sessionID string, input models.AppointmentInput) (*models.Appointment, error)
	CancelSession(ctx context.Context, sessionID string) error
	// MonthGrid renders the month's selectable dates.
	MonthGrid(year int, month time.Month) *models.MonthGrid
}
