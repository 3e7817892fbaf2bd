package appointmentRepo

import (
	"context"

	"civicbook/models"
)

// AppointmentRepository is the booking store: it owns persisted appointments.
type AppointmentRepository interface {
	// ListByDate returns the scheduled appointments on a "YYYY-MM-DD" date.
	ListByDate(ctx context.Context, date string) ([]models.Appointment, error)
	// ListByDateRange returns scheduled appointments with from <= date <= to.
	ListByDateRange(ctx context.Context, from, to string) ([]models.Appointment, error)
	Create(ctx context.Context, appointment *models.Appointment) error
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	// Cancel marks an appointment cancelled; its slots stop counting as occupied.
	Cancel(ctx context.Context, id string) error
}
