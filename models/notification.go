package models

// ReminderPayload is the payload of a queued appointment reminder task.
type ReminderPayload struct {
	ReminderID    string `json:"reminderId"`
	AppointmentID string `json:"appointmentId"`
	FireDate      string `json:"fireDate"` // RFC3339
	Title         string `json:"title"`
	Body          string `json:"body"`
	Email         string `json:"email"`
}
