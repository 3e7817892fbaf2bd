package tasks

import (
	"encoding/json"
	"testing"
	"time"

	"civicbook/models"
)

func TestNewReminderTask(t *testing.T) {
	payload := models.ReminderPayload{
		ReminderID:    "rem-1",
		AppointmentID: "appt-1",
		FireDate:      "2026-03-01T10:00:00Z",
		Title:         "Appointment reminder",
		Body:          "Your appointment is tomorrow at 10:00 AM.",
		Email:         "pat@example.com",
	}

	task, opts, err := NewReminderTask(payload, time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("NewReminderTask failed: %v", err)
	}
	if task.Type() != TypeSendReminder {
		t.Fatalf("task type = %q, want %q", task.Type(), TypeSendReminder)
	}
	if len(opts) != 1 {
		t.Fatalf("expected one scheduling option, got %d", len(opts))
	}

	var decoded models.ReminderPayload
	if err := json.Unmarshal(task.Payload(), &decoded); err != nil {
		t.Fatalf("payload did not round-trip: %v", err)
	}
	if decoded.AppointmentID != payload.AppointmentID || decoded.Email != payload.Email {
		t.Fatalf("payload mismatch: %+v", decoded)
	}
}
