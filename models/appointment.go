package models

import "time"

// Appointment statuses.
const (
	AppointmentStatusScheduled = "scheduled"
	AppointmentStatusCancelled = "cancelled"
)

// DefaultAppointmentDuration is the fixed length of a candidate appointment in minutes.
const DefaultAppointmentDuration = 45

// Appointment represents a confirmed booking with the election office.
type Appointment struct {
	ID              string    `bson:"id" json:"id"`                             // Unique appointment identifier (UUID)
	UserID          int64     `bson:"user_id,omitempty" json:"userId,omitempty"` // Candidate who booked, when known
	Name            string    `bson:"name" json:"name"`
	Email           string    `bson:"email" json:"email"`
	AppointmentType string    `bson:"appointment_type" json:"appointmentType"` // e.g. "Candidate Pre-Qualifying / Qualifying"
	Duration        int       `bson:"duration" json:"duration"`                 // Appointment length in minutes
	Location        string    `bson:"location" json:"location"`
	Address         string    `bson:"address" json:"address"`
	Date            string    `bson:"date" json:"date"` // Appointment date in "YYYY-MM-DD" format
	Time            string    `bson:"time" json:"time"` // Start time in 12-hour form, e.g. "10:00 AM"
	TimeZone        string    `bson:"time_zone" json:"timeZone"`
	Notes           string    `bson:"notes,omitempty" json:"notes,omitempty"`
	Status          string    `bson:"status" json:"status"`
	CreatedAt       time.Time `bson:"created_at" json:"createdAt"`
}

// AppointmentInput holds the client-supplied fields of a booking request.
type AppointmentInput struct {
	Date   string `json:"date" binding:"required"` // "YYYY-MM-DD"
	Time   string `json:"time" binding:"required"` // e.g. "10:00 AM"
	UserID int64  `json:"userId"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Notes  string `json:"notes"`
}
