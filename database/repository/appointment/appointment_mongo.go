package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"civicbook/config"
	"civicbook/database"
	"civicbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoAppointmentRepo implements AppointmentRepository using MongoDB.
type MongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo constructs a new instance of MongoAppointmentRepo.
func NewMongoAppointmentRepo() *MongoAppointmentRepo {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &MongoAppointmentRepo{
		coll: db.Collection("appointments"),
	}
}

// ListByDate returns all scheduled appointments for the given date, in
// ascending creation order.
func (repo *MongoAppointmentRepo) ListByDate(ctx context.Context, date string) ([]models.Appointment, error) {
	return repo.list(ctx, bson.M{
		"date":   date,
		"status": models.AppointmentStatusScheduled,
	})
}

// ListByDateRange returns scheduled appointments with from <= date <= to.
// Dates are "YYYY-MM-DD" strings, so lexicographic range matches calendar order.
func (repo *MongoAppointmentRepo) ListByDateRange(ctx context.Context, from, to string) ([]models.Appointment, error) {
	return repo.list(ctx, bson.M{
		"date":   bson.M{"$gte": from, "$lte": to},
		"status": models.AppointmentStatusScheduled,
	})
}

func (repo *MongoAppointmentRepo) list(ctx context.Context, filter bson.M) ([]models.Appointment, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "created_at", Value: 1}})
	cursor, err := repo.coll.Find(ctxWithTimeout, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching appointments: %w", err)
	}
	defer cursor.Close(ctxWithTimeout)

	var appointments []models.Appointment
	for cursor.Next(ctxWithTimeout) {
		var a models.Appointment
		if err := cursor.Decode(&a); err != nil {
			return nil, fmt.Errorf("error decoding appointment: %w", err)
		}
		appointments = append(appointments, a)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return appointments, nil
}

// Create inserts a new appointment document. The unique (date, time) index
// rejects a second scheduled appointment at the same start.
func (repo *MongoAppointmentRepo) Create(ctx context.Context, appointment *models.Appointment) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := repo.coll.InsertOne(ctxWithTimeout, appointment)
	if err != nil {
		return fmt.Errorf("error creating appointment: %w", err)
	}
	return nil
}

// GetByID retrieves an appointment by its ID.
func (repo *MongoAppointmentRepo) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var appointment models.Appointment
	err := repo.coll.FindOne(ctxWithTimeout, bson.M{"id": id}).Decode(&appointment)
	if err != nil {
		return nil, fmt.Errorf("appointment not found: %w", err)
	}
	return &appointment, nil
}

// Cancel marks an appointment cancelled. Cancellation is refused once the
// appointment's start time has passed.
func (repo *MongoAppointmentRepo) Cancel(ctx context.Context, id string) error {
	appointment, err := repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	day, err := time.ParseInLocation("2006-01-02", appointment.Date, time.Local)
	if err != nil {
		return fmt.Errorf("invalid appointment date %q: %w", appointment.Date, err)
	}
	if time.Now().After(day.AddDate(0, 0, 1)) {
		return fmt.Errorf("cannot cancel appointment %s: its date has passed", id)
	}

	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": id}
	update := bson.M{"$set": bson.M{"status": models.AppointmentStatusCancelled}}
	res, err := repo.coll.UpdateOne(ctxWithTimeout, filter, update)
	if err != nil {
		return fmt.Errorf("error cancelling appointment %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("appointment %s not found", id)
	}
	return nil
}
