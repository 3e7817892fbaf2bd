package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	appointmentRepo "civicbook/database/repository/appointment"
	restrictionRepo "civicbook/database/repository/restriction"
	"civicbook/models"
	"civicbook/services/tasks"
	"civicbook/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const (
	sessionKeyPrefix = "booking_session:"
	sessionTTL       = 30 * time.Minute

	reminderLead = 24 * time.Hour
)

// OfficePolicy carries the office's fixed booking parameters, normally built
// from AppConfig.
type OfficePolicy struct {
	OpenTime        string // e.g. "9:00 AM"
	CloseTime       string // e.g. "5:00 PM"
	GranularityMin  int
	DurationMin     int
	AppointmentType string
	Location        string
	Address         string
	TimeZone        string
}

// DefaultBookingSessionService implements BookingSessionService. The engine
// functions it calls are pure; all mutable state lives in the Redis-backed
// session and in the live restriction table updated by the Firestore listener.
type DefaultBookingSessionService struct {
	Appointments appointmentRepo.AppointmentRepository
	Restrictions restrictionRepo.RestrictionRepository
	Cache        *redis.Client
	Queue        *asynq.Client // optional; nil disables reminders

	open        TimeOfDay
	close       TimeOfDay
	granularity int
	duration    int
	policy      OfficePolicy

	mu           sync.RWMutex
	restrictions models.WeekRestrictions
	stopListener func()
}

// NewBookingSessionService constructs the service. It fails when the policy's
// open/close strings do not parse.
func NewBookingSessionService(
	appointments appointmentRepo.AppointmentRepository,
	restrictions restrictionRepo.RestrictionRepository,
	cache *redis.Client,
	queue *asynq.Client,
	policy OfficePolicy,
) (*DefaultBookingSessionService, error) {
	open, err := ParseTimeOfDay(policy.OpenTime)
	if err != nil {
		return nil, fmt.Errorf("invalid office open time: %w", err)
	}
	closeAt, err := ParseTimeOfDay(policy.CloseTime)
	if err != nil {
		return nil, fmt.Errorf("invalid office close time: %w", err)
	}
	granularity := policy.GranularityMin
	if granularity <= 0 {
		granularity = SlotGranularity
	}
	duration := policy.DurationMin
	if duration <= 0 {
		duration = DefaultDuration
	}

	return &DefaultBookingSessionService{
		Appointments: appointments,
		Restrictions: restrictions,
		Cache:        cache,
		Queue:        queue,
		open:         open,
		close:        closeAt,
		granularity:  granularity,
		duration:     duration,
		policy:       policy,
		restrictions: make(models.WeekRestrictions),
	}, nil
}

// StartRestrictionListener subscribes to the restriction source. Pushed
// updates replace the live table at any time; availability computed after an
// update sees the new windows. A failed initial attach is surfaced so the
// caller can decide whether to start degraded.
func (s *DefaultBookingSessionService) StartRestrictionListener(ctx context.Context) error {
	stop, err := s.Restrictions.Subscribe(ctx, func(updated models.WeekRestrictions) {
		s.mu.Lock()
		s.restrictions = updated
		s.mu.Unlock()
		utils.GetLogger().Info("appointment-times table updated",
			zap.Int("weekdays", len(updated)))
	})
	if err != nil {
		return &SourceUnavailableError{Source: "restriction source", Err: err}
	}
	s.stopListener = stop
	return nil
}

// StopRestrictionListener detaches the restriction listener.
func (s *DefaultBookingSessionService) StopRestrictionListener() {
	if s.stopListener != nil {
		s.stopListener()
		s.stopListener = nil
	}
}

func (s *DefaultBookingSessionService) currentRestrictions() models.WeekRestrictions {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.restrictions
}

// StartSession creates a new booking session.
func (s *DefaultBookingSessionService) StartSession(ctx context.Context) (*models.BookingSession, error) {
	session := &models.BookingSession{
		ID:        uuid.New().String(),
		CreatedAt: time.Now(),
	}
	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// SelectDate picks a date within a session and computes its availability
// listing. The previously selected time is cleared synchronously, before the
// appointment fetch, so a stale choice can never survive a date change.
func (s *DefaultBookingSessionService) SelectDate(ctx context.Context, sessionID, dateStr string) (*models.AvailabilityResult, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	date, err := time.ParseInLocation(DateLayout, dateStr, time.Local)
	if err != nil {
		return nil, &ValidationError{Field: "date", Message: fmt.Sprintf("invalid date %q, want YYYY-MM-DD", dateStr)}
	}

	session.SelectedDate = dateStr
	session.SelectedTime = ""
	session.OccupiedSlots = nil
	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}

	appointments, err := s.Appointments.ListByDate(ctx, dateStr)
	if err != nil {
		return nil, &SourceUnavailableError{Source: "appointment store", Err: err}
	}
	occupied, err := AggregateOccupied(appointments, dateStr, s.granularity)
	if err != nil {
		return nil, err
	}

	// The fetch is tagged with its date: apply the occupied set only if this
	// date is still the session's current selection. A concurrent request may
	// have moved the session on; its listing wins.
	if current, err := s.loadSession(ctx, sessionID); err == nil && current.SelectedDate == dateStr {
		current.SelectedTime = ""
		current.OccupiedSlots = slotStrings(occupied)
		if err := s.saveSession(ctx, current); err != nil {
			return nil, err
		}
	}

	window, err := ResolveWindow(date, s.currentRestrictions())
	if err != nil {
		return nil, err
	}

	catalog := GenerateCatalog(s.open, s.close, s.granularity)
	candidates := ComputeAvailability(catalog, window, occupied, s.duration)

	result := &models.AvailabilityResult{
		Date:    dateStr,
		Weekday: WeekdayName(date),
		Slots:   make([]models.CandidateSlot, 0, len(candidates)),
	}
	if window != nil {
		result.Window = &models.WindowDTO{Open: window.Open.String(), Close: window.Close.String()}
	}
	for _, c := range candidates {
		result.Slots = append(result.Slots, models.CandidateSlot{
			Time:     c.Start.String(),
			IsBooked: c.Booked,
		})
	}
	return result, nil
}

// Confirm validates and persists a booking. The occupied set is re-fetched
// from the store here, not reused from render time, so a conflicting booking
// made in between is caught before the write.
func (s *DefaultBookingSessionService) Confirm(ctx context.Context, sessionID string, input models.AppointmentInput) (*models.Appointment, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if input.Date == "" {
		return nil, &ValidationError{Field: "date", Message: "please select a date"}
	}
	if input.Time == "" {
		return nil, &ValidationError{Field: "time", Message: "please select a time"}
	}

	date, err := time.ParseInLocation(DateLayout, input.Date, time.Local)
	if err != nil {
		return nil, &ValidationError{Field: "date", Message: fmt.Sprintf("invalid date %q, want YYYY-MM-DD", input.Date)}
	}
	if IsPastDate(date) {
		return nil, &ValidationError{Field: "date", Message: "cannot book a past date"}
	}

	start, err := ParseTimeOfDay(input.Time)
	if err != nil {
		return nil, err
	}

	appointments, err := s.Appointments.ListByDate(ctx, input.Date)
	if err != nil {
		return nil, &SourceUnavailableError{Source: "appointment store", Err: err}
	}
	occupied, err := AggregateOccupied(appointments, input.Date, s.granularity)
	if err != nil {
		return nil, err
	}
	if err := ValidateSelection(start, occupied, s.duration); err != nil {
		return nil, err
	}

	appointment := &models.Appointment{
		ID:              uuid.New().String(),
		UserID:          input.UserID,
		Name:            input.Name,
		Email:           input.Email,
		AppointmentType: s.policy.AppointmentType,
		Duration:        s.duration,
		Location:        s.policy.Location,
		Address:         s.policy.Address,
		Date:            input.Date,
		Time:            start.String(),
		TimeZone:        s.policy.TimeZone,
		Notes:           input.Notes,
		Status:          models.AppointmentStatusScheduled,
		CreatedAt:       time.Now(),
	}
	if err := s.Appointments.Create(ctx, appointment); err != nil {
		return nil, &PersistenceError{Op: "create", Err: err}
	}

	// Optimistic local update: every slot the new appointment covers becomes
	// occupied in the session immediately, ahead of the next full refetch.
	if session.SelectedDate == input.Date {
		for _, slot := range SlotsCovered(start, s.duration, s.granularity) {
			session.OccupiedSlots = appendUnique(session.OccupiedSlots, slot.String())
		}
		session.SelectedTime = appointment.Time
		if err := s.saveSession(ctx, session); err != nil {
			utils.GetLogger().Warn("failed to update session after booking",
				zap.String("sessionID", sessionID), zap.Error(err))
		}
	}

	s.enqueueReminder(ctx, appointment, date, start)
	return appointment, nil
}

// CancelSession drops the session state.
func (s *DefaultBookingSessionService) CancelSession(ctx context.Context, sessionID string) error {
	if err := s.Cache.Del(ctx, sessionKeyPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("failed to delete booking session: %w", err)
	}
	return nil
}

// MonthGrid renders the month's selectable dates with past/today flags.
func (s *DefaultBookingSessionService) MonthGrid(year int, month time.Month) *models.MonthGrid {
	weeks := BuildMonthGrid(year, month)
	grid := &models.MonthGrid{
		Year:  year,
		Month: int(month),
		Weeks: make([]models.CalendarWeek, len(weeks)),
	}
	for w, week := range weeks {
		for col, d := range week {
			grid.Weeks[w][col] = models.CalendarDay{
				Date:    d.Format(DateLayout),
				Day:     d.Day(),
				InMonth: d.Month() == month,
				Past:    IsPastDate(d),
				Today:   IsToday(d),
			}
		}
	}
	return grid
}

func (s *DefaultBookingSessionService) enqueueReminder(ctx context.Context, appointment *models.Appointment, date time.Time, start TimeOfDay) {
	if s.Queue == nil {
		return
	}
	logger := utils.GetLogger()

	startAt := Midnight(date).Add(time.Duration(start.Minutes()) * time.Minute)
	fireAt := startAt.Add(-reminderLead)
	if !fireAt.After(time.Now()) {
		return
	}

	payload := models.ReminderPayload{
		ReminderID:    uuid.New().String(),
		AppointmentID: appointment.ID,
		FireDate:      fireAt.Format(time.RFC3339),
		Title:         "Appointment reminder",
		Body:          fmt.Sprintf("Your %s appointment is tomorrow at %s.", appointment.AppointmentType, appointment.Time),
		Email:         appointment.Email,
	}
	task, opts, err := tasks.NewReminderTask(payload, fireAt)
	if err != nil {
		logger.Warn("failed to build reminder task", zap.Error(err))
		return
	}
	if _, err := s.Queue.EnqueueContext(ctx, task, opts...); err != nil {
		logger.Warn("failed to enqueue reminder task",
			zap.String("appointmentID", appointment.ID), zap.Error(err))
	}
}

func (s *DefaultBookingSessionService) loadSession(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	data, err := s.Cache.Get(ctx, sessionKeyPrefix+sessionID).Result()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load booking session: %w", err)
	}

	var session models.BookingSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to parse booking session: %w", err)
	}
	return &session, nil
}

func (s *DefaultBookingSessionService) saveSession(ctx context.Context, session *models.BookingSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal booking session: %w", err)
	}
	if err := s.Cache.Set(ctx, sessionKeyPrefix+session.ID, data, sessionTTL).Err(); err != nil {
		return fmt.Errorf("failed to cache booking session: %w", err)
	}
	return nil
}

func slotStrings(occupied OccupiedSet) []string {
	slots := occupied.Slots()
	out := make([]string, len(slots))
	for i, s := range slots {
		out[i] = s.String()
	}
	return out
}

func appendUnique(list []string, v string) []string {
	for _, existing := range list {
		if existing == v {
			return list
		}
	}
	return append(list, v)
}
