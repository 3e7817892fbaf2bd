package restrictionRepo

import (
	"context"

	"civicbook/models"
)

// RestrictionRepository is the restriction source: it owns the per-weekday
// booking windows and pushes updates as they happen.
type RestrictionRepository interface {
	// Fetch returns the current restriction table.
	Fetch(ctx context.Context) (models.WeekRestrictions, error)
	// Subscribe invokes onUpdate with the full table immediately and again
	// after every change, until the returned stop function is called.
	// Updates may arrive at any time, from the repository's own goroutine.
	Subscribe(ctx context.Context, onUpdate func(models.WeekRestrictions)) (stop func(), err error)
	// Set writes one weekday's window.
	Set(ctx context.Context, restriction models.Restriction) error
}
