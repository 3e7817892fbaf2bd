package restrictionRepo

import (
	"context"
	"fmt"
	"strings"

	"civicbook/config"
	"civicbook/models"
	"civicbook/utils"

	"cloud.google.com/go/firestore"
	"go.uber.org/zap"
)

// FirestoreRestrictionRepo implements RestrictionRepository on top of the
// election office's Firestore project, where office staff maintain the
// appointment-times table.
type FirestoreRestrictionRepo struct {
	client *firestore.Client
}

// NewFirestoreRestrictionRepo constructs a new instance of FirestoreRestrictionRepo.
func NewFirestoreRestrictionRepo(client *firestore.Client) *FirestoreRestrictionRepo {
	return &FirestoreRestrictionRepo{client: client}
}

func (repo *FirestoreRestrictionRepo) coll() *firestore.CollectionRef {
	return repo.client.Collection(config.FirestoreRestrictionsCollection)
}

// Fetch returns the current restriction table.
func (repo *FirestoreRestrictionRepo) Fetch(ctx context.Context) (models.WeekRestrictions, error) {
	docs, err := repo.coll().Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("error fetching appointment-times table: %w", err)
	}

	restrictions := make(models.WeekRestrictions)
	for _, doc := range docs {
		if r, ok := parseRestrictionDoc(doc.Data()); ok {
			restrictions[r.Day] = r
		}
	}
	return restrictions, nil
}

// Subscribe attaches a snapshot listener to the appointment-times collection.
// onUpdate fires with the full table on attach and after every change. The
// listener keeps the last delivered table on transient errors; it does not
// push an empty table when Firestore becomes unreachable.
func (repo *FirestoreRestrictionRepo) Subscribe(ctx context.Context, onUpdate func(models.WeekRestrictions)) (func(), error) {
	subCtx, cancel := context.WithCancel(ctx)
	snapshots := repo.coll().Snapshots(subCtx)

	go func() {
		logger := utils.GetLogger()
		for {
			snap, err := snapshots.Next()
			if err != nil {
				if subCtx.Err() == nil {
					logger.Error("appointment-times listener stopped", zap.Error(err))
				}
				return
			}

			restrictions := make(models.WeekRestrictions)
			docs, err := snap.Documents.GetAll()
			if err != nil {
				logger.Error("failed to read appointment-times snapshot", zap.Error(err))
				continue
			}
			for _, doc := range docs {
				r, ok := parseRestrictionDoc(doc.Data())
				if !ok {
					logger.Warn("skipping malformed appointment-times document",
						zap.String("doc", doc.Ref.ID))
					continue
				}
				restrictions[r.Day] = r
			}
			onUpdate(restrictions)
		}
	}()

	stop := func() {
		cancel()
		snapshots.Stop()
	}
	return stop, nil
}

// Set writes one weekday's window, keyed by the weekday name so repeated
// saves overwrite rather than accumulate.
func (repo *FirestoreRestrictionRepo) Set(ctx context.Context, restriction models.Restriction) error {
	day := strings.ToLower(strings.TrimSpace(restriction.Day))
	if day == "" {
		return fmt.Errorf("restriction day must not be empty")
	}

	_, err := repo.coll().Doc(day).Set(ctx, map[string]interface{}{
		"day":   day,
		"begin": strings.TrimSpace(restriction.Begin),
		"end":   strings.TrimSpace(restriction.End),
	})
	if err != nil {
		return fmt.Errorf("error writing restriction for %s: %w", day, err)
	}
	return nil
}

// parseRestrictionDoc extracts a restriction from a raw Firestore document.
// Documents missing any of day/begin/end are skipped, matching the reading
// side's tolerance for hand-edited rows.
func parseRestrictionDoc(data map[string]interface{}) (models.Restriction, bool) {
	day, _ := data["day"].(string)
	begin, _ := data["begin"].(string)
	end, _ := data["end"].(string)

	day = strings.ToLower(strings.TrimSpace(day))
	begin = strings.TrimSpace(begin)
	end = strings.TrimSpace(end)
	if day == "" || begin == "" || end == "" {
		return models.Restriction{}, false
	}
	return models.Restriction{Day: day, Begin: begin, End: end}, true
}
