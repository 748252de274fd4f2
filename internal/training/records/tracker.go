package records

import (
	"context"
	"fmt"
	"time"

	"github.com/RanieeelB/PulseFit/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/multierr"
)

//go:generate mockgen -source=$GOFILE -destination=tracker_mocks_test.go -package=records_test

type recordsRepo interface {
	ListAll(ctx context.Context, userID string) ([]Record, error)
	Upsert(ctx context.Context, record Record) error
}

// Tracker maintains per (user, exercise name) max weight records and
// detects new ones.
type Tracker struct {
	repo recordsRepo

	// NowFunc can be injected for testing, defaults to time.Now
	NowFunc func() time.Time
}

func NewTracker(repo recordsRepo) *Tracker {
	return &Tracker{
		repo:    repo,
		NowFunc: time.Now,
	}
}

// List returns the user's current records, heaviest first.
func (t *Tracker) List(ctx context.Context, userID string) ([]Record, error) {
	return t.repo.ListAll(ctx, userID)
}

// Process evaluates the performed exercises of one session against the
// stored records and upserts every one that strictly beats its stored
// weight. Entries without a name or with weight <= 0 are skipped.
// Evaluation order does not matter, the exercises do not interact.
// A failed upsert skips only that exercise; the others still get
// processed, and all upsert failures come back combined.
func (t *Tracker) Process(ctx context.Context, userID string, performed []Performed) (_ []NewRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "records.tracker.process")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("performed", len(performed)))

	newRecords := make([]NewRecord, 0)
	if len(performed) == 0 {
		return newRecords, nil
	}

	current, err := t.repo.ListAll(ctx, userID)
	if err != nil {
		return newRecords, fmt.Errorf("list current records: %w", err)
	}

	currentByName := make(map[string]Record, len(current))
	for _, record := range current {
		currentByName[record.ExerciseName] = record
	}

	var upsertErrs error
	now := t.NowFunc()
	for _, p := range performed {
		if p.Name == "" || p.Weight <= 0 {
			continue
		}

		existing, hasExisting := currentByName[p.Name]
		if hasExisting && p.Weight <= existing.Weight {
			continue
		}

		if upsertErr := t.repo.Upsert(ctx, Record{
			UserID:       userID,
			ExerciseName: p.Name,
			Weight:       p.Weight,
			Reps:         p.Reps,
			Date:         now,
		}); upsertErr != nil {
			upsertErrs = multierr.Append(
				upsertErrs,
				fmt.Errorf("upsert record for %q: %w", p.Name, upsertErr),
			)
			continue
		}

		newRecords = append(newRecords, NewRecord{
			Name:      p.Name,
			OldWeight: existing.Weight,
			NewWeight: p.Weight,
		})
	}

	span.SetAttributes(attribute.Int("new_records", len(newRecords)))
	return newRecords, upsertErrs
}
