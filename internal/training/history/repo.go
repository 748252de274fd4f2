package history

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/RanieeelB/PulseFit/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Insert appends the given entries in one transaction.
func (r *Repo) Insert(ctx context.Context, entries []Entry) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.history.insert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("entries", len(entries)))

	if len(entries) == 0 {
		return nil
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
				err = fmt.Errorf("failed to rollback transaction: %w: %w", rollbackErr, err)
			}
		} else {
			err = tx.Commit(ctx)
		}
	}()

	for _, entry := range entries {
		setsDataJson, err := json.Marshal(entry.SetsData)
		if err != nil {
			return fmt.Errorf("marshal sets data for %q: %w", entry.ExerciseName, err)
		}

		if _, err := tx.Exec(ctx, `
			INSERT INTO exercise_history
				(user_id, exercise_name, weight, reps, sets, sets_data, date)
			VALUES ($1, $2, $3, $4, $5, $6, $7);
		`,
			entry.UserID, entry.ExerciseName, entry.Weight,
			entry.Reps, entry.Sets, setsDataJson, entry.Date,
		); err != nil {
			return err
		}
	}

	return nil
}

// List returns the newest entries first for one exercise of one user.
func (r *Repo) List(ctx context.Context, userID, exerciseName string, limit int) (_ []Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.history.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise_name", exerciseName))
	span.SetAttributes(attribute.Int("limit", limit))

	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, exercise_name, weight, reps, sets, sets_data, date
		FROM exercise_history
		WHERE user_id = $1 AND exercise_name = $2
		ORDER BY date DESC
		LIMIT $3;
	`, userID, exerciseName, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return r.rows2entries(rows)
}

// LatestPerExercise returns, for each of the given exercise names, the
// most recent history entry of the user.
func (r *Repo) LatestPerExercise(ctx context.Context, userID string, exerciseNames []string) (_ map[string]Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.history.latestPerExercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("exercise_names", len(exerciseNames)))

	latest := make(map[string]Entry)
	if len(exerciseNames) == 0 {
		return latest, nil
	}

	rows, err := r.db.Query(ctx, `
		SELECT DISTINCT ON (exercise_name)
			id, user_id, exercise_name, weight, reps, sets, sets_data, date
		FROM exercise_history
		WHERE user_id = $1 AND exercise_name = ANY($2)
		ORDER BY exercise_name, date DESC;
	`, userID, exerciseNames)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	entries, err := r.rows2entries(rows)
	if err != nil {
		return nil, err
	}

	for _, entry := range entries {
		latest[entry.ExerciseName] = entry
	}
	return latest, nil
}

func (r *Repo) rows2entries(rows pgx.Rows) ([]Entry, error) {
	entries := make([]Entry, 0)
	for rows.Next() {
		var entry Entry
		var setsDataBytes []byte
		var date time.Time
		if err := rows.Scan(
			&entry.ID, &entry.UserID, &entry.ExerciseName,
			&entry.Weight, &entry.Reps, &entry.Sets,
			&setsDataBytes, &date,
		); err != nil {
			return nil, err
		}
		entry.Date = date

		if len(setsDataBytes) > 0 {
			if err := json.Unmarshal(setsDataBytes, &entry.SetsData); err != nil {
				return nil, fmt.Errorf("unmarshal sets data for entry %d: %w", entry.ID, err)
			}
		}

		entries = append(entries, entry)
	}
	return entries, nil
}
