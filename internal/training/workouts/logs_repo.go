package workouts

import (
	"context"
	"time"

	"github.com/RanieeelB/PulseFit/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type LogsRepo struct {
	db *pgxpool.Pool
}

func NewLogsRepo(db *pgxpool.Pool) *LogsRepo {
	return &LogsRepo{
		db: db,
	}
}

func (r *LogsRepo) Insert(ctx context.Context, entry LogEntry) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workoutlogs.insert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("workout_id", entry.WorkoutID))

	_, err = r.db.Exec(ctx, `
		INSERT INTO workout_log
			(user_id, workout_id, duration_minutes, calories, user_name, completed_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`,
		entry.UserID, entry.WorkoutID, entry.DurationMinutes,
		entry.Calories, entry.UserName, entry.CompletedAt,
	)
	return err
}

// ListSince returns all log entries of one user completed at or after
// the given time, newest first. A zero since time returns everything.
func (r *LogsRepo) ListSince(ctx context.Context, userID string, since time.Time) (_ []LogEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workoutlogs.listSince")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("since", since.String()))

	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, workout_id, duration_minutes, calories, user_name, completed_at
		FROM workout_log
		WHERE user_id = $1
		  AND ($2::timestamptz IS NULL OR completed_at >= $2)
		ORDER BY completed_at DESC;
	`, userID, nullableTime(since))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return r.rows2entries(rows)
}

// ListAllSince is like ListSince but across all users, for the
// leaderboard.
func (r *LogsRepo) ListAllSince(ctx context.Context, since time.Time) (_ []LogEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workoutlogs.listAllSince")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("since", since.String()))

	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, workout_id, duration_minutes, calories, user_name, completed_at
		FROM workout_log
		WHERE ($1::timestamptz IS NULL OR completed_at >= $1)
		ORDER BY completed_at DESC;
	`, nullableTime(since))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return r.rows2entries(rows)
}

// DeleteForWorkout removes all log entries of one workout. Used when a
// workout itself gets deleted, never by the session pipeline.
func (r *LogsRepo) DeleteForWorkout(ctx context.Context, workoutID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workoutlogs.deleteForWorkout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("workout_id", workoutID))

	_, err = r.db.Exec(ctx, `DELETE FROM workout_log WHERE workout_id = $1;`, workoutID)
	return err
}

func (r *LogsRepo) rows2entries(rows pgx.Rows) ([]LogEntry, error) {
	entries := make([]LogEntry, 0)
	for rows.Next() {
		var entry LogEntry
		if err := rows.Scan(
			&entry.ID, &entry.UserID, &entry.WorkoutID,
			&entry.DurationMinutes, &entry.Calories,
			&entry.UserName, &entry.CompletedAt,
		); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func nullableTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
