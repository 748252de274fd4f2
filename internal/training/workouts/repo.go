package workouts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/RanieeelB/PulseFit/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrWorkoutNotFound = errors.New("workout not found")

// exerciseDurationEstimateMinutes is the per-exercise contribution to a
// workout's duration estimate.
const exerciseDurationEstimateMinutes = 10

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Create(ctx context.Context, workout Workout) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if workout.Title == "" {
		workout.Title = "Untitled"
	}
	if workout.Description == "" {
		workout.Description = "Custom"
	}
	if workout.Status == "" {
		workout.Status = StatusPending
	}
	workout.DurationEstimateMinutes = len(workout.Exercises) * exerciseDurationEstimateMinutes
	if workout.CreatedAt.IsZero() {
		workout.CreatedAt = time.Now()
	}

	exercisesJson, err := json.Marshal(workout.Exercises)
	if err != nil {
		return nil, fmt.Errorf("marshal exercises: %w", err)
	}

	var id int
	err = r.db.QueryRow(ctx, `
		INSERT INTO workout
			(user_id, title, description, icon, exercises, status, duration_estimate, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id;
	`,
		workout.UserID, workout.Title, workout.Description, workout.Icon,
		exercisesJson, workout.Status, workout.DurationEstimateMinutes, workout.CreatedAt,
	).Scan(&id)
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("workout.id", id))

	workout.ID = id
	return &workout, nil
}

func (r *Repo) Update(ctx context.Context, workout *Workout) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", workout.ID))

	workout.DurationEstimateMinutes = len(workout.Exercises) * exerciseDurationEstimateMinutes

	exercisesJson, err := json.Marshal(workout.Exercises)
	if err != nil {
		return fmt.Errorf("marshal exercises: %w", err)
	}

	tag, err := r.db.Exec(ctx, `
		UPDATE workout
		SET title = $1, description = $2, icon = $3, exercises = $4, duration_estimate = $5
		WHERE id = $6;
	`,
		workout.Title, workout.Description, workout.Icon,
		exercisesJson, workout.DurationEstimateMinutes, workout.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrWorkoutNotFound
	}
	return nil
}

func (r *Repo) Delete(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM workout WHERE id = $1;`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrWorkoutNotFound
	}
	return nil
}

func (r *Repo) Get(ctx context.Context, id int) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, title, description, icon, exercises, status, duration_estimate, created_at
		FROM workout
		WHERE id = $1;
	`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	workouts, err := r.rows2workouts(rows)
	if err != nil {
		return nil, err
	}
	if len(workouts) != 1 {
		return nil, ErrWorkoutNotFound
	}
	return &workouts[0], nil
}

// ListAll returns all workouts of the user's rotation, oldest first.
func (r *Repo) ListAll(ctx context.Context, userID string) (_ []Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.listall")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, title, description, icon, exercises, status, duration_estimate, created_at
		FROM workout
		WHERE user_id = $1
		ORDER BY created_at ASC;
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return r.rows2workouts(rows)
}

func (r *Repo) UpdateStatus(ctx context.Context, id int, status Status) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.updateStatus")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))
	span.SetAttributes(attribute.String("status", string(status)))

	tag, err := r.db.Exec(ctx, `UPDATE workout SET status = $1 WHERE id = $2;`, status, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrWorkoutNotFound
	}
	return nil
}

// BulkResetStatuses flips the whole rotation of a user back to pending.
func (r *Repo) BulkResetStatuses(ctx context.Context, userID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.bulkResetStatuses")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	_, err = r.db.Exec(ctx,
		`UPDATE workout SET status = $1 WHERE user_id = $2;`,
		StatusPending, userID,
	)
	return err
}

// AddExercise appends one exercise plan to a workout and refreshes its
// duration estimate.
func (r *Repo) AddExercise(ctx context.Context, workoutID int, plan ExercisePlan) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.addExercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", workoutID))

	workout, err := r.Get(ctx, workoutID)
	if err != nil {
		return err
	}

	workout.Exercises = append(workout.Exercises, plan)
	return r.Update(ctx, workout)
}

func (r *Repo) rows2workouts(rows pgx.Rows) ([]Workout, error) {
	workouts := make([]Workout, 0)
	for rows.Next() {
		var w Workout
		var exercisesBytes []byte
		if err := rows.Scan(
			&w.ID, &w.UserID, &w.Title, &w.Description, &w.Icon,
			&exercisesBytes, &w.Status, &w.DurationEstimateMinutes, &w.CreatedAt,
		); err != nil {
			return nil, err
		}

		if len(exercisesBytes) > 0 {
			if err := json.Unmarshal(exercisesBytes, &w.Exercises); err != nil {
				return nil, fmt.Errorf("unmarshal exercises for workout %d: %w", w.ID, err)
			}
		}

		workouts = append(workouts, w)
	}
	return workouts, nil
}
