package records

import (
	"context"
	"errors"

	"github.com/RanieeelB/PulseFit/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrRecordNotFound = errors.New("personal record not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Get(ctx context.Context, userID, exerciseName string) (_ *Record, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.records.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise_name", exerciseName))

	record := &Record{}
	err = r.db.
		QueryRow(ctx, `
			SELECT user_id, exercise_name, weight, reps, date
			FROM personal_record
			WHERE user_id = $1 AND exercise_name = $2;
		`, userID, exerciseName).
		Scan(&record.UserID, &record.ExerciseName, &record.Weight, &record.Reps, &record.Date)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return record, nil
}

// ListAll returns all records of one user, heaviest first.
func (r *Repo) ListAll(ctx context.Context, userID string) (_ []Record, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.records.listall")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `
		SELECT user_id, exercise_name, weight, reps, date
		FROM personal_record
		WHERE user_id = $1
		ORDER BY weight DESC;
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	records := make([]Record, 0)
	for rows.Next() {
		var record Record
		if err := rows.Scan(
			&record.UserID, &record.ExerciseName,
			&record.Weight, &record.Reps, &record.Date,
		); err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}

// Upsert inserts or replaces the record for (user, exercise name).
// Concurrent upserts for the same key are last-writer-wins, which is
// fine since within one session each exercise name is processed once.
func (r *Repo) Upsert(ctx context.Context, record Record) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.records.upsert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise_name", record.ExerciseName))
	span.SetAttributes(attribute.Float64("weight", record.Weight))

	_, err = r.db.Exec(ctx, `
		INSERT INTO personal_record (user_id, exercise_name, weight, reps, date)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, exercise_name)
		DO UPDATE SET weight = $3, reps = $4, date = $5;
	`, record.UserID, record.ExerciseName, record.Weight, record.Reps, record.Date)
	return err
}
