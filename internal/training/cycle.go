package training

import (
	"context"
	"fmt"
	"time"

	"github.com/RanieeelB/PulseFit/internal/telemetry/tracing"
	"github.com/RanieeelB/PulseFit/internal/training/stats"
	"github.com/RanieeelB/PulseFit/internal/training/workouts"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

// CycleResult says whether the just-finished workout completed the
// user's whole rotation, and carries the celebration numbers if so.
type CycleResult struct {
	Completed   bool               `json:"completed"`
	WeeklyStats *stats.WeeklyStats `json:"weeklyStats,omitempty"`
	Streak      int                `json:"streak"`
}

// CycleDetector checks after each finished session whether every
// workout of the rotation is completed, and if so resets the rotation
// back to pending.
type CycleDetector struct {
	workouts workoutsRepo
	stats    statsEngine
}

func NewCycleDetector(workoutsRepo workoutsRepo, statsEngine statsEngine) *CycleDetector {
	return &CycleDetector{
		workouts: workoutsRepo,
		stats:    statsEngine,
	}
}

// CheckAndReset fetches the rotation and decides on cycle completion.
// The just-finished workout is patched to completed in the fetched
// list, so an eventually consistent store cannot make us miss the
// completion through a stale status read. When the cycle is complete
// the reset is attempted even if the stats computation failed, a
// rotation stuck on all-completed is worse than imperfect celebration
// numbers.
func (d *CycleDetector) CheckAndReset(ctx context.Context, userID string, finishedWorkoutID int) (_ *CycleResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "training.cycle.checkAndReset")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("finished_workout_id", finishedWorkoutID))

	result := &CycleResult{}

	rotation, err := d.workouts.ListAll(ctx, userID)
	if err != nil {
		return result, fmt.Errorf("list workouts: %w", err)
	}
	if len(rotation) == 0 {
		return result, nil
	}

	allCompleted := true
	for _, workout := range rotation {
		if workout.ID == finishedWorkoutID {
			continue
		}
		if workout.Status != workouts.StatusCompleted {
			allCompleted = false
			break
		}
	}
	if !allCompleted {
		return result, nil
	}

	result.Completed = true
	span.SetAttributes(attribute.Bool("cycle_completed", true))

	weeklyStats, statsErr := d.stats.WeeklyStats(ctx, userID)
	if statsErr != nil {
		log.Errorf("cycle detector: weekly stats for user %s: %s", userID, statsErr)
		// zeroed placeholder stats, the reset below still has to happen
		weeklyStats = &stats.WeeklyStats{
			TotalHours:    "0.0",
			CaloriesLabel: "0",
			DaysCompleted: []time.Weekday{},
		}
	}
	result.WeeklyStats = weeklyStats

	if streak, streakErr := d.stats.Streak(ctx, userID); streakErr != nil {
		log.Errorf("cycle detector: streak for user %s: %s", userID, streakErr)
	} else {
		result.Streak = streak
	}

	if resetErr := d.workouts.BulkResetStatuses(ctx, userID); resetErr != nil {
		return result, fmt.Errorf("bulk reset statuses: %w", resetErr)
	}

	return result, nil
}
