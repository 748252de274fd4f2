package session

import (
	"context"
	"errors"
	"time"
)

var ErrSnapshotNotFound = errors.New("session snapshot not found")

// SetLog is one set of the working copy of an exercise plan, holding
// the values the user entered during the session.
type SetLog struct {
	TargetReps int     `json:"targetReps"`
	Weight     float64 `json:"weight"`
	Reps       int     `json:"reps"`
	Completed  bool    `json:"completed"`
}

type WorkingExercise struct {
	Name        string   `json:"name"`
	MuscleGroup string   `json:"muscleGroup"`
	Sets        []SetLog `json:"sets"`
}

// MaxWeight returns the heaviest weight logged across all sets.
// Sets without a weight entered contribute 0.
func (we WorkingExercise) MaxWeight() float64 {
	var maxWeight float64
	for _, set := range we.Sets {
		if set.Weight > maxWeight {
			maxWeight = set.Weight
		}
	}
	return maxWeight
}

// RepsAtMaxWeight returns the logged reps of the first set that hit the
// max weight of the exercise.
func (we WorkingExercise) RepsAtMaxWeight() int {
	maxWeight := we.MaxWeight()
	for _, set := range we.Sets {
		if set.Weight == maxWeight {
			if set.Reps > 0 {
				return set.Reps
			}
			return set.TargetReps
		}
	}
	return 0
}

// Snapshot is the full recoverable state of one in-progress session.
// Every mutation of the working set or of the pause state writes the
// whole snapshot to the store, so that re-opening the same workout
// reconstructs the exact in-progress state.
type Snapshot struct {
	UserID    string            `json:"userId"`
	WorkoutID int               `json:"workoutId"`
	Active    bool              `json:"active"`
	Paused    bool              `json:"paused"`
	Timer     Timer             `json:"timer"`
	Exercises []WorkingExercise `json:"exercises"`
	StartedAt time.Time         `json:"startedAt"`
}

// SnapshotStore persists session snapshots keyed per (user, workout).
// Snapshots survive an application restart but are not expected to
// survive device loss.
type SnapshotStore interface {
	Get(ctx context.Context, userID string, workoutID int) (*Snapshot, error)
	Save(ctx context.Context, snapshot *Snapshot) error
	Delete(ctx context.Context, userID string, workoutID int) error
}
