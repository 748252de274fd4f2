package workouts

import "time"

type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

// SetTarget is one planned set of an exercise, a target rep count.
type SetTarget struct {
	Reps int `json:"reps"`
}

// ExercisePlan is one exercise inside a workout's rotation entry.
type ExercisePlan struct {
	Name        string      `json:"name"`
	MuscleGroup string      `json:"muscleGroup"`
	Sets        []SetTarget `json:"sets"`
}

// Workout is one entry of a user's rotation.
type Workout struct {
	ID          int            `json:"id"`
	UserID      string         `json:"userId"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Icon        string         `json:"icon"`
	Exercises   []ExercisePlan `json:"exercises"`
	Status      Status         `json:"status"`
	// DurationEstimateMinutes is a rough estimate derived from the
	// exercise count, not from actual session times.
	DurationEstimateMinutes int       `json:"durationEstimateMinutes"`
	CreatedAt               time.Time `json:"createdAt"`
}

// LogEntry is the append-only record of one finished session. The user
// display name is denormalized into it for leaderboard purposes.
type LogEntry struct {
	ID              int       `json:"id"`
	UserID          string    `json:"userId"`
	WorkoutID       int       `json:"workoutId"`
	DurationMinutes int       `json:"durationMinutes"`
	Calories        int       `json:"calories"`
	UserName        string    `json:"userName"`
	CompletedAt     time.Time `json:"completedAt"`
}

type Profile struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}
