package records

import "time"

// Record is the heaviest weight ever logged by a user for one exercise
// name, unique per (user, exercise name).
type Record struct {
	UserID       string    `json:"userId"`
	ExerciseName string    `json:"exerciseName"`
	Weight       float64   `json:"weight"`
	Reps         int       `json:"reps"`
	Date         time.Time `json:"date"`
}

// Performed is the per-exercise outcome of one finished session that
// the tracker evaluates against the stored records.
type Performed struct {
	Name   string  `json:"name"`
	Weight float64 `json:"weight"`
	Reps   int     `json:"reps"`
}

// NewRecord is emitted when a session beats a stored record.
type NewRecord struct {
	Name      string  `json:"name"`
	OldWeight float64 `json:"oldWeight"`
	NewWeight float64 `json:"newWeight"`
}
