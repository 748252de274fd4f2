package history

import "time"

// SetDetail is one set as it was logged during the session.
type SetDetail struct {
	Weight    float64 `json:"weight"`
	Reps      int     `json:"reps"`
	Completed bool    `json:"completed"`
}

// Entry is one append-only record of how an exercise went in one
// session. Entries are never mutated or deleted by the training core,
// they are the source of truth for last-weights and trend queries.
type Entry struct {
	ID           int         `json:"id"`
	UserID       string      `json:"userId"`
	ExerciseName string      `json:"exerciseName"`
	Weight       float64     `json:"weight"`
	Reps         int         `json:"reps"`
	Sets         int         `json:"sets"`
	SetsData     []SetDetail `json:"setsData"`
	Date         time.Time   `json:"date"`
}

// LastWeight is the most recent logged performance of one exercise,
// used to prefill the next session.
type LastWeight struct {
	Weight float64     `json:"weight"`
	Sets   []SetDetail `json:"sets"`
}
