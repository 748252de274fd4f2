package training

import (
	"context"
	"fmt"
	"time"

	"github.com/RanieeelB/PulseFit/internal/config"
	"github.com/RanieeelB/PulseFit/internal/metrics"
	"github.com/RanieeelB/PulseFit/internal/telemetry/tracing"
	"github.com/RanieeelB/PulseFit/internal/training/history"
	"github.com/RanieeelB/PulseFit/internal/training/records"
	"github.com/RanieeelB/PulseFit/internal/training/session"
	"github.com/RanieeelB/PulseFit/internal/training/stats"
	"github.com/RanieeelB/PulseFit/internal/training/workouts"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/multierr"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=training_test

type workoutsRepo interface {
	Get(ctx context.Context, id int) (*workouts.Workout, error)
	ListAll(ctx context.Context, userID string) ([]workouts.Workout, error)
	UpdateStatus(ctx context.Context, id int, status workouts.Status) error
	BulkResetStatuses(ctx context.Context, userID string) error
	Delete(ctx context.Context, id int) error
}

type logsRepo interface {
	Insert(ctx context.Context, entry workouts.LogEntry) error
	DeleteForWorkout(ctx context.Context, workoutID int) error
}

type profilesRepo interface {
	Get(ctx context.Context, userID string) (*workouts.Profile, error)
}

type recordsTracker interface {
	Process(ctx context.Context, userID string, performed []records.Performed) ([]records.NewRecord, error)
	List(ctx context.Context, userID string) ([]records.Record, error)
}

type historyRepo interface {
	Insert(ctx context.Context, entries []history.Entry) error
	List(ctx context.Context, userID, exerciseName string, limit int) ([]history.Entry, error)
	LatestPerExercise(ctx context.Context, userID string, exerciseNames []string) (map[string]history.Entry, error)
}

type statsEngine interface {
	Streak(ctx context.Context, userID string) (int, error)
	MonthlyPerformance(ctx context.Context, userID string) (int, error)
	Frequency(ctx context.Context, userID string, period stats.Period) ([]stats.Bucket, error)
	WeeklyStats(ctx context.Context, userID string) (*stats.WeeklyStats, error)
	Leaderboard(ctx context.Context) ([]stats.LeaderboardEntry, error)
}

// Improvement is the non-record progress signal: the latest session
// beat the previous one for an exercise (strictly, ties do not count).
type Improvement struct {
	Name      string  `json:"name"`
	OldWeight float64 `json:"oldWeight"`
	NewWeight float64 `json:"newWeight"`
	Diff      float64 `json:"diff"`
}

// SessionSummary is what the caller gets back from a finished session.
// Duration and calories are always filled in; the derived lists
// degrade to empty when their store calls fail.
type SessionSummary struct {
	DurationMinutes int                 `json:"durationMinutes"`
	Calories        int                 `json:"calories"`
	PRs             []records.NewRecord `json:"prs"`
	Improvements    []Improvement       `json:"improvements"`
	CycleCompleted  bool                `json:"cycleCompleted"`
	WeeklyStats     *stats.WeeklyStats  `json:"weeklyStats,omitempty"`
}

type NewServiceParams struct {
	Session           *session.Manager
	Workouts          workoutsRepo
	Logs              logsRepo
	Profiles          profilesRepo
	Records           recordsTracker
	History           historyRepo
	Stats             statsEngine
	Metrics           *metrics.Manager
	CaloriesPerMinute int
}

// Service is the façade over the whole session lifecycle: it drives
// the state machine and, on finish, runs the summary pipeline.
type Service struct {
	session  *session.Manager
	workouts workoutsRepo
	logs     logsRepo
	profiles profilesRepo
	records  recordsTracker
	history  historyRepo
	stats    statsEngine
	cycle    *CycleDetector
	metrics  *metrics.Manager
	notifier Notifier

	caloriesPerMinute int

	// NowFunc can be injected for testing, defaults to time.Now
	NowFunc func() time.Time
}

func NewService(params NewServiceParams) *Service {
	caloriesPerMinute := params.CaloriesPerMinute
	if caloriesPerMinute <= 0 {
		caloriesPerMinute = config.DefaultCaloriesPerMinute
	}
	return &Service{
		session:           params.Session,
		workouts:          params.Workouts,
		logs:              params.Logs,
		profiles:          params.Profiles,
		records:           params.Records,
		history:           params.History,
		stats:             params.Stats,
		cycle:             NewCycleDetector(params.Workouts, params.Stats),
		metrics:           params.Metrics,
		caloriesPerMinute: caloriesPerMinute,
		NowFunc:           time.Now,
	}
}

// Subscribe registers a callback for update events (stats or rotation
// went stale).
func (s *Service) Subscribe(fn func(UpdateEvent)) {
	s.notifier.Subscribe(fn)
}

// StartSession begins a session over the given workout, copying its
// exercise plan into a fresh working set.
func (s *Service) StartSession(ctx context.Context, workout *workouts.Workout) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "training.service.startSession")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("workout_id", workout.ID))

	workingSet := make([]session.WorkingExercise, 0, len(workout.Exercises))
	for _, plan := range workout.Exercises {
		sets := make([]session.SetLog, 0, len(plan.Sets))
		for _, target := range plan.Sets {
			sets = append(sets, session.SetLog{TargetReps: target.Reps})
		}
		workingSet = append(workingSet, session.WorkingExercise{
			Name:        plan.Name,
			MuscleGroup: plan.MuscleGroup,
			Sets:        sets,
		})
	}

	if err := s.session.Start(ctx, workout.UserID, workout.ID, workingSet); err != nil {
		return err
	}

	s.metrics.CounterSessionsStarted.Inc()
	s.metrics.GaugeActiveSessions.Inc()
	return nil
}

// RecoverSession restores a persisted in-progress session for the
// given workout, if any. Returns whether one was recovered.
func (s *Service) RecoverSession(ctx context.Context, userID string, workoutID int) (bool, error) {
	recovered, err := s.session.Restore(ctx, userID, workoutID)
	if err != nil {
		return false, err
	}
	if recovered {
		s.metrics.GaugeActiveSessions.Inc()
	}
	return recovered, nil
}

// PauseSession freezes the session timer. Pausing a session that is
// not running is ignored, the UI gates these affordances.
func (s *Service) PauseSession(ctx context.Context) {
	if err := s.session.Pause(ctx); err != nil {
		log.Debugf("pause session: %s", err)
	}
}

func (s *Service) ResumeSession(ctx context.Context) {
	if err := s.session.Resume(ctx); err != nil {
		log.Debugf("resume session: %s", err)
	}
}

// CancelSession discards the working set; the workout plan and all
// stored data are unaffected. No store writes are in flight before
// finish, so there is nothing to abort.
func (s *Service) CancelSession(ctx context.Context) {
	if err := s.session.Cancel(ctx); err != nil {
		log.Debugf("cancel session: %s", err)
		return
	}
	s.metrics.CounterSessionsCancelled.Inc()
	s.metrics.GaugeActiveSessions.Dec()
}

func (s *Service) SetWeight(ctx context.Context, exerciseIndex, setIndex int, weight float64) error {
	return s.session.SetWeight(ctx, exerciseIndex, setIndex, weight)
}

func (s *Service) SetReps(ctx context.Context, exerciseIndex, setIndex, reps int) error {
	return s.session.SetReps(ctx, exerciseIndex, setIndex, reps)
}

func (s *Service) ToggleCompleted(ctx context.Context, exerciseIndex, setIndex int) error {
	return s.session.ToggleCompleted(ctx, exerciseIndex, setIndex)
}

// ElapsedSeconds is safe to poll every second, it never touches the
// store.
func (s *Service) ElapsedSeconds() int {
	return s.session.ElapsedSeconds()
}

func (s *Service) SessionState() session.State {
	return s.session.State()
}

// FinishSession ends the in-progress session and builds its summary.
// The summary is always returned, even when parts of the pipeline
// fail: duration and calories survive everything, the derived lists
// degrade to empty. The returned error aggregates whatever went wrong
// along the way, for logging, not for withholding the summary.
func (s *Service) FinishSession(ctx context.Context) (_ *SessionSummary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "training.service.finishSession")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	res, err := s.session.Finish(ctx)
	if err != nil {
		return nil, err
	}

	s.metrics.CounterSessionsFinished.Inc()
	s.metrics.GaugeActiveSessions.Dec()

	// a 1 second session still counts as a 1 minute workout
	durationMinutes := (res.ElapsedSeconds + 59) / 60
	calories := durationMinutes * s.caloriesPerMinute
	s.metrics.HistSessionDurationMinutes.Observe(float64(durationMinutes))

	span.SetAttributes(attribute.Int("workout_id", res.WorkoutID))
	span.SetAttributes(attribute.Int("duration_minutes", durationMinutes))

	summary := &SessionSummary{
		DurationMinutes: durationMinutes,
		Calories:        calories,
		PRs:             make([]records.NewRecord, 0),
		Improvements:    make([]Improvement, 0),
	}

	var errs error

	if logErr := s.insertLog(ctx, res.UserID, res.WorkoutID, durationMinutes, calories); logErr != nil {
		errs = multierr.Append(errs, fmt.Errorf("insert workout log: %w", logErr))
	}
	// listeners get the nudge even when the insert failed, a stale
	// stats view is worse than a redundant refresh
	s.notifier.publish(UpdateStats)

	if statusErr := s.workouts.UpdateStatus(ctx, res.WorkoutID, workouts.StatusCompleted); statusErr != nil {
		errs = multierr.Append(errs, fmt.Errorf("update workout status: %w", statusErr))
	}

	// the detector patches the finished workout locally, so it works
	// even if the status update above has not landed (or failed)
	cycleResult, cycleErr := s.cycle.CheckAndReset(ctx, res.UserID, res.WorkoutID)
	if cycleErr != nil {
		errs = multierr.Append(errs, fmt.Errorf("cycle check: %w", cycleErr))
	}
	if cycleResult != nil && cycleResult.Completed {
		summary.CycleCompleted = true
		summary.WeeklyStats = cycleResult.WeeklyStats
		if summary.WeeklyStats != nil {
			summary.WeeklyStats.Streak = cycleResult.Streak
		}
		s.metrics.CounterCyclesCompleted.Inc()
		s.notifier.publish(UpdateWorkouts)
	}

	performed := performedExercises(res.Exercises)
	if len(performed) == 0 {
		return summary, errs
	}

	newRecords, recordsErr := s.records.Process(ctx, res.UserID, performed)
	if recordsErr != nil {
		errs = multierr.Append(errs, fmt.Errorf("process records: %w", recordsErr))
	}
	if len(newRecords) > 0 {
		summary.PRs = newRecords
		s.metrics.CounterNewRecords.Add(float64(len(newRecords)))
	}

	if historyErr := s.insertHistory(ctx, res, performed); historyErr != nil {
		errs = multierr.Append(errs, fmt.Errorf("insert history: %w", historyErr))
	}

	improvements, improvementsErr := s.findImprovements(ctx, res.UserID, performed, newRecords)
	if improvementsErr != nil {
		errs = multierr.Append(errs, fmt.Errorf("find improvements: %w", improvementsErr))
	}
	summary.Improvements = improvements

	return summary, errs
}

func (s *Service) insertLog(ctx context.Context, userID string, workoutID, durationMinutes, calories int) error {
	userName := stats.FallbackUserName
	if profile, err := s.profiles.Get(ctx, userID); err != nil {
		log.Errorf("finish session: fetch profile for %s: %s", userID, err)
	} else if profile.Name != "" {
		userName = profile.Name
	}

	return s.logs.Insert(ctx, workouts.LogEntry{
		UserID:          userID,
		WorkoutID:       workoutID,
		DurationMinutes: durationMinutes,
		Calories:        calories,
		UserName:        userName,
		CompletedAt:     s.NowFunc(),
	})
}

// performedExercises reduces the working set to per-exercise maxima.
// Nameless entries are dropped here; zero-weight ones are kept for the
// tracker (which skips them) so the skip rules live in one place each.
func performedExercises(exercises []session.WorkingExercise) []records.Performed {
	performed := make([]records.Performed, 0, len(exercises))
	for _, exercise := range exercises {
		if exercise.Name == "" {
			continue
		}
		performed = append(performed, records.Performed{
			Name:   exercise.Name,
			Weight: exercise.MaxWeight(),
			Reps:   exercise.RepsAtMaxWeight(),
		})
	}
	return performed
}

// insertHistory appends one history entry per exercise with weight
// above zero; bodyweight work without weights entered stays out of the
// trend data.
func (s *Service) insertHistory(ctx context.Context, res *session.FinishResult, performed []records.Performed) error {
	now := s.NowFunc()

	setsByName := make(map[string][]history.SetDetail, len(res.Exercises))
	for _, exercise := range res.Exercises {
		details := make([]history.SetDetail, 0, len(exercise.Sets))
		for _, set := range exercise.Sets {
			details = append(details, history.SetDetail{
				Weight:    set.Weight,
				Reps:      set.Reps,
				Completed: set.Completed,
			})
		}
		setsByName[exercise.Name] = details
	}

	entries := make([]history.Entry, 0, len(performed))
	for _, p := range performed {
		if p.Weight <= 0 {
			continue
		}
		entries = append(entries, history.Entry{
			UserID:       res.UserID,
			ExerciseName: p.Name,
			Weight:       p.Weight,
			Reps:         p.Reps,
			Sets:         len(setsByName[p.Name]),
			SetsData:     setsByName[p.Name],
			Date:         now,
		})
	}

	return s.history.Insert(ctx, entries)
}

// findImprovements compares, per exercise, the two newest history
// entries (the one just written included). Exercises that already made
// the PR list are skipped so they are not reported twice.
func (s *Service) findImprovements(
	ctx context.Context,
	userID string,
	performed []records.Performed,
	newRecords []records.NewRecord,
) ([]Improvement, error) {
	recordNames := make(map[string]struct{}, len(newRecords))
	for _, record := range newRecords {
		recordNames[record.Name] = struct{}{}
	}

	improvements := make([]Improvement, 0)
	var errs error
	for _, p := range performed {
		if _, isRecord := recordNames[p.Name]; isRecord {
			continue
		}

		entries, err := s.history.List(ctx, userID, p.Name, 2)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("history for %q: %w", p.Name, err))
			continue
		}
		if len(entries) < 2 {
			continue
		}

		current, previous := entries[0], entries[1]
		if current.Weight > previous.Weight {
			improvements = append(improvements, Improvement{
				Name:      p.Name,
				OldWeight: previous.Weight,
				NewWeight: current.Weight,
				Diff:      current.Weight - previous.Weight,
			})
		}
	}

	return improvements, errs
}

// GetStreak degrades to zero when the store is unreachable.
func (s *Service) GetStreak(ctx context.Context, userID string) int {
	streak, err := s.stats.Streak(ctx, userID)
	if err != nil {
		log.Errorf("get streak for %s: %s", userID, err)
		return 0
	}
	return streak
}

// GetMonthlyPerformance degrades to zero when the store is
// unreachable.
func (s *Service) GetMonthlyPerformance(ctx context.Context, userID string) int {
	percentage, err := s.stats.MonthlyPerformance(ctx, userID)
	if err != nil {
		log.Errorf("get monthly performance for %s: %s", userID, err)
		return 0
	}
	return percentage
}

// GetFrequency degrades to an empty histogram when the store is
// unreachable.
func (s *Service) GetFrequency(ctx context.Context, userID string, period stats.Period) []stats.Bucket {
	buckets, err := s.stats.Frequency(ctx, userID, period)
	if err != nil {
		log.Errorf("get frequency for %s: %s", userID, err)
		return []stats.Bucket{}
	}
	return buckets
}

// GetPersonalRecords degrades to an empty list when the store is
// unreachable.
func (s *Service) GetPersonalRecords(ctx context.Context, userID string) []records.Record {
	personalRecords, err := s.records.List(ctx, userID)
	if err != nil {
		log.Errorf("get personal records for %s: %s", userID, err)
		return []records.Record{}
	}
	return personalRecords
}

// GetLeaderboard degrades to an empty list when the store is
// unreachable.
func (s *Service) GetLeaderboard(ctx context.Context) []stats.LeaderboardEntry {
	leaderboard, err := s.stats.Leaderboard(ctx)
	if err != nil {
		log.Errorf("get leaderboard: %s", err)
		return []stats.LeaderboardEntry{}
	}
	return leaderboard
}

// GetLastWeights returns, per exercise name, the last session's weight
// and set data, for prefilling a new session. Degrades to an empty
// map when the store is unreachable.
func (s *Service) GetLastWeights(ctx context.Context, userID string, exerciseNames []string) map[string]history.LastWeight {
	latest, err := s.history.LatestPerExercise(ctx, userID, exerciseNames)
	if err != nil {
		log.Errorf("get last weights for %s: %s", userID, err)
		return map[string]history.LastWeight{}
	}

	lastWeights := make(map[string]history.LastWeight, len(latest))
	for name, entry := range latest {
		lastWeights[name] = history.LastWeight{
			Weight: entry.Weight,
			Sets:   entry.SetsData,
		}
	}
	return lastWeights
}

// ToggleWorkoutStatus flips a single workout between pending and
// completed without any of the finish side effects. Legacy affordance
// for fixing up the rotation by hand.
func (s *Service) ToggleWorkoutStatus(ctx context.Context, workoutID int) error {
	workout, err := s.workouts.Get(ctx, workoutID)
	if err != nil {
		return fmt.Errorf("get workout: %w", err)
	}

	newStatus := workouts.StatusCompleted
	if workout.Status == workouts.StatusCompleted {
		newStatus = workouts.StatusPending
	}
	if err := s.workouts.UpdateStatus(ctx, workoutID, newStatus); err != nil {
		return fmt.Errorf("update workout status: %w", err)
	}

	s.notifier.publish(UpdateWorkouts)
	return nil
}

// DeleteWorkout removes a workout and its log entries, logs first so a
// failure cannot orphan them.
func (s *Service) DeleteWorkout(ctx context.Context, workoutID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "training.service.deleteWorkout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("workout_id", workoutID))

	if err := s.logs.DeleteForWorkout(ctx, workoutID); err != nil {
		return fmt.Errorf("delete workout logs: %w", err)
	}
	if err := s.workouts.Delete(ctx, workoutID); err != nil {
		return fmt.Errorf("delete workout: %w", err)
	}

	s.notifier.publish(UpdateWorkouts)
	return nil
}
