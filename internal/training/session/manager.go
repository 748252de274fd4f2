package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/RanieeelB/PulseFit/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
)

type State string

const (
	StateIdle   State = "idle"
	StateActive State = "active"
	StatePaused State = "paused"
)

var (
	ErrNoActiveSession      = errors.New("no active session")
	ErrSessionInProgress    = errors.New("a session is already in progress")
	ErrSessionNotPaused     = errors.New("session is not paused")
	ErrInvalidExerciseIndex = errors.New("invalid exercise index")
	ErrInvalidSetIndex      = errors.New("invalid set index")
)

// Manager is the state machine of a single workout attempt:
// idle -> active -> paused -> active -> idle (finished or cancelled).
// All in-progress state is mirrored to the SnapshotStore on every
// mutation so the session survives an application restart.
type Manager struct {
	store SnapshotStore

	mu   sync.Mutex
	snap *Snapshot

	// NowFunc can be injected for testing, defaults to time.Now
	NowFunc func() time.Time
}

func NewManager(store SnapshotStore) *Manager {
	return &Manager{
		store:   store,
		NowFunc: time.Now,
	}
}

// FinishResult is everything the summary pipeline needs from a
// just-finished session.
type FinishResult struct {
	UserID         string
	WorkoutID      int
	ElapsedSeconds int
	Exercises      []WorkingExercise
}

func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stateLocked()
}

func (m *Manager) stateLocked() State {
	switch {
	case m.snap == nil:
		return StateIdle
	case m.snap.Paused:
		return StatePaused
	default:
		return StateActive
	}
}

// Start begins a new session over the given working set copy of a
// workout plan and persists the initial snapshot.
func (m *Manager) Start(ctx context.Context, userID string, workoutID int, exercises []WorkingExercise) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "session.manager.start")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.snap != nil {
		return ErrSessionInProgress
	}

	now := m.NowFunc()
	timer := Timer{NowFunc: m.NowFunc}
	timer.Start()

	m.snap = &Snapshot{
		UserID:    userID,
		WorkoutID: workoutID,
		Active:    true,
		Paused:    false,
		Timer:     timer,
		Exercises: exercises,
		StartedAt: now,
	}

	return m.persistLocked(ctx)
}

// Restore loads a persisted snapshot for the given (user, workout) and
// makes it the current session. Returns false when there is nothing to
// recover. A snapshot saved mid-segment keeps counting against the
// wall clock, so the recovered elapsed time stays correct even if the
// process was gone for a while.
func (m *Manager) Restore(ctx context.Context, userID string, workoutID int) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "session.manager.restore")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.snap != nil {
		return false, ErrSessionInProgress
	}

	snap, err := m.store.Get(ctx, userID, workoutID)
	if err != nil {
		if errors.Is(err, ErrSnapshotNotFound) {
			return false, nil
		}
		return false, err
	}

	snap.Timer.NowFunc = m.NowFunc
	m.snap = snap
	return true, nil
}

func (m *Manager) Pause(ctx context.Context) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "session.manager.pause")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.snap == nil {
		return ErrNoActiveSession
	}
	if err := m.snap.Timer.Pause(); err != nil {
		return err
	}
	m.snap.Paused = true

	return m.persistLocked(ctx)
}

func (m *Manager) Resume(ctx context.Context) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "session.manager.resume")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.snap == nil {
		return ErrNoActiveSession
	}
	if !m.snap.Paused {
		return ErrSessionNotPaused
	}
	if err := m.snap.Timer.Resume(); err != nil {
		return err
	}
	m.snap.Paused = false

	return m.persistLocked(ctx)
}

// ElapsedSeconds is a pure local read, safe to poll every second.
func (m *Manager) ElapsedSeconds() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.snap == nil {
		return 0
	}
	return m.snap.Timer.Elapsed()
}

func (m *Manager) SetWeight(ctx context.Context, exerciseIndex, setIndex int, weight float64) error {
	return m.editSet(ctx, exerciseIndex, setIndex, func(set *SetLog) {
		set.Weight = weight
	})
}

func (m *Manager) SetReps(ctx context.Context, exerciseIndex, setIndex, reps int) error {
	return m.editSet(ctx, exerciseIndex, setIndex, func(set *SetLog) {
		set.Reps = reps
	})
}

func (m *Manager) ToggleCompleted(ctx context.Context, exerciseIndex, setIndex int) error {
	return m.editSet(ctx, exerciseIndex, setIndex, func(set *SetLog) {
		set.Completed = !set.Completed
	})
}

// editSet mutates one set of the working copy. Edits are only allowed
// while a session is running (active or paused), never while idle.
func (m *Manager) editSet(ctx context.Context, exerciseIndex, setIndex int, mutate func(*SetLog)) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "session.manager.editSet")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.snap == nil {
		return ErrNoActiveSession
	}
	if exerciseIndex < 0 || exerciseIndex >= len(m.snap.Exercises) {
		return ErrInvalidExerciseIndex
	}
	sets := m.snap.Exercises[exerciseIndex].Sets
	if setIndex < 0 || setIndex >= len(sets) {
		return ErrInvalidSetIndex
	}

	mutate(&sets[setIndex])

	return m.persistLocked(ctx)
}

// Finish ends the session and returns its raw performance data. The
// persisted snapshot and the local state are cleared unconditionally
// before any of the fallible post-processing starts, the user must
// never end up stuck in an active session.
func (m *Manager) Finish(ctx context.Context) (_ *FinishResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "session.manager.finish")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.snap == nil {
		return nil, ErrNoActiveSession
	}

	res := &FinishResult{
		UserID:         m.snap.UserID,
		WorkoutID:      m.snap.WorkoutID,
		ElapsedSeconds: m.snap.Timer.Elapsed(),
		Exercises:      m.snap.Exercises,
	}

	m.clearLocked(ctx)
	return res, nil
}

// Cancel discards all working set edits, the workout plan itself is
// unaffected.
func (m *Manager) Cancel(ctx context.Context) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "session.manager.cancel")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.snap == nil {
		return ErrNoActiveSession
	}

	m.clearLocked(ctx)
	return nil
}

func (m *Manager) persistLocked(ctx context.Context) error {
	if err := m.store.Save(ctx, m.snap); err != nil {
		return err
	}
	return nil
}

func (m *Manager) clearLocked(ctx context.Context) {
	userID, workoutID := m.snap.UserID, m.snap.WorkoutID
	m.snap = nil
	if err := m.store.Delete(ctx, userID, workoutID); err != nil {
		// local state is already gone, which is what matters for the
		// caller; a stale snapshot only means a bogus recovery offer
		log.Errorf("session manager: delete snapshot [user %s, workout %d]: %s", userID, workoutID, err)
	}
}
