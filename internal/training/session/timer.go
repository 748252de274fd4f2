package session

import (
	"errors"
	"time"
)

var (
	ErrTimerNotRunning     = errors.New("timer is not running")
	ErrTimerAlreadyRunning = errors.New("timer is already running")
)

// Timer tracks the elapsed active seconds of one workout session across
// pause/resume cycles. Its two exported fields are enough to rebuild
// the timer after a process restart: when SegmentStart is nil the timer
// is frozen at AccumulatedSeconds, otherwise the current segment keeps
// counting against the wall clock.
type Timer struct {
	AccumulatedSeconds int        `json:"accumulatedSeconds"`
	SegmentStart       *time.Time `json:"segmentStart,omitempty"`

	// NowFunc can be injected for testing, defaults to time.Now
	NowFunc func() time.Time `json:"-"`
}

func NewTimer() *Timer {
	return &Timer{
		NowFunc: time.Now,
	}
}

func (t *Timer) now() time.Time {
	if t.NowFunc == nil {
		// happens after JSON deserialization of a persisted snapshot
		return time.Now()
	}
	return t.NowFunc()
}

// Start begins a fresh timer. Calling it on a running timer is a no-op,
// callers gate against double starts.
func (t *Timer) Start() {
	if t.SegmentStart != nil {
		return
	}
	now := t.now()
	t.AccumulatedSeconds = 0
	t.SegmentStart = &now
}

// Elapsed returns the total active seconds so far. It is a pure read,
// no store round trip, the UI polls it every second.
func (t *Timer) Elapsed() int {
	if t.SegmentStart == nil {
		return t.AccumulatedSeconds
	}
	return t.AccumulatedSeconds + int(t.now().Sub(*t.SegmentStart).Seconds())
}

func (t *Timer) Pause() error {
	if t.SegmentStart == nil {
		return ErrTimerNotRunning
	}
	t.AccumulatedSeconds += int(t.now().Sub(*t.SegmentStart).Seconds())
	t.SegmentStart = nil
	return nil
}

func (t *Timer) Resume() error {
	if t.SegmentStart != nil {
		return ErrTimerAlreadyRunning
	}
	now := t.now()
	t.SegmentStart = &now
	return nil
}

func (t *Timer) Reset() {
	t.AccumulatedSeconds = 0
	t.SegmentStart = nil
}
