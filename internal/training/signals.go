package training

import "sync"

// UpdateEvent tells subscribers which derived data went stale.
type UpdateEvent string

const (
	// UpdateStats fires after a new workout log entry landed.
	UpdateStats UpdateEvent = "stats-updated"
	// UpdateWorkouts fires after the rotation changed underneath the
	// caller, e.g. a cycle completion reset every status.
	UpdateWorkouts UpdateEvent = "workout-updated"
)

// Notifier is an explicit subscription list replacing the ad-hoc
// global event dispatch of older clients. Callbacks run synchronously
// on the publishing goroutine and must not block.
type Notifier struct {
	mu          sync.Mutex
	subscribers []func(UpdateEvent)
}

func (n *Notifier) Subscribe(fn func(UpdateEvent)) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.subscribers = append(n.subscribers, fn)
}

func (n *Notifier) publish(event UpdateEvent) {
	n.mu.Lock()
	subscribers := make([]func(UpdateEvent), len(n.subscribers))
	copy(subscribers, n.subscribers)
	n.mu.Unlock()

	for _, fn := range subscribers {
		fn(event)
	}
}
