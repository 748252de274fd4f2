package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Manager struct {
	// counters
	CounterSessionsStarted   prometheus.Counter
	CounterSessionsFinished  prometheus.Counter
	CounterSessionsCancelled prometheus.Counter
	CounterNewRecords        prometheus.Counter
	CounterCyclesCompleted   prometheus.Counter

	// gauges
	GaugeActiveSessions prometheus.Gauge
	GaugeLifeSignal     prometheus.Gauge

	// histograms
	HistSessionDurationMinutes prometheus.Histogram
}

func NewTestManagerAndRegistry() (*Manager, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	return NewManager("pulsefit", "test_training", reg), reg
}

func NewManager(namespace, subsystem string, reg prometheus.Registerer) *Manager {
	factory := promauto.With(reg)

	counterSessionsStarted := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "sessions_started",
		Help:      "The total number of started workout sessions",
	})
	counterSessionsFinished := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "sessions_finished",
		Help:      "The total number of finished workout sessions",
	})
	counterSessionsCancelled := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "sessions_cancelled",
		Help:      "The total number of cancelled workout sessions",
	})
	counterNewRecords := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "new_personal_records",
		Help:      "The total number of new personal records",
	})
	counterCyclesCompleted := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "cycles_completed",
		Help:      "The total number of completed workout rotations",
	})

	gaugeActiveSessions := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "active_sessions",
		Help:      "Current number of in-progress workout sessions",
	})
	gaugeLifeSignal := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "life_signal",
		Help:      "Shows whether the service is alive",
	})

	histSessionDurationMinutes := factory.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Buckets: []float64{
				1, 5, 10, 15, 20, 30, 45,
				60, 90, 120, 180, 240,
			},
			Name: "session_duration_minutes",
			Help: "Duration of finished workout sessions in minutes",
		},
	)

	return &Manager{
		CounterSessionsStarted:     counterSessionsStarted,
		CounterSessionsFinished:    counterSessionsFinished,
		CounterSessionsCancelled:   counterSessionsCancelled,
		CounterNewRecords:          counterNewRecords,
		CounterCyclesCompleted:     counterCyclesCompleted,
		GaugeActiveSessions:        gaugeActiveSessions,
		GaugeLifeSignal:            gaugeLifeSignal,
		HistSessionDurationMinutes: histSessionDurationMinutes,
	}
}
