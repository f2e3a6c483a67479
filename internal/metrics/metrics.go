package metrics

import "github.com/prometheus/client_golang/prometheus"

// Collector groups the quiz service counters.
type Collector struct {
	SessionsStarted   *prometheus.CounterVec
	SessionsCompleted *prometheus.CounterVec
	LeaderboardWrites prometheus.Counter
	StoreErrors       *prometheus.CounterVec
}

// New builds the collectors and registers them on reg when reg is non-nil.
func New(reg prometheus.Registerer) *Collector {
	c := &Collector{
		SessionsStarted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "quiz",
			Name:      "sessions_started_total",
			Help:      "Quiz sessions started, by difficulty.",
		}, []string{"difficulty"}),
		SessionsCompleted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "quiz",
			Name:      "sessions_completed_total",
			Help:      "Quiz sessions that reached the completed state, by difficulty.",
		}, []string{"difficulty"}),
		LeaderboardWrites: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "quiz",
			Name:      "leaderboard_writes_total",
			Help:      "Leaderboard entries recorded and persisted.",
		}),
		StoreErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "quiz",
			Name:      "store_errors_total",
			Help:      "Storage failures, by operation.",
		}, []string{"op"}),
	}
	if reg != nil {
		reg.MustRegister(c.SessionsStarted, c.SessionsCompleted, c.LeaderboardWrites, c.StoreErrors)
	}
	return c
}

func (c *Collector) Started(difficulty string) {
	if c == nil {
		return
	}
	c.SessionsStarted.WithLabelValues(difficulty).Inc()
}

func (c *Collector) Completed(difficulty string) {
	if c == nil {
		return
	}
	c.SessionsCompleted.WithLabelValues(difficulty).Inc()
}

func (c *Collector) Recorded() {
	if c == nil {
		return
	}
	c.LeaderboardWrites.Inc()
}

func (c *Collector) StoreError(op string) {
	if c == nil {
		return
	}
	c.StoreErrors.WithLabelValues(op).Inc()
}
