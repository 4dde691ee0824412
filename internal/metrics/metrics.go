package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder counts game events. A nil *Recorder is valid and records nothing.
type Recorder struct {
	registry     *prometheus.Registry
	questions    *prometheus.CounterVec
	answers      *prometheus.CounterVec
	celebrations *prometheus.CounterVec
	sessions     prometheus.Gauge
}

func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	r := &Recorder{
		registry: reg,
		questions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "trivia_questions_generated_total",
			Help: "Questions generated, by game.",
		}, []string{"game"}),
		answers: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "trivia_answers_total",
			Help: "Answers submitted, by game and verdict.",
		}, []string{"game", "verdict"}),
		celebrations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "trivia_celebrations_total",
			Help: "Streak celebrations, by game.",
		}, []string{"game"}),
		sessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "trivia_active_sessions",
			Help: "Game sessions currently open.",
		}),
	}
	reg.MustRegister(r.questions, r.answers, r.celebrations, r.sessions)
	return r
}

func (r *Recorder) RecordQuestion(game string) {
	if r == nil {
		return
	}
	r.questions.WithLabelValues(game).Inc()
}

func (r *Recorder) RecordAnswer(game, verdict string) {
	if r == nil {
		return
	}
	r.answers.WithLabelValues(game, verdict).Inc()
}

func (r *Recorder) RecordCelebration(game string) {
	if r == nil {
		return
	}
	r.celebrations.WithLabelValues(game).Inc()
}

func (r *Recorder) SessionOpened() {
	if r == nil {
		return
	}
	r.sessions.Inc()
}

func (r *Recorder) SessionClosed() {
	if r == nil {
		return
	}
	r.sessions.Dec()
}

// Handler exposes the registry in Prometheus text format.
func (r *Recorder) Handler() http.Handler {
	if r == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
