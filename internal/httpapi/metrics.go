package httpapi

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the intake API.
type Metrics struct {
	AnswerChanges   *prometheus.CounterVec
	Submissions     *prometheus.CounterVec
	ProgressQueries *prometheus.CounterVec
	RequestLatency  *prometheus.HistogramVec
}

// NewMetrics registers the intake metrics on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		AnswerChanges: f.NewCounterVec(prometheus.CounterOpts{
			Name: "caseflow_answer_changes_total",
			Help: "Answers recorded by questionnaire domain",
		}, []string{"domain"}),

		Submissions: f.NewCounterVec(prometheus.CounterOpts{
			Name: "caseflow_form_submissions_total",
			Help: "Questionnaire submissions by domain",
		}, []string{"domain"}),

		ProgressQueries: f.NewCounterVec(prometheus.CounterOpts{
			Name: "caseflow_progress_computations_total",
			Help: "Completion calculations by viewpoint",
		}, []string{"viewpoint"}),

		RequestLatency: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "caseflow_http_request_duration_seconds",
			Help:    "HTTP request latency by route pattern and status",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"route", "method", "status"}),
	}
}

func (m *Metrics) IncrementAnswer(domain string) {
	if m != nil {
		m.AnswerChanges.WithLabelValues(domain).Inc()
	}
}

func (m *Metrics) IncrementSubmission(domain string) {
	if m != nil {
		m.Submissions.WithLabelValues(domain).Inc()
	}
}

func (m *Metrics) IncrementProgress(viewpoint string) {
	if m != nil {
		m.ProgressQueries.WithLabelValues(viewpoint).Inc()
	}
}

func (m *Metrics) ObserveRequest(route, method, status string, d time.Duration) {
	if m != nil {
		m.RequestLatency.WithLabelValues(route, method, status).Observe(d.Seconds())
	}
}
