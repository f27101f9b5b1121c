package submitter

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type Metrics struct {
	submissions *prometheus.CounterVec
	duration    prometheus.Histogram
}

// NewMetrics registers the submission collectors on reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "txsubmit",
			Name:      "submissions_total",
			Help:      "Number of tx submissions by result status and code.",
		}, []string{"status", "code"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "txsubmit",
			Name:      "submission_duration_seconds",
			Help:      "Time spent signing and sending a tx.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	for _, c := range []prometheus.Collector{m.submissions, m.duration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) observe(r Result, took time.Duration) {
	if m == nil {
		return
	}
	code := "0"
	if !r.IsOK() {
		code = strconv.Itoa(r.Code)
	}
	m.submissions.WithLabelValues(string(r.Status), code).Inc()
	m.duration.Observe(took.Seconds())
}
