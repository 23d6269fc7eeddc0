package calc

import "github.com/prometheus/client_golang/prometheus"

const (
	outcomeOK      = "ok"
	outcomeSkipped = "skipped"
	outcomeFailed  = "failed"
)

var results = prometheus.NewCounterVec(
	prometheus.CounterOpts{Name: "calc_results_total", Help: "calculated inputs by expression and outcome"},
	[]string{"expr", "outcome"},
)

func init() {
	prometheus.MustRegister(results)
}
