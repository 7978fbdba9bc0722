package telemetry

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RowsAccepted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rowsift_rows_accepted_total",
		Help: "Rows coerced successfully and handed to the sinks.",
	})
	RowsRejected = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rowsift_rows_rejected_total",
		Help: "Rows skipped because a field coercion failed.",
	})
	Runs = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rowsift_runs_total",
		Help: "Completed runs by outcome.",
	}, []string{"outcome"})
)

func Expose(port int) {
	go func() {
		http.Handle("/metrics", promhttp.Handler())
		_ = http.ListenAndServe(fmt.Sprintf(":%d", port), nil)
	}()
}
