package core

import (
	"net/http"

	chimd "github.com/go-chi/chi/v5/middleware"
	"github.com/joeydtaylor/steeze-calc/pkg/config"
	hmetrics "github.com/joeydtaylor/steeze-calc/pkg/middleware/metrics"
)

// CalculatePath is the single calculation route.
const CalculatePath = "/calculate"

func BuildRouter(cfg config.Config, d BuildDeps) http.Handler {
	r := d.Router
	r.Use(chimd.RequestID, chimd.Recoverer, chimd.Heartbeat("/ping"))
	if d.LogMW != nil {
		r.Use(d.LogMW.Middleware())
	}
	if d.Metrics != nil && cfg.Metrics.Enabled {
		r.Use(hmetrics.Collect())
		if cfg.Metrics.Path != "/metrics" {
			hmetrics.AddMetricsSkipPaths(cfg.Metrics.Path)
		}
		r.Get(cfg.Metrics.Path, d.Metrics)
	}

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, "Not Found", http.StatusNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, "Method Not Allowed", http.StatusMethodNotAllowed)
	})

	r.Post(CalculatePath, calculateHandler(d.Calc, d.Log))
	return r.Mux()
}
