package metrics

import (
	"net/http"
	"strconv"
	"time"

	chimd "github.com/go-chi/chi/v5/middleware"
)

// Collect produces the HTTP middleware that records the counters/histogram.
func Collect() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimd.NewWrapResponseWriter(w, r.ProtoMajor)
			startTime := time.Now()

			defer func() {
				// Skip self-scrape and any additional caller-configured paths
				if isSkipPath(r) {
					return
				}

				code := strconv.Itoa(ww.Status())
				uri := routePattern(r) // path only; avoid cardinality explosion

				totalHttpRequestsToUri.WithLabelValues(code, uri, r.Method).Inc()
				totalHttpRequests.WithLabelValues(code, r.Method).Inc()
				responseBytes.WithLabelValues(uri).Add(float64(ww.BytesWritten()))
				responseTime.WithLabelValues(uri).Observe(time.Since(startTime).Seconds())
			}()

			next.ServeHTTP(ww, r)
		})
	}
}
