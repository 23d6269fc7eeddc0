// core/handlers.go
package core

import (
	"encoding/json"
	"io"
	"net/http"
	"slices"

	chimd "github.com/go-chi/chi/v5/middleware"
	"github.com/joeydtaylor/steeze-calc/pkg/calc"
	"github.com/joeydtaylor/steeze-calc/pkg/codec"
	"go.uber.org/zap"
)

// calculateHandler streams one NDJSON line per computed input, flushing after
// each line. A failure after the first line aborts the connection, so clients
// see a truncated stream rather than a well-formed short one.
func calculateHandler(c *calc.Calculator, log *zap.Logger) http.HandlerFunc {
	if log == nil {
		log = zap.NewNop()
	}
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			writeError(w, "could not read body", http.StatusBadRequest)
			return
		}
		values, err := calc.ParseValues(body)
		if err != nil {
			// *calc.ValidationError marshals to the {"detail":[...]} body
			b, _ := json.Marshal(err)
			writeJSON(w, b, http.StatusUnprocessableEntity)
			return
		}

		enc := codec.NewRecordEncoder(
			codec.Field{Key: "x"},
			codec.Field{Key: c.Name(), Integral: c.Integral()},
		)
		rc := http.NewResponseController(w)
		started := false
		begin := func() {
			w.Header().Set("Content-Type", codec.ContentTypeNDJSON)
			w.Header().Set("X-Content-Type-Options", "nosniff")
			w.WriteHeader(http.StatusOK)
			started = true
		}

		for res, err := range c.Stream(slices.Values(values)) {
			if err != nil {
				log.Error("calculation failed",
					zap.String("requestId", chimd.GetReqID(r.Context())),
					zap.Bool("streaming", started),
					zap.Error(err),
				)
				if !started {
					writeError(w, "Internal Server Error", http.StatusInternalServerError)
					return
				}
				panic(http.ErrAbortHandler)
			}
			if !started {
				begin()
			}
			if _, err := enc.WriteLine(w, res.X, res.Y); err != nil {
				log.Debug("client went away", zap.String("requestId", chimd.GetReqID(r.Context())), zap.Error(err))
				return
			}
			_ = rc.Flush()
		}
		if !started {
			begin()
		}
	}
}
