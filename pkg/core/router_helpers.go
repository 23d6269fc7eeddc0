package core

import (
	"encoding/json"
	"net/http"

	"github.com/joeydtaylor/steeze-calc/pkg/codec"
)

func writeJSON(w http.ResponseWriter, payload []byte, status int) {
	w.Header().Set("Content-Type", codec.ContentTypeJSON)
	w.WriteHeader(status)
	if len(payload) > 0 {
		_, _ = w.Write(payload)
		return
	}
	_, _ = w.Write([]byte(`{}`))
}

func writeError(w http.ResponseWriter, detail string, status int) {
	b, _ := json.Marshal(struct {
		Detail string `json:"detail"`
	}{detail})
	writeJSON(w, b, status)
}
