package logger

import (
	"net/http"
	"strings"
	"sync"
)

const maxLoggedBody = 1 << 16 // 64 KiB

type bodyAllowlist struct {
	mu    sync.RWMutex
	paths map[string]struct{}
}

// AddBodyLogPaths extends the set of routes whose request bodies are logged.
func (m *Middleware) AddBodyLogPaths(paths ...string) {
	m.bodies.mu.Lock()
	for _, p := range paths {
		p = strings.TrimSpace(p)
		if p != "" {
			m.bodies.paths[p] = struct{}{}
		}
	}
	m.bodies.mu.Unlock()
}

// Only log small JSON request bodies on allowlisted routes.
func (m *Middleware) shouldLogBody(r *http.Request, body []byte) bool {
	if r.Method != http.MethodPost && r.Method != http.MethodPut && r.Method != http.MethodPatch {
		return false
	}
	if len(body) == 0 || len(body) > maxLoggedBody {
		return false
	}
	if !strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		return false
	}
	m.bodies.mu.RLock()
	_, ok := m.bodies.paths[r.URL.Path]
	m.bodies.mu.RUnlock()
	return ok
}
