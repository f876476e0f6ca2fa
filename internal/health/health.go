// Package health provides liveness and readiness endpoints for the web
// shell.
//
// /healthz reports the process is serving. /readyz additionally lists the
// backend that serves each capability, so an operator can tell a stub
// deployment from a cloud one.
package health

import (
	"encoding/json"
	"maps"
	"net/http"
	"sync"
	"sync/atomic"
)

// Checker tracks readiness and the configured backends.
type Checker struct {
	ready atomic.Bool

	mu       sync.RWMutex
	backends map[string]string
}

// New creates a Checker that is not yet ready.
func New() *Checker {
	return &Checker{backends: make(map[string]string)}
}

// SetReady marks the shell as ready to accept traffic.
func (c *Checker) SetReady(ready bool) {
	c.ready.Store(ready)
}

// SetBackend records the backend name serving a capability.
func (c *Checker) SetBackend(capability, name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.backends[capability] = name
}

// Register mounts /healthz and /readyz on mux.
func (c *Checker) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /healthz", c.handleHealth)
	mux.HandleFunc("GET /readyz", c.handleReady)
}

func (c *Checker) handleHealth(w http.ResponseWriter, r *http.Request) {
	if !c.ready.Load() {
		writeStatus(w, http.StatusServiceUnavailable, map[string]any{"status": "not_ready"})
		return
	}
	writeStatus(w, http.StatusOK, map[string]any{"status": "ok"})
}

func (c *Checker) handleReady(w http.ResponseWriter, r *http.Request) {
	c.mu.RLock()
	backends := maps.Clone(c.backends)
	c.mu.RUnlock()

	if !c.ready.Load() {
		writeStatus(w, http.StatusServiceUnavailable, map[string]any{"status": "not_ready", "backends": backends})
		return
	}
	writeStatus(w, http.StatusOK, map[string]any{"status": "ok", "backends": backends})
}

func writeStatus(w http.ResponseWriter, status int, body map[string]any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
