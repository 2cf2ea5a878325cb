package handlers

import (
	"context"
	"net/http"
	"sort"
	"time"
)

// HealthHandler reports liveness plus the state of optional backing stores
// (lookup caches). A failing check degrades the status but still returns 200,
// since the planner works without caches.
type HealthHandler struct {
	Checks map[string]func(context.Context) error
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	names := make([]string, 0, len(h.Checks))
	for name := range h.Checks {
		names = append(names, name)
	}
	sort.Strings(names)

	status := "ok"
	checks := make(map[string]string, len(names))
	for _, name := range names {
		if err := h.Checks[name](ctx); err != nil {
			checks[name] = err.Error()
			status = "degraded"
			continue
		}
		checks[name] = "ok"
	}

	res := map[string]any{"status": status}
	if len(checks) > 0 {
		res["checks"] = checks
	}
	writeJSON(w, r, http.StatusOK, res)
}
