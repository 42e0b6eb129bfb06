package server

import (
	"net/http"
	"strings"
)

// RouteDoc is one registered API route, exposed on /api/routes so the
// dashboard (and curl users) can discover the surface.
type RouteDoc struct {
	Method  string `json:"method"`
	Pattern string `json:"pattern"`
	Summary string `json:"summary,omitempty"`
}

type RouteRegistry struct {
	routes []RouteDoc
}

func (rr *RouteRegistry) Add(doc RouteDoc) {
	rr.routes = append(rr.routes, doc)
}

func (rr *RouteRegistry) List() []RouteDoc {
	out := make([]RouteDoc, len(rr.routes))
	copy(out, rr.routes)
	return out
}

// Handle registers h on the mux under a method-qualified pattern
// ("GET /api/ar/tasks") and records the route in the registry.
func Handle(mux *http.ServeMux, rr *RouteRegistry, methodAndPattern, summary string, h http.Handler) {
	parts := strings.SplitN(methodAndPattern, " ", 2)
	method, pattern := parts[0], ""
	if len(parts) == 2 {
		pattern = parts[1]
	}
	rr.Add(RouteDoc{Method: method, Pattern: pattern, Summary: summary})
	mux.Handle(methodAndPattern, h)
}
