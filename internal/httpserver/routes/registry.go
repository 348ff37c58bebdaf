package routes

import (
	"cmp"
	"net/http"
	"slices"

	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/jumplink/internal/httpserver/deps"
)

type (
	Registrar  func(r chi.Router, d deps.Deps)
	Middleware = func(http.Handler) http.Handler
)

// Order groups registrars. Lower orders are registered first.
type Order int

const (
	OrderAPI    Order = iota // fixed /api/* routes
	OrderProbes              // /healthz, /readyz
	OrderCatchAll            // single-segment wildcard routes, always last
)

type entry struct {
	order Order
	reg   Registrar
	mws   []Middleware
}

var registry []entry

// Register a registrar at the given order with optional per-route middlewares.
func Register(order Order, reg Registrar, mws ...Middleware) {
	registry = append(registry, entry{order: order, reg: reg, mws: mws})
}

// RegisterAll mounts every registrar sorted by order. Registrars sharing an
// order keep their registration order. Called once from httpserver.NewRouter.
func RegisterAll(r chi.Router, d deps.Deps) {
	entries := slices.Clone(registry)
	slices.SortStableFunc(entries, func(a, b entry) int {
		return cmp.Compare(a.order, b.order)
	})

	for _, e := range entries {
		if len(e.mws) == 0 {
			e.reg(r, d)
			continue
		}
		sub := r.With(e.mws...) // apply per-route middlewares
		e.reg(sub, d)
	}
}
