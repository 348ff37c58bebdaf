package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/jumplink/internal/httpserver/deps"
	"github.com/MrSnakeDoc/jumplink/internal/httpserver/handlers"
)

// The wildcard would shadow fixed routes if mounted first.
func init() { Register(OrderCatchAll, registerRedirect) }

func registerRedirect(r chi.Router, d deps.Deps) {
	r.Get("/{code}", handlers.Redirect(d))
}
