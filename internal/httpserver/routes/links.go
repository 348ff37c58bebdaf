package routes

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MrSnakeDoc/jumplink/internal/httpserver/deps"
	"github.com/MrSnakeDoc/jumplink/internal/httpserver/handlers"
)

func init() { Register(OrderAPI, registerLinks, middleware.NoCache) }

func registerLinks(r chi.Router, d deps.Deps) {
	r.Route("/api/links", func(r chi.Router) {
		r.Post("/", handlers.CreateLink(d))
		r.Get("/", handlers.ListLinks(d))
		r.Get("/{code}", handlers.GetLink(d))
		r.Get("/{code}/qr", handlers.LinkQRCode(d))
		r.Delete("/{code}", handlers.DeleteLink(d))
	})
}
