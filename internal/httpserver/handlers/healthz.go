package handlers

import (
	"net/http"

	"github.com/MrSnakeDoc/jumplink/internal/httpserver/deps"
)

type healthzResponse struct {
	OK      bool   `json:"ok"`
	Version string `json:"version"`
}

func Healthz(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store")
		writeJSON(w, http.StatusOK, healthzResponse{
			OK:      true,
			Version: d.Version,
		})
	}
}
