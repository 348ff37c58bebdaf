package handlers

import (
	"net/http"

	"github.com/MrSnakeDoc/jumplink/internal/httpserver/deps"
	"github.com/MrSnakeDoc/jumplink/internal/logger"
)

// Redirect handles GET /{code}: records the click and answers 302.
func Redirect(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		code := codeParam(r)

		target, err := d.Registry.ResolveAndRecordClick(code)
		if err != nil {
			d.Logger.Debug("unknown code", logger.String("code", code))
			writeText(w, http.StatusNotFound, msgNotFound)
			return
		}

		http.Redirect(w, r, target, http.StatusFound)
	}
}
