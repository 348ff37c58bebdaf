package handlers

import (
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func writeText(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(msg))
}

// codeParam returns the decoded {code} segment. chi routes on RawPath when
// it is set (e.g. a code containing "%2F"), so the param is still escaped.
func codeParam(r *http.Request) string {
	raw := chi.URLParam(r, "code")
	if r.URL.RawPath == "" {
		return raw
	}
	code, err := url.PathUnescape(raw)
	if err != nil {
		return raw
	}
	return code
}
