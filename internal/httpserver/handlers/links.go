package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/MrSnakeDoc/jumplink/internal/domain"
	"github.com/MrSnakeDoc/jumplink/internal/httpserver/deps"
	"github.com/MrSnakeDoc/jumplink/internal/logger"
)

const (
	maxCreateBodyBytes = 64 << 10

	msgInvalidURL = "Invalid or missing URL"
	msgNotFound   = "Not found"
)

// createLinkRequest keeps fields raw so a non-string url is reported as an
// invalid URL and a non-string code is ignored.
type createLinkRequest struct {
	URL  json.RawMessage `json:"url"`
	Code json.RawMessage `json:"code"`
}

type createLinkResponse struct {
	Code     string `json:"code"`
	URL      string `json:"url"`
	ShortURL string `json:"shortUrl"`
}

// CreateLink handles POST /api/links.
func CreateLink(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createLinkRequest
		err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxCreateBodyBytes)).Decode(&req)
		if err != nil && !errors.Is(err, io.EOF) {
			d.Logger.Debug("rejecting malformed create body", logger.Error(err))
			writeError(w, http.StatusBadRequest, "Invalid JSON body")
			return
		}

		rawURL := rawString(req.URL)
		code := rawString(req.Code)

		rec, err := d.Registry.CreateLink(r.Context(), rawURL, code)
		if err != nil {
			if errors.Is(err, domain.ErrInvalidInput) {
				d.Logger.Debug("rejecting invalid url", logger.String("url", rawURL))
				writeError(w, http.StatusBadRequest, msgInvalidURL)
				return
			}
			d.Logger.Error("failed to create link", logger.Error(err))
			writeError(w, http.StatusInternalServerError, "Internal error")
			return
		}

		writeJSON(w, http.StatusCreated, createLinkResponse{
			Code:     rec.Code,
			URL:      rec.URL,
			ShortURL: rec.ShortURL,
		})
	}
}

// ListLinks handles GET /api/links.
func ListLinks(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, d.Registry.ListLinks())
	}
}

// GetLink handles GET /api/links/{code}.
func GetLink(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec, err := d.Registry.GetLink(codeParam(r))
		if err != nil {
			writeError(w, http.StatusNotFound, msgNotFound)
			return
		}
		writeJSON(w, http.StatusOK, rec)
	}
}

// DeleteLink handles DELETE /api/links/{code}.
func DeleteLink(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		code := codeParam(r)
		if err := d.Registry.DeleteLink(code); err != nil {
			writeError(w, http.StatusNotFound, msgNotFound)
			return
		}
		d.Logger.Info("link deleted", logger.String("code", code))
		w.WriteHeader(http.StatusNoContent)
	}
}

// rawString returns the JSON string in raw, or "" for anything else.
func rawString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}
