package handlers

import (
	"net/http"
	"strconv"

	"github.com/skip2/go-qrcode"

	"github.com/MrSnakeDoc/jumplink/internal/httpserver/deps"
	"github.com/MrSnakeDoc/jumplink/internal/logger"
)

const (
	defaultQRSize = 256
	minQRSize     = 64
	maxQRSize     = 1024
)

// LinkQRCode handles GET /api/links/{code}/qr and renders the short URL as a PNG.
func LinkQRCode(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec, err := d.Registry.GetLink(codeParam(r))
		if err != nil {
			writeError(w, http.StatusNotFound, msgNotFound)
			return
		}

		png, err := qrcode.Encode(rec.ShortURL, qrcode.Medium, qrSize(r.URL.Query().Get("size")))
		if err != nil {
			d.Logger.Error("failed to encode qr code",
				logger.String("code", rec.Code),
				logger.Error(err))
			writeError(w, http.StatusInternalServerError, "Internal error")
			return
		}

		w.Header().Set("Content-Type", "image/png")
		w.Header().Set("Content-Length", strconv.Itoa(len(png)))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(png)
	}
}

// qrSize parses the size query parameter, clamped to [minQRSize, maxQRSize].
func qrSize(raw string) int {
	size, err := strconv.Atoi(raw)
	if err != nil {
		return defaultQRSize
	}
	return max(minQRSize, min(size, maxQRSize))
}
