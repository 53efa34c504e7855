// Package api exposes the profile scorer over HTTP.
package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"arcadetracker/apperr"
	"arcadetracker/profile"
	"arcadetracker/scoring"
)

const maxRequestBytes = 64 << 10

// Scraper is the pipeline behind the handlers.
type Scraper interface {
	ScrapeURL(ctx context.Context, url string) (*profile.Result, error)
	Rules() scoring.Rules
}

// Handler serves the API routes.
type Handler struct {
	scraper Scraper
	log     *zap.Logger
}

// NewHandler creates a Handler. A nil logger disables logging.
func NewHandler(s Scraper, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{scraper: s, log: log}
}

type scrapeRequest struct {
	URL string `json:"url"`
}

// Scrape handles POST /api/scrape.
func (h *Handler) Scrape(w http.ResponseWriter, r *http.Request) {
	defer func() {
		if rec := recover(); rec != nil {
			writeError(w, r, h.log, errors.Errorf("panic in scrape handler: %v", rec))
		}
	}()

	var req scrapeRequest
	body := http.MaxBytesReader(w, r.Body, maxRequestBytes)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		if errors.Is(err, io.EOF) {
			writeError(w, r, h.log, apperr.ErrURLRequired)
			return
		}
		writeError(w, r, h.log, &apperr.Error{Kind: apperr.KindInvalidURL, Msg: apperr.ErrInvalidURL.Msg, Err: err})
		return
	}

	res, err := h.scraper.ScrapeURL(r.Context(), req.URL)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// Season handles GET /api/season.
func (h *Handler) Season(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.scraper.Rules())
}

// Health handles GET /healthz.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
