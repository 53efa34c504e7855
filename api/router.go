package api

import (
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// NewRouter wires the routes and middleware. corsOrigins lists the allowed
// browser origins; "*" allows any.
func NewRouter(h *Handler, log *zap.Logger, corsOrigins []string) http.Handler {
	if log == nil {
		log = zap.NewNop()
	}

	router := mux.NewRouter()
	router.HandleFunc("/api/scrape", h.Scrape).Methods(http.MethodPost)
	router.HandleFunc("/api/season", h.Season).Methods(http.MethodGet)
	router.HandleFunc("/healthz", h.Health).Methods(http.MethodGet)
	router.Use(requestID, accessLog(log))

	cors := handlers.CORS(
		handlers.AllowedOrigins(corsOrigins),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type", RequestIDHeader}),
		handlers.ExposedHeaders([]string{RequestIDHeader}),
	)
	recovery := handlers.RecoveryHandler(
		handlers.RecoveryLogger(zap.NewStdLog(log)),
		handlers.PrintRecoveryStack(true),
	)
	return recovery(cors(handlers.CompressHandler(router)))
}
