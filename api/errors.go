package api

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"arcadetracker/apperr"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	jsonData, err := json.Marshal(v)
	if err != nil {
		http.Error(w, "Error marshaling to JSON", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(jsonData)
}

// writeError maps err to the {error} body: 400 with the error's own message
// for expected kinds, 500 with a generic message otherwise.
func writeError(w http.ResponseWriter, r *http.Request, log *zap.Logger, err error) {
	kind := apperr.KindOf(err)
	if kind.Expected() {
		log.Info("profile request rejected",
			zap.String("request_id", RequestID(r.Context())),
			zap.Stringer("kind", kind),
			zap.Error(err))
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: apperr.Message(err)})
		return
	}

	log.Error("profile request failed",
		zap.String("request_id", RequestID(r.Context())),
		zap.Error(err))
	writeJSON(w, http.StatusInternalServerError, errorResponse{Error: apperr.InternalMessage})
}
