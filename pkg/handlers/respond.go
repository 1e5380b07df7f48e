package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"brand-showcase/pkg/apperrors"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Warn("failed to write response", zap.Error(err))
	}
}

// writeError turns err into the JSON error body; unexpected errors become a 500 carrying fallback
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		body := map[string]any{"error": appErr.Message}
		for k, v := range appErr.Details {
			body[k] = v
		}
		writeJSON(w, appErr.Status, body)
		return
	}

	status := apperrors.HTTPStatus(err)
	if status != http.StatusInternalServerError {
		writeJSON(w, status, map[string]any{"error": err.Error()})
		return
	}

	h.logger.Error(fallback, zap.Error(err), zap.String("path", r.URL.Path))
	body := map[string]any{
		"error":   fallback,
		"message": err.Error(),
	}
	if stack := apperrors.Stack(err); stack != "" && !h.production {
		body["stack"] = stack
	}
	writeJSON(w, http.StatusInternalServerError, body)
}
