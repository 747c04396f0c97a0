package http

import (
	"io"
	"net/http"

	"github.com/MKhiriev/realsense-capture-service/internal/logger"
)

// getStoragePath writes the configured capture storage path as the
// plain-text body with status 200.
func (h *Handler) getStoragePath(w http.ResponseWriter, r *http.Request) {
	storagePath := h.services.CaptureService.GetStoragePath(r.Context())

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := io.WriteString(w, storagePath); err != nil {
		logger.FromContext(r.Context()).Err(err).Msg("failed to write storage path")
	}
}
