package handlers

import (
	"net"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/sellfurniture/marketplace-be/internal/services"
)

// VisitHandler handles the page-view logging endpoint.
type VisitHandler struct {
	service services.VisitServiceProvider
}

// NewVisitHandler creates a new VisitHandler.
func NewVisitHandler(service services.VisitServiceProvider) *VisitHandler {
	return &VisitHandler{service: service}
}

// Record logs one page view. RemoteAddr already carries the forwarded
// client address when a proxy header was present (RealIP middleware runs
// first). A failed insert is reported but never escalates past this
// handler.
func (h *VisitHandler) Record(w http.ResponseWriter, r *http.Request) {
	ip := r.RemoteAddr
	if host, _, err := net.SplitHostPort(ip); err == nil {
		ip = host
	}

	visit, err := h.service.Record(ip, r.UserAgent())
	if err != nil {
		log.Error().Err(err).Msg("Failed to record visit")
		respondError(w, http.StatusInternalServerError, "Failed to record visit")
		return
	}

	respondJSON(w, http.StatusCreated, visit)
}
