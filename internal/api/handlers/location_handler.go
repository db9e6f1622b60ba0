package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/sellfurniture/marketplace-be/internal/auth"
	"github.com/sellfurniture/marketplace-be/internal/models"
	"github.com/sellfurniture/marketplace-be/internal/services"
)

// LocationHandler handles HTTP requests for pickup locations.
type LocationHandler struct {
	service services.LocationServiceProvider
}

// NewLocationHandler creates a new LocationHandler.
func NewLocationHandler(service services.LocationServiceProvider) *LocationHandler {
	return &LocationHandler{service: service}
}

// Create handles adding a new location. The creator is taken from the
// verified claims when the route is protected; with anonymous creation
// enabled there are no claims and the creator stays empty.
func (h *LocationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	var createdBy string
	if claims, ok := auth.ClaimsFromContext(r.Context()); ok {
		createdBy = claims.Email
	}

	loc, err := h.service.Create(payload.Name, createdBy)
	if errors.Is(err, services.ErrLocationNameRequired) {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("Failed to insert location")
		respondError(w, http.StatusInternalServerError, "Failed to add location")
		return
	}

	respondJSON(w, http.StatusCreated, loc)
}

// GetAll handles fetching every stored location.
func (h *LocationHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	locations, err := h.service.List()
	if err != nil {
		log.Error().Err(err).Msg("Failed to fetch locations")
		respondError(w, http.StatusInternalServerError, "Failed to fetch locations")
		return
	}
	if locations == nil {
		locations = []models.Location{}
	}
	respondJSON(w, http.StatusOK, locations)
}
