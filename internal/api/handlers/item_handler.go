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

// ItemHandler handles HTTP requests for furniture listings.
type ItemHandler struct {
	service services.ItemServiceProvider
}

// NewItemHandler creates a new ItemHandler.
func NewItemHandler(service services.ItemServiceProvider) *ItemHandler {
	return &ItemHandler{service: service}
}

// Create handles adding a new listing for the authenticated user.
func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input services.ItemInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		log.Error().Msg("Could not retrieve user claims from context")
		respondError(w, http.StatusInternalServerError, "Could not retrieve user from token")
		return
	}

	item, err := h.service.Create(input, claims.Email)
	if errors.Is(err, services.ErrTitleAndPriceRequired) {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		log.Error().Err(err).Str("email", claims.Email).Msg("Failed to insert item")
		respondError(w, http.StatusInternalServerError, "Failed to add item")
		return
	}

	respondJSON(w, http.StatusCreated, item)
}

// GetAll handles fetching every stored listing.
func (h *ItemHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.List()
	if err != nil {
		log.Error().Err(err).Msg("Failed to fetch items")
		respondError(w, http.StatusInternalServerError, "Failed to fetch items")
		return
	}
	if items == nil {
		items = []models.Item{}
	}
	respondJSON(w, http.StatusOK, items)
}

// Count handles the listing total used by the landing page.
func (h *ItemHandler) Count(w http.ResponseWriter, r *http.Request) {
	n, err := h.service.Count()
	if err != nil {
		log.Error().Err(err).Msg("Failed to count items")
		respondError(w, http.StatusInternalServerError, "Failed to count items")
		return
	}
	respondJSON(w, http.StatusOK, map[string]int{"totalNumber": n})
}

// Search handles the ?q= substring search across name, title and description.
func (h *ItemHandler) Search(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.Search(r.URL.Query().Get("q"))
	if errors.Is(err, services.ErrSearchQueryRequired) {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("Failed to search items")
		respondError(w, http.StatusInternalServerError, "Failed to search items")
		return
	}
	if items == nil {
		items = []models.Item{}
	}
	respondJSON(w, http.StatusOK, items)
}
