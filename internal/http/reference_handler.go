package http

import (
	"log/slog"
	"net/http"

	"github.com/example/coworking-hub/internal/domain"
)

// ReferenceHandler serves the static reference data: the meal map and the
// house rules.
type ReferenceHandler struct {
	responder responder
}

func NewReferenceHandler(logger *slog.Logger) *ReferenceHandler {
	return &ReferenceHandler{responder: newResponder(defaultLogger(logger))}
}

type foodMapResponse struct {
	Spots []domain.FoodSpot `json:"spots"`
}

type rulesResponse struct {
	Rules []string `json:"rules"`
}

// FoodMap serves the nearby eating options.
func (h *ReferenceHandler) FoodMap(w http.ResponseWriter, r *http.Request) {
	if h == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	h.responder.writeJSON(r.Context(), w, http.StatusOK, foodMapResponse{Spots: domain.SeedFoodSpots()})
}

// Rules serves the house rules.
func (h *ReferenceHandler) Rules(w http.ResponseWriter, r *http.Request) {
	if h == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	h.responder.writeJSON(r.Context(), w, http.StatusOK, rulesResponse{Rules: domain.HouseRules})
}
