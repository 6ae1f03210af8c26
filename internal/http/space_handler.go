package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/example/coworking-hub/internal/application"
	"github.com/example/coworking-hub/internal/domain"
)

type spaceService interface {
	Branches() []domain.Branch
	List(ctx context.Context, branchID domain.BranchID) []domain.LocationSpace
	Add(ctx context.Context, input application.SpaceInput) (domain.LocationSpace, error)
	Delete(ctx context.Context, id string, confirm bool) error
}

// SpaceHandler exposes branches and bookable spaces.
type SpaceHandler struct {
	service   spaceService
	responder responder
	logger    *slog.Logger
}

func NewSpaceHandler(service spaceService, logger *slog.Logger) *SpaceHandler {
	base := defaultLogger(logger)
	return &SpaceHandler{service: service, responder: newResponder(base), logger: base}
}

func (h *SpaceHandler) log(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	if h == nil {
		return slog.Default()
	}
	return handlerLogger(ctx, h.logger, "SpaceHandler", operation, attrs...)
}

type spaceRequest struct {
	BranchID    string   `json:"branchId"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Capacity    string   `json:"capacity"`
	Images      []string `json:"images"`
	CoverIndex  int      `json:"coverIndex"`
	VideoURL    string   `json:"videoUrl"`
	Features    []string `json:"features"`
}

func (r spaceRequest) toInput() application.SpaceInput {
	return application.SpaceInput{
		BranchID:    domain.BranchID(r.BranchID),
		Name:        r.Name,
		Description: r.Description,
		Capacity:    r.Capacity,
		Images:      r.Images,
		CoverIndex:  r.CoverIndex,
		VideoURL:    r.VideoURL,
		Features:    r.Features,
	}
}

type listBranchesResponse struct {
	Branches []domain.Branch `json:"branches"`
}

type listSpacesResponse struct {
	Spaces []domain.LocationSpace `json:"spaces"`
}

// Branches serves the fixed branch reference data.
func (h *SpaceHandler) Branches(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	h.responder.writeJSON(r.Context(), w, http.StatusOK, listBranchesResponse{Branches: h.service.Branches()})
}

// List serves spaces, optionally narrowed by ?branch=.
func (h *SpaceHandler) List(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	spaces := h.service.List(r.Context(), domain.BranchID(r.URL.Query().Get("branch")))
	h.responder.writeJSON(r.Context(), w, http.StatusOK, listSpacesResponse{Spaces: spaces})
}

// Create stores a new space.
func (h *SpaceHandler) Create(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var req spaceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log(r.Context(), "Create", "error_kind", "bad_request").ErrorContext(r.Context(), "failed to decode space request", "error", err)
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errBadRequestBody)
		return
	}

	logger := h.log(r.Context(), "Create", "branch_id", req.BranchID)
	space, err := h.service.Add(r.Context(), req.toInput())
	if err != nil {
		logger.ErrorContext(r.Context(), "space creation failed", "error", err, "error_kind", application.ErrorKind(err))
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	logger.With("space_id", space.ID).InfoContext(r.Context(), "space created")
	h.responder.writeJSON(r.Context(), w, http.StatusCreated, space)
}

// Delete removes a space after confirmation.
func (h *SpaceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	id, ok := ResourceIDFromContext(r.Context())
	if !ok || strings.TrimSpace(id) == "" {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errInvalidID)
		return
	}

	logger := h.log(r.Context(), "Delete", "space_id", id)
	if err := h.service.Delete(r.Context(), id, confirmFromRequest(r)); err != nil {
		logger.ErrorContext(r.Context(), "space delete failed", "error", err, "error_kind", application.ErrorKind(err))
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	logger.InfoContext(r.Context(), "space deleted")
	h.responder.writeJSON(r.Context(), w, http.StatusNoContent, nil)
}
