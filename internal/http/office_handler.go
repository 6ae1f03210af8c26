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

type officeService interface {
	List(ctx context.Context) []domain.OfficeType
	Update(ctx context.Context, input application.OfficeTypeInput) (domain.OfficeType, error)
	Delete(ctx context.Context, id string, confirm bool) error
}

// OfficeHandler exposes the leasable office categories.
type OfficeHandler struct {
	service   officeService
	responder responder
	logger    *slog.Logger
}

func NewOfficeHandler(service officeService, logger *slog.Logger) *OfficeHandler {
	base := defaultLogger(logger)
	return &OfficeHandler{service: service, responder: newResponder(base), logger: base}
}

func (h *OfficeHandler) log(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	if h == nil {
		return slog.Default()
	}
	return handlerLogger(ctx, h.logger, "OfficeHandler", operation, attrs...)
}

type officeRequest struct {
	Description string   `json:"description"`
	Images      []string `json:"images"`
	CoverIndex  int      `json:"coverIndex"`
	VideoURL    string   `json:"videoUrl"`
	Features    []string `json:"features"`
}

type listOfficesResponse struct {
	OfficeTypes []domain.OfficeType `json:"officeTypes"`
}

// List serves the categories.
func (h *OfficeHandler) List(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	h.responder.writeJSON(r.Context(), w, http.StatusOK, listOfficesResponse{OfficeTypes: h.service.List(r.Context())})
}

// Update applies the editable fields of one category. The identifier comes
// from the path; the title cannot be supplied.
func (h *OfficeHandler) Update(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	id, ok := ResourceIDFromContext(r.Context())
	if !ok || strings.TrimSpace(id) == "" {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errInvalidID)
		return
	}

	var req officeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log(r.Context(), "Update", "office_type_id", id, "error_kind", "bad_request").ErrorContext(r.Context(), "failed to decode office request", "error", err)
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errBadRequestBody)
		return
	}

	logger := h.log(r.Context(), "Update", "office_type_id", id)
	officeType, err := h.service.Update(r.Context(), application.OfficeTypeInput{
		ID:          id,
		Description: req.Description,
		Images:      req.Images,
		CoverIndex:  req.CoverIndex,
		VideoURL:    req.VideoURL,
		Features:    req.Features,
	})
	if err != nil {
		logger.ErrorContext(r.Context(), "office update failed", "error", err, "error_kind", application.ErrorKind(err))
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	logger.InfoContext(r.Context(), "office type updated")
	h.responder.writeJSON(r.Context(), w, http.StatusOK, officeType)
}

// Delete removes one category after confirmation.
func (h *OfficeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	id, ok := ResourceIDFromContext(r.Context())
	if !ok || strings.TrimSpace(id) == "" {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errInvalidID)
		return
	}

	logger := h.log(r.Context(), "Delete", "office_type_id", id)
	if err := h.service.Delete(r.Context(), id, confirmFromRequest(r)); err != nil {
		logger.ErrorContext(r.Context(), "office delete failed", "error", err, "error_kind", application.ErrorKind(err))
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	logger.InfoContext(r.Context(), "office type deleted")
	h.responder.writeJSON(r.Context(), w, http.StatusNoContent, nil)
}
