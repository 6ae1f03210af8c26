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

type partnerService interface {
	List(ctx context.Context) []domain.BusinessPartner
	Save(ctx context.Context, input application.PartnerInput) (domain.BusinessPartner, error)
	Delete(ctx context.Context, id string, confirm bool) error
}

// PartnerHandler exposes the business partner directory.
type PartnerHandler struct {
	service   partnerService
	responder responder
	logger    *slog.Logger
}

func NewPartnerHandler(service partnerService, logger *slog.Logger) *PartnerHandler {
	base := defaultLogger(logger)
	return &PartnerHandler{service: service, responder: newResponder(base), logger: base}
}

func (h *PartnerHandler) log(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	if h == nil {
		return slog.Default()
	}
	return handlerLogger(ctx, h.logger, "PartnerHandler", operation, attrs...)
}

type partnerRequest struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Website     string `json:"website"`
	LogoURL     string `json:"logoUrl"`
}

func (r partnerRequest) toInput() application.PartnerInput {
	return application.PartnerInput{
		ID:          r.ID,
		Name:        r.Name,
		Category:    r.Category,
		Description: r.Description,
		Website:     r.Website,
		LogoURL:     r.LogoURL,
	}
}

type listPartnersResponse struct {
	Partners []domain.BusinessPartner `json:"partners"`
}

// List serves the directory.
func (h *PartnerHandler) List(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	h.responder.writeJSON(r.Context(), w, http.StatusOK, listPartnersResponse{Partners: h.service.List(r.Context())})
}

// Save upserts one partner.
func (h *PartnerHandler) Save(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var req partnerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log(r.Context(), "Save", "error_kind", "bad_request").ErrorContext(r.Context(), "failed to decode partner request", "error", err)
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errBadRequestBody)
		return
	}

	logger := h.log(r.Context(), "Save", "partner_id", req.ID)
	partner, err := h.service.Save(r.Context(), req.toInput())
	if err != nil {
		logger.ErrorContext(r.Context(), "partner save failed", "error", err, "error_kind", application.ErrorKind(err))
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	status := http.StatusOK
	if req.ID == "" {
		status = http.StatusCreated
	}
	logger.With("partner_id", partner.ID).InfoContext(r.Context(), "partner saved")
	h.responder.writeJSON(r.Context(), w, status, partner)
}

// Delete removes one partner after confirmation.
func (h *PartnerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	id, ok := ResourceIDFromContext(r.Context())
	if !ok || strings.TrimSpace(id) == "" {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errInvalidID)
		return
	}

	logger := h.log(r.Context(), "Delete", "partner_id", id)
	if err := h.service.Delete(r.Context(), id, confirmFromRequest(r)); err != nil {
		logger.ErrorContext(r.Context(), "partner delete failed", "error", err, "error_kind", application.ErrorKind(err))
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	logger.InfoContext(r.Context(), "partner deleted")
	h.responder.writeJSON(r.Context(), w, http.StatusNoContent, nil)
}
