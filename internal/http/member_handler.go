package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/example/coworking-hub/internal/application"
	"github.com/example/coworking-hub/internal/domain"
)

type memberService interface {
	List(ctx context.Context) ([]domain.MemberProfile, error)
	Replace(ctx context.Context, members []domain.MemberProfile) error
	PettyCash(ctx context.Context) (application.PettyCashSummary, error)
}

// MemberHandler exposes roster management and the balance readout.
type MemberHandler struct {
	service   memberService
	responder responder
	logger    *slog.Logger
}

func NewMemberHandler(service memberService, logger *slog.Logger) *MemberHandler {
	base := defaultLogger(logger)
	return &MemberHandler{service: service, responder: newResponder(base), logger: base}
}

func (h *MemberHandler) log(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	if h == nil {
		return slog.Default()
	}
	return handlerLogger(ctx, h.logger, "MemberHandler", operation, attrs...)
}

type replaceMembersRequest struct {
	Members []domain.MemberProfile `json:"members"`
}

type listMembersResponse struct {
	Members []domain.MemberProfile `json:"members"`
}

// List serves the roster for administrators.
func (h *MemberHandler) List(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	logger := h.log(r.Context(), "List")
	members, err := h.service.List(r.Context())
	if err != nil {
		logger.ErrorContext(r.Context(), "member list failed", "error", err, "error_kind", application.ErrorKind(err))
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	logger.With("result_count", len(members)).InfoContext(r.Context(), "members listed")
	h.responder.writeJSON(r.Context(), w, http.StatusOK, listMembersResponse{Members: members})
}

// Replace swaps the whole roster.
func (h *MemberHandler) Replace(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var req replaceMembersRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log(r.Context(), "Replace", "error_kind", "bad_request").ErrorContext(r.Context(), "failed to decode members request", "error", err)
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errBadRequestBody)
		return
	}

	logger := h.log(r.Context(), "Replace", "member_count", len(req.Members))
	if err := h.service.Replace(r.Context(), req.Members); err != nil {
		logger.ErrorContext(r.Context(), "member replace failed", "error", err, "error_kind", application.ErrorKind(err))
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	logger.InfoContext(r.Context(), "members replaced")
	h.responder.writeJSON(r.Context(), w, http.StatusNoContent, nil)
}

// PettyCash serves the session-dependent balance summary.
func (h *MemberHandler) PettyCash(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	logger := h.log(r.Context(), "PettyCash")
	summary, err := h.service.PettyCash(r.Context())
	if err != nil {
		logger.ErrorContext(r.Context(), "petty cash summary failed", "error", err, "error_kind", application.ErrorKind(err))
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	h.responder.writeJSON(r.Context(), w, http.StatusOK, summary)
}
