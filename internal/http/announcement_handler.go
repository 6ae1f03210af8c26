package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/example/coworking-hub/internal/application"
	"github.com/example/coworking-hub/internal/domain"
)

type announcementService interface {
	List(ctx context.Context) []application.AnnouncementView
	Save(ctx context.Context, input application.AnnouncementInput) (domain.Announcement, error)
	Delete(ctx context.Context, id string, confirm bool) error
	ClearExpired(ctx context.Context, confirm bool) (application.ClearExpiredResult, error)
}

// AnnouncementHandler exposes the announcement feed.
type AnnouncementHandler struct {
	service   announcementService
	responder responder
	logger    *slog.Logger
}

func NewAnnouncementHandler(service announcementService, logger *slog.Logger) *AnnouncementHandler {
	base := defaultLogger(logger)
	return &AnnouncementHandler{service: service, responder: newResponder(base), logger: base}
}

func (h *AnnouncementHandler) log(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	if h == nil {
		return slog.Default()
	}
	return handlerLogger(ctx, h.logger, "AnnouncementHandler", operation, attrs...)
}

type announcementRequest struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Date    string `json:"date"`
	Type    string `json:"type"`
	Details string `json:"details"`
	Link    string `json:"link"`
}

func (r announcementRequest) toInput() application.AnnouncementInput {
	return application.AnnouncementInput{
		ID:      r.ID,
		Title:   r.Title,
		Date:    r.Date,
		Type:    domain.AnnouncementType(r.Type),
		Details: r.Details,
		Link:    r.Link,
	}
}

type listAnnouncementsResponse struct {
	Announcements []application.AnnouncementView `json:"announcements"`
}

type clearExpiredResponse struct {
	Count int `json:"count"`
}

// List serves the feed with derived expiry flags.
func (h *AnnouncementHandler) List(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	views := h.service.List(r.Context())
	h.responder.writeJSON(r.Context(), w, http.StatusOK, listAnnouncementsResponse{Announcements: views})
}

// Save upserts one announcement.
func (h *AnnouncementHandler) Save(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var req announcementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log(r.Context(), "Save", "error_kind", "bad_request").ErrorContext(r.Context(), "failed to decode announcement request", "error", err)
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errBadRequestBody)
		return
	}

	logger := h.log(r.Context(), "Save", "announcement_id", req.ID)
	ann, err := h.service.Save(r.Context(), req.toInput())
	if err != nil {
		logger.ErrorContext(r.Context(), "announcement save failed", "error", err, "error_kind", application.ErrorKind(err))
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	status := http.StatusOK
	if req.ID == "" {
		status = http.StatusCreated
	}
	logger.With("announcement_id", ann.ID).InfoContext(r.Context(), "announcement saved")
	h.responder.writeJSON(r.Context(), w, status, ann)
}

// Delete removes one announcement after confirmation.
func (h *AnnouncementHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	id, ok := ResourceIDFromContext(r.Context())
	if !ok || strings.TrimSpace(id) == "" {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errInvalidID)
		return
	}

	logger := h.log(r.Context(), "Delete", "announcement_id", id)
	if err := h.service.Delete(r.Context(), id, confirmFromRequest(r)); err != nil {
		logger.ErrorContext(r.Context(), "announcement delete failed", "error", err, "error_kind", application.ErrorKind(err))
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	logger.InfoContext(r.Context(), "announcement deleted")
	h.responder.writeJSON(r.Context(), w, http.StatusNoContent, nil)
}

// ClearExpired removes announcements dated before today. Without the confirm
// flag it responds 409 and reports how many would go; with zero expired
// entries it responds 200 with count 0.
func (h *AnnouncementHandler) ClearExpired(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	logger := h.log(r.Context(), "ClearExpired")
	result, err := h.service.ClearExpired(r.Context(), confirmFromRequest(r))
	if err != nil {
		if errors.Is(err, application.ErrConfirmationRequired) {
			h.responder.writeJSON(r.Context(), w, http.StatusConflict, struct {
				errorResponse
				Count int `json:"count"`
			}{
				errorResponse: errorResponse{
					ErrorCode: "CONFIRMATION_REQUIRED",
					Message:   "此操作無法復原，請再次確認後送出。",
				},
				Count: result.Count,
			})
			return
		}
		logger.ErrorContext(r.Context(), "clear expired failed", "error", err, "error_kind", application.ErrorKind(err))
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	logger.With("removed_count", result.Count).InfoContext(r.Context(), "expired announcements cleared")
	h.responder.writeJSON(r.Context(), w, http.StatusOK, clearExpiredResponse{Count: result.Count})
}
