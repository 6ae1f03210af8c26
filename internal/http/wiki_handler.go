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

type wikiService interface {
	List(ctx context.Context, filter application.WikiFilter) []domain.WikiItem
	Add(ctx context.Context, input application.WikiItemInput) (domain.WikiItem, error)
	Delete(ctx context.Context, id string, confirm bool) error
}

// WikiHandler exposes the knowledge base.
type WikiHandler struct {
	service   wikiService
	responder responder
	logger    *slog.Logger
}

func NewWikiHandler(service wikiService, logger *slog.Logger) *WikiHandler {
	base := defaultLogger(logger)
	return &WikiHandler{service: service, responder: newResponder(base), logger: base}
}

func (h *WikiHandler) log(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	if h == nil {
		return slog.Default()
	}
	return handlerLogger(ctx, h.logger, "WikiHandler", operation, attrs...)
}

type wikiItemRequest struct {
	Title        string   `json:"title"`
	Category     string   `json:"category"`
	IconName     string   `json:"iconName"`
	Description  string   `json:"description"`
	ContentType  string   `json:"contentType"`
	Instructions []string `json:"instructions"`
	MediaURL     string   `json:"mediaUrl"`
}

func (r wikiItemRequest) toInput() application.WikiItemInput {
	return application.WikiItemInput{
		Title:        r.Title,
		Category:     domain.WikiCategory(r.Category),
		IconName:     r.IconName,
		Description:  r.Description,
		ContentType:  domain.WikiContentType(r.ContentType),
		Instructions: r.Instructions,
		MediaURL:     r.MediaURL,
	}
}

type listWikiResponse struct {
	Items []domain.WikiItem `json:"items"`
}

// List serves the filtered knowledge base.
func (h *WikiHandler) List(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	filter := application.WikiFilter{
		Search:   r.URL.Query().Get("search"),
		Category: domain.WikiCategory(r.URL.Query().Get("category")),
	}
	items := h.service.List(r.Context(), filter)
	h.log(r.Context(), "List", "result_count", len(items)).DebugContext(r.Context(), "wiki items listed")
	h.responder.writeJSON(r.Context(), w, http.StatusOK, listWikiResponse{Items: items})
}

// Create stores a new entry.
func (h *WikiHandler) Create(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var req wikiItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log(r.Context(), "Create", "error_kind", "bad_request").ErrorContext(r.Context(), "failed to decode wiki request", "error", err)
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errBadRequestBody)
		return
	}

	logger := h.log(r.Context(), "Create")
	item, err := h.service.Add(r.Context(), req.toInput())
	if err != nil {
		logger.ErrorContext(r.Context(), "wiki creation failed", "error", err, "error_kind", application.ErrorKind(err))
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	logger.With("wiki_id", item.ID).InfoContext(r.Context(), "wiki item created")
	h.responder.writeJSON(r.Context(), w, http.StatusCreated, item)
}

// Delete removes an entry after confirmation.
func (h *WikiHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	id, ok := ResourceIDFromContext(r.Context())
	if !ok || strings.TrimSpace(id) == "" {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errInvalidID)
		return
	}

	logger := h.log(r.Context(), "Delete", "wiki_id", id)
	if err := h.service.Delete(r.Context(), id, confirmFromRequest(r)); err != nil {
		logger.ErrorContext(r.Context(), "wiki delete failed", "error", err, "error_kind", application.ErrorKind(err))
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	logger.InfoContext(r.Context(), "wiki item deleted")
	h.responder.writeJSON(r.Context(), w, http.StatusNoContent, nil)
}

// confirmFromRequest reads the shared ?confirm=true query flag.
func confirmFromRequest(r *http.Request) bool {
	return strings.EqualFold(r.URL.Query().Get("confirm"), "true")
}
