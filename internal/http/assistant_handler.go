package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
)

type chatService interface {
	Chat(ctx context.Context, message string) string
}

// AssistantHandler exposes the AI chat surface. The service absorbs its own
// failures into renderable text, so this handler only rejects malformed
// requests.
type AssistantHandler struct {
	service   chatService
	responder responder
	logger    *slog.Logger
}

func NewAssistantHandler(service chatService, logger *slog.Logger) *AssistantHandler {
	base := defaultLogger(logger)
	return &AssistantHandler{service: service, responder: newResponder(base), logger: base}
}

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Reply string `json:"reply"`
}

// Chat answers one user message.
func (h *AssistantHandler) Chat(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errBadRequestBody)
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errBadRequestBody)
		return
	}

	reply := h.service.Chat(r.Context(), req.Message)
	h.responder.writeJSON(r.Context(), w, http.StatusOK, chatResponse{Reply: reply})
}
