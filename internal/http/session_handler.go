package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/example/coworking-hub/internal/application"
	"github.com/example/coworking-hub/internal/domain"
	"github.com/example/coworking-hub/internal/store"
)

type authService interface {
	MemberLogin(ctx context.Context, password string) (domain.MemberProfile, error)
	AdminLogin(ctx context.Context, password string) (store.Session, error)
	DemoteAdmin(ctx context.Context, confirm bool) error
	Logout(ctx context.Context)
	Session() store.Session
}

// SessionHandler exposes the login state machine.
type SessionHandler struct {
	service   authService
	responder responder
	logger    *slog.Logger
}

func NewSessionHandler(service authService, logger *slog.Logger) *SessionHandler {
	base := defaultLogger(logger)
	return &SessionHandler{service: service, responder: newResponder(base), logger: base}
}

func (h *SessionHandler) log(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	if h == nil {
		return slog.Default()
	}
	return handlerLogger(ctx, h.logger, "SessionHandler", operation, attrs...)
}

type credentialsRequest struct {
	Password string `json:"password"`
}

type confirmRequest struct {
	Confirm bool `json:"confirm"`
}

type sessionDTO struct {
	MemberLoggedIn bool                  `json:"memberLoggedIn"`
	IsAdmin        bool                  `json:"isAdmin"`
	CurrentUser    *domain.MemberProfile `json:"currentUser,omitempty"`
}

func toSessionDTO(session store.Session) sessionDTO {
	return sessionDTO{
		MemberLoggedIn: session.MemberLoggedIn,
		IsAdmin:        session.Admin,
		CurrentUser:    session.CurrentUser,
	}
}

// Current reports the session flags for the client shell.
func (h *SessionHandler) Current(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	h.responder.writeJSON(r.Context(), w, http.StatusOK, toSessionDTO(h.service.Session()))
}

// MemberLogin authenticates a member by password lookup.
func (h *SessionHandler) MemberLogin(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log(r.Context(), "MemberLogin", "error_kind", "bad_request").ErrorContext(r.Context(), "failed to decode login request", "error", err)
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errBadRequestBody)
		return
	}

	logger := h.log(r.Context(), "MemberLogin")
	member, err := h.service.MemberLogin(r.Context(), req.Password)
	if err != nil {
		logger.ErrorContext(r.Context(), "member login failed", "error", err, "error_kind", application.ErrorKind(err))
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	logger.With("member_id", member.ID).InfoContext(r.Context(), "member logged in")
	h.responder.writeJSON(r.Context(), w, http.StatusOK, toSessionDTO(h.service.Session()))
}

// AdminLogin elevates the session with the operator secret.
func (h *SessionHandler) AdminLogin(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log(r.Context(), "AdminLogin", "error_kind", "bad_request").ErrorContext(r.Context(), "failed to decode login request", "error", err)
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errBadRequestBody)
		return
	}

	logger := h.log(r.Context(), "AdminLogin")
	session, err := h.service.AdminLogin(r.Context(), req.Password)
	if err != nil {
		logger.ErrorContext(r.Context(), "admin login failed", "error", err, "error_kind", application.ErrorKind(err))
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	logger.InfoContext(r.Context(), "admin elevated")
	h.responder.writeJSON(r.Context(), w, http.StatusOK, toSessionDTO(session))
}

// Demote drops admin elevation while keeping any member session.
func (h *SessionHandler) Demote(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var req confirmRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log(r.Context(), "Demote", "error_kind", "bad_request").ErrorContext(r.Context(), "failed to decode demote request", "error", err)
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errBadRequestBody)
		return
	}

	logger := h.log(r.Context(), "Demote")
	if err := h.service.DemoteAdmin(r.Context(), req.Confirm); err != nil {
		logger.ErrorContext(r.Context(), "demotion failed", "error", err, "error_kind", application.ErrorKind(err))
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	logger.InfoContext(r.Context(), "admin demoted")
	h.responder.writeJSON(r.Context(), w, http.StatusOK, toSessionDTO(h.service.Session()))
}

// Logout clears the whole session.
func (h *SessionHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.service.Logout(r.Context())
	h.log(r.Context(), "Logout").InfoContext(r.Context(), "session cleared")
	h.responder.writeJSON(r.Context(), w, http.StatusNoContent, nil)
}
