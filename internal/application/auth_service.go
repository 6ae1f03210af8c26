package application

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/example/coworking-hub/internal/domain"
	"github.com/example/coworking-hub/internal/store"
)

// AuthService coordinates the session state machine: member login by password
// lookup, admin elevation by shared secret, demotion, and logout. Credentials
// are compared in plaintext on purpose; this is a single-tenant trusted-client
// deployment and the mechanism is isolated here so it can be replaced without
// touching the store or the gated services.
type AuthService struct {
	store         *store.Store
	adminPassword string
	logger        *slog.Logger
}

// NewAuthService constructs an AuthService with the provided dependencies.
func NewAuthService(st *store.Store, adminPassword string) *AuthService {
	return NewAuthServiceWithLogger(st, adminPassword, nil)
}

// NewAuthServiceWithLogger constructs an AuthService with a specified logger.
func NewAuthServiceWithLogger(st *store.Store, adminPassword string, logger *slog.Logger) *AuthService {
	return &AuthService{store: st, adminPassword: adminPassword, logger: defaultLogger(logger)}
}

func (s *AuthService) loggerWith(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	return serviceLogger(ctx, s.logger, "AuthService", operation, attrs...)
}

// MemberLogin looks up the first member whose password equals the supplied
// value and makes them the session member. No match leaves the session
// unchanged.
func (s *AuthService) MemberLogin(ctx context.Context, password string) (member domain.MemberProfile, err error) {
	if s == nil || s.store == nil {
		err = fmt.Errorf("AuthService is not configured")
		return
	}

	logger := s.loggerWith(ctx, "MemberLogin")
	defer func() {
		if err != nil {
			logger.ErrorContext(ctx, "member login failed", "error", err, "error_kind", ErrorKind(err))
			return
		}
		logger.With("member_id", member.ID).InfoContext(ctx, "member logged in")
	}()

	if password == "" {
		err = ErrInvalidCredentials
		return
	}

	matched, ok := s.store.FindMemberByPassword(password)
	if !ok {
		err = ErrInvalidCredentials
		return
	}

	s.store.SetSessionMember(&matched)
	member = matched
	return
}

// AdminLogin compares the supplied password against the operator secret and
// elevates the session on success. When no member session is active, the
// reserved operator profile is synthesized as the current user.
func (s *AuthService) AdminLogin(ctx context.Context, password string) (session store.Session, err error) {
	if s == nil || s.store == nil {
		err = fmt.Errorf("AuthService is not configured")
		return
	}

	logger := s.loggerWith(ctx, "AdminLogin")
	defer func() {
		if err != nil {
			logger.ErrorContext(ctx, "admin login failed", "error", err, "error_kind", ErrorKind(err))
			return
		}
		logger.InfoContext(ctx, "admin elevated")
	}()

	if s.adminPassword == "" || password != s.adminPassword {
		err = ErrInvalidCredentials
		return
	}

	s.store.SetAdmin(true)
	session = s.store.Session()
	return
}

// DemoteAdmin turns the admin flag off while keeping any member session. The
// caller must confirm; without confirmation nothing changes.
func (s *AuthService) DemoteAdmin(ctx context.Context, confirm bool) error {
	if s == nil || s.store == nil {
		return fmt.Errorf("AuthService is not configured")
	}

	logger := s.loggerWith(ctx, "DemoteAdmin")

	if !s.store.Session().Admin {
		return nil
	}
	if !confirm {
		return ErrConfirmationRequired
	}

	s.store.SetAdmin(false)
	logger.InfoContext(ctx, "admin demoted")
	return nil
}

// Logout clears the member session; admin elevation always drops with it.
func (s *AuthService) Logout(ctx context.Context) {
	if s == nil || s.store == nil {
		return
	}
	s.store.Logout()
	s.loggerWith(ctx, "Logout").InfoContext(ctx, "session cleared")
}

// Session returns the current session flags.
func (s *AuthService) Session() store.Session {
	if s == nil || s.store == nil {
		return store.Session{}
	}
	return s.store.Session()
}
