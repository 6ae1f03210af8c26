package application

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/example/coworking-hub/internal/domain"
	"github.com/example/coworking-hub/internal/store"
)

const (
	maxPettyCashBalance   = 1000
	maxMeetingPointsTotal = 120
)

// MemberService manages the member roster. The roster is replaced wholesale
// by the admin editor; individual balances are clamped on the way in while
// meeting point usage is kept as supplied, even past the allotted total.
type MemberService struct {
	store  *store.Store
	gate   *Gate
	logger *slog.Logger
}

// NewMemberService constructs a member service with the provided
// dependencies.
func NewMemberService(st *store.Store, gate *Gate) *MemberService {
	return NewMemberServiceWithLogger(st, gate, nil)
}

// NewMemberServiceWithLogger constructs a member service with a specified
// logger.
func NewMemberServiceWithLogger(st *store.Store, gate *Gate, logger *slog.Logger) *MemberService {
	return &MemberService{store: st, gate: gate, logger: defaultLogger(logger)}
}

func (s *MemberService) loggerWith(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	return serviceLogger(ctx, s.logger, "MemberService", operation, attrs...)
}

// List returns the full roster, passwords included, for administrators.
func (s *MemberService) List(ctx context.Context) ([]domain.MemberProfile, error) {
	if s == nil || s.store == nil {
		return nil, fmt.Errorf("MemberService is not configured")
	}
	if err := s.gate.RequireAdmin(); err != nil {
		s.loggerWith(ctx, "List").ErrorContext(ctx, "failed to list members", "error", err, "error_kind", ErrorKind(err))
		return nil, err
	}
	return s.store.Members(), nil
}

// Replace swaps the whole roster for administrators. Each incoming record is
// normalized before it is stored: petty cash is clamped to [0, 1000], the
// meeting point allotment to [0, 120], and used points to a non-negative
// value. A logged-in member whose record survives is resynced to the new
// record; one whose record is gone is logged out.
func (s *MemberService) Replace(ctx context.Context, members []domain.MemberProfile) (err error) {
	if s == nil || s.store == nil {
		return fmt.Errorf("MemberService is not configured")
	}

	logger := s.loggerWith(ctx, "Replace", "member_count", len(members))
	defer func() {
		if err != nil {
			logger.ErrorContext(ctx, "failed to replace members", "error", err, "error_kind", ErrorKind(err))
			return
		}
		logger.InfoContext(ctx, "members replaced")
	}()

	if err = s.gate.RequireAdmin(); err != nil {
		return
	}

	vErr := &ValidationError{}
	normalized := make([]domain.MemberProfile, 0, len(members))
	for i, m := range members {
		if strings.TrimSpace(m.ID) == "" {
			vErr.add(fmt.Sprintf("members[%d].id", i), "id is required")
		}
		if strings.TrimSpace(m.Name) == "" {
			vErr.add(fmt.Sprintf("members[%d].name", i), "name is required")
		}
		normalized = append(normalized, normalizeMember(m))
	}
	if vErr.HasErrors() {
		err = vErr
		return
	}

	s.store.ReplaceMembers(normalized)
	return
}

// PettyCash reports the balance readout for the current session: the
// aggregate across every member for an administrator, the member's own
// balance for a member session. An anonymous caller gets ErrUnauthorized.
func (s *MemberService) PettyCash(ctx context.Context) (PettyCashSummary, error) {
	if s == nil || s.store == nil {
		return PettyCashSummary{}, fmt.Errorf("MemberService is not configured")
	}

	session := s.store.Session()
	switch {
	case session.Admin:
		total := 0
		for _, m := range s.store.Members() {
			total += m.PettyCashBalance
		}
		return PettyCashSummary{Total: total, Aggregate: true}, nil
	case session.MemberLoggedIn && session.CurrentUser != nil:
		return PettyCashSummary{
			MemberName: session.CurrentUser.Name,
			Total:      session.CurrentUser.PettyCashBalance,
		}, nil
	default:
		return PettyCashSummary{}, ErrUnauthorized
	}
}

func normalizeMember(m domain.MemberProfile) domain.MemberProfile {
	m.PettyCashBalance = clamp(m.PettyCashBalance, 0, maxPettyCashBalance)
	m.MeetingPointsTotal = clamp(m.MeetingPointsTotal, 0, maxMeetingPointsTotal)
	if m.MeetingPointsUsed < 0 {
		m.MeetingPointsUsed = 0
	}
	return m
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
