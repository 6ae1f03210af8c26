package application

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/example/coworking-hub/internal/domain"
	"github.com/example/coworking-hub/internal/store"
)

// AnnouncementService manages operator notices. Saving follows upsert
// semantics: a known id replaces the stored record, a new id inserts at the
// front of the feed. Expiry is derived at read time and never deletes records
// by itself; only the explicit clear-expired operation does.
type AnnouncementService struct {
	store       *store.Store
	gate        *Gate
	idGenerator func() string
	now         func() time.Time
	logger      *slog.Logger
}

// NewAnnouncementService constructs an announcement service with the provided
// dependencies.
func NewAnnouncementService(st *store.Store, gate *Gate, idGenerator func() string, now func() time.Time) *AnnouncementService {
	return NewAnnouncementServiceWithLogger(st, gate, idGenerator, now, nil)
}

// NewAnnouncementServiceWithLogger constructs an announcement service with a
// specified logger.
func NewAnnouncementServiceWithLogger(st *store.Store, gate *Gate, idGenerator func() string, now func() time.Time, logger *slog.Logger) *AnnouncementService {
	if idGenerator == nil {
		idGenerator = func() string { return "" }
	}
	if now == nil {
		now = time.Now
	}
	return &AnnouncementService{store: st, gate: gate, idGenerator: idGenerator, now: now, logger: defaultLogger(logger)}
}

func (s *AnnouncementService) loggerWith(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	return serviceLogger(ctx, s.logger, "AnnouncementService", operation, attrs...)
}

func (s *AnnouncementService) today() string {
	return s.now().Format("2006-01-02")
}

// List returns every announcement in feed order with its derived expiry
// state.
func (s *AnnouncementService) List(ctx context.Context) []AnnouncementView {
	if s == nil || s.store == nil {
		return nil
	}

	today := s.today()
	all := s.store.Announcements()
	views := make([]AnnouncementView, 0, len(all))
	for _, a := range all {
		views = append(views, AnnouncementView{Announcement: a, Expired: a.Expired(today)})
	}
	return views
}

// Save upserts an announcement for administrators. An empty input id requests
// creation with a generated id.
func (s *AnnouncementService) Save(ctx context.Context, input AnnouncementInput) (ann domain.Announcement, err error) {
	if s == nil || s.store == nil {
		err = fmt.Errorf("AnnouncementService is not configured")
		return
	}

	logger := s.loggerWith(ctx, "Save", "announcement_id", input.ID)
	defer func() {
		if err != nil {
			logger.ErrorContext(ctx, "failed to save announcement", "error", err, "error_kind", ErrorKind(err))
			return
		}
		logger.With("announcement_id", ann.ID).InfoContext(ctx, "announcement saved")
	}()

	if err = s.gate.RequireAdmin(); err != nil {
		return
	}

	vErr := validateAnnouncementInput(input)
	if vErr.HasErrors() {
		err = vErr
		return
	}

	ann = domain.Announcement{
		ID:      input.ID,
		Title:   strings.TrimSpace(input.Title),
		Date:    input.Date,
		Type:    input.Type,
		Details: strings.TrimSpace(input.Details),
		Link:    strings.TrimSpace(input.Link),
	}
	if ann.ID == "" {
		ann.ID = s.idGenerator()
	}

	s.store.UpsertAnnouncement(ann)
	return
}

// Delete removes one announcement for administrators after confirmation.
func (s *AnnouncementService) Delete(ctx context.Context, id string, confirm bool) error {
	if s == nil || s.store == nil {
		return fmt.Errorf("AnnouncementService is not configured")
	}

	logger := s.loggerWith(ctx, "Delete", "announcement_id", id)

	if err := s.gate.RequireAdmin(); err != nil {
		logger.ErrorContext(ctx, "failed to delete announcement", "error", err, "error_kind", ErrorKind(err))
		return err
	}
	if !confirm {
		return ErrConfirmationRequired
	}

	s.store.RemoveAnnouncement(id)
	logger.InfoContext(ctx, "announcement deleted")
	return nil
}

// ClearExpired removes every announcement dated strictly before today. The
// first, unconfirmed call reports how many would be removed (zero means there
// is nothing to do and no confirmation is requested); the confirmed call
// performs the removal.
func (s *AnnouncementService) ClearExpired(ctx context.Context, confirm bool) (result ClearExpiredResult, err error) {
	if s == nil || s.store == nil {
		err = fmt.Errorf("AnnouncementService is not configured")
		return
	}

	logger := s.loggerWith(ctx, "ClearExpired")
	defer func() {
		if err != nil {
			logger.ErrorContext(ctx, "failed to clear expired announcements", "error", err, "error_kind", ErrorKind(err))
		}
	}()

	if err = s.gate.RequireAdmin(); err != nil {
		return
	}

	today := s.today()
	expired := 0
	for _, a := range s.store.Announcements() {
		if a.Expired(today) {
			expired++
		}
	}
	result.Count = expired

	if expired == 0 {
		return
	}
	if !confirm {
		err = ErrConfirmationRequired
		return
	}

	result.Count = s.store.RemoveExpiredAnnouncements(today)
	logger.With("removed_count", result.Count).InfoContext(ctx, "expired announcements cleared")
	return
}

func validateAnnouncementInput(input AnnouncementInput) *ValidationError {
	vErr := &ValidationError{}

	if strings.TrimSpace(input.Title) == "" {
		vErr.add("title", "title is required")
	}
	if _, parseErr := time.Parse("2006-01-02", input.Date); parseErr != nil {
		vErr.add("date", "date must be an ISO calendar date")
	}
	switch input.Type {
	case domain.AnnouncementAlert, domain.AnnouncementInfo, domain.AnnouncementEvent:
	default:
		vErr.add("type", "type is unknown")
	}

	return vErr
}
