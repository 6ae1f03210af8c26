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

// WikiService manages the knowledge base: listing with search and category
// filters for everyone, add and delete for administrators.
type WikiService struct {
	store       *store.Store
	gate        *Gate
	idGenerator func() string
	now         func() time.Time
	logger      *slog.Logger
}

// NewWikiService constructs a wiki service with the provided dependencies.
func NewWikiService(st *store.Store, gate *Gate, idGenerator func() string, now func() time.Time) *WikiService {
	return NewWikiServiceWithLogger(st, gate, idGenerator, now, nil)
}

// NewWikiServiceWithLogger constructs a wiki service with a specified logger.
func NewWikiServiceWithLogger(st *store.Store, gate *Gate, idGenerator func() string, now func() time.Time, logger *slog.Logger) *WikiService {
	if idGenerator == nil {
		idGenerator = func() string { return "" }
	}
	if now == nil {
		now = time.Now
	}
	return &WikiService{store: st, gate: gate, idGenerator: idGenerator, now: now, logger: defaultLogger(logger)}
}

func (s *WikiService) loggerWith(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	return serviceLogger(ctx, s.logger, "WikiService", operation, attrs...)
}

// List returns the knowledge-base entries matching the filter, newest first.
func (s *WikiService) List(ctx context.Context, filter WikiFilter) []domain.WikiItem {
	if s == nil || s.store == nil {
		return nil
	}

	all := s.store.WikiItems()
	search := strings.ToLower(strings.TrimSpace(filter.Search))

	matched := make([]domain.WikiItem, 0, len(all))
	for _, item := range all {
		if filter.Category != "" && item.Category != filter.Category {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(item.Title), search) &&
			!strings.Contains(strings.ToLower(item.Description), search) {
			continue
		}
		matched = append(matched, item)
	}

	s.loggerWith(ctx, "List", "result_count", len(matched)).DebugContext(ctx, "wiki items listed")
	return matched
}

// Add validates and stores a new knowledge-base entry for administrators.
// The upload date is stamped from the service clock.
func (s *WikiService) Add(ctx context.Context, input WikiItemInput) (item domain.WikiItem, err error) {
	if s == nil || s.store == nil {
		err = fmt.Errorf("WikiService is not configured")
		return
	}

	logger := s.loggerWith(ctx, "Add")
	defer func() {
		if err != nil {
			logger.ErrorContext(ctx, "failed to add wiki item", "error", err, "error_kind", ErrorKind(err))
			return
		}
		logger.With("wiki_id", item.ID).InfoContext(ctx, "wiki item added")
	}()

	if err = s.gate.RequireAdmin(); err != nil {
		return
	}

	vErr := validateWikiInput(input)
	if vErr.HasErrors() {
		err = vErr
		return
	}

	item = domain.WikiItem{
		ID:          s.idGenerator(),
		Title:       strings.TrimSpace(input.Title),
		Category:    input.Category,
		IconName:    input.IconName,
		Description: strings.TrimSpace(input.Description),
		ContentType: input.ContentType,
		UploadDate:  s.now().Format("2006-01-02"),
	}
	switch input.ContentType {
	case domain.ContentGuide:
		item.Instructions = append([]string(nil), input.Instructions...)
	case domain.ContentVideo, domain.ContentImage:
		item.MediaURL = strings.TrimSpace(input.MediaURL)
	}
	if item.IconName == "" {
		item.IconName = string(domain.ResolveWikiCategory(input.Category).Glyph)
	}

	s.store.AddWikiItem(item)
	return
}

// Delete removes a knowledge-base entry for administrators after an explicit
// confirmation.
func (s *WikiService) Delete(ctx context.Context, id string, confirm bool) error {
	if s == nil || s.store == nil {
		return fmt.Errorf("WikiService is not configured")
	}

	logger := s.loggerWith(ctx, "Delete", "wiki_id", id)

	if err := s.gate.RequireAdmin(); err != nil {
		logger.ErrorContext(ctx, "failed to delete wiki item", "error", err, "error_kind", ErrorKind(err))
		return err
	}
	if !confirm {
		return ErrConfirmationRequired
	}

	s.store.RemoveWikiItem(id)
	logger.InfoContext(ctx, "wiki item deleted")
	return nil
}

func validateWikiInput(input WikiItemInput) *ValidationError {
	vErr := &ValidationError{}

	if strings.TrimSpace(input.Title) == "" {
		vErr.add("title", "title is required")
	}
	switch input.Category {
	case domain.WikiFloorplan, domain.WikiEquipment, domain.WikiTransport, domain.WikiWifi, domain.WikiAccess, domain.WikiOther:
	default:
		vErr.add("category", "category is unknown")
	}
	switch input.ContentType {
	case domain.ContentGuide:
		if len(input.Instructions) == 0 {
			vErr.add("instructions", "at least one instruction is required")
		}
	case domain.ContentVideo, domain.ContentImage:
		if strings.TrimSpace(input.MediaURL) == "" {
			vErr.add("mediaUrl", "media url is required")
		}
	default:
		vErr.add("contentType", "content type is unknown")
	}

	return vErr
}
