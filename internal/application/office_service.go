package application

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/example/coworking-hub/internal/domain"
	"github.com/example/coworking-hub/internal/store"
)

// maxOfficeGallery caps the number of gallery images accepted for one office
// category.
const maxOfficeGallery = 6

// OfficeService manages the leasable office categories. Categories are seeded
// and update-only: the title of each record is immutable and an update against
// an unknown id is silently dropped rather than creating a record.
type OfficeService struct {
	store  *store.Store
	gate   *Gate
	logger *slog.Logger
}

// NewOfficeService constructs an office service with the provided
// dependencies.
func NewOfficeService(st *store.Store, gate *Gate) *OfficeService {
	return NewOfficeServiceWithLogger(st, gate, nil)
}

// NewOfficeServiceWithLogger constructs an office service with a specified
// logger.
func NewOfficeServiceWithLogger(st *store.Store, gate *Gate, logger *slog.Logger) *OfficeService {
	return &OfficeService{store: st, gate: gate, logger: defaultLogger(logger)}
}

func (s *OfficeService) loggerWith(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	return serviceLogger(ctx, s.logger, "OfficeService", operation, attrs...)
}

// List returns every office category in stored order.
func (s *OfficeService) List(ctx context.Context) []domain.OfficeType {
	if s == nil || s.store == nil {
		return nil
	}
	return s.store.OfficeTypes()
}

// Update applies the editable fields of an office category for
// administrators. The stored title is carried over untouched. An unknown id
// leaves the collection unchanged and still reports success.
func (s *OfficeService) Update(ctx context.Context, input OfficeTypeInput) (officeType domain.OfficeType, err error) {
	if s == nil || s.store == nil {
		err = fmt.Errorf("OfficeService is not configured")
		return
	}

	logger := s.loggerWith(ctx, "Update", "office_type_id", input.ID)
	defer func() {
		if err != nil {
			logger.ErrorContext(ctx, "failed to update office type", "error", err, "error_kind", ErrorKind(err))
			return
		}
		logger.InfoContext(ctx, "office type updated")
	}()

	if err = s.gate.RequireAdmin(); err != nil {
		return
	}

	vErr := validateOfficeTypeInput(input)
	if vErr.HasErrors() {
		err = vErr
		return
	}

	existing, ok := s.store.FindOfficeType(input.ID)
	if !ok {
		officeType = domain.OfficeType{ID: input.ID}
		return
	}

	officeType = domain.OfficeType{
		ID:          input.ID,
		Title:       existing.Title,
		Description: strings.TrimSpace(input.Description),
		ImageURL:    input.Images[input.CoverIndex],
		Images:      append([]string(nil), input.Images...),
		VideoURL:    strings.TrimSpace(input.VideoURL),
		Features:    append([]string(nil), input.Features...),
	}

	s.store.UpdateOfficeType(officeType)
	return
}

// Delete removes an office category for administrators after confirmation.
func (s *OfficeService) Delete(ctx context.Context, id string, confirm bool) error {
	if s == nil || s.store == nil {
		return fmt.Errorf("OfficeService is not configured")
	}

	logger := s.loggerWith(ctx, "Delete", "office_type_id", id)

	if err := s.gate.RequireAdmin(); err != nil {
		logger.ErrorContext(ctx, "failed to delete office type", "error", err, "error_kind", ErrorKind(err))
		return err
	}
	if !confirm {
		return ErrConfirmationRequired
	}

	s.store.RemoveOfficeType(id)
	logger.InfoContext(ctx, "office type deleted")
	return nil
}

func validateOfficeTypeInput(input OfficeTypeInput) *ValidationError {
	vErr := &ValidationError{}

	if strings.TrimSpace(input.ID) == "" {
		vErr.add("id", "id is required")
	}
	if len(input.Images) == 0 {
		vErr.add("images", "at least one image is required")
	} else if len(input.Images) > maxOfficeGallery {
		vErr.add("images", "too many gallery images")
	} else if input.CoverIndex < 0 || input.CoverIndex >= len(input.Images) {
		vErr.add("coverIndex", "cover must reference a gallery image")
	}

	return vErr
}
