package application

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/example/coworking-hub/internal/domain"
	"github.com/example/coworking-hub/internal/store"
)

// maxSpaceGallery caps the number of gallery images accepted for one space.
const maxSpaceGallery = 4

// SpaceService manages bookable spaces. Spaces are add-only: the management
// flow creates and deletes them but never edits a stored record in place.
// Branch reference data is served from here too, since the two are always
// consumed together.
type SpaceService struct {
	store       *store.Store
	gate        *Gate
	idGenerator func() string
	logger      *slog.Logger
}

// NewSpaceService constructs a space service with the provided dependencies.
func NewSpaceService(st *store.Store, gate *Gate, idGenerator func() string) *SpaceService {
	return NewSpaceServiceWithLogger(st, gate, idGenerator, nil)
}

// NewSpaceServiceWithLogger constructs a space service with a specified
// logger.
func NewSpaceServiceWithLogger(st *store.Store, gate *Gate, idGenerator func() string, logger *slog.Logger) *SpaceService {
	if idGenerator == nil {
		idGenerator = func() string { return "" }
	}
	return &SpaceService{store: st, gate: gate, idGenerator: idGenerator, logger: defaultLogger(logger)}
}

func (s *SpaceService) loggerWith(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	return serviceLogger(ctx, s.logger, "SpaceService", operation, attrs...)
}

// Branches returns the fixed branch reference data.
func (s *SpaceService) Branches() []domain.Branch {
	return domain.SeedBranches()
}

// List returns the spaces of one branch in stored order, or every space when
// branchID is empty.
func (s *SpaceService) List(ctx context.Context, branchID domain.BranchID) []domain.LocationSpace {
	if s == nil || s.store == nil {
		return nil
	}

	all := s.store.LocationSpaces()
	if branchID == "" {
		return all
	}
	matched := make([]domain.LocationSpace, 0, len(all))
	for _, sp := range all {
		if sp.BranchID == branchID {
			matched = append(matched, sp)
		}
	}
	return matched
}

// Add validates and stores a new space for administrators. The cover image is
// taken from the gallery by index, so it is a member of the gallery by
// construction.
func (s *SpaceService) Add(ctx context.Context, input SpaceInput) (space domain.LocationSpace, err error) {
	if s == nil || s.store == nil {
		err = fmt.Errorf("SpaceService is not configured")
		return
	}

	logger := s.loggerWith(ctx, "Add", "branch_id", input.BranchID)
	defer func() {
		if err != nil {
			logger.ErrorContext(ctx, "failed to add space", "error", err, "error_kind", ErrorKind(err))
			return
		}
		logger.With("space_id", space.ID).InfoContext(ctx, "space added")
	}()

	if err = s.gate.RequireAdmin(); err != nil {
		return
	}

	vErr := validateSpaceInput(input)
	if vErr.HasErrors() {
		err = vErr
		return
	}

	space = domain.LocationSpace{
		ID:          s.idGenerator(),
		BranchID:    input.BranchID,
		Name:        strings.TrimSpace(input.Name),
		Description: strings.TrimSpace(input.Description),
		Capacity:    strings.TrimSpace(input.Capacity),
		ImageURL:    input.Images[input.CoverIndex],
		Images:      append([]string(nil), input.Images...),
		VideoURL:    strings.TrimSpace(input.VideoURL),
		Features:    append([]string(nil), input.Features...),
	}

	s.store.AddLocationSpace(space)
	return
}

// Delete removes a space for administrators after confirmation.
func (s *SpaceService) Delete(ctx context.Context, id string, confirm bool) error {
	if s == nil || s.store == nil {
		return fmt.Errorf("SpaceService is not configured")
	}

	logger := s.loggerWith(ctx, "Delete", "space_id", id)

	if err := s.gate.RequireAdmin(); err != nil {
		logger.ErrorContext(ctx, "failed to delete space", "error", err, "error_kind", ErrorKind(err))
		return err
	}
	if !confirm {
		return ErrConfirmationRequired
	}

	s.store.RemoveLocationSpace(id)
	logger.InfoContext(ctx, "space deleted")
	return nil
}

func validateSpaceInput(input SpaceInput) *ValidationError {
	vErr := &ValidationError{}

	switch input.BranchID {
	case domain.BranchMinquan, domain.BranchSiwei, domain.BranchYancheng, domain.BranchMinlun:
	default:
		vErr.add("branchId", "branch is unknown")
	}
	if strings.TrimSpace(input.Name) == "" {
		vErr.add("name", "name is required")
	}
	if len(input.Images) == 0 {
		vErr.add("images", "at least one image is required")
	} else if len(input.Images) > maxSpaceGallery {
		vErr.add("images", "too many gallery images")
	} else if input.CoverIndex < 0 || input.CoverIndex >= len(input.Images) {
		vErr.add("coverIndex", "cover must reference a gallery image")
	}

	return vErr
}
