package application

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"

	"github.com/example/coworking-hub/internal/domain"
	"github.com/example/coworking-hub/internal/store"
)

// RandomSwatch picks a palette entry uniformly. Production wiring injects it
// as the pickSwatch dependency; tests inject deterministic pickers instead.
func RandomSwatch(palette []string) string {
	if len(palette) == 0 {
		return ""
	}
	return palette[rand.IntN(len(palette))]
}

// PartnerService manages the business partner directory. Saving is an upsert:
// an existing identifier replaces the stored record in place and a fresh one
// appends to the directory.
type PartnerService struct {
	store       *store.Store
	gate        *Gate
	idGenerator func() string
	pickSwatch  func(palette []string) string
	logger      *slog.Logger
}

// NewPartnerService constructs a partner service with the provided
// dependencies. pickSwatch selects the logo color for new partners from the
// shared palette; passing nil defaults to the first palette entry.
func NewPartnerService(st *store.Store, gate *Gate, idGenerator func() string, pickSwatch func(palette []string) string) *PartnerService {
	return NewPartnerServiceWithLogger(st, gate, idGenerator, pickSwatch, nil)
}

// NewPartnerServiceWithLogger constructs a partner service with a specified
// logger.
func NewPartnerServiceWithLogger(st *store.Store, gate *Gate, idGenerator func() string, pickSwatch func(palette []string) string, logger *slog.Logger) *PartnerService {
	if idGenerator == nil {
		idGenerator = func() string { return "" }
	}
	if pickSwatch == nil {
		pickSwatch = func(palette []string) string {
			if len(palette) == 0 {
				return ""
			}
			return palette[0]
		}
	}
	return &PartnerService{store: st, gate: gate, idGenerator: idGenerator, pickSwatch: pickSwatch, logger: defaultLogger(logger)}
}

func (s *PartnerService) loggerWith(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	return serviceLogger(ctx, s.logger, "PartnerService", operation, attrs...)
}

// List returns every partner in directory order.
func (s *PartnerService) List(ctx context.Context) []domain.BusinessPartner {
	if s == nil || s.store == nil {
		return nil
	}
	return s.store.BusinessPartners()
}

// Save upserts a partner for administrators. The logo color is assigned once
// when the partner is created; edits keep whatever color the record already
// carries.
func (s *PartnerService) Save(ctx context.Context, input PartnerInput) (partner domain.BusinessPartner, err error) {
	if s == nil || s.store == nil {
		err = fmt.Errorf("PartnerService is not configured")
		return
	}

	logger := s.loggerWith(ctx, "Save", "partner_id", input.ID)
	defer func() {
		if err != nil {
			logger.ErrorContext(ctx, "failed to save partner", "error", err, "error_kind", ErrorKind(err))
			return
		}
		logger.With("partner_id", partner.ID).InfoContext(ctx, "partner saved")
	}()

	if err = s.gate.RequireAdmin(); err != nil {
		return
	}

	vErr := validatePartnerInput(input)
	if vErr.HasErrors() {
		err = vErr
		return
	}

	partner = domain.BusinessPartner{
		ID:          input.ID,
		Name:        strings.TrimSpace(input.Name),
		Category:    strings.TrimSpace(input.Category),
		Description: strings.TrimSpace(input.Description),
		Website:     strings.TrimSpace(input.Website),
		LogoURL:     strings.TrimSpace(input.LogoURL),
	}

	if partner.ID == "" {
		partner.ID = s.idGenerator()
		partner.LogoColor = s.pickSwatch(domain.PartnerSwatches)
	} else if existing, ok := s.store.FindBusinessPartner(partner.ID); ok {
		partner.LogoColor = existing.LogoColor
	} else {
		partner.LogoColor = s.pickSwatch(domain.PartnerSwatches)
	}

	s.store.UpsertBusinessPartner(partner)
	return
}

// Delete removes a partner for administrators after confirmation.
func (s *PartnerService) Delete(ctx context.Context, id string, confirm bool) error {
	if s == nil || s.store == nil {
		return fmt.Errorf("PartnerService is not configured")
	}

	logger := s.loggerWith(ctx, "Delete", "partner_id", id)

	if err := s.gate.RequireAdmin(); err != nil {
		logger.ErrorContext(ctx, "failed to delete partner", "error", err, "error_kind", ErrorKind(err))
		return err
	}
	if !confirm {
		return ErrConfirmationRequired
	}

	s.store.RemoveBusinessPartner(id)
	logger.InfoContext(ctx, "partner deleted")
	return nil
}

func validatePartnerInput(input PartnerInput) *ValidationError {
	vErr := &ValidationError{}

	if strings.TrimSpace(input.Name) == "" {
		vErr.add("name", "name is required")
	}
	if strings.TrimSpace(input.Category) == "" {
		vErr.add("category", "category is required")
	}

	return vErr
}
