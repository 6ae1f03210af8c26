package application

import (
	"context"
	"errors"
	"testing"

	"github.com/example/coworking-hub/internal/domain"
	"github.com/example/coworking-hub/internal/store"
)

func newOfficeFixture(t *testing.T) (*store.Store, *OfficeService) {
	t.Helper()
	st := newAdminStore()
	// Office types are update-only, so seed the category through a snapshot.
	st.Apply(domain.Snapshot{
		Version:   domain.SnapshotVersion,
		Timestamp: "2026-08-28T00:00:00Z",
		OfficeTypes: []domain.OfficeType{
			{ID: "soho", Title: "SOHO 辦公桌", Description: "原始描述", ImageURL: "old.jpg", Images: []string{"old.jpg"}},
		},
	})
	return st, NewOfficeService(st, NewGate(st))
}

func TestOfficeServiceUpdateKeepsTitle(t *testing.T) {
	st, svc := newOfficeFixture(t)

	updated, err := svc.Update(context.Background(), OfficeTypeInput{
		ID:          "soho",
		Description: "新的描述",
		Images:      []string{"a.jpg", "b.jpg"},
		CoverIndex:  1,
		Features:    []string{"獨立座位"},
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Title != "SOHO 辦公桌" {
		t.Fatalf("title must be carried from the stored record, got %q", updated.Title)
	}
	if updated.ImageURL != "b.jpg" {
		t.Fatalf("expected cover b.jpg, got %q", updated.ImageURL)
	}

	stored := st.OfficeTypes()
	if len(stored) != 1 || stored[0].Description != "新的描述" || stored[0].Title != "SOHO 辦公桌" {
		t.Fatalf("unexpected stored record: %+v", stored)
	}
}

func TestOfficeServiceUpdateUnknownIDIsSilent(t *testing.T) {
	st, svc := newOfficeFixture(t)

	_, err := svc.Update(context.Background(), OfficeTypeInput{
		ID:     "penthouse",
		Images: []string{"a.jpg"},
	})
	if err != nil {
		t.Fatalf("unknown id must not be an error, got %v", err)
	}

	stored := st.OfficeTypes()
	if len(stored) != 1 || stored[0].ID != "soho" {
		t.Fatalf("unknown id must not insert, got %+v", stored)
	}
}

func TestOfficeServiceUpdateValidation(t *testing.T) {
	tests := []struct {
		name  string
		input OfficeTypeInput
		field string
	}{
		{name: "missing id", input: OfficeTypeInput{Images: []string{"a.jpg"}}, field: "id"},
		{name: "no images", input: OfficeTypeInput{ID: "soho"}, field: "images"},
		{
			name:  "gallery over the cap",
			input: OfficeTypeInput{ID: "soho", Images: []string{"1", "2", "3", "4", "5", "6", "7"}},
			field: "images",
		},
		{
			name:  "cover outside gallery",
			input: OfficeTypeInput{ID: "soho", Images: []string{"a.jpg"}, CoverIndex: 3},
			field: "coverIndex",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, svc := newOfficeFixture(t)
			_, err := svc.Update(context.Background(), tc.input)
			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if _, ok := vErr.FieldErrors[tc.field]; !ok {
				t.Fatalf("expected error on field %q, got %v", tc.field, vErr.FieldErrors)
			}
		})
	}
}

func TestOfficeServiceUpdateRequiresAdmin(t *testing.T) {
	st := store.NewEmpty()
	svc := NewOfficeService(st, NewGate(st))

	_, err := svc.Update(context.Background(), OfficeTypeInput{ID: "soho", Images: []string{"a.jpg"}})
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestOfficeServiceDelete(t *testing.T) {
	st, svc := newOfficeFixture(t)

	if err := svc.Delete(context.Background(), "soho", false); !errors.Is(err, ErrConfirmationRequired) {
		t.Fatalf("expected ErrConfirmationRequired, got %v", err)
	}
	if err := svc.Delete(context.Background(), "soho", true); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if len(st.OfficeTypes()) != 0 {
		t.Fatal("expected office type removed")
	}
}
