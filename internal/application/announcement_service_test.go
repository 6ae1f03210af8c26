package application

import (
	"context"
	"errors"
	"testing"

	"github.com/example/coworking-hub/internal/domain"
	"github.com/example/coworking-hub/internal/store"
)

func newAnnouncementFixture(t *testing.T) (*store.Store, *AnnouncementService) {
	t.Helper()
	st := newAdminStore()
	return st, NewAnnouncementService(st, NewGate(st), sequenceIDs("ann"), fixedNow())
}

func TestAnnouncementServiceListDerivesExpiry(t *testing.T) {
	st, svc := newAnnouncementFixture(t)
	st.UpsertAnnouncement(domain.Announcement{ID: "past", Title: "p", Date: "2026-08-27", Type: domain.AnnouncementInfo})
	st.UpsertAnnouncement(domain.Announcement{ID: "today", Title: "t", Date: "2026-08-28", Type: domain.AnnouncementInfo})
	st.UpsertAnnouncement(domain.Announcement{ID: "future", Title: "f", Date: "2026-09-01", Type: domain.AnnouncementInfo})

	views := svc.List(context.Background())
	if len(views) != 3 {
		t.Fatalf("expected 3 announcements, got %d", len(views))
	}
	expired := map[string]bool{}
	for _, v := range views {
		expired[v.ID] = v.Expired
	}
	if !expired["past"] {
		t.Fatal("yesterday's announcement must be expired")
	}
	if expired["today"] {
		t.Fatal("today's announcement must not be expired")
	}
	if expired["future"] {
		t.Fatal("future announcement must not be expired")
	}
}

func TestAnnouncementServiceSaveCreatesAndReplaces(t *testing.T) {
	st, svc := newAnnouncementFixture(t)

	created, err := svc.Save(context.Background(), AnnouncementInput{
		Title:   "消防演習",
		Date:    "2026-09-15",
		Type:    domain.AnnouncementAlert,
		Details: "下午兩點全館疏散",
	})
	if err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if created.ID != "ann-1" {
		t.Fatalf("expected generated id, got %q", created.ID)
	}

	// A full replace: the details field disappears when the edit omits it.
	updated, err := svc.Save(context.Background(), AnnouncementInput{
		ID:    created.ID,
		Title: "消防演習改期",
		Date:  "2026-09-22",
		Type:  domain.AnnouncementAlert,
	})
	if err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	all := st.Announcements()
	if len(all) != 1 {
		t.Fatalf("expected a single record, got %d", len(all))
	}
	if all[0].Title != updated.Title || all[0].Details != "" {
		t.Fatalf("expected wholesale replacement, got %+v", all[0])
	}
}

func TestAnnouncementServiceSaveValidation(t *testing.T) {
	tests := []struct {
		name  string
		input AnnouncementInput
		field string
	}{
		{name: "missing title", input: AnnouncementInput{Date: "2026-09-01", Type: domain.AnnouncementInfo}, field: "title"},
		{name: "malformed date", input: AnnouncementInput{Title: "t", Date: "09/01/2026", Type: domain.AnnouncementInfo}, field: "date"},
		{name: "unknown type", input: AnnouncementInput{Title: "t", Date: "2026-09-01", Type: "urgent"}, field: "type"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, svc := newAnnouncementFixture(t)
			_, err := svc.Save(context.Background(), tc.input)
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

func TestAnnouncementServiceSaveRequiresAdmin(t *testing.T) {
	st := store.NewEmpty()
	svc := NewAnnouncementService(st, NewGate(st), sequenceIDs("ann"), fixedNow())

	_, err := svc.Save(context.Background(), AnnouncementInput{Title: "t", Date: "2026-09-01", Type: domain.AnnouncementInfo})
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestAnnouncementServiceClearExpired(t *testing.T) {
	st, svc := newAnnouncementFixture(t)
	st.UpsertAnnouncement(domain.Announcement{ID: "old-1", Title: "a", Date: "2026-01-01", Type: domain.AnnouncementInfo})
	st.UpsertAnnouncement(domain.Announcement{ID: "old-2", Title: "b", Date: "2026-08-27", Type: domain.AnnouncementInfo})
	st.UpsertAnnouncement(domain.Announcement{ID: "current", Title: "c", Date: "2026-08-28", Type: domain.AnnouncementInfo})

	result, err := svc.ClearExpired(context.Background(), false)
	if !errors.Is(err, ErrConfirmationRequired) {
		t.Fatalf("expected ErrConfirmationRequired, got %v", err)
	}
	if result.Count != 2 {
		t.Fatalf("expected prompt count 2, got %d", result.Count)
	}
	if len(st.Announcements()) != 3 {
		t.Fatal("unconfirmed clear must not mutate")
	}

	result, err = svc.ClearExpired(context.Background(), true)
	if err != nil {
		t.Fatalf("ClearExpired returned error: %v", err)
	}
	if result.Count != 2 {
		t.Fatalf("expected 2 removed, got %d", result.Count)
	}

	remaining := st.Announcements()
	if len(remaining) != 1 || remaining[0].ID != "current" {
		t.Fatalf("expected only the current announcement, got %+v", remaining)
	}
}

func TestAnnouncementServiceClearExpiredNothingToDo(t *testing.T) {
	st, svc := newAnnouncementFixture(t)
	st.UpsertAnnouncement(domain.Announcement{ID: "current", Title: "c", Date: "2026-08-28", Type: domain.AnnouncementInfo})

	result, err := svc.ClearExpired(context.Background(), false)
	if err != nil {
		t.Fatalf("expected no error when nothing is expired, got %v", err)
	}
	if result.Count != 0 {
		t.Fatalf("expected count 0, got %d", result.Count)
	}
	if len(st.Announcements()) != 1 {
		t.Fatal("nothing must be removed")
	}
}
