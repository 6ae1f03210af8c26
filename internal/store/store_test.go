package store

import (
	"testing"

	"github.com/example/coworking-hub/internal/domain"
)

func announcementIDs(items []domain.Announcement) []string {
	ids := make([]string, 0, len(items))
	for _, a := range items {
		ids = append(ids, a.ID)
	}
	return ids
}

func equalIDs(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

func TestStore_WikiItemsAddOnly(t *testing.T) {
	t.Parallel()

	s := NewEmpty()
	s.AddWikiItem(domain.WikiItem{ID: "first", Title: "A"})
	s.AddWikiItem(domain.WikiItem{ID: "second", Title: "B"})

	items := s.WikiItems()
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].ID != "second" {
		t.Fatalf("expected newest item first, got %q", items[0].ID)
	}
}

func TestStore_RemoveAbsentIDIsNoOp(t *testing.T) {
	t.Parallel()

	s := NewEmpty()
	s.UpsertAnnouncement(domain.Announcement{ID: "a1"})
	s.UpsertAnnouncement(domain.Announcement{ID: "a2"})
	before := announcementIDs(s.Announcements())

	s.RemoveAnnouncement("missing")

	after := announcementIDs(s.Announcements())
	if !equalIDs(after, before) {
		t.Fatalf("expected collection unchanged, got %v want %v", after, before)
	}
}

func TestStore_UpsertAnnouncement(t *testing.T) {
	t.Parallel()

	t.Run("new id inserts at the front", func(t *testing.T) {
		s := NewEmpty()
		s.UpsertAnnouncement(domain.Announcement{ID: "old", Title: "old"})
		s.UpsertAnnouncement(domain.Announcement{ID: "new", Title: "new"})

		if got := announcementIDs(s.Announcements()); !equalIDs(got, []string{"new", "old"}) {
			t.Fatalf("unexpected order: %v", got)
		}
	})

	t.Run("existing id replaces in place", func(t *testing.T) {
		s := NewEmpty()
		s.UpsertAnnouncement(domain.Announcement{ID: "a", Title: "before", Details: "details"})
		s.UpsertAnnouncement(domain.Announcement{ID: "b"})
		s.UpsertAnnouncement(domain.Announcement{ID: "a", Title: "after"})

		items := s.Announcements()
		if !equalIDs(announcementIDs(items), []string{"b", "a"}) {
			t.Fatalf("unexpected order: %v", announcementIDs(items))
		}
		for _, a := range items {
			if a.ID == "a" {
				if a.Title != "after" {
					t.Fatalf("expected full replace, got title %q", a.Title)
				}
				if a.Details != "" {
					t.Fatal("expected old fields dropped, not merged")
				}
			}
		}
	})
}

func TestStore_UpsertBusinessPartnerInsertsAtEnd(t *testing.T) {
	t.Parallel()

	s := NewEmpty()
	s.UpsertBusinessPartner(domain.BusinessPartner{ID: "p1", Name: "one"})
	s.UpsertBusinessPartner(domain.BusinessPartner{ID: "p2", Name: "two"})

	partners := s.BusinessPartners()
	if len(partners) != 2 || partners[1].ID != "p2" {
		t.Fatalf("expected new partner appended, got %+v", partners)
	}

	s.UpsertBusinessPartner(domain.BusinessPartner{ID: "p1", Name: "renamed"})
	partners = s.BusinessPartners()
	if partners[0].Name != "renamed" {
		t.Fatalf("expected in-place replace, got %+v", partners[0])
	}
}

func TestStore_UpdateOfficeTypeSilentlyDropsUnknownID(t *testing.T) {
	t.Parallel()

	s := NewEmpty()
	s.Apply(domain.Snapshot{OfficeTypes: []domain.OfficeType{{ID: "soho", Title: "SOHO"}}})

	s.UpdateOfficeType(domain.OfficeType{ID: "ghost", Title: "Ghost"})

	types := s.OfficeTypes()
	if len(types) != 1 || types[0].ID != "soho" {
		t.Fatalf("expected unknown id dropped without insert, got %+v", types)
	}
}

func TestStore_RemoveExpiredAnnouncements(t *testing.T) {
	t.Parallel()

	s := NewEmpty()
	s.UpsertAnnouncement(domain.Announcement{ID: "future", Date: "2025-10-22"})
	s.UpsertAnnouncement(domain.Announcement{ID: "today", Date: "2023-10-26"})
	s.UpsertAnnouncement(domain.Announcement{ID: "past", Date: "2023-10-25"})

	removed := s.RemoveExpiredAnnouncements("2023-10-26")
	if removed != 1 {
		t.Fatalf("expected 1 removed, got %d", removed)
	}
	if got := announcementIDs(s.Announcements()); !equalIDs(got, []string{"today", "future"}) {
		t.Fatalf("unexpected survivors: %v", got)
	}
}

func TestStore_SetAdminSynthesizesOperatorProfile(t *testing.T) {
	t.Parallel()

	t.Run("from anonymous", func(t *testing.T) {
		s := NewEmpty()
		s.SetAdmin(true)

		sess := s.Session()
		if !sess.Admin || !sess.MemberLoggedIn {
			t.Fatalf("expected elevated session, got %+v", sess)
		}
		if sess.CurrentUser == nil || sess.CurrentUser.ID != domain.AdminMemberID {
			t.Fatalf("expected synthesized admin profile, got %+v", sess.CurrentUser)
		}
		if sess.CurrentUser.ContractDate != domain.AdminContractDate {
			t.Fatalf("expected sentinel contract date, got %q", sess.CurrentUser.ContractDate)
		}
	})

	t.Run("from member keeps the real member", func(t *testing.T) {
		s := NewEmpty()
		s.SetSessionMember(&domain.MemberProfile{ID: "m-001", Name: "雲端數位科技"})
		s.SetAdmin(true)

		sess := s.Session()
		if !sess.Admin {
			t.Fatal("expected admin flag set")
		}
		if sess.CurrentUser == nil || sess.CurrentUser.ID != "m-001" {
			t.Fatalf("expected existing member preserved, got %+v", sess.CurrentUser)
		}
	})

	t.Run("demotion keeps member session", func(t *testing.T) {
		s := NewEmpty()
		s.SetSessionMember(&domain.MemberProfile{ID: "m-001"})
		s.SetAdmin(true)
		s.SetAdmin(false)

		sess := s.Session()
		if sess.Admin {
			t.Fatal("expected admin flag cleared")
		}
		if !sess.MemberLoggedIn || sess.CurrentUser == nil {
			t.Fatalf("expected member session retained, got %+v", sess)
		}
	})
}

func TestStore_LogoutDropsAdminElevation(t *testing.T) {
	t.Parallel()

	s := NewEmpty()
	s.SetAdmin(true)
	s.Logout()

	sess := s.Session()
	if sess.Admin || sess.MemberLoggedIn || sess.CurrentUser != nil {
		t.Fatalf("expected empty session after logout, got %+v", sess)
	}
}

func TestStore_ReplaceMembers(t *testing.T) {
	t.Parallel()

	t.Run("resyncs current user from updated collection", func(t *testing.T) {
		s := NewEmpty()
		s.ReplaceMembers([]domain.MemberProfile{{ID: "m-001", Name: "before"}})
		s.SetSessionMember(&domain.MemberProfile{ID: "m-001", Name: "before"})

		s.ReplaceMembers([]domain.MemberProfile{{ID: "m-001", Name: "after", PettyCashBalance: 700}})

		sess := s.Session()
		if sess.CurrentUser == nil || sess.CurrentUser.Name != "after" || sess.CurrentUser.PettyCashBalance != 700 {
			t.Fatalf("expected session user resynced, got %+v", sess.CurrentUser)
		}
	})

	t.Run("logs out a removed member", func(t *testing.T) {
		s := NewEmpty()
		s.SetSessionMember(&domain.MemberProfile{ID: "m-001"})

		s.ReplaceMembers([]domain.MemberProfile{{ID: "m-002"}})

		if sess := s.Session(); sess.MemberLoggedIn || sess.CurrentUser != nil {
			t.Fatalf("expected logout for removed member, got %+v", sess)
		}
	})

	t.Run("synthesized admin survives member replacement", func(t *testing.T) {
		s := NewEmpty()
		s.SetAdmin(true)

		s.ReplaceMembers([]domain.MemberProfile{{ID: "m-002"}})

		sess := s.Session()
		if !sess.Admin || sess.CurrentUser == nil || sess.CurrentUser.ID != domain.AdminMemberID {
			t.Fatalf("expected admin session retained, got %+v", sess)
		}
	})
}

func TestStore_FindMemberByPassword(t *testing.T) {
	t.Parallel()

	s := NewEmpty()
	s.ReplaceMembers([]domain.MemberProfile{
		{ID: "m-001", Password: "abc"},
		{ID: "m-002", Password: "xyz"},
	})

	if m, ok := s.FindMemberByPassword("xyz"); !ok || m.ID != "m-002" {
		t.Fatalf("expected second member matched, got %+v ok=%v", m, ok)
	}
	if _, ok := s.FindMemberByPassword("qqq"); ok {
		t.Fatal("expected no match for unknown password")
	}
}

func TestStore_SnapshotApplyRoundTrip(t *testing.T) {
	t.Parallel()

	s := New()
	original := s.Snapshot("2023-10-26T12:00:00Z")

	s.UpsertAnnouncement(domain.Announcement{ID: "extra", Title: "added later"})
	s.RemoveWikiItem("printer-setup")

	s.Apply(original)

	restored := s.Snapshot("2023-10-27T00:00:00Z")
	if len(restored.Announcements) != len(original.Announcements) {
		t.Fatalf("announcements not restored: got %d want %d", len(restored.Announcements), len(original.Announcements))
	}
	if len(restored.WikiItems) != len(original.WikiItems) {
		t.Fatalf("wiki items not restored: got %d want %d", len(restored.WikiItems), len(original.WikiItems))
	}
	for i := range original.Announcements {
		if restored.Announcements[i] != original.Announcements[i] {
			t.Fatalf("announcement %d differs after round trip", i)
		}
	}
}

func TestStore_ApplyPartialSnapshot(t *testing.T) {
	t.Parallel()

	s := New()
	before := s.Snapshot("t")

	s.Apply(domain.Snapshot{Announcements: []domain.Announcement{}})

	after := s.Snapshot("t")
	if len(after.Announcements) != 0 {
		t.Fatalf("expected announcements cleared, got %d", len(after.Announcements))
	}
	if len(after.WikiItems) != len(before.WikiItems) ||
		len(after.LocationSpaces) != len(before.LocationSpaces) ||
		len(after.BusinessPartners) != len(before.BusinessPartners) ||
		len(after.OfficeTypes) != len(before.OfficeTypes) ||
		len(after.Members) != len(before.Members) {
		t.Fatal("expected all other collections untouched by partial snapshot")
	}
}

func TestStore_ReadsReturnCopies(t *testing.T) {
	t.Parallel()

	s := New()
	items := s.WikiItems()
	if len(items) == 0 || len(items[0].Instructions) == 0 {
		t.Skip("seed shape changed")
	}
	items[0].Instructions[0] = "mutated"

	fresh := s.WikiItems()
	if fresh[0].Instructions[0] == "mutated" {
		t.Fatal("expected stored state isolated from returned slices")
	}
}
