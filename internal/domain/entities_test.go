package domain

import "testing"

func TestAnnouncement_Expired(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		date    string
		today   string
		expired bool
	}{
		{name: "date before today", date: "2023-10-25", today: "2023-10-26", expired: true},
		{name: "date equals today", date: "2023-10-25", today: "2023-10-25", expired: false},
		{name: "date after today", date: "2025-10-22", today: "2023-10-26", expired: false},
		{name: "year boundary", date: "2023-12-31", today: "2024-01-01", expired: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ann := Announcement{ID: "a", Date: tc.date}
			if got := ann.Expired(tc.today); got != tc.expired {
				t.Fatalf("Expired(%q) with date %q = %v, want %v", tc.today, tc.date, got, tc.expired)
			}
		})
	}
}

func TestMemberProfile_MeetingPointsRemaining(t *testing.T) {
	t.Parallel()

	member := MemberProfile{MeetingPointsTotal: 120, MeetingPointsUsed: 131}
	if got := member.MeetingPointsRemaining(); got != -11 {
		t.Fatalf("expected remaining to go negative without clamping, got %d", got)
	}
}

func TestResolveAmenity(t *testing.T) {
	t.Parallel()

	t.Run("known id resolves to catalog entry", func(t *testing.T) {
		a := ResolveAmenity("projector")
		if a.Label != "投影機" || a.Glyph != GlyphProjector {
			t.Fatalf("unexpected amenity: %+v", a)
		}
	})

	t.Run("unknown id falls back without error", func(t *testing.T) {
		a := ResolveAmenity("hot-tub")
		if a.ID != "hot-tub" || a.Label != "hot-tub" || a.Glyph != GlyphUnknown {
			t.Fatalf("unexpected fallback amenity: %+v", a)
		}
	})
}

func TestResolveWikiCategory(t *testing.T) {
	t.Parallel()

	if c := ResolveWikiCategory(WikiAccess); c.Label != "門禁進出" {
		t.Fatalf("unexpected category: %+v", c)
	}
	if c := ResolveWikiCategory(WikiCategory("mystery")); c.Glyph != GlyphUnknown {
		t.Fatalf("expected unknown glyph fallback, got %+v", c)
	}
}

func TestSeedCollectionsAreFresh(t *testing.T) {
	t.Parallel()

	first := SeedAnnouncements()
	first[0].Title = "mutated"
	if second := SeedAnnouncements(); second[0].Title == "mutated" {
		t.Fatal("seed collections must not share backing arrays between calls")
	}
}
