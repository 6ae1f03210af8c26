package application

import (
	"context"
	"errors"
	"testing"

	"github.com/example/coworking-hub/internal/domain"
	"github.com/example/coworking-hub/internal/store"
)

func TestMemberServiceListRequiresAdmin(t *testing.T) {
	st := store.New()
	svc := NewMemberService(st, NewGate(st))

	if _, err := svc.List(context.Background()); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}

	st.SetAdmin(true)
	members, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(members) == 0 {
		t.Fatal("expected seeded members")
	}
}

func TestMemberServiceReplaceClampsBalances(t *testing.T) {
	st := newAdminStore()
	svc := NewMemberService(st, NewGate(st))

	err := svc.Replace(context.Background(), []domain.MemberProfile{
		{ID: "m-1", Name: "甲", Password: "p1", PettyCashBalance: 2500, MeetingPointsTotal: 500, MeetingPointsUsed: -5},
		{ID: "m-2", Name: "乙", Password: "p2", PettyCashBalance: -10, MeetingPointsTotal: -1, MeetingPointsUsed: 130},
	})
	if err != nil {
		t.Fatalf("Replace returned error: %v", err)
	}

	members := st.Members()
	if len(members) != 2 {
		t.Fatalf("expected 2 members, got %d", len(members))
	}
	first := members[0]
	if first.PettyCashBalance != 1000 || first.MeetingPointsTotal != 120 || first.MeetingPointsUsed != 0 {
		t.Fatalf("unexpected clamped record: %+v", first)
	}
	second := members[1]
	if second.PettyCashBalance != 0 || second.MeetingPointsTotal != 0 {
		t.Fatalf("unexpected clamped record: %+v", second)
	}
	// Usage above the allotment is preserved, remaining goes negative.
	if second.MeetingPointsUsed != 130 {
		t.Fatalf("used points must not be capped at the total, got %d", second.MeetingPointsUsed)
	}
	if second.MeetingPointsRemaining() != -130 {
		t.Fatalf("expected negative remaining, got %d", second.MeetingPointsRemaining())
	}
}

func TestMemberServiceReplaceValidation(t *testing.T) {
	st := newAdminStore()
	svc := NewMemberService(st, NewGate(st))

	err := svc.Replace(context.Background(), []domain.MemberProfile{
		{ID: "", Name: "甲"},
		{ID: "m-2", Name: ""},
	})
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if _, ok := vErr.FieldErrors["members[0].id"]; !ok {
		t.Fatalf("expected id error, got %v", vErr.FieldErrors)
	}
	if _, ok := vErr.FieldErrors["members[1].name"]; !ok {
		t.Fatalf("expected name error, got %v", vErr.FieldErrors)
	}
	if len(st.Members()) != 0 {
		t.Fatal("invalid replace must not mutate")
	}
}

func TestMemberServiceReplaceRequiresAdmin(t *testing.T) {
	st := store.New()
	svc := NewMemberService(st, NewGate(st))

	err := svc.Replace(context.Background(), []domain.MemberProfile{{ID: "m-1", Name: "甲"}})
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestMemberServicePettyCash(t *testing.T) {
	st := store.New()
	svc := NewMemberService(st, NewGate(st))

	// Anonymous sessions have no balance to show.
	if _, err := svc.PettyCash(context.Background()); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}

	// A member sees their own balance.
	member := st.Members()[0]
	st.SetSessionMember(&member)
	summary, err := svc.PettyCash(context.Background())
	if err != nil {
		t.Fatalf("PettyCash returned error: %v", err)
	}
	if summary.Aggregate {
		t.Fatal("member summary must not be the aggregate")
	}
	if summary.MemberName != member.Name || summary.Total != member.PettyCashBalance {
		t.Fatalf("unexpected member summary: %+v", summary)
	}

	// An admin sees the sum across the roster.
	st.SetAdmin(true)
	summary, err = svc.PettyCash(context.Background())
	if err != nil {
		t.Fatalf("PettyCash returned error: %v", err)
	}
	if !summary.Aggregate {
		t.Fatal("admin summary must be the aggregate")
	}
	wantTotal := 0
	for _, m := range st.Members() {
		wantTotal += m.PettyCashBalance
	}
	if summary.Total != wantTotal {
		t.Fatalf("expected aggregate %d, got %d", wantTotal, summary.Total)
	}
}
