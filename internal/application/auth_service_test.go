package application

import (
	"context"
	"errors"
	"testing"

	"github.com/example/coworking-hub/internal/domain"
	"github.com/example/coworking-hub/internal/store"
)

const testAdminPassword = "admin-secret"

func newAuthFixture() (*store.Store, *AuthService) {
	st := store.New()
	return st, NewAuthService(st, testAdminPassword)
}

func TestAuthServiceMemberLogin(t *testing.T) {
	st, svc := newAuthFixture()
	seed := st.Members()
	if len(seed) == 0 {
		t.Fatal("seeded store has no members")
	}

	member, err := svc.MemberLogin(context.Background(), seed[0].Password)
	if err != nil {
		t.Fatalf("MemberLogin returned error: %v", err)
	}
	if member.ID != seed[0].ID {
		t.Fatalf("expected member %q, got %q", seed[0].ID, member.ID)
	}

	session := st.Session()
	if !session.MemberLoggedIn || session.Admin {
		t.Fatalf("unexpected session flags: %+v", session)
	}
	if session.CurrentUser == nil || session.CurrentUser.ID != seed[0].ID {
		t.Fatalf("session user not synced: %+v", session.CurrentUser)
	}
}

func TestAuthServiceMemberLoginRejectsBadCredentials(t *testing.T) {
	tests := []struct {
		name     string
		password string
	}{
		{name: "empty password", password: ""},
		{name: "unknown password", password: "no-such-password"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			st, svc := newAuthFixture()
			if _, err := svc.MemberLogin(context.Background(), tc.password); !errors.Is(err, ErrInvalidCredentials) {
				t.Fatalf("expected ErrInvalidCredentials, got %v", err)
			}
			if session := st.Session(); session.MemberLoggedIn || session.CurrentUser != nil {
				t.Fatalf("failed login must not touch the session: %+v", session)
			}
		})
	}
}

func TestAuthServiceAdminLoginSynthesizesOperatorProfile(t *testing.T) {
	st, svc := newAuthFixture()

	session, err := svc.AdminLogin(context.Background(), testAdminPassword)
	if err != nil {
		t.Fatalf("AdminLogin returned error: %v", err)
	}
	if !session.Admin {
		t.Fatal("expected admin session")
	}
	if !session.MemberLoggedIn {
		t.Fatal("synthesized operator session must count as logged in")
	}
	if session.CurrentUser == nil {
		t.Fatal("expected synthesized operator profile")
	}
	if session.CurrentUser.ID != domain.AdminMemberID {
		t.Fatalf("expected operator id %q, got %q", domain.AdminMemberID, session.CurrentUser.ID)
	}
	if session.CurrentUser.ContractDate != domain.AdminContractDate {
		t.Fatalf("expected contract date %q, got %q", domain.AdminContractDate, session.CurrentUser.ContractDate)
	}
	if got := st.Session(); !got.Admin {
		t.Fatal("store session not elevated")
	}
}

func TestAuthServiceAdminLoginKeepsMemberProfile(t *testing.T) {
	st, svc := newAuthFixture()
	seed := st.Members()

	if _, err := svc.MemberLogin(context.Background(), seed[0].Password); err != nil {
		t.Fatalf("MemberLogin returned error: %v", err)
	}
	session, err := svc.AdminLogin(context.Background(), testAdminPassword)
	if err != nil {
		t.Fatalf("AdminLogin returned error: %v", err)
	}

	if !session.Admin || !session.MemberLoggedIn {
		t.Fatalf("expected elevated member session, got %+v", session)
	}
	if session.CurrentUser == nil || session.CurrentUser.ID != seed[0].ID {
		t.Fatalf("member profile must survive elevation: %+v", session.CurrentUser)
	}
}

func TestAuthServiceAdminLoginRejectsBadSecret(t *testing.T) {
	tests := []struct {
		name       string
		configured string
		supplied   string
	}{
		{name: "wrong password", configured: testAdminPassword, supplied: "nope"},
		{name: "empty supplied", configured: testAdminPassword, supplied: ""},
		{name: "empty configured", configured: "", supplied: ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			st := store.New()
			svc := NewAuthService(st, tc.configured)
			if _, err := svc.AdminLogin(context.Background(), tc.supplied); !errors.Is(err, ErrInvalidCredentials) {
				t.Fatalf("expected ErrInvalidCredentials, got %v", err)
			}
			if st.Session().Admin {
				t.Fatal("failed elevation must not set the admin flag")
			}
		})
	}
}

func TestAuthServiceDemoteAdmin(t *testing.T) {
	st, svc := newAuthFixture()
	seed := st.Members()

	if err := svc.DemoteAdmin(context.Background(), false); err != nil {
		t.Fatalf("demoting a non-admin session must be a no-op, got %v", err)
	}

	if _, err := svc.MemberLogin(context.Background(), seed[0].Password); err != nil {
		t.Fatalf("MemberLogin returned error: %v", err)
	}
	if _, err := svc.AdminLogin(context.Background(), testAdminPassword); err != nil {
		t.Fatalf("AdminLogin returned error: %v", err)
	}

	if err := svc.DemoteAdmin(context.Background(), false); !errors.Is(err, ErrConfirmationRequired) {
		t.Fatalf("expected ErrConfirmationRequired, got %v", err)
	}
	if !st.Session().Admin {
		t.Fatal("unconfirmed demotion must not change the session")
	}

	if err := svc.DemoteAdmin(context.Background(), true); err != nil {
		t.Fatalf("DemoteAdmin returned error: %v", err)
	}
	session := st.Session()
	if session.Admin {
		t.Fatal("expected admin flag cleared")
	}
	if !session.MemberLoggedIn || session.CurrentUser == nil || session.CurrentUser.ID != seed[0].ID {
		t.Fatalf("member session must survive demotion: %+v", session)
	}
}

func TestAuthServiceLogoutDropsEverything(t *testing.T) {
	st, svc := newAuthFixture()

	if _, err := svc.AdminLogin(context.Background(), testAdminPassword); err != nil {
		t.Fatalf("AdminLogin returned error: %v", err)
	}
	svc.Logout(context.Background())

	session := st.Session()
	if session.Admin || session.MemberLoggedIn || session.CurrentUser != nil {
		t.Fatalf("expected cleared session, got %+v", session)
	}
}
