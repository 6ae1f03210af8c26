package testfixtures

import (
	"fmt"
	"sync/atomic"

	"github.com/example/coworking-hub/internal/domain"
)

var (
	memberCounter       uint64
	announcementCounter uint64
	partnerCounter      uint64
)

// AdminPassword is the operator password wired into fixture auth services.
const AdminPassword = "test-admin-password"

// MemberOption configures a generated member profile.
type MemberOption func(*domain.MemberProfile)

// NewMemberFixture returns a deterministic member profile with optional
// overrides.
func NewMemberFixture(opts ...MemberOption) domain.MemberProfile {
	idx := atomic.AddUint64(&memberCounter, 1)
	member := domain.MemberProfile{
		ID:                 fmt.Sprintf("member-%03d", idx),
		Name:               fmt.Sprintf("Member %03d", idx),
		Password:           fmt.Sprintf("pass-%03d", idx),
		PettyCashBalance:   100,
		MeetingPointsTotal: 60,
		MeetingPointsUsed:  10,
		ContractDate:       "2026-12-31",
	}
	for _, opt := range opts {
		opt(&member)
	}
	return member
}

// WithPassword overrides the member password.
func WithPassword(password string) MemberOption {
	return func(m *domain.MemberProfile) { m.Password = password }
}

// WithBalances overrides the member balance fields.
func WithBalances(pettyCash, pointsTotal, pointsUsed int) MemberOption {
	return func(m *domain.MemberProfile) {
		m.PettyCashBalance = pettyCash
		m.MeetingPointsTotal = pointsTotal
		m.MeetingPointsUsed = pointsUsed
	}
}

// AnnouncementOption configures a generated announcement.
type AnnouncementOption func(*domain.Announcement)

// NewAnnouncementFixture returns a deterministic announcement with optional
// overrides. The date defaults to the reference day, so it is not expired
// relative to a ReferenceTime clock.
func NewAnnouncementFixture(opts ...AnnouncementOption) domain.Announcement {
	idx := atomic.AddUint64(&announcementCounter, 1)
	ann := domain.Announcement{
		ID:      fmt.Sprintf("announcement-%03d", idx),
		Title:   fmt.Sprintf("Announcement %03d", idx),
		Date:    ReferenceTime().Format("2006-01-02"),
		Type:    domain.AnnouncementInfo,
		Details: fmt.Sprintf("details for announcement %03d", idx),
	}
	for _, opt := range opts {
		opt(&ann)
	}
	return ann
}

// WithDate overrides the announcement date.
func WithDate(date string) AnnouncementOption {
	return func(a *domain.Announcement) { a.Date = date }
}

// NewPartnerFixture returns a deterministic business partner.
func NewPartnerFixture() domain.BusinessPartner {
	idx := atomic.AddUint64(&partnerCounter, 1)
	return domain.BusinessPartner{
		ID:          fmt.Sprintf("partner-%03d", idx),
		Name:        fmt.Sprintf("Partner %03d", idx),
		Category:    "餐飲",
		Description: fmt.Sprintf("description for partner %03d", idx),
		LogoColor:   domain.PartnerSwatches[0],
	}
}
