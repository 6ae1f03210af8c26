// Package store holds the single authoritative in-memory state of the
// coworking hub: the six mutable collections plus the session flags. All
// reads return deep copies and all mutations replace whole records, so no
// caller ever observes a partially applied update.
//
// The store performs no authorization itself; mutating operations are reached
// through the gate-wrapped services in the application package.
package store

import (
	"sync"

	"github.com/example/coworking-hub/internal/domain"
)

// Session captures who is currently logged in. Exactly one of {no current
// user, current user is a real member, current user is the synthesized admin
// profile} holds at any time, and Admin implies CurrentUser is non-nil.
type Session struct {
	CurrentUser    *domain.MemberProfile
	MemberLoggedIn bool
	Admin          bool
}

type state struct {
	wikiItems        []domain.WikiItem
	announcements    []domain.Announcement
	locationSpaces   []domain.LocationSpace
	businessPartners []domain.BusinessPartner
	officeTypes      []domain.OfficeType
	members          []domain.MemberProfile
	session          Session
}

// Store is the in-memory application state holder. A single instance is owned
// by the process and shared by reference; the mutex serializes access the way
// the single UI thread did in the original client.
type Store struct {
	mu    sync.RWMutex
	state state
}

// New returns a store initialized from the seed collections.
func New() *Store {
	return &Store{state: state{
		wikiItems:        domain.SeedWikiItems(),
		announcements:    domain.SeedAnnouncements(),
		locationSpaces:   domain.SeedSpaces(),
		businessPartners: domain.SeedPartners(),
		officeTypes:      domain.SeedOfficeTypes(),
		members:          domain.SeedMembers(),
	}}
}

// NewEmpty returns a store with no seeded data. Intended for tests.
func NewEmpty() *Store {
	return &Store{}
}

func cloneWikiItem(w domain.WikiItem) domain.WikiItem {
	cp := w
	cp.Instructions = append([]string(nil), w.Instructions...)
	return cp
}

func cloneSpace(s domain.LocationSpace) domain.LocationSpace {
	cp := s
	cp.Images = append([]string(nil), s.Images...)
	cp.Features = append([]string(nil), s.Features...)
	return cp
}

func cloneOfficeType(o domain.OfficeType) domain.OfficeType {
	cp := o
	cp.Images = append([]string(nil), o.Images...)
	cp.Features = append([]string(nil), o.Features...)
	return cp
}

func cloneWikiItems(items []domain.WikiItem) []domain.WikiItem {
	out := make([]domain.WikiItem, 0, len(items))
	for _, w := range items {
		out = append(out, cloneWikiItem(w))
	}
	return out
}

func cloneAnnouncements(items []domain.Announcement) []domain.Announcement {
	out := make([]domain.Announcement, 0, len(items))
	out = append(out, items...)
	return out
}

func cloneSpaces(items []domain.LocationSpace) []domain.LocationSpace {
	out := make([]domain.LocationSpace, 0, len(items))
	for _, s := range items {
		out = append(out, cloneSpace(s))
	}
	return out
}

func clonePartners(items []domain.BusinessPartner) []domain.BusinessPartner {
	out := make([]domain.BusinessPartner, 0, len(items))
	out = append(out, items...)
	return out
}

func cloneOfficeTypes(items []domain.OfficeType) []domain.OfficeType {
	out := make([]domain.OfficeType, 0, len(items))
	for _, o := range items {
		out = append(out, cloneOfficeType(o))
	}
	return out
}

func cloneMembers(items []domain.MemberProfile) []domain.MemberProfile {
	out := make([]domain.MemberProfile, 0, len(items))
	out = append(out, items...)
	return out
}

// WikiItems returns a copy of the knowledge-base collection in stored order.
func (s *Store) WikiItems() []domain.WikiItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneWikiItems(s.state.wikiItems)
}

// AddWikiItem prepends a new knowledge-base entry. Wiki items are add-only;
// there is no in-place edit. The caller supplies a fresh id; the store does
// not enforce uniqueness.
func (s *Store) AddWikiItem(item domain.WikiItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.wikiItems = append([]domain.WikiItem{cloneWikiItem(item)}, s.state.wikiItems...)
}

// RemoveWikiItem filters the entry with the given id out of the collection.
// Removing an absent id is a no-op.
func (s *Store) RemoveWikiItem(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.wikiItems = removeByID(s.state.wikiItems, func(w domain.WikiItem) string { return w.ID }, id)
}

// Announcements returns a copy of the announcements in stored order.
func (s *Store) Announcements() []domain.Announcement {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneAnnouncements(s.state.announcements)
}

// UpsertAnnouncement replaces the announcement with a matching id in place,
// or inserts the record at the front when the id is new.
func (s *Store) UpsertAnnouncement(item domain.Announcement) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, a := range s.state.announcements {
		if a.ID == item.ID {
			s.state.announcements[i] = item
			return
		}
	}
	s.state.announcements = append([]domain.Announcement{item}, s.state.announcements...)
}

// RemoveAnnouncement filters the announcement with the given id. No-op when
// absent.
func (s *Store) RemoveAnnouncement(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.announcements = removeByID(s.state.announcements, func(a domain.Announcement) string { return a.ID }, id)
}

// RemoveExpiredAnnouncements drops every announcement dated strictly before
// today and returns how many were removed. Announcements dated today stay.
func (s *Store) RemoveExpiredAnnouncements(today string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := make([]domain.Announcement, 0, len(s.state.announcements))
	removed := 0
	for _, a := range s.state.announcements {
		if a.Expired(today) {
			removed++
			continue
		}
		kept = append(kept, a)
	}
	s.state.announcements = kept
	return removed
}

// LocationSpaces returns a copy of the bookable spaces in stored order.
func (s *Store) LocationSpaces() []domain.LocationSpace {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneSpaces(s.state.locationSpaces)
}

// AddLocationSpace appends a new space. Spaces are add-only at creation and
// never edited in place.
func (s *Store) AddLocationSpace(space domain.LocationSpace) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.locationSpaces = append(s.state.locationSpaces, cloneSpace(space))
}

// RemoveLocationSpace filters the space with the given id. No-op when absent.
func (s *Store) RemoveLocationSpace(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.locationSpaces = removeByID(s.state.locationSpaces, func(sp domain.LocationSpace) string { return sp.ID }, id)
}

// BusinessPartners returns a copy of the partner listings in stored order.
func (s *Store) BusinessPartners() []domain.BusinessPartner {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clonePartners(s.state.businessPartners)
}

// UpsertBusinessPartner replaces the partner with a matching id in place, or
// appends the record at the end when the id is new.
func (s *Store) UpsertBusinessPartner(partner domain.BusinessPartner) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, p := range s.state.businessPartners {
		if p.ID == partner.ID {
			s.state.businessPartners[i] = partner
			return
		}
	}
	s.state.businessPartners = append(s.state.businessPartners, partner)
}

// FindBusinessPartner returns the partner with the given id.
func (s *Store) FindBusinessPartner(id string) (domain.BusinessPartner, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.state.businessPartners {
		if p.ID == id {
			return p, true
		}
	}
	return domain.BusinessPartner{}, false
}

// RemoveBusinessPartner filters the partner with the given id. No-op when
// absent.
func (s *Store) RemoveBusinessPartner(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.businessPartners = removeByID(s.state.businessPartners, func(p domain.BusinessPartner) string { return p.ID }, id)
}

// OfficeTypes returns a copy of the office categories in stored order.
func (s *Store) OfficeTypes() []domain.OfficeType {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneOfficeTypes(s.state.officeTypes)
}

// FindOfficeType returns the office type with the given id.
func (s *Store) FindOfficeType(id string) (domain.OfficeType, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, o := range s.state.officeTypes {
		if o.ID == id {
			return cloneOfficeType(o), true
		}
	}
	return domain.OfficeType{}, false
}

// UpdateOfficeType replaces the office type with a matching id. Office types
// are update-only post-seed: an unknown id silently drops the write instead
// of inserting.
func (s *Store) UpdateOfficeType(officeType domain.OfficeType) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, o := range s.state.officeTypes {
		if o.ID == officeType.ID {
			s.state.officeTypes[i] = cloneOfficeType(officeType)
			return
		}
	}
}

// RemoveOfficeType filters the office type with the given id. No-op when
// absent.
func (s *Store) RemoveOfficeType(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.officeTypes = removeByID(s.state.officeTypes, func(o domain.OfficeType) string { return o.ID }, id)
}

// Members returns a copy of the member profiles in stored order.
func (s *Store) Members() []domain.MemberProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneMembers(s.state.members)
}

// FindMemberByPassword returns the first member whose password equals the
// supplied value. Password alone is the lookup key; there is no username
// component.
func (s *Store) FindMemberByPassword(password string) (domain.MemberProfile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, m := range s.state.members {
		if m.Password == password {
			return m, true
		}
	}
	return domain.MemberProfile{}, false
}

// ReplaceMembers swaps the members collection wholesale and resynchronizes
// the session: a logged-in member picks up their edited profile, and a member
// whose profile was removed is logged out entirely. The synthesized admin
// profile is exempt from the removal rule since it never lives in the
// collection.
func (s *Store) ReplaceMembers(members []domain.MemberProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.members = cloneMembers(members)

	current := s.state.session.CurrentUser
	if current == nil {
		return
	}
	for _, m := range s.state.members {
		if m.ID == current.ID {
			updated := m
			s.state.session.CurrentUser = &updated
			return
		}
	}
	if current.ID != domain.AdminMemberID {
		s.state.session = Session{}
	}
}

// Session returns a copy of the current session flags.
func (s *Store) Session() Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneSession(s.state.session)
}

func cloneSession(sess Session) Session {
	cp := sess
	if sess.CurrentUser != nil {
		user := *sess.CurrentUser
		cp.CurrentUser = &user
	}
	return cp
}

// SetSessionMember sets the current user and the member-logged-in flag
// together. Passing nil clears both and drops any admin elevation.
func (s *Store) SetSessionMember(member *domain.MemberProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if member == nil {
		s.state.session = Session{}
		return
	}
	user := *member
	s.state.session.CurrentUser = &user
	s.state.session.MemberLoggedIn = true
}

// SetAdmin toggles the admin flag. Turning it on without an active member
// session synthesizes the reserved operator profile as the current user.
// Turning it off leaves any member session intact.
func (s *Store) SetAdmin(admin bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.session.Admin = admin
	if admin && !s.state.session.MemberLoggedIn {
		s.state.session.CurrentUser = &domain.MemberProfile{
			ID:           domain.AdminMemberID,
			Name:         "系統管理員",
			ContractDate: domain.AdminContractDate,
		}
		s.state.session.MemberLoggedIn = true
	}
}

// Logout clears the member session; admin elevation always drops with it.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.session = Session{}
}

func removeByID[T any](items []T, id func(T) string, target string) []T {
	kept := make([]T, 0, len(items))
	for _, item := range items {
		if id(item) == target {
			continue
		}
		kept = append(kept, item)
	}
	return kept
}
