package store

import (
	"github.com/example/coworking-hub/internal/domain"
)

// Snapshot copies every mutable collection into a portable document stamped
// with the schema version and the supplied timestamp. Session flags are not
// part of the snapshot.
func (s *Store) Snapshot(timestamp string) domain.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.Snapshot{
		Version:          domain.SnapshotVersion,
		Timestamp:        timestamp,
		WikiItems:        cloneWikiItems(s.state.wikiItems),
		Announcements:    cloneAnnouncements(s.state.announcements),
		LocationSpaces:   cloneSpaces(s.state.locationSpaces),
		BusinessPartners: clonePartners(s.state.businessPartners),
		OfficeTypes:      cloneOfficeTypes(s.state.officeTypes),
		Members:          cloneMembers(s.state.members),
	}
}

// Apply merges a parsed snapshot into the store field by field: each of the
// six collections is replaced only when present (non-nil) in the document, so a
// partial snapshot leaves the untouched collections exactly as they were.
// Session flags are never modified by a restore.
func (s *Store) Apply(snapshot domain.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if snapshot.WikiItems != nil {
		s.state.wikiItems = cloneWikiItems(snapshot.WikiItems)
	}
	if snapshot.Announcements != nil {
		s.state.announcements = cloneAnnouncements(snapshot.Announcements)
	}
	if snapshot.LocationSpaces != nil {
		s.state.locationSpaces = cloneSpaces(snapshot.LocationSpaces)
	}
	if snapshot.BusinessPartners != nil {
		s.state.businessPartners = clonePartners(snapshot.BusinessPartners)
	}
	if snapshot.OfficeTypes != nil {
		s.state.officeTypes = cloneOfficeTypes(snapshot.OfficeTypes)
	}
	if snapshot.Members != nil {
		s.state.members = cloneMembers(snapshot.Members)
	}
}
