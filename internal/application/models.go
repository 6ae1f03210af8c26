package application

import "github.com/example/coworking-hub/internal/domain"

// WikiItemInput captures caller provided fields for a new knowledge-base
// entry. Wiki items are add-only; there is no edit input.
type WikiItemInput struct {
	Title        string
	Category     domain.WikiCategory
	IconName     string
	Description  string
	ContentType  domain.WikiContentType
	Instructions []string
	MediaURL     string
}

// WikiFilter narrows a wiki listing by free-text search and category.
// CategoryAll (the empty string) matches every category.
type WikiFilter struct {
	Search   string
	Category domain.WikiCategory
}

// AnnouncementInput captures caller provided announcement fields. An empty ID
// requests creation; a known ID replaces the stored record wholesale.
type AnnouncementInput struct {
	ID      string
	Title   string
	Date    string
	Type    domain.AnnouncementType
	Details string
	Link    string
}

// AnnouncementView pairs an announcement with its derived expiry state.
type AnnouncementView struct {
	domain.Announcement
	Expired bool `json:"expired"`
}

// ClearExpiredResult reports the outcome of a clear-expired request. When the
// operation is still awaiting confirmation, Count carries the number of
// announcements that would be removed.
type ClearExpiredResult struct {
	Count int
}

// SpaceInput captures caller provided fields for a new bookable space. The
// cover image is selected out of the gallery by index.
type SpaceInput struct {
	BranchID    domain.BranchID
	Name        string
	Description string
	Capacity    string
	Images      []string
	CoverIndex  int
	VideoURL    string
	Features    []string
}

// PartnerInput captures caller provided partner fields. LogoColor is not an
// input: it is assigned from the swatch palette at creation and preserved on
// edit.
type PartnerInput struct {
	ID          string
	Name        string
	Category    string
	Description string
	Website     string
	LogoURL     string
}

// OfficeTypeInput captures the editable subset of an office type. The title
// is fixed at seed time and cannot be supplied here.
type OfficeTypeInput struct {
	ID          string
	Description string
	Images      []string
	CoverIndex  int
	VideoURL    string
	Features    []string
}

// PettyCashSummary is the member-services balance readout: an admin sees the
// aggregate across all real members, a member sees their own balance.
type PettyCashSummary struct {
	MemberName string `json:"memberName,omitempty"`
	Total      int    `json:"total"`
	Aggregate  bool   `json:"aggregate"`
}

// ExportResult carries an encoded snapshot and the download filename built
// from the export date.
type ExportResult struct {
	Filename string
	Data     []byte
}

// RestorePreview reports the metadata of a parsed snapshot so the caller can
// show the destructive-overwrite warning before confirming.
type RestorePreview struct {
	Version   string `json:"version"`
	Timestamp string `json:"timestamp"`
}
