// Package domain defines the entity records managed by the coworking hub
// together with the closed reference catalogs (branches, amenities, wiki
// categories) they resolve against. JSON field names follow the backup wire
// format so a snapshot marshals directly to the portable document.
package domain

// BranchID identifies a physical coworking location. The set of branches is
// fixed reference data; it is never mutated at runtime.
type BranchID string

const (
	BranchMinquan  BranchID = "minquan"
	BranchSiwei    BranchID = "siwei"
	BranchYancheng BranchID = "yancheng"
	BranchMinlun   BranchID = "minlun"
)

// Branch describes a physical coworking location.
type Branch struct {
	ID      BranchID `json:"id"`
	Name    string   `json:"name"`
	Address string   `json:"address"`
	MRT     string   `json:"mrt"`
	Image   string   `json:"image"`
}

// LocationSpace is a bookable room or area within a branch.
type LocationSpace struct {
	ID          string   `json:"id"`
	BranchID    BranchID `json:"branchId"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Capacity    string   `json:"capacity,omitempty"`
	ImageURL    string   `json:"imageUrl"`
	Images      []string `json:"images"`
	VideoURL    string   `json:"videoUrl,omitempty"`
	Features    []string `json:"features,omitempty"`
}

// OfficeType is a category of leasable office, not a specific room. Its title
// is fixed at seed time; only description, media, and features are editable.
type OfficeType struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	ImageURL    string   `json:"imageUrl"`
	Images      []string `json:"images"`
	VideoURL    string   `json:"videoUrl,omitempty"`
	Features    []string `json:"features,omitempty"`
}

// WikiCategory classifies a knowledge-base entry.
type WikiCategory string

const (
	WikiFloorplan WikiCategory = "floorplan"
	WikiEquipment WikiCategory = "equipment"
	WikiTransport WikiCategory = "transport"
	WikiWifi      WikiCategory = "wifi"
	WikiAccess    WikiCategory = "access"
	WikiOther     WikiCategory = "other"
)

// WikiContentType selects which payload of a wiki item is active.
type WikiContentType string

const (
	ContentGuide WikiContentType = "guide"
	ContentVideo WikiContentType = "video"
	ContentImage WikiContentType = "image"
)

// WikiItem is a how-to or reference entry in the internal knowledge base.
// Exactly one of Instructions or MediaURL is semantically active depending on
// ContentType; the inactive field is carried but ignored.
type WikiItem struct {
	ID           string          `json:"id"`
	Title        string          `json:"title"`
	Category     WikiCategory    `json:"category"`
	IconName     string          `json:"iconName"`
	Description  string          `json:"description"`
	ContentType  WikiContentType `json:"contentType"`
	Instructions []string        `json:"instructions,omitempty"`
	MediaURL     string          `json:"mediaUrl,omitempty"`
	UploadDate   string          `json:"uploadDate,omitempty"`
}

// AnnouncementType classifies the urgency of an announcement.
type AnnouncementType string

const (
	AnnouncementAlert AnnouncementType = "alert"
	AnnouncementInfo  AnnouncementType = "info"
	AnnouncementEvent AnnouncementType = "event"
)

// Announcement is an operator notice with an ISO-8601 activity date.
type Announcement struct {
	ID      string           `json:"id"`
	Title   string           `json:"title"`
	Date    string           `json:"date"`
	Type    AnnouncementType `json:"type"`
	Details string           `json:"details,omitempty"`
	Link    string           `json:"link,omitempty"`
}

// Expired reports whether the announcement's activity date lies strictly
// before the supplied reference date. Both values are ISO-8601 calendar dates,
// so lexical comparison is calendar comparison. Equal dates are not expired.
func (a Announcement) Expired(today string) bool {
	return a.Date < today
}

// BusinessPartner is a listed partner company. When LogoURL is empty the
// rendered identity is LogoColor plus the first character of Name; LogoColor
// is assigned once at creation and preserved across edits.
type BusinessPartner struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Website     string `json:"website,omitempty"`
	LogoColor   string `json:"logoColor"`
	LogoURL     string `json:"logoUrl,omitempty"`
}

// AdminMemberID is the reserved profile id synthesized for an operator session
// that was not preceded by a member login. It is never part of the persisted
// members collection.
const AdminMemberID = "admin"

// AdminContractDate is the sentinel contract-date string carried by the
// synthesized operator profile.
const AdminContractDate = "永久有效"

// MemberProfile is a client company profile with login secret, petty-cash
// balance, and meeting-room hour quota. MeetingPointsUsed is not capped by
// MeetingPointsTotal; the remaining display may go negative.
type MemberProfile struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	Password           string `json:"password"`
	PettyCashBalance   int    `json:"pettyCashBalance"`
	MeetingPointsTotal int    `json:"meetingPointsTotal"`
	MeetingPointsUsed  int    `json:"meetingPointsUsed"`
	ContractDate       string `json:"contractDate"`
}

// MeetingPointsRemaining returns total minus used without clamping.
func (m MemberProfile) MeetingPointsRemaining() int {
	return m.MeetingPointsTotal - m.MeetingPointsUsed
}

// SnapshotVersion is the schema-version tag written to exported snapshots.
const SnapshotVersion = "1.1"

// Snapshot is the single unit of backup export and import: full copies of all
// six mutable collections plus metadata. On import, each collection is applied
// independently and only when present in the parsed document.
type Snapshot struct {
	Version          string            `json:"version"`
	Timestamp        string            `json:"timestamp"`
	WikiItems        []WikiItem        `json:"wikiItems"`
	Announcements    []Announcement    `json:"announcements"`
	LocationSpaces   []LocationSpace   `json:"locationSpaces"`
	BusinessPartners []BusinessPartner `json:"businessPartners"`
	OfficeTypes      []OfficeType      `json:"officeTypes"`
	Members          []MemberProfile   `json:"members"`
}

// FoodSpot is a nearby eating option shown on the meal map. Reference data.
type FoodSpot struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Type       string `json:"type"`
	Distance   string `json:"distance"`
	PriceLevel int    `json:"priceLevel"`
}
