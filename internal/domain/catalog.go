package domain

// Glyph identifies one of a closed set of presentation symbols. Catalog
// entries carry a glyph id instead of an open-ended icon string; unknown ids
// resolve to GlyphUnknown rather than failing.
type Glyph string

const (
	GlyphWifi       Glyph = "Wifi"
	GlyphProjector  Glyph = "Projector"
	GlyphTv         Glyph = "Tv"
	GlyphWhiteboard Glyph = "Presentation"
	GlyphMic        Glyph = "Mic"
	GlyphSpeaker    Glyph = "Speaker"
	GlyphAC         Glyph = "Wind"
	GlyphPower      Glyph = "Zap"
	GlyphCoffee     Glyph = "Coffee"
	GlyphMap        Glyph = "Map"
	GlyphMonitor    Glyph = "Monitor"
	GlyphCar        Glyph = "Car"
	GlyphKey        Glyph = "KeyRound"
	GlyphHelp       Glyph = "HelpCircle"
	GlyphPrinter    Glyph = "Printer"
	GlyphVideo      Glyph = "MonitorPlay"
	GlyphUnknown    Glyph = "HelpCircle"
)

// Amenity is a catalog entry describing one bookable-space feature.
type Amenity struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Glyph Glyph  `json:"iconName"`
}

// Amenities is the fixed amenity catalog that space feature ids resolve
// against.
var Amenities = []Amenity{
	{ID: "wifi", Label: "Wi-Fi", Glyph: GlyphWifi},
	{ID: "projector", Label: "投影機", Glyph: GlyphProjector},
	{ID: "tv", Label: "電視螢幕", Glyph: GlyphTv},
	{ID: "whiteboard", Label: "白板", Glyph: GlyphWhiteboard},
	{ID: "mic", Label: "麥克風", Glyph: GlyphMic},
	{ID: "speaker", Label: "音響", Glyph: GlyphSpeaker},
	{ID: "ac", Label: "空調", Glyph: GlyphAC},
	{ID: "power", Label: "插座", Glyph: GlyphPower},
	{ID: "coffee", Label: "茶水", Glyph: GlyphCoffee},
}

// ResolveAmenity maps a free-form feature id to its catalog entry. Unresolved
// ids yield a fallback entry labeled with the raw id and the unknown glyph,
// never an error.
func ResolveAmenity(id string) Amenity {
	for _, a := range Amenities {
		if a.ID == id {
			return a
		}
	}
	return Amenity{ID: id, Label: id, Glyph: GlyphUnknown}
}

// WikiCategoryInfo is a catalog entry describing one wiki category.
type WikiCategoryInfo struct {
	ID    WikiCategory `json:"id"`
	Label string       `json:"label"`
	Glyph Glyph        `json:"iconName"`
}

// WikiCategories is the fixed wiki category catalog.
var WikiCategories = []WikiCategoryInfo{
	{ID: WikiFloorplan, Label: "教室樓層平面圖", Glyph: GlyphMap},
	{ID: WikiEquipment, Label: "設備使用", Glyph: GlyphMonitor},
	{ID: WikiTransport, Label: "交通＆停車資訊", Glyph: GlyphCar},
	{ID: WikiWifi, Label: "Wi-Fi連線", Glyph: GlyphWifi},
	{ID: WikiAccess, Label: "門禁進出", Glyph: GlyphKey},
	{ID: WikiOther, Label: "一般其他", Glyph: GlyphHelp},
}

// ResolveWikiCategory maps a category id to its catalog entry, falling back to
// the "other" entry for unknown ids.
func ResolveWikiCategory(id WikiCategory) WikiCategoryInfo {
	for _, c := range WikiCategories {
		if c.ID == id {
			return c
		}
	}
	return WikiCategoryInfo{ID: id, Label: string(id), Glyph: GlyphUnknown}
}

// PartnerSwatches is the fixed palette of fallback logo swatches assigned to
// partners created without an uploaded logo.
var PartnerSwatches = []string{
	"bg-blue-500",
	"bg-pink-500",
	"bg-green-500",
	"bg-purple-500",
	"bg-orange-500",
	"bg-teal-500",
	"bg-red-500",
	"bg-indigo-500",
}
