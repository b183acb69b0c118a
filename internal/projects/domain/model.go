package domain

// Project is one trek/tour brochure owned by a user. Field names in JSON
// match the documents the web editor has always written to Firestore, so
// existing data decodes unchanged.
type Project struct {
	ID        string `json:"id"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt,omitempty"`

	Header        Header         `json:"header"`
	Brand         Brand          `json:"brand"`
	Hero          Hero           `json:"hero"`
	Overview      Overview       `json:"overview"`
	Leader        Leader         `json:"leader"`
	Itinerary     []ItineraryDay `json:"itinerary"`
	Inclusions    []Inclusion    `json:"inclusions"`
	ThingsToCarry []CarryItem    `json:"thingsToCarry"`
	FAQs          []FAQ          `json:"faqs"`
	Footer        Footer         `json:"footer"`
	Styles        SectionStyles  `json:"styles,omitempty"`
}

// ProjectCreate is a Project without the system-assigned fields.
type ProjectCreate struct {
	Header        Header         `json:"header"`
	Brand         Brand          `json:"brand"`
	Hero          Hero           `json:"hero"`
	Overview      Overview       `json:"overview"`
	Leader        Leader         `json:"leader"`
	Itinerary     []ItineraryDay `json:"itinerary"`
	Inclusions    []Inclusion    `json:"inclusions"`
	ThingsToCarry []CarryItem    `json:"thingsToCarry"`
	FAQs          []FAQ          `json:"faqs"`
	Footer        Footer         `json:"footer"`
	Styles        SectionStyles  `json:"styles,omitempty"`
}

// Project builds the full entity from the create payload. System fields are
// left for the persistence layer to fill in.
func (c ProjectCreate) Project() Project {
	return Project{
		Header:        c.Header,
		Brand:         c.Brand,
		Hero:          c.Hero,
		Overview:      c.Overview,
		Leader:        c.Leader,
		Itinerary:     c.Itinerary,
		Inclusions:    c.Inclusions,
		ThingsToCarry: c.ThingsToCarry,
		FAQs:          c.FAQs,
		Footer:        c.Footer,
		Styles:        c.Styles,
	}
}

// Platform identifies a social link target.
type Platform string

const (
	PlatformInstagram Platform = "instagram"
	PlatformFacebook  Platform = "facebook"
	PlatformLinkedIn  Platform = "linkedin"
	PlatformTwitter   Platform = "twitter"
	PlatformYouTube   Platform = "youtube"
	PlatformWebsite   Platform = "website"
	PlatformOther     Platform = "other"
)

type SocialLink struct {
	Platform Platform `json:"platform"`
	URL      string   `json:"url"`
	Alias    string   `json:"alias,omitempty"`
}

// Header is the brochure's contact block. Instagram and Facebook are legacy
// flat fields from older records; migration lifts them into Links but keeps
// them in place so old clients still render.
type Header struct {
	Phone   string       `json:"phone"`
	Email   string       `json:"email"`
	Website string       `json:"website"`
	Links   []SocialLink `json:"links,omitempty"`

	Instagram string `json:"instagram,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
}

type Brand struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Logo     string `json:"logo,omitempty"`
}

type Stats struct {
	Duration   string `json:"duration,omitempty"`
	Altitude   string `json:"altitude,omitempty"`
	Difficulty string `json:"difficulty,omitempty"`
}

// Hero is the banner section. Image is the legacy single-image field;
// Images (up to three) supersedes it.
type Hero struct {
	Badge    string   `json:"badge,omitempty"`
	Title    string   `json:"title"`
	Location string   `json:"location,omitempty"`
	Image    string   `json:"image,omitempty"`
	Images   []string `json:"images,omitempty"`
	Stats    Stats    `json:"stats"`
}

type Overview struct {
	Text string `json:"text"`
}

// Leader is the trek leader card. Visible defaults to false: legacy records
// without the field must not show the card.
type Leader struct {
	Name    string `json:"name"`
	Role    string `json:"role"`
	Image   string `json:"image,omitempty"`
	Visible bool   `json:"visible,omitempty"`
}

// ItineraryDay carries the same legacy Image / current Images pair as Hero.
type ItineraryDay struct {
	Day         string   `json:"day"`
	Badge       string   `json:"badge,omitempty"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Image       string   `json:"image,omitempty"`
	Images      []string `json:"images,omitempty"`
}

type Inclusion struct {
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type CarryItem struct {
	Icon  string `json:"icon"`
	Label string `json:"label"`
}

type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type Footer struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Copyright   string `json:"copyright"`
}

// Section names, used as SectionStyles keys.
const (
	SectionHeader        = "header"
	SectionHero          = "hero"
	SectionOverview      = "overview"
	SectionLeader        = "leader"
	SectionItinerary     = "itinerary"
	SectionInclusions    = "inclusions"
	SectionThingsToCarry = "thingsToCarry"
	SectionFAQs          = "faqs"
	SectionFooter        = "footer"
)

// SectionStyle is one section's color override. Empty fields mean the
// component default applies.
type SectionStyle struct {
	TextColor       string `json:"textColor,omitempty"`
	BackgroundColor string `json:"backgroundColor,omitempty"`
}

// SectionStyles maps section name to its style override.
type SectionStyles map[string]SectionStyle
