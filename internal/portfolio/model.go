package portfolio

import (
	"html/template"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// BadgeVariant selects the colour of a tag badge.
type BadgeVariant string

const (
	BadgePrimary   BadgeVariant = "primary"
	BadgeSuccess   BadgeVariant = "success"
	BadgeInfo      BadgeVariant = "info"
	BadgeDark      BadgeVariant = "dark"
	BadgeSecondary BadgeVariant = "secondary"
	BadgeWarning   BadgeVariant = "warning"
)

// Valid reports whether v is one of the styled variants.
func (v BadgeVariant) Valid() bool {
	switch v {
	case BadgePrimary, BadgeSuccess, BadgeInfo, BadgeDark, BadgeSecondary, BadgeWarning:
		return true
	}
	return false
}

// Tag is a badge on a card. Tags render in slice order, left to right.
type Tag struct {
	Label   string       `yaml:"label"`
	Variant BadgeVariant `yaml:"variant"`
}

// CardContent describes a project or certification card. Image is a path
// relative to the assets directory and is read when the card is rendered.
type CardContent struct {
	Title         string `yaml:"title"`
	Image         string `yaml:"image"`
	Tags          []Tag  `yaml:"tags"`
	Description   string `yaml:"description"`
	PrimaryLink   string `yaml:"primary_link"`
	SecondaryLink string `yaml:"secondary_link"`
}

// SkillItem is one bullet of a skill card.
type SkillItem struct {
	Label  string `yaml:"label"`
	Detail string `yaml:"detail"`
}

// SkillGroup is the content of a skill card.
type SkillGroup struct {
	Title string      `yaml:"title"`
	Items []SkillItem `yaml:"items"`
}

// Hero is the banner at the top of the home section.
type Hero struct {
	Name    string `yaml:"name"`
	Role    string `yaml:"role"`
	Tagline string `yaml:"tagline"`
}

// About is the two-region profile section: an image beside the bio.
type About struct {
	Image      string
	Bio        template.HTML
	FocusIntro string
	Focus      []template.HTML
	Caption    string
}

// ContactMethod is a plain contact line such as an email address.
type ContactMethod struct {
	Icon string `yaml:"icon"`
	Text string `yaml:"text"`
}

// SocialLink is an outbound icon link in the contact footer.
type SocialLink struct {
	Label string `yaml:"label"`
	Icon  string `yaml:"icon"`
	URL   string `yaml:"url"`
}

// Contact is the footer banner.
type Contact struct {
	Heading string          `yaml:"heading"`
	Methods []ContactMethod `yaml:"methods"`
	Social  []SocialLink    `yaml:"social"`
}

// Headings holds the visible heading of each titled section.
type Headings struct {
	About          string `yaml:"about"`
	Projects       string `yaml:"projects"`
	Skills         string `yaml:"skills"`
	Certifications string `yaml:"certifications"`
}

// Content is everything the page shows, independent of layout.
type Content struct {
	Title          string        `yaml:"title"`
	Headings       Headings      `yaml:"headings"`
	Hero           Hero          `yaml:"hero"`
	About          About         `yaml:"-"`
	Projects       []CardContent `yaml:"projects"`
	Skills         []SkillGroup  `yaml:"skills"`
	Certifications []CardContent `yaml:"certifications"`
	Contact        Contact       `yaml:"contact"`
}

// CardRow is a fixed-width row of card slots. A nil slot stays empty but
// keeps its column.
type CardRow struct {
	Columns int
	Slots   []Card
}

// Cards returns the populated slots in order.
func (r *CardRow) Cards() []Card {
	var cards []Card
	for _, c := range r.Slots {
		if c != nil {
			cards = append(cards, c)
		}
	}
	return cards
}

// Section is one anchor-addressable region of the page. Exactly one of
// Hero, About, Row and Contact is set.
type Section struct {
	ID      string
	Heading string
	InNav   bool

	Hero    *Hero
	About   *About
	Row     *CardRow
	Contact *Contact
}

// NavLink is an entry of the top navigation bar.
type NavLink struct {
	Label  string
	Anchor string
}

// Href returns the in-page link target.
func (l NavLink) Href() string {
	return "#" + l.Anchor
}

// PageModel is the composed page. It is built fresh for every render.
type PageModel struct {
	Title    string
	Sections []Section
}

// Nav lists the navigation links in section order.
func (p PageModel) Nav() []NavLink {
	caser := cases.Title(language.English)
	var links []NavLink
	for _, s := range p.Sections {
		if s.InNav {
			links = append(links, NavLink{Label: caser.String(s.ID), Anchor: s.ID})
		}
	}
	return links
}

// Section returns the section with the given anchor id.
func (p PageModel) Section(id string) (Section, bool) {
	for _, s := range p.Sections {
		if s.ID == id {
			return s, true
		}
	}
	return Section{}, false
}
