package portfolio

import "github.com/sudhirshivaram/portfolio/internal/assets"

// CardKind names a card variant; it is also the card's CSS modifier.
type CardKind string

const (
	KindProject       CardKind = "project"
	KindSkill         CardKind = "skill"
	KindCertification CardKind = "certification"
)

// Button labels per card kind.
const (
	caseStudyLabel      = "Case Study"
	sourceCodeLabel     = "Source Code"
	viewCredentialLabel = "View Credential"
)

// Card is implemented by every card kind. Each kind maps its content onto
// the shared cardLayout, so all cards render through the same template.
type Card interface {
	Kind() CardKind
	Title() string
	layout(load func(string) assets.Image) cardLayout
}

var (
	_ Card = ProjectCard{}
	_ Card = SkillCard{}
	_ Card = CertificationCard{}
)

// ActionLink is a button-styled link opening in a new tab.
type ActionLink struct {
	Label string
	URL   string
}

// cardLayout is the one structure every card is drawn from, in display
// order: image, title, tags, description, skill items, links.
type cardLayout struct {
	Kind        CardKind
	HasImage    bool
	Image       assets.Image
	Title       string
	Tags        []Tag
	Description string
	Items       []SkillItem
	Links       []ActionLink
}

// ProjectCard shows a project with case study and source code links.
type ProjectCard struct {
	Content CardContent
}

func (c ProjectCard) Kind() CardKind { return KindProject }
func (c ProjectCard) Title() string  { return c.Content.Title }

func (c ProjectCard) layout(load func(string) assets.Image) cardLayout {
	return cardLayout{
		Kind:        KindProject,
		HasImage:    true,
		Image:       load(c.Content.Image),
		Title:       c.Content.Title,
		Tags:        c.Content.Tags,
		Description: c.Content.Description,
		Links: []ActionLink{
			{Label: caseStudyLabel, URL: c.Content.PrimaryLink},
			{Label: sourceCodeLabel, URL: c.Content.SecondaryLink},
		},
	}
}

// CertificationCard shows a credential with a single verification link.
type CertificationCard struct {
	Content CardContent
}

func (c CertificationCard) Kind() CardKind { return KindCertification }
func (c CertificationCard) Title() string  { return c.Content.Title }

func (c CertificationCard) layout(load func(string) assets.Image) cardLayout {
	return cardLayout{
		Kind:        KindCertification,
		HasImage:    true,
		Image:       load(c.Content.Image),
		Title:       c.Content.Title,
		Tags:        c.Content.Tags,
		Description: c.Content.Description,
		Links: []ActionLink{
			{Label: viewCredentialLabel, URL: c.Content.PrimaryLink},
		},
	}
}

// SkillCard shows a titled list of skills. It has no image slot.
type SkillCard struct {
	Group SkillGroup
}

func (c SkillCard) Kind() CardKind { return KindSkill }
func (c SkillCard) Title() string  { return c.Group.Title }

func (c SkillCard) layout(func(string) assets.Image) cardLayout {
	return cardLayout{
		Kind:  KindSkill,
		Title: c.Group.Title,
		Items: c.Group.Items,
	}
}
