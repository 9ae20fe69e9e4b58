package portfolio

import (
	"errors"
	"fmt"
)

// ErrMalformedContent marks content that does not fit the fixed page layout.
var ErrMalformedContent = errors.New("malformed content")

// Section anchors, in page order.
const (
	SectionHome           = "home"
	SectionAbout          = "about"
	SectionProjects       = "projects"
	SectionSkills         = "skills"
	SectionCertifications = "certifications"
	SectionContact        = "contact"
)

// Fixed row shapes.
const (
	projectColumns       = 3
	skillColumns         = 2
	certificationColumns = 4
	certificationCards   = 2
)

// Compose arranges content into the six page sections. The arrangement is
// fixed: three project cards, two skill cards, and a four-column
// certification row whose two cards sit in the right-most columns.
func Compose(c Content) (PageModel, error) {
	if err := validate(c); err != nil {
		return PageModel{}, err
	}

	projects := &CardRow{Columns: projectColumns}
	for _, p := range c.Projects {
		projects.Slots = append(projects.Slots, ProjectCard{Content: p})
	}

	skills := &CardRow{Columns: skillColumns}
	for _, g := range c.Skills {
		skills.Slots = append(skills.Slots, SkillCard{Group: g})
	}

	certs := &CardRow{Columns: certificationColumns, Slots: make([]Card, certificationColumns-certificationCards)}
	for _, cc := range c.Certifications {
		certs.Slots = append(certs.Slots, CertificationCard{Content: cc})
	}

	hero := c.Hero
	about := c.About
	contact := c.Contact

	page := PageModel{
		Title: c.Title,
		Sections: []Section{
			{ID: SectionHome, InNav: true, Hero: &hero},
			{ID: SectionAbout, InNav: true, Heading: c.Headings.About, About: &about},
			{ID: SectionProjects, InNav: true, Heading: c.Headings.Projects, Row: projects},
			{ID: SectionSkills, InNav: true, Heading: c.Headings.Skills, Row: skills},
			{ID: SectionCertifications, Heading: c.Headings.Certifications, Row: certs},
			{ID: SectionContact, InNav: true, Contact: &contact},
		},
	}
	if err := checkAnchors(page.Sections); err != nil {
		return PageModel{}, err
	}
	return page, nil
}

// checkAnchors requires every section id to be non-empty and unique, so each
// nav link lands on exactly one section.
func checkAnchors(sections []Section) error {
	seen := make(map[string]bool, len(sections))
	for _, s := range sections {
		if s.ID == "" {
			return fmt.Errorf("%w: section without anchor id", ErrMalformedContent)
		}
		if seen[s.ID] {
			return fmt.Errorf("%w: duplicate anchor id %q", ErrMalformedContent, s.ID)
		}
		seen[s.ID] = true
	}
	return nil
}

func validate(c Content) error {
	if n := len(c.Projects); n != projectColumns {
		return fmt.Errorf("%w: want %d projects, got %d", ErrMalformedContent, projectColumns, n)
	}
	if n := len(c.Skills); n != skillColumns {
		return fmt.Errorf("%w: want %d skill groups, got %d", ErrMalformedContent, skillColumns, n)
	}
	if n := len(c.Certifications); n != certificationCards {
		return fmt.Errorf("%w: want %d certifications, got %d", ErrMalformedContent, certificationCards, n)
	}

	cards := append(append([]CardContent{}, c.Projects...), c.Certifications...)
	for _, card := range cards {
		if card.Title == "" {
			return fmt.Errorf("%w: card without title", ErrMalformedContent)
		}
		for _, tag := range card.Tags {
			if !tag.Variant.Valid() {
				return fmt.Errorf("%w: card %q: unknown badge variant %q", ErrMalformedContent, card.Title, tag.Variant)
			}
		}
	}
	return nil
}
