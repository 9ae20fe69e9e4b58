// Package content holds the portfolio's static text and image references.
//
// The page content lives in two embedded documents: portfolio.yaml for the
// structured parts (hero, cards, contact) and about.md, a markdown bio with a
// YAML frontmatter block. Editing either file changes the page without
// touching the rendering code.
package content

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"gopkg.in/yaml.v3"

	"github.com/sudhirshivaram/portfolio/internal/portfolio"
)

var (
	//go:embed portfolio.yaml
	PortfolioYAML []byte

	//go:embed about.md
	AboutMarkdown []byte
)

var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM, extension.Typographer),
)

// aboutMatter is the frontmatter of about.md.
type aboutMatter struct {
	Image      string   `yaml:"image"`
	FocusIntro string   `yaml:"focus_intro"`
	Focus      []string `yaml:"focus"`
	Caption    string   `yaml:"caption"`
}

// Load parses the embedded documents.
func Load() (portfolio.Content, error) {
	return Parse(PortfolioYAML, AboutMarkdown)
}

// Parse builds Content from a YAML document and a markdown bio.
func Parse(doc, about []byte) (portfolio.Content, error) {
	var c portfolio.Content
	if err := yaml.Unmarshal(doc, &c); err != nil {
		return portfolio.Content{}, fmt.Errorf("parse portfolio document: %w", err)
	}

	a, err := parseAbout(about)
	if err != nil {
		return portfolio.Content{}, err
	}
	c.About = a
	return c, nil
}

func parseAbout(src []byte) (portfolio.About, error) {
	var matter aboutMatter
	body, err := frontmatter.Parse(bytes.NewReader(src), &matter)
	if err != nil {
		return portfolio.About{}, fmt.Errorf("parse about frontmatter: %w", err)
	}

	bio, err := renderMarkdown(body)
	if err != nil {
		return portfolio.About{}, fmt.Errorf("render about bio: %w", err)
	}

	about := portfolio.About{
		Image:      matter.Image,
		Bio:        bio,
		FocusIntro: matter.FocusIntro,
		Caption:    matter.Caption,
	}
	for _, item := range matter.Focus {
		html, err := renderInline(item)
		if err != nil {
			return portfolio.About{}, fmt.Errorf("render focus item %q: %w", item, err)
		}
		about.Focus = append(about.Focus, html)
	}
	return about, nil
}

func renderMarkdown(src []byte) (template.HTML, error) {
	var buf bytes.Buffer
	if err := markdown.Convert(src, &buf); err != nil {
		return "", err
	}
	// #nosec G203 -- goldmark escapes raw HTML unless WithUnsafe is set.
	return template.HTML(buf.String()), nil
}

// renderInline renders a single markdown line without its paragraph wrapper.
func renderInline(src string) (template.HTML, error) {
	html, err := renderMarkdown([]byte(src))
	if err != nil {
		return "", err
	}
	s := strings.TrimSpace(string(html))
	s = strings.TrimPrefix(s, "<p>")
	s = strings.TrimSuffix(s, "</p>")
	// #nosec G203 -- see renderMarkdown.
	return template.HTML(s), nil
}
