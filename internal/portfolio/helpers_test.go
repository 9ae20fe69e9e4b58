package portfolio

import (
	"html/template"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/sudhirshivaram/portfolio/internal/assets"
)

var pngBytes = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")

func foodHub() CardContent {
	return CardContent{
		Title: "Food Hub Data Analysis",
		Image: "images/projects/foodhub-2.png",
		Tags: []Tag{
			{Label: "Python", Variant: BadgePrimary},
			{Label: "EDA", Variant: BadgeInfo},
			{Label: "Numpy", Variant: BadgeSuccess},
			{Label: "Pandas", Variant: BadgeDark},
			{Label: "Seaborn", Variant: BadgeDark},
		},
		Description:   "Exploratory Data Analysis on a food aggregator dataset.",
		PrimaryLink:   "https://example.com/foodhub/case-study",
		SecondaryLink: "https://example.com/foodhub/code",
	}
}

func testContent() Content {
	return Content{
		Title: "Test Portfolio",
		Headings: Headings{
			About:          "About Me",
			Projects:       "Projects",
			Skills:         "Skills",
			Certifications: "Certifications",
		},
		Hero: Hero{Name: "Ada Example", Role: "ML Engineer", Tagline: "Shipping models."},
		About: About{
			Image:      "images/about/profile-pic.jpeg",
			Bio:        "<p><strong>Engineer</strong> with a bio.</p>",
			FocusIntro: "Currently learning:",
			Focus:      []template.HTML{"<b>ML</b> things"},
			Caption:    "A caption.",
		},
		Projects: []CardContent{
			foodHub(),
			{Title: "Loan Model", Image: "images/projects/loan.jpg", Tags: []Tag{{Label: "Decision Tree", Variant: BadgePrimary}}, PrimaryLink: "#", SecondaryLink: "#"},
			{Title: "ReneWind", Image: "images/projects/renewind.jpg", Tags: []Tag{{Label: "EDA", Variant: BadgeWarning}}, PrimaryLink: "#", SecondaryLink: "#"},
		},
		Skills: []SkillGroup{
			{Title: "Core", Items: []SkillItem{{Label: "Python", Detail: "Pandas, NumPy."}}},
			{Title: "MLOps", Items: []SkillItem{{Label: "Docker", Detail: "Containers."}}},
		},
		Certifications: []CardContent{
			{Title: "AWS Cloud Practitioner", Image: "images/certifications/aws.png", Description: "AWS basics.", PrimaryLink: "https://example.com/aws"},
			{Title: "Azure Fundamentals", Image: "images/certifications/azure.png", Description: "Azure basics.", PrimaryLink: "https://example.com/azure"},
		},
		Contact: Contact{
			Heading: "Contact Me",
			Methods: []ContactMethod{{Icon: "fas fa-envelope", Text: "me@example.com"}},
			Social:  []SocialLink{{Label: "GitHub", Icon: "fab fa-github", URL: "https://github.com/example"}},
		},
	}
}

func testImages() fstest.MapFS {
	return fstest.MapFS{
		"images/projects/foodhub-2.png": {Data: pngBytes},
		"images/about/profile-pic.jpeg": {Data: []byte{0xFF, 0xD8, 0xFF, 0xE0}},
	}
}

func newTestRenderer(fsys fstest.MapFS) *Renderer {
	return NewRenderer(assets.NewLoader(fsys, nil))
}

func parseHTML(t *testing.T, s string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(s))
	require.NoError(t, err)
	return doc
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func hasClass(n *html.Node, class string) bool {
	for _, c := range strings.Fields(attr(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}

func findAll(n *html.Node, match func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && match(n) {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return out
}

func byClass(class string) func(*html.Node) bool {
	return func(n *html.Node) bool { return hasClass(n, class) }
}

func byTag(tag string) func(*html.Node) bool {
	return func(n *html.Node) bool { return n.Data == tag }
}

func text(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.TrimSpace(b.String())
}
