package portfolio

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/sudhirshivaram/portfolio/internal/assets"
)

//go:embed templates/*.html
var templatesFS embed.FS

const pageTemplate = "page"

// ImageLoader reads an image for embedding. Implementations must not fail;
// an unreadable image is reported as absent.
type ImageLoader interface {
	Load(path string) assets.Image
}

// Renderer writes pages and cards. It holds no per-render state and may be
// used from concurrent requests.
type Renderer struct {
	images ImageLoader
	tmpl   *template.Template
}

// NewRenderer parses the embedded templates. A template that fails to parse
// is a programming error and panics.
func NewRenderer(images ImageLoader) *Renderer {
	r := &Renderer{images: images}
	r.tmpl = template.Must(template.New("portfolio").Funcs(template.FuncMap{
		"image":  r.images.Load,
		"layout": r.layout,
	}).ParseFS(templatesFS, "templates/*.html"))
	return r
}

func (r *Renderer) layout(c Card) cardLayout {
	return c.layout(r.images.Load)
}

// RenderCard renders a single card.
func (r *Renderer) RenderCard(c Card) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, "card", r.layout(c)); err != nil {
		return "", fmt.Errorf("render %s card %q: %w", c.Kind(), c.Title(), err)
	}
	// #nosec G203 -- produced by html/template.
	return template.HTML(buf.String()), nil
}

// Render writes the full document for page to w. The document is built in
// memory first so a failed render writes nothing.
func (r *Renderer) Render(w io.Writer, page PageModel) error {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, pageTemplate, page); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("write page: %w", err)
	}
	return nil
}

// RenderContent composes content and renders it in one pass.
func (r *Renderer) RenderContent(w io.Writer, c Content) error {
	page, err := Compose(c)
	if err != nil {
		return err
	}
	return r.Render(w, page)
}
