package assets

import (
	"encoding/base64"
	"html/template"

	"github.com/gabriel-vasile/mimetype"
)

// Image is an image file as read for one render. Found is false when the
// file was missing or unreadable; Data is nil in that case.
type Image struct {
	Path  string
	Data  []byte
	Found bool
}

// Present reports whether the image has bytes to embed. An empty file is
// found but not present.
func (i Image) Present() bool {
	return i.Found && len(i.Data) > 0
}

// MIMEType sniffs the content type from the bytes rather than trusting the extension.
func (i Image) MIMEType() string {
	if !i.Present() {
		return ""
	}
	return mimetype.Detect(i.Data).String()
}

// DataURL returns the base64 data URL for the image, or "" when absent.
func (i Image) DataURL() template.URL {
	if !i.Present() {
		return ""
	}
	// #nosec G203 -- bytes are base64 encoded, the URL cannot break out of the attribute.
	return template.URL("data:" + i.MIMEType() + ";base64," + base64.StdEncoding.EncodeToString(i.Data))
}
