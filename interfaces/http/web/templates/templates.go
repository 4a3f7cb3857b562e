// Package templates holds the embedded page and fragment templates.
package templates

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
)

//go:embed *.html
var files embed.FS

// Template names.
const (
	AssessmentPage   = "assessment_page.html"
	EmptyAssessment  = "empty_assessment.html"
	NodeEditForm     = "node_edit_form.html"
	LinkEditForm     = "link_edit_form.html"
	NodeUpdatedBadge = "node_updated.html"
	LinkUpdatedBadge = "link_updated.html"
)

// Renderer renders the embedded templates.
type Renderer struct {
	t *template.Template
}

// NewRenderer parses the embedded template set.
func NewRenderer() (*Renderer, error) {
	t, err := template.ParseFS(files, "*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}
	return &Renderer{t: t}, nil
}

// Render executes a template into a buffer so a failed render never emits
// a half-written response.
func (r *Renderer) Render(name string, data interface{}) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.t.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, fmt.Errorf("rendering %s: %w", name, err)
	}
	return buf.Bytes(), nil
}
