package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/Zachkp/portfolio/internal/reveal"
)

//go:embed templates/*.html
var templateFS embed.FS

// Renderer owns the parsed page templates and the markdown converter used for
// bio paragraphs and project descriptions.
type Renderer struct {
	tmpl *template.Template
	md   goldmark.Markdown
}

func NewRenderer() (*Renderer, error) {
	r := &Renderer{
		md: goldmark.New(goldmark.WithExtensions(extension.Linkify, extension.Strikethrough)),
	}

	tmpl, err := template.New("").Funcs(template.FuncMap{
		"markdown": r.markdown,
		"delay":    childDelay,
		"join":     strings.Join,
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}
	r.tmpl = tmpl
	return r, nil
}

// Template exposes the parsed set so gin can render by name.
func (r *Renderer) Template() *template.Template { return r.tmpl }

// RenderPage writes the full home page.
func (r *Renderer) RenderPage(w io.Writer, p Page) error {
	return r.tmpl.ExecuteTemplate(w, "index.html", p)
}

// markdown converts src to HTML. Raw HTML in src is escaped by goldmark's
// default renderer, so the result is safe to mark as trusted.
func (r *Renderer) markdown(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

func childDelay(g *reveal.Group, i int) string {
	return reveal.CSSDelay(g.ChildDelay(i))
}
