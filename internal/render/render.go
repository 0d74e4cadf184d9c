// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package render turns processed FAQ lists into HTML accordions. Each FAQ
// is a <details> element; the surrounding root carries the data attributes
// the accordion script reads. HTMX requests get the bare fragment, direct
// requests get it wrapped in a minimal page.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
)

//go:embed templates/faq/*.html
var faqFS embed.FS

// Renderer holds the parsed FAQ templates.
type Renderer struct {
	tmpl *template.Template
}

// New parses the embedded templates.
func New() (*Renderer, error) {
	tmpl, err := template.New("faq").Funcs(template.FuncMap{
		"flag": func(b bool) string {
			if b {
				return "1"
			}
			return "0"
		},
	}).ParseFS(faqFS, "templates/faq/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse faq templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Fragment renders the accordion markup for v.
func (rn *Renderer) Fragment(v *View) ([]byte, error) {
	return rn.execute("fragment", v)
}

// Document renders v as a standalone HTML page.
func (rn *Renderer) Document(v *View) ([]byte, error) {
	return rn.execute("page.html", v)
}

// For renders the variant a request asks for: the fragment for HTMX
// requests, the full page otherwise.
func (rn *Renderer) For(r *http.Request, v *View) ([]byte, error) {
	if isHTMX(r) {
		return rn.Fragment(v)
	}
	return rn.Document(v)
}

func (rn *Renderer) execute(name string, v *View) ([]byte, error) {
	var buf bytes.Buffer
	if err := rn.tmpl.ExecuteTemplate(&buf, name, v); err != nil {
		return nil, fmt.Errorf("render %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

// isHTMX returns true if the request was made by HTMX (has HX-Request header).
func isHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}
