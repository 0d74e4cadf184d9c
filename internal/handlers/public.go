// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"faqpress/internal/cache"
	"faqpress/internal/faq"
	"faqpress/internal/middleware"
	"faqpress/internal/models"
	"faqpress/internal/render"
)

// ElementFinder loads content elements by uid. A missing element is
// reported as (nil, nil).
type ElementFinder interface {
	FindByUID(ctx context.Context, uid int) (*models.ContentElement, error)
}

// Pipeline runs the FAQ processor for one content element.
type Pipeline interface {
	Run(ctx context.Context, conf map[string]any, data models.Row) (*faq.Result, error)
}

// FragmentCache stores rendered output per element and format.
type FragmentCache interface {
	Get(ctx context.Context, uid int, format string) ([]byte, bool)
	Set(ctx context.Context, uid int, format string, body []byte)
}

// Public groups the handlers that serve FAQ lists. Rendered output is kept
// in the fragment cache when one is configured.
type Public struct {
	elements ElementFinder
	pipeline Pipeline
	conf     map[string]any
	renderer *render.Renderer
	cache    FragmentCache
}

// NewPublic creates the FAQ handler group. cache may be nil to render every
// request.
func NewPublic(elements ElementFinder, pipeline Pipeline, conf map[string]any, renderer *render.Renderer, cache FragmentCache) *Public {
	return &Public{
		elements: elements,
		pipeline: pipeline,
		conf:     conf,
		renderer: renderer,
		cache:    cache,
	}
}

// FAQ renders the accordion for the element in the {uid} URL parameter:
// the bare fragment for HTMX requests, a standalone page otherwise.
func (p *Public) FAQ(w http.ResponseWriter, r *http.Request) {
	// Page and fragment share one URL.
	w.Header().Add("Vary", "HX-Request")

	format := cache.FormatHTML
	if r.Header.Get("HX-Request") == "true" {
		format = cache.FormatFragment
	}

	p.serve(w, r, format, "text/html; charset=utf-8", func(el *models.ContentElement, res *faq.Result) ([]byte, error) {
		var items []models.Item
		var groups []models.Group
		grouped := false
		if res != nil {
			items, groups, grouped = res.Items, res.Groups, res.Settings.GroupByCategory
		}
		return p.renderer.For(r, render.NewView(*el, items, groups, grouped))
	})
}

// FAQJSON returns the processed lists of the element in the {uid} URL
// parameter under their configured keys.
func (p *Public) FAQJSON(w http.ResponseWriter, r *http.Request) {
	p.serve(w, r, cache.FormatJSON, "application/json", func(el *models.ContentElement, res *faq.Result) ([]byte, error) {
		body := map[string]any{
			"element": map[string]any{
				"uid":    el.UID(),
				"header": el.Header(),
			},
		}
		if res != nil {
			body[res.Settings.FlatKey] = res.Items
			body[res.Settings.GroupedKey] = res.Groups
		}
		return json.Marshal(body)
	})
}

// serve runs the shared lookup, cache and error handling of both endpoints.
func (p *Public) serve(w http.ResponseWriter, r *http.Request, format, contentType string, build func(*models.ContentElement, *faq.Result) ([]byte, error)) {
	ctx := r.Context()
	rid := middleware.RequestIDFromCtx(ctx)

	uid, err := strconv.Atoi(chi.URLParam(r, "uid"))
	if err != nil || uid <= 0 {
		http.NotFound(w, r)
		return
	}

	if p.cache != nil {
		if cached, ok := p.cache.Get(ctx, uid, format); ok {
			w.Header().Set("Content-Type", contentType)
			w.Header().Set("X-Cache", "HIT")
			w.Write(cached)
			return
		}
	}

	el, err := p.elements.FindByUID(ctx, uid)
	if err != nil {
		slog.Error("find content element failed", "error", err, "element", uid, "request_id", rid)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if el == nil || el.Row.String(models.ColumnCType) != models.CTypeFAQList {
		http.NotFound(w, r)
		return
	}

	res, err := p.pipeline.Run(ctx, p.conf, el.Row)
	if err != nil {
		slog.Error("faq pipeline failed", "error", err, "element", uid, "request_id", rid)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	out, err := build(el, res)
	if err != nil {
		slog.Error("faq render failed", "error", err, "element", uid, "format", format, "request_id", rid)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if p.cache != nil {
		p.cache.Set(ctx, uid, format, out)
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("X-Cache", "MISS")
	w.Write(out)
}
