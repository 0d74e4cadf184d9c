// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package faq implements the FAQ data pipeline: it resolves a processor
// configuration against a content element, loads FAQ rows from the
// configured storage pages, attaches their categories and optionally groups
// them by category.
package faq

import (
	"context"
	"fmt"
	"log/slog"

	"faqpress/internal/models"
)

// FAQSource reads FAQ rows.
type FAQSource interface {
	SelectFAQs(ctx context.Context, q models.FAQQuery) ([]models.Row, error)
}

// CategorySource reads category rows in the given order, tie-broken by uid.
type CategorySource interface {
	SelectCategories(ctx context.Context, uids []int, order models.OrderBy) ([]models.Row, error)
}

// Result is the output of one processor run.
type Result struct {
	Settings Settings
	Items    []models.Item
	Groups   []models.Group
}

// Processor runs the FAQ pipeline against storage. It holds no per-request
// state and is safe for concurrent use.
type Processor struct {
	pages      PageTree
	faqs       FAQSource
	categories CategorySource
	relations  RelationSource

	// Optional. Nil disables resolveToRecordObjects.
	resolver RecordResolver
}

// New creates a Processor reading from the given stores.
func New(pages PageTree, faqs FAQSource, categories CategorySource, relations RelationSource) *Processor {
	return &Processor{pages: pages, faqs: faqs, categories: categories, relations: relations}
}

// SetRecordResolver configures the optional typed record resolver.
func (p *Processor) SetRecordResolver(r RecordResolver) {
	p.resolver = r
}

// Run executes the pipeline for one content element. It returns a nil
// Result when the configured table name is invalid. Items and Groups are
// never nil otherwise.
func (p *Processor) Run(ctx context.Context, conf map[string]any, data models.Row) (*Result, error) {
	settings, ok := ResolveSettings(conf, data)
	if !ok {
		slog.Debug("faq processor skipped: invalid table name", "element", data.UID(), "table", conf["table"])
		return nil, nil
	}

	res := &Result{
		Settings: settings,
		Items:    []models.Item{},
		Groups:   []models.Group{},
	}

	pids, err := ExpandPages(ctx, p.pages, settings.PIDs, settings.Recursive)
	if err != nil {
		return nil, err
	}
	if len(pids) == 0 {
		slog.Debug("faq processor: no storage pages", "element", data.UID())
		return res, nil
	}

	faqRows, err := p.faqs.SelectFAQs(ctx, models.FAQQuery{
		Table:              settings.Table,
		PIDs:               pids,
		Order:              settings.Order,
		CategoryField:      settings.CategoryField,
		FilterCategoryUIDs: settings.FilterCategoryUIDs,
	})
	if err != nil {
		return nil, fmt.Errorf("select faqs: %w", err)
	}
	if len(faqRows) == 0 {
		slog.Debug("faq processor: no faq rows", "element", data.UID(), "pids", pids)
		return res, nil
	}

	uids := make([]any, 0, len(faqRows))
	for _, row := range faqRows {
		uids = append(uids, row.UID())
	}

	rel, err := ResolveRelations(ctx, p.relations, settings.Table, settings.CategoryField, uniquePositive(uids))
	if err != nil {
		return nil, err
	}
	if settings.FilterActive() {
		rel = rel.Restrict(settings.FilterCategoryUIDs)
	}

	var categoryRows []models.Row
	if len(rel.CategoryUIDs) > 0 {
		categoryRows, err = p.categories.SelectCategories(ctx, rel.CategoryUIDs, settings.CategoryOrder)
		if err != nil {
			return nil, fmt.Errorf("select categories: %w", err)
		}
	}

	var resolver RecordResolver
	if settings.ResolveRecords {
		resolver = p.resolver
	}

	res.Items, res.Groups = Assemble(settings.Table, faqRows, rel, categoryRows, settings.GroupByCategory, resolver)
	return res, nil
}

// Process runs the pipeline and stores the flat and grouped lists in
// processed under the configured keys. processed is returned unchanged
// when the table name is invalid.
func (p *Processor) Process(ctx context.Context, conf map[string]any, data models.Row, processed map[string]any) (map[string]any, error) {
	if processed == nil {
		processed = make(map[string]any)
	}

	res, err := p.Run(ctx, conf, data)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return processed, nil
	}

	processed[res.Settings.FlatKey] = res.Items
	processed[res.Settings.GroupedKey] = res.Groups
	return processed, nil
}
