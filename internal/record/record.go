// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package record turns FAQ and category rows into typed objects for
// templates and JSON output.
package record

import (
	"errors"
	"fmt"
	"html/template"

	"faqpress/internal/markdown"
	"faqpress/internal/models"
	"faqpress/internal/slug"
)

var (
	// ErrUnknownTable is returned for rows of a table the resolver has no
	// type for.
	ErrUnknownTable = errors.New("no record type for table")
	// ErrInvalidRow is returned for rows without a positive uid.
	ErrInvalidRow = errors.New("row has no uid")
)

// Columns read from FAQ rows.
const (
	ColumnQuestion = "question"
	ColumnAnswer   = "answer"
	ColumnSlug     = "slug"
)

// AnchorPrefix prefixes the element id of every rendered FAQ.
const AnchorPrefix = "faq"

// Resolver maps rows to models.FAQ or models.Category.
type Resolver struct {
	faqTables map[string]bool
}

// NewResolver returns a resolver that treats rows of the given tables as
// FAQ records. Category rows are always recognised.
func NewResolver(faqTables ...string) *Resolver {
	r := &Resolver{faqTables: make(map[string]bool, len(faqTables))}
	for _, t := range faqTables {
		r.faqTables[t] = true
	}
	return r
}

// Resolve builds the typed record for row.
func (r *Resolver) Resolve(table string, row models.Row) (any, error) {
	if row.UID() <= 0 {
		return nil, fmt.Errorf("resolve %s record: %w", table, ErrInvalidRow)
	}

	switch {
	case table == models.CategoryTable:
		return Category(row), nil
	case r.faqTables[table]:
		f, err := FAQ(row)
		if err != nil {
			return nil, err
		}
		return f, nil
	}
	return nil, fmt.Errorf("resolve %s record %d: %w", table, row.UID(), ErrUnknownTable)
}

// FAQ builds a FAQ record. The answer is rendered from Markdown; a row
// without a stored slug gets one derived from the question.
func FAQ(row models.Row) (*models.FAQ, error) {
	answer := row.String(ColumnAnswer)
	html, err := markdown.ToHTML(answer)
	if err != nil {
		return nil, fmt.Errorf("render answer of faq %d: %w", row.UID(), err)
	}

	f := &models.FAQ{
		UID:        row.UID(),
		PID:        row.PID(),
		Question:   row.String(ColumnQuestion),
		Answer:     answer,
		AnswerHTML: template.HTML(html),
		AnswerText: markdown.ToText(answer),
		Slug:       row.String(ColumnSlug),
		Anchor:     slug.Anchor(AnchorPrefix, row.UID()),
		Sorting:    row.Int("sorting"),
	}
	if f.Slug == "" {
		f.Slug = slug.Generate(f.Question)
	}
	return f, nil
}

// Category builds a category record.
func Category(row models.Row) *models.Category {
	c := &models.Category{
		UID:         row.UID(),
		PID:         row.PID(),
		Title:       row.String("title"),
		Description: row.String("description"),
		Slug:        row.String(ColumnSlug),
		ParentUID:   row.Int("parent"),
		Sorting:     row.Int("sorting"),
	}
	if c.Slug == "" {
		c.Slug = slug.Generate(c.Title)
	}
	return c
}
