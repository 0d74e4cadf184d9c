// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package render

import (
	"fmt"
	"html/template"
	"log/slog"
	"strconv"

	"faqpress/internal/models"
	"faqpress/internal/record"
	"faqpress/internal/slug"
)

// itemIDPrefix prefixes the id of each <details> element.
const itemIDPrefix = "faq-item"

// View is the template input for one FAQ list element.
type View struct {
	UID            int
	Header         string
	OpenSingleOnly bool
	OpenFirst      bool
	Grouped        bool
	Entries        []Entry
	Sections       []Section
}

// Entry is one question and answer. ItemID and Anchor are unique within a
// view: a FAQ repeated in later category sections gets ids scoped to that
// section, so only its first occurrence answers the #faq-<uid> link.
type Entry struct {
	UID        int
	ItemID     string
	Anchor     string
	Question   string
	Answer     template.HTML
	Open       bool
	Categories []string
}

// Section is one category heading with its entries.
type Section struct {
	UID     int
	Anchor  string
	Title   string
	Entries []Entry
}

// NewView prepares the template input for an element. Entries come from the
// typed records when the processor resolved them, from the raw rows
// otherwise. Grouped views render sections, flat views the entry list.
func NewView(el models.ContentElement, items []models.Item, groups []models.Group, grouped bool) *View {
	v := &View{
		UID:            el.UID(),
		Header:         el.Header(),
		OpenSingleOnly: el.OpenSingleOnly(),
		OpenFirst:      el.OpenFirst(),
		Grouped:        grouped && len(groups) > 0,
	}

	if v.Grouped {
		seen := make(map[int]bool)
		for _, g := range groups {
			catUID := g.Category.Data.UID()
			s := Section{
				UID:    catUID,
				Title:  categoryTitle(g.Category),
				Anchor: slug.Anchor("faq-category", catUID),
			}
			for _, it := range g.Items {
				e := newEntry(it)
				if seen[e.UID] {
					e.ItemID = fmt.Sprintf("%s-c%d", e.ItemID, catUID)
					e.Anchor = fmt.Sprintf("%s-c%d", e.Anchor, catUID)
				}
				seen[e.UID] = true
				s.Entries = append(s.Entries, e)
			}
			v.Sections = append(v.Sections, s)
		}
		if v.OpenFirst && len(v.Sections[0].Entries) > 0 {
			v.Sections[0].Entries[0].Open = true
		}
		return v
	}

	for _, it := range items {
		v.Entries = append(v.Entries, newEntry(it))
	}
	if v.OpenFirst && len(v.Entries) > 0 {
		v.Entries[0].Open = true
	}
	return v
}

func newEntry(it models.Item) Entry {
	f, ok := it.Record.(*models.FAQ)
	if !ok {
		var err error
		if f, err = record.FAQ(it.Data); err != nil {
			slog.Warn("faq answer not rendered", "uid", it.Data.UID(), "error", err)
			f = &models.FAQ{
				UID:        it.Data.UID(),
				Question:   it.Data.String(record.ColumnQuestion),
				AnswerHTML: template.HTML(template.HTMLEscapeString(it.Data.String(record.ColumnAnswer))),
				Anchor:     slug.Anchor(record.AnchorPrefix, it.Data.UID()),
			}
		}
	}

	e := Entry{
		UID:      f.UID,
		ItemID:   itemIDPrefix + strconv.Itoa(f.UID),
		Anchor:   f.Anchor,
		Question: f.Question,
		Answer:   f.AnswerHTML,
	}
	for _, c := range it.Categories {
		e.Categories = append(e.Categories, categoryTitle(c))
	}
	return e
}

func categoryTitle(c models.CategoryEntry) string {
	if cat, ok := c.Record.(*models.Category); ok {
		return cat.Title
	}
	if t := c.Data.String("title"); t != "" {
		return t
	}
	if c.Data.UID() == models.UncategorizedUID {
		return models.UncategorizedTitle
	}
	return ""
}
