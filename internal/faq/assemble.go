// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package faq

import (
	"cmp"
	"log/slog"
	"math"
	"slices"

	"faqpress/internal/models"
)

// RecordResolver builds a typed record from a database row. It is optional:
// a processor without one, or a failing call, simply leaves records out.
type RecordResolver interface {
	Resolve(table string, row models.Row) (any, error)
}

// invocation holds the lookup state of one processor run. It is created per
// call and dropped with the result; nothing in it outlives the request.
type invocation struct {
	table    string
	resolver RecordResolver

	// categories is the global category order.
	categories []models.Row
	byUID      map[int]models.Row
	position   map[int]int
}

func newInvocation(table string, categoryRows []models.Row, resolver RecordResolver) *invocation {
	inv := &invocation{
		table:    table,
		resolver: resolver,
		byUID:    make(map[int]models.Row, len(categoryRows)),
		position: make(map[int]int, len(categoryRows)),
	}
	for _, row := range categoryRows {
		uid := row.UID()
		if uid <= 0 {
			continue
		}
		if _, dup := inv.byUID[uid]; dup {
			continue
		}
		inv.position[uid] = len(inv.categories)
		inv.byUID[uid] = row
		inv.categories = append(inv.categories, row)
	}
	return inv
}

// Assemble builds the flat item list and, when grouped is set, the category
// groups. categoryRows must already be in the global category order.
func Assemble(table string, faqRows []models.Row, rel Relations, categoryRows []models.Row, grouped bool, resolver RecordResolver) ([]models.Item, []models.Group) {
	inv := newInvocation(table, categoryRows, resolver)
	items := inv.items(faqRows, rel)
	if !grouped {
		return items, []models.Group{}
	}
	return items, inv.groups(items)
}

// rank returns the global order index of a category; unknown ones sort last.
func (inv *invocation) rank(uid int) int {
	if pos, ok := inv.position[uid]; ok {
		return pos
	}
	return math.MaxInt
}

func (inv *invocation) items(faqRows []models.Row, rel Relations) []models.Item {
	items := make([]models.Item, 0, len(faqRows))
	for _, row := range faqRows {
		catUIDs := slices.Clone(rel.For(row.UID()))
		slices.SortStableFunc(catUIDs, func(a, b int) int {
			return cmp.Compare(inv.rank(a), inv.rank(b))
		})

		categories := make([]models.CategoryEntry, 0, len(catUIDs))
		for _, uid := range catUIDs {
			catRow, ok := inv.byUID[uid]
			if !ok {
				continue
			}
			categories = append(categories, models.CategoryEntry{
				Data:   catRow,
				Record: inv.record(models.CategoryTable, catRow),
			})
		}

		items = append(items, models.Item{
			Data:       row,
			Categories: categories,
			Record:     inv.record(inv.table, row),
		})
	}
	return items
}

func (inv *invocation) groups(items []models.Item) []models.Group {
	groups := make([]models.Group, 0, len(inv.categories)+1)
	index := make(map[int]int, len(inv.categories))
	for _, row := range inv.categories {
		index[row.UID()] = len(groups)
		groups = append(groups, models.Group{
			Category: models.CategoryEntry{Data: row, Record: inv.record(models.CategoryTable, row)},
			Items:    []models.Item{},
		})
	}

	uncategorized := models.Group{
		Category: models.CategoryEntry{Data: models.Row{
			"uid":   models.UncategorizedUID,
			"title": models.UncategorizedTitle,
		}},
		Items: []models.Item{},
	}

	for _, item := range items {
		if len(item.Categories) == 0 {
			uncategorized.Items = append(uncategorized.Items, item)
			continue
		}
		for _, cat := range item.Categories {
			if i, ok := index[cat.Data.UID()]; ok {
				groups[i].Items = append(groups[i].Items, item)
			}
		}
	}

	if len(uncategorized.Items) > 0 {
		groups = append(groups, uncategorized)
	}
	return groups
}

// record resolves the typed record for row, or nil when resolution is off
// or fails.
func (inv *invocation) record(table string, row models.Row) any {
	if inv.resolver == nil {
		return nil
	}
	rec, err := inv.resolver.Resolve(table, row)
	if err != nil {
		slog.Debug("record resolution skipped", "table", table, "uid", row.UID(), "error", err)
		return nil
	}
	return rec
}
