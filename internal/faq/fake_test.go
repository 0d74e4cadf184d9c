// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package faq

import (
	"cmp"
	"context"
	"errors"
	"slices"

	"faqpress/internal/models"
)

// memStore is an in-memory stand-in for the SQL stores. It mimics their
// ordering and deduplication so pipeline tests can run without a database.
type memStore struct {
	pages      []models.Row // uid, pid
	faqs       []models.Row
	categories []models.Row
	relations  []models.Relation

	// hidden category uids, emulating visibility rules.
	hidden map[int]bool

	err error

	childCalls    int
	relationCalls int
	categoryCalls int
	faqCalls      int
}

var errStorage = errors.New("storage unavailable")

func (m *memStore) ChildUIDs(_ context.Context, parents []int) ([]int, error) {
	m.childCalls++
	if m.err != nil {
		return nil, m.err
	}
	var out []int
	for _, p := range m.pages {
		if slices.Contains(parents, p.PID()) {
			out = append(out, p.UID())
		}
	}
	return out, nil
}

func (m *memStore) SelectFAQs(_ context.Context, q models.FAQQuery) ([]models.Row, error) {
	m.faqCalls++
	if m.err != nil {
		return nil, m.err
	}
	var out []models.Row
	for _, row := range m.faqs {
		if !slices.Contains(q.PIDs, row.PID()) {
			continue
		}
		if len(q.FilterCategoryUIDs) > 0 {
			// Emulate the inner join: one row per matching relation, then
			// collapse duplicates by uid.
			matched := false
			for _, r := range m.relations {
				if r.Table == q.Table && r.Field == q.CategoryField && r.ForeignUID == row.UID() &&
					slices.Contains(q.FilterCategoryUIDs, r.CategoryUID) {
					matched = true
				}
			}
			if !matched {
				continue
			}
		}
		out = append(out, row)
	}
	sortRows(out, q.Order)
	return out, nil
}

func (m *memStore) SelectCategories(_ context.Context, uids []int, order models.OrderBy) ([]models.Row, error) {
	m.categoryCalls++
	if m.err != nil {
		return nil, m.err
	}
	var out []models.Row
	for _, row := range m.categories {
		if slices.Contains(uids, row.UID()) && !m.hidden[row.UID()] {
			out = append(out, row)
		}
	}
	sortRows(out, order)
	return out, nil
}

func (m *memStore) SelectRelations(_ context.Context, table, field string, foreignUIDs []int) ([]models.Relation, error) {
	m.relationCalls++
	if m.err != nil {
		return nil, m.err
	}
	var out []models.Relation
	for _, r := range m.relations {
		if r.Table == table && r.Field == field && slices.Contains(foreignUIDs, r.ForeignUID) {
			out = append(out, r)
		}
	}
	return out, nil
}

// sortRows orders by the column (numeric when possible) then uid ascending.
func sortRows(rows []models.Row, order models.OrderBy) {
	slices.SortStableFunc(rows, func(a, b models.Row) int {
		var c int
		an, aok := models.ToInt(a[order.Column])
		bn, bok := models.ToInt(b[order.Column])
		if aok && bok {
			c = cmp.Compare(an, bn)
		} else {
			c = cmp.Compare(a.String(order.Column), b.String(order.Column))
		}
		if order.Direction == models.Desc {
			c = -c
		}
		if c != 0 {
			return c
		}
		return cmp.Compare(a.UID(), b.UID())
	})
}

func faqRow(uid, pid, sorting int, question string) models.Row {
	return models.Row{"uid": int64(uid), "pid": int64(pid), "sorting": int64(sorting), "question": question}
}

func categoryRow(uid, sorting int, title string) models.Row {
	return models.Row{"uid": int64(uid), "pid": int64(1), "sorting": int64(sorting), "title": title}
}

func rel(faqUID, categoryUID int) models.Relation {
	return models.Relation{Table: DefaultTable, Field: DefaultCategoryField, ForeignUID: faqUID, CategoryUID: categoryUID}
}

// uids extracts uid columns for compact assertions.
func uidsOf(rows []models.Row) []int {
	out := make([]int, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.UID())
	}
	return out
}

func itemUIDs(items []models.Item) []int {
	out := make([]int, 0, len(items))
	for _, it := range items {
		out = append(out, it.Data.UID())
	}
	return out
}

func categoryUIDs(entries []models.CategoryEntry) []int {
	out := make([]int, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Data.UID())
	}
	return out
}
