// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package faq

import (
	"context"
	"fmt"

	"faqpress/internal/models"
)

// RelationSource reads the category junction table.
type RelationSource interface {
	// SelectRelations returns every edge of table.field whose record uid
	// is in foreignUIDs.
	SelectRelations(ctx context.Context, table, field string, foreignUIDs []int) ([]models.Relation, error)
}

// Relations maps FAQ uids to their category uids.
type Relations struct {
	// ByUID holds each FAQ's category uids, deduplicated, in fetch order.
	ByUID map[int][]int
	// CategoryUIDs is the deduplicated union of all category uids.
	CategoryUIDs []int
}

// For returns the category uids of one FAQ.
func (r Relations) For(uid int) []int {
	return r.ByUID[uid]
}

// ResolveRelations loads all category edges for uids with a single query
// and partitions them per FAQ. An empty uid set returns empty relations
// without querying.
func ResolveRelations(ctx context.Context, src RelationSource, table, field string, uids []int) (Relations, error) {
	rel := Relations{ByUID: make(map[int][]int)}
	if len(uids) == 0 {
		return rel, nil
	}

	edges, err := src.SelectRelations(ctx, table, field, uids)
	if err != nil {
		return Relations{}, fmt.Errorf("resolve category relations: %w", err)
	}

	seenGlobal := make(map[int]struct{})
	seenPair := make(map[[2]int]struct{})
	for _, e := range edges {
		if e.ForeignUID <= 0 || e.CategoryUID <= 0 {
			continue
		}
		pair := [2]int{e.ForeignUID, e.CategoryUID}
		if _, dup := seenPair[pair]; dup {
			continue
		}
		seenPair[pair] = struct{}{}
		rel.ByUID[e.ForeignUID] = append(rel.ByUID[e.ForeignUID], e.CategoryUID)

		if _, dup := seenGlobal[e.CategoryUID]; !dup {
			seenGlobal[e.CategoryUID] = struct{}{}
			rel.CategoryUIDs = append(rel.CategoryUIDs, e.CategoryUID)
		}
	}
	return rel, nil
}

// Restrict keeps only categories in filter, both per FAQ and globally.
// FAQs left without categories keep an empty list.
func (r Relations) Restrict(filter []int) Relations {
	allowed := make(map[int]struct{}, len(filter))
	for _, uid := range filter {
		allowed[uid] = struct{}{}
	}
	keep := func(uids []int) []int {
		out := make([]int, 0, len(uids))
		for _, uid := range uids {
			if _, ok := allowed[uid]; ok {
				out = append(out, uid)
			}
		}
		return out
	}

	out := Relations{ByUID: make(map[int][]int, len(r.ByUID))}
	for uid, cats := range r.ByUID {
		out.ByUID[uid] = keep(cats)
	}
	out.CategoryUIDs = keep(r.CategoryUIDs)
	return out
}
