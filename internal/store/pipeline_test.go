// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"faqpress/internal/faq"
	"faqpress/internal/models"
)

// TestPipelineAgainstDatabase runs the FAQ processor over the SQL stores to
// check that the interfaces line up with real query results.
func TestPipelineAgainstDatabase(t *testing.T) {
	st := testStores(t)
	p := faq.New(st.Pages, st.FAQs, st.Categories, st.Relations)

	conf := map[string]any{
		"pidInList.": map[string]any{"field": "pages"},
	}
	data := models.Row{"pages": "20,21", "faqpress_group_by_category": 1}

	res, err := p.Run(context.Background(), conf, data)
	require.NoError(t, err)
	require.NotNil(t, res)

	flat := make([]int, len(res.Items))
	for i, it := range res.Items {
		flat[i] = it.Data.UID()
	}
	require.Equal(t, []int{2, 3, 6, 1}, flat)

	// Beta (101) sorts before Alpha (100); F6 has no categories.
	var groups [][]int
	for _, g := range res.Groups {
		uids := []int{g.Category.Data.UID()}
		for _, it := range g.Items {
			uids = append(uids, it.Data.UID())
		}
		groups = append(groups, uids)
	}
	require.Equal(t, [][]int{
		{101, 3, 1},
		{100, 2, 1},
		{models.UncategorizedUID, 6},
	}, groups)
}

func TestPipelineFilterAgainstDatabase(t *testing.T) {
	st := testStores(t)
	p := faq.New(st.Pages, st.FAQs, st.Categories, st.Relations)

	conf := map[string]any{"pidInList": "20,21"}
	data := models.Row{"faqpress_filter_by_category": "101"}

	res, err := p.Run(context.Background(), conf, data)
	require.NoError(t, err)
	require.Len(t, res.Items, 2)

	// Only the filtered category is attached to the remaining items.
	for _, it := range res.Items {
		require.Len(t, it.Categories, 1)
		require.Equal(t, 101, it.Categories[0].Data.UID())
	}
}
