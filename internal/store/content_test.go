// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"faqpress/internal/models"
)

func TestContentStoreFindByUID(t *testing.T) {
	st := testStores(t)
	ctx := context.Background()

	el, err := st.Content.FindByUID(ctx, 50)
	require.NoError(t, err)
	require.NotNil(t, el)
	require.Equal(t, 50, el.UID())
	require.Equal(t, "Visible", el.Header())
	require.Equal(t, "20,21", el.Row.String("pages"))

	for _, uid := range []int{51, 999} {
		el, err := st.Content.FindByUID(ctx, uid)
		require.NoError(t, err)
		require.Nil(t, el, "uid %d", uid)
	}
}

func TestContentStoreListUIDs(t *testing.T) {
	st := testStores(t)
	uids, err := st.Content.ListUIDs(context.Background(), models.CTypeFAQList)
	require.NoError(t, err)
	require.Equal(t, []int{50}, uids)
}
