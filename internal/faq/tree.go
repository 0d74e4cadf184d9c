// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package faq

import (
	"context"
	"fmt"
	"math"

	"github.com/RoaringBitmap/roaring"
)

// PageTree reads the page hierarchy.
type PageTree interface {
	// ChildUIDs returns the uids of visible pages whose parent is one of
	// parents.
	ChildUIDs(ctx context.Context, parents []int) ([]int, error)
}

// ExpandPages adds descendants of uids up to depth levels below them. The
// result lists the input first, then each level's new pages in fetch order;
// a page reachable along several paths appears once. Depth 0 or less
// returns uids unchanged.
func ExpandPages(ctx context.Context, tree PageTree, uids []int, depth int) ([]int, error) {
	if depth <= 0 || len(uids) == 0 {
		return uids, nil
	}

	// Page uids are 32-bit in the schema, so a roaring bitmap holds the
	// visited set without per-entry overhead.
	seen := roaring.New()
	expanded := make([]int, 0, len(uids))
	for _, uid := range uids {
		if uid <= 0 || int64(uid) > math.MaxUint32 || !seen.CheckedAdd(uint32(uid)) {
			continue
		}
		expanded = append(expanded, uid)
	}

	frontier := expanded
	for level := 0; level < depth && len(frontier) > 0; level++ {
		children, err := tree.ChildUIDs(ctx, frontier)
		if err != nil {
			return nil, fmt.Errorf("expand pages level %d: %w", level+1, err)
		}

		var next []int
		for _, uid := range children {
			if uid <= 0 || int64(uid) > math.MaxUint32 || !seen.CheckedAdd(uint32(uid)) {
				continue
			}
			next = append(next, uid)
		}
		expanded = append(expanded, next...)
		frontier = next
	}

	return expanded, nil
}
