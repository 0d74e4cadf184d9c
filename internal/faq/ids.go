// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package faq

import (
	"strings"

	"faqpress/internal/models"
)

// NormalizeIDs turns a uid list in any supported shape (int, "1,2,3",
// []any, []int, []string) into positive, deduplicated uids in first-seen
// order. Unsupported shapes yield nil.
func NormalizeIDs(v any) []int {
	var raw []any
	switch list := v.(type) {
	case nil:
		return nil
	case string:
		for _, part := range strings.Split(list, ",") {
			if part = strings.TrimSpace(part); part != "" {
				raw = append(raw, part)
			}
		}
	case []byte:
		return NormalizeIDs(string(list))
	case []any:
		raw = list
	case []int:
		for _, n := range list {
			raw = append(raw, n)
		}
	case []int64:
		for _, n := range list {
			raw = append(raw, n)
		}
	case []string:
		for _, s := range list {
			raw = append(raw, s)
		}
	default:
		if _, ok := models.ToInt(v); !ok {
			return nil
		}
		raw = []any{v}
	}

	return uniquePositive(raw)
}

func uniquePositive(raw []any) []int {
	var out []int
	seen := make(map[int]struct{}, len(raw))
	for _, v := range raw {
		n, ok := models.ToInt(v)
		if !ok || n <= 0 {
			continue
		}
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}
