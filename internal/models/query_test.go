// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "testing"

// TestSanitizeOrderBy verifies that only plain identifiers with an optional
// ASC/DESC suffix survive; everything else reverts to the default.
func TestSanitizeOrderBy(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  OrderBy
	}{
		{name: "column and desc", input: "title DESC", want: OrderBy{"title", Desc}},
		{name: "lowercase direction", input: "title desc", want: OrderBy{"title", Desc}},
		{name: "column and asc", input: "crdate ASC", want: OrderBy{"crdate", Asc}},
		{name: "bare column", input: "uid", want: OrderBy{"uid", Asc}},
		{name: "surrounding whitespace", input: "  title   DESC ", want: OrderBy{"title", Desc}},
		{name: "empty", input: "", want: OrderBy{"sorting", Asc}},
		{name: "injection attempt", input: "1; DROP TABLE x", want: OrderBy{"sorting", Asc}},
		{name: "qualified column", input: "i.title DESC", want: OrderBy{"sorting", Asc}},
		{name: "two columns", input: "title, uid", want: OrderBy{"sorting", Asc}},
		{name: "unknown direction", input: "title SIDEWAYS", want: OrderBy{"sorting", Asc}},
		{name: "function call", input: "RANDOM()", want: OrderBy{"sorting", Asc}},
		{name: "comment", input: "title -- DESC", want: OrderBy{"sorting", Asc}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SanitizeOrderBy(tt.input, "sorting")
			if got != tt.want {
				t.Errorf("SanitizeOrderBy(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
			if !got.Valid() {
				t.Errorf("SanitizeOrderBy(%q) produced invalid pair %+v", tt.input, got)
			}
		})
	}
}

func TestSanitizeIdentifier(t *testing.T) {
	tests := map[string]string{
		"tx_faqpress_item":   "tx_faqpress_item",
		"  tx_faqpress_item ": "tx_faqpress_item",
		"":                   "",
		"faq; DROP":          "",
		"faq-item":           "",
		"schema.table":       "",
	}
	for in, want := range tests {
		if got := SanitizeIdentifier(in); got != want {
			t.Errorf("SanitizeIdentifier(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestOrderByValid(t *testing.T) {
	if (OrderBy{Column: "title", Direction: "sideways"}).Valid() {
		t.Error("unknown direction should be invalid")
	}
	if (OrderBy{Column: "title desc", Direction: Asc}).Valid() {
		t.Error("column with spaces should be invalid")
	}
	if got := (OrderBy{Column: "title", Direction: Desc}).String(); got != "title DESC" {
		t.Errorf("String() = %q", got)
	}
}
