// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "html/template"

// FAQ is the typed form of a FAQ row, attached to output entries when
// record resolution is enabled.
type FAQ struct {
	UID        int           `json:"uid"`
	PID        int           `json:"pid"`
	Question   string        `json:"question"`
	Answer     string        `json:"answer"`
	AnswerHTML template.HTML `json:"answer_html"`
	AnswerText string        `json:"answer_text"`
	Slug       string        `json:"slug"`
	Anchor     string        `json:"anchor"`
	Sorting    int           `json:"sorting"`
}

// CategoryEntry wraps a category row as it appears inside items and groups.
type CategoryEntry struct {
	Data   Row `json:"data"`
	Record any `json:"record,omitempty"`
}

// Item is one FAQ in the flat output list, annotated with its categories
// in global category order.
type Item struct {
	Data       Row             `json:"data"`
	Categories []CategoryEntry `json:"categories"`
	Record     any             `json:"record,omitempty"`
}

// Group is one category bucket of the grouped output. The same Item may
// appear in several groups.
type Group struct {
	Category CategoryEntry `json:"category"`
	Items    []Item        `json:"items"`
}

// UncategorizedUID identifies the synthetic group of FAQs without categories.
const UncategorizedUID = 0

// UncategorizedTitle is the title of the synthetic group.
const UncategorizedTitle = "Uncategorized"

// IsUncategorized reports whether g is the synthetic catch-all group.
func (g Group) IsUncategorized() bool {
	return g.Category.Data.UID() == UncategorizedUID
}
