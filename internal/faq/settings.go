// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package faq

import "faqpress/internal/models"

// Defaults applied when the processor configuration leaves a setting out.
const (
	DefaultTable                 = "tx_faqpress_item"
	DefaultCategoryField         = "categories"
	DefaultOrderColumn           = "sorting"
	DefaultFlatKey               = "faqs"
	DefaultGroupedKey            = "faqsByCategory"
	DefaultGroupByCategoryField  = "faqpress_group_by_category"
	DefaultFilterByCategoryField = "faqpress_filter_by_category"
)

// Settings is a processor configuration resolved against one page context.
type Settings struct {
	Table         string
	CategoryField string
	FlatKey       string
	GroupedKey    string

	Order         models.OrderBy
	CategoryOrder models.OrderBy

	PIDs      []int
	Recursive int

	GroupByCategory    bool
	FilterCategoryUIDs []int
	ResolveRecords     bool
}

// FilterActive reports whether FAQs are restricted to selected categories.
func (s Settings) FilterActive() bool {
	return len(s.FilterCategoryUIDs) > 0
}

// ResolveSettings reads every processor option from conf, consulting data
// for field references. It returns false when the configured table name is
// not a plain identifier.
func ResolveSettings(conf map[string]any, data models.Row) (Settings, bool) {
	table := models.SanitizeIdentifier(literalString(conf, "table", DefaultTable))
	if table == "" {
		return Settings{}, false
	}

	groupedKey := literalString(conf, "asGrouped", "")
	if groupedKey == "" {
		groupedKey = literalString(conf, "as", DefaultGroupedKey)
	}

	groupField := literalString(conf, "groupByCategoryField", DefaultGroupByCategoryField)
	filterField := literalString(conf, "filterByCategoryField", DefaultFilterByCategoryField)

	s := Settings{
		Table:         table,
		CategoryField: literalString(conf, "categoryField", DefaultCategoryField),
		FlatKey:       literalString(conf, "asFlat", DefaultFlatKey),
		GroupedKey:    groupedKey,

		Order: models.SanitizeOrderBy(
			ResolveString(ParseOption(conf, "orderBy"), data, DefaultOrderColumn),
			DefaultOrderColumn,
		),
		CategoryOrder: models.SanitizeOrderBy(
			ResolveString(ParseOption(conf, "categoryOrderBy"), data, DefaultOrderColumn),
			DefaultOrderColumn,
		),

		PIDs:      NormalizeIDs(ResolveRaw(ParseOption(conf, "pidInList"), data)),
		Recursive: ResolveInt(ParseOption(conf, "recursive"), data, 0),

		GroupByCategory:    data.Int(groupField) == 1,
		FilterCategoryUIDs: NormalizeIDs(data[filterField]),
		ResolveRecords:     models.Truthy(conf["resolveToRecordObjects"]),
	}
	return s, true
}

// literalString reads a plain string setting, using def when absent or empty.
func literalString(conf map[string]any, key, def string) string {
	if s := models.ToString(conf[key]); s != "" {
		return s
	}
	return def
}
