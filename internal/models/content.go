// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// Columns of a FAQ content element that the renderer reads directly.
// Storage scope, grouping and filtering columns are named in the processor
// configuration instead.
const (
	ColumnCType          = "ctype"
	ColumnHeader         = "header"
	ColumnOpenSingleOnly = "faqpress_open_single_only"
	ColumnOpenFirst      = "faqpress_open_first"
)

// CTypeFAQList is the content type of FAQ list elements.
const CTypeFAQList = "faqpress_list"

// ContentElement is a tt_content row placing a FAQ list on a page. Its row
// is the page context the processor configuration refers to.
type ContentElement struct {
	Row Row
}

// UID returns the element's uid.
func (c ContentElement) UID() int {
	return c.Row.UID()
}

// Header returns the element headline.
func (c ContentElement) Header() string {
	return c.Row.String(ColumnHeader)
}

// OpenSingleOnly reports whether opening one answer closes the others.
func (c ContentElement) OpenSingleOnly() bool {
	return c.Row.Int(ColumnOpenSingleOnly) == 1
}

// OpenFirst reports whether the first answer starts expanded.
func (c ContentElement) OpenFirst() bool {
	return c.Row.Int(ColumnOpenFirst) == 1
}
