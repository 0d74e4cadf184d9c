// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"regexp"
	"strings"
)

// Table names shared by every content type that carries categories.
const (
	CategoryTable   = "sys_category"
	CategoryMMTable = "sys_category_record_mm"
	PagesTable      = "pages"
	ContentTable    = "tt_content"
)

// Direction is a SQL sort direction. Only the two constants are valid.
type Direction string

const (
	Asc  Direction = "ASC"
	Desc Direction = "DESC"
)

var (
	identifierRe = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
	orderByRe    = regexp.MustCompile(`(?i)^([a-zA-Z0-9_]+)\s+(ASC|DESC)$`)
)

// OrderBy is a sanitized (column, direction) pair. Values built through
// SanitizeOrderBy are safe to interpolate into SQL.
type OrderBy struct {
	Column    string
	Direction Direction
}

// Valid reports whether both parts would pass sanitization unchanged.
func (o OrderBy) Valid() bool {
	return ValidIdentifier(o.Column) && (o.Direction == Asc || o.Direction == Desc)
}

// String renders the pair as "column DIRECTION".
func (o OrderBy) String() string {
	return o.Column + " " + string(o.Direction)
}

// ValidIdentifier reports whether s is a plain table or column name.
func ValidIdentifier(s string) bool {
	return identifierRe.MatchString(s)
}

// SanitizeIdentifier returns the trimmed identifier, or "" when it contains
// anything besides letters, digits and underscores.
func SanitizeIdentifier(s string) string {
	s = strings.TrimSpace(s)
	if !ValidIdentifier(s) {
		return ""
	}
	return s
}

// SanitizeOrderBy parses "column", "column ASC" or "column DESC" (direction
// case-insensitive). Any other input keeps defaultColumn and ASC.
func SanitizeOrderBy(input, defaultColumn string) OrderBy {
	out := OrderBy{Column: defaultColumn, Direction: Asc}

	input = strings.TrimSpace(input)
	if input == "" {
		return out
	}

	candidate := input
	dir := Asc
	if m := orderByRe.FindStringSubmatch(input); m != nil {
		candidate = m[1]
		dir = Direction(strings.ToUpper(m[2]))
	}

	if ValidIdentifier(candidate) {
		out.Column = candidate
		out.Direction = dir
	}
	return out
}

// FAQQuery describes one FAQ row fetch.
type FAQQuery struct {
	Table string
	PIDs  []int
	Order OrderBy

	// CategoryField and FilterCategoryUIDs restrict rows to FAQs related to
	// at least one of the given categories. Empty filter means no restriction.
	CategoryField      string
	FilterCategoryUIDs []int
}

// Relation is one edge of the category junction table: the category
// (uid_local) is attached to a record (uid_foreign) of Table via Field.
type Relation struct {
	Table       string
	Field       string
	ForeignUID  int
	CategoryUID int
}
