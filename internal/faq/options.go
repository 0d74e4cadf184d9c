// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package faq

import "faqpress/internal/models"

type optionKind int

const (
	optionUnset optionKind = iota
	optionLiteral
	optionFieldRef
)

// Option is one processor setting in one of its configuration shapes:
// unset, a literal value, or a reference to a page context field with an
// optional fallback used when that field is empty.
type Option struct {
	kind     optionKind
	value    any
	field    string
	fallback *Option
}

// Literal returns an option holding v.
func Literal(v any) Option {
	return Option{kind: optionLiteral, value: v}
}

// FieldRef returns an option reading the page context field. When the
// field is empty, fallback (if any) is resolved instead.
func FieldRef(field string, fallback *Option) Option {
	return Option{kind: optionFieldRef, field: field, fallback: fallback}
}

// IsSet reports whether the configuration mentioned the option at all.
func (o Option) IsSet() bool {
	return o.kind != optionUnset
}

// ParseOption reads key from a processor configuration. Recognized shapes,
// in priority order:
//
//	key.:  {field: name, ifEmpty: value}   nested reference
//	key:   {field: name, ifEmpty: value}   nested reference (YAML style)
//	key.field: name                        flattened reference, falls back to key
//	key: value                             literal
func ParseOption(conf map[string]any, key string) Option {
	if ref, ok := nestedRef(conf[key+"."]); ok {
		return ref
	}
	if ref, ok := nestedRef(conf[key]); ok {
		return ref
	}

	var literal *Option
	if v, ok := conf[key]; ok && v != nil && !isMap(v) {
		lit := Literal(v)
		literal = &lit
	}

	if field, ok := conf[key+".field"]; ok && !models.IsEmpty(field) {
		return FieldRef(models.ToString(field), literal)
	}
	if literal != nil {
		return *literal
	}
	return Option{}
}

func isMap(v any) bool {
	_, ok := v.(map[string]any)
	return ok
}

// nestedRef interprets v as a {field, ifEmpty} map.
func nestedRef(v any) (Option, bool) {
	m, ok := v.(map[string]any)
	if !ok {
		return Option{}, false
	}
	field, ok := m["field"]
	if !ok || models.IsEmpty(field) {
		return Option{}, false
	}

	var fallback *Option
	if ifEmpty, ok := m["ifEmpty"]; ok && ifEmpty != nil {
		lit := Literal(ifEmpty)
		fallback = &lit
	}
	return FieldRef(models.ToString(field), fallback), true
}

// ResolveRaw returns the option's value without conversion. References to
// empty context fields resolve their fallback, or nil without one.
func ResolveRaw(o Option, data models.Row) any {
	switch o.kind {
	case optionLiteral:
		return o.value
	case optionFieldRef:
		if v := data[o.field]; !models.IsEmpty(v) {
			return v
		}
		if o.fallback != nil {
			return ResolveRaw(*o.fallback, data)
		}
	}
	return nil
}

// ResolveString resolves o to a string, returning def when the option is
// unset or everything it points at is empty.
func ResolveString(o Option, data models.Row, def string) string {
	if s := models.ToString(ResolveRaw(o, data)); s != "" {
		return s
	}
	return def
}

// ResolveInt resolves o to an int. Unset or empty resolves to def; a
// present value that is not a number reads as 0.
func ResolveInt(o Option, data models.Row, def int) int {
	v := ResolveRaw(o, data)
	if models.IsEmpty(v) {
		return def
	}
	n, _ := models.ToInt(v)
	return n
}
