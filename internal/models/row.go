// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Row is a database record as a column name to value map. Rows are fetched
// once per request and treated as read-only snapshots afterwards.
type Row map[string]any

// UID returns the row's uid column, or 0 when missing or not numeric.
func (r Row) UID() int {
	return r.Int("uid")
}

// PID returns the row's pid (storage page) column.
func (r Row) PID() int {
	return r.Int("pid")
}

// Int reads a column as an integer. Missing or non-numeric values read as 0.
func (r Row) Int(col string) int {
	n, _ := ToInt(r[col])
	return n
}

// String reads a column as a string. Missing values read as "".
func (r Row) String(col string) string {
	return ToString(r[col])
}

// Has reports whether the column is present and not empty.
func (r Row) Has(col string) bool {
	return !IsEmpty(r[col])
}

// ToInt converts a scalar to an int. Strings are trimmed and parsed as
// base-10 integers; anything else that is not a number yields (0, false).
func ToInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int8:
		return int(n), true
	case int16:
		return int(n), true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case uint:
		return int(n), n <= math.MaxInt
	case uint8:
		return int(n), true
	case uint16:
		return int(n), true
	case uint32:
		return int(n), true
	case uint64:
		if n > math.MaxInt {
			return 0, false
		}
		return int(n), true
	case float32:
		return int(n), true
	case float64:
		return int(n), true
	case bool:
		if n {
			return 1, true
		}
		return 0, true
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, false
		}
		return int(i), true
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, false
		}
		return i, true
	case []byte:
		return ToInt(string(n))
	}
	return 0, false
}

// ToString converts a scalar to its string form. nil becomes "".
func ToString(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case []byte:
		return string(s)
	case fmt.Stringer:
		return s.String()
	}
	return fmt.Sprint(v)
}

// IsEmpty reports whether v is nil or the empty string. Zero numbers are
// not empty: a context field holding 0 is a real value.
func IsEmpty(v any) bool {
	switch s := v.(type) {
	case nil:
		return true
	case string:
		return s == ""
	case []byte:
		return len(s) == 0
	}
	return false
}

// Truthy reports whether a configuration value switches a feature on.
// false, 0, "", "0" and nil are off; everything else is on.
func Truthy(v any) bool {
	switch b := v.(type) {
	case nil:
		return false
	case bool:
		return b
	case string:
		s := strings.TrimSpace(b)
		return s != "" && s != "0" && !strings.EqualFold(s, "false")
	}
	if n, ok := ToInt(v); ok {
		return n != 0
	}
	return true
}
