// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// Category is the typed form of a sys_category row. FAQs link to any
// number of categories through the junction table.
type Category struct {
	UID         int    `json:"uid"`
	PID         int    `json:"pid"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Slug        string `json:"slug"`
	ParentUID   int    `json:"parent"`
	Sorting     int    `json:"sorting"`
}
