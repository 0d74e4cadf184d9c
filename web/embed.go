// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package web provides the embedded accordion assets served at /static/.
package web

import "embed"

// StaticFS embeds the web/static/ directory tree: the accordion script and
// its default stylesheet.
//
//go:embed all:static
var StaticFS embed.FS
