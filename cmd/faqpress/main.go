// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package main is the entry point of faqpress: the FAQ list server and its
// maintenance commands.
//
// Usage:
//
//	faqpress serve            start the HTTP server
//	faqpress migrate          apply database migrations
//	faqpress seed             load development data
//	faqpress render <uid>     print the processed lists of one element as JSON
//	faqpress cache flush      drop every cached FAQ fragment
//
// All commands read their configuration from the environment.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
