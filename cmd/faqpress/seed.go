// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"faqpress/internal/cache"
	"faqpress/internal/database"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load development data",
	Long: `Insert the sample page tree, categories, FAQs and list elements.
Nothing is inserted when content elements already exist.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, _, err := openDB(cfg)
		if err != nil {
			return err
		}
		defer db.Close()

		if err := database.Seed(db); err != nil {
			return err
		}

		// Fragments rendered before the seed would hide the new rows.
		client, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
		if err != nil {
			slog.Warn("valkey unavailable, cached fragments not flushed", "error", err)
			return nil
		}
		defer client.Close()

		n, err := cache.NewFragmentCache(client, cfg.FAQCacheTTL).InvalidateAll(cmd.Context())
		if err != nil {
			return err
		}
		slog.Info("fragment cache flushed", "keys", n)
		return nil
	},
}
