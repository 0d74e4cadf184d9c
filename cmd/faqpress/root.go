// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"faqpress/internal/config"
	"faqpress/internal/database"
)

// Global state set during PersistentPreRunE.
var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "faqpress",
	Short: "FAQ lists with category grouping",
	Long: `faqpress - FAQ lists with category grouping

faqpress loads FAQ records from the storage pages of a content element,
attaches their categories, optionally groups them by category and serves
the result as an accessible accordion or as JSON.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("load configuration: %w", err)
		}
		setupLogger(cfg)
		return nil
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Command group IDs.
const (
	groupServer = "server"
	groupData   = "data"
)

func init() {
	rootCmd.AddGroup(
		&cobra.Group{ID: groupServer, Title: "Server:"},
		&cobra.Group{ID: groupData, Title: "Data:"},
	)

	serveCmd.GroupID = groupServer
	rootCmd.AddCommand(serveCmd)

	migrateCmd.GroupID = groupData
	seedCmd.GroupID = groupData
	renderCmd.GroupID = groupData
	cacheCmd.GroupID = groupData
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(cacheCmd)
}

// setupLogger installs the default logger: text in development, JSON
// everywhere else.
func setupLogger(c *config.Config) {
	opts := &slog.HandlerOptions{Level: c.SlogLevel()}

	var h slog.Handler = slog.NewJSONHandler(os.Stdout, opts)
	if c.IsDev() {
		h = slog.NewTextHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(h))
}

// openDB connects to the configured database and applies pending
// migrations.
func openDB(c *config.Config) (*sql.DB, string, error) {
	driver := database.DriverPostgres
	if c.DBDriver == "sqlite" {
		driver = database.DriverSQLite
	}

	db, err := database.Open(driver, c.DSN())
	if err != nil {
		return nil, "", err
	}
	if err := database.MigrateDriver(db, driver); err != nil {
		db.Close()
		return nil, "", err
	}
	return db, driver, nil
}
