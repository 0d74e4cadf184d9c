// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package main

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"faqpress/internal/faq"
	"faqpress/internal/models"
	"faqpress/internal/record"
	"faqpress/internal/store"
)

var renderCmd = &cobra.Command{
	Use:   "render <uid>",
	Short: "Print the processed FAQ lists of a content element",
	Long: `Run the FAQ processor for one content element and print its data
with the flat and grouped lists added, as indented JSON.`,
	Example: `  faqpress render 1`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		uid, err := strconv.Atoi(args[0])
		if err != nil || uid <= 0 {
			return fmt.Errorf("invalid element uid %q", args[0])
		}

		db, driver, err := openDB(cfg)
		if err != nil {
			return err
		}
		defer db.Close()

		procConf, err := cfg.Processor()
		if err != nil {
			return err
		}

		stores := store.New(db, store.DialectFor(driver))
		el, err := stores.Content.FindByUID(cmd.Context(), uid)
		if err != nil {
			return err
		}
		if el == nil {
			return fmt.Errorf("content element %d not found", uid)
		}

		pipeline := faq.New(stores.Pages, stores.FAQs, stores.Categories, stores.Relations)
		pipeline.SetRecordResolver(record.NewResolver(faq.DefaultTable, models.SanitizeIdentifier(models.ToString(procConf["table"]))))

		processed, err := pipeline.Process(cmd.Context(), procConf, el.Row, map[string]any{"data": el.Row})
		if err != nil {
			return err
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(processed)
	},
}
