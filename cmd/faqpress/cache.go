// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"faqpress/internal/cache"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the fragment cache",
}

var cacheFlushCmd = &cobra.Command{
	Use:   "flush [uid...]",
	Short: "Drop cached FAQ fragments",
	Long: `Drop the cached HTML, fragment and JSON output of the given content
elements, or of every element when no uid is given.`,
	Example: `  # Drop everything
  faqpress cache flush

  # Drop two elements after editing their FAQs
  faqpress cache flush 12 31`,
	RunE: func(cmd *cobra.Command, args []string) error {
		uids := make([]int, 0, len(args))
		for _, a := range args {
			uid, err := strconv.Atoi(a)
			if err != nil || uid <= 0 {
				return fmt.Errorf("invalid element uid %q", a)
			}
			uids = append(uids, uid)
		}

		client, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
		if err != nil {
			return err
		}
		defer client.Close()

		fc := cache.NewFragmentCache(client, cfg.FAQCacheTTL)
		if len(uids) == 0 {
			n, err := fc.InvalidateAll(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "flushed %d keys\n", n)
			return nil
		}

		for _, uid := range uids {
			fc.InvalidateElement(cmd.Context(), uid)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "flushed %d elements\n", len(uids))
		return nil
	},
}

func init() {
	cacheCmd.AddCommand(cacheFlushCmd)
}
