// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package database

import (
	"database/sql"
	"fmt"
	"log/slog"
)

// seedStatements build a small FAQ site: a page tree, four categories,
// FAQ records spread over the pages and two FAQ list elements, one grouped
// by category and one filtered to payments. Hidden rows are included so the
// visibility rules have something to hide.
var seedStatements = []string{
	`INSERT INTO pages (uid, pid, title, slug, sorting, hidden) VALUES
		(1, 0, 'Help', 'help', 1, 0),
		(2, 1, 'General', 'general', 1, 0),
		(3, 1, 'Billing', 'billing', 2, 0),
		(4, 2, 'Archive', 'archive', 1, 1)`,

	`INSERT INTO sys_category (uid, pid, parent, title, description, slug, sorting, hidden) VALUES
		(1, 1, 0, 'Getting started', 'First steps with your account.', 'getting-started', 1, 0),
		(2, 1, 0, 'Accounts', 'Profile and login questions.', 'accounts', 2, 0),
		(3, 1, 0, 'Payments', 'Invoices, cards and refunds.', 'payments', 3, 0),
		(4, 1, 0, 'Legacy', 'Retired products.', 'legacy', 4, 1)`,

	`INSERT INTO tx_faqpress_item (uid, pid, question, answer, categories, sorting, hidden) VALUES
		(1, 2, 'How do I create an account?', 'Click **Sign up** and follow the steps in the confirmation email.', 2, 1, 0),
		(2, 2, 'Can I change my username?', 'Yes. Open *Settings* and pick a new name. Old links keep working.', 1, 2, 0),
		(3, 3, 'Which payment methods are accepted?', 'Credit cards and SEPA direct debit. See the [pricing page](/pricing) for details.', 1, 1, 0),
		(4, 3, 'Where can I download invoices?', 'Every invoice is listed under **Billing > Invoices** as a PDF.', 2, 2, 0),
		(5, 2, 'Who do I contact for help?', 'Write to support@example.com. We answer within one business day.', 0, 3, 0),
		(6, 4, 'Is the classic plan still available?', 'No, the classic plan was retired.', 1, 1, 0),
		(7, 2, 'Draft: how do refunds work?', 'Not published yet.', 1, 4, 1)`,

	`INSERT INTO sys_category_record_mm (uid_local, uid_foreign, tablenames, fieldname, sorting_foreign) VALUES
		(1, 1, 'tx_faqpress_item', 'categories', 1),
		(2, 1, 'tx_faqpress_item', 'categories', 2),
		(2, 2, 'tx_faqpress_item', 'categories', 1),
		(3, 3, 'tx_faqpress_item', 'categories', 1),
		(3, 4, 'tx_faqpress_item', 'categories', 1),
		(2, 4, 'tx_faqpress_item', 'categories', 2),
		(4, 6, 'tx_faqpress_item', 'categories', 1),
		(3, 7, 'tx_faqpress_item', 'categories', 1)`,

	`INSERT INTO tt_content (uid, pid, ctype, header, pages, recursive_depth,
		faqpress_group_by_category, faqpress_filter_by_category,
		faqpress_open_single_only, faqpress_open_first, sorting) VALUES
		(1, 1, 'faqpress_list', 'Frequently asked questions', '1', 2, 1, '', 1, 1, 1),
		(2, 3, 'faqpress_list', 'Payment questions', '2,3', 0, 0, '3', 0, 0, 1)`,
}

// Seed populates the database with development data. It only runs when no
// content elements exist yet, so calling it repeatedly is safe.
func Seed(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM tt_content").Scan(&count); err != nil {
		return fmt.Errorf("seed check content: %w", err)
	}

	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed begin: %w", err)
	}
	defer tx.Rollback()

	for i, stmt := range seedStatements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("seed statement %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed commit: %w", err)
	}

	slog.Info("database seeded with sample faqs", "elements", 2)
	return nil
}
