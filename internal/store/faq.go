// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"fmt"

	"faqpress/internal/models"
)

// FAQStore reads FAQ records from any table that follows the record
// conventions (uid, pid, sorting and the visibility columns).
type FAQStore struct {
	conn
}

// NewFAQStore returns a new FAQStore.
func NewFAQStore(db *sql.DB, dialect Dialect) *FAQStore {
	return &FAQStore{conn: newConn(db, dialect)}
}

// SelectFAQs returns the visible rows of q.Table stored on q.PIDs in the
// requested order, uid ascending on ties. With a category filter, only rows
// related to at least one filtered category are returned, each once.
func (s *FAQStore) SelectFAQs(ctx context.Context, q models.FAQQuery) ([]models.Row, error) {
	if len(q.PIDs) == 0 {
		return nil, nil
	}
	if !models.ValidIdentifier(q.Table) || !q.Order.Valid() {
		return nil, fmt.Errorf("select faqs from %q ordered by %q: %w", q.Table, q.Order.String(), ErrInvalidIdentifier)
	}

	a := s.args()
	query := `SELECT i.* FROM ` + q.Table + ` i`
	filtered := len(q.FilterCategoryUIDs) > 0
	if filtered {
		query += ` INNER JOIN ` + models.CategoryMMTable + ` mm ON mm.uid_foreign = i.uid`
	}
	query += ` WHERE i.pid IN (` + a.ints(q.PIDs) + `) AND ` + a.visible("i", s.now())
	if filtered {
		query += ` AND mm.tablenames = ` + a.add(q.Table) +
			` AND mm.fieldname = ` + a.add(q.CategoryField) +
			` AND mm.uid_local IN (` + a.ints(q.FilterCategoryUIDs) + `)` +
			` GROUP BY i.uid`
	}
	query += ` ORDER BY i.` + q.Order.Column + ` ` + string(q.Order.Direction) + `, i.uid ASC`

	rows, err := s.db.QueryContext(ctx, query, a.vals...)
	if err != nil {
		return nil, fmt.Errorf("select faqs: %w", err)
	}
	defer rows.Close()

	items, err := scanRows(rows)
	if err != nil {
		return nil, fmt.Errorf("scan faq: %w", err)
	}
	return items, nil
}
