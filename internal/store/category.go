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

// CategoryStore reads category records.
type CategoryStore struct {
	conn
}

// NewCategoryStore returns a new CategoryStore.
func NewCategoryStore(db *sql.DB, dialect Dialect) *CategoryStore {
	return &CategoryStore{conn: newConn(db, dialect)}
}

// SelectCategories returns the visible categories among uids in the given
// order, uid ascending on ties.
func (s *CategoryStore) SelectCategories(ctx context.Context, uids []int, order models.OrderBy) ([]models.Row, error) {
	if len(uids) == 0 {
		return nil, nil
	}
	if !order.Valid() {
		return nil, fmt.Errorf("select categories ordered by %q: %w", order.String(), ErrInvalidIdentifier)
	}

	a := s.args()
	query := `SELECT c.* FROM ` + models.CategoryTable + ` c` +
		` WHERE c.uid IN (` + a.ints(uids) + `) AND ` + a.visible("c", s.now()) +
		` ORDER BY c.` + order.Column + ` ` + string(order.Direction) + `, c.uid ASC`

	rows, err := s.db.QueryContext(ctx, query, a.vals...)
	if err != nil {
		return nil, fmt.Errorf("select categories: %w", err)
	}
	defer rows.Close()

	cats, err := scanRows(rows)
	if err != nil {
		return nil, fmt.Errorf("scan category: %w", err)
	}
	return cats, nil
}
