// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"fmt"
)

// PageStore reads the page tree.
type PageStore struct {
	conn
}

// NewPageStore returns a new PageStore.
func NewPageStore(db *sql.DB, dialect Dialect) *PageStore {
	return &PageStore{conn: newConn(db, dialect)}
}

// ChildUIDs returns the uids of visible pages directly below any of
// parents, ordered by sorting then uid.
func (s *PageStore) ChildUIDs(ctx context.Context, parents []int) ([]int, error) {
	if len(parents) == 0 {
		return nil, nil
	}

	a := s.args()
	query := `SELECT p.uid FROM pages p WHERE p.pid IN (` + a.ints(parents) + `) AND ` +
		a.visible("p", s.now()) + ` ORDER BY p.sorting, p.uid`

	rows, err := s.db.QueryContext(ctx, query, a.vals...)
	if err != nil {
		return nil, fmt.Errorf("list child pages: %w", err)
	}
	defer rows.Close()

	var uids []int
	for rows.Next() {
		var uid int
		if err := rows.Scan(&uid); err != nil {
			return nil, fmt.Errorf("scan child page: %w", err)
		}
		uids = append(uids, uid)
	}
	return uids, rows.Err()
}
