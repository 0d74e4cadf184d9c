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

// ContentStore reads content elements, the page blocks that carry the FAQ
// plugin settings.
type ContentStore struct {
	conn
}

// NewContentStore returns a new ContentStore.
func NewContentStore(db *sql.DB, dialect Dialect) *ContentStore {
	return &ContentStore{conn: newConn(db, dialect)}
}

// FindByUID retrieves a visible content element. Returns nil if not found.
func (s *ContentStore) FindByUID(ctx context.Context, uid int) (*models.ContentElement, error) {
	a := s.args()
	query := `SELECT t.* FROM ` + models.ContentTable + ` t WHERE t.uid = ` + a.add(uid) +
		` AND ` + a.visible("t", s.now())

	rows, err := s.db.QueryContext(ctx, query, a.vals...)
	if err != nil {
		return nil, fmt.Errorf("find content element: %w", err)
	}
	defer rows.Close()

	found, err := scanRows(rows)
	if err != nil {
		return nil, fmt.Errorf("scan content element: %w", err)
	}
	if len(found) == 0 {
		return nil, nil
	}
	return &models.ContentElement{Row: found[0]}, nil
}

// ListUIDs returns the uids of all visible content elements of the given
// type, in page order.
func (s *ContentStore) ListUIDs(ctx context.Context, ctype string) ([]int, error) {
	a := s.args()
	query := `SELECT t.uid FROM ` + models.ContentTable + ` t WHERE t.ctype = ` + a.add(ctype) +
		` AND ` + a.visible("t", s.now()) + ` ORDER BY t.pid, t.sorting, t.uid`

	rows, err := s.db.QueryContext(ctx, query, a.vals...)
	if err != nil {
		return nil, fmt.Errorf("list content elements: %w", err)
	}
	defer rows.Close()

	var uids []int
	for rows.Next() {
		var uid int
		if err := rows.Scan(&uid); err != nil {
			return nil, fmt.Errorf("scan content element uid: %w", err)
		}
		uids = append(uids, uid)
	}
	return uids, rows.Err()
}
