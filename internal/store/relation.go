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

// RelationStore reads the category junction table shared by all record
// tables.
type RelationStore struct {
	conn
}

// NewRelationStore returns a new RelationStore.
func NewRelationStore(db *sql.DB, dialect Dialect) *RelationStore {
	return &RelationStore{conn: newConn(db, dialect)}
}

// SelectRelations returns the category edges of table.field for the given
// record uids in a single query, ordered per record by the relation's
// sorting.
func (s *RelationStore) SelectRelations(ctx context.Context, table, field string, foreignUIDs []int) ([]models.Relation, error) {
	if len(foreignUIDs) == 0 {
		return nil, nil
	}

	a := s.args()
	query := `SELECT mm.uid_foreign, mm.uid_local FROM ` + models.CategoryMMTable + ` mm` +
		` WHERE mm.tablenames = ` + a.add(table) +
		` AND mm.fieldname = ` + a.add(field) +
		` AND mm.uid_foreign IN (` + a.ints(foreignUIDs) + `)` +
		` ORDER BY mm.uid_foreign, mm.sorting_foreign, mm.uid_local`

	rows, err := s.db.QueryContext(ctx, query, a.vals...)
	if err != nil {
		return nil, fmt.Errorf("select category relations: %w", err)
	}
	defer rows.Close()

	var out []models.Relation
	for rows.Next() {
		r := models.Relation{Table: table, Field: field}
		if err := rows.Scan(&r.ForeignUID, &r.CategoryUID); err != nil {
			return nil, fmt.Errorf("scan category relation: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Relate inserts one edge. Existing edges are left untouched.
func (s *RelationStore) Relate(ctx context.Context, r models.Relation, sorting int) error {
	a := s.args()
	query := `INSERT INTO ` + models.CategoryMMTable +
		` (uid_local, uid_foreign, tablenames, fieldname, sorting, sorting_foreign)` +
		` VALUES (` + a.add(r.CategoryUID) + `, ` + a.add(r.ForeignUID) + `, ` + a.add(r.Table) + `, ` +
		a.add(r.Field) + `, 0, ` + a.add(sorting) + `) ON CONFLICT DO NOTHING`

	if _, err := s.db.ExecContext(ctx, query, a.vals...); err != nil {
		return fmt.Errorf("relate category %d to %s:%d: %w", r.CategoryUID, r.Table, r.ForeignUID, err)
	}
	return nil
}
