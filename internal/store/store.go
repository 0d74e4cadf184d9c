// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store reads pages, FAQ records, categories and their relations
// from the database. Every query applies the frontend visibility rules, so
// deleted, hidden and out-of-schedule rows never leave this package.
package store

import (
	"database/sql"
	"errors"
	"strconv"
	"strings"
	"time"

	"faqpress/internal/models"
)

// ErrInvalidIdentifier is returned when a table or column name reaching a
// query is not a plain identifier.
var ErrInvalidIdentifier = errors.New("invalid sql identifier")

// Dialect selects the bind parameter syntax of the target database.
type Dialect int

const (
	// Postgres uses numbered $n placeholders.
	Postgres Dialect = iota
	// SQLite uses positional ? placeholders.
	SQLite
)

// DialectFor maps a database/sql driver name to its Dialect.
func DialectFor(driver string) Dialect {
	if driver == "sqlite" {
		return SQLite
	}
	return Postgres
}

// Stores bundles every store over one connection pool.
type Stores struct {
	Pages      *PageStore
	FAQs       *FAQStore
	Categories *CategoryStore
	Relations  *RelationStore
	Content    *ContentStore
}

// New returns all stores for db.
func New(db *sql.DB, dialect Dialect) *Stores {
	return &Stores{
		Pages:      NewPageStore(db, dialect),
		FAQs:       NewFAQStore(db, dialect),
		Categories: NewCategoryStore(db, dialect),
		Relations:  NewRelationStore(db, dialect),
		Content:    NewContentStore(db, dialect),
	}
}

// conn is the shared state of every store.
type conn struct {
	db      *sql.DB
	dialect Dialect
	now     func() time.Time
}

func newConn(db *sql.DB, dialect Dialect) conn {
	return conn{db: db, dialect: dialect, now: time.Now}
}

// args collects bind parameters and renders matching placeholders.
type args struct {
	dialect Dialect
	vals    []any
}

func (c conn) args() *args {
	return &args{dialect: c.dialect}
}

// add binds v and returns its placeholder.
func (a *args) add(v any) string {
	a.vals = append(a.vals, v)
	if a.dialect == SQLite {
		return "?"
	}
	return "$" + strconv.Itoa(len(a.vals))
}

// ints binds every id and returns a comma-separated placeholder list for
// use inside IN (...).
func (a *args) ints(ids []int) string {
	ph := make([]string, len(ids))
	for i, id := range ids {
		ph[i] = a.add(id)
	}
	return strings.Join(ph, ", ")
}

// visible renders the frontend visibility restriction for a table alias.
// Rows must not be deleted or hidden, and must be inside their optional
// start/end time window (unix seconds, 0 meaning unbounded).
func (a *args) visible(alias string, now time.Time) string {
	p := alias + "."
	ts := now.Unix()
	return p + "deleted = 0 AND " + p + "hidden = 0" +
		" AND (" + p + "starttime = 0 OR " + p + "starttime <= " + a.add(ts) + ")" +
		" AND (" + p + "endtime = 0 OR " + p + "endtime > " + a.add(ts) + ")"
}

// scanRows reads every remaining row into a column map.
func scanRows(rows *sql.Rows) ([]models.Row, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	var out []models.Row
	for rows.Next() {
		vals := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}

		row := make(models.Row, len(cols))
		for i, col := range cols {
			if b, ok := vals[i].([]byte); ok {
				row[col] = string(b)
				continue
			}
			row[col] = vals[i]
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
