// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// handler_test.go provides shared test infrastructure: the handlers run
// against the seeded development data in an in-memory SQLite database,
// with a map standing in for the Valkey fragment cache.
package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"

	"faqpress/internal/cache"
	"faqpress/internal/config"
	"faqpress/internal/database"
	"faqpress/internal/faq"
	"faqpress/internal/models"
	"faqpress/internal/record"
	"faqpress/internal/render"
	"faqpress/internal/store"
)

// mapCache is an in-memory FragmentCache.
type mapCache struct {
	mu   sync.Mutex
	data map[string][]byte
	sets int
}

func newMapCache() *mapCache {
	return &mapCache{data: make(map[string][]byte)}
}

func (c *mapCache) Get(_ context.Context, uid int, format string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.data[cache.ElementKey(uid, format)]
	return v, ok
}

func (c *mapCache) Set(_ context.Context, uid int, format string, body []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[cache.ElementKey(uid, format)] = body
	c.sets++
}

// failingFinder fails every lookup.
type failingFinder struct{}

func (failingFinder) FindByUID(context.Context, int) (*models.ContentElement, error) {
	return nil, errors.New("connection reset")
}

// failingPipeline fails every run.
type failingPipeline struct{}

func (failingPipeline) Run(context.Context, map[string]any, models.Row) (*faq.Result, error) {
	return nil, errors.New("select faqs: timeout")
}

// seededStores returns stores over a migrated and seeded in-memory database.
func seededStores(t *testing.T) *store.Stores {
	t.Helper()

	db, err := database.Open(database.DriverSQLite, ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := database.MigrateDriver(db, database.DriverSQLite); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := database.Seed(db); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return store.New(db, store.SQLite)
}

// testPublic wires the handlers the way the serve command does.
func testPublic(t *testing.T, fc FragmentCache) *Public {
	t.Helper()

	st := seededStores(t)
	p := faq.New(st.Pages, st.FAQs, st.Categories, st.Relations)
	p.SetRecordResolver(record.NewResolver(faq.DefaultTable))

	rn, err := render.New()
	if err != nil {
		t.Fatalf("render.New: %v", err)
	}
	return NewPublic(st.Content, p, config.DefaultProcessor(), rn, fc)
}

// testRouter mounts the handlers on their production paths.
func testRouter(pub *Public) http.Handler {
	r := chi.NewRouter()
	r.Get("/faq/{uid}", pub.FAQ)
	r.Get("/api/faq/{uid}", pub.FAQJSON)
	return r
}

func get(t *testing.T, h http.Handler, target string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}
