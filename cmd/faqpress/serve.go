// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package main

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"faqpress/internal/cache"
	"faqpress/internal/database"
	"faqpress/internal/faq"
	"faqpress/internal/handlers"
	"faqpress/internal/middleware"
	"faqpress/internal/models"
	"faqpress/internal/record"
	"faqpress/internal/render"
	"faqpress/internal/router"
	"faqpress/internal/store"
	"faqpress/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Serve FAQ lists as HTML at /faq/{uid} and as JSON at /api/faq/{uid}.
Valkey is optional: without it fragments are rendered on every request and
the API rate limit is kept in memory.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

func runServe() error {
	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
		"db_driver", cfg.DBDriver,
	)

	db, driver, err := openDB(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	// Seed development data (no-op if data already exists).
	if cfg.IsDev() {
		if err := database.Seed(db); err != nil {
			return err
		}
	}

	procConf, err := cfg.Processor()
	if err != nil {
		return err
	}

	renderer, err := render.New()
	if err != nil {
		return err
	}

	stores := store.New(db, store.DialectFor(driver))
	pipeline := faq.New(stores.Pages, stores.FAQs, stores.Categories, stores.Relations)
	pipeline.SetRecordResolver(record.NewResolver(faq.DefaultTable, models.SanitizeIdentifier(models.ToString(procConf["table"]))))

	// Valkey backs the fragment cache and the API limiter when reachable.
	var fragments handlers.FragmentCache
	var limiter middleware.Limiter
	valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
	if err != nil {
		slog.Warn("valkey unavailable, fragment cache disabled", "error", err)
		ml := middleware.NewMemoryLimiter(cfg.APIRateLimit, time.Minute)
		defer ml.Stop()
		limiter = ml
	} else {
		defer valkeyClient.Close()
		fragments = cache.NewFragmentCache(valkeyClient, cfg.FAQCacheTTL)
		limiter = middleware.NewValkeyLimiter(valkeyClient, cfg.APIRateLimit, time.Minute)
	}

	static, err := fs.Sub(web.StaticFS, "static")
	if err != nil {
		return fmt.Errorf("static assets: %w", err)
	}

	r := router.New(router.Options{
		Public:         handlers.NewPublic(stores.Content, pipeline, procConf, renderer, fragments),
		DB:             db,
		Static:         static,
		Limiter:        limiter,
		AllowedOrigins: cfg.CORSAllowedOrigins,
		TrustedProxies: cfg.TrustedProxies,
	})

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return fmt.Errorf("server failed to start: %w", err)
	case sig := <-quit:
		slog.Info("shutdown signal received", "signal", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	slog.Info("server stopped gracefully")
	return nil
}
