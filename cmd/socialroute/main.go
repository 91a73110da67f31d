package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "golang.org/x/crypto/x509roots/fallback" // Embed CA certs for scratch container
	"golang.org/x/sync/errgroup"

	"github.com/ericfisherdev/socialroute/internal/adapter/driven/content"
	sqliteadapter "github.com/ericfisherdev/socialroute/internal/adapter/driven/sqlite"
	"github.com/ericfisherdev/socialroute/internal/adapter/driven/webhook"
	httphandler "github.com/ericfisherdev/socialroute/internal/adapter/driving/http"
	webhandler "github.com/ericfisherdev/socialroute/internal/adapter/driving/web"
	"github.com/ericfisherdev/socialroute/internal/application"
	"github.com/ericfisherdev/socialroute/internal/config"
	"github.com/ericfisherdev/socialroute/internal/motion"
	"github.com/ericfisherdev/socialroute/internal/telemetry"
)

const serviceName = "socialroute"

func main() {
	if err := run(); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Load configuration (every variable has a default).
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	slog.Info("config loaded",
		"listen_addr", cfg.ListenAddr,
		"db_path", cfg.DBPath,
		"forward_timeout", cfg.ForwardTimeout,
		"tracing", cfg.HasTracing(),
		"site_url", cfg.SiteURL,
	)
	if config.Destination() == "" {
		slog.Warn("contact destination not set, submissions will fail until it is", "env", config.DestinationEnv)
	}

	// 2. Setup signal-based context (SIGINT, SIGTERM).
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Tracing and metrics.
	shutdownTracing, err := telemetry.SetupTracing(ctx, serviceName, cfg.OTelEndpoint)
	if err != nil {
		return err
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			slog.Error("error flushing traces", "error", err)
		}
	}()
	metrics := telemetry.NewMetrics()
	motion.Init()

	// 4. Load the embedded content catalog.
	catalog, err := content.Load()
	if err != nil {
		return err
	}
	slog.Info("catalog loaded", "services", len(catalog.Catalog().Services), "projects", len(catalog.Catalog().Projects))

	// 5. Open the delivery ledger (dual reader/writer with WAL mode).
	db, err := sqliteadapter.NewDB(ctx, cfg.DBPath)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			slog.Error("error closing database", "error", closeErr)
		}
	}()
	slog.Info("database opened", "path", cfg.DBPath)

	// 6. Run migrations on writer connection.
	if err := sqliteadapter.RunMigrations(db.Writer); err != nil {
		return err
	}
	slog.Info("migrations complete")

	// 7. Wire adapters and the contact service.
	ledger := sqliteadapter.NewDeliveryRepo(db)
	forwarder := webhook.NewForwarder(webhook.WithTimeout(cfg.ForwardTimeout))
	contactSvc := application.NewContactService(forwarder, ledger, config.Destination, metrics, catalog.ServiceIDs())

	// 8. Register API and page routes.
	mux := http.NewServeMux()
	httphandler.RegisterAPIRoutes(mux, httphandler.NewHandler(contactSvc, db, metrics.Handler(), slog.Default()))
	webhandler.RegisterRoutes(mux, webhandler.NewHandler(catalog, cfg.SiteURL, slog.Default()))

	// Apply middleware.
	handler := httphandler.ApplyMiddleware(mux, slog.Default(), metrics)

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	// 9. Serve until the signal context ends, then drain.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("http server starting", "addr", cfg.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		slog.Info("shutting down")

		// Graceful shutdown with 10s timeout for in-flight forwards.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("http server shutdown error", "error", err)
		}
		return nil
	})

	slog.Info("socialroute started", "listen_addr", cfg.ListenAddr)

	if err := g.Wait(); err != nil {
		return err
	}

	// 10. Log shutdown complete.
	slog.Info("shutdown complete")
	return nil
}
