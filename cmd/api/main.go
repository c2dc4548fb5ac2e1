// Package main is the entry point for the itinerary planner API server.
// Its sole responsibility is wiring dependencies together and starting the
// server. No business logic belongs here.
package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/hyunwoo-ji/tabiori/internal/catalog"
	"github.com/hyunwoo-ji/tabiori/internal/config"
	"github.com/hyunwoo-ji/tabiori/internal/handler"
	"github.com/hyunwoo-ji/tabiori/internal/idgen"
	"github.com/hyunwoo-ji/tabiori/internal/middleware"
	"github.com/hyunwoo-ji/tabiori/internal/repo"
	"github.com/hyunwoo-ji/tabiori/internal/schedule"
	"github.com/hyunwoo-ji/tabiori/internal/share"
	"github.com/hyunwoo-ji/tabiori/internal/wizard"
	"github.com/hyunwoo-ji/tabiori/migrations"
)

// maxBodySize caps request bodies at 1 MiB; itinerary payloads are tiny.
const maxBodySize = 1 << 20

// migrate applies pending migrations. goose needs database/sql, not a pgx
// pool, so it gets its own short-lived connection.
func migrate(dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return err
	}
	_, err = provider.Up(context.Background())
	return err
}

func main() {
	// --- Config -----------------------------------------------------------
	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	// JSON handler writes machine-readable output suitable for log aggregators.
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// --- Catalog ----------------------------------------------------------
	cat, err := catalog.Load()
	if err != nil {
		slog.Error("failed to load place catalog", "error", err)
		os.Exit(1)
	}

	// --- Core -------------------------------------------------------------
	ids := idgen.UUID{}
	store := schedule.NewStore(ids)
	engine := wizard.NewEngine(cat, rand.New(rand.NewSource(time.Now().UnixNano())))

	// --- Database (optional) ----------------------------------------------
	// Without DATABASE_URL the server runs memory-only: trips live for the
	// lifetime of the process. With it, every mutation is written through and
	// the stored trips are loaded back on startup.
	var saver handler.Saver
	if cfg.DatabaseURL != "" {
		pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
		if err != nil {
			slog.Error("failed to create database pool", "error", err)
			os.Exit(1)
		}
		defer pool.Close()
		if err := pool.Ping(context.Background()); err != nil {
			slog.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}

		if err := migrate(cfg.DatabaseURL); err != nil {
			slog.Error("failed to run migrations", "error", err)
			os.Exit(1)
		}

		trips := repo.NewTripRepo(pool)
		loaded, err := trips.LoadAll(context.Background())
		if err != nil {
			slog.Error("failed to load stored trips", "error", err)
			os.Exit(1)
		}
		store.ReplaceAll(loaded)
		saver = trips

		slog.Info("database connection established", "trips_loaded", len(loaded))
	} else {
		slog.Info("no DATABASE_URL set, running memory-only")
	}

	// --- Router -----------------------------------------------------------
	// Middleware order: RequestID → RealIP → Logger → Recoverer → CORS → body cap.
	srv := handler.NewServer(handler.Deps{
		Store:   store,
		Catalog: cat,
		Codec:   share.NewCodec(ids),
		Wizard:  engine,
		Builder: wizard.NewBuilder(engine, ids),
		Saver:   saver,
		BaseURL: cfg.BaseURL,
		Log:     logger,
	})

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(maxBodySize))
	r.Mount("/", srv.Router())

	// --- HTTP Server ------------------------------------------------------
	// Explicit timeouts prevent slowloris and resource exhaustion attacks.
	httpSrv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown: wait for OS signal, then give in-flight requests
	// up to 15 seconds to complete before forcefully closing.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "addr", httpSrv.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}
