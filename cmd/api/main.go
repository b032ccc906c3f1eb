package main

import (
	"database/sql"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/fliphawk/flipship-backend/internal/config"
	"github.com/fliphawk/flipship-backend/internal/modules/analytics"
	"github.com/fliphawk/flipship-backend/internal/modules/auth"
	"github.com/fliphawk/flipship-backend/internal/modules/catalog"
	"github.com/fliphawk/flipship-backend/internal/modules/pricing"
)

func main() {
	logg := logrus.New()
	logg.SetFormatter(&logrus.JSONFormatter{})
	logg.SetLevel(logrus.InfoLevel)
	logg.SetOutput(os.Stdout)

	if err := godotenv.Load(); err != nil {
		logg.Info("no .env file found, reading configuration from environment")
	}
	cfg := config.Load()

	// ── Optional archive database ───────────────────────────
	var archive catalog.Archive
	if cfg.DatabaseURL != "" {
		db, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			logg.WithError(err).Fatal("opening archive database")
		}
		defer db.Close()
		if err := db.Ping(); err != nil {
			logg.WithError(err).Fatal("pinging archive database")
		}
		archive = catalog.NewPostgresArchive(db)
		logg.Info("product archive enabled")
	}

	// ── Router ──────────────────────────────────────────────
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)

	// ── Auth ────────────────────────────────────────────────
	guard := auth.PassThrough
	if cfg.AdminEmail != "" {
		guard = auth.Middleware(cfg.JWTSecret)
	} else {
		logg.Warn("ADMIN_EMAIL not set, mutating endpoints are unprotected")
	}
	authService := auth.NewService(cfg.AdminEmail, cfg.AdminPasswordHash, cfg.JWTSecret)
	auth.NewHandler(authService).RegisterRoutes(router)

	// ── Catalog pipeline ────────────────────────────────────
	store := catalog.NewStore()
	calc := pricing.NewCalculator(cfg.MarkupPercent)
	catalogService := catalog.NewService(store, calc, archive, logg)
	catalog.NewHandler(catalogService, guard).RegisterRoutes(router)

	// ── Analytics ───────────────────────────────────────────
	analyticsService := analytics.NewService(store)
	analytics.NewHandler(analyticsService).RegisterRoutes(router)

	logg.WithFields(logrus.Fields{
		"port":   cfg.Port,
		"markup": cfg.MarkupPercent,
	}).Info("FlipShip API server starting")
	logg.Fatal(http.ListenAndServe(":"+cfg.Port, router))
}
