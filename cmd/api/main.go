package main

import (
	"database/sql"
	"log"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/mwansamulenga/vendormaster-backend/internal/logging"
	"github.com/mwansamulenga/vendormaster-backend/internal/modules/sequence"
	"github.com/mwansamulenga/vendormaster-backend/internal/modules/vendor"
	"github.com/mwansamulenga/vendormaster-backend/internal/platform/config"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, reading configuration from environment")
	}
	cfg := config.FromEnv()
	logging.Setup(cfg.LogLevel, cfg.LogFormat)

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal(err)
	}
	slog.Info("connected to database")

	// ── Router ──────────────────────────────────────────────
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"message":"Vendor Management System API"}`))
	})

	// ── Vendor master data ──────────────────────────────────
	sequencer := sequence.NewSequencer(sequence.NewPostgresRepository(db))
	vendorRepo := vendor.NewPostgresRepository(db)
	vendorService := vendor.NewService(vendorRepo, sequencer)
	vendor.NewHandler(vendorService).RegisterRoutes(router)

	// ── Start Server ────────────────────────────────────────
	slog.Info("vendor master API listening", "addr", cfg.Addr)
	log.Fatal(http.ListenAndServe(cfg.Addr, router))
}
