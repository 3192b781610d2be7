package main

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"dinnerpoll/clock"
	"dinnerpoll/config"
	"dinnerpoll/db"
	"dinnerpoll/middleware"
	"dinnerpoll/router"
	"dinnerpoll/store"
	"dinnerpoll/sweeper"
)

func main() {
	var err error

	// Local/dev convenience; missing .env is fine
	_ = godotenv.Load()

	// Parse configuration
	cfg, err := config.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Connect to the database (sqlite by default, postgres via -t)
	dbConn, err := sql.Open(driverName(cfg.DatabaseType), cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	// Verify connection
	if err := dbConn.Ping(); err != nil {
		slog.Error("database ping failed", "error", err)
		os.Exit(1)
	}

	// Create schema and seed the settings singleton
	if err := db.CreateSchema(dbConn); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	if err := db.SeedSettings(dbConn); err != nil {
		slog.Error("settings seeding failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready", "type", cfg.DatabaseType)

	st := store.New(dbConn)
	clk := clock.System{}

	// Retention sweeper runs in-process
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go sweeper.New(st, clk).Run(ctx, cfg.SweepEvery)

	// Create router
	mux := router.NewRouter(st, clk, cfg)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		cancel()
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}

func driverName(databaseType string) string {
	if databaseType == "postgres" {
		return "postgres"
	}
	return "sqlite"
}
