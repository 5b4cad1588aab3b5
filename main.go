package main

import (
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

	"github.com/hivemind-vote/hivemind/cache"
	"github.com/hivemind-vote/hivemind/cliparse"
	"github.com/hivemind-vote/hivemind/consensus"
	"github.com/hivemind-vote/hivemind/db"
	"github.com/hivemind-vote/hivemind/middleware"
	"github.com/hivemind-vote/hivemind/router"
	"github.com/hivemind-vote/hivemind/ws"
)

func main() {
	var err error

	// Optional .env for local development; env vars win when both exist
	if err := godotenv.Load(); err == nil {
		slog.Info("Loaded .env file")
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Connect to the database; the configured type doubles as the
	// registered driver name ("postgres" via lib/pq, "sqlite" via modernc)
	dbConn, err := sql.Open(cfg.DatabaseType, cfg.DatabaseURL)
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

	// Create schema (tables)
	if err := db.CreateSchema(dbConn, cfg.DatabaseType); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready", "type", cfg.DatabaseType)

	// Wire the core: result cache, consensus engine, broadcast hub
	resultCache := cache.New()
	stopFlusher := resultCache.StartFlusher(cfg.CacheFlush)
	defer stopFlusher()

	engine := consensus.New(dbConn, resultCache)
	hub := ws.NewHub()

	// Create router
	mux := router.NewRouter(dbConn, cfg, engine, hub)

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
