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

	"github.com/danielhkuo/ten-rounds/cliparse"
	"github.com/danielhkuo/ten-rounds/db"
	"github.com/danielhkuo/ten-rounds/experiment"
	"github.com/danielhkuo/ten-rounds/router"
	"github.com/danielhkuo/ten-rounds/session"
)

func main() {
	var err error

	// Load .env if present (dev convenience; env vars win in production)
	_ = godotenv.Load()

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Connect to the database (postgres in production, sqlite for dev)
	driver := "postgres"
	if cfg.DatabaseType == "sqlite" {
		driver = "sqlite"
	}
	dbConn, err := sql.Open(driver, cfg.DatabaseURL)
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
	if _, err := db.EnsureState(dbConn, cfg.Title); err != nil {
		slog.Error("experiment state init failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready", "type", cfg.DatabaseType)

	// Session store: Redis when configured, in-memory otherwise
	var sessions session.Store
	if cfg.RedisAddr != "" {
		redisStore, err := session.NewRedisStore(cfg.RedisAddr)
		if err != nil {
			slog.Error("redis connection failed", "error", err)
			os.Exit(1)
		}
		defer redisStore.Close()
		sessions = redisStore
		slog.Info("Session store ready", "backend", "redis", "addr", cfg.RedisAddr)
	} else {
		sessions = session.NewMemoryStore()
		slog.Warn("Using in-memory session store; sessions are lost on restart")
	}

	// Create router
	mux := router.NewRouter(dbConn, cfg, sessions, experiment.System)

	// Create server
	server := http.Server{
		Handler: mux,
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
