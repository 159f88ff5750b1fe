package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/rpggio/proyek-akademik/internal/config"
	"github.com/rpggio/proyek-akademik/internal/domain/activity"
	"github.com/rpggio/proyek-akademik/internal/domain/project"
	"github.com/rpggio/proyek-akademik/internal/download"
	"github.com/rpggio/proyek-akademik/internal/generator"
	"github.com/rpggio/proyek-akademik/internal/mcp"
	"github.com/rpggio/proyek-akademik/internal/sqlite"
)

const shutdownTimeout = 5 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog := newLogger(cfg)
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("server stopped", "error", err)
		closeLog()
		os.Exit(1)
	}
}

// newLogger writes to stderr in stdio mode so stdout carries only JSON-RPC.
// A configured log path takes precedence over both streams.
func newLogger(cfg config.Config) (*slog.Logger, func()) {
	var out io.Writer = os.Stdout
	if cfg.Transport.Mode == "stdio" {
		out = os.Stderr
	}
	closeFn := func() {}
	if cfg.Log.Path != "" {
		file, err := openCappedLog(cfg.Log.Path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "log file error: %v\n", err)
		} else {
			out = file
			closeFn = func() { _ = file.Close() }
		}
	}
	logger := slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Log.Level),
	}))
	return logger, closeFn
}

func run(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	if err := ensureDBDir(cfg.DB.Path); err != nil {
		return fmt.Errorf("prepare database path: %w", err)
	}
	db, err := sqlite.New(cfg.DB.Path)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.RunMigrations(); err != nil {
		return err
	}

	activitySvc := activity.NewService(sqlite.NewActivityRepository(db), logger)

	gen, err := generator.NewFromSettings(generator.LLMSettings{
		Provider: cfg.LLM.Provider,
		Model:    cfg.LLM.Model,
		APIKey:   cfg.LLM.APIKey,
		BaseURL:  cfg.LLM.BaseURL,
	}, logger, cfg.LLM.Timeout)
	if err != nil {
		return fmt.Errorf("configure generator: %w", err)
	}

	exports, err := download.NewDir(cfg.Export.Dir)
	if err != nil {
		return fmt.Errorf("prepare export directory: %w", err)
	}

	store := project.NewStore(project.Config{
		Storage:    sqlite.NewSlotRepository(db),
		Generator:  gen,
		Prompter:   mcp.Prompter{},
		Downloader: exports,
		Recorder:   activitySvc,
		Logger:     logger,
		SlotKey:    cfg.Store.SlotKey,
		Cooldown:   cfg.Store.Cooldown,
	})
	if err := store.Load(ctx); err != nil {
		// The loaded document is active, only the slot write failed.
		logger.Warn("saving loaded project failed", "error", err)
	}

	server := mcp.NewServer(mcp.Config{
		Store:    store,
		Activity: activitySvc,
		Logger:   logger,
	})

	if cfg.Transport.Mode == "stdio" {
		return serveStdio(ctx, logger, server)
	}
	return serveHTTP(ctx, logger, server, store, fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port))
}

func serveStdio(ctx context.Context, logger *slog.Logger, server *sdkmcp.Server) error {
	logger.Info("starting stdio transport")
	// Run returns when stdin closes or ctx is canceled.
	err := server.Run(ctx, &sdkmcp.StdioTransport{})
	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("stdio server: %w", err)
	}
	logger.Info("shutting down")
	return nil
}

func serveHTTP(ctx context.Context, logger *slog.Logger, server *sdkmcp.Server, store *project.Store, addr string) error {
	mcpHandler := sdkmcp.NewStreamableHTTPHandler(
		func(*http.Request) *sdkmcp.Server { return server },
		&sdkmcp.StreamableHTTPOptions{SessionTimeout: 30 * time.Minute},
	)

	mux := http.NewServeMux()
	mux.Handle("/mcp", mcpHandler)
	mux.Handle("/mcp/", mcpHandler)
	mux.Handle("/health", healthHandler(store))

	httpServer := &http.Server{Addr: addr, Handler: mux}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", addr)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}

// healthHandler reports liveness plus the store flags.
func healthHandler(store *project.Store) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		state := store.State()
		body := map[string]any{
			"status":      "ok",
			"has_project": state.Document != nil,
			"creating":    state.Creating,
			"cooldown":    state.Cooldown,
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(body)
	})
}

func ensureDBDir(path string) error {
	if path == "" || path == ":memory:" {
		return nil
	}
	return ensureParentDir(path)
}

func ensureParentDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

func parseLogLevel(level string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo
	}
	return l
}
