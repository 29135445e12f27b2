package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/HerbHall/salesdesk/internal/auth"
	"github.com/HerbHall/salesdesk/internal/config"
	"github.com/HerbHall/salesdesk/internal/event"
	"github.com/HerbHall/salesdesk/internal/server"
	"github.com/HerbHall/salesdesk/internal/settings"
	"github.com/HerbHall/salesdesk/internal/store"
	"github.com/HerbHall/salesdesk/internal/theme"
	"github.com/HerbHall/salesdesk/internal/version"
	"github.com/HerbHall/salesdesk/internal/ws"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Starts the salesdesk API server.

The server opens the SQLite database, applies pending migrations, resolves
the stored theme once under the service principal (theme.resolve_on_start)
and re-resolves it whenever an admin changes the theme record.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(configPath)
	},
}

func runServe(path string) error {
	v, err := config.Load(path)
	if err != nil {
		return err
	}
	cfg, err := config.Decode(v)
	if err != nil {
		return err
	}
	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("salesdesk starting",
		zap.String("version", version.Short()),
		zap.String("git_commit", version.GitCommit),
	)
	if used := v.ConfigFileUsed(); used != "" {
		logger.Info("configuration loaded", zap.String("file", used))
	} else {
		logger.Info("no config file found, using defaults and environment")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if dir := filepath.Dir(cfg.Database.Path); cfg.Database.Path != ":memory:" && dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("create data directory: %w", err)
		}
	}
	db, err := store.New(cfg.Database.Path)
	if err != nil {
		return err
	}
	defer db.Close()
	if err := db.CheckVersion(ctx, version.Short()); err != nil {
		return err
	}
	logger.Info("database opened", zap.String("component", "store"), zap.String("path", cfg.Database.Path))

	bus := event.NewBus(logger.Named("event"))

	// Auth
	userStore, err := auth.NewUserStore(ctx, db)
	if err != nil {
		return fmt.Errorf("initialize auth store: %w", err)
	}
	secret := cfg.Auth.JWTSecret
	if secret == "" {
		// Only reachable in dev mode; tokens won't survive restarts.
		b := make([]byte, 32)
		if _, err := rand.Read(b); err != nil {
			return fmt.Errorf("generate JWT secret: %w", err)
		}
		secret = hex.EncodeToString(b)
		logger.Warn("using auto-generated JWT secret; set auth.jwt_secret to persist sessions",
			zap.String("component", "auth"),
		)
	}
	tokens := auth.NewTokenService([]byte(secret), cfg.Auth.AccessTokenTTL)
	authService := auth.NewService(userStore, tokens, logger.Named("auth"))
	authHandler := auth.NewHandler(authService, logger.Named("auth"))
	logger.Info("auth service initialized",
		zap.String("component", "auth"),
		zap.Duration("access_token_ttl", cfg.Auth.AccessTokenTTL),
	)

	// Settings
	settingsRepo, err := settings.NewRepository(ctx, db)
	if err != nil {
		return fmt.Errorf("initialize settings repository: %w", err)
	}
	settingsHandler := settings.NewHandler(settingsRepo, bus, logger.Named("settings"))

	// Theme
	fetcher := theme.NewFetcher(auth.HasSession, settingsRepo, logger.Named("theme"))
	builder := theme.NewBuilder(fetcher, logger.Named("theme"))
	holder := theme.NewHolder(builder, logger.Named("theme"))
	if cfg.Theme.ResolveOnStart {
		snap := holder.Refresh(auth.ServiceContext(ctx))
		logger.Info("theme resolved", zap.String("component", "theme"), zap.String("state", string(snap.State)))
	}
	unwatch := holder.WatchSettings(bus, settings.TopicThemeUpdated, auth.ServiceContext)
	defer unwatch()
	themeHandler := theme.NewHandler(builder, holder, logger.Named("theme"))

	// Theme stream
	wsHandler := ws.NewHandler(tokens, holder, logger.Named("ws"))
	go wsHandler.Run(ctx)

	addr := cfg.Server.Addr()
	srv := server.New(addr, logger, db.Ping, authHandler,
		server.Options{
			DevMode:   cfg.Server.DevMode,
			RateRPS:   cfg.RateLimit.RPS,
			RateBurst: cfg.RateLimit.Burst,
			ThemeState: func() string {
				return string(holder.Current().State)
			},
		},
		themeHandler, settingsHandler, wsHandler,
	)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()
	logger.Info("salesdesk server ready", zap.String("addr", addr))
	fmt.Fprintf(os.Stderr, "\n  salesdesk %s is listening on %s\n\n", version.Short(), addr)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	select {
	case sig := <-sigCh:
		logger.Info("received shutdown signal", zap.String("signal", sig.String()))
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server: %w", err)
		}
	}

	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", zap.Error(err))
	}
	logger.Info("salesdesk server stopped")
	return nil
}
