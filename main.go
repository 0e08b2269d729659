package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/xiaoqianling/ReiAlgoAPI/internal/config"
	"github.com/xiaoqianling/ReiAlgoAPI/internal/handlers"
	appmiddleware "github.com/xiaoqianling/ReiAlgoAPI/internal/middleware"
	"github.com/xiaoqianling/ReiAlgoAPI/internal/posts"
)

func main() {
	cfg := config.Load()
	initLogger(cfg)
	slog.Info("starting post contents api", "env", cfg.Env, "cors_origins", cfg.CorsAllowedOrigins)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Public routes: RATE_LIMIT_PER_MINUTE requests per minute per client IP.
	limiter := appmiddleware.NewRateLimiter(cfg.RateLimitPerMinute, time.Minute)
	go limiter.Run(ctx)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handlers.NewRouter(cfg, posts.NewMockSource(time.Now), limiter),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		slog.Info("listening", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	slog.Info("shutdown signal received")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
	cancel()
	slog.Info("server stopped")
}

// initLogger installs the default slog handler. It also becomes the sink of the
// standard log package, which chi's request logger writes to.
func initLogger(cfg config.Config) {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	var handler slog.Handler
	if cfg.Env == "local" {
		opts.Level = slog.LevelDebug
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(handler))
}
