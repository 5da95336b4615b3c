// cmd/server/main.go
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"

	"github.com/blanksgame/blanks/internal/deck"
	"github.com/blanksgame/blanks/internal/handlers"
	"github.com/blanksgame/blanks/internal/middleware"
	"github.com/blanksgame/blanks/internal/session"
)

const (
	reapInterval = 5 * time.Minute
	reapMaxAge   = 5 * time.Minute
)

func main() {
	logger := logrus.New()
	if level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		logger.SetLevel(level)
	}

	// Catalog invariants are static; check them once here rather than
	// per request.
	if err := deck.Validate(); err != nil {
		logger.Fatalf("invalid card catalog: %v", err)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	origins := []string{"*"}
	if raw := os.Getenv("ALLOWED_ORIGINS"); raw != "" {
		origins = strings.Split(raw, ",")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dir := session.NewDirectory(logger)
	dir.StartReaper(ctx, reapInterval, reapMaxAge)

	logMW := middleware.LogMiddleware(logger)

	mux := http.NewServeMux()
	mux.Handle("/health", logMW(handlers.HealthHandler(dir)))
	mux.Handle("/api/status", logMW(handlers.StatusHandler()))
	mux.Handle("/ws", handlers.WSHandler(logger, dir, origins))

	server := &http.Server{
		Addr:              ":" + port,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.WithFields(logrus.Fields{
			"port":    port,
			"origins": origins,
		}).Info("server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("server error: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Warnf("shutdown error: %v", err)
	}
	logger.Info("server closed")
}
