//go:generate swag init --dir ../../ --generalInfo cmd/api/main.go --output ../../docs --outputTypes go

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"jobboard-backend/internal/auth"
	"jobboard-backend/internal/config"
	"jobboard-backend/internal/database"
	"jobboard-backend/internal/logger"
	"jobboard-backend/internal/server"
)

// @title Job Board API
// @version 1.0
// @description Job postings, applications and filters.

// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg := config.Load()

	if err := logger.Init(cfg); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Close()

	auth.Configure(cfg.JWT)
	if auth.SecretKey == "" {
		logger.Logger.Fatal("SECRET_KEY must be set")
	}

	db, err := database.NewDBInstance(database.FromConfig(cfg))
	if err != nil {
		logger.Logger.Fatal("Database failed to initialize", zap.Error(err))
	}

	httpServer, srv := server.NewServer(cfg, db)

	go func() {
		logger.Logger.Info("Starting HTTP server",
			zap.String("address", httpServer.Addr),
			zap.String("env", cfg.Server.Env),
		)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Logger.Fatal("Failed to start HTTP server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Logger.Error("Server forced to shutdown", zap.Error(err))
	}
	if err := srv.Close(); err != nil {
		logger.Logger.Error("Failed to close rate limiter store", zap.Error(err))
	}
	if err := db.Close(); err != nil {
		logger.Logger.Error("Failed to close database", zap.Error(err))
	}

	logger.Logger.Info("Server exited")
}
