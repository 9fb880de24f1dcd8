package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"jobboard-backend/internal/config"
	"jobboard-backend/internal/database"
)

// MyServer holds what the route handlers need
type MyServer struct {
	DB     *database.DBinstanceStruct
	Config *config.Config

	// limiterClient backs the rate limiter when redis is configured
	limiterClient *redis.Client
}

// NewServer construct new http.Server serving the API on cfg.Server.Port
func NewServer(cfg *config.Config, db *database.DBinstanceStruct) (*http.Server, *MyServer) {
	s := &MyServer{
		DB:     db,
		Config: cfg,
	}

	// Declare Server config
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      s.RegisterRoutes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	return server, s
}

// Close releases the resources held by the routes
func (s *MyServer) Close() error {
	if s.limiterClient != nil {
		return s.limiterClient.Close()
	}
	return nil
}
