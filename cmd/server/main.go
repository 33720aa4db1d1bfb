/*
main.go - Application entry point

STARTUP SEQUENCE:
  1. Load configuration (env / .env)
  2. Open the SQLite snapshot backend
  3. Open the HR record store (load persisted snapshot or seed)
  4. Configure HTTP router
  5. Start server with graceful shutdown

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM:
  1. Stop accepting new connections
  2. Wait for active requests to complete (configurable timeout)
  3. Close the database connection
  4. Exit

CONFIGURATION (environment, with defaults):
  HTTP_PORT    Server port (8080)
  DB_PATH      SQLite path (ems.db); use ":memory:" for in-memory
  JWT_SECRET   Session token secret
  SESSION_TTL  Session lifetime (12h)
*/
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/emsdesk/hr-engine/api"
	"github.com/emsdesk/hr-engine/auth"
	"github.com/emsdesk/hr-engine/config"
	"github.com/emsdesk/hr-engine/hr"
	"github.com/emsdesk/hr-engine/store/sqlite"
)

func main() {
	cfg := config.Load()

	backend, err := sqlite.New(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer backend.Close()

	store, err := hr.Open(backend, nil)
	if err != nil {
		log.Fatalf("Failed to open HR store: %v", err)
	}

	sessions := auth.NewService(cfg.JWTSecret, cfg.SessionTTL)
	handler := api.NewHandler(store, sessions)
	router := api.NewRouter(handler, cfg.AllowedOrigins)

	server := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	go func() {
		log.Printf("Server starting on http://localhost:%s", cfg.HTTPPort)
		log.Printf("API available at http://localhost:%s/api", cfg.HTTPPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped")
}
