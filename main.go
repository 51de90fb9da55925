package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fleetrecord/internal/config"
	router "fleetrecord/internal/http"
	"fleetrecord/internal/repositories"
	"fleetrecord/internal/services"

	"github.com/gin-gonic/gin"
)

func main() {
	env := config.LoadEnv()
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	db := config.ConnectDB(env)
	defer config.CloseDB()

	if err := repositories.EnsureSchema(db); err != nil {
		log.Fatalf("schema bootstrap failed: %v", err)
	}

	services.SetReportCacheTTL(env.ReportCacheTTL)

	r := router.NewRouter(env)

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("server listening on http://localhost%s", env.AppAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("shutdown failed: %v", err)
	}

	log.Println("server stopped cleanly.")
}
