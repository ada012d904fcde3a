package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/linskybing/litreview-go/docs"
	"github.com/linskybing/litreview-go/internal/api/middleware"
	"github.com/linskybing/litreview-go/internal/api/routes"
	"github.com/linskybing/litreview-go/internal/config"
	"github.com/linskybing/litreview-go/internal/config/db"
	"github.com/linskybing/litreview-go/internal/cron"
	"github.com/linskybing/litreview-go/pkg/minio"
)

// @title LitReview API
// @version 1.0
// @description Tickets, reviews and a follow-based feed.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	config.LoadConfig()
	middleware.Init()
	db.Init()
	minio.InitMinio()

	if config.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.LoggingMiddleware())

	services := routes.RegisterRoutes(router, db.DB)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cron.StartCleanupTask(ctx, services.Audit, config.AuditRetentionDays)

	srv := &http.Server{
		Addr:    ":" + config.ServerPort,
		Handler: router,
	}
	go func() {
		log.Printf("Starting API server on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down API server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Graceful shutdown failed: %v", err)
	}
}
