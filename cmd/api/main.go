package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"economics-api/internal/adapter/tradingeconomics"
	"economics-api/internal/handler"
	"economics-api/internal/metrics"
	"economics-api/internal/service"
	"economics-api/internal/usecase"
	"economics-api/pkg/config"
	"economics-api/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment and defaults")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	log := logger.Init(cfg.Log.Level)

	log.Infof("Starting %s...", cfg.App.Name)

	// initialize adapter
	teClient := tradingeconomics.NewClient(cfg.Provider.BaseURL, cfg.Provider.APIKey, cfg.Provider.Timeout, log)
	log.Info("Initialized Trading Economics client")

	// initialize service
	economyService := service.NewIndicatorService(teClient, log)
	log.Info("Initialized service layer")

	// initialize usecase
	economyUsecase := usecase.NewIndicatorUsecase(economyService, log)
	log.Info("Initialized usecase layer")

	economyHandler := handler.NewEconomyHandler(economyUsecase, log)

	httpMetrics := metrics.NewHTTPMetrics(prometheus.DefaultRegisterer)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(handler.RequestLogger(log))
	r.Use(httpMetrics.Middleware())

	// cors middleware, open like the public API is meant to be
	r.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
	}))

	economyHandler.Register(r)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	srv := &http.Server{
		Addr:    ":" + cfg.App.Port,
		Handler: r,
	}

	go func() {
		log.Infof("Server starting on port %s...", cfg.App.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Got shutdown signal...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Error server shutdown:", err)
	}
	log.Info("Server stopped")
}
