package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-refolio-backend/config"
	_ "go-refolio-backend/docs" // Important for Swagger
	v1 "go-refolio-backend/internal/delivery/http/v1"
	"go-refolio-backend/internal/gap"
	"go-refolio-backend/internal/recognition"
	"go-refolio-backend/internal/usecase"
	"go-refolio-backend/pkg/logger"
	"go-refolio-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// @title           Refolio Resume API
// @version         1.0
// @description     Resume recognition, extraction and timeline gap analysis service.
// @host            localhost:8080
// @BasePath        /v1
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting refolio backend", "port", cfg.Port)

	// 3. Setup Recognition Engine
	workerFactory := func() recognition.Worker {
		return recognition.NewHTTPWorker(cfg.OCREngineURL)
	}
	recognizer := recognition.NewAdapter(
		workerFactory,
		time.Duration(cfg.OCRTimeoutSeconds)*time.Second,
		logger.Log,
	)
	defer func() {
		if err := recognizer.Terminate(); err != nil {
			logger.Log.Error("Recognizer terminate failed", "error", err)
		}
	}()

	// 4. Setup Validation
	validate := validator.New()
	validation.RegisterValidators(validate)

	// 5. Setup UseCases
	analyzer := gap.New(cfg.GapThresholdDays, cfg.GapMatchToleranceDays)
	pipelineUC := usecase.NewResumePipelineUsecase(recognizer)
	analysisUC := usecase.NewTimelineAnalysisUsecase(analyzer, cfg.GapMatchToleranceDays, validate)

	// 6. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		PipelineUC: pipelineUC,
		AnalysisUC: analysisUC,
		Config:     cfg,
	})

	// 7. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
