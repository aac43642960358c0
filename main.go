package main

import (
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/Aashish23092/cas-parser/client"
	"github.com/Aashish23092/cas-parser/config"
	"github.com/Aashish23092/cas-parser/handler"
	"github.com/Aashish23092/cas-parser/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)
	if cfg.LogLevel > slog.LevelDebug {
		gin.SetMode(gin.ReleaseMode)
	}

	// OCR is only needed for scanned statements without a text layer
	var ocr service.OCRClient
	if cfg.OCRFallback {
		ocr = client.NewTesseractClient(cfg.TesseractDataPath)
		logger.Info("OCR fallback enabled", "tessdata", cfg.TesseractDataPath)
	}

	pdfProcessor := service.NewPDFProcessor(ocr, logger)
	casService := service.NewCASService(pdfProcessor, logger, cfg.BatchConcurrency)
	casHandler := handler.NewCASHandler(casService, cfg.MaxFileSize, logger)

	router := handler.NewRouter(handler.RouterConfig{
		APIKey:             cfg.APIKey,
		AllowedOrigins:     cfg.AllowedOrigins,
		RateLimitPerMinute: cfg.RateLimitPerMinute,
		MaxFileSize:        cfg.MaxFileSize,
	}, casHandler, logger)

	logger.Info("starting CAS parser service",
		"port", cfg.ServerPort,
		"api_key_required", cfg.APIKey != "",
		"rate_limit_per_minute", cfg.RateLimitPerMinute,
	)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		logger.Error("failed to start server", "error", err)
		os.Exit(1)
	}
}
