package main

import (
	"context"
	"time"

	"github.com/joho/godotenv"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/D-Diaa/mistral-ocr-mcp/internal/config"
	"github.com/D-Diaa/mistral-ocr-mcp/internal/handle"
	"github.com/D-Diaa/mistral-ocr-mcp/internal/httpserver"
	"github.com/D-Diaa/mistral-ocr-mcp/internal/ocr"
	"github.com/D-Diaa/mistral-ocr-mcp/internal/ocr/gemini"
	"github.com/D-Diaa/mistral-ocr-mcp/internal/ocr/mistral"
	"github.com/D-Diaa/mistral-ocr-mcp/internal/store"
	"github.com/D-Diaa/mistral-ocr-mcp/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	if err := logger.Init("info", false); err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()
	log := logger.Get()

	cfg := config.Load()

	engines := &ocr.Engines{
		Mistral: mistral.New(cfg.MistralAPIKey, cfg.MistralModel),
	}
	if cfg.GeminiAPIKey != "" {
		engines.Gemini = gemini.New(cfg.GeminiAPIKey, cfg.GeminiModel)
	}

	h := handle.New(engines, log).WithEngine(cfg.Engine)

	if cfg.DatabaseURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		runs, err := store.Open(ctx, cfg.DatabaseURL)
		cancel()
		if err != nil {
			log.Warn("run history store unavailable, continuing without it", zap.Error(err))
		} else {
			defer runs.Close()
			h.WithRuns(runs)
		}
	}

	s := handle.NewServer(h)

	switch cfg.Transport {
	case "sse":
		if err := httpserver.StartSSE(":"+cfg.Port, s, log); err != nil {
			log.Fatal("sse server failed", zap.Error(err))
		}
	default:
		log.Info("mcp server listening on stdio",
			zap.String("engine", cfg.Engine),
			zap.String("model", cfg.MistralModel),
		)
		if err := server.ServeStdio(s); err != nil {
			log.Fatal("stdio server failed", zap.Error(err))
		}
	}
}
