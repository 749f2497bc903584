package main

import (
	"context"
	"net/http"
	"time"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/Vovarama1992/happy-stt/internal/config"
	"github.com/Vovarama1992/happy-stt/internal/delivery"
	"github.com/Vovarama1992/happy-stt/internal/domain"
	"github.com/Vovarama1992/happy-stt/internal/infra"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {

	_ = godotenv.Load()

	// LOGGER
	zcore, _ := zap.NewProduction()
	zl := logger.NewZapLogger(zcore.Sugar())

	// ENV
	cfg, err := config.Loader{}.Load()
	if err != nil {
		panic("config: " + err.Error())
	}

	// ENGINE
	engine, err := infra.NewEngine(cfg)
	if err != nil {
		panic("stt engine: " + err.Error())
	}

	// warm up before accepting traffic so the first request isn't slow
	zl.Log(logger.LogEntry{
		Level:   "info",
		Message: "pre-loading model",
		Fields:  map[string]any{"model": cfg.Model, "backend": cfg.Backend},
	})

	ctxLoad, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if err := engine.Load(ctxLoad); err != nil {
		panic("model load failed: " + err.Error())
	}

	zl.Log(logger.LogEntry{
		Level:   "info",
		Message: "model ready",
		Fields:  map[string]any{"model": cfg.Model},
	})

	// SERVICES
	stt := domain.NewTranscribeService(engine, "")

	// HANDLERS
	hHealth := delivery.NewHealthHandler(cfg.Model, engine)
	hTranscribe := delivery.NewTranscribeHandler(stt, zl)

	// ROUTER
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	}))

	delivery.RegisterRoutes(r, hHealth, hTranscribe)

	zl.Log(logger.LogEntry{
		Level:   "info",
		Message: "server started",
		Fields:  map[string]any{"port": cfg.Port},
	})

	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		zl.Log(logger.LogEntry{
			Level:   "error",
			Message: "server crashed",
			Error:   err,
		})
	}
}
