package main

import (
	"flag"
	"log/slog"
	"net/http"
	"time"

	"skin-diary/internal/config"
	"skin-diary/internal/handler"
	"skin-diary/internal/logger"
	"skin-diary/internal/middleware"
	"skin-diary/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	configFile := flag.String("config", "", "config file path (e.g. etc/config-dev.yaml)")
	flag.Parse()

	cfg := config.Load(*configFile)
	logger.Init(cfg.Log)

	if cfg.Gemini.APIKey == "" {
		slog.Warn("GEMINI_API_KEY not set, insight requests will fail")
	}

	client := &http.Client{Timeout: time.Duration(cfg.Gemini.TimeoutSeconds) * time.Second}
	aiSvc := service.NewAIService(cfg.Gemini.BaseURL, cfg.Gemini.APIKey, cfg.Gemini.Model, client)

	insightH := handler.NewInsightHandler(aiSvc)
	tipH := handler.NewTipHandler(aiSvc)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
	}))
	r.Use(middleware.RequestID())

	r.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	api := r.Group("/api")
	api.POST("/insights", insightH.Insights)
	api.POST("/consolidate", insightH.Consolidate)
	api.GET("/daily-tip", tipH.DailyTip)

	slog.Info("server starting", "addr", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		slog.Error("server failed", "err", err)
	}
}
