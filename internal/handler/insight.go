package handler

import (
	"context"
	"errors"
	"net/http"
	"sort"

	"skin-diary/internal/logger"
	"skin-diary/internal/middleware"
	"skin-diary/internal/model"
	"skin-diary/internal/service"

	"github.com/gin-gonic/gin"
)

// InsightService is the slice of the AI pipeline the handlers use;
// narrowed to an interface so tests can stub the generation call.
type InsightService interface {
	RequestInsights(ctx context.Context, logs []model.LogEntry) (*model.InsightSections, error)
	RequestDrillDown(ctx context.Context, logs []model.LogEntry, question string) (string, error)
	RequestDailyTip(ctx context.Context) (string, error)
}

type InsightHandler struct {
	ai InsightService
}

func NewInsightHandler(ai InsightService) *InsightHandler {
	return &InsightHandler{ai: ai}
}

// Insights handles POST /api/insights. A body without a question asks
// for the full five-section analysis; with a question it is a
// drill-down over the same logs.
func (h *InsightHandler) Insights(c *gin.Context) {
	var req model.InsightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	logs := req.Logs
	if req.Consolidate {
		logs = service.Consolidate(logs)
	}

	ctx := c.Request.Context()
	rid := c.GetString(middleware.RequestIDKey)

	if req.Question != "" {
		logger.Info("insights.drilldown", "request_id", rid, "logs", len(logs), "question", req.Question)
		answer, err := h.ai.RequestDrillDown(ctx, logs, req.Question)
		if err != nil {
			writeError(c, rid, err)
			return
		}
		c.JSON(http.StatusOK, model.DrillDownResponse{Answer: answer})
		return
	}

	logger.Info("insights.analyze", "request_id", rid, "logs", len(logs))
	sections, err := h.ai.RequestInsights(ctx, logs)
	if err != nil {
		writeError(c, rid, err)
		return
	}
	c.JSON(http.StatusOK, sections)
}

// Consolidate handles POST /api/consolidate: merge same-day entries
// without touching the generation service. Output is sorted by date so
// clients get a stable order.
func (h *InsightHandler) Consolidate(c *gin.Context) {
	var req model.ConsolidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	merged := service.Consolidate(req.Logs)
	sort.Slice(merged, func(i, j int) bool { return merged[i].Date < merged[j].Date })
	c.JSON(http.StatusOK, model.ConsolidateResponse{Logs: merged})
}

// writeError maps the pipeline's error taxonomy onto HTTP statuses.
func writeError(c *gin.Context, rid string, err error) {
	var reqErr *service.RequestError
	if !errors.As(err, &reqErr) {
		logger.Error("insights.failed", "request_id", rid, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	status := http.StatusBadGateway
	switch reqErr.Kind {
	case service.KindInsufficientData, service.KindInvalidInput:
		status = http.StatusBadRequest
	case service.KindMisconfigured:
		status = http.StatusInternalServerError
	case service.KindUpstreamFailure:
		status = http.StatusBadGateway
	}

	logger.Warn("insights.failed", "request_id", rid, "kind", string(reqErr.Kind), "err", err)
	c.JSON(status, gin.H{"error": reqErr.Message})
}
