package handler

import (
	"net/http"
	"sync"
	"time"

	"skin-diary/internal/logger"
	"skin-diary/internal/middleware"
	"skin-diary/internal/model"

	"github.com/gin-gonic/gin"
)

// TipHandler serves the daily wellness tip. The pipeline itself is
// stateless, so the handler caches one tip per calendar day; a cached
// tip from any other date counts as absent and triggers a fresh fetch.
type TipHandler struct {
	ai  InsightService
	now func() time.Time

	mu     sync.Mutex
	cached model.TipResponse
}

func NewTipHandler(ai InsightService) *TipHandler {
	return &TipHandler{ai: ai, now: time.Now}
}

func (h *TipHandler) DailyTip(c *gin.Context) {
	today := h.now().Format("2006-01-02")
	rid := c.GetString(middleware.RequestIDKey)

	h.mu.Lock()
	if h.cached.Date == today && h.cached.Tip != "" {
		cached := h.cached
		h.mu.Unlock()
		c.JSON(http.StatusOK, cached)
		return
	}
	h.mu.Unlock()

	tip, err := h.ai.RequestDailyTip(c.Request.Context())
	if err != nil {
		writeError(c, rid, err)
		return
	}

	resp := model.TipResponse{Tip: tip, Date: today}
	h.mu.Lock()
	h.cached = resp
	h.mu.Unlock()

	logger.Info("tip.refreshed", "request_id", rid, "date", today)
	c.JSON(http.StatusOK, resp)
}
