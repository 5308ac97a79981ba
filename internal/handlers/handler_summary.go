package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/nwtrack/networth_backend/internal/core/ports/services"
	"github.com/nwtrack/networth_backend/internal/dto"
	"github.com/nwtrack/networth_backend/internal/middleware"
)

// summaryHandler serves the aggregated net-worth view.
type summaryHandler struct {
	summaryService  portssvc.SummarySvcFacade
	settingsService portssvc.SettingsSvcFacade
}

func newSummaryHandler(sum portssvc.SummarySvcFacade, set portssvc.SettingsSvcFacade) *summaryHandler {
	return &summaryHandler{
		summaryService:  sum,
		settingsService: set,
	}
}

// registerSummaryRoutes registers the summary routes.
func registerSummaryRoutes(rg *gin.RouterGroup, summaryService portssvc.SummarySvcFacade, settingsService portssvc.SettingsSvcFacade) {
	h := newSummaryHandler(summaryService, settingsService)

	summary := rg.Group("/summary")
	{
		summary.GET("", h.getSummary)
		summary.GET("/history", h.getHistory)
	}
}

// getSummary godoc
// @Summary Get the net-worth summary
// @Description Recomputes totals from the user's full account set, with display strings rendered using the user's settings.
// @Tags summary
// @Produce json
// @Success 200 {object} dto.NetWorthSummaryResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /summary [get]
func (h *summaryHandler) getSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	summary, err := h.summaryService.GetSummary(c.Request.Context(), userID)
	if err != nil {
		respondError(c, logger, err, "Failed to compute summary")
		return
	}

	settings, err := h.settingsService.GetSettings(c.Request.Context(), userID)
	if err != nil {
		respondError(c, logger, err, "Failed to load settings")
		return
	}

	c.JSON(http.StatusOK, dto.ToNetWorthSummaryResponse(summary, settings))
}

// getHistory godoc
// @Summary Get the net-worth history
// @Description Returns the recorded net-worth snapshots, oldest first.
// @Tags summary
// @Produce json
// @Success 200 {object} dto.HistoryResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /summary/history [get]
func (h *summaryHandler) getHistory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	snapshots, err := h.summaryService.GetHistory(c.Request.Context(), userID)
	if err != nil {
		respondError(c, logger, err, "Failed to load history")
		return
	}

	c.JSON(http.StatusOK, dto.ToHistoryResponse(snapshots))
}
