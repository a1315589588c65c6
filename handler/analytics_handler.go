package handler

import (
	"net/http"
	"strconv"

	"ai-marketing-api/common"
	"ai-marketing-api/service"
)

type AnalyticsHandler struct {
	analytics *service.AnalyticsService
	ai        *service.AIService
}

func NewAnalyticsHandler(analytics *service.AnalyticsService, ai *service.AIService) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analytics, ai: ai}
}

// Overview godoc
// @Summary      Dashboard overview metrics
// @Tags         analytics
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} model.AnalyticsOverview
// @Router       /api/analytics/overview [get]
func (h *AnalyticsHandler) Overview(w http.ResponseWriter, r *http.Request) *common.AppError {
	user, appErr := requireUser(r)
	if appErr != nil {
		return appErr
	}
	writeJSON(w, http.StatusOK, h.analytics.GetOverview(user.ID))
	return nil
}

// Engagement godoc
// @Summary      Daily engagement timeline
// @Tags         analytics
// @Produce      json
// @Security     BearerAuth
// @Param        days query int false "Days of history (default 30, max 365)"
// @Success      200 {array} model.EngagementPoint
// @Router       /api/analytics/engagement [get]
func (h *AnalyticsHandler) Engagement(w http.ResponseWriter, r *http.Request) *common.AppError {
	if _, appErr := requireUser(r); appErr != nil {
		return appErr
	}

	days := 30
	if raw := r.URL.Query().Get("days"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 365 {
			return common.NewAppError(http.StatusBadRequest, "days must be between 1 and 365", err)
		}
		days = n
	}
	writeJSON(w, http.StatusOK, h.analytics.GetEngagementTimeline(days))
	return nil
}

// Channels godoc
// @Summary      Per-channel performance
// @Tags         analytics
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} model.ChannelMetrics
// @Router       /api/analytics/channels [get]
func (h *AnalyticsHandler) Channels(w http.ResponseWriter, r *http.Request) *common.AppError {
	if _, appErr := requireUser(r); appErr != nil {
		return appErr
	}
	writeJSON(w, http.StatusOK, h.analytics.GetChannelBreakdown())
	return nil
}

// TopContent godoc
// @Summary      Best performing content
// @Tags         analytics
// @Produce      json
// @Security     BearerAuth
// @Param        limit query int false "Items to return (default 10, max 50)"
// @Success      200 {array} model.TopContentItem
// @Router       /api/analytics/top-content [get]
func (h *AnalyticsHandler) TopContent(w http.ResponseWriter, r *http.Request) *common.AppError {
	if _, appErr := requireUser(r); appErr != nil {
		return appErr
	}

	limit := 10
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 50 {
			return common.NewAppError(http.StatusBadRequest, "limit must be between 1 and 50", err)
		}
		limit = n
	}
	writeJSON(w, http.StatusOK, h.analytics.GetTopContent(limit))
	return nil
}

// Funnel godoc
// @Summary      Conversion funnel
// @Tags         analytics
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} model.FunnelStage
// @Router       /api/analytics/funnel [get]
func (h *AnalyticsHandler) Funnel(w http.ResponseWriter, r *http.Request) *common.AppError {
	if _, appErr := requireUser(r); appErr != nil {
		return appErr
	}
	writeJSON(w, http.StatusOK, h.analytics.GetFunnelData())
	return nil
}

// Demographics godoc
// @Summary      Audience demographics
// @Tags         analytics
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} model.Demographics
// @Router       /api/analytics/demographics [get]
func (h *AnalyticsHandler) Demographics(w http.ResponseWriter, r *http.Request) *common.AppError {
	if _, appErr := requireUser(r); appErr != nil {
		return appErr
	}
	writeJSON(w, http.StatusOK, h.analytics.GetAudienceDemographics())
	return nil
}

// Heatmap godoc
// @Summary      Best-time-to-post heatmap
// @Tags         analytics
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} model.HeatmapCell
// @Router       /api/analytics/heatmap [get]
func (h *AnalyticsHandler) Heatmap(w http.ResponseWriter, r *http.Request) *common.AppError {
	if _, appErr := requireUser(r); appErr != nil {
		return appErr
	}
	writeJSON(w, http.StatusOK, h.analytics.GetHeatmapData())
	return nil
}

// Optimisation godoc
// @Summary      Channel optimisation tips
// @Description  Derives tips from the current per-channel performance snapshot.
// @Tags         analytics
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} model.OptimisationTip
// @Router       /api/analytics/optimisation [get]
func (h *AnalyticsHandler) Optimisation(w http.ResponseWriter, r *http.Request) *common.AppError {
	if _, appErr := requireUser(r); appErr != nil {
		return appErr
	}

	channelData := map[string]map[string]float64{}
	for _, m := range h.analytics.GetChannelBreakdown() {
		channelData[string(m.Channel)] = map[string]float64{
			"engagement_rate": m.EngagementRate,
			"conversion_rate": m.ConversionRate,
			"growth":          m.Growth,
		}
	}
	writeJSON(w, http.StatusOK, h.ai.GenerateOptimisationTips(channelData))
	return nil
}
