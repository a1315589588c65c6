package handler

import (
	"net/http"
	"strconv"

	"ai-marketing-api/common"
	"ai-marketing-api/model"
	"ai-marketing-api/service"
)

type CampaignHandler struct {
	campaigns *service.CampaignService
}

func NewCampaignHandler(campaigns *service.CampaignService) *CampaignHandler {
	return &CampaignHandler{campaigns: campaigns}
}

// pathID extracts a numeric {id} segment from the request path.
func pathID(r *http.Request) (int, *common.AppError) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil || id <= 0 {
		return 0, common.NewAppError(http.StatusBadRequest, "Invalid ID in URL path", err)
	}
	return id, nil
}

// requireUser pulls the authenticated user off the request context. The
// auth middleware guarantees it is present on protected routes; the
// check guards against wiring mistakes.
func requireUser(r *http.Request) (*model.User, *common.AppError) {
	user, ok := CurrentUser(r)
	if !ok {
		return nil, common.Unauthorized(nil)
	}
	return user, nil
}

// List godoc
// @Summary      List campaigns
// @Tags         campaigns
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} model.Campaign
// @Router       /api/campaigns [get]
func (h *CampaignHandler) List(w http.ResponseWriter, r *http.Request) *common.AppError {
	user, appErr := requireUser(r)
	if appErr != nil {
		return appErr
	}

	campaigns, err := h.campaigns.List(user.ID)
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not list campaigns", err)
	}
	writeJSON(w, http.StatusOK, campaigns)
	return nil
}

// Create godoc
// @Summary      Create a campaign
// @Tags         campaigns
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body model.CreateCampaignRequest true "Campaign payload"
// @Success      201 {object} model.Campaign
// @Failure      400 {object} map[string]string
// @Router       /api/campaigns [post]
func (h *CampaignHandler) Create(w http.ResponseWriter, r *http.Request) *common.AppError {
	user, appErr := requireUser(r)
	if appErr != nil {
		return appErr
	}

	var req model.CreateCampaignRequest
	if !common.ValidateAndDecode(w, r, &req) {
		return nil
	}

	campaign, err := h.campaigns.Create(user.ID, &req)
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not create campaign", err)
	}
	writeJSON(w, http.StatusCreated, campaign)
	return nil
}

// Get godoc
// @Summary      Fetch a campaign
// @Tags         campaigns
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Campaign ID"
// @Success      200 {object} model.Campaign
// @Failure      404 {object} map[string]string
// @Router       /api/campaigns/{id} [get]
func (h *CampaignHandler) Get(w http.ResponseWriter, r *http.Request) *common.AppError {
	user, appErr := requireUser(r)
	if appErr != nil {
		return appErr
	}
	id, appErr := pathID(r)
	if appErr != nil {
		return appErr
	}

	campaign, err := h.campaigns.Get(id, user.ID)
	if err != nil {
		if err == service.ErrCampaignNotFound {
			return common.NotFound("Campaign not found")
		}
		return common.NewAppError(http.StatusInternalServerError, "Could not fetch campaign", err)
	}
	writeJSON(w, http.StatusOK, campaign)
	return nil
}

// Update godoc
// @Summary      Update a campaign
// @Tags         campaigns
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Campaign ID"
// @Param        request body model.UpdateCampaignRequest true "Fields to change"
// @Success      200 {object} model.Campaign
// @Failure      404 {object} map[string]string
// @Router       /api/campaigns/{id} [put]
func (h *CampaignHandler) Update(w http.ResponseWriter, r *http.Request) *common.AppError {
	user, appErr := requireUser(r)
	if appErr != nil {
		return appErr
	}
	id, appErr := pathID(r)
	if appErr != nil {
		return appErr
	}

	var req model.UpdateCampaignRequest
	if !common.ValidateAndDecode(w, r, &req) {
		return nil
	}

	campaign, err := h.campaigns.Update(id, user.ID, &req)
	if err != nil {
		if err == service.ErrCampaignNotFound {
			return common.NotFound("Campaign not found")
		}
		return common.NewAppError(http.StatusInternalServerError, "Could not update campaign", err)
	}
	writeJSON(w, http.StatusOK, campaign)
	return nil
}

// Delete godoc
// @Summary      Delete a campaign
// @Tags         campaigns
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Campaign ID"
// @Success      200 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Router       /api/campaigns/{id} [delete]
func (h *CampaignHandler) Delete(w http.ResponseWriter, r *http.Request) *common.AppError {
	user, appErr := requireUser(r)
	if appErr != nil {
		return appErr
	}
	id, appErr := pathID(r)
	if appErr != nil {
		return appErr
	}

	if err := h.campaigns.Delete(id, user.ID); err != nil {
		if err == service.ErrCampaignNotFound {
			return common.NotFound("Campaign not found")
		}
		return common.NewAppError(http.StatusInternalServerError, "Could not delete campaign", err)
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Campaign deleted"})
	return nil
}

// GenerateStrategy godoc
// @Summary      Generate a campaign strategy
// @Description  Builds a phased strategy from the campaign's goal, audience, budget and channels and stores it on the campaign.
// @Tags         campaigns
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Campaign ID"
// @Success      200 {object} model.CampaignStrategy
// @Failure      404 {object} map[string]string
// @Router       /api/campaigns/{id}/generate-strategy [post]
func (h *CampaignHandler) GenerateStrategy(w http.ResponseWriter, r *http.Request) *common.AppError {
	user, appErr := requireUser(r)
	if appErr != nil {
		return appErr
	}
	id, appErr := pathID(r)
	if appErr != nil {
		return appErr
	}

	strategy, err := h.campaigns.GenerateStrategy(id, user.ID)
	if err != nil {
		if err == service.ErrCampaignNotFound {
			return common.NotFound("Campaign not found")
		}
		return common.NewAppError(http.StatusInternalServerError, "Could not generate strategy", err)
	}
	writeJSON(w, http.StatusOK, strategy)
	return nil
}

// Stats godoc
// @Summary      Campaign dashboard counters
// @Tags         campaigns
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} model.CampaignStats
// @Router       /api/campaigns/stats [get]
func (h *CampaignHandler) Stats(w http.ResponseWriter, r *http.Request) *common.AppError {
	user, appErr := requireUser(r)
	if appErr != nil {
		return appErr
	}

	stats, err := h.campaigns.Stats(user.ID)
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not compute stats", err)
	}
	writeJSON(w, http.StatusOK, stats)
	return nil
}
