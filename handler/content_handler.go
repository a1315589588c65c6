package handler

import (
	"net/http"
	"strconv"

	"ai-marketing-api/common"
	"ai-marketing-api/model"
	"ai-marketing-api/repository"
	"ai-marketing-api/service"
)

type ContentHandler struct {
	content *service.ContentService
}

func NewContentHandler(content *service.ContentService) *ContentHandler {
	return &ContentHandler{content: content}
}

// Generate godoc
// @Summary      Generate channel-ready copy
// @Description  Produces a draft post for the requested channel, tone and topic. Nothing is persisted.
// @Tags         content
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body model.GenerateContentRequest true "Generation parameters"
// @Success      200 {object} model.GeneratedContent
// @Failure      400 {object} map[string]string
// @Router       /api/content/generate [post]
func (h *ContentHandler) Generate(w http.ResponseWriter, r *http.Request) *common.AppError {
	if _, appErr := requireUser(r); appErr != nil {
		return appErr
	}

	var req model.GenerateContentRequest
	if !common.ValidateAndDecode(w, r, &req) {
		return nil
	}

	writeJSON(w, http.StatusOK, h.content.Generate(&req))
	return nil
}

// Variations godoc
// @Summary      Generate tone variations
// @Description  Returns the same topic rendered in several tones for A/B comparison.
// @Tags         content
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body model.VariationsRequest true "Variation parameters"
// @Success      200 {array} model.ContentVariation
// @Failure      400 {object} map[string]string
// @Router       /api/content/variations [post]
func (h *ContentHandler) Variations(w http.ResponseWriter, r *http.Request) *common.AppError {
	if _, appErr := requireUser(r); appErr != nil {
		return appErr
	}

	var req model.VariationsRequest
	if !common.ValidateAndDecode(w, r, &req) {
		return nil
	}

	writeJSON(w, http.StatusOK, h.content.Variations(&req))
	return nil
}

// Create godoc
// @Summary      Save a content item
// @Tags         content
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body model.CreateContentRequest true "Content payload"
// @Success      201 {object} model.ContentItem
// @Failure      400 {object} map[string]string
// @Router       /api/content [post]
func (h *ContentHandler) Create(w http.ResponseWriter, r *http.Request) *common.AppError {
	user, appErr := requireUser(r)
	if appErr != nil {
		return appErr
	}

	var req model.CreateContentRequest
	if !common.ValidateAndDecode(w, r, &req) {
		return nil
	}

	item, err := h.content.Create(user.ID, &req)
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not save content", err)
	}
	writeJSON(w, http.StatusCreated, item)
	return nil
}

// List godoc
// @Summary      List content items
// @Description  Optional query filters: channel, status, campaign_id.
// @Tags         content
// @Produce      json
// @Security     BearerAuth
// @Param        channel query string false "Channel filter"
// @Param        status query string false "Status filter"
// @Param        campaign_id query int false "Campaign filter"
// @Success      200 {array} model.ContentItem
// @Router       /api/content [get]
func (h *ContentHandler) List(w http.ResponseWriter, r *http.Request) *common.AppError {
	user, appErr := requireUser(r)
	if appErr != nil {
		return appErr
	}

	filter := repository.ContentFilter{
		Channel: r.URL.Query().Get("channel"),
		Status:  r.URL.Query().Get("status"),
	}
	if raw := r.URL.Query().Get("campaign_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			return common.NewAppError(http.StatusBadRequest, "campaign_id must be a number", err)
		}
		filter.CampaignID = id
	}

	items, err := h.content.List(user.ID, filter)
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not list content", err)
	}
	writeJSON(w, http.StatusOK, items)
	return nil
}

// Update godoc
// @Summary      Update a content item
// @Tags         content
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Content ID"
// @Param        request body model.UpdateContentRequest true "Fields to change"
// @Success      200 {object} model.ContentItem
// @Failure      404 {object} map[string]string
// @Router       /api/content/{id} [put]
func (h *ContentHandler) Update(w http.ResponseWriter, r *http.Request) *common.AppError {
	user, appErr := requireUser(r)
	if appErr != nil {
		return appErr
	}
	id, appErr := pathID(r)
	if appErr != nil {
		return appErr
	}

	var req model.UpdateContentRequest
	if !common.ValidateAndDecode(w, r, &req) {
		return nil
	}

	item, err := h.content.Update(id, user.ID, &req)
	if err != nil {
		if err == service.ErrContentNotFound {
			return common.NotFound("Content not found")
		}
		return common.NewAppError(http.StatusInternalServerError, "Could not update content", err)
	}
	writeJSON(w, http.StatusOK, item)
	return nil
}

// Publish godoc
// @Summary      Publish a content item
// @Description  Marks the item published and stamps the publication time.
// @Tags         content
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Content ID"
// @Success      200 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Router       /api/content/{id}/publish [post]
func (h *ContentHandler) Publish(w http.ResponseWriter, r *http.Request) *common.AppError {
	user, appErr := requireUser(r)
	if appErr != nil {
		return appErr
	}
	id, appErr := pathID(r)
	if appErr != nil {
		return appErr
	}

	publishedAt, err := h.content.Publish(id, user.ID)
	if err != nil {
		if err == service.ErrContentNotFound {
			return common.NotFound("Content not found")
		}
		return common.NewAppError(http.StatusInternalServerError, "Could not publish content", err)
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"message":      "Content published",
		"published_at": publishedAt,
	})
	return nil
}

// Delete godoc
// @Summary      Delete a content item
// @Tags         content
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Content ID"
// @Success      200 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Router       /api/content/{id} [delete]
func (h *ContentHandler) Delete(w http.ResponseWriter, r *http.Request) *common.AppError {
	user, appErr := requireUser(r)
	if appErr != nil {
		return appErr
	}
	id, appErr := pathID(r)
	if appErr != nil {
		return appErr
	}

	if err := h.content.Delete(id, user.ID); err != nil {
		if err == service.ErrContentNotFound {
			return common.NotFound("Content not found")
		}
		return common.NewAppError(http.StatusInternalServerError, "Could not delete content", err)
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Content deleted"})
	return nil
}
