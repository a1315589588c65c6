package handler

import (
	"net/http"

	"ai-marketing-api/common"
	"ai-marketing-api/model"
	"ai-marketing-api/service"
)

type AutoReplyHandler struct {
	autoreply *service.AutoReplyService
}

func NewAutoReplyHandler(autoreply *service.AutoReplyService) *AutoReplyHandler {
	return &AutoReplyHandler{autoreply: autoreply}
}

// ListRules godoc
// @Summary      List auto-reply rules
// @Tags         autoreply
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} model.AutoReplyRule
// @Router       /api/autoreply/rules [get]
func (h *AutoReplyHandler) ListRules(w http.ResponseWriter, r *http.Request) *common.AppError {
	user, appErr := requireUser(r)
	if appErr != nil {
		return appErr
	}

	rules, err := h.autoreply.ListRules(user.ID)
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not list rules", err)
	}
	writeJSON(w, http.StatusOK, rules)
	return nil
}

// CreateRule godoc
// @Summary      Create an auto-reply rule
// @Tags         autoreply
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body model.CreateRuleRequest true "Rule payload"
// @Success      201 {object} model.AutoReplyRule
// @Failure      400 {object} map[string]string
// @Router       /api/autoreply/rules [post]
func (h *AutoReplyHandler) CreateRule(w http.ResponseWriter, r *http.Request) *common.AppError {
	user, appErr := requireUser(r)
	if appErr != nil {
		return appErr
	}

	var req model.CreateRuleRequest
	if !common.ValidateAndDecode(w, r, &req) {
		return nil
	}

	rule, err := h.autoreply.CreateRule(user.ID, &req)
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not create rule", err)
	}
	writeJSON(w, http.StatusCreated, rule)
	return nil
}

// UpdateRule godoc
// @Summary      Update an auto-reply rule
// @Tags         autoreply
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Rule ID"
// @Param        request body model.UpdateRuleRequest true "Fields to change"
// @Success      200 {object} model.AutoReplyRule
// @Failure      404 {object} map[string]string
// @Router       /api/autoreply/rules/{id} [put]
func (h *AutoReplyHandler) UpdateRule(w http.ResponseWriter, r *http.Request) *common.AppError {
	user, appErr := requireUser(r)
	if appErr != nil {
		return appErr
	}
	id, appErr := pathID(r)
	if appErr != nil {
		return appErr
	}

	var req model.UpdateRuleRequest
	if !common.ValidateAndDecode(w, r, &req) {
		return nil
	}

	rule, err := h.autoreply.UpdateRule(id, user.ID, &req)
	if err != nil {
		if err == service.ErrRuleNotFound {
			return common.NotFound("Rule not found")
		}
		return common.NewAppError(http.StatusInternalServerError, "Could not update rule", err)
	}
	writeJSON(w, http.StatusOK, rule)
	return nil
}

// DeleteRule godoc
// @Summary      Delete an auto-reply rule
// @Tags         autoreply
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Rule ID"
// @Success      200 {object} map[string]string
// @Router       /api/autoreply/rules/{id} [delete]
func (h *AutoReplyHandler) DeleteRule(w http.ResponseWriter, r *http.Request) *common.AppError {
	user, appErr := requireUser(r)
	if appErr != nil {
		return appErr
	}
	id, appErr := pathID(r)
	if appErr != nil {
		return appErr
	}

	if err := h.autoreply.DeleteRule(id, user.ID); err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not delete rule", err)
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Rule deleted"})
	return nil
}

// ListFAQs godoc
// @Summary      List FAQs
// @Tags         autoreply
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} model.FAQ
// @Router       /api/autoreply/faqs [get]
func (h *AutoReplyHandler) ListFAQs(w http.ResponseWriter, r *http.Request) *common.AppError {
	user, appErr := requireUser(r)
	if appErr != nil {
		return appErr
	}

	faqs, err := h.autoreply.ListFAQs(user.ID)
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not list FAQs", err)
	}
	writeJSON(w, http.StatusOK, faqs)
	return nil
}

// CreateFAQ godoc
// @Summary      Create an FAQ
// @Tags         autoreply
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body model.CreateFAQRequest true "FAQ payload"
// @Success      201 {object} model.FAQ
// @Failure      400 {object} map[string]string
// @Router       /api/autoreply/faqs [post]
func (h *AutoReplyHandler) CreateFAQ(w http.ResponseWriter, r *http.Request) *common.AppError {
	user, appErr := requireUser(r)
	if appErr != nil {
		return appErr
	}

	var req model.CreateFAQRequest
	if !common.ValidateAndDecode(w, r, &req) {
		return nil
	}

	faq, err := h.autoreply.CreateFAQ(user.ID, &req)
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not create FAQ", err)
	}
	writeJSON(w, http.StatusCreated, faq)
	return nil
}

// DeleteFAQ godoc
// @Summary      Delete an FAQ
// @Tags         autoreply
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "FAQ ID"
// @Success      200 {object} map[string]string
// @Router       /api/autoreply/faqs/{id} [delete]
func (h *AutoReplyHandler) DeleteFAQ(w http.ResponseWriter, r *http.Request) *common.AppError {
	user, appErr := requireUser(r)
	if appErr != nil {
		return appErr
	}
	id, appErr := pathID(r)
	if appErr != nil {
		return appErr
	}

	if err := h.autoreply.DeleteFAQ(id, user.ID); err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not delete FAQ", err)
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "FAQ deleted"})
	return nil
}

// Simulate godoc
// @Summary      Simulate an incoming message
// @Description  Runs a message through the auto-reply pipeline and returns the reply that would be sent, its source and confidence.
// @Tags         autoreply
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body model.SimulateRequest true "Incoming message"
// @Success      200 {object} model.AutoReply
// @Failure      400 {object} map[string]string
// @Router       /api/autoreply/simulate [post]
func (h *AutoReplyHandler) Simulate(w http.ResponseWriter, r *http.Request) *common.AppError {
	user, appErr := requireUser(r)
	if appErr != nil {
		return appErr
	}

	var req model.SimulateRequest
	if !common.ValidateAndDecode(w, r, &req) {
		return nil
	}

	reply, err := h.autoreply.Simulate(user.ID, req.Message)
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not simulate reply", err)
	}
	writeJSON(w, http.StatusOK, reply)
	return nil
}
