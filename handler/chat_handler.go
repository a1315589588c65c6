package handler

import (
	"net/http"
	"strconv"

	"ai-marketing-api/common"
	"ai-marketing-api/model"
	"ai-marketing-api/service"
)

type ChatHandler struct {
	chat *service.ChatService
}

func NewChatHandler(chat *service.ChatService) *ChatHandler {
	return &ChatHandler{chat: chat}
}

// Send godoc
// @Summary      Send a message to the marketing assistant
// @Tags         chat
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body model.ChatMessageRequest true "Message payload"
// @Success      200 {object} map[string]string
// @Failure      400 {object} map[string]string
// @Router       /api/chat [post]
func (h *ChatHandler) Send(w http.ResponseWriter, r *http.Request) *common.AppError {
	user, appErr := requireUser(r)
	if appErr != nil {
		return appErr
	}

	var req model.ChatMessageRequest
	if !common.ValidateAndDecode(w, r, &req) {
		return nil
	}

	reply, at, err := h.chat.SendMessage(r.Context(), user.ID, req.Message, req.Context)
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not process message", err)
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"response":  reply,
		"timestamp": at.Format("2006-01-02T15:04:05"),
	})
	return nil
}

// History godoc
// @Summary      Chat history
// @Tags         chat
// @Produce      json
// @Security     BearerAuth
// @Param        limit query int false "Maximum messages to return (default 50)"
// @Success      200 {array} model.ChatMessage
// @Router       /api/chat/history [get]
func (h *ChatHandler) History(w http.ResponseWriter, r *http.Request) *common.AppError {
	user, appErr := requireUser(r)
	if appErr != nil {
		return appErr
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return common.NewAppError(http.StatusBadRequest, "limit must be a positive number", err)
		}
		limit = n
	}

	messages, err := h.chat.History(user.ID, limit)
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not load history", err)
	}
	writeJSON(w, http.StatusOK, messages)
	return nil
}

// Clear godoc
// @Summary      Clear chat history
// @Tags         chat
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} map[string]string
// @Router       /api/chat/history [delete]
func (h *ChatHandler) Clear(w http.ResponseWriter, r *http.Request) *common.AppError {
	user, appErr := requireUser(r)
	if appErr != nil {
		return appErr
	}

	if err := h.chat.Clear(user.ID); err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not clear history", err)
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Chat history cleared"})
	return nil
}
