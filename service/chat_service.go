package service

import (
	"context"
	"time"

	"ai-marketing-api/model"
	"ai-marketing-api/repository"
)

// ChatService stores the conversation and produces assistant replies,
// preferring the Gemini passthrough when it is configured.
type ChatService struct {
	repo   repository.IChatRepository
	ai     *AIService
	gemini *GeminiClient
	now    func() time.Time
}

func NewChatService(repo repository.IChatRepository, ai *AIService, gemini *GeminiClient) *ChatService {
	return &ChatService{repo: repo, ai: ai, gemini: gemini, now: time.Now}
}

// SendMessage persists the user message, builds a reply from the recent
// history, persists the assistant reply and returns it.
func (s *ChatService) SendMessage(ctx context.Context, userID int, message, chatContext string) (string, time.Time, error) {
	userMsg := &model.ChatMessage{
		UserID:  userID,
		Role:    model.ChatRoleUser,
		Message: message,
		Context: chatContext,
	}
	if err := s.repo.Create(userMsg); err != nil {
		return "", time.Time{}, err
	}

	history, err := s.repo.Recent(userID, 6)
	if err != nil {
		return "", time.Time{}, err
	}

	var reply string
	if s.gemini.Enabled() {
		reply = s.gemini.ChatResponse(ctx, message, history)
	}
	if reply == "" {
		reply = s.ai.ChatResponse(message, history)
	}

	assistantMsg := &model.ChatMessage{
		UserID:  userID,
		Role:    model.ChatRoleAssistant,
		Message: reply,
	}
	if err := s.repo.Create(assistantMsg); err != nil {
		return "", time.Time{}, err
	}

	return reply, s.now(), nil
}

func (s *ChatService) History(userID, limit int) ([]*model.ChatMessage, error) {
	if limit <= 0 {
		limit = 50
	}
	return s.repo.History(userID, limit)
}

func (s *ChatService) Clear(userID int) error {
	return s.repo.Clear(userID)
}
