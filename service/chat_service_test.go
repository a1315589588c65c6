package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"ai-marketing-api/model"
)

type mockChatRepo struct{ mock.Mock }

func (m *mockChatRepo) Create(msg *model.ChatMessage) error {
	args := m.Called(msg)
	return args.Error(0)
}

func (m *mockChatRepo) Recent(userID, limit int) ([]*model.ChatMessage, error) {
	args := m.Called(userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.ChatMessage), args.Error(1)
}

func (m *mockChatRepo) History(userID, limit int) ([]*model.ChatMessage, error) {
	args := m.Called(userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.ChatMessage), args.Error(1)
}

func (m *mockChatRepo) Clear(userID int) error {
	args := m.Called(userID)
	return args.Error(0)
}

// noGemini is a chat service with the external passthrough disabled, so
// replies come from the canned keyword router.
func noGemini(repo *mockChatRepo) *ChatService {
	return NewChatService(repo, NewAIService(), NewGeminiClient("", ""))
}

func TestChatService_SendMessage(t *testing.T) {
	mockRepo := new(mockChatRepo)
	svc := noGemini(mockRepo)

	mockRepo.On("Create", mock.MatchedBy(func(msg *model.ChatMessage) bool {
		return msg.Role == model.ChatRoleUser && msg.Message == "how do I improve my campaign?"
	})).Return(nil).Once()
	mockRepo.On("Recent", 42, 6).Return([]*model.ChatMessage{}, nil).Once()
	mockRepo.On("Create", mock.MatchedBy(func(msg *model.ChatMessage) bool {
		return msg.Role == model.ChatRoleAssistant && msg.Message != ""
	})).Return(nil).Once()

	reply, at, err := svc.SendMessage(context.Background(), 42, "how do I improve my campaign?", "")
	assert.NoError(t, err)
	assert.NotEmpty(t, reply)
	assert.False(t, at.IsZero())
	mockRepo.AssertExpectations(t)
}

func TestChatService_History_DefaultLimit(t *testing.T) {
	mockRepo := new(mockChatRepo)
	svc := noGemini(mockRepo)

	mockRepo.On("History", 42, 50).Return([]*model.ChatMessage{}, nil).Once()

	_, err := svc.History(42, 0)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestChatService_Clear(t *testing.T) {
	mockRepo := new(mockChatRepo)
	svc := noGemini(mockRepo)

	mockRepo.On("Clear", 42).Return(nil).Once()

	assert.NoError(t, svc.Clear(42))
	mockRepo.AssertExpectations(t)
}

func TestAIService_ChatResponse_KeywordRouting(t *testing.T) {
	ai := NewAIService()

	for _, message := range []string{
		"How should I plan my campaign budget?",
		"Give me content ideas",
		"What do my analytics say?",
		"hello",
	} {
		reply := ai.ChatResponse(message, nil)
		assert.NotEmpty(t, reply, "no reply for %q", message)
	}
}
