package service

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"ai-marketing-api/model"
	"ai-marketing-api/repository"
)

type mockContentRepo struct{ mock.Mock }

func (m *mockContentRepo) Create(item *model.ContentItem) error {
	args := m.Called(item)
	return args.Error(0)
}

func (m *mockContentRepo) GetByID(id, userID int) (*model.ContentItem, error) {
	args := m.Called(id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ContentItem), args.Error(1)
}

func (m *mockContentRepo) List(userID int, filter repository.ContentFilter) ([]*model.ContentItem, error) {
	args := m.Called(userID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.ContentItem), args.Error(1)
}

func (m *mockContentRepo) Update(item *model.ContentItem) error {
	args := m.Called(item)
	return args.Error(0)
}

func (m *mockContentRepo) Publish(id, userID int, publishedAt string) error {
	args := m.Called(id, userID, publishedAt)
	return args.Error(0)
}

func (m *mockContentRepo) Delete(id, userID int) error {
	args := m.Called(id, userID)
	return args.Error(0)
}

func TestContentService_Generate_Defaults(t *testing.T) {
	svc := NewContentService(nil, NewAIService())

	content := svc.Generate(&model.GenerateContentRequest{})

	assert.Equal(t, model.ChannelInstagram, content.Channel)
	assert.Equal(t, "social_post", content.ContentType)
	assert.Contains(t, content.Body, "our latest offer")
}

func TestContentService_Variations(t *testing.T) {
	svc := NewContentService(nil, NewAIService())

	variations := svc.Variations(&model.VariationsRequest{Topic: "summer sale", Channel: "twitter"})

	assert.Len(t, variations, 3)
	assert.Equal(t, model.ToneProfessional, variations[0].Tone)
	assert.Equal(t, model.ToneCasual, variations[1].Tone)
	assert.Equal(t, model.ToneUrgent, variations[2].Tone)
	for _, v := range variations {
		assert.LessOrEqual(t, len(v.Body), ChannelLimits[model.ChannelTwitter])
	}
}

func TestContentService_Create_Defaults(t *testing.T) {
	mockRepo := new(mockContentRepo)
	svc := NewContentService(mockRepo, NewAIService())

	mockRepo.On("Create", mock.MatchedBy(func(item *model.ContentItem) bool {
		return item.UserID == 42 &&
			item.Channel == model.ChannelInstagram &&
			item.Status == model.ContentStatusDraft &&
			item.Hashtags != nil
	})).Return(nil).Once()

	item, err := svc.Create(42, &model.CreateContentRequest{Body: "Hello world"})
	assert.NoError(t, err)
	assert.Equal(t, model.ToneProfessional, item.Tone)
	mockRepo.AssertExpectations(t)
}

func TestContentService_Publish(t *testing.T) {
	mockRepo := new(mockContentRepo)
	svc := NewContentService(mockRepo, NewAIService())
	frozen := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return frozen }

	t.Run("stamps the publication time", func(t *testing.T) {
		mockRepo.On("Publish", 1, 42, frozen.Format(time.RFC3339)).Return(nil).Once()

		publishedAt, err := svc.Publish(1, 42)
		assert.NoError(t, err)
		assert.Equal(t, "2025-06-01T12:00:00Z", publishedAt)
	})

	t.Run("missing item maps to not found", func(t *testing.T) {
		mockRepo.On("Publish", 404, 42, mock.Anything).Return(sql.ErrNoRows).Once()

		_, err := svc.Publish(404, 42)
		assert.Equal(t, ErrContentNotFound, err)
	})

	mockRepo.AssertExpectations(t)
}

func TestContentService_Update_NotFound(t *testing.T) {
	mockRepo := new(mockContentRepo)
	svc := NewContentService(mockRepo, NewAIService())

	mockRepo.On("GetByID", 404, 42).Return(nil, sql.ErrNoRows).Once()

	body := "new body"
	_, err := svc.Update(404, 42, &model.UpdateContentRequest{Body: &body})
	assert.Equal(t, ErrContentNotFound, err)
}
