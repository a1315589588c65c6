package service

import (
	"database/sql"
	"errors"
	"time"

	"ai-marketing-api/model"
	"ai-marketing-api/repository"
)

var ErrContentNotFound = errors.New("content not found")

type ContentService struct {
	repo repository.IContentRepository
	ai   *AIService
	now  func() time.Time
}

func NewContentService(repo repository.IContentRepository, ai *AIService) *ContentService {
	return &ContentService{repo: repo, ai: ai, now: time.Now}
}

// Generate renders templated copy without persisting anything; saving is
// a separate, explicit step.
func (s *ContentService) Generate(req *model.GenerateContentRequest) *model.GeneratedContent {
	channel := model.Channel(req.Channel)
	if channel == "" {
		channel = model.ChannelInstagram
	}
	contentType := req.ContentType
	if contentType == "" {
		contentType = "social_post"
	}
	topic := req.Topic
	if topic == "" {
		topic = "our latest offer"
	}
	tone := model.Tone(req.Tone)
	if tone == "" {
		tone = model.ToneProfessional
	}
	return s.ai.GenerateContent(channel, contentType, topic, tone, req.BrandName, req.Keywords)
}

// Variations generates the same topic in the first three tones.
func (s *ContentService) Variations(req *model.VariationsRequest) []*model.ContentVariation {
	channel := model.Channel(req.Channel)
	if channel == "" {
		channel = model.ChannelInstagram
	}

	variations := make([]*model.ContentVariation, 0, 3)
	for _, tone := range AllTones[:3] {
		result := s.ai.GenerateContent(channel, "social_post", req.Topic, tone, req.BrandName, nil)
		variations = append(variations, &model.ContentVariation{Tone: tone, GeneratedContent: *result})
	}
	return variations
}

func (s *ContentService) Create(userID int, req *model.CreateContentRequest) (*model.ContentItem, error) {
	item := &model.ContentItem{
		UserID:      userID,
		CampaignID:  req.CampaignID,
		Channel:     model.Channel(req.Channel),
		ContentType: req.ContentType,
		Title:       req.Title,
		Body:        req.Body,
		Tone:        model.Tone(req.Tone),
		Hashtags:    req.Hashtags,
		Status:      model.ContentStatus(req.Status),
		ScheduledAt: req.ScheduledAt,
	}
	if item.Channel == "" {
		item.Channel = model.ChannelInstagram
	}
	if item.ContentType == "" {
		item.ContentType = "social_post"
	}
	if item.Tone == "" {
		item.Tone = model.ToneProfessional
	}
	if item.Status == "" {
		item.Status = model.ContentStatusDraft
	}
	if item.Hashtags == nil {
		item.Hashtags = []string{}
	}

	if err := s.repo.Create(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *ContentService) List(userID int, filter repository.ContentFilter) ([]*model.ContentItem, error) {
	return s.repo.List(userID, filter)
}

func (s *ContentService) Update(id, userID int, req *model.UpdateContentRequest) (*model.ContentItem, error) {
	item, err := s.repo.GetByID(id, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrContentNotFound
		}
		return nil, err
	}

	if req.Title != nil {
		item.Title = *req.Title
	}
	if req.Body != nil {
		item.Body = *req.Body
	}
	if req.Tone != nil {
		item.Tone = model.Tone(*req.Tone)
	}
	if req.Hashtags != nil {
		item.Hashtags = *req.Hashtags
	}
	if req.Status != nil {
		item.Status = model.ContentStatus(*req.Status)
	}
	if req.ScheduledAt != nil {
		item.ScheduledAt = *req.ScheduledAt
	}

	if err := s.repo.Update(item); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrContentNotFound
		}
		return nil, err
	}
	return item, nil
}

// Publish stamps the item as published right now.
func (s *ContentService) Publish(id, userID int) (string, error) {
	publishedAt := s.now().Format(time.RFC3339)
	if err := s.repo.Publish(id, userID, publishedAt); err != nil {
		if err == sql.ErrNoRows {
			return "", ErrContentNotFound
		}
		return "", err
	}
	return publishedAt, nil
}

func (s *ContentService) Delete(id, userID int) error {
	if err := s.repo.Delete(id, userID); err != nil {
		if err == sql.ErrNoRows {
			return ErrContentNotFound
		}
		return err
	}
	return nil
}
