package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"ai-marketing-api/logger"
	"ai-marketing-api/model"
	"ai-marketing-api/repository"
)

var ErrCampaignNotFound = errors.New("campaign not found")

// CampaignService handles campaign business logic with a cache-aside
// listing strategy.
type CampaignService struct {
	repo  repository.ICampaignRepository
	cache ICacheClient
	ai    *AIService
}

func NewCampaignService(repo repository.ICampaignRepository, cache ICacheClient, ai *AIService) *CampaignService {
	return &CampaignService{repo: repo, cache: cache, ai: ai}
}

func campaignsCacheKey(userID int) string {
	return fmt.Sprintf("campaigns:%d", userID)
}

func (s *CampaignService) Create(userID int, req *model.CreateCampaignRequest) (*model.Campaign, error) {
	status := model.CampaignStatus(req.Status)
	if status == "" {
		status = model.CampaignStatusDraft
	}
	channels := req.Channels
	if channels == nil {
		channels = []model.Channel{}
	}

	campaign := &model.Campaign{
		UserID:         userID,
		Name:           req.Name,
		Description:    req.Description,
		Goal:           req.Goal,
		Budget:         req.Budget,
		TargetAudience: req.TargetAudience,
		Channels:       channels,
		Status:         status,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
	}
	if err := s.repo.Create(campaign); err != nil {
		return nil, err
	}
	s.invalidate(userID)
	return campaign, nil
}

func (s *CampaignService) Get(id, userID int) (*model.Campaign, error) {
	campaign, err := s.repo.GetByID(id, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrCampaignNotFound
		}
		return nil, err
	}
	return campaign, nil
}

// List serves from the cache when possible and refills it on a miss.
func (s *CampaignService) List(userID int) ([]*model.Campaign, error) {
	ctx := context.Background()
	key := campaignsCacheKey(userID)

	if cached, err := s.cache.Get(ctx, key).Result(); err == nil {
		var campaigns []*model.Campaign
		if err := json.Unmarshal([]byte(cached), &campaigns); err == nil {
			return campaigns, nil
		}
	}

	campaigns, err := s.repo.ListByUserID(userID)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(campaigns); err == nil {
		s.cache.Set(ctx, key, data, 10*time.Minute)
	}
	return campaigns, nil
}

// Update applies a partial update on top of the stored row.
func (s *CampaignService) Update(id, userID int, req *model.UpdateCampaignRequest) (*model.Campaign, error) {
	campaign, err := s.Get(id, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		campaign.Name = *req.Name
	}
	if req.Description != nil {
		campaign.Description = *req.Description
	}
	if req.Goal != nil {
		campaign.Goal = *req.Goal
	}
	if req.Budget != nil {
		campaign.Budget = *req.Budget
	}
	if req.TargetAudience != nil {
		campaign.TargetAudience = *req.TargetAudience
	}
	if req.Channels != nil {
		campaign.Channels = *req.Channels
	}
	if req.Status != nil {
		campaign.Status = model.CampaignStatus(*req.Status)
	}
	if req.StartDate != nil {
		campaign.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		campaign.EndDate = *req.EndDate
	}

	if err := s.repo.Update(campaign); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrCampaignNotFound
		}
		return nil, err
	}
	s.invalidate(userID)
	return campaign, nil
}

func (s *CampaignService) Delete(id, userID int) error {
	if err := s.repo.Delete(id, userID); err != nil {
		if err == sql.ErrNoRows {
			return ErrCampaignNotFound
		}
		return err
	}
	s.invalidate(userID)
	return nil
}

// GenerateStrategy builds a templated strategy for the campaign and
// persists it on the row.
func (s *CampaignService) GenerateStrategy(id, userID int) (*model.CampaignStrategy, error) {
	campaign, err := s.Get(id, userID)
	if err != nil {
		return nil, err
	}

	goal := campaign.Goal
	if goal == "" {
		goal = "Increase brand awareness"
	}
	audience := campaign.TargetAudience
	if audience == "" {
		audience = "General audience"
	}

	strategy := s.ai.GenerateCampaignStrategy(campaign.Name, goal, audience,
		campaign.Budget, campaign.Channels, campaign.StartDate, campaign.EndDate)

	raw, err := json.Marshal(strategy)
	if err != nil {
		return nil, err
	}
	if err := s.repo.UpdateStrategy(id, userID, raw); err != nil {
		return nil, err
	}
	s.invalidate(userID)
	return strategy, nil
}

func (s *CampaignService) Stats(userID int) (*model.CampaignStats, error) {
	return s.repo.Stats(userID)
}

func (s *CampaignService) invalidate(userID int) {
	if err := s.cache.Del(context.Background(), campaignsCacheKey(userID)).Err(); err != nil {
		logger.Log.WithError(err).Warn("Failed to invalidate campaign cache")
	}
}
