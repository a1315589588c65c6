package service

import (
	"database/sql"
	"errors"
	"strings"

	"ai-marketing-api/logger"
	"ai-marketing-api/model"
	"ai-marketing-api/repository"
)

var (
	ErrRuleNotFound = errors.New("rule not found")
)

type AutoReplyService struct {
	repo repository.IAutoReplyRepository
	ai   *AIService
}

func NewAutoReplyService(repo repository.IAutoReplyRepository, ai *AIService) *AutoReplyService {
	return &AutoReplyService{repo: repo, ai: ai}
}

func (s *AutoReplyService) ListRules(userID int) ([]*model.AutoReplyRule, error) {
	return s.repo.ListRules(userID)
}

func (s *AutoReplyService) CreateRule(userID int, req *model.CreateRuleRequest) (*model.AutoReplyRule, error) {
	rule := &model.AutoReplyRule{
		UserID:         userID,
		TriggerKeyword: req.TriggerKeyword,
		ReplyText:      req.ReplyText,
		Channel:        req.Channel,
		IsActive:       true,
	}
	if rule.Channel == "" {
		rule.Channel = "all"
	}
	if err := s.repo.CreateRule(rule); err != nil {
		return nil, err
	}
	return rule, nil
}

func (s *AutoReplyService) UpdateRule(id, userID int, req *model.UpdateRuleRequest) (*model.AutoReplyRule, error) {
	rule, err := s.repo.GetRuleByID(id, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrRuleNotFound
		}
		return nil, err
	}

	if req.TriggerKeyword != nil {
		rule.TriggerKeyword = *req.TriggerKeyword
	}
	if req.ReplyText != nil {
		rule.ReplyText = *req.ReplyText
	}
	if req.Channel != nil {
		rule.Channel = *req.Channel
	}
	if req.IsActive != nil {
		rule.IsActive = *req.IsActive
	}

	if err := s.repo.UpdateRule(rule); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrRuleNotFound
		}
		return nil, err
	}
	return rule, nil
}

func (s *AutoReplyService) DeleteRule(id, userID int) error {
	return s.repo.DeleteRule(id, userID)
}

func (s *AutoReplyService) ListFAQs(userID int) ([]*model.FAQ, error) {
	return s.repo.ListFAQs(userID)
}

func (s *AutoReplyService) CreateFAQ(userID int, req *model.CreateFAQRequest) (*model.FAQ, error) {
	faq := &model.FAQ{
		UserID:   userID,
		Question: req.Question,
		Answer:   req.Answer,
		Category: req.Category,
	}
	if faq.Category == "" {
		faq.Category = "general"
	}
	if err := s.repo.CreateFAQ(faq); err != nil {
		return nil, err
	}
	return faq, nil
}

func (s *AutoReplyService) DeleteFAQ(id, userID int) error {
	return s.repo.DeleteFAQ(id, userID)
}

// Simulate runs an incoming message through the reply pipeline: custom
// rules win outright, then FAQs, then the canned generator.
func (s *AutoReplyService) Simulate(userID int, incoming string) (*model.AutoReply, error) {
	rules, err := s.repo.ListActiveRules(userID)
	if err != nil {
		return nil, err
	}

	incomingLower := strings.ToLower(incoming)
	for _, rule := range rules {
		if strings.Contains(incomingLower, strings.ToLower(rule.TriggerKeyword)) {
			if err := s.repo.IncrementMatchCount(rule.ID); err != nil {
				logger.Log.WithError(err).Warn("Failed to bump rule match count")
			}
			return &model.AutoReply{
				Reply:      rule.ReplyText,
				Source:     "custom_rule",
				RuleID:     rule.ID,
				Confidence: 1.0,
			}, nil
		}
	}

	faqs, err := s.repo.ListFAQs(userID)
	if err != nil {
		return nil, err
	}
	return s.ai.GenerateAutoReply(incoming, faqs), nil
}
