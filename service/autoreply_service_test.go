package service

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"ai-marketing-api/model"
)

type mockAutoReplyRepo struct{ mock.Mock }

func (m *mockAutoReplyRepo) CreateRule(rule *model.AutoReplyRule) error {
	args := m.Called(rule)
	return args.Error(0)
}

func (m *mockAutoReplyRepo) GetRuleByID(id, userID int) (*model.AutoReplyRule, error) {
	args := m.Called(id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AutoReplyRule), args.Error(1)
}

func (m *mockAutoReplyRepo) ListRules(userID int) ([]*model.AutoReplyRule, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.AutoReplyRule), args.Error(1)
}

func (m *mockAutoReplyRepo) ListActiveRules(userID int) ([]*model.AutoReplyRule, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.AutoReplyRule), args.Error(1)
}

func (m *mockAutoReplyRepo) UpdateRule(rule *model.AutoReplyRule) error {
	args := m.Called(rule)
	return args.Error(0)
}

func (m *mockAutoReplyRepo) DeleteRule(id, userID int) error {
	args := m.Called(id, userID)
	return args.Error(0)
}

func (m *mockAutoReplyRepo) IncrementMatchCount(ruleID int) error {
	args := m.Called(ruleID)
	return args.Error(0)
}

func (m *mockAutoReplyRepo) CreateFAQ(faq *model.FAQ) error {
	args := m.Called(faq)
	return args.Error(0)
}

func (m *mockAutoReplyRepo) ListFAQs(userID int) ([]*model.FAQ, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.FAQ), args.Error(1)
}

func (m *mockAutoReplyRepo) DeleteFAQ(id, userID int) error {
	args := m.Called(id, userID)
	return args.Error(0)
}

func TestAutoReplyService_Simulate_CustomRuleWins(t *testing.T) {
	mockRepo := new(mockAutoReplyRepo)
	svc := NewAutoReplyService(mockRepo, NewAIService())

	rules := []*model.AutoReplyRule{
		{ID: 7, UserID: 42, TriggerKeyword: "Discount", ReplyText: "Use code SAVE10 at checkout!", IsActive: true},
	}
	mockRepo.On("ListActiveRules", 42).Return(rules, nil).Once()
	mockRepo.On("IncrementMatchCount", 7).Return(nil).Once()

	reply, err := svc.Simulate(42, "do you have any discount codes?")
	assert.NoError(t, err)
	assert.Equal(t, "custom_rule", reply.Source)
	assert.Equal(t, 7, reply.RuleID)
	assert.Equal(t, "Use code SAVE10 at checkout!", reply.Reply)
	assert.Equal(t, 1.0, reply.Confidence)
	mockRepo.AssertExpectations(t)
}

func TestAutoReplyService_Simulate_FAQFallback(t *testing.T) {
	mockRepo := new(mockAutoReplyRepo)
	svc := NewAutoReplyService(mockRepo, NewAIService())

	mockRepo.On("ListActiveRules", 42).Return([]*model.AutoReplyRule{}, nil).Once()
	faqs := []*model.FAQ{{Question: "How long does shipping take?", Answer: "3-5 business days."}}
	mockRepo.On("ListFAQs", 42).Return(faqs, nil).Once()

	reply, err := svc.Simulate(42, "question about shipping")
	assert.NoError(t, err)
	assert.Equal(t, "faq", reply.Source)
	assert.Equal(t, "3-5 business days.", reply.Reply)
	mockRepo.AssertExpectations(t)
}

func TestAutoReplyService_Simulate_MatchCountFailureIsNonFatal(t *testing.T) {
	mockRepo := new(mockAutoReplyRepo)
	svc := NewAutoReplyService(mockRepo, NewAIService())

	rules := []*model.AutoReplyRule{
		{ID: 3, TriggerKeyword: "refund", ReplyText: "Refunds within 30 days.", IsActive: true},
	}
	mockRepo.On("ListActiveRules", 42).Return(rules, nil).Once()
	mockRepo.On("IncrementMatchCount", 3).Return(sql.ErrConnDone).Once()

	reply, err := svc.Simulate(42, "I want a refund please")
	assert.NoError(t, err)
	assert.Equal(t, "custom_rule", reply.Source)
}

func TestAutoReplyService_CreateRule_DefaultChannel(t *testing.T) {
	mockRepo := new(mockAutoReplyRepo)
	svc := NewAutoReplyService(mockRepo, NewAIService())

	mockRepo.On("CreateRule", mock.MatchedBy(func(rule *model.AutoReplyRule) bool {
		return rule.Channel == "all" && rule.IsActive
	})).Return(nil).Once()

	rule, err := svc.CreateRule(42, &model.CreateRuleRequest{TriggerKeyword: "demo", ReplyText: "Book one here."})
	assert.NoError(t, err)
	assert.Equal(t, 42, rule.UserID)
	mockRepo.AssertExpectations(t)
}

func TestAutoReplyService_UpdateRule_NotFound(t *testing.T) {
	mockRepo := new(mockAutoReplyRepo)
	svc := NewAutoReplyService(mockRepo, NewAIService())

	mockRepo.On("GetRuleByID", 404, 42).Return(nil, sql.ErrNoRows).Once()

	_, err := svc.UpdateRule(404, 42, &model.UpdateRuleRequest{})
	assert.Equal(t, ErrRuleNotFound, err)
}

func TestAutoReplyService_UpdateRule_PartialFields(t *testing.T) {
	mockRepo := new(mockAutoReplyRepo)
	svc := NewAutoReplyService(mockRepo, NewAIService())

	existing := &model.AutoReplyRule{ID: 7, UserID: 42, TriggerKeyword: "price", ReplyText: "Old reply", Channel: "instagram", IsActive: true}
	mockRepo.On("GetRuleByID", 7, 42).Return(existing, nil).Once()
	mockRepo.On("UpdateRule", mock.MatchedBy(func(rule *model.AutoReplyRule) bool {
		return rule.ReplyText == "New reply" && rule.TriggerKeyword == "price" && !rule.IsActive
	})).Return(nil).Once()

	newReply := "New reply"
	inactive := false
	rule, err := svc.UpdateRule(7, 42, &model.UpdateRuleRequest{ReplyText: &newReply, IsActive: &inactive})
	assert.NoError(t, err)
	assert.Equal(t, "instagram", rule.Channel)
	mockRepo.AssertExpectations(t)
}

func TestAutoReplyService_CreateFAQ_DefaultCategory(t *testing.T) {
	mockRepo := new(mockAutoReplyRepo)
	svc := NewAutoReplyService(mockRepo, NewAIService())

	mockRepo.On("CreateFAQ", mock.MatchedBy(func(faq *model.FAQ) bool {
		return faq.Category == "general"
	})).Return(nil).Once()

	faq, err := svc.CreateFAQ(42, &model.CreateFAQRequest{Question: "Do you ship abroad?", Answer: "Yes, worldwide."})
	assert.NoError(t, err)
	assert.Equal(t, 42, faq.UserID)
	mockRepo.AssertExpectations(t)
}
