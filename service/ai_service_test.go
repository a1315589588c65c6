package service

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"ai-marketing-api/model"
)

func TestAIService_GenerateContent(t *testing.T) {
	ai := NewAIService()

	t.Run("twitter body respects the character cap", func(t *testing.T) {
		content := ai.GenerateContent(model.ChannelTwitter, "social_post", "summer sale", model.ToneCasual, "Acme", nil)
		assert.Equal(t, model.ChannelTwitter, content.Channel)
		assert.LessOrEqual(t, utf8.RuneCountInString(content.Body), ChannelLimits[model.ChannelTwitter])
		assert.NotEmpty(t, content.CTA)
	})

	t.Run("sms body respects the character cap", func(t *testing.T) {
		content := ai.GenerateContent(model.ChannelSMS, "sms_blast", "flash discount on everything in the store this weekend", model.ToneUrgent, "Acme", nil)
		assert.LessOrEqual(t, utf8.RuneCountInString(content.Body), ChannelLimits[model.ChannelSMS])
	})

	t.Run("truncation counts characters and never splits a rune", func(t *testing.T) {
		topic := strings.Repeat("🎉", 120)
		content := ai.GenerateContent(model.ChannelSMS, "sms_blast", topic, model.ToneUrgent, "Acme", nil)
		assert.Equal(t, ChannelLimits[model.ChannelSMS], utf8.RuneCountInString(content.Body))
		assert.True(t, utf8.ValidString(content.Body))
	})

	t.Run("unknown channel falls back to instagram", func(t *testing.T) {
		content := ai.GenerateContent(model.Channel("myspace"), "social_post", "summer sale", model.ToneCasual, "Acme", nil)
		assert.Equal(t, model.ChannelInstagram, content.Channel)
		assert.NotEmpty(t, content.Hashtags)
	})

	t.Run("unknown tone falls back to professional", func(t *testing.T) {
		content := ai.GenerateContent(model.ChannelEmail, "email", "summer sale", model.Tone("sarcastic"), "Acme", nil)
		assert.Contains(t, content.Title, "Acme")
	})

	t.Run("empty brand gets a placeholder", func(t *testing.T) {
		content := ai.GenerateContent(model.ChannelFacebook, "social_post", "summer sale", model.ToneCasual, "", nil)
		assert.Contains(t, content.Body, "Your Brand")
	})
}

func TestAIService_GenerateCampaignStrategy(t *testing.T) {
	ai := NewAIService()
	channels := []model.Channel{model.ChannelInstagram, model.ChannelEmail}

	strategy := ai.GenerateCampaignStrategy("Summer Launch", "brand_awareness", "young professionals",
		6000, channels, "2025-06-01", "2025-07-27")

	assert.Len(t, strategy.Phases, 3)
	assert.Contains(t, strategy.Phases[0].Phase, "Awareness")
	assert.Contains(t, strategy.Phases[2].Phase, "Conversion")

	// Budget splits evenly across the selected channels.
	assert.Equal(t, "$3000.00", strategy.BudgetAllocation["instagram"])
	assert.Equal(t, "$3000.00", strategy.BudgetAllocation["email"])

	// 8 weeks between the dates shows up in the overview.
	assert.Contains(t, strategy.Overview, "8-week")

	assert.GreaterOrEqual(t, strategy.AIConfidenceScore, 82.0)
	assert.LessOrEqual(t, strategy.AIConfidenceScore, 97.1)
}

func TestAIService_GenerateCampaignStrategy_Defaults(t *testing.T) {
	ai := NewAIService()

	// No channels and unparseable dates still yield a complete plan.
	strategy := ai.GenerateCampaignStrategy("Launch", "sales", "everyone", 0, nil, "", "")

	assert.Len(t, strategy.Phases, 3)
	assert.Contains(t, strategy.Overview, "4-week")
	assert.Len(t, strategy.BudgetAllocation, 3)
	assert.NotEmpty(t, strategy.AudienceSegments)
}

func TestAIService_GenerateCalendar(t *testing.T) {
	ai := NewAIService()

	events := ai.GenerateCalendar(2, 2025)

	assert.LessOrEqual(t, len(events), 60)
	for _, event := range events {
		assert.True(t, strings.HasPrefix(event.EventDate, "2025-02-"), "event %q lands outside the month", event.EventDate)
		assert.Contains(t, ChannelLimits, event.Channel)
		assert.NotEmpty(t, event.Title)
		assert.NotEmpty(t, event.Color)
	}
}

func TestAIService_GenerateAutoReply(t *testing.T) {
	ai := NewAIService()
	faqs := []*model.FAQ{
		{Question: "What are your shipping times?", Answer: "We ship within 2 business days."},
	}

	t.Run("faq word match wins", func(t *testing.T) {
		reply := ai.GenerateAutoReply("how long is shipping to Canada?", faqs)
		assert.Equal(t, "faq", reply.Source)
		assert.Equal(t, 0.95, reply.Confidence)
		assert.Equal(t, "We ship within 2 business days.", reply.Reply)
	})

	t.Run("complaints escalate", func(t *testing.T) {
		reply := ai.GenerateAutoReply("my order arrived broken", nil)
		assert.Equal(t, "escalation", reply.Source)
		assert.True(t, reply.Escalate)
		assert.Equal(t, 0.99, reply.Confidence)
	})

	t.Run("pricing keyword gets the canned reply", func(t *testing.T) {
		reply := ai.GenerateAutoReply("how much does it cost?", nil)
		assert.Equal(t, "ai", reply.Source)
		assert.Contains(t, reply.Reply, "$29/month")
	})

	t.Run("topic bucket outranks escalation on mixed keywords", func(t *testing.T) {
		reply := ai.GenerateAutoReply("how much to fix this problem?", nil)
		assert.Equal(t, "ai", reply.Source)
		assert.False(t, reply.Escalate)
		assert.Contains(t, reply.Reply, "$29/month")
	})

	t.Run("fallback reply confidence stays in range", func(t *testing.T) {
		reply := ai.GenerateAutoReply("hello there", nil)
		assert.Equal(t, "ai", reply.Source)
		assert.GreaterOrEqual(t, reply.Confidence, 0.78)
		assert.LessOrEqual(t, reply.Confidence, 0.95)
	})
}

func TestAIService_GenerateOptimisationTips(t *testing.T) {
	ai := NewAIService()

	tips := ai.GenerateOptimisationTips(map[string]map[string]float64{
		"instagram": {"engagement_rate": 1.5},
		"email":     {"engagement_rate": 4.0},
		"linkedin":  {"engagement_rate": 8.2},
	})

	bySeverity := map[string]string{}
	for _, tip := range tips {
		bySeverity[tip.Channel] = tip.Severity
	}
	assert.Equal(t, "high", bySeverity["instagram"])
	assert.Equal(t, "medium", bySeverity["email"])
	assert.Equal(t, "low", bySeverity["linkedin"])
}

func TestWeekCount(t *testing.T) {
	assert.Equal(t, 8, weekCount("2025-06-01", "2025-07-27"))
	assert.Equal(t, 1, weekCount("2025-06-01", "2025-06-03"))
	// Bad input defaults to a 4-week plan.
	assert.Equal(t, 4, weekCount("", ""))
	assert.Equal(t, 4, weekCount("2025-06-01", "2025-05-01"))
}

func TestFormatThousands(t *testing.T) {
	assert.Equal(t, "999", formatThousands(999))
	assert.Equal(t, "1,200", formatThousands(1200))
	assert.Equal(t, "45,000", formatThousands(45000))
	assert.Equal(t, "1,234,567", formatThousands(1234567))
}

func TestRoundHelpers(t *testing.T) {
	assert.Equal(t, 3.5, round1(3.45))
	assert.Equal(t, 12.34, round2(12.3449))
	// Negative growth figures must round toward the nearer value, not
	// toward zero.
	assert.Equal(t, -4.1, round1(-4.06))
	assert.Equal(t, -2.35, round2(-2.351))
}
