package model

import "time"

type AutoReplyRule struct {
	ID             int       `json:"id"`
	UserID         int       `json:"user_id"`
	TriggerKeyword string    `json:"trigger_keyword"`
	ReplyText      string    `json:"reply_text"`
	Channel        string    `json:"channel"` // a Channel value or "all"
	IsActive       bool      `json:"is_active"`
	MatchCount     int       `json:"match_count"`
	CreatedAt      time.Time `json:"created_at"`
}

type FAQ struct {
	ID         int       `json:"id"`
	UserID     int       `json:"user_id"`
	Question   string    `json:"question"`
	Answer     string    `json:"answer"`
	Category   string    `json:"category"`
	UsageCount int       `json:"usage_count"`
	CreatedAt  time.Time `json:"created_at"`
}

// AutoReply is the outcome of matching an incoming message against the
// user's rules, FAQs and the canned fallback replies.
type AutoReply struct {
	Reply      string  `json:"reply"`
	Source     string  `json:"source"` // custom_rule, faq, ai, escalation
	RuleID     int     `json:"rule_id,omitempty"`
	Confidence float64 `json:"confidence"`
	Escalate   bool    `json:"escalate"`
}
