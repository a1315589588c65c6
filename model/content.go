package model

import "time"

type ContentItem struct {
	ID              int           `json:"id"`
	UserID          int           `json:"user_id"`
	CampaignID      *int          `json:"campaign_id,omitempty"`
	Channel         Channel       `json:"channel"`
	ContentType     string        `json:"content_type"`
	Title           string        `json:"title"`
	Body            string        `json:"body"`
	Tone            Tone          `json:"tone"`
	Hashtags        []string      `json:"hashtags"`
	Status          ContentStatus `json:"status"`
	ScheduledAt     string        `json:"scheduled_at,omitempty"`
	PublishedAt     string        `json:"published_at,omitempty"`
	EngagementScore float64       `json:"engagement_score"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

// GeneratedContent is the templated generator's output for one channel.
type GeneratedContent struct {
	Channel              Channel  `json:"channel"`
	ContentType          string   `json:"content_type"`
	Title                string   `json:"title"`
	Body                 string   `json:"body"`
	Hashtags             []string `json:"hashtags"`
	CTA                  string   `json:"cta"`
	EmojiSuggestions     []string `json:"emoji_suggestions"`
	EstimatedReach       string   `json:"estimated_reach"`
	EngagementPrediction string   `json:"engagement_prediction"`
	AITips               []string `json:"ai_tips"`
}

// ContentVariation pairs a tone with the copy generated for it.
type ContentVariation struct {
	Tone Tone `json:"tone"`
	GeneratedContent
}
