// file: model/request.go

package model

// SignupRequest defines the payload for creating a new account.
// It includes validation tags to ensure data integrity at the entry point.
type SignupRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"required,min=1,max=100"`
}

// LoginRequest defines the payload for password authentication.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type CreateCampaignRequest struct {
	Name           string    `json:"name" validate:"required,min=1,max=200"`
	Description    string    `json:"description"`
	Goal           string    `json:"goal"`
	Budget         float64   `json:"budget" validate:"gte=0"`
	TargetAudience string    `json:"target_audience"`
	Channels       []Channel `json:"channels" validate:"dive,oneof=instagram facebook twitter linkedin email sms"`
	Status         string    `json:"status" validate:"omitempty,oneof=draft active scheduled completed"`
	StartDate      string    `json:"start_date"`
	EndDate        string    `json:"end_date"`
}

// UpdateCampaignRequest carries a partial update; nil fields keep the
// stored value.
type UpdateCampaignRequest struct {
	Name           *string    `json:"name" validate:"omitempty,min=1,max=200"`
	Description    *string    `json:"description"`
	Goal           *string    `json:"goal"`
	Budget         *float64   `json:"budget" validate:"omitempty,gte=0"`
	TargetAudience *string    `json:"target_audience"`
	Channels       *[]Channel `json:"channels" validate:"omitempty,dive,oneof=instagram facebook twitter linkedin email sms"`
	Status         *string    `json:"status" validate:"omitempty,oneof=draft active scheduled completed"`
	StartDate      *string    `json:"start_date"`
	EndDate        *string    `json:"end_date"`
}

type GenerateContentRequest struct {
	Channel     string   `json:"channel" validate:"omitempty,oneof=instagram facebook twitter linkedin email sms"`
	ContentType string   `json:"content_type"`
	Topic       string   `json:"topic"`
	Tone        string   `json:"tone" validate:"omitempty,oneof=professional casual urgent playful inspirational"`
	BrandName   string   `json:"brand_name"`
	Keywords    []string `json:"keywords"`
}

type CreateContentRequest struct {
	CampaignID  *int     `json:"campaign_id"`
	Channel     string   `json:"channel" validate:"omitempty,oneof=instagram facebook twitter linkedin email sms"`
	ContentType string   `json:"content_type"`
	Title       string   `json:"title"`
	Body        string   `json:"body" validate:"required"`
	Tone        string   `json:"tone" validate:"omitempty,oneof=professional casual urgent playful inspirational"`
	Hashtags    []string `json:"hashtags"`
	Status      string   `json:"status" validate:"omitempty,oneof=draft scheduled published"`
	ScheduledAt string   `json:"scheduled_at"`
}

type UpdateContentRequest struct {
	Title       *string   `json:"title"`
	Body        *string   `json:"body" validate:"omitempty,min=1"`
	Tone        *string   `json:"tone" validate:"omitempty,oneof=professional casual urgent playful inspirational"`
	Hashtags    *[]string `json:"hashtags"`
	Status      *string   `json:"status" validate:"omitempty,oneof=draft scheduled published"`
	ScheduledAt *string   `json:"scheduled_at"`
}

type VariationsRequest struct {
	Topic     string `json:"topic" validate:"required"`
	Channel   string `json:"channel" validate:"omitempty,oneof=instagram facebook twitter linkedin email sms"`
	BrandName string `json:"brand_name"`
}

type CreateEventRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	EventDate   string `json:"event_date" validate:"required"`
	EventTime   string `json:"event_time"`
	Channel     string `json:"channel" validate:"omitempty,oneof=instagram facebook twitter linkedin email sms"`
	Status      string `json:"status" validate:"omitempty,oneof=planned scheduled published"`
	Color       string `json:"color"`
}

type UpdateEventRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=1"`
	Description *string `json:"description"`
	EventDate   *string `json:"event_date"`
	EventTime   *string `json:"event_time"`
	Channel     *string `json:"channel" validate:"omitempty,oneof=instagram facebook twitter linkedin email sms"`
	Status      *string `json:"status" validate:"omitempty,oneof=planned scheduled published"`
	Color       *string `json:"color"`
}

type GenerateCalendarRequest struct {
	Month int `json:"month" validate:"omitempty,min=1,max=12"`
	Year  int `json:"year" validate:"omitempty,min=2000,max=2100"`
}

type ChatMessageRequest struct {
	Message string `json:"message" validate:"required"`
	Context string `json:"context"`
}

type CreateRuleRequest struct {
	TriggerKeyword string `json:"trigger_keyword" validate:"required"`
	ReplyText      string `json:"reply_text" validate:"required"`
	Channel        string `json:"channel" validate:"omitempty,oneof=all instagram facebook twitter linkedin email sms"`
}

type UpdateRuleRequest struct {
	TriggerKeyword *string `json:"trigger_keyword" validate:"omitempty,min=1"`
	ReplyText      *string `json:"reply_text" validate:"omitempty,min=1"`
	Channel        *string `json:"channel" validate:"omitempty,oneof=all instagram facebook twitter linkedin email sms"`
	IsActive       *bool   `json:"is_active"`
}

type CreateFAQRequest struct {
	Question string `json:"question" validate:"required"`
	Answer   string `json:"answer" validate:"required"`
	Category string `json:"category"`
}

type SimulateRequest struct {
	Message string `json:"message" validate:"required"`
}
