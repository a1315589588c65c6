package model

import "time"

type CalendarEvent struct {
	ID          int         `json:"id"`
	UserID      int         `json:"user_id"`
	CampaignID  *int        `json:"campaign_id,omitempty"`
	ContentID   *int        `json:"content_id,omitempty"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	EventDate   string      `json:"event_date"`
	EventTime   string      `json:"event_time"`
	Channel     Channel     `json:"channel"`
	Status      EventStatus `json:"status"`
	Color       string      `json:"color"`
	CreatedAt   time.Time   `json:"created_at"`
}
