package model

import (
	"encoding/json"
	"time"
)

type Campaign struct {
	ID             int             `json:"id"`
	UserID         int             `json:"user_id"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	Goal           string          `json:"goal"`
	Budget         float64         `json:"budget"`
	TargetAudience string          `json:"target_audience"`
	Channels       []Channel       `json:"channels"`
	Status         CampaignStatus  `json:"status"`
	StartDate      string          `json:"start_date,omitempty"`
	EndDate        string          `json:"end_date,omitempty"`
	Strategy       json.RawMessage `json:"strategy,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// CampaignStats are the dashboard counters for a user's campaigns.
type CampaignStats struct {
	Total     int `json:"total"`
	Active    int `json:"active"`
	Draft     int `json:"draft"`
	Scheduled int `json:"scheduled"`
}
