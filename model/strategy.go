package model

// CampaignStrategy is the templated multi-phase plan produced for a
// campaign and persisted on the campaign row as JSON.
type CampaignStrategy struct {
	Overview            string              `json:"overview"`
	BudgetAllocation    map[string]string   `json:"budget_allocation"`
	PostingFrequency    map[string]string   `json:"recommended_posting_frequency"`
	Phases              []StrategyPhase     `json:"phases"`
	BestPostingTimes    map[string][]string `json:"best_posting_times"`
	AudienceSegments    []AudienceSegment   `json:"audience_segments"`
	RiskFactors         []string            `json:"risk_factors"`
	AIConfidenceScore   float64             `json:"ai_confidence_score"`
}

type StrategyPhase struct {
	Phase     string   `json:"phase"`
	Week      string   `json:"week"`
	Objective string   `json:"objective"`
	Tactics   []string `json:"tactics"`
	KPIs      []string `json:"kpis"`
}

type AudienceSegment struct {
	Segment  string `json:"segment"`
	Size     string `json:"size"`
	Approach string `json:"approach"`
}
