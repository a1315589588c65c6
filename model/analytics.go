package model

// Analytics payload shapes. The numbers behind them are simulated by the
// analytics service; the shapes are what the dashboard consumes.

type AnalyticsOverview struct {
	TotalCampaigns          int                `json:"total_campaigns"`
	ActiveCampaigns         int                `json:"active_campaigns"`
	TotalReach              int                `json:"total_reach"`
	TotalImpressions        int                `json:"total_impressions"`
	TotalClicks             int                `json:"total_clicks"`
	TotalConversions        int                `json:"total_conversions"`
	AvgEngagementRate       float64            `json:"avg_engagement_rate"`
	TotalRevenueAttributed  float64            `json:"total_revenue_attributed"`
	ROI                     float64            `json:"roi"`
	ContentPiecesPublished  int                `json:"content_pieces_published"`
	AutoRepliesSent         int                `json:"auto_replies_sent"`
	GrowthVsLastMonth       map[string]float64 `json:"growth_vs_last_month"`
}

type EngagementPoint struct {
	Date        string `json:"date"`
	Engagement  int    `json:"engagement"`
	Reach       int    `json:"reach"`
	Clicks      int    `json:"clicks"`
	Conversions int    `json:"conversions"`
}

type ChannelMetrics struct {
	Channel        Channel `json:"channel"`
	Color          string  `json:"color"`
	Reach          int     `json:"reach"`
	Impressions    int     `json:"impressions"`
	Clicks         int     `json:"clicks"`
	EngagementRate float64 `json:"engagement_rate"`
	ConversionRate float64 `json:"conversion_rate"`
	PostsPublished int     `json:"posts_published"`
	Growth         float64 `json:"growth"`
}

type TopContentItem struct {
	Rank           int     `json:"rank"`
	Type           string  `json:"type"`
	Channel        Channel `json:"channel"`
	Color          string  `json:"color"`
	Title          string  `json:"title"`
	Reach          int     `json:"reach"`
	EngagementRate float64 `json:"engagement_rate"`
	Clicks         int     `json:"clicks"`
	Conversions    int     `json:"conversions"`
	Score          int     `json:"score"`
}

type FunnelStage struct {
	Stage   string  `json:"stage"`
	Value   int     `json:"value"`
	Color   string  `json:"color"`
	Percent float64 `json:"percent"`
}

type LabelValue struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

type CityValue struct {
	City  string `json:"city"`
	Value int    `json:"value"`
}

type Demographics struct {
	AgeGroups    []LabelValue `json:"age_groups"`
	Gender       []LabelValue `json:"gender"`
	TopLocations []CityValue  `json:"top_locations"`
	DeviceSplit  []LabelValue `json:"device_split"`
}

type HeatmapCell struct {
	Day   string `json:"day"`
	Hour  int    `json:"hour"`
	Value int    `json:"value"`
}

type OptimisationTip struct {
	Channel      string `json:"channel"`
	Severity     string `json:"severity"`
	Tip          string `json:"tip"`
	ExpectedLift string `json:"expected_lift"`
}
