package service

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"ai-marketing-api/model"
)

// AnalyticsService simulates dashboard metrics. Shapes match what the
// frontend charts consume; values are randomized within realistic
// ranges until real channel integrations land.
type AnalyticsService struct {
	rand *rand.Rand
	now  func() time.Time
}

func NewAnalyticsService() *AnalyticsService {
	return &AnalyticsService{
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
		now:  time.Now,
	}
}

func (s *AnalyticsService) GetOverview(userID int) *model.AnalyticsOverview {
	return &model.AnalyticsOverview{
		TotalCampaigns:         s.intBetween(8, 24),
		ActiveCampaigns:        s.intBetween(3, 8),
		TotalReach:             s.intBetween(45000, 320000),
		TotalImpressions:       s.intBetween(180000, 950000),
		TotalClicks:            s.intBetween(8000, 42000),
		TotalConversions:       s.intBetween(450, 3200),
		AvgEngagementRate:      round2(s.floatBetween(3.8, 7.2)),
		TotalRevenueAttributed: round2(s.floatBetween(8500, 85000)),
		ROI:                    round1(s.floatBetween(180, 620)),
		ContentPiecesPublished: s.intBetween(38, 140),
		AutoRepliesSent:        s.intBetween(120, 680),
		GrowthVsLastMonth: map[string]float64{
			"reach":       round1(s.floatBetween(8.2, 34.5)),
			"engagement":  round1(s.floatBetween(-2.1, 18.7)),
			"conversions": round1(s.floatBetween(5.4, 42.3)),
			"revenue":     round1(s.floatBetween(12.1, 55.8)),
		},
	}
}

// GetEngagementTimeline simulates a daily series with weekday spikes and
// slight growth.
func (s *AnalyticsService) GetEngagementTimeline(days int) []*model.EngagementPoint {
	baseDate := s.now().AddDate(0, 0, -days)
	baseVal := s.intBetween(800, 2000)

	points := make([]*model.EngagementPoint, 0, days)
	for i := 0; i < days; i++ {
		date := baseDate.AddDate(0, 0, i)
		weekdayFactor := 1.3
		if date.Weekday() == time.Saturday || date.Weekday() == time.Sunday {
			weekdayFactor = 0.7
		}
		val := int(float64(baseVal) * weekdayFactor * s.floatBetween(0.85, 1.25))
		baseVal = int(float64(baseVal) * s.floatBetween(0.97, 1.04))
		points = append(points, &model.EngagementPoint{
			Date:        date.Format("2006-01-02"),
			Engagement:  val,
			Reach:       val * s.intBetween(8, 15),
			Clicks:      int(float64(val) * s.floatBetween(0.12, 0.28)),
			Conversions: int(float64(val) * s.floatBetween(0.008, 0.025)),
		})
	}
	return points
}

func (s *AnalyticsService) GetChannelBreakdown() []*model.ChannelMetrics {
	result := make([]*model.ChannelMetrics, 0, len(model.AllChannels))
	for _, ch := range model.AllChannels {
		reach := s.intBetween(5000, 85000)
		result = append(result, &model.ChannelMetrics{
			Channel:        ch,
			Color:          channelColors[ch],
			Reach:          reach,
			Impressions:    int(float64(reach) * s.floatBetween(2.5, 5.2)),
			Clicks:         int(float64(reach) * s.floatBetween(0.04, 0.15)),
			EngagementRate: round2(s.floatBetween(1.8, 9.4)),
			ConversionRate: round2(s.floatBetween(0.8, 4.2)),
			PostsPublished: s.intBetween(5, 42),
			Growth:         round1(s.floatBetween(-5.2, 28.4)),
		})
	}
	return result
}

func (s *AnalyticsService) GetTopContent(limit int) []*model.TopContentItem {
	types := []string{
		"Carousel Post", "Video Reel", "Story Ad", "Email Newsletter",
		"LinkedIn Article", "Twitter Thread", "SMS Blast",
	}
	titles := []string{
		"Summer Sale", "Product Launch", "Customer Story",
		"Brand Reveal", "How-To Guide", "Weekly Tip",
	}

	items := make([]*model.TopContentItem, 0, limit)
	for i := 0; i < limit; i++ {
		ch := model.AllChannels[s.rand.Intn(len(model.AllChannels))]
		items = append(items, &model.TopContentItem{
			Rank:           i + 1,
			Type:           types[s.rand.Intn(len(types))],
			Channel:        ch,
			Color:          channelColors[ch],
			Title:          fmt.Sprintf("%s — %s", titles[s.rand.Intn(len(titles))], capitalize(string(ch))),
			Reach:          s.intBetween(8000, 92000),
			EngagementRate: round1(s.floatBetween(4.2, 12.8)),
			Clicks:         s.intBetween(320, 4800),
			Conversions:    s.intBetween(18, 380),
			Score:          s.intBetween(72, 99),
		})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Score > items[j].Score })
	return items
}

func (s *AnalyticsService) GetFunnelData() []*model.FunnelStage {
	awareness := s.intBetween(80000, 250000)
	interest := int(float64(awareness) * s.floatBetween(0.25, 0.45))
	consideration := int(float64(interest) * s.floatBetween(0.30, 0.55))
	intent := int(float64(consideration) * s.floatBetween(0.35, 0.60))
	conversion := int(float64(intent) * s.floatBetween(0.25, 0.50))

	percent := func(v int) float64 {
		return round1(float64(v) / float64(awareness) * 100)
	}
	return []*model.FunnelStage{
		{Stage: "Awareness", Value: awareness, Color: "#667eea", Percent: 100},
		{Stage: "Interest", Value: interest, Color: "#764ba2", Percent: percent(interest)},
		{Stage: "Consideration", Value: consideration, Color: "#f093fb", Percent: percent(consideration)},
		{Stage: "Intent", Value: intent, Color: "#f5576c", Percent: percent(intent)},
		{Stage: "Conversion", Value: conversion, Color: "#25d366", Percent: percent(conversion)},
	}
}

func (s *AnalyticsService) GetAudienceDemographics() *model.Demographics {
	return &model.Demographics{
		AgeGroups: []model.LabelValue{
			{Label: "18–24", Value: s.intBetween(12, 22)},
			{Label: "25–34", Value: s.intBetween(28, 42)},
			{Label: "35–44", Value: s.intBetween(18, 28)},
			{Label: "45–54", Value: s.intBetween(10, 18)},
			{Label: "55+", Value: s.intBetween(5, 12)},
		},
		Gender: []model.LabelValue{
			{Label: "Female", Value: s.intBetween(44, 62)},
			{Label: "Male", Value: s.intBetween(35, 52)},
			{Label: "Other", Value: s.intBetween(2, 6)},
		},
		TopLocations: []model.CityValue{
			{City: "New York", Value: s.intBetween(12, 22)},
			{City: "Los Angeles", Value: s.intBetween(10, 18)},
			{City: "London", Value: s.intBetween(8, 15)},
			{City: "Toronto", Value: s.intBetween(6, 12)},
			{City: "Sydney", Value: s.intBetween(4, 10)},
		},
		DeviceSplit: []model.LabelValue{
			{Label: "Mobile", Value: s.intBetween(58, 72)},
			{Label: "Desktop", Value: s.intBetween(22, 34)},
			{Label: "Tablet", Value: s.intBetween(4, 10)},
		},
	}
}

func (s *AnalyticsService) GetHeatmapData() []*model.HeatmapCell {
	days := []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	peakHours := map[int]bool{8: true, 9: true, 12: true, 13: true, 17: true, 18: true, 19: true, 20: true}

	cells := make([]*model.HeatmapCell, 0, len(days)*24)
	for dayIdx, day := range days {
		isWeekday := dayIdx < 5
		for hour := 0; hour < 24; hour++ {
			var value int
			switch {
			case isWeekday && peakHours[hour]:
				value = s.intBetween(70, 100)
			case !isWeekday:
				value = s.intBetween(10, 50)
			default:
				value = s.intBetween(20, 100)
			}
			cells = append(cells, &model.HeatmapCell{Day: day, Hour: hour, Value: value})
		}
	}
	return cells
}

// intBetween returns a value in [lo, hi].
func (s *AnalyticsService) intBetween(lo, hi int) int {
	return lo + s.rand.Intn(hi-lo+1)
}

func (s *AnalyticsService) floatBetween(lo, hi float64) float64 {
	return lo + s.rand.Float64()*(hi-lo)
}
