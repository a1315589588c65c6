package service

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"ai-marketing-api/model"
)

// AIService produces templated marketing copy, strategies and advice.
// The structure of every response is deterministic; the numbers inside
// are randomized to look like live predictions. Swap the internals for
// real LLM calls without touching the handlers.
type AIService struct {
	rand *rand.Rand
}

func NewAIService() *AIService {
	return &AIService{rand: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

var toneDescriptions = map[model.Tone]string{
	model.ToneProfessional:  "authoritative, data-driven, and polished",
	model.ToneCasual:        "friendly, conversational, and relatable",
	model.ToneUrgent:        "time-sensitive, action-oriented, and compelling",
	model.TonePlayful:       "fun, witty, and energetic",
	model.ToneInspirational: "motivating, visionary, and emotionally resonant",
}

// ChannelLimits are the per-channel character caps applied to generated
// bodies.
var ChannelLimits = map[model.Channel]int{
	model.ChannelInstagram: 2200,
	model.ChannelFacebook:  63206,
	model.ChannelTwitter:   280,
	model.ChannelLinkedIn:  3000,
	model.ChannelEmail:     50000,
	model.ChannelSMS:       160,
}

// AllTones is ordered; variations use the first three.
var AllTones = []model.Tone{
	model.ToneProfessional, model.ToneCasual, model.ToneUrgent,
	model.TonePlayful, model.ToneInspirational,
}

var channelColors = map[model.Channel]string{
	model.ChannelInstagram: "#E1306C",
	model.ChannelFacebook:  "#1877F2",
	model.ChannelTwitter:   "#1DA1F2",
	model.ChannelLinkedIn:  "#0A66C2",
	model.ChannelEmail:     "#EA4335",
	model.ChannelSMS:       "#25D366",
}

// GenerateCampaignStrategy builds a three-phase plan from campaign
// attributes.
func (s *AIService) GenerateCampaignStrategy(name, goal, audience string, budget float64, channels []model.Channel, startDate, endDate string) *model.CampaignStrategy {
	channelNames := make([]string, len(channels))
	for i, ch := range channels {
		channelNames[i] = string(ch)
	}
	channelList := "all channels"
	if len(channelNames) > 0 {
		channelList = strings.Join(channelNames, ", ")
	}

	weeks := weekCount(startDate, endDate)
	perChannel := 0.0
	if budget > 0 {
		perChannel = budget / float64(max(len(channels), 1))
	}

	phases := []model.StrategyPhase{
		{
			Phase:     "Phase 1 — Awareness",
			Week:      "Week 1–2",
			Objective: fmt.Sprintf("Build brand awareness for %s among %s", name, audience),
			Tactics: []string{
				fmt.Sprintf("Launch teaser content across %s", channelList),
				"Run targeted awareness ads with storytelling creative",
				"Publish educational blog posts / carousels",
				"Set up retargeting pixels and audience lists",
			},
			KPIs: []string{"Reach", "Impressions", "Brand recall lift"},
		},
		{
			Phase:     "Phase 2 — Engagement",
			Week:      fmt.Sprintf("Week 3–%d", max(3, weeks/2)),
			Objective: fmt.Sprintf("Drive deep engagement and community building toward %s", goal),
			Tactics: []string{
				"Host live Q&A or interactive polls",
				"Launch user-generated content challenge",
				"Deploy email drip sequence (3-part series)",
				"Publish social proof and testimonial content",
			},
			KPIs: []string{"Engagement Rate", "Comments", "Email Open Rate", "CTR"},
		},
		{
			Phase:     "Phase 3 — Conversion",
			Week:      fmt.Sprintf("Week %d–%d", max(4, weeks/2+1), weeks),
			Objective: fmt.Sprintf("Convert engaged audience into %s", goal),
			Tactics: []string{
				"Deploy limited-time offer / CTA-heavy content",
				"Retarget engaged users with conversion ads",
				"Send final email push with urgency messaging",
				"Activate SMS campaign for high-intent leads",
			},
			KPIs: []string{"Conversion Rate", "Revenue", "CAC", "ROAS"},
		},
	}

	allocation := map[string]string{}
	if len(channelNames) == 0 {
		channelNames = []string{"Social", "Email", "SMS"}
	}
	for _, ch := range channelNames {
		allocation[ch] = fmt.Sprintf("$%.2f", perChannel)
	}

	return &model.CampaignStrategy{
		Overview: fmt.Sprintf("A %d-week multi-channel campaign targeting %s across %s with a total budget of $%.2f. Goal: %s.",
			weeks, audience, channelList, budget, goal),
		BudgetAllocation: allocation,
		PostingFrequency: map[string]string{
			"instagram": "1–2x daily",
			"facebook":  "1x daily",
			"twitter":   "3–5x daily",
			"linkedin":  "3–4x weekly",
			"email":     "2x weekly",
			"sms":       "1x weekly",
		},
		Phases: phases,
		BestPostingTimes: map[string][]string{
			"instagram": {"9 AM", "12 PM", "7 PM"},
			"facebook":  {"8 AM", "1 PM", "5 PM"},
			"twitter":   {"8 AM", "12 PM", "9 PM"},
			"linkedin":  {"8 AM", "10 AM", "12 PM"},
			"email":     {"Tuesday 10 AM", "Thursday 2 PM"},
			"sms":       {"12 PM weekdays"},
		},
		AudienceSegments: []model.AudienceSegment{
			{Segment: "High-Intent Leads", Size: "25%", Approach: "Direct conversion messaging"},
			{Segment: "Warm Audience", Size: "40%", Approach: "Nurture with value content"},
			{Segment: "Cold Audience", Size: "35%", Approach: "Awareness and education"},
		},
		RiskFactors: []string{
			"Audience fatigue if posting too frequently",
			"Budget depletion before Phase 3 if not paced",
			"Low organic reach — supplement with paid media",
		},
		AIConfidenceScore: round1(82 + s.rand.Float64()*15),
	}
}

// GenerateContent renders the channel template for the topic/tone and
// trims the body to the channel's character limit.
func (s *AIService) GenerateContent(channel model.Channel, contentType, topic string, tone model.Tone, brandName string, keywords []string) *model.GeneratedContent {
	if brandName == "" {
		brandName = "Your Brand"
	}
	if _, ok := toneDescriptions[tone]; !ok {
		tone = model.ToneProfessional
	}

	var draft draftContent
	switch channel {
	case model.ChannelFacebook:
		draft = s.facebookPost(topic, brandName)
	case model.ChannelTwitter:
		draft = s.twitterPost(topic, brandName)
	case model.ChannelLinkedIn:
		draft = s.linkedinPost(topic, brandName)
	case model.ChannelEmail:
		draft = s.emailContent(topic, tone, brandName)
	case model.ChannelSMS:
		draft = s.smsContent(topic, brandName)
	default:
		channel = model.ChannelInstagram
		draft = s.instagramPost(topic, tone, brandName)
	}

	body := truncateRunes(draft.body, ChannelLimits[channel])

	return &model.GeneratedContent{
		Channel:              channel,
		ContentType:          contentType,
		Title:                draft.title,
		Body:                 body,
		Hashtags:             draft.hashtags,
		CTA:                  draft.cta,
		EmojiSuggestions:     draft.emojis,
		EstimatedReach:       formatThousands(1200 + s.rand.Intn(43800)),
		EngagementPrediction: fmt.Sprintf("%.1f%%", 3.2+s.rand.Float64()*5.7),
		AITips: []string{
			fmt.Sprintf("Post on %s for best engagement", pick(s.rand, "Tuesday", "Wednesday", "Thursday")),
			"Add a strong call-to-action in the first sentence",
			fmt.Sprintf("Use %d relevant hashtags for maximum reach", 3+s.rand.Intn(4)),
			"Pair with a high-contrast visual for 2× more impressions",
		},
	}
}

// GenerateCalendar plans a month of posts: roughly 60% of days get one
// to three channel posts, capped at 60 events.
func (s *AIService) GenerateCalendar(month, year int) []*model.CalendarEvent {
	ideas := []string{
		"Product Spotlight", "Customer Story", "Behind the Scenes",
		"Educational Tip", "Promotional Offer", "Poll & Engagement",
		"Weekly Newsletter", "Flash Sale Alert", "Milestone Celebration",
		"Industry News Comment", "How-To Guide", "User Generated Content",
	}
	colors := []string{"#667eea", "#f5576c", "#25d366", "#1877f2", "#fd7e14", "#6f42c1"}
	statuses := []model.EventStatus{model.EventStatusPlanned, model.EventStatusScheduled, model.EventStatusPublished}
	hours := []int{8, 9, 12, 13, 17, 19}

	daysInMonth := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()

	events := []*model.CalendarEvent{}
	for day := 1; day <= daysInMonth; day++ {
		if s.rand.Float64() <= 0.4 {
			continue
		}
		numPosts := 1 + s.rand.Intn(3)
		for i := 0; i < numPosts && len(events) < 60; i++ {
			chIdx := s.rand.Intn(len(model.AllChannels))
			ch := model.AllChannels[chIdx]
			idea := ideas[s.rand.Intn(len(ideas))]
			events = append(events, &model.CalendarEvent{
				Title:       fmt.Sprintf("%s — %s", idea, capitalize(string(ch))),
				Description: fmt.Sprintf("AI-recommended %s post for %s", ch, strings.ToLower(idea)),
				EventDate:   fmt.Sprintf("%04d-%02d-%02d", year, month, day),
				EventTime:   fmt.Sprintf("%02d:00", hours[s.rand.Intn(len(hours))]),
				Channel:     ch,
				Status:      statuses[s.rand.Intn(len(statuses))],
				Color:       colors[chIdx],
			})
		}
	}
	return events
}

// GenerateAutoReply matches an incoming message against the user's FAQs
// and the canned keyword replies. Complaint messages escalate to a
// human.
func (s *AIService) GenerateAutoReply(incoming string, faqs []*model.FAQ) *model.AutoReply {
	msgLower := strings.ToLower(incoming)

	for _, faq := range faqs {
		for _, word := range strings.Fields(strings.ToLower(faq.Question)) {
			if strings.Contains(msgLower, word) {
				return &model.AutoReply{Reply: faq.Answer, Source: "faq", Confidence: 0.95}
			}
		}
	}

	// Topic buckets answer before escalation: a pricing question that
	// mentions a problem is still a pricing question.
	var reply string
	switch {
	case containsAny(msgLower, "price", "cost", "how much", "pricing"):
		reply = "Thanks for reaching out! Our pricing starts at $29/month. Visit our pricing page for full details, or I can connect you with our sales team. 😊"
	case containsAny(msgLower, "hours", "open", "available", "when"):
		reply = "We're available Monday–Friday, 9 AM–6 PM (EST). For urgent matters, email us at support@brand.com and we'll respond within 2 hours. ⏰"
	case containsAny(msgLower, "refund", "return", "cancel", "money back"):
		reply = "We have a 30-day no-questions-asked refund policy. Please email refunds@brand.com and we'll process it within 3 business days. 💙"
	}
	if reply != "" {
		return &model.AutoReply{
			Reply:      reply,
			Source:     "ai",
			Confidence: round2(0.78 + s.rand.Float64()*0.16),
		}
	}

	if containsAny(msgLower, "complaint", "problem", "issue", "broken", "not working") {
		return &model.AutoReply{
			Reply:      "I'm sorry you're experiencing this issue! I'm flagging this for immediate human review. A team member will reach out within 1 hour. 🚨",
			Source:     "escalation",
			Escalate:   true,
			Confidence: 0.99,
		}
	}

	return &model.AutoReply{
		Reply:      "Thanks for your message! Our team has received it and will respond shortly. In the meantime, check our Help Center at help.brand.com for instant answers. 🙏",
		Source:     "ai",
		Confidence: round2(0.78 + s.rand.Float64()*0.16),
	}
}

// GenerateOptimisationTips grades channels by engagement rate against
// the 3.0/5.0 benchmarks.
func (s *AIService) GenerateOptimisationTips(channelData map[string]map[string]float64) []*model.OptimisationTip {
	tips := []*model.OptimisationTip{}
	for channel, metrics := range channelData {
		eng := metrics["engagement_rate"]
		switch {
		case eng < 3.0:
			tips = append(tips, &model.OptimisationTip{
				Channel:  channel,
				Severity: "high",
				Tip: fmt.Sprintf("⚠️ %s engagement (%.1f%%) is below benchmark. Try interactive formats: polls, carousels, or Reels.",
					capitalize(channel), eng),
				ExpectedLift: "+45–60% engagement",
			})
		case eng < 5.0:
			tips = append(tips, &model.OptimisationTip{
				Channel:  channel,
				Severity: "medium",
				Tip: fmt.Sprintf("💡 %s can improve. Experiment with posting at 7–9 PM and add more emotional storytelling.",
					capitalize(channel)),
				ExpectedLift: "+20–35% engagement",
			})
		default:
			tips = append(tips, &model.OptimisationTip{
				Channel:  channel,
				Severity: "low",
				Tip: fmt.Sprintf("✅ %s is performing well! Double down — increase posting frequency by 20%%.",
					capitalize(channel)),
				ExpectedLift: "+15–25% reach",
			})
		}
	}
	return tips
}

type draftContent struct {
	title    string
	body     string
	hashtags []string
	emojis   []string
	cta      string
}

func (s *AIService) instagramPost(topic string, tone model.Tone, brand string) draftContent {
	hooks := map[model.Tone]string{
		model.ToneProfessional:  fmt.Sprintf("This changes everything about %s. 📊", topic),
		model.ToneCasual:        fmt.Sprintf("Okay, we need to talk about %s... 👀", topic),
		model.ToneUrgent:        fmt.Sprintf("⚡ Last chance to understand %s before it's too late.", topic),
		model.TonePlayful:       fmt.Sprintf("Plot twist: %s is actually fun. 🎉", topic),
		model.ToneInspirational: fmt.Sprintf("Every great journey starts with knowing %s. 🌟", topic),
	}
	hook, ok := hooks[tone]
	if !ok {
		hook = hooks[model.ToneProfessional]
	}

	body := fmt.Sprintf(`%s

Here's what %s wants you to know about %s:

✦ Strategy that actually works
✦ Real results, not vanity metrics
✦ Built for brands like yours

Swipe to see how we do it → or tap the link in bio to get started.

The brands that win aren't the ones who wait. They act. Are you ready?

💬 Drop a "YES" in the comments if this resonates with you!`, hook, brand, topic)

	return draftContent{
		body: body,
		hashtags: []string{
			hashtag(topic), hashtag(brand), "#Marketing", "#GrowthHacking",
			"#ContentStrategy", "#SocialMediaMarketing", "#DigitalMarketing",
			"#Branding", "#MarketingTips", "#BusinessGrowth",
		},
		emojis: []string{"📊", "🚀", "✦", "💡", "🎯"},
		cta:    "Tap the link in bio 🔗",
	}
}

func (s *AIService) facebookPost(topic, brand string) draftContent {
	body := fmt.Sprintf(`🎯 Big announcement from %s!

We've been working hard on something that will transform how you approach %s, and we're finally ready to share it with our community.

Here's the thing — most businesses struggle with %s not because they lack effort, but because they lack the right strategy. That ends today.

What we're seeing in the data:
📈 Brands that master %s see 3× more engagement
💰 ROI improves by an average of 47%% in the first 90 days
🎯 Audience retention jumps to 68%% vs the industry average of 32%%

We've compiled everything into an actionable guide based on real campaigns from brands just like yours.

Ready to level up? Comment "GUIDE" below and we'll send it to your DMs. ⬇️

— The %s Team`, brand, topic, topic, topic, brand)

	return draftContent{
		body:     body,
		hashtags: []string{hashtag(topic), "#FacebookMarketing", "#BusinessGrowth"},
		emojis:   []string{"🎯", "📈", "💰"},
		cta:      "Comment 'GUIDE' below 💬",
	}
}

func (s *AIService) twitterPost(topic, brand string) draftContent {
	posts := []string{
		fmt.Sprintf("The %s playbook nobody is talking about:\n\n→ Know your audience deeply\n→ Test, don't assume\n→ Double what works\n→ Cut what doesn't\n\nSimple. Scalable. Profitable. 🧵", topic),
		fmt.Sprintf("Hot take: Most brands fail at %s because they're copying competitors instead of studying their customers.\n\nBe the brand that listens. — %s 🎯", topic, brand),
		fmt.Sprintf("If your %s strategy isn't generating leads, it's costing you money.\n\nFix it in 3 steps:\n1. Audit what you're posting\n2. Identify what drives clicks\n3. Rebuild around data\n\nDM for a free audit 👇", topic),
	}
	return draftContent{
		body:     posts[s.rand.Intn(len(posts))],
		hashtags: []string{"#Marketing", hashtag(topic)},
		emojis:   []string{"🧵", "🎯"},
		cta:      "Learn more →",
	}
}

func (s *AIService) linkedinPost(topic, brand string) draftContent {
	body := fmt.Sprintf(`I spent 90 days analysing %s across 200+ brand campaigns. Here's what I found:

The brands outperforming their competition all share one trait: they treat %s as a system, not a series of tasks.

Here are the 5 principles that separate the leaders from the rest:

1. 🎯 Customer obsession over product obsession
   They start with pain points, not features.

2. 📊 Data-driven decisions at every touchpoint
   They A/B test headlines, CTAs, and timing — relentlessly.

3. 🔄 Consistent brand voice across all channels
   Customers recognise them in 3 seconds, anywhere.

4. ⚡ Speed of iteration
   They ship, learn, and improve in 72-hour cycles.

5. 🤝 Community-first growth
   Their best customers become their loudest advocates.

At %s, we've built our entire approach to %s around these principles — and the results speak for themselves.

What's the biggest challenge your team faces with %s? I'd love to discuss in the comments. 👇

#Marketing %s #Leadership #GrowthStrategy #B2B`, topic, topic, brand, topic, topic, hashtag(topic))

	return draftContent{
		title:    fmt.Sprintf("5 Principles of Winning %s Strategy", topic),
		body:     body,
		hashtags: []string{"#Marketing", "#Leadership", "#GrowthStrategy"},
		emojis:   []string{"🎯", "📊", "🔄", "⚡", "🤝"},
		cta:      "Share with your network 🔗",
	}
}

func (s *AIService) emailContent(topic string, tone model.Tone, brand string) draftContent {
	subjects := map[model.Tone]string{
		model.ToneProfessional:  fmt.Sprintf("How %s Solves %s For You", brand, topic),
		model.ToneCasual:        fmt.Sprintf("Hey, quick thought on %s...", topic),
		model.ToneUrgent:        fmt.Sprintf("⚡ Don't miss this — %s update", topic),
		model.TonePlayful:       fmt.Sprintf("We cracked the code on %s 🎉", topic),
		model.ToneInspirational: fmt.Sprintf("Your %s transformation starts today ✨", topic),
	}
	subject, ok := subjects[tone]
	if !ok {
		subject = subjects[model.ToneProfessional]
	}

	body := fmt.Sprintf(`Hi {{first_name}},

%s

We've been listening to our community, and the #1 question we hear is: "How do we actually make %s work for our business?"

Today, we're answering that — with specifics.

━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
🎯 WHAT WE DISCOVERED
━━━━━━━━━━━━━━━━━━━━━━━━━━━━━

After analysing thousands of campaigns, we identified three non-negotiables for %s success:

  ✅ Clear audience definition before any content creation
  ✅ Consistent multi-channel presence (not just one platform)
  ✅ Weekly performance review with fast iteration loops

━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
🚀 YOUR ACTION THIS WEEK
━━━━━━━━━━━━━━━━━━━━━━━━━━━━━

Pick ONE channel you've been neglecting. Post consistently for 14 days. Measure.

That's it. Start small. Build momentum.

[→ START YOUR FREE CAMPAIGN NOW]

As always, if you have questions — just reply to this email. We read every single one.

Warm regards,
The %s Team

━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
%s | Unsubscribe | Update Preferences`, subject, topic, topic, brand, brand)

	return draftContent{
		title:    subject,
		body:     body,
		hashtags: []string{},
		cta:      "→ START YOUR FREE CAMPAIGN NOW",
	}
}

func (s *AIService) smsContent(topic, brand string) draftContent {
	msgs := []string{
		fmt.Sprintf("%s: Big news on %s! Check your email for our exclusive guide — only for subscribers. Reply STOP to opt out.", brand, topic),
		fmt.Sprintf("🔥 %s: Your %s results are waiting. Log in now → bit.ly/dashboard. Reply STOP to opt out.", brand, topic),
		fmt.Sprintf("%s Alert: New %s feature is LIVE. Try it free for 7 days: bit.ly/try-now. Reply STOP to opt out.", brand, topic),
	}
	body := truncateRunes(msgs[s.rand.Intn(len(msgs))], 160)
	return draftContent{body: body, hashtags: []string{}, emojis: []string{"🔥"}, cta: "Learn more →"}
}

func hashtag(s string) string {
	return "#" + strings.ReplaceAll(s, " ", "")
}

// truncateRunes caps s at limit characters, never splitting a rune.
func truncateRunes(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit])
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func containsAny(s string, substrings ...string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func pick(r *rand.Rand, options ...string) string {
	return options[r.Intn(len(options))]
}

func formatThousands(n int) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

func weekCount(startDate, endDate string) int {
	start, err1 := time.Parse("2006-01-02", startDate)
	end, err2 := time.Parse("2006-01-02", endDate)
	if err1 != nil || err2 != nil || end.Before(start) {
		return 4
	}
	weeks := int(end.Sub(start).Hours()/24) / 7
	return max(1, weeks)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
