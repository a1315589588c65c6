package service

import (
	"fmt"
	"strings"

	"ai-marketing-api/model"
)

// ChatResponse routes a message to the advice bucket its keywords hit.
// History is accepted for interface parity with a real LLM backend; the
// canned responses do not use it.
func (s *AIService) ChatResponse(message string, history []*model.ChatMessage) string {
	msgLower := strings.ToLower(message)

	switch {
	case containsAny(msgLower, "campaign", "strategy", "plan", "launch"):
		return campaignAdvice
	case containsAny(msgLower, "content", "post", "write", "generate", "create"):
		return contentAdvice
	case containsAny(msgLower, "analytic", "metric", "performance", "result", "roi", "kpi"):
		return analyticsAdvice
	case containsAny(msgLower, "schedule", "publish", "calendar", "when", "time"):
		return schedulingAdvice
	case containsAny(msgLower, "audience", "target", "customer", "segment"):
		return audienceAdvice
	case containsAny(msgLower, "budget", "spend", "cost", "allocate"):
		return budgetAdvice
	case containsAny(msgLower, "hello", "hi", "hey", "start", "help"):
		return greeting
	default:
		return s.generalAdvice(message)
	}
}

func (s *AIService) generalAdvice(message string) string {
	snippet := message
	if len(snippet) > 50 {
		snippet = snippet[:50]
	}
	responses := []string{
		fmt.Sprintf(`That's a great area to explore! Here's my strategic perspective:

In today's marketing landscape, the brands winning consistently share three habits:

1. **They obsess over customer data** — Not just demographics, but psychographics and behaviour patterns
2. **They iterate fast** — 72-hour test cycles instead of monthly reviews
3. **They build systems, not campaigns** — Sustainable content engines over one-off launches

For your specific question about "%s...", I'd recommend starting with a content audit to understand what's already resonating with your audience, then building from there.

Want me to dive deeper into any specific aspect? I'm here to help! 💡`, snippet),
		`Excellent question! Let me share what I know about this:

The most effective marketing approach right now is what I call **"Precision Marketing"** — combining data intelligence with authentic storytelling.

Key principles:
✅ Lead with value before selling
✅ Personalise at scale using segmentation
✅ Build community, not just audience
✅ Measure everything, optimise fast

Is there a specific campaign or channel you're looking to improve? Give me more context and I'll give you a highly specific action plan! 🎯`,
	}
	return responses[s.rand.Intn(len(responses))]
}

const campaignAdvice = `Great question about campaigns! Here's my strategic take:

🎯 **Start with your goal** — Is it awareness, engagement, or conversion? Each requires a completely different content mix and budget allocation.

📋 **My recommended 4-step framework:**
1. **Define** — Set SMART goals with specific KPIs
2. **Segment** — Identify your top 3 audience personas
3. **Map** — Choose 2–3 channels where your audience is most active
4. **Activate** — Launch in phases (Awareness → Engagement → Conversion)

💡 **Pro tip:** Brands that run phased campaigns see 3× better ROI than those who go all-in on day one.

Would you like me to generate a full campaign strategy? Just tell me your brand name, goal, target audience, and budget — I'll build the whole plan in seconds! 🚀`

const contentAdvice = `Here are my top content recommendations right now:

✍️ **What's working:**
- **Short-form video** — Reels & TikToks get 5× the organic reach of static posts
- **Carousels** — 3× more saves and shares than single images
- **Conversational email** — Personal tone outperforms corporate by 40%+ open rate
- **Voice-of-customer content** — Use real customer language, not marketing jargon

🎨 **Content formula that converts:**
**Hook** (first line grabs attention) + **Value** (teach something) + **Proof** (social proof or data) + **CTA** (one clear next step)

Want me to generate content for a specific channel? I can create Instagram posts, email copy, SMS messages, or LinkedIn articles — just tell me the topic and tone! 💬`

const analyticsAdvice = `Let me break down what the numbers usually mean:

📊 **Key benchmarks to track:**
| Metric | Average | Good | Great |
|--------|---------|------|-------|
| Instagram ER | 1–3% | 3–6% | 6%+ |
| Email Open Rate | 20% | 25–35% | 35%+ |
| CTR | 2% | 3–5% | 5%+ |
| Conversion Rate | 2–3% | 3–5% | 5%+ |

🔍 **What to do if your numbers are below average:**
1. **Low reach?** → Boost with paid promotion for 5 days
2. **High reach, low engagement?** → Your content hook needs work
3. **High engagement, low conversion?** → Your CTA or landing page needs work
4. **Low email opens?** → A/B test your subject lines

Check your Analytics dashboard — I can see your campaign data and give you personalised recommendations! 📈`

const schedulingAdvice = `Timing is everything in marketing! Here's what the data shows:

🕐 **Optimal posting times (by channel):**

📱 **Instagram:** Tuesday–Thursday, 9 AM & 7 PM
👥 **Facebook:** Wednesday, 1 PM & 5 PM
💼 **LinkedIn:** Tuesday–Thursday, 8–10 AM
🐦 **Twitter/X:** Weekdays, 8 AM & 5 PM
📧 **Email:** Tuesday & Thursday, 10 AM
📱 **SMS:** Weekdays 12–2 PM

⚡ **My top scheduling tips:**
- Never schedule more than 2 posts/day per channel (audience fatigue is real)
- Use the 70/20/10 rule: 70% value, 20% brand, 10% promotion
- Leave gaps on weekends unless your audience is B2C

Use the **Marketing Calendar** to drag-and-drop your content into the perfect time slots! Want me to suggest a posting schedule for your campaigns? 📅`

const audienceAdvice = `Audience targeting is where campaigns win or lose. Here's my framework:

🎯 **The 3-Layer Audience Model:**

**Layer 1 — Core Audience (your best customers)**
Profile them deeply: age, location, income, pain points, favourite content formats. This is 20% of your audience but drives 80% of revenue.

**Layer 2 — Growth Audience (look-alike)**
Similar demographics to Layer 1 but not yet customers. Target with educational content and social proof.

**Layer 3 — Awareness Audience (cold)**
Broad targeting with high-value content to build brand awareness. Don't sell — educate and entertain.

💡 **Segmentation strategies:**
- Behavioural (how they interact with your brand)
- Psychographic (values, interests, lifestyle)
- Geographic (especially for local businesses)
- Lifecycle stage (new visitor → lead → customer → advocate)

Would you like me to build audience personas for your campaign? Tell me your product/service and industry! 👥`

const budgetAdvice = `Smart budget allocation is a superpower in marketing. Here's how I recommend distributing it:

💰 **The 40/40/20 Rule:**
- **40%** — Your top-performing channel (double down on what works)
- **40%** — Second-best channel (expand reach)
- **20%** — Experimental channel (test new opportunities)

📊 **Budget benchmarks (% of revenue):**
- Startups: 15–20% of revenue on marketing
- Growth stage: 10–15%
- Mature brands: 5–10%

🎯 **Channel cost efficiency (CPM averages):**
| Channel | Avg CPM |
|---------|---------|
| Organic Social | $0 |
| Email | $0.40 |
| Facebook Ads | $7–12 |
| Instagram Ads | $8–14 |
| LinkedIn Ads | $30–50 |
| Google Search | $20–100 |

**Pro tip:** Always reserve 10–15% of your budget for rapid response — trend-jacking opportunities are worth it! 🚀`

const greeting = `👋 Hey there! I'm your **AI Marketing Strategist** — and I'm genuinely excited to work with you.

Here's what I can do for you right now:

🎯 **Build campaign strategies** — Tell me your goal and I'll create a full multi-channel plan
✍️ **Generate content** — Posts, emails, SMS, LinkedIn articles, and more
📊 **Analyse performance** — Get insights on what's working and what to fix
📅 **Plan your calendar** — AI-optimised posting schedule for your brand
💬 **Answer any marketing question** — Strategy, tactics, tools, or trends

**To get started, try asking me:**
- *"Create a campaign strategy for my product launch"*
- *"Write an Instagram post about our summer sale"*
- *"What's the best time to post on LinkedIn?"*
- *"How can I improve my email open rate?"*

What would you like to tackle first? 🚀`
