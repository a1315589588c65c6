package model

// Closed enumerations for fields the HTTP surface accepts as strings.
// Validation tags on the request structs keep unknown values out at the
// decoding boundary.

type Channel string

const (
	ChannelInstagram Channel = "instagram"
	ChannelFacebook  Channel = "facebook"
	ChannelTwitter   Channel = "twitter"
	ChannelLinkedIn  Channel = "linkedin"
	ChannelEmail     Channel = "email"
	ChannelSMS       Channel = "sms"
)

// AllChannels is ordered; the calendar generator keys its colour palette
// off this order.
var AllChannels = []Channel{
	ChannelInstagram, ChannelFacebook, ChannelTwitter,
	ChannelLinkedIn, ChannelEmail, ChannelSMS,
}

type CampaignStatus string

const (
	CampaignStatusDraft     CampaignStatus = "draft"
	CampaignStatusActive    CampaignStatus = "active"
	CampaignStatusScheduled CampaignStatus = "scheduled"
	CampaignStatusCompleted CampaignStatus = "completed"
)

type ContentStatus string

const (
	ContentStatusDraft     ContentStatus = "draft"
	ContentStatusScheduled ContentStatus = "scheduled"
	ContentStatusPublished ContentStatus = "published"
)

type EventStatus string

const (
	EventStatusPlanned   EventStatus = "planned"
	EventStatusScheduled EventStatus = "scheduled"
	EventStatusPublished EventStatus = "published"
)

type ChatRole string

const (
	ChatRoleUser      ChatRole = "user"
	ChatRoleAssistant ChatRole = "assistant"
)

type Tone string

const (
	ToneProfessional  Tone = "professional"
	ToneCasual        Tone = "casual"
	ToneUrgent        Tone = "urgent"
	TonePlayful       Tone = "playful"
	ToneInspirational Tone = "inspirational"
)
