package router

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger/v2"

	"ai-marketing-api/common"
	"ai-marketing-api/handler"
	"ai-marketing-api/repository"
	"ai-marketing-api/service"
)

// Handlers bundles every HTTP handler the API mounts.
type Handlers struct {
	Auth      *handler.AuthHandler
	Campaign  *handler.CampaignHandler
	Content   *handler.ContentHandler
	Calendar  *handler.CalendarHandler
	Chat      *handler.ChatHandler
	AutoReply *handler.AutoReplyHandler
	Analytics *handler.AnalyticsHandler
}

// NewRouter wires all routes. Everything under /api except health and
// the auth entry points sits behind the bearer-token gate.
func NewRouter(h Handlers, auth *service.AuthService, users repository.IUserRepository, frontendOrigin string) http.Handler {
	mux := http.NewServeMux()
	protect := handler.AuthMiddleware(auth, users)

	open := func(fn func(http.ResponseWriter, *http.Request) *common.AppError) http.Handler {
		return handler.ErrorHandlingMiddleware(fn)
	}
	guarded := func(fn func(http.ResponseWriter, *http.Request) *common.AppError) http.Handler {
		return protect(handler.ErrorHandlingMiddleware(fn))
	}

	mux.HandleFunc("GET /api/health", handler.HealthCheck)
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	// Auth
	mux.Handle("POST /api/auth/signup", open(h.Auth.Signup))
	mux.Handle("POST /api/auth/login", open(h.Auth.Login))
	mux.Handle("POST /api/auth/refresh", open(h.Auth.Refresh))
	mux.Handle("POST /api/auth/logout", open(h.Auth.Logout))
	mux.Handle("GET /api/auth/me", guarded(h.Auth.Me))

	// Campaigns
	mux.Handle("GET /api/campaigns", guarded(h.Campaign.List))
	mux.Handle("POST /api/campaigns", guarded(h.Campaign.Create))
	mux.Handle("GET /api/campaigns/stats", guarded(h.Campaign.Stats))
	mux.Handle("GET /api/campaigns/{id}", guarded(h.Campaign.Get))
	mux.Handle("PUT /api/campaigns/{id}", guarded(h.Campaign.Update))
	mux.Handle("DELETE /api/campaigns/{id}", guarded(h.Campaign.Delete))
	mux.Handle("POST /api/campaigns/{id}/generate-strategy", guarded(h.Campaign.GenerateStrategy))

	// Content
	mux.Handle("POST /api/content/generate", guarded(h.Content.Generate))
	mux.Handle("POST /api/content/variations", guarded(h.Content.Variations))
	mux.Handle("GET /api/content", guarded(h.Content.List))
	mux.Handle("POST /api/content", guarded(h.Content.Create))
	mux.Handle("PUT /api/content/{id}", guarded(h.Content.Update))
	mux.Handle("DELETE /api/content/{id}", guarded(h.Content.Delete))
	mux.Handle("POST /api/content/{id}/publish", guarded(h.Content.Publish))

	// Calendar
	mux.Handle("GET /api/calendar", guarded(h.Calendar.List))
	mux.Handle("POST /api/calendar", guarded(h.Calendar.Create))
	mux.Handle("PUT /api/calendar/{id}", guarded(h.Calendar.Update))
	mux.Handle("DELETE /api/calendar/{id}", guarded(h.Calendar.Delete))
	mux.Handle("POST /api/calendar/generate", guarded(h.Calendar.Generate))

	// Chat
	mux.Handle("POST /api/chat", guarded(h.Chat.Send))
	mux.Handle("GET /api/chat/history", guarded(h.Chat.History))
	mux.Handle("DELETE /api/chat/history", guarded(h.Chat.Clear))

	// Auto-reply
	mux.Handle("GET /api/autoreply/rules", guarded(h.AutoReply.ListRules))
	mux.Handle("POST /api/autoreply/rules", guarded(h.AutoReply.CreateRule))
	mux.Handle("PUT /api/autoreply/rules/{id}", guarded(h.AutoReply.UpdateRule))
	mux.Handle("DELETE /api/autoreply/rules/{id}", guarded(h.AutoReply.DeleteRule))
	mux.Handle("GET /api/autoreply/faqs", guarded(h.AutoReply.ListFAQs))
	mux.Handle("POST /api/autoreply/faqs", guarded(h.AutoReply.CreateFAQ))
	mux.Handle("DELETE /api/autoreply/faqs/{id}", guarded(h.AutoReply.DeleteFAQ))
	mux.Handle("POST /api/autoreply/simulate", guarded(h.AutoReply.Simulate))

	// Analytics
	mux.Handle("GET /api/analytics/overview", guarded(h.Analytics.Overview))
	mux.Handle("GET /api/analytics/engagement", guarded(h.Analytics.Engagement))
	mux.Handle("GET /api/analytics/channels", guarded(h.Analytics.Channels))
	mux.Handle("GET /api/analytics/top-content", guarded(h.Analytics.TopContent))
	mux.Handle("GET /api/analytics/funnel", guarded(h.Analytics.Funnel))
	mux.Handle("GET /api/analytics/demographics", guarded(h.Analytics.Demographics))
	mux.Handle("GET /api/analytics/heatmap", guarded(h.Analytics.Heatmap))
	mux.Handle("GET /api/analytics/optimisation", guarded(h.Analytics.Optimisation))

	var root http.Handler = mux
	root = handler.CORSMiddleware(frontendOrigin)(root)
	root = handler.RequestIDMiddleware(root)
	return root
}
