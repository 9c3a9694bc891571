package routes

import (
	"net/http"

	"github.com/templui/momentum/internal/app"
	"github.com/templui/momentum/internal/handler"
	"github.com/templui/momentum/internal/metrics"
	"github.com/templui/momentum/internal/middleware"
)

func SetupRoutes(app *app.App) http.Handler {
	mux := http.NewServeMux()

	// Handlers
	goal := handler.NewGoalHandler(app.GoalService)
	action := handler.NewActionHandler(app.ActionService)
	feed := handler.NewFeedHandler(app.FeedService)
	share := handler.NewShareHandler(app.ShareService, app.Cfg.MediaMaxBytes)
	session := handler.NewSessionHandler(app.SessionService)
	setup := handler.NewSetupHandler(app.SetupService)
	stream := handler.NewStreamHandler(app.Store, sameOriginUnlessDev(app.Cfg.IsDevelopment()))

	var verifier middleware.TokenVerifier
	if app.TokenService != nil {
		verifier = app.TokenService
	}
	requireToken := middleware.RequireToken(verifier)
	api := func(h http.HandlerFunc) http.Handler {
		return requireToken(h)
	}
	limit := middleware.RateLimit(app.PostLimiter)

	// ============================================================================
	// PUBLIC ROUTES
	// ============================================================================

	mux.HandleFunc("GET /healthz", handler.Health)
	mux.Handle("GET /metrics", metrics.Handler())

	// ============================================================================
	// API ROUTES (bearer token when JWT_SECRET is set)
	// ============================================================================

	// State
	mux.Handle("GET /api/state", api(session.State))
	mux.Handle("GET /api/ws", api(stream.Serve))
	mux.Handle("GET /api/meta", api(session.Meta))

	// Goals
	mux.Handle("GET /api/goals", api(goal.List))
	mux.Handle("POST /api/goals", api(goal.Create))

	// Daily actions
	mux.Handle("GET /api/actions", api(action.List))
	mux.Handle("POST /api/actions", api(action.Create))
	mux.Handle("PUT /api/actions", api(action.Replace))
	mux.Handle("POST /api/actions/{id}/toggle", api(action.Toggle))
	mux.Handle("GET /api/progress", api(action.Progress))

	// Social
	mux.Handle("GET /api/feeds/{visibility}", api(feed.Feed))
	mux.Handle("POST /api/posts", api(limit(feed.CreatePost)))
	mux.Handle("POST /api/feeds/{visibility}/posts/{id}/reactions", api(limit(feed.React)))

	// Session
	mux.Handle("GET /api/session/feed-view", api(session.FeedView))
	mux.Handle("PUT /api/session/feed-view", api(session.SetFeedView))
	mux.Handle("POST /api/session/daily-review/{action}", api(session.DailyReview))
	mux.Handle("PUT /api/session/app-state", api(session.SetAppState))

	// Share composer
	mux.Handle("GET /api/share", api(share.Get))
	mux.Handle("POST /api/share", api(share.Open))
	mux.Handle("DELETE /api/share", api(share.Close))
	mux.Handle("POST /api/share/publish", api(limit(share.Publish)))
	mux.Handle("POST /api/share/media", api(limit(share.UploadMedia)))

	// Setup wizard
	mux.Handle("GET /api/setup", api(setup.Get))
	mux.Handle("PATCH /api/setup", api(setup.Patch))
	mux.Handle("DELETE /api/setup", api(setup.Reset))
	mux.Handle("POST /api/setup/goal", api(setup.SubmitGoal))
	mux.Handle("POST /api/setup/habits", api(setup.SubmitHabits))
	mux.Handle("POST /api/setup/milestones", api(setup.SubmitMilestones))
	mux.Handle("POST /api/setup/actions", api(setup.SubmitAction))
	mux.Handle("POST /api/setup/back", api(setup.Back))
	mux.Handle("POST /api/setup/finish", api(setup.Finish))
	mux.Handle("POST /api/setup/skip", api(setup.Skip))

	// Global middleware - executed in order (top to bottom).
	// InstrumentHandler sits next to the mux so it sees the matched pattern.
	return middleware.Chain(
		mux,
		middleware.RequestLogging,
		middleware.Config(app.Cfg),
		metrics.InstrumentHandler,
	)
}

// sameOriginUnlessDev relaxes the websocket origin check for local clients
// such as the Expo dev server.
func sameOriginUnlessDev(isDev bool) func(r *http.Request) bool {
	if isDev {
		return func(r *http.Request) bool { return true }
	}
	return nil
}
