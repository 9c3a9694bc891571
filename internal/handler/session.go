package handler

import (
	"fmt"
	"net/http"

	"github.com/templui/momentum/internal/ctxkeys"
	"github.com/templui/momentum/internal/model"
	"github.com/templui/momentum/internal/service"
)

type SessionHandler struct {
	sessionService *service.SessionService
}

func NewSessionHandler(sessionService *service.SessionService) *SessionHandler {
	return &SessionHandler{
		sessionService: sessionService,
	}
}

// State returns the whole store snapshot.
func (h *SessionHandler) State(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.sessionService.State())
}

type feedViewBody struct {
	FeedView model.Visibility `json:"feedView"`
}

func (h *SessionHandler) FeedView(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, feedViewBody{FeedView: h.sessionService.FeedView()})
}

func (h *SessionHandler) SetFeedView(w http.ResponseWriter, r *http.Request) {
	var body feedViewBody
	if err := decodeJSON(w, r, &body); err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.sessionService.SetFeedView(body.FeedView); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, body)
}

func (h *SessionHandler) DailyReview(w http.ResponseWriter, r *http.Request) {
	switch action := r.PathValue("action"); action {
	case "open":
		h.sessionService.SetDailyReview(true)
	case "close":
		h.sessionService.SetDailyReview(false)
	default:
		writeError(w, r, fmt.Errorf("%w: unknown daily review action %q", errBadRequest, action))
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{
		"isDailyReviewOpen": h.sessionService.State().IsDailyReviewOpen,
	})
}

type appStateBody struct {
	AppState model.AppPhase `json:"appState"`
}

func (h *SessionHandler) SetAppState(w http.ResponseWriter, r *http.Request) {
	var body appStateBody
	if err := decodeJSON(w, r, &body); err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.sessionService.SetAppState(body.AppState); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, body)
}

// Meta exposes the sanitized configuration.
func (h *SessionHandler) Meta(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ctxkeys.Config(r.Context()))
}

func Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
