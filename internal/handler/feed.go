package handler

import (
	"net/http"

	"github.com/templui/momentum/internal/model"
	"github.com/templui/momentum/internal/service"
)

type FeedHandler struct {
	feedService *service.FeedService
}

func NewFeedHandler(feedService *service.FeedService) *FeedHandler {
	return &FeedHandler{
		feedService: feedService,
	}
}

// Feed lists a feed. ?user= narrows it to one author's posts.
func (h *FeedHandler) Feed(w http.ResponseWriter, r *http.Request) {
	v := model.Visibility(r.PathValue("visibility"))

	var (
		posts []model.Post
		err   error
	)
	if user := r.URL.Query().Get("user"); user != "" {
		posts, err = h.feedService.PostsBy(v, user)
	} else {
		posts, err = h.feedService.Feed(v)
	}
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, posts)
}

func (h *FeedHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	var post model.Post
	if err := decodeJSON(w, r, &post); err != nil {
		writeError(w, r, err)
		return
	}

	created, err := h.feedService.Create(post)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

type reactRequest struct {
	Emoji string `json:"emoji"`
}

func (h *FeedHandler) React(w http.ResponseWriter, r *http.Request) {
	var req reactRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	post, err := h.feedService.React(model.Visibility(r.PathValue("visibility")), r.PathValue("id"), req.Emoji)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, post)
}
