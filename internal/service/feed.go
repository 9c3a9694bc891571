package service

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/templui/momentum/internal/model"
	"github.com/templui/momentum/internal/store"
	"github.com/templui/momentum/internal/validation"
)

var (
	ErrPostNotFound = errors.New("post not found")
	ErrInvalidPost  = errors.New("invalid post")
)

const (
	defaultAvatar = "👤"
	timeNow       = "now"
)

type FeedService struct {
	store *store.Store
	user  string
}

func NewFeedService(st *store.Store, user string) *FeedService {
	return &FeedService{store: st, user: user}
}

func (s *FeedService) Feed(v model.Visibility) ([]model.Post, error) {
	return s.store.Feed(v)
}

// PostsBy returns user's own posts in the feed named by v.
func (s *FeedService) PostsBy(v model.Visibility, user string) ([]model.Post, error) {
	return s.store.PostsBy(v, user)
}

// Create publishes a post straight to the feed named by its visibility.
// Author, avatar, time and reactions are filled in when missing.
func (s *FeedService) Create(post model.Post) (model.Post, error) {
	if !post.Type.Valid() {
		return model.Post{}, fmt.Errorf("%w: unknown type %q", ErrInvalidPost, post.Type)
	}
	if strings.TrimSpace(post.Content) == "" && post.PhotoURI == "" && post.AudioURI == "" {
		return model.Post{}, fmt.Errorf("%w: content or media is required", ErrInvalidPost)
	}
	post = s.withDefaults(post)

	if err := s.store.AddPost(post); err != nil {
		return model.Post{}, err
	}
	slog.Info("post added", "post_id", post.ID, "visibility", post.Visibility)
	return post, nil
}

func (s *FeedService) React(v model.Visibility, postID, emoji string) (model.Post, error) {
	if !v.Valid() {
		return model.Post{}, fmt.Errorf("%w: %q", store.ErrUnknownVisibility, v)
	}
	if err := validation.Emoji(emoji); err != nil {
		return model.Post{}, fmt.Errorf("%w: %v", ErrInvalidPost, err)
	}
	post, ok := s.store.React(postID, emoji, v)
	if !ok {
		return model.Post{}, ErrPostNotFound
	}
	return post, nil
}

func (s *FeedService) withDefaults(post model.Post) model.Post {
	if post.ID == "" {
		post.ID = uuid.NewString()
	}
	if post.User == "" {
		post.User = s.user
	}
	if post.Avatar == "" && post.User == s.user {
		post.Avatar = defaultAvatar
	}
	if post.Time == "" {
		post.Time = timeNow
	}
	if post.Reactions == nil {
		post.Reactions = model.Reactions{}
	}
	return post
}
