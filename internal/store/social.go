package store

import (
	"fmt"

	"github.com/templui/momentum/internal/model"
)

func (s *Store) CircleFeed() []model.Post {
	var out []model.Post
	s.read(func(st *State) { out = clonePosts(st.CircleFeed) })
	return out
}

func (s *Store) FollowFeed() []model.Post {
	var out []model.Post
	s.read(func(st *State) { out = clonePosts(st.FollowFeed) })
	return out
}

// Feed returns the feed selected by v.
func (s *Store) Feed(v model.Visibility) ([]model.Post, error) {
	switch v {
	case model.VisibilityCircle:
		return s.CircleFeed(), nil
	case model.VisibilityFollow:
		return s.FollowFeed(), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownVisibility, v)
}

// PostsBy returns the posts in the feed selected by v written by user,
// newest first.
func (s *Store) PostsBy(v model.Visibility, user string) ([]model.Post, error) {
	posts, err := s.Feed(v)
	if err != nil {
		return nil, err
	}
	out := make([]model.Post, 0, len(posts))
	for _, p := range posts {
		if p.User == user {
			out = append(out, p)
		}
	}
	return out, nil
}

func feedOf(st *State, v model.Visibility) *[]model.Post {
	if v == model.VisibilityCircle {
		return &st.CircleFeed
	}
	return &st.FollowFeed
}

// React adds one emoji reaction to a post in the feed selected by which.
// Only that feed is searched. It reports false when the post is not there.
func (s *Store) React(id, emoji string, which model.Visibility) (model.Post, bool) {
	if !which.Valid() {
		return model.Post{}, false
	}

	var reacted model.Post
	found := s.update("react", func(st *State) bool {
		feed := feedOf(st, which)
		for i, p := range *feed {
			if p.ID != id {
				continue
			}
			reacted = p.Clone()
			reacted.Reactions = p.Reactions.Incremented(emoji)
			next := append([]model.Post{}, (*feed)...)
			next[i] = reacted
			*feed = next
			return true
		}
		return false
	})
	return reacted.Clone(), found
}

// AddPost puts p at the head of the feed matching its visibility.
func (s *Store) AddPost(p model.Post) error {
	if !p.Visibility.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownVisibility, p.Visibility)
	}
	p = normalizePost(p)
	s.update("add_post", func(st *State) bool {
		feed := feedOf(st, p.Visibility)
		*feed = prepend(p, *feed)
		return true
	})
	return nil
}

// PublishShare turns the open share draft into a post. build receives the
// current draft; the resulting post is added to its feed, that feed becomes the
// active tab and the composer is closed, all in one change.
func (s *Store) PublishShare(build func(draft model.ShareDraft) (model.Post, error)) (model.Post, error) {
	var (
		published model.Post
		err       error
	)
	s.update("publish_share", func(st *State) bool {
		if !st.ShareOpen || st.ShareDraft == nil {
			err = ErrNoShareDraft
			return false
		}
		var p model.Post
		p, err = build(*st.ShareDraft.Clone())
		if err != nil {
			return false
		}
		if !p.Visibility.Valid() {
			err = fmt.Errorf("%w: %q", ErrUnknownVisibility, p.Visibility)
			return false
		}
		p = normalizePost(p)
		feed := feedOf(st, p.Visibility)
		*feed = prepend(p, *feed)
		st.FeedView = p.Visibility
		st.ShareOpen = false
		st.ShareDraft = nil
		published = p.Clone()
		return true
	})
	return published, err
}

func normalizePost(p model.Post) model.Post {
	p = p.Clone()
	reactions := make(model.Reactions, len(p.Reactions))
	for k, v := range p.Reactions {
		reactions[model.ReactionKey(k)] += v
	}
	p.Reactions = reactions
	return p
}
