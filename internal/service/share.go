package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"mime/multipart"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/templui/momentum/internal/model"
	"github.com/templui/momentum/internal/storage"
	"github.com/templui/momentum/internal/store"
	"github.com/templui/momentum/internal/validation"
)

var (
	ErrInvalidDraft = errors.New("invalid share draft")
	ErrInvalidMedia = errors.New("invalid media")
)

type ShareService struct {
	store    *store.Store
	feed     *FeedService
	storage  storage.Storage
	maxBytes int64
}

func NewShareService(st *store.Store, feed *FeedService, storage storage.Storage, maxBytes int64) *ShareService {
	return &ShareService{
		store:    st,
		feed:     feed,
		storage:  storage,
		maxBytes: maxBytes,
	}
}

func (s *ShareService) Draft() *model.ShareDraft {
	return s.store.ShareDraft()
}

// Open puts draft in the composer. Without force an occupied composer is an
// error; with force the old draft is replaced and the loss is logged.
func (s *ShareService) Open(draft model.ShareDraft, force bool) (*model.ShareDraft, error) {
	if !draft.Type.Valid() {
		return nil, fmt.Errorf("%w: unknown type %q", ErrInvalidDraft, draft.Type)
	}
	if draft.Visibility != "" && !draft.Visibility.Valid() {
		return nil, fmt.Errorf("%w: %q", store.ErrUnknownVisibility, draft.Visibility)
	}

	if !force {
		return nil, s.store.TryOpenShare(draft)
	}
	previous := s.store.OpenShare(draft)
	if previous != nil {
		slog.Warn("share draft replaced", "discarded_type", previous.Type, "type", draft.Type)
	}
	return previous, nil
}

func (s *ShareService) Close() *model.ShareDraft {
	return s.store.CloseShare()
}

type PublishInput struct {
	Text       *string          `json:"text,omitempty"`
	Visibility model.Visibility `json:"visibility,omitempty"`
}

// Publish turns the open draft into a post, shows that post's feed and closes
// the composer.
func (s *ShareService) Publish(in PublishInput) (model.Post, error) {
	if in.Visibility != "" && !in.Visibility.Valid() {
		return model.Post{}, fmt.Errorf("%w: %q", store.ErrUnknownVisibility, in.Visibility)
	}

	post, err := s.store.PublishShare(func(d model.ShareDraft) (model.Post, error) {
		if in.Text != nil {
			d.Text = *in.Text
		}
		if in.Visibility != "" {
			d.Visibility = in.Visibility
		}
		return s.postFromDraft(d)
	})
	if err != nil {
		return model.Post{}, err
	}

	slog.Info("share published", "post_id", post.ID, "visibility", post.Visibility, "type", post.Type)
	return post, nil
}

func (s *ShareService) postFromDraft(d model.ShareDraft) (model.Post, error) {
	visibility := d.Visibility
	if visibility == "" {
		visibility = model.VisibilityCircle
	}

	content := strings.TrimSpace(d.Text)
	if content == "" && d.Type == model.PostTypeCheckin && d.ActionTitle != "" {
		content = "Checked in: " + d.ActionTitle
	}
	if content == "" && d.PhotoURI == "" && d.AudioURI == "" {
		return model.Post{}, fmt.Errorf("%w: nothing to publish", ErrInvalidDraft)
	}

	post := model.Post{
		Type:        d.Type,
		Visibility:  visibility,
		Content:     content,
		PhotoURI:    d.PhotoURI,
		AudioURI:    d.AudioURI,
		ActionTitle: d.ActionTitle,
		Goal:        d.Goal,
		Streak:      d.Streak,
		GoalColor:   d.GoalColor,
	}
	return s.feed.withDefaults(post), nil
}

// AttachMedia uploads a photo or voice note and links it to the open draft.
func (s *ShareService) AttachMedia(ctx context.Context, file multipart.File, header *multipart.FileHeader) (model.ShareDraft, error) {
	if !s.store.ShareOccupied() {
		return model.ShareDraft{}, store.ErrNoShareDraft
	}

	kind, contentType, err := validation.ValidateMedia(header, s.maxBytes,
		validation.PhotoConstraints, validation.AudioConstraints)
	if err != nil {
		return model.ShareDraft{}, fmt.Errorf("%w: %v", ErrInvalidMedia, err)
	}

	key := path.Join("share", kind.Kind, uuid.NewString()+strings.ToLower(path.Ext(header.Filename)))
	if err := s.storage.Save(ctx, key, contentType, file); err != nil {
		return model.ShareDraft{}, fmt.Errorf("failed to save media: %w", err)
	}
	url, err := s.storage.URL(ctx, key)
	if err != nil {
		s.cleanup(ctx, key)
		return model.ShareDraft{}, fmt.Errorf("failed to link media: %w", err)
	}

	draft, err := s.store.EditShare(func(d *model.ShareDraft) {
		if kind.Kind == validation.PhotoConstraints.Kind {
			d.PhotoURI = url
		} else {
			d.AudioURI = url
		}
	})
	if err != nil {
		// composer was closed while uploading
		s.cleanup(ctx, key)
		return model.ShareDraft{}, err
	}

	slog.Info("share media attached", "kind", kind.Kind, "key", key, "size", header.Size)
	return draft, nil
}

func (s *ShareService) cleanup(ctx context.Context, key string) {
	if err := s.storage.Delete(ctx, key); err != nil {
		slog.Error("failed to delete orphaned media", "key", key, "error", err)
	}
}
