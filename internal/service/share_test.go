package service

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/templui/momentum/internal/model"
	"github.com/templui/momentum/internal/store"
)

type memStorage struct {
	mu      sync.Mutex
	objects map[string][]byte
	types   map[string]string
}

func newMemStorage() *memStorage {
	return &memStorage{objects: map[string][]byte{}, types: map[string]string{}}
}

func (m *memStorage) Save(_ context.Context, key, contentType string, body io.Reader) error {
	b, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[key] = b
	m.types[key] = contentType
	return nil
}

func (m *memStorage) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.objects, key)
	return nil
}

func (m *memStorage) URL(_ context.Context, key string) (string, error) {
	return "https://media.test/" + key, nil
}

func newShareService(st *store.Store, storage *memStorage) *ShareService {
	return NewShareService(st, NewFeedService(st, "You"), storage, 1<<20)
}

func TestShareOpenOccupied(t *testing.T) {
	st := newStore()
	svc := newShareService(st, newMemStorage())

	_, err := svc.Open(model.ShareDraft{Type: model.PostTypeStatus, Text: "first"}, false)
	require.NoError(t, err)
	_, err = svc.Open(model.ShareDraft{Type: model.PostTypePhoto}, false)
	assert.ErrorIs(t, err, store.ErrShareDraftOccupied)

	previous, err := svc.Open(model.ShareDraft{Type: model.PostTypePhoto}, true)
	require.NoError(t, err)
	require.NotNil(t, previous)
	assert.Equal(t, "first", previous.Text)
	assert.Equal(t, model.PostTypePhoto, svc.Draft().Type)
}

func TestShareOpenRejectsBadDraft(t *testing.T) {
	svc := newShareService(newStore(), newMemStorage())

	_, err := svc.Open(model.ShareDraft{Type: "story"}, false)
	assert.ErrorIs(t, err, ErrInvalidDraft)
	_, err = svc.Open(model.ShareDraft{Type: model.PostTypeStatus, Visibility: "world"}, false)
	assert.ErrorIs(t, err, store.ErrUnknownVisibility)
}

func TestSharePublishCheckin(t *testing.T) {
	st := newStore()
	svc := newShareService(st, newMemStorage())
	streak := 8
	_, err := svc.Open(model.ShareDraft{
		Type: model.PostTypeCheckin, ActionTitle: "Morning workout", Goal: "Lose 10 lbs", Streak: &streak,
	}, false)
	require.NoError(t, err)

	post, err := svc.Publish(PublishInput{Visibility: model.VisibilityFollow})
	require.NoError(t, err)

	assert.Equal(t, "Checked in: Morning workout", post.Content)
	assert.Equal(t, model.VisibilityFollow, post.Visibility)
	assert.Equal(t, 8, *post.Streak)
	assert.Equal(t, post.ID, st.FollowFeed()[0].ID)
	assert.Equal(t, model.VisibilityFollow, st.FeedView())
	assert.False(t, st.ShareOpen())
}

func TestSharePublishWithoutDraft(t *testing.T) {
	svc := newShareService(newStore(), newMemStorage())

	_, err := svc.Publish(PublishInput{})
	assert.ErrorIs(t, err, store.ErrNoShareDraft)
}

func TestSharePublishEmptyKeepsDraft(t *testing.T) {
	st := newStore()
	svc := newShareService(st, newMemStorage())
	_, err := svc.Open(model.ShareDraft{Type: model.PostTypeStatus}, false)
	require.NoError(t, err)

	_, err = svc.Publish(PublishInput{})

	assert.ErrorIs(t, err, ErrInvalidDraft)
	assert.True(t, st.ShareOccupied())
}

var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}

func multipartFile(t *testing.T, filename string, content []byte) (multipart.File, *multipart.FileHeader) {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))
	file, header, err := req.FormFile("file")
	require.NoError(t, err)
	t.Cleanup(func() { file.Close() })
	return file, header
}

func TestShareAttachPhoto(t *testing.T) {
	st := newStore()
	storage := newMemStorage()
	svc := newShareService(st, storage)
	_, err := svc.Open(model.ShareDraft{Type: model.PostTypePhoto}, false)
	require.NoError(t, err)

	file, header := multipartFile(t, "sunrise.PNG", pngHeader)
	draft, err := svc.AttachMedia(context.Background(), file, header)
	require.NoError(t, err)

	assert.Contains(t, draft.PhotoURI, "https://media.test/share/photo/")
	assert.Equal(t, draft.PhotoURI, st.ShareDraft().PhotoURI)
	require.Len(t, storage.objects, 1)
	for _, ct := range storage.types {
		assert.Equal(t, "image/png", ct)
	}
}

func TestShareAttachRejects(t *testing.T) {
	st := newStore()
	svc := newShareService(st, newMemStorage())

	file, header := multipartFile(t, "sunrise.png", pngHeader)
	_, err := svc.AttachMedia(context.Background(), file, header)
	assert.ErrorIs(t, err, store.ErrNoShareDraft)

	_, err = svc.Open(model.ShareDraft{Type: model.PostTypePhoto}, false)
	require.NoError(t, err)
	file, header = multipartFile(t, "notes.txt", []byte("hello"))
	_, err = svc.AttachMedia(context.Background(), file, header)
	assert.ErrorIs(t, err, ErrInvalidMedia)
}
