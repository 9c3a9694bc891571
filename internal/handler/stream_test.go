package handler

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/templui/momentum/internal/model"
	"github.com/templui/momentum/internal/store"
)

func readSnapshot(t *testing.T, conn *websocket.Conn) snapshotMessage {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var msg snapshotMessage
	require.NoError(t, conn.ReadJSON(&msg))
	return msg
}

func TestStreamPushesSnapshots(t *testing.T) {
	st := store.New(store.Demo(), store.Options{})
	srv := httptest.NewServer(NewStreamHandler(st, nil).Serve)
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	defer conn.Close()

	initial := readSnapshot(t, conn)
	assert.Equal(t, "snapshot", initial.Type)
	assert.Len(t, initial.State.Actions, len(store.DemoActions()))

	require.NoError(t, st.SetFeedView(model.VisibilityFollow))

	// a change made before the initial snapshot was sent may already be in it
	update := initial
	for update.State.FeedView != model.VisibilityFollow {
		update = readSnapshot(t, conn)
	}
	assert.Equal(t, model.VisibilityFollow, update.State.FeedView)
}

func TestOfferKeepsNewest(t *testing.T) {
	ch := make(chan store.State, 1)
	first := store.Initial()
	second := store.Initial()
	second.FeedView = model.VisibilityFollow

	offer(ch, first)
	offer(ch, second)

	assert.Equal(t, model.VisibilityFollow, (<-ch).FeedView)
	assert.Empty(t, ch)
}
