package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/templui/momentum/internal/db"
	"github.com/templui/momentum/internal/model"
)

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	conn, err := db.Init(db.DriverSQLite, filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close(conn) })
	require.NoError(t, db.RunMigrations(context.Background(), conn.DB, db.DriverSQLite))
	return conn
}

func TestLoadEmpty(t *testing.T) {
	repo := NewStateRepository(newTestDB(t))

	_, err := repo.Load(context.Background())

	assert.ErrorIs(t, err, ErrSnapshotNotFound)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewStateRepository(newTestDB(t))
	streak, comments := 8, 2

	snap := Snapshot{
		Goals: []model.Goal{
			{ID: "g2", Title: "Run a marathon", Metric: "42km", Deadline: "2026-10-01", Status: model.GoalStatusNeedsAttention, Consistency: 40},
			{ID: "g1", Title: "Read 12 books", Metric: "12", Deadline: "2026-12-31", Why: "Curiosity", Status: model.GoalStatusOnTrack},
		},
		Actions: []model.ActionItem{
			{ID: "2", Title: "Meditation 10m", Type: model.ActionTypePerformance, Streak: 3},
			{ID: "1", Title: "Morning workout", GoalTitle: "Lose 10 lbs", Type: model.ActionTypeCommitment, Time: "7:00", Streak: 8, Done: true},
		},
		CircleFeed: []model.Post{
			{ID: "p9", User: "Riley", Type: model.PostTypeCheckin, Visibility: model.VisibilityCircle, Content: "Deep work", Streak: &streak,
				Reactions: model.Reactions{"🚀": 9, "💻": 6}, Time: "8h"},
			{ID: "p1", User: "Alex", Type: model.PostTypeStatus, Visibility: model.VisibilityCircle, Content: "HIIT", Reactions: model.Reactions{}, Time: "2h"},
		},
		FollowFeed: []model.Post{
			{ID: "p1", User: "Morgan", Type: model.PostTypePhoto, Visibility: model.VisibilityFollow, PhotoURI: "https://cdn/x.jpg",
				Comments: &comments, Reactions: model.Reactions{"💯": 15}, Time: "3h"},
		},
		AppState: model.AppPhaseMain,
	}

	require.NoError(t, repo.Save(ctx, snap))
	got, err := repo.Load(ctx)
	require.NoError(t, err)

	assert.Equal(t, snap, *got)
}

func TestSaveReplacesPreviousState(t *testing.T) {
	ctx := context.Background()
	repo := NewStateRepository(newTestDB(t))

	require.NoError(t, repo.Save(ctx, Snapshot{
		Goals:    []model.Goal{{ID: "old", Title: "Old", Status: model.GoalStatusCritical}},
		AppState: model.AppPhaseMain,
	}))
	require.NoError(t, repo.Save(ctx, Snapshot{}))

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, got.Goals)
	assert.Empty(t, got.CircleFeed)
	assert.Equal(t, model.AppPhaseSetup, got.AppState)
}
