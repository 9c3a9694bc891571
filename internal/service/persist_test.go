package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/templui/momentum/internal/model"
	"github.com/templui/momentum/internal/repository"
	"github.com/templui/momentum/internal/store"
)

type memRepo struct {
	mu    sync.Mutex
	saved []repository.Snapshot
	snap  *repository.Snapshot
	err   error
}

func (r *memRepo) Load(context.Context) (*repository.Snapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	if r.snap == nil {
		return nil, repository.ErrSnapshotNotFound
	}
	return r.snap, nil
}

func (r *memRepo) Save(_ context.Context, snap repository.Snapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saved = append(r.saved, snap)
	r.snap = &snap
	return r.err
}

func (r *memRepo) saves() []repository.Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]repository.Snapshot(nil), r.saved...)
}

func TestEnqueueKeepsLatest(t *testing.T) {
	p := NewPersister(&memRepo{}, PersisterOptions{})

	for i := 0; i < 5; i++ {
		st := store.Initial()
		st.Goals = make([]model.Goal, i)
		p.Enqueue(st)
	}

	require.Len(t, p.pending, 1)
	assert.Len(t, (<-p.pending).Goals, 4)
}

func TestPersisterWritesAndFlushesOnShutdown(t *testing.T) {
	repo := &memRepo{}
	var observed int
	var mu sync.Mutex
	p := NewPersister(repo, PersisterOptions{
		Debounce: time.Hour,
		OnSave: func(time.Duration, error) {
			mu.Lock()
			observed++
			mu.Unlock()
		},
	})
	st := store.New(store.Initial(), store.Options{})
	detach := p.Attach(st)
	defer detach()

	ctx, cancel := context.WithCancel(context.Background())
	go p.Run(ctx)

	st.AddGoal(model.Goal{ID: "g1", Title: "Ship", Status: model.GoalStatusOnTrack})
	st.AddGoal(model.Goal{ID: "g2", Title: "Rest", Status: model.GoalStatusOnTrack})
	cancel()

	select {
	case <-p.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("persister did not stop")
	}

	saves := repo.saves()
	require.Len(t, saves, 1)
	assert.Len(t, saves[0].Goals, 2)
	assert.Equal(t, 1, observed)
}

func TestPersisterSavesWithoutDebounce(t *testing.T) {
	repo := &memRepo{}
	p := NewPersister(repo, PersisterOptions{})
	st := store.New(store.Initial(), store.Options{})
	p.Attach(st)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go p.Run(ctx)

	_ = st.SetAppState(model.AppPhaseMain)

	assert.Eventually(t, func() bool {
		saves := repo.saves()
		return len(saves) > 0 && saves[len(saves)-1].AppState == model.AppPhaseMain
	}, 2*time.Second, 10*time.Millisecond)
}

func TestRestore(t *testing.T) {
	t.Run("seeds demo on empty database", func(t *testing.T) {
		st := store.New(store.Initial(), store.Options{})
		require.NoError(t, Restore(context.Background(), &memRepo{}, st, true))
		assert.Equal(t, store.DemoActions(), st.Actions())
		assert.Equal(t, model.AppPhaseSetup, st.AppState())
	})

	t.Run("stays empty without seeding", func(t *testing.T) {
		st := store.New(store.Initial(), store.Options{})
		require.NoError(t, Restore(context.Background(), &memRepo{}, st, false))
		assert.Empty(t, st.Actions())
	})

	t.Run("hydrates saved state", func(t *testing.T) {
		repo := &memRepo{snap: &repository.Snapshot{
			Goals:    []model.Goal{{ID: "g1", Title: "Ship", Status: model.GoalStatusOnTrack}},
			AppState: model.AppPhaseMain,
		}}
		st := store.New(store.Initial(), store.Options{})
		require.NoError(t, Restore(context.Background(), repo, st, true))
		assert.Len(t, st.Goals(), 1)
		assert.Equal(t, model.AppPhaseMain, st.AppState())
	})

	t.Run("unknown phase falls back to setup", func(t *testing.T) {
		repo := &memRepo{snap: &repository.Snapshot{AppState: "onboarding"}}
		st := store.New(store.Initial(), store.Options{})
		require.NoError(t, st.SetAppState(model.AppPhaseMain))
		require.NoError(t, Restore(context.Background(), repo, st, false))
		assert.Equal(t, model.AppPhaseSetup, st.AppState())
	})

	t.Run("rejects inconsistent actions", func(t *testing.T) {
		repo := &memRepo{snap: &repository.Snapshot{
			Actions:  []model.ActionItem{{ID: "1", Title: "Read", Type: model.ActionTypePerformance, Done: true}},
			AppState: model.AppPhaseMain,
		}}
		st := store.New(store.Initial(), store.Options{})
		err := Restore(context.Background(), repo, st, false)
		assert.ErrorIs(t, err, store.ErrInconsistentAction)
		assert.Empty(t, st.Actions())
	})

	t.Run("propagates load errors", func(t *testing.T) {
		st := store.New(store.Initial(), store.Options{})
		err := Restore(context.Background(), &memRepo{err: errors.New("locked")}, st, true)
		assert.ErrorContains(t, err, "locked")
	})
}
