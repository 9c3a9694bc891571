package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/templui/momentum/internal/model"
	"github.com/templui/momentum/internal/repository"
	"github.com/templui/momentum/internal/store"
)

// Persister writes store snapshots to the database in the background. Only
// the newest pending snapshot is kept, so a burst of changes costs one write.
type Persister struct {
	repo     repository.StateRepository
	debounce time.Duration
	pending  chan store.State
	done     chan struct{}
	onSave   func(time.Duration, error)
}

type PersisterOptions struct {
	// Debounce delays each write to absorb follow-up changes.
	Debounce time.Duration
	// OnSave observes every write.
	OnSave func(duration time.Duration, err error)
}

func NewPersister(repo repository.StateRepository, opts PersisterOptions) *Persister {
	return &Persister{
		repo:     repo,
		debounce: opts.Debounce,
		pending:  make(chan store.State, 1),
		done:     make(chan struct{}),
		onSave:   opts.OnSave,
	}
}

// Attach subscribes the persister to st.
func (p *Persister) Attach(st *store.Store) (detach func()) {
	return st.Subscribe(p.Enqueue)
}

// Enqueue never blocks; a snapshot still waiting to be written is replaced.
func (p *Persister) Enqueue(st store.State) {
	for {
		select {
		case p.pending <- st:
			return
		default:
		}
		select {
		case <-p.pending:
		default:
		}
	}
}

// Run writes snapshots until ctx is cancelled, then flushes what is pending.
func (p *Persister) Run(ctx context.Context) {
	defer close(p.done)

	for {
		select {
		case <-ctx.Done():
			p.flush(nil)
			return
		case st := <-p.pending:
			if p.debounce > 0 {
				timer := time.NewTimer(p.debounce)
				select {
				case <-ctx.Done():
					timer.Stop()
					p.flush(&st)
					return
				case <-timer.C:
				}
				st = p.latest(st)
			}
			p.save(ctx, st)
		}
	}
}

// Done is closed once Run has returned.
func (p *Persister) Done() <-chan struct{} {
	return p.done
}

func (p *Persister) latest(st store.State) store.State {
	select {
	case newer := <-p.pending:
		return newer
	default:
		return st
	}
}

// flush writes the newest of held and anything pending, with a fresh
// deadline since the run context is already cancelled.
func (p *Persister) flush(held *store.State) {
	var st store.State
	select {
	case st = <-p.pending:
	default:
		if held == nil {
			return
		}
		st = *held
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	p.save(ctx, st)
}

func (p *Persister) save(ctx context.Context, st store.State) {
	start := time.Now()
	err := p.repo.Save(ctx, SnapshotOf(st))
	if p.onSave != nil {
		p.onSave(time.Since(start), err)
	}
	if err != nil {
		// the next change writes the full state again
		slog.Error("failed to persist state", "error", err)
		return
	}
	slog.Debug("state persisted", "goals", len(st.Goals), "actions", len(st.Actions),
		"posts", len(st.CircleFeed)+len(st.FollowFeed))
}

func SnapshotOf(st store.State) repository.Snapshot {
	return repository.Snapshot{
		Goals:      st.Goals,
		Actions:    st.Actions,
		CircleFeed: st.CircleFeed,
		FollowFeed: st.FollowFeed,
		AppState:   st.AppState,
	}
}

// Restore loads persisted state into st. A fresh database gets the demo
// checklist and feeds when seedDemo is set.
func Restore(ctx context.Context, repo repository.StateRepository, st *store.Store, seedDemo bool) error {
	snap, err := repo.Load(ctx)
	if errors.Is(err, repository.ErrSnapshotNotFound) {
		if !seedDemo {
			slog.Info("starting with empty state")
			return nil
		}
		demo := store.Demo()
		if err := st.Hydrate(demo.Goals, demo.Actions, demo.CircleFeed, demo.FollowFeed); err != nil {
			return err
		}
		slog.Info("seeded demo state", "actions", len(demo.Actions),
			"posts", len(demo.CircleFeed)+len(demo.FollowFeed))
		return nil
	}
	if err != nil {
		return fmt.Errorf("restore state: %w", err)
	}

	if err := st.Hydrate(snap.Goals, snap.Actions, snap.CircleFeed, snap.FollowFeed); err != nil {
		return fmt.Errorf("restore state: %w", err)
	}
	phase := snap.AppState
	if !phase.Valid() {
		slog.Warn("ignoring persisted app state", "value", snap.AppState)
		phase = model.AppPhaseSetup
	}
	if err := st.SetAppState(phase); err != nil {
		return err
	}
	slog.Info("state restored", "goals", len(snap.Goals), "actions", len(snap.Actions))
	return nil
}
