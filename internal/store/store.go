// Package store holds the application state: goals, the daily checklist, the
// two social feeds and transient session state, including the setup wizard.
//
// A Store is constructed explicitly and passed to whoever needs it. Every
// mutation replaces the affected collections instead of editing them, so a
// State handed out by Snapshot or to a listener never changes afterwards.
package store

import (
	"errors"
	"sync"

	"github.com/templui/momentum/internal/model"
)

var (
	ErrUnknownVisibility  = errors.New("unknown visibility")
	ErrUnknownPhase       = errors.New("unknown app phase")
	ErrShareDraftOccupied = errors.New("share composer already holds a draft")
	ErrNoShareDraft       = errors.New("share composer is not open")
	ErrInconsistentAction = errors.New("completed action must have a streak")
)

type State struct {
	Goals      []model.Goal       `json:"goals"`
	Actions    []model.ActionItem `json:"actions"`
	CircleFeed []model.Post       `json:"circleFeed"`
	FollowFeed []model.Post       `json:"followFeed"`

	FeedView          model.Visibility  `json:"feedView"`
	IsDailyReviewOpen bool              `json:"isDailyReviewOpen"`
	ShareOpen         bool              `json:"shareOpen"`
	ShareDraft        *model.ShareDraft `json:"shareDraft"`
	AppState          model.AppPhase    `json:"appState"`
	SetupState        model.SetupState  `json:"setupState"`
}

// Initial is the state of a fresh install: no data, circle tab, setup phase.
func Initial() State {
	return State{
		Goals:      []model.Goal{},
		Actions:    []model.ActionItem{},
		CircleFeed: []model.Post{},
		FollowFeed: []model.Post{},
		FeedView:   model.VisibilityCircle,
		AppState:   model.AppPhaseSetup,
		SetupState: model.NewSetupState(),
	}
}

// Clone returns a deep copy.
func (s State) Clone() State {
	s.Goals = append([]model.Goal{}, s.Goals...)
	s.Actions = append([]model.ActionItem{}, s.Actions...)
	s.CircleFeed = clonePosts(s.CircleFeed)
	s.FollowFeed = clonePosts(s.FollowFeed)
	s.ShareDraft = s.ShareDraft.Clone()
	s.SetupState = s.SetupState.Clone()
	return s
}

func clonePosts(in []model.Post) []model.Post {
	out := make([]model.Post, len(in))
	for i, p := range in {
		out[i] = p.Clone()
	}
	return out
}

// Listener receives a snapshot after every committed change.
type Listener func(State)

type Options struct {
	// OnMutation is called after each operation with its name and whether it
	// changed the state.
	OnMutation func(op string, changed bool)
}

type Store struct {
	// writeMu serialises mutation and notification so listeners observe
	// changes in commit order.
	writeMu sync.Mutex

	mu        sync.RWMutex
	state     State
	version   uint64
	listeners []listenerEntry
	nextID    uint64

	onMutation func(op string, changed bool)
}

type listenerEntry struct {
	id uint64
	fn Listener
}

func New(initial State, opts Options) *Store {
	return &Store{
		state:      initial.Clone(),
		onMutation: opts.OnMutation,
	}
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

// Version counts committed changes.
func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// Subscribe registers fn for change notifications. Listeners run
// synchronously on the writer's goroutine and must not call mutators.
func (s *Store) Subscribe(fn Listener) (unsubscribe func()) {
	s.mu.Lock()
	s.nextID++
	id := s.nextID
	s.listeners = append(s.listeners, listenerEntry{id: id, fn: fn})
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			for i, l := range s.listeners {
				if l.id == id {
					s.listeners = append(s.listeners[:i:i], s.listeners[i+1:]...)
					break
				}
			}
		})
	}
}

// SubscribeCurrent registers fn and calls it once with the current state
// before any further change can commit, so fn sees every state from now on in
// commit order.
func (s *Store) SubscribeCurrent(fn Listener) (unsubscribe func()) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	unsubscribe = s.Subscribe(fn)
	fn(s.Snapshot())
	return unsubscribe
}

// update runs fn on a shallow copy of the state. fn must replace any
// collection it changes rather than writing into it, and report whether
// anything changed. Unchanged operations commit nothing and notify nobody.
func (s *Store) update(op string, fn func(st *State) bool) bool {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.RLock()
	next := s.state
	s.mu.RUnlock()

	changed := fn(&next)
	if s.onMutation != nil {
		s.onMutation(op, changed)
	}
	if !changed {
		return false
	}

	s.mu.Lock()
	s.state = next
	s.version++
	listeners := append([]listenerEntry(nil), s.listeners...)
	s.mu.Unlock()

	for _, l := range listeners {
		l.fn(next.Clone())
	}
	return true
}

func (s *Store) read(fn func(st *State)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(&s.state)
}

// Hydrate replaces the persisted collections, typically once at boot.
// Nothing changes when an action item is inconsistent.
func (s *Store) Hydrate(goals []model.Goal, actions []model.ActionItem, circle, follow []model.Post) error {
	if err := checkActions(actions); err != nil {
		return err
	}
	s.update("hydrate", func(st *State) bool {
		st.Goals = append([]model.Goal{}, goals...)
		st.Actions = append([]model.ActionItem{}, actions...)
		st.CircleFeed = clonePosts(circle)
		st.FollowFeed = clonePosts(follow)
		return true
	})
	return nil
}

func prepend[T any](item T, list []T) []T {
	out := make([]T, 0, len(list)+1)
	out = append(out, item)
	return append(out, list...)
}
