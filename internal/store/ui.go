package store

import (
	"fmt"

	"github.com/templui/momentum/internal/model"
)

func (s *Store) FeedView() model.Visibility {
	var v model.Visibility
	s.read(func(st *State) { v = st.FeedView })
	return v
}

func (s *Store) SetFeedView(v model.Visibility) error {
	if !v.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownVisibility, v)
	}
	s.update("set_feed_view", func(st *State) bool {
		if st.FeedView == v {
			return false
		}
		st.FeedView = v
		return true
	})
	return nil
}

func (s *Store) IsDailyReviewOpen() bool {
	var open bool
	s.read(func(st *State) { open = st.IsDailyReviewOpen })
	return open
}

func (s *Store) OpenDailyReview()  { s.setDailyReview("open_daily_review", true) }
func (s *Store) CloseDailyReview() { s.setDailyReview("close_daily_review", false) }

func (s *Store) setDailyReview(op string, open bool) {
	s.update(op, func(st *State) bool {
		if st.IsDailyReviewOpen == open {
			return false
		}
		st.IsDailyReviewOpen = open
		return true
	})
}

func (s *Store) ShareOpen() bool {
	var open bool
	s.read(func(st *State) { open = st.ShareOpen })
	return open
}

// ShareDraft returns a copy of the composer's draft, or nil when closed.
func (s *Store) ShareDraft() *model.ShareDraft {
	var d *model.ShareDraft
	s.read(func(st *State) { d = st.ShareDraft.Clone() })
	return d
}

// ShareOccupied reports whether the composer currently holds a draft.
func (s *Store) ShareOccupied() bool {
	var occupied bool
	s.read(func(st *State) { occupied = st.ShareOpen && st.ShareDraft != nil })
	return occupied
}

// OpenShare opens the composer with draft, replacing any draft already there.
// The replaced draft is returned so the caller can tell data was discarded.
func (s *Store) OpenShare(draft model.ShareDraft) (previous *model.ShareDraft) {
	s.update("open_share", func(st *State) bool {
		previous = st.ShareDraft.Clone()
		st.ShareOpen = true
		st.ShareDraft = draft.Clone()
		return true
	})
	return previous
}

// TryOpenShare opens the composer only if it does not already hold a draft.
func (s *Store) TryOpenShare(draft model.ShareDraft) error {
	var err error
	s.update("try_open_share", func(st *State) bool {
		if st.ShareOpen && st.ShareDraft != nil {
			err = ErrShareDraftOccupied
			return false
		}
		st.ShareOpen = true
		st.ShareDraft = draft.Clone()
		return true
	})
	return err
}

// EditShare applies fn to the open draft and returns the result.
func (s *Store) EditShare(fn func(d *model.ShareDraft)) (model.ShareDraft, error) {
	var (
		edited model.ShareDraft
		err    error
	)
	s.update("edit_share", func(st *State) bool {
		if !st.ShareOpen || st.ShareDraft == nil {
			err = ErrNoShareDraft
			return false
		}
		d := st.ShareDraft.Clone()
		fn(d)
		st.ShareDraft = d
		edited = *d.Clone()
		return true
	})
	return edited, err
}

// CloseShare closes the composer and returns the draft it held, if any.
func (s *Store) CloseShare() *model.ShareDraft {
	var cleared *model.ShareDraft
	s.update("close_share", func(st *State) bool {
		if !st.ShareOpen && st.ShareDraft == nil {
			return false
		}
		cleared = st.ShareDraft.Clone()
		st.ShareOpen = false
		st.ShareDraft = nil
		return true
	})
	return cleared
}

func (s *Store) AppState() model.AppPhase {
	var p model.AppPhase
	s.read(func(st *State) { p = st.AppState })
	return p
}

func (s *Store) SetAppState(p model.AppPhase) error {
	if !p.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownPhase, p)
	}
	s.update("set_app_state", func(st *State) bool {
		if st.AppState == p {
			return false
		}
		st.AppState = p
		return true
	})
	return nil
}
