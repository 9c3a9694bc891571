package service

import (
	"fmt"

	"github.com/templui/momentum/internal/model"
	"github.com/templui/momentum/internal/store"
)

// SessionService covers the transient UI state: active feed tab, the daily
// review sheet and the app phase.
type SessionService struct {
	store *store.Store
}

func NewSessionService(st *store.Store) *SessionService {
	return &SessionService{store: st}
}

func (s *SessionService) State() store.State {
	return s.store.Snapshot()
}

func (s *SessionService) FeedView() model.Visibility {
	return s.store.FeedView()
}

func (s *SessionService) SetFeedView(v model.Visibility) error {
	return s.store.SetFeedView(v)
}

func (s *SessionService) SetDailyReview(open bool) {
	if open {
		s.store.OpenDailyReview()
		return
	}
	s.store.CloseDailyReview()
}

// SetAppState switches phase. Entering main directly leaves the wizard data
// in place; use SetupService.Skip or Finish to also reset it.
func (s *SessionService) SetAppState(p model.AppPhase) error {
	if err := s.store.SetAppState(p); err != nil {
		return fmt.Errorf("set app state: %w", err)
	}
	return nil
}
