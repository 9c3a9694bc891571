package store

import (
	"fmt"

	"github.com/templui/momentum/internal/model"
)

func (s *Store) Actions() []model.ActionItem {
	var out []model.ActionItem
	s.read(func(st *State) { out = append([]model.ActionItem{}, st.Actions...) })
	return out
}

// ToggleAction flips the done flag of the item with the given id and moves its
// streak with it. It reports false, changing nothing, when no item has that id.
func (s *Store) ToggleAction(id string) (model.ActionItem, bool) {
	var toggled model.ActionItem
	found := s.update("toggle_action", func(st *State) bool {
		for i, a := range st.Actions {
			if a.ID != id {
				continue
			}
			toggled = a.Toggled()
			next := append([]model.ActionItem{}, st.Actions...)
			next[i] = toggled
			st.Actions = next
			return true
		}
		return false
	})
	return toggled, found
}

func (s *Store) AddAction(a model.ActionItem) error {
	if err := checkActions([]model.ActionItem{a}); err != nil {
		return err
	}
	s.update("add_action", func(st *State) bool {
		st.Actions = prepend(a, st.Actions)
		return true
	})
	return nil
}

// SetActions replaces the whole checklist. Nothing changes when any item is
// inconsistent.
func (s *Store) SetActions(actions []model.ActionItem) error {
	if err := checkActions(actions); err != nil {
		return err
	}
	s.update("set_actions", func(st *State) bool {
		st.Actions = append([]model.ActionItem{}, actions...)
		return true
	})
	return nil
}

func checkActions(actions []model.ActionItem) error {
	for _, a := range actions {
		if !a.Consistent() {
			return fmt.Errorf("%w: %q (done=%t, streak=%d)", ErrInconsistentAction, a.ID, a.Done, a.Streak)
		}
	}
	return nil
}

// Progress summarises today's checklist.
type Progress struct {
	Completed int `json:"completed"`
	Total     int `json:"total"`
	// Rate is the completed share as a whole percentage, 0 for an empty list.
	Rate int `json:"rate"`
}

func (s *Store) Progress() Progress {
	var p Progress
	s.read(func(st *State) {
		p.Total = len(st.Actions)
		for _, a := range st.Actions {
			if a.Done {
				p.Completed++
			}
		}
	})
	if p.Total > 0 {
		// half rounds up
		p.Rate = (p.Completed*200 + p.Total) / (p.Total * 2)
	}
	return p
}
