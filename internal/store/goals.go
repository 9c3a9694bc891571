package store

import "github.com/templui/momentum/internal/model"

func (s *Store) Goals() []model.Goal {
	var out []model.Goal
	s.read(func(st *State) { out = append([]model.Goal{}, st.Goals...) })
	return out
}

// AddGoal puts g at the front of the goal list. Ids are not checked for duplicates.
func (s *Store) AddGoal(g model.Goal) {
	s.update("add_goal", func(st *State) bool {
		st.Goals = prepend(g, st.Goals)
		return true
	})
}
