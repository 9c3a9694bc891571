package store

import (
	"github.com/templui/momentum/internal/model"
	"github.com/templui/momentum/internal/wizard"
)

func (s *Store) SetupState() model.SetupState {
	var out model.SetupState
	s.read(func(st *State) { out = st.SetupState.Clone() })
	return out
}

// UpdateSetupState merges a partial wizard state. See wizard.ApplyPatch.
func (s *Store) UpdateSetupState(p wizard.Patch) error {
	return s.transition("update_setup_state", func(cur model.SetupState) (model.SetupState, error) {
		return wizard.ApplyPatch(cur, p)
	})
}

func (s *Store) ResetSetupState() {
	s.update("reset_setup_state", func(st *State) bool {
		st.SetupState = model.NewSetupState()
		return true
	})
}

func (s *Store) SubmitGoal(g model.GoalDraft) error {
	return s.transition("setup_goal", func(cur model.SetupState) (model.SetupState, error) {
		return wizard.SubmitGoal(cur, g)
	})
}

func (s *Store) SubmitHabits(habits []model.PerformanceHabit) error {
	return s.transition("setup_habits", func(cur model.SetupState) (model.SetupState, error) {
		return wizard.SubmitHabits(cur, habits)
	})
}

func (s *Store) SubmitMilestones(milestones []model.Milestone) error {
	return s.transition("setup_milestones", func(cur model.SetupState) (model.SetupState, error) {
		return wizard.SubmitMilestones(cur, milestones)
	})
}

func (s *Store) SubmitAction(a model.PlannedAction) error {
	return s.transition("setup_action", func(cur model.SetupState) (model.SetupState, error) {
		return wizard.SubmitAction(cur, a)
	})
}

func (s *Store) BackSetup() error {
	return s.transition("setup_back", wizard.Back)
}

func (s *Store) transition(op string, fn func(model.SetupState) (model.SetupState, error)) error {
	var err error
	s.update(op, func(st *State) bool {
		var next model.SetupState
		next, err = fn(st.SetupState)
		if err != nil {
			return false
		}
		st.SetupState = next
		return true
	})
	return err
}

// FinishSetup completes the wizard. When the goal step was filled in, the
// synthesised goal is put at the front of the goals, the seed actions replace
// the checklist and a public goal's announcement joins the follow feed. The
// wizard is always reset and the app moves to the main phase.
func (s *Store) FinishSetup(opts wizard.BuildOptions) wizard.Outcome {
	var out wizard.Outcome
	s.update("finish_setup", func(st *State) bool {
		out = wizard.Build(st.SetupState, opts)
		if out.Goal != nil {
			st.Goals = prepend(*out.Goal, st.Goals)
			st.Actions = append([]model.ActionItem{}, out.Actions...)
		}
		if out.Post != nil {
			st.FollowFeed = prepend(out.Post.Clone(), st.FollowFeed)
		}
		st.SetupState = model.NewSetupState()
		st.AppState = model.AppPhaseMain
		return true
	})
	return out
}

// SkipSetup leaves the wizard without creating anything.
func (s *Store) SkipSetup() {
	s.update("skip_setup", func(st *State) bool {
		st.SetupState = model.NewSetupState()
		st.AppState = model.AppPhaseMain
		return true
	})
}
