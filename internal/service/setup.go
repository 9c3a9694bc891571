package service

import (
	"log/slog"

	"github.com/templui/momentum/internal/model"
	"github.com/templui/momentum/internal/store"
	"github.com/templui/momentum/internal/wizard"
)

type SetupService struct {
	store *store.Store
	user  string
}

func NewSetupService(st *store.Store, user string) *SetupService {
	return &SetupService{store: st, user: user}
}

func (s *SetupService) State() model.SetupState {
	return s.store.SetupState()
}

func (s *SetupService) Patch(p wizard.Patch) (model.SetupState, error) {
	if err := s.store.UpdateSetupState(p); err != nil {
		return model.SetupState{}, err
	}
	return s.store.SetupState(), nil
}

func (s *SetupService) Reset() model.SetupState {
	s.store.ResetSetupState()
	return s.store.SetupState()
}

func (s *SetupService) SubmitGoal(g model.GoalDraft) (model.SetupState, error) {
	return s.after(s.store.SubmitGoal(g))
}

func (s *SetupService) SubmitHabits(habits []model.PerformanceHabit) (model.SetupState, error) {
	return s.after(s.store.SubmitHabits(habits))
}

func (s *SetupService) SubmitMilestones(milestones []model.Milestone) (model.SetupState, error) {
	return s.after(s.store.SubmitMilestones(milestones))
}

func (s *SetupService) SubmitAction(a model.PlannedAction) (model.SetupState, error) {
	return s.after(s.store.SubmitAction(a))
}

func (s *SetupService) Back() (model.SetupState, error) {
	return s.after(s.store.BackSetup())
}

func (s *SetupService) after(err error) (model.SetupState, error) {
	if err != nil {
		return model.SetupState{}, err
	}
	st := s.store.SetupState()
	slog.Debug("setup advanced", "step", wizard.Current(st).String())
	return st, nil
}

// Finish completes the wizard and moves the app to the main phase.
func (s *SetupService) Finish() wizard.Outcome {
	out := s.store.FinishSetup(wizard.BuildOptions{User: s.user})
	if out.Goal != nil {
		slog.Info("setup finished", "goal_id", out.Goal.ID, "seed_actions", len(out.Actions), "announced", out.Post != nil)
	} else {
		slog.Info("setup finished without a goal")
	}
	return out
}

func (s *SetupService) Skip() {
	s.store.SkipSetup()
	slog.Info("setup skipped")
}
