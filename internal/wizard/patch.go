package wizard

import (
	"fmt"

	"github.com/templui/momentum/internal/model"
)

// Patch is a partial SetupState. Nil fields are left as they are.
type Patch struct {
	CurrentStep       *int                      `json:"currentStep,omitempty"`
	GoalData          *model.GoalDraft          `json:"goalData,omitempty"`
	PerformanceHabits *[]model.PerformanceHabit `json:"performanceHabits,omitempty"`
	Milestones        *[]model.Milestone        `json:"milestones,omitempty"`
	Actions           *[]model.PlannedAction    `json:"actions,omitempty"`
}

// ApplyPatch merges p into st. Step data is taken as given; the only check is
// that the step pointer stays in range and moves by at most one.
func ApplyPatch(st model.SetupState, p Patch) (model.SetupState, error) {
	next := st.Clone()

	if p.CurrentStep != nil {
		to := Step(*p.CurrentStep)
		if !to.Valid() {
			return st, fmt.Errorf("%w: %s out of range", ErrInvalidTransition, to)
		}
		if d := int(to) - st.CurrentStep; d < -1 || d > 1 {
			return st, fmt.Errorf("%w: %s to %s", ErrInvalidTransition, Current(st), to)
		}
		next.CurrentStep = int(to)
	}
	if p.GoalData != nil {
		next.GoalData = *p.GoalData
	}
	if p.PerformanceHabits != nil {
		next.PerformanceHabits = append([]model.PerformanceHabit{}, (*p.PerformanceHabits)...)
	}
	if p.Milestones != nil {
		next.Milestones = append([]model.Milestone{}, (*p.Milestones)...)
	}
	if p.Actions != nil {
		next.Actions = append([]model.PlannedAction{}, (*p.Actions)...)
	}

	return next, nil
}
