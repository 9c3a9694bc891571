// Package wizard implements the goal-setup flow as a finite-state machine.
//
// The flow is linear: Goal, Habits, Milestones, Actions, Summary. Every
// transition is a function from one SetupState to the next that either
// returns the advanced state or an error, leaving the input untouched.
package wizard

import (
	"errors"
	"fmt"

	"github.com/templui/momentum/internal/model"
	"github.com/templui/momentum/internal/validation"
)

type Step int

const (
	StepGoal Step = iota
	StepHabits
	StepMilestones
	StepActions
	StepSummary
)

// StepCount is the number of wizard screens.
const StepCount = 5

var stepNames = [StepCount]string{"goal", "habits", "milestones", "actions", "summary"}

func (s Step) String() string {
	if !s.Valid() {
		return fmt.Sprintf("step(%d)", int(s))
	}
	return stepNames[s]
}

func (s Step) Valid() bool {
	return s >= StepGoal && s <= StepSummary
}

var (
	ErrWrongStep         = errors.New("submission does not match the current step")
	ErrValidation        = errors.New("invalid wizard input")
	ErrAtFirstStep       = errors.New("already at the first step")
	ErrInvalidTransition = errors.New("step may only move forward or back by one")
)

func Current(st model.SetupState) Step {
	return Step(st.CurrentStep)
}

func expect(st model.SetupState, want Step) error {
	if got := Current(st); got != want {
		return fmt.Errorf("%w: at %s, expected %s", ErrWrongStep, got, want)
	}
	return nil
}

func invalid(err error) error {
	return fmt.Errorf("%w: %v", ErrValidation, err)
}

// SubmitGoal stores the goal definition and moves to the habits step.
func SubmitGoal(st model.SetupState, g model.GoalDraft) (model.SetupState, error) {
	if err := expect(st, StepGoal); err != nil {
		return st, err
	}
	if err := ValidateGoal(g); err != nil {
		return st, err
	}
	if g.Privacy == "" {
		g.Privacy = model.PrivacyPrivate
	}

	next := st.Clone()
	next.GoalData = g
	next.CurrentStep = int(StepHabits)
	return next, nil
}

func ValidateGoal(g model.GoalDraft) error {
	for _, f := range []struct{ name, value string }{
		{"title", g.Title},
		{"metric", g.Metric},
		{"deadline", g.Deadline},
	} {
		if err := validation.Required(f.name, f.value); err != nil {
			return invalid(err)
		}
	}
	switch g.Privacy {
	case "", model.PrivacyPrivate, model.PrivacyPublic:
	default:
		return invalid(fmt.Errorf("unknown privacy %q", g.Privacy))
	}
	return nil
}

// SubmitHabits replaces the selected performance habits. An empty selection is allowed.
func SubmitHabits(st model.SetupState, habits []model.PerformanceHabit) (model.SetupState, error) {
	if err := expect(st, StepHabits); err != nil {
		return st, err
	}

	seen := make(map[string]struct{}, len(habits))
	for i, h := range habits {
		if err := validation.Required(fmt.Sprintf("habits[%d].id", i), h.ID); err != nil {
			return st, invalid(err)
		}
		if err := validation.Required(fmt.Sprintf("habits[%d].name", i), h.Name); err != nil {
			return st, invalid(err)
		}
		if _, dup := seen[h.ID]; dup {
			return st, invalid(fmt.Errorf("habit %q selected twice", h.ID))
		}
		seen[h.ID] = struct{}{}
	}

	next := st.Clone()
	next.PerformanceHabits = append([]model.PerformanceHabit{}, habits...)
	next.CurrentStep = int(StepMilestones)
	return next, nil
}

// SubmitMilestones replaces the milestone list. Each milestone needs all three fields.
func SubmitMilestones(st model.SetupState, milestones []model.Milestone) (model.SetupState, error) {
	if err := expect(st, StepMilestones); err != nil {
		return st, err
	}

	for i, m := range milestones {
		for _, f := range []struct{ name, value string }{
			{"name", m.Name},
			{"outcome", m.Outcome},
			{"date", m.Date},
		} {
			if err := validation.Required(fmt.Sprintf("milestones[%d].%s", i, f.name), f.value); err != nil {
				return st, invalid(err)
			}
		}
	}

	next := st.Clone()
	next.Milestones = append([]model.Milestone{}, milestones...)
	next.CurrentStep = int(StepActions)
	return next, nil
}

// SubmitAction appends one planned action and moves to the summary.
func SubmitAction(st model.SetupState, a model.PlannedAction) (model.SetupState, error) {
	if err := expect(st, StepActions); err != nil {
		return st, err
	}
	if err := ValidateAction(a); err != nil {
		return st, err
	}
	if a.Type == model.ActionTypeOneTime {
		a.Frequency = ""
	} else {
		a.Date = ""
	}

	next := st.Clone()
	next.Actions = append(next.Actions, a)
	next.CurrentStep = int(StepSummary)
	return next, nil
}

func ValidateAction(a model.PlannedAction) error {
	if err := validation.Required("name", a.Name); err != nil {
		return invalid(err)
	}
	switch a.Type {
	case model.ActionTypeOneTime:
		if err := validation.Required("date", a.Date); err != nil {
			return invalid(err)
		}
	case model.ActionTypeCommitment:
		if !a.Frequency.Valid() {
			return invalid(fmt.Errorf("frequency is required"))
		}
	default:
		return invalid(fmt.Errorf("unknown action type %q", a.Type))
	}
	return nil
}

// Back returns to the previous step without discarding entered data.
func Back(st model.SetupState) (model.SetupState, error) {
	if Current(st) <= StepGoal {
		return st, ErrAtFirstStep
	}
	next := st.Clone()
	next.CurrentStep--
	return next, nil
}
