package wizard

import (
	"github.com/google/uuid"
	"github.com/templui/momentum/internal/model"
)

const (
	defaultActionTime = "All day"
	habitGoalTitle    = "Core Potential"
	DefaultUser       = "You"
)

// Outcome is what a completed wizard contributes to the store.
// Goal is nil when the goal step was never filled in.
type Outcome struct {
	Goal    *model.Goal        `json:"goal,omitempty"`
	Actions []model.ActionItem `json:"actions"`
	Post    *model.Post        `json:"post,omitempty"`
}

type BuildOptions struct {
	// NewID generates entity ids. Defaults to uuid.NewString.
	NewID func() string
	// User authors the announcement post of a public goal.
	User string
}

// Build synthesises a goal, seed actions and, for public goals, an announcement
// post from the accumulated wizard data.
func Build(st model.SetupState, opts BuildOptions) Outcome {
	if opts.NewID == nil {
		opts.NewID = uuid.NewString
	}
	if opts.User == "" {
		opts.User = DefaultUser
	}

	if ValidateGoal(st.GoalData) != nil {
		return Outcome{Actions: []model.ActionItem{}}
	}

	gd := st.GoalData
	goal := &model.Goal{
		ID:          opts.NewID(),
		Title:       gd.Title,
		Metric:      gd.Metric,
		Deadline:    gd.Deadline,
		Why:         gd.Why,
		Consistency: 0,
		Status:      model.GoalStatusOnTrack,
	}

	actions := make([]model.ActionItem, 0, len(st.Actions)+len(st.PerformanceHabits))
	for _, a := range st.Actions {
		// one-time actions are scheduled, they do not belong on the daily list
		if a.Type != model.ActionTypeCommitment {
			continue
		}
		actions = append(actions, model.ActionItem{
			ID:        "action-" + opts.NewID(),
			Title:     a.Name,
			GoalTitle: gd.Title,
			Type:      model.ActionTypeCommitment,
			Time:      defaultActionTime,
		})
	}
	for _, h := range st.PerformanceHabits {
		t := h.Time
		if t == "" {
			t = defaultActionTime
		}
		actions = append(actions, model.ActionItem{
			ID:        "habit-" + h.ID,
			Title:     h.Name,
			GoalTitle: habitGoalTitle,
			Type:      model.ActionTypePerformance,
			Time:      t,
		})
	}

	out := Outcome{Goal: goal, Actions: actions}
	if gd.Privacy == model.PrivacyPublic {
		out.Post = &model.Post{
			ID:         "post-goal-" + opts.NewID(),
			User:       opts.User,
			Type:       model.PostTypeGoal,
			Visibility: model.VisibilityFollow,
			Content:    gd.Title,
			Goal:       gd.Title,
			Time:       "now",
			Reactions:  model.Reactions{},
		}
	}
	return out
}
