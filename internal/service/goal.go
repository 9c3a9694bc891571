package service

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/templui/momentum/internal/model"
	"github.com/templui/momentum/internal/store"
	"github.com/templui/momentum/internal/validation"
)

var (
	ErrInvalidGoal = errors.New("invalid goal")
)

type GoalService struct {
	store *store.Store
}

func NewGoalService(st *store.Store) *GoalService {
	return &GoalService{store: st}
}

func (s *GoalService) Goals() []model.Goal {
	return s.store.Goals()
}

// Create adds a goal at the front of the list. The id is generated when empty
// and a missing status defaults to On Track.
func (s *GoalService) Create(goal model.Goal) (model.Goal, error) {
	for _, f := range []struct{ name, value string }{
		{"title", goal.Title},
		{"metric", goal.Metric},
		{"deadline", goal.Deadline},
	} {
		if err := validation.Required(f.name, f.value); err != nil {
			return model.Goal{}, fmt.Errorf("%w: %v", ErrInvalidGoal, err)
		}
	}
	if goal.Status == "" {
		goal.Status = model.GoalStatusOnTrack
	}
	if !goal.Status.Valid() {
		return model.Goal{}, fmt.Errorf("%w: unknown status %q", ErrInvalidGoal, goal.Status)
	}
	if goal.Consistency < 0 || goal.Consistency > 100 {
		return model.Goal{}, fmt.Errorf("%w: consistency must be between 0 and 100", ErrInvalidGoal)
	}
	if goal.ID == "" {
		goal.ID = uuid.NewString()
	}

	s.store.AddGoal(goal)
	slog.Info("goal added", "goal_id", goal.ID)
	return goal, nil
}
