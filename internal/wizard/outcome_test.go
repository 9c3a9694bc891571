package wizard

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/templui/momentum/internal/model"
)

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return strconv.Itoa(n)
	}
}

func TestBuildPrivateGoal(t *testing.T) {
	st := walkToSummary(t)
	st.Actions = append(st.Actions, model.PlannedAction{Type: model.ActionTypeOneTime, Name: "Buy domain", Date: "2026-01-01"})

	out := Build(st, BuildOptions{NewID: sequentialIDs()})

	require.NotNil(t, out.Goal)
	assert.Equal(t, model.Goal{
		ID:       "1",
		Title:    "Launch side project",
		Metric:   "First paying user",
		Deadline: "2026-12-31",
		Why:      "Freedom",
		Status:   model.GoalStatusOnTrack,
	}, *out.Goal)

	assert.Equal(t, []model.ActionItem{
		{ID: "action-2", Title: "Ship daily", GoalTitle: "Launch side project", Type: model.ActionTypeCommitment, Time: "All day"},
		{ID: "habit-4", Title: "Reading", GoalTitle: "Core Potential", Type: model.ActionTypePerformance, Time: "All day"},
		{ID: "habit-6", Title: "Deep Work Block", GoalTitle: "Core Potential", Type: model.ActionTypePerformance, Time: "9:00"},
	}, out.Actions)
	assert.Nil(t, out.Post)
}

func TestBuildPublicGoalAnnounces(t *testing.T) {
	st := walkToSummary(t)
	st.GoalData.Privacy = model.PrivacyPublic

	out := Build(st, BuildOptions{NewID: sequentialIDs()})

	require.NotNil(t, out.Post)
	assert.Equal(t, "post-goal-3", out.Post.ID)
	assert.Equal(t, DefaultUser, out.Post.User)
	assert.Equal(t, model.VisibilityFollow, out.Post.Visibility)
	assert.Equal(t, model.PostTypeGoal, out.Post.Type)
	assert.Equal(t, "Launch side project", out.Post.Content)
	assert.NotNil(t, out.Post.Reactions)
}

func TestBuildWithoutGoal(t *testing.T) {
	out := Build(model.NewSetupState(), BuildOptions{})

	assert.Nil(t, out.Goal)
	assert.Nil(t, out.Post)
	assert.Empty(t, out.Actions)
}
