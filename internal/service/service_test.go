package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/templui/momentum/internal/model"
	"github.com/templui/momentum/internal/store"
)

func newStore() *store.Store {
	return store.New(store.Demo(), store.Options{})
}

func TestGoalServiceCreate(t *testing.T) {
	st := newStore()
	svc := NewGoalService(st)

	goal, err := svc.Create(model.Goal{Title: "Run a marathon", Metric: "42km", Deadline: "2026-10-01"})
	require.NoError(t, err)

	assert.NotEmpty(t, goal.ID)
	assert.Equal(t, model.GoalStatusOnTrack, goal.Status)
	assert.Equal(t, []model.Goal{goal}, svc.Goals())
}

func TestGoalServiceRejectsInvalid(t *testing.T) {
	svc := NewGoalService(newStore())

	_, err := svc.Create(model.Goal{Title: "x", Metric: "y", Deadline: "z", Status: "Fine"})
	assert.ErrorIs(t, err, ErrInvalidGoal)
	_, err = svc.Create(model.Goal{Title: "x", Deadline: "z"})
	assert.ErrorIs(t, err, ErrInvalidGoal)
	assert.Empty(t, svc.Goals())
}

func TestActionServiceToggle(t *testing.T) {
	svc := NewActionService(newStore())

	item, err := svc.Toggle("1")
	require.NoError(t, err)
	assert.True(t, item.Done)
	assert.Equal(t, 8, item.Streak)

	_, err = svc.Toggle("missing")
	assert.ErrorIs(t, err, ErrActionNotFound)
}

func TestActionServiceReplaceIsAllOrNothing(t *testing.T) {
	svc := NewActionService(newStore())
	before := svc.Actions()

	_, err := svc.Replace([]model.ActionItem{
		{Title: "Read", Type: model.ActionTypePerformance},
		{Title: "Bad", Type: "someday"},
	})
	assert.ErrorIs(t, err, ErrInvalidAction)
	assert.Equal(t, before, svc.Actions())

	out, err := svc.Replace([]model.ActionItem{{Title: "Read", Type: model.ActionTypePerformance}})
	require.NoError(t, err)
	assert.Len(t, svc.Actions(), 1)
	assert.NotEmpty(t, out[0].ID)
}

func TestActionServiceRejectsDoneWithoutStreak(t *testing.T) {
	svc := NewActionService(newStore())
	before := svc.Actions()

	_, err := svc.Create(model.ActionItem{Title: "Read", Type: model.ActionTypePerformance, Done: true})
	assert.ErrorIs(t, err, ErrInvalidAction)
	_, err = svc.Replace([]model.ActionItem{{Title: "Read", Type: model.ActionTypePerformance, Done: true}})
	assert.ErrorIs(t, err, ErrInvalidAction)
	assert.Equal(t, before, svc.Actions())

	created, err := svc.Create(model.ActionItem{Title: "Read", Type: model.ActionTypePerformance, Done: true, Streak: 1})
	require.NoError(t, err)
	_, err = svc.Toggle(created.ID)
	require.NoError(t, err)
	again, err := svc.Toggle(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, again)
}

func TestActionServiceProgress(t *testing.T) {
	svc := NewActionService(store.New(store.Initial(), store.Options{}))
	assert.Equal(t, store.Progress{}, svc.Progress())

	svc = NewActionService(newStore())
	_, err := svc.Toggle("1")
	require.NoError(t, err)
	assert.Equal(t, store.Progress{Completed: 1, Total: 2, Rate: 50}, svc.Progress())
}

func TestFeedServiceCreateDefaults(t *testing.T) {
	st := newStore()
	svc := NewFeedService(st, "You")

	post, err := svc.Create(model.Post{Type: model.PostTypeStatus, Visibility: model.VisibilityFollow, Content: "Day one"})
	require.NoError(t, err)

	assert.Equal(t, "You", post.User)
	assert.Equal(t, defaultAvatar, post.Avatar)
	assert.Equal(t, timeNow, post.Time)
	assert.NotNil(t, post.Reactions)
	assert.Equal(t, post.ID, st.FollowFeed()[0].ID)
}

func TestFeedServiceCreateRejectsInvalid(t *testing.T) {
	svc := NewFeedService(newStore(), "You")

	_, err := svc.Create(model.Post{Type: model.PostTypeStatus, Visibility: model.VisibilityCircle})
	assert.ErrorIs(t, err, ErrInvalidPost)
	_, err = svc.Create(model.Post{Type: model.PostTypeStatus, Visibility: "public", Content: "hi"})
	assert.ErrorIs(t, err, store.ErrUnknownVisibility)
}

func TestFeedServiceReact(t *testing.T) {
	svc := NewFeedService(newStore(), "You")

	post, err := svc.React(model.VisibilityCircle, "p1", "🔥")
	require.NoError(t, err)
	assert.Equal(t, 5, post.Reactions["🔥"])

	_, err = svc.React(model.VisibilityFollow, "p1", "🔥")
	assert.ErrorIs(t, err, ErrPostNotFound)
	_, err = svc.React(model.VisibilityCircle, "p1", " ")
	assert.ErrorIs(t, err, ErrInvalidPost)
}

func TestSetupServiceFinish(t *testing.T) {
	st := store.New(store.Initial(), store.Options{})
	svc := NewSetupService(st, "Sam")

	_, err := svc.SubmitGoal(model.GoalDraft{Title: "Ship", Metric: "v1", Deadline: "2026-06-01", Privacy: model.PrivacyPublic})
	require.NoError(t, err)
	_, err = svc.SubmitHabits([]model.PerformanceHabit{{ID: "4", Name: "Reading"}})
	require.NoError(t, err)

	out := svc.Finish()

	require.NotNil(t, out.Goal)
	require.NotNil(t, out.Post)
	assert.Equal(t, "Sam", out.Post.User)
	assert.Equal(t, model.AppPhaseMain, st.AppState())
	assert.Equal(t, model.NewSetupState(), svc.State())
}

func TestSessionService(t *testing.T) {
	st := newStore()
	svc := NewSessionService(st)

	require.NoError(t, svc.SetFeedView(model.VisibilityFollow))
	svc.SetDailyReview(true)
	assert.ErrorIs(t, svc.SetAppState("done"), store.ErrUnknownPhase)

	state := svc.State()
	assert.Equal(t, model.VisibilityFollow, state.FeedView)
	assert.True(t, state.IsDailyReviewOpen)
}
