package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/templui/momentum/internal/model"
)

var (
	ErrSnapshotNotFound = errors.New("no persisted state")
)

const settingAppState = "app_state"

// Snapshot is the durable part of the store: goals, the checklist, both
// feeds and the app phase. Session state is not persisted.
type Snapshot struct {
	Goals      []model.Goal
	Actions    []model.ActionItem
	CircleFeed []model.Post
	FollowFeed []model.Post
	AppState   model.AppPhase
}

type StateRepository interface {
	// Load returns ErrSnapshotNotFound when nothing was ever saved.
	Load(ctx context.Context) (*Snapshot, error)
	// Save replaces the persisted state in a single transaction.
	Save(ctx context.Context, snap Snapshot) error
}

type stateRepository struct {
	db *sqlx.DB
}

func NewStateRepository(db *sqlx.DB) StateRepository {
	return &stateRepository{db: db}
}

const postColumns = `id, user_name, avatar, type, visibility, content, time_label, reactions,
	comments, photo_uri, audio_uri, action_title, goal, streak, goal_color`

func (r *stateRepository) Load(ctx context.Context) (*Snapshot, error) {
	var phase string
	err := r.db.GetContext(ctx, &phase, `SELECT value FROM app_settings WHERE key = $1`, settingAppState)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSnapshotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load app state: %w", err)
	}

	snap := &Snapshot{
		Goals:      []model.Goal{},
		Actions:    []model.ActionItem{},
		CircleFeed: []model.Post{},
		FollowFeed: []model.Post{},
		AppState:   model.AppPhase(phase),
	}

	err = r.db.SelectContext(ctx, &snap.Goals,
		`SELECT id, title, metric, deadline, why, consistency, status FROM goals ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("load goals: %w", err)
	}

	err = r.db.SelectContext(ctx, &snap.Actions,
		`SELECT id, title, goal_title, type, time, streak, done FROM actions ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("load actions: %w", err)
	}

	for _, feed := range []struct {
		visibility model.Visibility
		dest       *[]model.Post
	}{
		{model.VisibilityCircle, &snap.CircleFeed},
		{model.VisibilityFollow, &snap.FollowFeed},
	} {
		err = r.db.SelectContext(ctx, feed.dest,
			`SELECT `+postColumns+` FROM posts WHERE visibility = $1 ORDER BY position`, feed.visibility)
		if err != nil {
			return nil, fmt.Errorf("load %s feed: %w", feed.visibility, err)
		}
	}

	return snap, nil
}

func (r *stateRepository) Save(ctx context.Context, snap Snapshot) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"goals", "actions", "posts", "app_settings"} {
		if _, err := tx.ExecContext(ctx, `DELETE FROM `+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	for i, g := range snap.Goals {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO goals (id, position, title, metric, deadline, why, consistency, status)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			g.ID, i, g.Title, g.Metric, g.Deadline, g.Why, g.Consistency, g.Status)
		if err != nil {
			return fmt.Errorf("insert goal %s: %w", g.ID, err)
		}
	}

	for i, a := range snap.Actions {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO actions (id, position, title, goal_title, type, time, streak, done)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			a.ID, i, a.Title, a.GoalTitle, a.Type, a.Time, a.Streak, a.Done)
		if err != nil {
			return fmt.Errorf("insert action %s: %w", a.ID, err)
		}
	}

	for _, feed := range [][]model.Post{snap.CircleFeed, snap.FollowFeed} {
		for i, p := range feed {
			if err := insertPost(ctx, tx, i, p); err != nil {
				return err
			}
		}
	}

	phase := snap.AppState
	if phase == "" {
		phase = model.AppPhaseSetup
	}
	_, err = tx.ExecContext(ctx, `INSERT INTO app_settings (key, value) VALUES ($1, $2)`, settingAppState, phase)
	if err != nil {
		return fmt.Errorf("save app state: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func insertPost(ctx context.Context, tx *sqlx.Tx, position int, p model.Post) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO posts (position, `+postColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`,
		position, p.ID, p.User, p.Avatar, p.Type, p.Visibility, p.Content, p.Time, p.Reactions,
		p.Comments, p.PhotoURI, p.AudioURI, p.ActionTitle, p.Goal, p.Streak, p.GoalColor)
	if err != nil {
		return fmt.Errorf("insert post %s: %w", p.ID, err)
	}
	return nil
}
