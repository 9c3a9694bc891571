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
	ErrActionNotFound = errors.New("action not found")
	ErrInvalidAction  = errors.New("invalid action")
)

type ActionService struct {
	store *store.Store
}

func NewActionService(st *store.Store) *ActionService {
	return &ActionService{store: st}
}

func (s *ActionService) Actions() []model.ActionItem {
	return s.store.Actions()
}

func (s *ActionService) Progress() store.Progress {
	return s.store.Progress()
}

func (s *ActionService) Toggle(id string) (model.ActionItem, error) {
	item, ok := s.store.ToggleAction(id)
	if !ok {
		return model.ActionItem{}, ErrActionNotFound
	}
	slog.Debug("action toggled", "action_id", id, "done", item.Done, "streak", item.Streak)
	return item, nil
}

func (s *ActionService) Create(item model.ActionItem) (model.ActionItem, error) {
	item, err := prepareAction(item)
	if err != nil {
		return model.ActionItem{}, err
	}
	if err := s.store.AddAction(item); err != nil {
		return model.ActionItem{}, fmt.Errorf("%w: %v", ErrInvalidAction, err)
	}
	return item, nil
}

// Replace swaps the whole checklist. Every item is validated before anything changes.
func (s *ActionService) Replace(items []model.ActionItem) ([]model.ActionItem, error) {
	out := make([]model.ActionItem, 0, len(items))
	for i, item := range items {
		item, err := prepareAction(item)
		if err != nil {
			return nil, fmt.Errorf("actions[%d]: %w", i, err)
		}
		out = append(out, item)
	}
	if err := s.store.SetActions(out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAction, err)
	}
	slog.Info("checklist replaced", "count", len(out))
	return out, nil
}

func prepareAction(item model.ActionItem) (model.ActionItem, error) {
	if err := validation.Required("title", item.Title); err != nil {
		return item, fmt.Errorf("%w: %v", ErrInvalidAction, err)
	}
	if !item.Type.Valid() {
		return item, fmt.Errorf("%w: unknown type %q", ErrInvalidAction, item.Type)
	}
	if item.Streak < 0 {
		return item, fmt.Errorf("%w: streak cannot be negative", ErrInvalidAction)
	}
	if !item.Consistent() {
		return item, fmt.Errorf("%w: a completed action needs a streak of at least 1", ErrInvalidAction)
	}
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	return item, nil
}
