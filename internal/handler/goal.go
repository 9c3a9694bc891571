package handler

import (
	"net/http"

	"github.com/templui/momentum/internal/model"
	"github.com/templui/momentum/internal/service"
)

type GoalHandler struct {
	goalService *service.GoalService
}

func NewGoalHandler(goalService *service.GoalService) *GoalHandler {
	return &GoalHandler{
		goalService: goalService,
	}
}

func (h *GoalHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.goalService.Goals())
}

func (h *GoalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var goal model.Goal
	if err := decodeJSON(w, r, &goal); err != nil {
		writeError(w, r, err)
		return
	}

	created, err := h.goalService.Create(goal)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}
