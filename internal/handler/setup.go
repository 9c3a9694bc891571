package handler

import (
	"net/http"

	"github.com/templui/momentum/internal/model"
	"github.com/templui/momentum/internal/service"
	"github.com/templui/momentum/internal/wizard"
)

type SetupHandler struct {
	setupService *service.SetupService
}

func NewSetupHandler(setupService *service.SetupService) *SetupHandler {
	return &SetupHandler{
		setupService: setupService,
	}
}

func (h *SetupHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.setupService.State())
}

func (h *SetupHandler) Patch(w http.ResponseWriter, r *http.Request) {
	var p wizard.Patch
	if err := decodeJSON(w, r, &p); err != nil {
		writeError(w, r, err)
		return
	}
	respondSetup(w, r)(h.setupService.Patch(p))
}

func (h *SetupHandler) Reset(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.setupService.Reset())
}

func (h *SetupHandler) SubmitGoal(w http.ResponseWriter, r *http.Request) {
	var goal model.GoalDraft
	if err := decodeJSON(w, r, &goal); err != nil {
		writeError(w, r, err)
		return
	}
	respondSetup(w, r)(h.setupService.SubmitGoal(goal))
}

func (h *SetupHandler) SubmitHabits(w http.ResponseWriter, r *http.Request) {
	var habits []model.PerformanceHabit
	if err := decodeJSON(w, r, &habits); err != nil {
		writeError(w, r, err)
		return
	}
	respondSetup(w, r)(h.setupService.SubmitHabits(habits))
}

func (h *SetupHandler) SubmitMilestones(w http.ResponseWriter, r *http.Request) {
	var milestones []model.Milestone
	if err := decodeJSON(w, r, &milestones); err != nil {
		writeError(w, r, err)
		return
	}
	respondSetup(w, r)(h.setupService.SubmitMilestones(milestones))
}

func (h *SetupHandler) SubmitAction(w http.ResponseWriter, r *http.Request) {
	var action model.PlannedAction
	if err := decodeJSON(w, r, &action); err != nil {
		writeError(w, r, err)
		return
	}
	respondSetup(w, r)(h.setupService.SubmitAction(action))
}

func (h *SetupHandler) Back(w http.ResponseWriter, r *http.Request) {
	respondSetup(w, r)(h.setupService.Back())
}

func (h *SetupHandler) Finish(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.setupService.Finish())
}

func (h *SetupHandler) Skip(w http.ResponseWriter, r *http.Request) {
	h.setupService.Skip()
	w.WriteHeader(http.StatusNoContent)
}

func respondSetup(w http.ResponseWriter, r *http.Request) func(model.SetupState, error) {
	return func(st model.SetupState, err error) {
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, st)
	}
}
