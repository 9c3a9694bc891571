package handler

import (
	"net/http"

	"github.com/templui/momentum/internal/model"
	"github.com/templui/momentum/internal/service"
)

type ActionHandler struct {
	actionService *service.ActionService
}

func NewActionHandler(actionService *service.ActionService) *ActionHandler {
	return &ActionHandler{
		actionService: actionService,
	}
}

func (h *ActionHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.actionService.Actions())
}

// Progress reports how much of today's checklist is done.
func (h *ActionHandler) Progress(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.actionService.Progress())
}

func (h *ActionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var item model.ActionItem
	if err := decodeJSON(w, r, &item); err != nil {
		writeError(w, r, err)
		return
	}

	created, err := h.actionService.Create(item)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

func (h *ActionHandler) Replace(w http.ResponseWriter, r *http.Request) {
	var items []model.ActionItem
	if err := decodeJSON(w, r, &items); err != nil {
		writeError(w, r, err)
		return
	}

	replaced, err := h.actionService.Replace(items)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, replaced)
}

func (h *ActionHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	item, err := h.actionService.Toggle(r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, item)
}
