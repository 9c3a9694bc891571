package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/templui/momentum/internal/model"
	"github.com/templui/momentum/internal/service"
)

type ShareHandler struct {
	shareService *service.ShareService
	maxBytes     int64
}

func NewShareHandler(shareService *service.ShareService, maxBytes int64) *ShareHandler {
	return &ShareHandler{
		shareService: shareService,
		maxBytes:     maxBytes,
	}
}

type shareResponse struct {
	Open  bool              `json:"open"`
	Draft *model.ShareDraft `json:"draft"`
	// Replaced is the draft discarded by a forced open.
	Replaced *model.ShareDraft `json:"replaced,omitempty"`
}

func (h *ShareHandler) Get(w http.ResponseWriter, r *http.Request) {
	draft := h.shareService.Draft()
	writeJSON(w, http.StatusOK, shareResponse{Open: draft != nil, Draft: draft})
}

// Open starts a draft. The composer holds one draft at a time: a second open
// is refused with 409 unless ?force=true is given.
func (h *ShareHandler) Open(w http.ResponseWriter, r *http.Request) {
	var draft model.ShareDraft
	if err := decodeJSON(w, r, &draft); err != nil {
		writeError(w, r, err)
		return
	}

	force := false
	if v := r.URL.Query().Get("force"); v != "" {
		var err error
		if force, err = strconv.ParseBool(v); err != nil {
			writeError(w, r, fmt.Errorf("%w: force must be a boolean", errBadRequest))
			return
		}
	}

	replaced, err := h.shareService.Open(draft, force)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, shareResponse{Open: true, Draft: h.shareService.Draft(), Replaced: replaced})
}

func (h *ShareHandler) Close(w http.ResponseWriter, r *http.Request) {
	cleared := h.shareService.Close()
	writeJSON(w, http.StatusOK, shareResponse{Open: false, Replaced: cleared})
}

func (h *ShareHandler) Publish(w http.ResponseWriter, r *http.Request) {
	var in service.PublishInput
	if r.ContentLength != 0 {
		if err := decodeJSON(w, r, &in); err != nil {
			writeError(w, r, err)
			return
		}
	}

	post, err := h.shareService.Publish(in)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, post)
}

func (h *ShareHandler) UploadMedia(w http.ResponseWriter, r *http.Request) {
	// leave room for the multipart envelope
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes+(1<<20))

	err := r.ParseMultipartForm(h.maxBytes)
	if err != nil {
		writeError(w, r, fmt.Errorf("%w: %v", errBadRequest, err))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, r, fmt.Errorf("%w: file field is required", errBadRequest))
		return
	}
	defer file.Close()

	draft, err := h.shareService.AttachMedia(r.Context(), file, header)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, shareResponse{Open: true, Draft: &draft})
}
