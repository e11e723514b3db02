package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"golang.org/x/text/language"

	"github.com/exhibitlab/tour-engine/internal/services"
	"github.com/exhibitlab/tour-engine/internal/storage"
	"github.com/exhibitlab/tour-engine/pkg/binder"
)

// TourHandler serves the bound tour content: the instruction index, the
// ordered checkpoint sequence and the learn-more set for one checkpoint.
// Every request re-binds from the current content and pools; there is no
// bind cache to invalidate.
type TourHandler struct {
	log    *slog.Logger
	store  storage.Store
	assets services.Assets
	binder *binder.Binder
}

func NewTourHandler(log *slog.Logger, store storage.Store, assets services.Assets, b *binder.Binder) *TourHandler {
	return &TourHandler{
		log:    log,
		store:  store,
		assets: assets,
		binder: b,
	}
}

// HandleInstructions binds and returns the instruction index, keyed by
// instruction type name.
func (h *TourHandler) HandleInstructions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, h.log, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	set, st := h.store.Instructions(r.Context())
	index := h.binder.Instructions(set, st,
		h.assets.Sounds(language.English), h.assets.Sounds(language.French))

	resp := make(map[string]NarrationResponse, len(index))
	for t, narration := range index {
		resp[t.String()] = narrationResponse(narration)
	}
	writeJSON(w, h.log, http.StatusOK, resp)
}

// HandleCheckpoints binds and returns the checkpoint sequence in
// authoring order.
func (h *TourHandler) HandleCheckpoints(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, h.log, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	set, st := h.store.Checkpoints(r.Context())
	actors, actorSt := h.assets.Actors()
	if !actorSt.OK {
		h.log.Warn("Scene manifest unavailable, binding without candidates", "message", actorSt.Message)
	}

	binding := h.binder.Checkpoints(set, st, actors,
		h.assets.Sounds(language.English), h.assets.Sounds(language.French))

	resp := make([]CheckpointResponse, 0, len(binding.Ordered))
	for _, cp := range binding.Ordered {
		resp = append(resp, checkpointResponse(cp))
	}
	writeJSON(w, h.log, http.StatusOK, resp)
}

// HandleLearnMore binds the learn-more set for the checkpoint named in
// the query string: /v1/learnmore?checkpoint=2
func (h *TourHandler) HandleLearnMore(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, h.log, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	raw := r.URL.Query().Get("checkpoint")
	checkpoint, err := strconv.Atoi(raw)
	if err != nil || checkpoint < 0 {
		writeError(w, h.log, http.StatusBadRequest, "checkpoint must be a non-negative integer")
		return
	}

	set, st := h.store.LearnMore(r.Context())
	items := h.binder.LearnMore(set, st, checkpoint,
		h.assets.Sounds(language.English), h.assets.Sounds(language.French),
		h.assets.Images())

	resp := make([]LearnMoreResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, learnMoreResponse(item))
	}
	writeJSON(w, h.log, http.StatusOK, resp)
}
