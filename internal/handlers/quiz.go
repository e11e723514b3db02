package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"golang.org/x/text/language"

	"github.com/exhibitlab/tour-engine/internal/services"
	"github.com/exhibitlab/tour-engine/internal/storage"
	"github.com/exhibitlab/tour-engine/pkg/binder"
)

// QuizHandler serves the mini-game quiz: the raw question set at
// /v1/quiz (the client indexes it itself) and bound option tiles at
// /v1/quiz/options?question=N.
type QuizHandler struct {
	log    *slog.Logger
	store  storage.Store
	assets services.Assets
	binder *binder.Binder
}

func NewQuizHandler(log *slog.Logger, store storage.Store, assets services.Assets, b *binder.Binder) *QuizHandler {
	return &QuizHandler{
		log:    log,
		store:  store,
		assets: assets,
		binder: b,
	}
}

func (h *QuizHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, h.log, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	if strings.HasSuffix(strings.TrimSuffix(r.URL.Path, "/"), "/options") {
		h.handleOptions(w, r)
		return
	}
	h.handleQuestions(w, r)
}

func (h *QuizHandler) handleQuestions(w http.ResponseWriter, r *http.Request) {
	set, st := h.store.Quiz(r.Context())
	if !st.OK {
		h.log.Warn("Quiz content unavailable", "message", st.Message)
	}
	writeJSON(w, h.log, http.StatusOK, set)
}

func (h *QuizHandler) handleOptions(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("question")
	question, err := strconv.Atoi(raw)
	if err != nil {
		writeError(w, h.log, http.StatusBadRequest, "question must be an integer")
		return
	}

	set, st := h.store.Quiz(r.Context())
	if !st.OK {
		h.log.Warn("Quiz content unavailable", "message", st.Message)
	}

	index, err := h.binder.QuizOptions(set, question,
		h.assets.Sounds(language.English), h.assets.Sounds(language.French))
	if err != nil {
		if errors.Is(err, binder.ErrQuestionOutOfRange) {
			writeError(w, h.log, http.StatusBadRequest, err.Error())
			return
		}
		h.log.Error("Failed to bind quiz options", "error", err)
		writeError(w, h.log, http.StatusInternalServerError, "Failed to bind quiz options")
		return
	}

	resp := make(map[string]NarrationResponse, len(index))
	for i, narration := range index {
		resp[strconv.Itoa(i)] = narrationResponse(narration)
	}
	writeJSON(w, h.log, http.StatusOK, resp)
}
