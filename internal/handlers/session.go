package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/language"

	"github.com/exhibitlab/tour-engine/internal/storage"
	"github.com/exhibitlab/tour-engine/pkg/state"
)

// SessionHandler manages visitor tour sessions.
// Routes:
// POST /v1/sessions          - Create a new session
// GET /v1/sessions/{id}      - Read a session by ID
// PATCH /v1/sessions/{id}    - Update position (checkpoint/question/learn-more)
// DELETE /v1/sessions/{id}   - Delete a session by ID
type SessionHandler struct {
	log             *slog.Logger
	store           storage.Store
	defaultLanguage language.Tag
}

func NewSessionHandler(log *slog.Logger, store storage.Store, defaultLanguage language.Tag) *SessionHandler {
	return &SessionHandler{
		log:             log,
		store:           store,
		defaultLanguage: defaultLanguage,
	}
}

type createSessionRequest struct {
	Language string `json:"language,omitempty"`
}

type patchSessionRequest struct {
	Checkpoint        *int `json:"checkpoint,omitempty"`
	AdvanceCheckpoint bool `json:"advance_checkpoint,omitempty"`
	Question          *int `json:"question,omitempty"`
	ViewedLearnMore   *int `json:"viewed_learn_more,omitempty"`
}

func (h *SessionHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/v1/sessions")
	var sessionID uuid.UUID
	var err error

	if path != "" && path != "/" {
		idStr := strings.Trim(path, "/")
		sessionID, err = uuid.Parse(idStr)
		if err != nil {
			h.log.Warn("Invalid session ID", "id", idStr, "error", err)
			writeError(w, h.log, http.StatusBadRequest, "Invalid session ID format")
			return
		}
	}

	switch r.Method {
	case http.MethodPost:
		h.handleCreate(w, r)
	case http.MethodGet:
		if sessionID == uuid.Nil {
			writeError(w, h.log, http.StatusBadRequest, "Session ID is required for GET requests")
			return
		}
		h.handleRead(w, r, sessionID)
	case http.MethodPatch:
		if sessionID == uuid.Nil {
			writeError(w, h.log, http.StatusBadRequest, "Session ID is required for PATCH requests")
			return
		}
		h.handlePatch(w, r, sessionID)
	case http.MethodDelete:
		if sessionID == uuid.Nil {
			writeError(w, h.log, http.StatusBadRequest, "Session ID is required for DELETE requests")
			return
		}
		h.handleDelete(w, r, sessionID)
	default:
		writeError(w, h.log, http.StatusMethodNotAllowed, "Method not allowed. Supported methods: POST, GET, PATCH, DELETE")
	}
}

func (h *SessionHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req createSessionRequest
	// An empty body means defaults; a malformed one is an error.
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, h.log, http.StatusBadRequest, "Invalid request body")
		return
	}

	lang := h.defaultLanguage
	if req.Language != "" {
		parsed, err := language.Parse(req.Language)
		if err != nil {
			writeError(w, h.log, http.StatusBadRequest, "Unsupported language tag")
			return
		}
		lang = parsed
	}

	s := state.NewTourSession(lang)
	if err := h.store.SaveSession(r.Context(), s.ID, s); err != nil {
		h.log.Error("Failed to save session", "error", err)
		writeError(w, h.log, http.StatusInternalServerError, "Failed to create session")
		return
	}

	h.log.Info("Session created", "uuid", s.ID, "language", s.Language)
	writeJSON(w, h.log, http.StatusCreated, s)
}

func (h *SessionHandler) handleRead(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	s, err := h.store.LoadSession(r.Context(), id)
	if err != nil {
		h.log.Error("Failed to load session", "uuid", id, "error", err)
		writeError(w, h.log, http.StatusInternalServerError, "Failed to load session")
		return
	}
	if s == nil {
		writeError(w, h.log, http.StatusNotFound, "Session not found")
		return
	}
	writeJSON(w, h.log, http.StatusOK, s)
}

func (h *SessionHandler) handlePatch(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	s, err := h.store.LoadSession(r.Context(), id)
	if err != nil {
		h.log.Error("Failed to load session", "uuid", id, "error", err)
		writeError(w, h.log, http.StatusInternalServerError, "Failed to load session")
		return
	}
	if s == nil {
		writeError(w, h.log, http.StatusNotFound, "Session not found")
		return
	}

	var req patchSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, h.log, http.StatusBadRequest, "Invalid request body")
		return
	}

	// Checkpoint moves clamp against the current checkpoint count so a
	// stale client cannot walk the session off the end of the tour.
	total := h.checkpointTotal(r)

	if req.AdvanceCheckpoint {
		s.AdvanceCheckpoint(total)
	}
	if req.Checkpoint != nil {
		s.SetCheckpoint(*req.Checkpoint, total)
	}
	if req.Question != nil && *req.Question >= 0 {
		s.CurrentQuestion = *req.Question
	}
	if req.ViewedLearnMore != nil {
		s.MarkLearnMoreViewed(*req.ViewedLearnMore)
	}

	if err := h.store.SaveSession(r.Context(), id, s); err != nil {
		h.log.Error("Failed to save session", "uuid", id, "error", err)
		writeError(w, h.log, http.StatusInternalServerError, "Failed to save session")
		return
	}
	writeJSON(w, h.log, http.StatusOK, s)
}

func (h *SessionHandler) handleDelete(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	if err := h.store.DeleteSession(r.Context(), id); err != nil {
		h.log.Error("Failed to delete session", "uuid", id, "error", err)
		writeError(w, h.log, http.StatusInternalServerError, "Failed to delete session")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *SessionHandler) checkpointTotal(r *http.Request) int {
	set, st := h.store.Checkpoints(r.Context())
	if !st.OK {
		h.log.Warn("Checkpoint content unavailable for clamping", "message", st.Message)
	}
	return len(set.Data)
}
