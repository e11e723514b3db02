package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/exhibitlab/tour-engine/pkg/content"
	"github.com/exhibitlab/tour-engine/pkg/tour"
)

func TestTourHandler_Instructions(t *testing.T) {
	log, store, fake, b := testDeps()
	store.InstructionSet = tour.InstructionSet{Data: []tour.InstructionRecord{
		{
			InstructionType:            "HowToSelection",
			TitleCaptionKey:            "howto_title",
			CaptionKeys:                []string{"howto_1"},
			EnglishNarrationSoundNames: []string{"intro_en"},
			FrenchNarrationSoundNames:  []string{"intro_fr"},
		},
	}}

	handler := NewTourHandler(log, store, fake, b)
	req := httptest.NewRequest(http.MethodGet, "/v1/instructions", nil)
	w := httptest.NewRecorder()
	handler.HandleInstructions(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]NarrationResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)

	howto, ok := resp["HowToSelection"]
	assert.True(t, ok)
	assert.Equal(t, "howto_title", howto.TitleKey)
	assert.Equal(t, []string{"howto_1"}, howto.CaptionKeys)
	assert.Len(t, howto.Sounds["en"], 1)
	assert.Equal(t, "intro_en", howto.Sounds["en"][0].Name)
	assert.Equal(t, "sounds/en/intro.wav", howto.Sounds["en"][0].Path)
}

func TestTourHandler_Instructions_ReadFailureYieldsEmptyIndex(t *testing.T) {
	log, store, fake, b := testDeps()
	store.InstructionStatus = content.Status{OK: false, Message: "file not found"}

	handler := NewTourHandler(log, store, fake, b)
	req := httptest.NewRequest(http.MethodGet, "/v1/instructions", nil)
	w := httptest.NewRecorder()
	handler.HandleInstructions(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]NarrationResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp)
}

func TestTourHandler_Instructions_MethodNotAllowed(t *testing.T) {
	log, store, fake, b := testDeps()
	handler := NewTourHandler(log, store, fake, b)

	req := httptest.NewRequest(http.MethodPost, "/v1/instructions", nil)
	w := httptest.NewRecorder()
	handler.HandleInstructions(w, req)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestTourHandler_Checkpoints(t *testing.T) {
	log, store, fake, b := testDeps()
	store.CheckpointSet = tour.CheckpointSet{Data: []tour.CheckpointRecord{
		{CheckpointName: "radar_dish", FrameNumber: 120, ShouldStopCamera: true},
		{CheckpointName: "missing_wing", FrameNumber: 200},
		{CheckpointName: "bunker_door", FrameNumber: 340, HasQuiz: true},
	}}

	handler := NewTourHandler(log, store, fake, b)
	req := httptest.NewRequest(http.MethodGet, "/v1/checkpoints", nil)
	w := httptest.NewRecorder()
	handler.HandleCheckpoints(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []CheckpointResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 3)

	// Authoring order survives, including the unresolved entry.
	assert.Equal(t, "radar_dish", resp[0].ActorTag)
	assert.True(t, resp[0].StopCamera)
	assert.Equal(t, 120, resp[0].Frame)

	assert.Empty(t, resp[1].ActorTag)
	assert.NotEmpty(t, resp[1].ActorStatus)
	assert.Equal(t, 200, resp[1].Frame)

	assert.Equal(t, "bunker_door", resp[2].ActorTag)
	assert.True(t, resp[2].HasQuiz)
}

func TestTourHandler_LearnMore(t *testing.T) {
	log, store, fake, b := testDeps()
	store.LearnMoreSet = tour.LearnMoreSet{Data: []tour.LearnMoreRecord{
		{CheckpointIndex: 0, TitleCaptionKey: "first", ImageNames: []string{"site_map"}},
		{CheckpointIndex: 1, TitleCaptionKey: "other"},
		{CheckpointIndex: 0, TitleCaptionKey: "third", ImageSources: []string{"Archives"}},
	}}

	handler := NewTourHandler(log, store, fake, b)
	req := httptest.NewRequest(http.MethodGet, "/v1/learnmore?checkpoint=0", nil)
	w := httptest.NewRecorder()
	handler.HandleLearnMore(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []LearnMoreResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
	assert.Equal(t, "first", resp[0].Narration.TitleKey)
	assert.Len(t, resp[0].Images, 1)
	assert.Equal(t, "site_map", resp[0].Images[0].Name)
	assert.Equal(t, "third", resp[1].Narration.TitleKey)
	assert.Equal(t, "Archives", resp[1].Source)
}

func TestTourHandler_LearnMore_BadCheckpoint(t *testing.T) {
	log, store, fake, b := testDeps()
	handler := NewTourHandler(log, store, fake, b)

	for _, query := range []string{"", "?checkpoint=abc", "?checkpoint=-1"} {
		req := httptest.NewRequest(http.MethodGet, "/v1/learnmore"+query, nil)
		w := httptest.NewRecorder()
		handler.HandleLearnMore(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code, "query %q", query)
	}
}
