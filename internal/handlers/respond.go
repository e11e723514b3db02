package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/exhibitlab/tour-engine/pkg/assets"
	"github.com/exhibitlab/tour-engine/pkg/binder"
	"github.com/exhibitlab/tour-engine/pkg/tour"
)

func writeJSON(w http.ResponseWriter, log *slog.Logger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("Failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, log *slog.Logger, status int, message string) {
	writeJSON(w, log, status, map[string]string{"error": message})
}

// Response DTOs. Bound structures carry opaque handles; the API surfaces
// them by name (plus file path for filesystem-backed handles) so a client
// can address its own copies of the assets.

type SoundResponse struct {
	Name string `json:"name"`
	Path string `json:"path,omitempty"`
}

type ImageResponse struct {
	Name string `json:"name"`
	Path string `json:"path,omitempty"`
}

type NarrationResponse struct {
	TitleKey    string                     `json:"title_key"`
	CaptionKeys []string                   `json:"caption_keys"`
	Sounds      map[string][]SoundResponse `json:"sounds"`
}

func soundResponses(pool []assets.Sound) []SoundResponse {
	out := make([]SoundResponse, 0, len(pool))
	for _, s := range pool {
		resp := SoundResponse{Name: s.Name()}
		if f, ok := s.(*assets.SoundFile); ok {
			resp.Path = f.Path
		}
		out = append(out, resp)
	}
	return out
}

func imageResponses(pool []assets.Image) []ImageResponse {
	out := make([]ImageResponse, 0, len(pool))
	for _, img := range pool {
		resp := ImageResponse{Name: img.Name()}
		if f, ok := img.(*assets.ImageFile); ok {
			resp.Path = f.Path
		}
		out = append(out, resp)
	}
	return out
}

func narrationResponse(n tour.Narration) NarrationResponse {
	resp := NarrationResponse{
		TitleKey:    n.TitleKey,
		CaptionKeys: n.CaptionKeys,
		Sounds:      make(map[string][]SoundResponse, len(n.Sounds)),
	}
	if resp.CaptionKeys == nil {
		resp.CaptionKeys = []string{}
	}
	for tag, pool := range n.Sounds {
		resp.Sounds[tag.String()] = soundResponses(pool)
	}
	return resp
}

type CheckpointResponse struct {
	ActorTag       string            `json:"actor_tag,omitempty"`
	ActorStatus    string            `json:"actor_status,omitempty"`
	Frame          int               `json:"frame"`
	Narration      NarrationResponse `json:"narration"`
	StopCamera     bool              `json:"stop_camera"`
	HasLearnMore   bool              `json:"has_learn_more"`
	LearnMoreCount int               `json:"learn_more_count"`
	HasQuiz        bool              `json:"has_quiz"`
}

func checkpointResponse(cp binder.Checkpoint) CheckpointResponse {
	resp := CheckpointResponse{
		ActorStatus:    cp.ActorStatus,
		Frame:          cp.Frame,
		Narration:      narrationResponse(cp.Narration),
		StopCamera:     cp.StopCamera,
		HasLearnMore:   cp.HasLearnMore,
		LearnMoreCount: cp.LearnMoreCount,
		HasQuiz:        cp.HasQuiz,
	}
	if cp.Actor != nil {
		resp.ActorTag = cp.Actor.Tag()
	}
	return resp
}

type LearnMoreResponse struct {
	Checkpoint int               `json:"checkpoint"`
	Narration  NarrationResponse `json:"narration"`
	Images     []ImageResponse   `json:"images"`
	Source     string            `json:"source,omitempty"`
}

func learnMoreResponse(item binder.LearnMoreItem) LearnMoreResponse {
	return LearnMoreResponse{
		Checkpoint: item.Checkpoint,
		Narration:  narrationResponse(item.Narration),
		Images:     imageResponses(item.Images),
		Source:     item.Source,
	}
}
