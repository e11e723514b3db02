package binder

import (
	"testing"

	"golang.org/x/text/language"

	"github.com/exhibitlab/tour-engine/pkg/assets"
	"github.com/exhibitlab/tour-engine/pkg/content"
	"github.com/exhibitlab/tour-engine/pkg/tour"
)

func testActors() []assets.Actor {
	return []assets.Actor{
		&assets.SceneActor{ActorTag: "radar_dish"},
		&assets.SceneActor{ActorTag: "bunker_door"},
		&assets.SceneActor{ActorTag: "launch_pad"},
	}
}

func TestCheckpoints(t *testing.T) {
	b, _ := testBinder()
	english, french := testPools()
	actors := testActors()

	set := tour.CheckpointSet{Data: []tour.CheckpointRecord{
		{
			CheckpointName:             "radar_dish",
			FrameNumber:                120,
			TitleCaptionKey:            "radar_title",
			CaptionKeys:                []string{"radar_1"},
			EnglishNarrationSoundNames: []string{"radar_en"},
			FrenchNarrationSoundNames:  []string{"radar_fr"},
			ShouldStopCamera:           true,
			HasLearnMoreOption:         true,
			NumLearnMoreOptions:        2,
			HasQuiz:                    false,
		},
		{
			CheckpointName: "bunker_door",
			FrameNumber:    340,
			HasQuiz:        true,
		},
	}}

	binding := b.Checkpoints(set, okStatus(), actors, english, french)

	if len(binding.Ordered) != 2 {
		t.Fatalf("Expected 2 ordered checkpoints, got %d", len(binding.Ordered))
	}

	radar := binding.Ordered[0]
	if radar.Actor != actors[0] {
		t.Errorf("Expected radar_dish actor, got %v", radar.Actor)
	}
	if radar.ActorStatus != "" {
		t.Errorf("Expected empty actor status, got %q", radar.ActorStatus)
	}
	if radar.Frame != 120 {
		t.Errorf("Expected frame 120, got %d", radar.Frame)
	}
	if !radar.StopCamera || !radar.HasLearnMore || radar.LearnMoreCount != 2 || radar.HasQuiz {
		t.Errorf("Flags copied wrong: %+v", radar)
	}
	if radar.Narration.TitleKey != "radar_title" {
		t.Errorf("Unexpected title key: %q", radar.Narration.TitleKey)
	}
	if got := radar.Narration.SoundsFor(language.French); len(got) != 1 || got[0].Name() != "radar_fr" {
		t.Errorf("Unexpected french sounds: %v", got)
	}

	bunker := binding.Ordered[1]
	if bunker.Actor != actors[1] || !bunker.HasQuiz || bunker.Frame != 340 {
		t.Errorf("Second checkpoint bound wrong: %+v", bunker)
	}

	// Per-actor index mirrors the sequence.
	if got, ok := binding.ByActor[actors[0]]; !ok || got.Frame != 120 {
		t.Errorf("ByActor lookup for radar_dish failed: %+v ok=%v", got, ok)
	}
	if got, ok := binding.ByActor[actors[1]]; !ok || got.Frame != 340 {
		t.Errorf("ByActor lookup for bunker_door failed: %+v ok=%v", got, ok)
	}
}

func TestCheckpoints_UnresolvedActorKeepsEntry(t *testing.T) {
	b, _ := testBinder()
	english, french := testPools()
	actors := testActors()

	set := tour.CheckpointSet{Data: []tour.CheckpointRecord{
		{CheckpointName: "radar_dish", FrameNumber: 1},
		{CheckpointName: "demolished_wing", FrameNumber: 2},
		{CheckpointName: "launch_pad", FrameNumber: 3},
	}}

	binding := b.Checkpoints(set, okStatus(), actors, english, french)

	// Sequence length and order survive resolution failures.
	if len(binding.Ordered) != 3 {
		t.Fatalf("Expected 3 checkpoints, got %d", len(binding.Ordered))
	}
	for i, want := range []int{1, 2, 3} {
		if binding.Ordered[i].Frame != want {
			t.Errorf("Checkpoint %d has frame %d, want %d", i, binding.Ordered[i].Frame, want)
		}
	}

	missing := binding.Ordered[1]
	if missing.Actor != nil {
		t.Errorf("Expected nil actor sentinel, got %v", missing.Actor)
	}
	if missing.ActorStatus == "" {
		t.Error("Expected a per-checkpoint actor status message")
	}

	// The sentinel entry is indexed under the nil key.
	if got, ok := binding.ByActor[nil]; !ok || got.Frame != 2 {
		t.Errorf("Expected nil-keyed entry with frame 2, got %+v ok=%v", got, ok)
	}
}

func TestCheckpoints_EmptySet(t *testing.T) {
	b, rec := testBinder()
	english, french := testPools()

	st := content.Status{OK: false, Message: "checkpoints.json missing"}
	binding := b.Checkpoints(tour.CheckpointSet{}, st, testActors(), english, french)

	if len(binding.Ordered) != 0 || len(binding.ByActor) != 0 {
		t.Errorf("Expected empty binding, got %+v", binding)
	}
	if len(rec.messages) != 1 {
		t.Errorf("Expected one diagnostic, got %v", rec.messages)
	}
}
