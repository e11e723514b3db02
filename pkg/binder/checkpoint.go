package binder

import (
	"github.com/exhibitlab/tour-engine/pkg/assets"
	"github.com/exhibitlab/tour-engine/pkg/content"
	"github.com/exhibitlab/tour-engine/pkg/tour"
)

// Checkpoint is one fully-bound tour waypoint. Actor is nil when the scene
// lookup failed; the entry is kept anyway so the caller can diagnose the
// mismatch instead of silently losing content, and ActorStatus says why.
type Checkpoint struct {
	Actor          assets.Actor
	ActorStatus    string
	Frame          int
	Narration      tour.Narration
	StopCamera     bool
	HasLearnMore   bool
	LearnMoreCount int
	HasQuiz        bool
}

// CheckpointBinding holds the bound checkpoints twice: Ordered preserves
// authoring order for sequential traversal, ByActor serves event callbacks
// keyed by scene object. Every Ordered entry has a ByActor entry; when
// several checkpoints fail actor resolution they share the nil key and the
// last one wins there, but Ordered keeps them all.
type CheckpointBinding struct {
	Ordered []Checkpoint
	ByActor map[assets.Actor]Checkpoint
}

// Checkpoints binds every checkpoint record. Output order equals record
// order regardless of how many actor resolutions fail; the presentation
// layer depends on traversal order matching authoring order.
func (b *Binder) Checkpoints(set tour.CheckpointSet, st content.Status, actors []assets.Actor, english, french []assets.Sound) CheckpointBinding {
	b.report(st)

	binding := CheckpointBinding{
		Ordered: make([]Checkpoint, 0, len(set.Data)),
		ByActor: make(map[assets.Actor]Checkpoint, len(set.Data)),
	}

	for _, rec := range set.Data {
		actor, status := assets.FindActor(rec.CheckpointName, actors)
		if actor == nil {
			b.log.Warn("checkpoint actor unresolved",
				"checkpoint", rec.CheckpointName, "status", status)
		}

		cp := Checkpoint{
			Actor:       actor,
			ActorStatus: status,
			Frame:       rec.FrameNumber,
			Narration: bindNarration(rec.TitleCaptionKey, rec.CaptionKeys,
				rec.EnglishNarrationSoundNames, rec.FrenchNarrationSoundNames,
				english, french),
			StopCamera:     rec.ShouldStopCamera,
			HasLearnMore:   rec.HasLearnMoreOption,
			LearnMoreCount: rec.NumLearnMoreOptions,
			HasQuiz:        rec.HasQuiz,
		}

		binding.Ordered = append(binding.Ordered, cp)
		binding.ByActor[actor] = cp
	}

	return binding
}
