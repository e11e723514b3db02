package binder

import (
	"github.com/exhibitlab/tour-engine/pkg/assets"
	"github.com/exhibitlab/tour-engine/pkg/content"
	"github.com/exhibitlab/tour-engine/pkg/tour"
)

// LearnMoreItem is one bound supplementary content entry for the active
// checkpoint. Source is the first citation line of the record, empty when
// the record carries none.
type LearnMoreItem struct {
	Checkpoint int
	Narration  tour.Narration
	Images     []assets.Image
	Source     string
}

// LearnMore filters the flat learn-more set down to the entries owned by
// the given checkpoint index, preserving source order, and binds each one.
// The result covers only the active checkpoint; re-bind when it changes.
func (b *Binder) LearnMore(set tour.LearnMoreSet, st content.Status, checkpoint int, english, french []assets.Sound, images []assets.Image) []LearnMoreItem {
	b.report(st)

	items := make([]LearnMoreItem, 0, len(set.Data))
	for _, rec := range set.Data {
		if rec.CheckpointIndex != checkpoint {
			continue
		}

		item := LearnMoreItem{
			Checkpoint: rec.CheckpointIndex,
			Narration: bindNarration(rec.TitleCaptionKey, rec.CaptionKeys,
				rec.EnglishNarrationSoundNames, rec.FrenchNarrationSoundNames,
				english, french),
			Images: assets.FindImages(rec.ImageNames, images),
		}
		if len(rec.ImageSources) > 0 {
			item.Source = rec.ImageSources[0]
		}
		items = append(items, item)
	}
	return items
}
