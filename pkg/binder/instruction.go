package binder

import (
	"github.com/exhibitlab/tour-engine/pkg/assets"
	"github.com/exhibitlab/tour-engine/pkg/content"
	"github.com/exhibitlab/tour-engine/pkg/tour"
)

// InstructionIndex maps instruction type to its bound narration. Keys are
// unique; a repeated type in the source overwrites the earlier entry.
type InstructionIndex map[tour.InstructionType]tour.Narration

// Instructions binds every instruction record against the language pools.
// A failed read is reported once and binding proceeds over whatever the
// reader decoded, so a missing file yields a valid empty index.
func (b *Binder) Instructions(set tour.InstructionSet, st content.Status, english, french []assets.Sound) InstructionIndex {
	b.report(st)

	index := make(InstructionIndex, len(set.Data))
	for _, rec := range set.Data {
		t, ok := tour.ParseInstructionType(rec.InstructionType)
		if !ok {
			b.log.Warn("unrecognized instruction type, binding under fallback",
				"instruction_type", rec.InstructionType,
				"fallback", t.String())
		}
		index[t] = bindNarration(rec.TitleCaptionKey, rec.CaptionKeys,
			rec.EnglishNarrationSoundNames, rec.FrenchNarrationSoundNames,
			english, french)
	}
	return index
}
