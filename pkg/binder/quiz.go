package binder

import (
	"errors"
	"fmt"

	"golang.org/x/text/language"

	"github.com/exhibitlab/tour-engine/pkg/assets"
	"github.com/exhibitlab/tour-engine/pkg/tour"
)

// ErrQuestionOutOfRange reports a quiz bind against a question index the
// loaded set does not have. This is a caller contract violation, not a
// content problem, so it surfaces as a hard error.
var ErrQuestionOutOfRange = errors.New("quiz question index out of range")

// QuizOptionIndex maps 0-based option position to its bound narration for
// the selected question.
type QuizOptionIndex map[int]tour.Narration

// QuizOptions binds the option tiles of one question. Each option narrates
// with a single caption and a single sound per language. An out-of-range
// question index (including any index into an empty set) fails fast.
func (b *Binder) QuizOptions(set tour.QuizSet, question int, english, french []assets.Sound) (QuizOptionIndex, error) {
	if question < 0 || question >= len(set.Questions) {
		return nil, fmt.Errorf("%w: index %d, %d questions loaded", ErrQuestionOutOfRange, question, len(set.Questions))
	}

	options := set.Questions[question].Options
	index := make(QuizOptionIndex, len(options))
	for i, opt := range options {
		index[i] = tour.Narration{
			TitleKey:    opt.Name,
			CaptionKeys: []string{opt.Description},
			Sounds: map[language.Tag][]assets.Sound{
				language.English: assets.FindSounds([]string{opt.EnglishNarrationSoundName}, english),
				language.French:  assets.FindSounds([]string{opt.FrenchNarrationSoundName}, french),
			},
		}
	}
	return index, nil
}
