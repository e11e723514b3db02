package tour

import (
	"golang.org/x/text/language"

	"github.com/exhibitlab/tour-engine/pkg/assets"
)

// Languages lists the narration channels carried by every content file,
// in the order they appear in the authored records.
var Languages = []language.Tag{language.English, language.French}

// Narration is the common unit of speakable and readable content: a title
// key, ordered caption keys that pair positionally with presentation slots,
// and resolved sound handles per language channel. Sound lists never hold
// the same handle twice.
type Narration struct {
	TitleKey    string
	CaptionKeys []string
	Sounds      map[language.Tag][]assets.Sound
}

// SoundsFor returns the resolved sounds for one language channel.
// Unknown channels yield an empty list.
func (n Narration) SoundsFor(tag language.Tag) []assets.Sound {
	return n.Sounds[tag]
}
