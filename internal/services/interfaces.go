package services

import (
	"golang.org/x/text/language"

	"github.com/exhibitlab/tour-engine/pkg/assets"
	"github.com/exhibitlab/tour-engine/pkg/content"
)

// Assets enumerates the pools and scene candidates a bind resolves
// against. Implemented by AssetCatalog; handler tests substitute fakes.
type Assets interface {
	Sounds(tag language.Tag) []assets.Sound
	Images() []assets.Image
	Actors() ([]assets.Actor, content.Status)
}

// Ensure AssetCatalog implements Assets interface
var _ Assets = (*AssetCatalog)(nil)
