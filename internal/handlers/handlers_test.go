package handlers

import (
	"io"
	"log/slog"

	"golang.org/x/text/language"

	"github.com/exhibitlab/tour-engine/internal/storage"
	"github.com/exhibitlab/tour-engine/pkg/assets"
	"github.com/exhibitlab/tour-engine/pkg/binder"
	"github.com/exhibitlab/tour-engine/pkg/content"
)

// fakeAssets is a canned Assets implementation for handler tests.
type fakeAssets struct {
	english []assets.Sound
	french  []assets.Sound
	images  []assets.Image
	actors  []assets.Actor
	actorSt content.Status
}

func newFakeAssets() *fakeAssets {
	return &fakeAssets{
		english: []assets.Sound{
			&assets.SoundFile{AssetName: "intro_en", Path: "sounds/en/intro.wav"},
			&assets.SoundFile{AssetName: "radar_en", Path: "sounds/en/radar.wav"},
		},
		french: []assets.Sound{
			&assets.SoundFile{AssetName: "intro_fr", Path: "sounds/fr/intro.wav"},
		},
		images: []assets.Image{
			&assets.ImageFile{AssetName: "site_map", Path: "images/site_map.png"},
		},
		actors: []assets.Actor{
			&assets.SceneActor{ActorTag: "radar_dish"},
			&assets.SceneActor{ActorTag: "bunker_door"},
		},
		actorSt: content.Status{OK: true},
	}
}

func (f *fakeAssets) Sounds(tag language.Tag) []assets.Sound {
	if tag == language.French {
		return f.french
	}
	return f.english
}

func (f *fakeAssets) Images() []assets.Image {
	return f.images
}

func (f *fakeAssets) Actors() ([]assets.Actor, content.Status) {
	return f.actors, f.actorSt
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testDeps() (*slog.Logger, *storage.MockStore, *fakeAssets, *binder.Binder) {
	log := testLogger()
	return log, storage.NewMockStore(), newFakeAssets(), binder.New(log, nil)
}
