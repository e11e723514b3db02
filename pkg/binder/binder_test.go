package binder

import (
	"io"
	"log/slog"

	"github.com/exhibitlab/tour-engine/pkg/assets"
	"github.com/exhibitlab/tour-engine/pkg/content"
)

// recorder captures diagnostic messages for assertions.
type recorder struct {
	messages []string
}

func (r *recorder) Report(message string) {
	r.messages = append(r.messages, message)
}

func testBinder() (*Binder, *recorder) {
	rec := &recorder{}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(log, rec), rec
}

func testPools() (english, french []assets.Sound) {
	english = []assets.Sound{
		&assets.SoundFile{AssetName: "intro_en", Path: "sounds/en/intro.wav"},
		&assets.SoundFile{AssetName: "radar_en", Path: "sounds/en/radar.wav"},
		&assets.SoundFile{AssetName: "outro_en", Path: "sounds/en/outro.wav"},
	}
	french = []assets.Sound{
		&assets.SoundFile{AssetName: "intro_fr", Path: "sounds/fr/intro.wav"},
		&assets.SoundFile{AssetName: "radar_fr", Path: "sounds/fr/radar.wav"},
	}
	return english, french
}

func okStatus() content.Status {
	return content.Status{OK: true}
}
