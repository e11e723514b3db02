package services

import (
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	"golang.org/x/text/language"

	"github.com/exhibitlab/tour-engine/pkg/assets"
	"github.com/exhibitlab/tour-engine/pkg/content"
)

var (
	soundExtensions = map[string]bool{".wav": true, ".ogg": true, ".mp3": true}
	imageExtensions = map[string]bool{".png": true, ".jpg": true, ".jpeg": true}
)

// AssetCatalog enumerates the runtime asset pools the binders resolve
// against. Sounds live under <dataDir>/sounds/<lang>/, images under
// <dataDir>/images/, scene actors in <dataDir>/tour/scene.json. Pools are
// rebuilt per call; the catalog owns the handles, binders borrow them.
type AssetCatalog struct {
	logger  *slog.Logger
	dataDir string
}

func NewAssetCatalog(dataDir string, logger *slog.Logger) *AssetCatalog {
	if dataDir == "" {
		dataDir = "./data"
	}
	return &AssetCatalog{logger: logger, dataDir: dataDir}
}

// Sounds returns the narration pool for one language channel. A missing
// directory yields an empty pool, not an error; the binders tolerate
// unresolved names anyway.
func (c *AssetCatalog) Sounds(tag language.Tag) []assets.Sound {
	dir := filepath.Join(c.dataDir, "sounds", tag.String())
	pool := make([]assets.Sound, 0)

	c.walk(dir, soundExtensions, func(name, path string) {
		pool = append(pool, &assets.SoundFile{AssetName: name, Path: path})
	})
	return pool
}

// Images returns the illustration pool for learn-more content.
func (c *AssetCatalog) Images() []assets.Image {
	dir := filepath.Join(c.dataDir, "images")
	pool := make([]assets.Image, 0)

	c.walk(dir, imageExtensions, func(name, path string) {
		pool = append(pool, &assets.ImageFile{AssetName: name, Path: path})
	})
	return pool
}

// sceneManifest is the shape of scene.json.
type sceneManifest struct {
	Actors []struct {
		Tag string `json:"tag"`
	} `json:"actors"`
}

// Actors loads the scene-object candidates checkpoints bind against.
// Manifest order is preserved; it is the tie-break order for duplicate
// tags.
func (c *AssetCatalog) Actors() ([]assets.Actor, content.Status) {
	manifest, st := content.Read[sceneManifest](filepath.Join(c.dataDir, "tour", "scene.json"))

	actors := make([]assets.Actor, 0, len(manifest.Actors))
	for _, a := range manifest.Actors {
		actors = append(actors, &assets.SceneActor{ActorTag: a.Tag})
	}
	return actors, st
}

// walk visits every regular file under dir with a matching extension,
// in lexical order. Asset name is the file base without extension.
func (c *AssetCatalog) walk(dir string, extensions map[string]bool, visit func(name, path string)) {
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if !extensions[ext] {
			return nil
		}
		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		visit(name, path)
		return nil
	})
	if err != nil {
		c.logger.Warn("Failed to walk asset directory", "dir", dir, "error", err)
	}
}
