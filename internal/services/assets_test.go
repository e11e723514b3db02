package services

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/text/language"
)

func setupCatalog(t *testing.T) (*AssetCatalog, string) {
	t.Helper()
	dataDir := t.TempDir()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewAssetCatalog(dataDir, logger), dataDir
}

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("Failed to create dir: %v", err)
	}
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
}

func TestAssetCatalog_Sounds(t *testing.T) {
	catalog, dataDir := setupCatalog(t)

	touch(t, filepath.Join(dataDir, "sounds", "en", "intro.wav"))
	touch(t, filepath.Join(dataDir, "sounds", "en", "radar.ogg"))
	touch(t, filepath.Join(dataDir, "sounds", "en", "notes.txt"))
	touch(t, filepath.Join(dataDir, "sounds", "fr", "intro.wav"))

	english := catalog.Sounds(language.English)
	if len(english) != 2 {
		t.Fatalf("Expected 2 english sounds, got %d", len(english))
	}
	if english[0].Name() != "intro" || english[1].Name() != "radar" {
		t.Errorf("Unexpected pool: %v, %v", english[0].Name(), english[1].Name())
	}

	french := catalog.Sounds(language.French)
	if len(french) != 1 || french[0].Name() != "intro" {
		t.Errorf("Unexpected french pool: %v", french)
	}
}

func TestAssetCatalog_Sounds_MissingDirIsEmpty(t *testing.T) {
	catalog, _ := setupCatalog(t)

	if pool := catalog.Sounds(language.French); len(pool) != 0 {
		t.Errorf("Expected empty pool, got %v", pool)
	}
}

func TestAssetCatalog_Images(t *testing.T) {
	catalog, dataDir := setupCatalog(t)

	touch(t, filepath.Join(dataDir, "images", "site_map.png"))
	touch(t, filepath.Join(dataDir, "images", "blueprint.JPG"))

	images := catalog.Images()
	if len(images) != 2 {
		t.Fatalf("Expected 2 images, got %d", len(images))
	}
}

func TestAssetCatalog_Actors(t *testing.T) {
	catalog, dataDir := setupCatalog(t)

	manifest := `{"actors": [{"tag": "radar_dish"}, {"tag": "bunker_door"}]}`
	path := filepath.Join(dataDir, "tour", "scene.json")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("Failed to create dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(manifest), 0o644); err != nil {
		t.Fatalf("Failed to write manifest: %v", err)
	}

	actors, st := catalog.Actors()
	if !st.OK {
		t.Fatalf("Expected OK status, got %q", st.Message)
	}
	if len(actors) != 2 || actors[0].Tag() != "radar_dish" || actors[1].Tag() != "bunker_door" {
		t.Errorf("Unexpected actors: %v", actors)
	}
}

func TestAssetCatalog_Actors_MissingManifest(t *testing.T) {
	catalog, _ := setupCatalog(t)

	actors, st := catalog.Actors()
	if st.OK {
		t.Error("Expected failed status for missing manifest")
	}
	if len(actors) != 0 {
		t.Errorf("Expected empty candidate list, got %v", actors)
	}
}
