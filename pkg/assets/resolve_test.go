package assets

import "testing"

func soundPool(names ...string) []Sound {
	pool := make([]Sound, 0, len(names))
	for _, n := range names {
		pool = append(pool, &SoundFile{AssetName: n, Path: "sounds/" + n + ".wav"})
	}
	return pool
}

func TestFindActor(t *testing.T) {
	first := &SceneActor{ActorTag: "radar_dish"}
	second := &SceneActor{ActorTag: "radar_dish"}
	candidates := []Actor{
		&SceneActor{ActorTag: "bunker_door"},
		first,
		second,
		nil,
	}

	tests := []struct {
		name       string
		lookup     string
		want       Actor
		wantStatus bool
	}{
		{name: "match", lookup: "bunker_door", want: candidates[0]},
		{name: "first of duplicates wins", lookup: "radar_dish", want: first},
		{name: "case sensitive", lookup: "Radar_Dish", want: nil, wantStatus: true},
		{name: "missing", lookup: "launch_pad", want: nil, wantStatus: true},
		{name: "empty name", lookup: "", want: nil, wantStatus: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, status := FindActor(tt.lookup, candidates)
			if got != tt.want {
				t.Errorf("FindActor(%q) = %v, want %v", tt.lookup, got, tt.want)
			}
			if (status != "") != tt.wantStatus {
				t.Errorf("FindActor(%q) status = %q, want status %v", tt.lookup, status, tt.wantStatus)
			}
		})
	}
}

func TestFindActor_EmptyCandidates(t *testing.T) {
	got, status := FindActor("anything", nil)
	if got != nil {
		t.Errorf("Expected nil actor, got %v", got)
	}
	if status == "" {
		t.Error("Expected a status message for empty candidate list")
	}
}

func TestFindSounds(t *testing.T) {
	pool := soundPool("intro", "checkpoint_1", "outro")

	got := FindSounds([]string{"intro", "outro"}, pool)
	if len(got) != 2 {
		t.Fatalf("Expected 2 sounds, got %d", len(got))
	}
	if got[0] != pool[0] || got[1] != pool[2] {
		t.Errorf("Resolved wrong handles: %v", got)
	}
}

func TestFindSounds_PreservesNameOrder(t *testing.T) {
	pool := soundPool("a", "b", "c")

	got := FindSounds([]string{"c", "a"}, pool)
	if len(got) != 2 {
		t.Fatalf("Expected 2 sounds, got %d", len(got))
	}
	if got[0].Name() != "c" || got[1].Name() != "a" {
		t.Errorf("Expected order [c a], got [%s %s]", got[0].Name(), got[1].Name())
	}
}

func TestFindSounds_NoDuplicateHandles(t *testing.T) {
	pool := soundPool("intro", "outro")

	got := FindSounds([]string{"intro", "intro", "intro"}, pool)
	if len(got) != 1 {
		t.Fatalf("Expected 1 sound for repeated name, got %d", len(got))
	}
}

func TestFindSounds_DistinctAssetsSharingName(t *testing.T) {
	// Two distinct handles with the same name: dedup is by identity, so a
	// repeated name picks up the second asset instead of dropping it.
	first := &SoundFile{AssetName: "echo", Path: "sounds/en/echo.wav"}
	second := &SoundFile{AssetName: "echo", Path: "sounds/fr/echo.wav"}
	pool := []Sound{first, second}

	got := FindSounds([]string{"echo", "echo"}, pool)
	if len(got) != 2 {
		t.Fatalf("Expected 2 distinct handles, got %d", len(got))
	}
	if got[0] != first || got[1] != second {
		t.Errorf("Expected [first second], got %v", got)
	}
}

func TestFindSounds_Empty(t *testing.T) {
	pool := soundPool("intro")

	if got := FindSounds(nil, pool); len(got) != 0 {
		t.Errorf("Expected empty result for empty names, got %v", got)
	}
	if got := FindSounds([]string{"intro"}, nil); len(got) != 0 {
		t.Errorf("Expected empty result for empty pool, got %v", got)
	}
}

func TestFindSounds_UnknownNamesOmitted(t *testing.T) {
	pool := soundPool("intro")

	got := FindSounds([]string{"missing", "intro", "also_missing"}, pool)
	if len(got) != 1 || got[0].Name() != "intro" {
		t.Errorf("Expected only the known sound, got %v", got)
	}
}

func TestFindImages(t *testing.T) {
	first := &ImageFile{AssetName: "map", Path: "images/map.png"}
	second := &ImageFile{AssetName: "blueprint", Path: "images/blueprint.png"}
	pool := []Image{first, second, nil}

	got := FindImages([]string{"blueprint", "blueprint", "missing"}, pool)
	if len(got) != 1 {
		t.Fatalf("Expected 1 image, got %d", len(got))
	}
	if got[0] != second {
		t.Errorf("Expected blueprint handle, got %v", got[0])
	}
}
