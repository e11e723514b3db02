package assets

import "fmt"

// Content files reference assets and scene objects by name. These lookups
// are the single place those names are late-bound to runtime handles.
// Misses are tolerated: a missing sound or image is omitted, a missing
// actor is reported through the status string. Nothing here panics.

// FindActor returns the first candidate whose primary tag equals name
// (case-sensitive). The second return is a status message for the caller
// to surface; it is non-empty only when no candidate matched.
func FindActor(name string, candidates []Actor) (Actor, string) {
	for _, c := range candidates {
		if c != nil && c.Tag() == name {
			return c, ""
		}
	}
	return nil, fmt.Sprintf("actor not found: %s", name)
}

// FindSounds resolves each name against the pool, keeping the first match
// per name. The result never holds the same handle twice, even when names
// repeat or the pool carries duplicates. Dedup is by handle identity, not
// by name, so two distinct assets sharing a name both stay eligible.
// Names with no match are dropped without signal.
func FindSounds(names []string, pool []Sound) []Sound {
	found := make([]Sound, 0, len(names))
	for _, name := range names {
		for _, s := range pool {
			if s != nil && s.Name() == name && !containsSound(found, s) {
				found = append(found, s)
				break
			}
		}
	}
	return found
}

// FindImages is FindSounds over an image pool.
func FindImages(names []string, pool []Image) []Image {
	found := make([]Image, 0, len(names))
	for _, name := range names {
		for _, img := range pool {
			if img != nil && img.Name() == name && !containsImage(found, img) {
				found = append(found, img)
				break
			}
		}
	}
	return found
}

func containsSound(list []Sound, s Sound) bool {
	for _, have := range list {
		if have == s {
			return true
		}
	}
	return false
}

func containsImage(list []Image, img Image) bool {
	for _, have := range list {
		if have == img {
			return true
		}
	}
	return false
}
