package assets

// Sound is an opaque handle to a loaded narration sound. Handles are owned
// by the pool that produced them; the binding core only borrows them.
type Sound interface {
	Name() string
}

// Image is an opaque handle to a loaded illustration.
type Image interface {
	Name() string
}

// Actor is a scene object that a checkpoint can be pinned to. Tag returns
// the object's primary tag, the name content authors reference it by.
type Actor interface {
	Tag() string
}

// SoundFile is a filesystem-backed sound handle.
type SoundFile struct {
	AssetName string `json:"name"`
	Path      string `json:"path"`
}

func (s *SoundFile) Name() string { return s.AssetName }

// ImageFile is a filesystem-backed image handle.
type ImageFile struct {
	AssetName string `json:"name"`
	Path      string `json:"path"`
}

func (i *ImageFile) Name() string { return i.AssetName }

// SceneActor is a scene object declared in a scene manifest.
type SceneActor struct {
	ActorTag string `json:"tag"`
}

func (a *SceneActor) Tag() string { return a.ActorTag }
