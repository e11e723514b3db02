package tour

// LearnMoreRecord is one supplementary content item in learnmore.json.
// CheckpointIndex is the 0-based position of the owning checkpoint in
// checkpoints.json; the file is flat and gets filtered per checkpoint at
// bind time. ImageSources carries citation lines for the images; only the
// first entry is surfaced.
type LearnMoreRecord struct {
	CheckpointIndex            int      `json:"checkpoint_index"`
	TitleCaptionKey            string   `json:"title_caption_key"`
	CaptionKeys                []string `json:"caption_keys"`
	EnglishNarrationSoundNames []string `json:"english_narration_sound_names"`
	FrenchNarrationSoundNames  []string `json:"french_narration_sound_names"`
	ImageNames                 []string `json:"image_names"`
	ImageSources               []string `json:"image_sources"`
}

// LearnMoreSet is the top-level shape of learnmore.json.
type LearnMoreSet struct {
	Data []LearnMoreRecord `json:"data"`
}
