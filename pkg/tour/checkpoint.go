package tour

// CheckpointRecord is one authored waypoint of the automated tour, as it
// appears in checkpoints.json. CheckpointName references a scene actor by
// primary tag; FrameNumber is the camera spline frame the checkpoint sits
// on. The flags describe optional content hanging off the checkpoint.
type CheckpointRecord struct {
	CheckpointName             string   `json:"checkpoint_name"`
	FrameNumber                int      `json:"checkpoint_frame_number"`
	TitleCaptionKey            string   `json:"title_caption_key"`
	CaptionKeys                []string `json:"caption_keys"`
	EnglishNarrationSoundNames []string `json:"english_narration_sound_names"`
	FrenchNarrationSoundNames  []string `json:"french_narration_sound_names"`
	ShouldStopCamera           bool     `json:"should_stop_camera"`
	HasLearnMoreOption         bool     `json:"has_learn_more_option"`
	NumLearnMoreOptions        int      `json:"num_of_learn_more_options"`
	HasQuiz                    bool     `json:"has_quiz"`
}

// CheckpointSet is the top-level shape of checkpoints.json. Record order is
// authoring order; the presentation layer visits checkpoints in this order.
type CheckpointSet struct {
	Data []CheckpointRecord `json:"data"`
}
