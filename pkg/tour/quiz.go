package tour

// QuizOption is one selectable answer tile. Each option narrates with a
// single sound per language.
type QuizOption struct {
	Name                      string `json:"option_name"`
	Description               string `json:"option_description"`
	EnglishNarrationSoundName string `json:"english_narration_sound_name"`
	FrenchNarrationSoundName  string `json:"french_narration_sound_name"`
}

// QuizQuestion is one question of the radar mini-game.
type QuizQuestion struct {
	QuestionKey string       `json:"question_key"`
	Options     []QuizOption `json:"options"`
}

// QuizSet is the top-level shape of quiz.json. The whole set is loaded at
// once; option binding happens per selected question.
type QuizSet struct {
	Questions []QuizQuestion `json:"questions"`
}
