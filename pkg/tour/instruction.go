package tour

// InstructionType identifies one of the fixed on-screen instruction prompts.
type InstructionType int

const (
	InstructionLearnMoreProposed InstructionType = iota
	InstructionLearnMoreCompleted
	InstructionHowToSelection
	InstructionQuizProposed
	InstructionLearnMoreNavigation
	InstructionMiniGameQuizContext
	InstructionMiniGameQuizQuestion
	InstructionInactivity
)

var instructionTypeNames = map[string]InstructionType{
	"LearnMoreProposed":                InstructionLearnMoreProposed,
	"LearnMoreCompleted":               InstructionLearnMoreCompleted,
	"HowToSelection":                   InstructionHowToSelection,
	"QuizProposed":                     InstructionQuizProposed,
	"LearnMoreNavigation":              InstructionLearnMoreNavigation,
	"MiniGameQuiz_Context":             InstructionMiniGameQuizContext,
	"MiniGameQuiz_QuestionInstruction": InstructionMiniGameQuizQuestion,
	"Inactivity_Instruction":           InstructionInactivity,
}

// ParseInstructionType maps an authored type string to its tag. Unknown
// strings map to InstructionLearnMoreProposed with ok=false; callers that
// care about authoring mistakes should check ok and report, the fallback
// itself is deterministic and safe to bind against.
func ParseInstructionType(s string) (InstructionType, bool) {
	t, ok := instructionTypeNames[s]
	if !ok {
		return InstructionLearnMoreProposed, false
	}
	return t, true
}

func (t InstructionType) String() string {
	for name, tag := range instructionTypeNames {
		if tag == t {
			return name
		}
	}
	return "Unknown"
}

// InstructionRecord is one authored instruction prompt as it appears in
// instructions.json. Sound names are late-bound against the narration
// pools at bind time.
type InstructionRecord struct {
	InstructionType            string   `json:"instruction_type"`
	TitleCaptionKey            string   `json:"title_caption_key"`
	CaptionKeys                []string `json:"caption_keys"`
	EnglishNarrationSoundNames []string `json:"english_narration_sound_names"`
	FrenchNarrationSoundNames  []string `json:"french_narration_sound_names"`
}

// InstructionSet is the top-level shape of instructions.json.
type InstructionSet struct {
	Data []InstructionRecord `json:"data"`
}
