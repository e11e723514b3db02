package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/exhibitlab/tour-engine/pkg/tour"
)

// validate checks an authored content directory before it ships to a
// kiosk: strict JSON decoding, recognized instruction types, learn-more
// rows pointing at real checkpoints, and per-checkpoint counts that
// match the authored flags.
func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <content-dir>\n", os.Args[0])
		os.Exit(1)
	}

	dir := os.Args[1]
	validator := &ContentValidator{}

	if err := validator.validateDir(dir); err != nil {
		fmt.Fprintf(os.Stderr, "Validation failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Content bundle is valid!")
}

type ContentValidator struct {
	errors []string
}

func (v *ContentValidator) validateDir(dir string) error {
	fmt.Printf("Validating %s...\n", dir)

	v.errors = nil

	var instructions tour.InstructionSet
	if v.decodeFile(filepath.Join(dir, "instructions.json"), &instructions) {
		v.validateInstructions(&instructions)
	}

	var checkpoints tour.CheckpointSet
	haveCheckpoints := v.decodeFile(filepath.Join(dir, "checkpoints.json"), &checkpoints)
	if haveCheckpoints {
		v.validateCheckpoints(&checkpoints)
	}

	var learnMore tour.LearnMoreSet
	if v.decodeFile(filepath.Join(dir, "learnmore.json"), &learnMore) && haveCheckpoints {
		v.validateLearnMore(&learnMore, &checkpoints)
	}

	var quiz tour.QuizSet
	if v.decodeFile(filepath.Join(dir, "quiz.json"), &quiz) {
		v.validateQuiz(&quiz)
	}

	if len(v.errors) > 0 {
		return fmt.Errorf("validation errors in %s:\n%s", dir, strings.Join(v.errors, "\n"))
	}

	return nil
}

// decodeFile strict-decodes one content file. A missing file is not an
// error here; the engine tolerates absent content at runtime.
func (v *ContentValidator) decodeFile(path string, out any) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Printf("  %s: not present, skipping\n", filepath.Base(path))
			return false
		}
		v.addError(fmt.Sprintf("failed to read %s: %v", path, err))
		return false
	}

	if !json.Valid(data) {
		v.addError(fmt.Sprintf("%s contains invalid JSON", filepath.Base(path)))
		return false
	}

	decoder := json.NewDecoder(strings.NewReader(string(data)))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(out); err != nil {
		v.addError(fmt.Sprintf("%s failed strict JSON unmarshaling: %v", filepath.Base(path), err))
		return false
	}
	return true
}

func (v *ContentValidator) validateInstructions(set *tour.InstructionSet) {
	seen := make(map[string]bool)
	for i, rec := range set.Data {
		if _, ok := tour.ParseInstructionType(rec.InstructionType); !ok {
			v.addError(fmt.Sprintf("instructions[%d] has unrecognized instruction_type '%s'", i, rec.InstructionType))
		}
		if seen[rec.InstructionType] {
			v.addError(fmt.Sprintf("instructions[%d] repeats instruction_type '%s' - the later row wins", i, rec.InstructionType))
		}
		seen[rec.InstructionType] = true
		v.validateKeyFormat(fmt.Sprintf("instructions[%d].title_caption_key", i), rec.TitleCaptionKey)
	}
}

func (v *ContentValidator) validateCheckpoints(set *tour.CheckpointSet) {
	for i, rec := range set.Data {
		if rec.CheckpointName == "" {
			v.addError(fmt.Sprintf("checkpoints[%d] has empty checkpoint_name", i))
		}
		if rec.FrameNumber < 0 {
			v.addError(fmt.Sprintf("checkpoints[%d] has negative checkpoint_frame_number", i))
		}
		if rec.HasLearnMoreOption && rec.NumLearnMoreOptions <= 0 {
			v.addError(fmt.Sprintf("checkpoints[%d] sets has_learn_more_option but num_of_learn_more_options is %d", i, rec.NumLearnMoreOptions))
		}
		if !rec.HasLearnMoreOption && rec.NumLearnMoreOptions > 0 {
			v.addError(fmt.Sprintf("checkpoints[%d] has num_of_learn_more_options %d but has_learn_more_option is false", i, rec.NumLearnMoreOptions))
		}
	}
}

func (v *ContentValidator) validateLearnMore(set *tour.LearnMoreSet, checkpoints *tour.CheckpointSet) {
	counts := make(map[int]int)
	for i, rec := range set.Data {
		if rec.CheckpointIndex < 0 || rec.CheckpointIndex >= len(checkpoints.Data) {
			v.addError(fmt.Sprintf("learnmore[%d] has checkpoint_index %d outside [0, %d)", i, rec.CheckpointIndex, len(checkpoints.Data)))
			continue
		}
		counts[rec.CheckpointIndex]++
		if len(rec.ImageSources) > len(rec.ImageNames) {
			v.addError(fmt.Sprintf("learnmore[%d] has more image_sources than image_names", i))
		}
	}

	for i, rec := range checkpoints.Data {
		if rec.NumLearnMoreOptions != counts[i] {
			v.addError(fmt.Sprintf("checkpoints[%d] declares %d learn-more options but %d rows target it", i, rec.NumLearnMoreOptions, counts[i]))
		}
	}
}

func (v *ContentValidator) validateQuiz(set *tour.QuizSet) {
	for i, q := range set.Questions {
		if q.QuestionKey == "" {
			v.addError(fmt.Sprintf("quiz question %d has empty question_key", i))
		}
		if len(q.Options) == 0 {
			v.addError(fmt.Sprintf("quiz question %d has no options", i))
		}
		for j, opt := range q.Options {
			if opt.Name == "" {
				v.addError(fmt.Sprintf("quiz question %d option %d has empty name", i, j))
			}
		}
	}
}

func (v *ContentValidator) validateKeyFormat(fieldName, key string) {
	if key == "" {
		return
	}
	if !validKeyRegex.MatchString(key) {
		v.addError(fmt.Sprintf("%s '%s' should be lowercase snake_case", fieldName, key))
	}
}

func (v *ContentValidator) addError(msg string) {
	v.errors = append(v.errors, "  - "+msg)
}

var validKeyRegex = regexp.MustCompile(`^[a-z][a-z0-9_]*[a-z0-9]$|^[a-z]$`)
