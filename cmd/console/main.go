package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/exhibitlab/tour-engine/internal/services"
	"github.com/exhibitlab/tour-engine/pkg/binder"
	"github.com/exhibitlab/tour-engine/pkg/content"
	"github.com/exhibitlab/tour-engine/pkg/tour"
)

// console is a local tour player: it binds the content bundle against the
// asset pools in DATA_DIR and walks the checkpoint sequence in a terminal,
// the same resolution path the kiosk runtime uses.
func main() {
	dataDir := getEnv("DATA_DIR", "./data")

	// The TUI owns the terminal; binder warnings go to the diagnostics
	// panel instead of a log stream.
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	var notes []string
	diag := binder.DiagnosticFunc(func(message string) {
		notes = append(notes, message)
	})
	b := binder.New(log, diag)

	catalog := services.NewAssetCatalog(dataDir, log)
	english := catalog.Sounds(tour.Languages[0])
	french := catalog.Sounds(tour.Languages[1])
	images := catalog.Images()
	actors, actorSt := catalog.Actors()
	if !actorSt.OK {
		notes = append(notes, actorSt.Message)
	}

	contentDir := filepath.Join(dataDir, "tour")

	instructionSet, instructionSt := content.Read[tour.InstructionSet](filepath.Join(contentDir, "instructions.json"))
	checkpointSet, checkpointSt := content.Read[tour.CheckpointSet](filepath.Join(contentDir, "checkpoints.json"))
	learnMoreSet, learnMoreSt := content.Read[tour.LearnMoreSet](filepath.Join(contentDir, "learnmore.json"))
	quizSet, quizSt := content.Read[tour.QuizSet](filepath.Join(contentDir, "quiz.json"))

	instructions := b.Instructions(instructionSet, instructionSt, english, french)
	checkpoints := b.Checkpoints(checkpointSet, checkpointSt, actors, english, french)

	if len(checkpoints.Ordered) == 0 {
		fmt.Fprintf(os.Stderr, "No checkpoints found under %s. Set DATA_DIR to a content bundle.\n", contentDir)
		os.Exit(1)
	}

	ui := NewPlayerUI(playerContent{
		binder:       b,
		instructions: instructions,
		checkpoints:  checkpoints,
		learnMoreSet: learnMoreSet,
		learnMoreSt:  learnMoreSt,
		quizSet:      quizSet,
		quizSt:       quizSt,
		english:      english,
		french:       french,
		images:       images,
		notes:        notes,
	})

	p := tea.NewProgram(ui, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
