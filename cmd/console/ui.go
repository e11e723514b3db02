package main

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"golang.org/x/text/language"

	"github.com/exhibitlab/tour-engine/pkg/assets"
	"github.com/exhibitlab/tour-engine/pkg/binder"
	"github.com/exhibitlab/tour-engine/pkg/content"
	"github.com/exhibitlab/tour-engine/pkg/tour"
)

type playerMode int

const (
	modeTour playerMode = iota
	modeLearnMore
	modeQuiz
)

// playerContent is everything bound at startup plus the raw sets the UI
// re-binds as the visitor moves between checkpoints.
type playerContent struct {
	binder       *binder.Binder
	instructions binder.InstructionIndex
	checkpoints  binder.CheckpointBinding
	learnMoreSet tour.LearnMoreSet
	learnMoreSt  content.Status
	quizSet      tour.QuizSet
	quizSt       content.Status
	english      []assets.Sound
	french       []assets.Sound
	images       []assets.Image
	notes        []string
}

var (
	tourPanelStyle = lipgloss.NewStyle().
			PaddingTop(1).
			PaddingBottom(1).
			PaddingLeft(3).
			PaddingRight(0)

	metaPanelStyle = lipgloss.NewStyle().
			PaddingTop(1).
			PaddingRight(2)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")). // pink
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")). // purple
			Bold(true)

	bodyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")) // green

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("205")).
			Bold(true)

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")) // yellow

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")) // teal

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey

	separatorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

// PlayerUI is the BubbleTea model that runs the player.
// https://github.com/charmbracelet/bubbletea
type PlayerUI struct {
	pc           playerContent
	tourViewport viewport.Model
	metaViewport viewport.Model
	ready        bool
	width        int
	height       int

	mode       playerMode
	checkpoint int
	lang       language.Tag

	learnMore []binder.LearnMoreItem
	selected  int

	question    int
	options     binder.QuizOptionIndex
	quizProblem string

	status string
}

func NewPlayerUI(pc playerContent) PlayerUI {
	tourVp := viewport.New(50, 20)
	tourVp.MouseWheelEnabled = true
	metaVp := viewport.New(20, 20)

	return PlayerUI{
		pc:           pc,
		tourViewport: tourVp,
		metaViewport: metaVp,
		lang:         language.English,
	}
}

func (m PlayerUI) Init() tea.Cmd {
	return nil
}

func (m PlayerUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var vpCmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		tourWidth := int(float64(m.width)*0.7) - 4
		metaWidth := m.width - tourWidth - 6

		m.tourViewport.Width = tourWidth - 2
		m.tourViewport.Height = m.height - 5
		m.metaViewport.Width = metaWidth - 2
		m.metaViewport.Height = m.height - 4

		m.ready = true
		m.refresh()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "n", "right":
			m.advance(1)
		case "p", "left":
			m.advance(-1)
		case "l":
			if m.lang == language.English {
				m.lang = language.French
			} else {
				m.lang = language.English
			}
			m.status = "Language: " + m.lang.String()
			m.refresh()
		case "m":
			m.enterLearnMore()
		case "z":
			m.enterQuiz()
		case "up":
			m.moveSelection(-1)
		case "down":
			m.moveSelection(1)
		case "c":
			m.copyCitation()
		case "esc":
			m.mode = modeTour
			m.status = ""
			m.refresh()
		}
	}

	m.tourViewport, vpCmd = m.tourViewport.Update(msg)
	return m, vpCmd
}

// advance moves the active checkpoint, clamping at both ends of the tour.
func (m *PlayerUI) advance(delta int) {
	next := m.checkpoint + delta
	if next < 0 || next >= len(m.pc.checkpoints.Ordered) {
		return
	}
	m.checkpoint = next
	m.mode = modeTour
	m.status = ""
	m.refresh()
}

func (m *PlayerUI) enterLearnMore() {
	cp := m.pc.checkpoints.Ordered[m.checkpoint]
	if !cp.HasLearnMore {
		m.status = "No learn-more content at this checkpoint"
		m.refresh()
		return
	}
	m.learnMore = m.pc.binder.LearnMore(m.pc.learnMoreSet, m.pc.learnMoreSt,
		m.checkpoint, m.pc.english, m.pc.french, m.pc.images)
	m.mode = modeLearnMore
	m.selected = 0
	m.status = ""
	m.refresh()
}

func (m *PlayerUI) enterQuiz() {
	cp := m.pc.checkpoints.Ordered[m.checkpoint]
	if !cp.HasQuiz || len(m.pc.quizSet.Questions) == 0 {
		m.status = "No quiz at this checkpoint"
		m.refresh()
		return
	}
	m.mode = modeQuiz
	m.question = 0
	m.bindQuestion()
	m.refresh()
}

func (m *PlayerUI) bindQuestion() {
	options, err := m.pc.binder.QuizOptions(m.pc.quizSet, m.question, m.pc.english, m.pc.french)
	if err != nil {
		m.options = nil
		m.quizProblem = err.Error()
		return
	}
	m.options = options
	m.quizProblem = ""
}

func (m *PlayerUI) moveSelection(delta int) {
	switch m.mode {
	case modeLearnMore:
		next := m.selected + delta
		if next >= 0 && next < len(m.learnMore) {
			m.selected = next
			m.refresh()
		}
	case modeQuiz:
		next := m.question + delta
		if next >= 0 && next < len(m.pc.quizSet.Questions) {
			m.question = next
			m.bindQuestion()
			m.refresh()
		}
	}
}

// copyCitation puts the selected learn-more item's source line on the
// system clipboard so museum staff can paste it into exhibit notes.
func (m *PlayerUI) copyCitation() {
	if m.mode != modeLearnMore || m.selected >= len(m.learnMore) {
		return
	}
	source := m.learnMore[m.selected].Source
	if source == "" {
		m.status = "Selected item has no citation"
		m.refresh()
		return
	}
	if err := clipboard.WriteAll(source); err != nil {
		m.status = "Clipboard unavailable: " + err.Error()
	} else {
		m.status = "Citation copied: " + source
	}
	m.refresh()
}

func (m *PlayerUI) refresh() {
	if !m.ready {
		return
	}
	width := m.tourViewport.Width - 6
	if width < 20 {
		width = 20
	}

	switch m.mode {
	case modeLearnMore:
		m.tourViewport.SetContent(m.renderLearnMore(width))
	case modeQuiz:
		m.tourViewport.SetContent(m.renderQuiz(width))
	default:
		m.tourViewport.SetContent(m.renderCheckpoint(width))
	}
	m.metaViewport.SetContent(m.renderMetadata())
	m.tourViewport.GotoTop()
}

func (m *PlayerUI) renderCheckpoint(width int) string {
	cp := m.pc.checkpoints.Ordered[m.checkpoint]

	var content strings.Builder
	content.WriteString(titleStyle.Render("TOUR ENGINE") + "\n\n")
	content.WriteString(labelStyle.Render(fmt.Sprintf("Checkpoint %d of %d", m.checkpoint+1, len(m.pc.checkpoints.Ordered))) + "\n")
	content.WriteString(separatorStyle.Render(strings.Repeat("─", width)) + "\n\n")

	if cp.Actor != nil {
		content.WriteString(labelStyle.Render("Scene object: ") + cp.Actor.Tag() + "\n")
	} else {
		content.WriteString(warnStyle.Render("Scene object unresolved: "+cp.ActorStatus) + "\n")
	}
	content.WriteString(labelStyle.Render("Camera frame: ") + fmt.Sprintf("%d", cp.Frame))
	if cp.StopCamera {
		content.WriteString("  (camera stops here)")
	}
	content.WriteString("\n\n")

	content.WriteString(m.renderNarration(cp.Narration, width))

	if cp.HasLearnMore {
		content.WriteString("\n" + statusStyle.Render(fmt.Sprintf("%d learn-more option(s) - press m", cp.LearnMoreCount)) + "\n")
	}
	if cp.HasQuiz {
		content.WriteString(statusStyle.Render("Quiz available - press z") + "\n")
	}
	return content.String()
}

func (m *PlayerUI) renderLearnMore(width int) string {
	var content strings.Builder
	content.WriteString(titleStyle.Render("LEARN MORE") + "\n\n")

	if len(m.learnMore) == 0 {
		content.WriteString("No entries target this checkpoint.\n")
		return content.String()
	}

	for i, item := range m.learnMore {
		title := item.Narration.TitleKey
		if title == "" {
			title = fmt.Sprintf("entry %d", i+1)
		}
		if i == m.selected {
			content.WriteString(selectedStyle.Render("▶ "+title) + "\n")
		} else {
			content.WriteString("  " + title + "\n")
		}
	}

	item := m.learnMore[m.selected]
	content.WriteString("\n" + separatorStyle.Render(strings.Repeat("─", width)) + "\n\n")
	content.WriteString(m.renderNarration(item.Narration, width))

	if len(item.Images) > 0 {
		content.WriteString(labelStyle.Render("Images:") + "\n")
		for _, img := range item.Images {
			content.WriteString("  • " + img.Name() + "\n")
		}
	}
	if item.Source != "" {
		content.WriteString(labelStyle.Render("Source: ") + item.Source + "\n")
	}
	return content.String()
}

func (m *PlayerUI) renderQuiz(width int) string {
	var content strings.Builder
	content.WriteString(titleStyle.Render("QUIZ") + "\n\n")

	if m.quizProblem != "" {
		content.WriteString(warnStyle.Render(m.quizProblem) + "\n")
		return content.String()
	}

	q := m.pc.quizSet.Questions[m.question]
	content.WriteString(labelStyle.Render(fmt.Sprintf("Question %d of %d: ", m.question+1, len(m.pc.quizSet.Questions))))
	content.WriteString(q.QuestionKey + "\n\n")

	for i := 0; i < len(q.Options); i++ {
		n := m.options[i]
		content.WriteString(labelStyle.Render(fmt.Sprintf("%d. ", i+1)) + n.TitleKey + "\n")
		for _, caption := range n.CaptionKeys {
			content.WriteString("   " + bodyStyle.Render(wordwrap.String(caption, width-3)) + "\n")
		}
		for _, s := range n.SoundsFor(m.lang) {
			content.WriteString(helpStyle.Render("   ♪ "+s.Name()) + "\n")
		}
	}
	return content.String()
}

func (m *PlayerUI) renderNarration(n tour.Narration, width int) string {
	var content strings.Builder
	if n.TitleKey != "" {
		content.WriteString(labelStyle.Render("Title: ") + n.TitleKey + "\n\n")
	}
	for _, caption := range n.CaptionKeys {
		content.WriteString(bodyStyle.Render(wordwrap.String(caption, width)) + "\n")
	}
	if len(n.CaptionKeys) > 0 {
		content.WriteString("\n")
	}

	sounds := n.SoundsFor(m.lang)
	if len(sounds) > 0 {
		content.WriteString(labelStyle.Render(fmt.Sprintf("Narration (%s):", m.lang)) + "\n")
		for _, s := range sounds {
			content.WriteString("  ♪ " + s.Name() + "\n")
		}
		content.WriteString("\n")
	}
	return content.String()
}

func (m *PlayerUI) renderMetadata() string {
	var content strings.Builder
	content.WriteString(titleStyle.Render("TOUR STATE") + "\n\n")

	content.WriteString("Checkpoint:\n")
	content.WriteString(fmt.Sprintf("%d of %d\n\n", m.checkpoint+1, len(m.pc.checkpoints.Ordered)))

	content.WriteString("Language:\n")
	content.WriteString(m.lang.String() + "\n\n")

	content.WriteString("Instructions:\n")
	content.WriteString(fmt.Sprintf("%d bound\n\n", len(m.pc.instructions)))

	if len(m.pc.notes) > 0 {
		content.WriteString(warnStyle.Render("Diagnostics:") + "\n")
		for _, note := range m.pc.notes {
			content.WriteString("• " + note + "\n")
		}
		content.WriteString("\n")
	}

	content.WriteString("Commands:\n")
	content.WriteString("• n/p: Checkpoints\n")
	content.WriteString("• l: Language\n")
	content.WriteString("• m: Learn more\n")
	content.WriteString("• z: Quiz\n")
	content.WriteString("• c: Copy citation\n")
	content.WriteString("• Esc: Back\n")
	content.WriteString("• q: Quit\n")

	return content.String()
}

func (m PlayerUI) View() string {
	if !m.ready {
		return "\n  Initializing..."
	}

	tourWidth := int(float64(m.width)*0.7) - 4
	metaWidth := m.width - tourWidth - 6

	status := m.status
	if status == "" {
		status = helpStyle.Render("n/p move · l language · m learn more · z quiz · q quit")
	} else {
		status = statusStyle.Render(status)
	}

	tourPanel := tourPanelStyle.Width(tourWidth).Height(m.height - 2).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			m.tourViewport.View(),
			separatorStyle.Render(strings.Repeat("─", tourWidth-4)),
			status,
		),
	)

	metaPanel := metaPanelStyle.Width(metaWidth).Height(m.height - 2).Render(
		m.metaViewport.View(),
	)

	return lipgloss.JoinHorizontal(lipgloss.Top, tourPanel, metaPanel)
}
