package state

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/language"
)

// TourSession is the host-side state of one visitor's guided tour. The
// binding core itself is stateless; sessions only remember where the
// visitor is so the presentation layer can re-bind after a reconnect.
type TourSession struct {
	ID                uuid.UUID `json:"id"`
	Language          string    `json:"language"` // BCP 47 tag, "en" or "fr"
	CurrentCheckpoint int       `json:"current_checkpoint"`
	CurrentQuestion   int       `json:"current_question"`
	ViewedLearnMore   []int     `json:"viewed_learn_more,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func NewTourSession(lang language.Tag) *TourSession {
	return &TourSession{
		ID:        uuid.New(),
		Language:  lang.String(),
		CreatedAt: time.Now(),
	}
}

// Tag parses the stored language, falling back to English on anything
// unparseable so a corrupted session still narrates.
func (s *TourSession) Tag() language.Tag {
	tag, err := language.Parse(s.Language)
	if err != nil {
		return language.English
	}
	return tag
}

// AdvanceCheckpoint moves to the next checkpoint, clamped to the sequence.
// Returns the resulting index.
func (s *TourSession) AdvanceCheckpoint(total int) int {
	if s.CurrentCheckpoint < total-1 {
		s.CurrentCheckpoint++
	}
	return s.CurrentCheckpoint
}

// SetCheckpoint jumps to a checkpoint, clamping into [0, total).
func (s *TourSession) SetCheckpoint(index, total int) int {
	if index < 0 {
		index = 0
	}
	if total > 0 && index > total-1 {
		index = total - 1
	}
	s.CurrentCheckpoint = index
	return s.CurrentCheckpoint
}

// MarkLearnMoreViewed records that the visitor opened a learn-more entry.
// Duplicate marks are ignored.
func (s *TourSession) MarkLearnMoreViewed(index int) {
	for _, have := range s.ViewedLearnMore {
		if have == index {
			return
		}
	}
	s.ViewedLearnMore = append(s.ViewedLearnMore, index)
}

// HasViewedLearnMore reports whether a learn-more entry was opened.
func (s *TourSession) HasViewedLearnMore(index int) bool {
	for _, have := range s.ViewedLearnMore {
		if have == index {
			return true
		}
	}
	return false
}
