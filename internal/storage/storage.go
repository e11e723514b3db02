package storage

import (
	"context"

	"github.com/google/uuid"

	"github.com/exhibitlab/tour-engine/pkg/content"
	"github.com/exhibitlab/tour-engine/pkg/state"
	"github.com/exhibitlab/tour-engine/pkg/tour"
)

// Store combines session persistence (Redis) with content loading
// (filesystem, optionally cached through Redis). Content loads follow the
// tolerant-read contract: the returned set is always bindable and the
// Status says whether the read succeeded.
type Store interface {
	// Health and lifecycle
	Ping(ctx context.Context) error
	Close() error

	// Content loads (filesystem-backed)
	Instructions(ctx context.Context) (tour.InstructionSet, content.Status)
	Checkpoints(ctx context.Context) (tour.CheckpointSet, content.Status)
	LearnMore(ctx context.Context) (tour.LearnMoreSet, content.Status)

	// Quiz loads the whole question set from its fixed, well-known
	// location under the data dir. Callers must check for an empty
	// question list before binding options.
	Quiz(ctx context.Context) (tour.QuizSet, content.Status)

	// Session operations (Redis-backed)
	SaveSession(ctx context.Context, id uuid.UUID, s *state.TourSession) error
	LoadSession(ctx context.Context, id uuid.UUID) (*state.TourSession, error)
	DeleteSession(ctx context.Context, id uuid.UUID) error
}
