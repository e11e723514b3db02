package storage

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/exhibitlab/tour-engine/pkg/content"
	"github.com/exhibitlab/tour-engine/pkg/state"
	"github.com/exhibitlab/tour-engine/pkg/tour"
)

// MockStore is an in-memory Store for handler tests. Content sets and
// their read statuses are plain fields; set them up per test.
type MockStore struct {
	InstructionSet    tour.InstructionSet
	InstructionStatus content.Status
	CheckpointSet     tour.CheckpointSet
	CheckpointStatus  content.Status
	LearnMoreSet      tour.LearnMoreSet
	LearnMoreStatus   content.Status
	QuizSet           tour.QuizSet
	QuizStatus        content.Status

	sessions map[uuid.UUID]*state.TourSession
	pingErr  error
}

// Ensure MockStore implements Store interface
var _ Store = (*MockStore)(nil)

func NewMockStore() *MockStore {
	okSt := content.Status{OK: true}
	return &MockStore{
		InstructionStatus: okSt,
		CheckpointStatus:  okSt,
		LearnMoreStatus:   okSt,
		QuizStatus:        okSt,
		sessions:          make(map[uuid.UUID]*state.TourSession),
	}
}

// SetPingError configures the mock to fail on ping with the given error.
func (m *MockStore) SetPingError(err error) {
	m.pingErr = err
}

func (m *MockStore) Ping(ctx context.Context) error {
	return m.pingErr
}

func (m *MockStore) Close() error {
	return nil
}

func (m *MockStore) Instructions(ctx context.Context) (tour.InstructionSet, content.Status) {
	return m.InstructionSet, m.InstructionStatus
}

func (m *MockStore) Checkpoints(ctx context.Context) (tour.CheckpointSet, content.Status) {
	return m.CheckpointSet, m.CheckpointStatus
}

func (m *MockStore) LearnMore(ctx context.Context) (tour.LearnMoreSet, content.Status) {
	return m.LearnMoreSet, m.LearnMoreStatus
}

func (m *MockStore) Quiz(ctx context.Context) (tour.QuizSet, content.Status) {
	return m.QuizSet, m.QuizStatus
}

func (m *MockStore) SaveSession(ctx context.Context, id uuid.UUID, s *state.TourSession) error {
	if s == nil {
		return errors.New("session cannot be nil")
	}
	s.UpdatedAt = time.Now()
	m.sessions[id] = s
	return nil
}

func (m *MockStore) LoadSession(ctx context.Context, id uuid.UUID) (*state.TourSession, error) {
	s, exists := m.sessions[id]
	if !exists {
		return nil, nil
	}
	return s, nil
}

func (m *MockStore) DeleteSession(ctx context.Context, id uuid.UUID) error {
	delete(m.sessions, id)
	return nil
}
