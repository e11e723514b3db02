package storage

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/exhibitlab/tour-engine/pkg/content"
	"github.com/exhibitlab/tour-engine/pkg/tour"
)

const (
	instructionsFile = "instructions.json"
	checkpointsFile  = "checkpoints.json"
	learnMoreFile    = "learnmore.json"
	quizFile         = "quiz.json"

	contentKeyPrefix = "content:"
)

// RedisStore implements the Store interface using Redis for sessions and
// the filesystem for authored content. When cacheTTL is positive, content
// file bytes are also cached in Redis so a fleet of kiosks can share one
// content volume without hammering it.
type RedisStore struct {
	client   *redis.Client
	logger   *slog.Logger
	dataDir  string
	cacheTTL time.Duration
}

// Ensure RedisStore implements Store interface
var _ Store = (*RedisStore)(nil)

// NewRedisStore creates a new Redis store instance. A zero cacheTTL
// disables the content cache; every load then reads from disk.
func NewRedisStore(redisURL string, dataDir string, cacheTTL time.Duration, logger *slog.Logger) *RedisStore {
	rdb := redis.NewClient(&redis.Options{
		Addr: redisURL,
	})

	if dataDir == "" {
		dataDir = "./data"
	}

	return &RedisStore{
		client:   rdb,
		logger:   logger,
		dataDir:  dataDir,
		cacheTTL: cacheTTL,
	}
}

// Health and lifecycle methods

func (r *RedisStore) Ping(ctx context.Context) error {
	cmd := r.client.Ping(ctx)
	if err := cmd.Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

func (r *RedisStore) Close() error {
	if err := r.client.Close(); err != nil {
		r.logger.Error("Failed to close Redis connection", "error", err)
		return err
	}
	return nil
}

// Content loads

func (r *RedisStore) Instructions(ctx context.Context) (tour.InstructionSet, content.Status) {
	return loadContent[tour.InstructionSet](ctx, r, instructionsFile)
}

func (r *RedisStore) Checkpoints(ctx context.Context) (tour.CheckpointSet, content.Status) {
	return loadContent[tour.CheckpointSet](ctx, r, checkpointsFile)
}

func (r *RedisStore) LearnMore(ctx context.Context) (tour.LearnMoreSet, content.Status) {
	return loadContent[tour.LearnMoreSet](ctx, r, learnMoreFile)
}

// Quiz always reads from the fixed quiz.json location under the data dir.
func (r *RedisStore) Quiz(ctx context.Context) (tour.QuizSet, content.Status) {
	return loadContent[tour.QuizSet](ctx, r, quizFile)
}

// loadContent reads one content file, going through the Redis byte cache
// when enabled. Cache failures degrade to a disk read, never to a load
// failure.
func loadContent[T any](ctx context.Context, r *RedisStore, name string) (T, content.Status) {
	path := filepath.Join(r.dataDir, "tour", name)

	if r.cacheTTL <= 0 {
		return content.Read[T](path)
	}

	key := contentKeyPrefix + name
	cached, err := r.client.Get(ctx, key).Bytes()
	if err == nil && len(cached) > 0 {
		return content.ReadBytes[T](cached, name)
	}
	if err != nil && err != redis.Nil {
		r.logger.Warn("Content cache read failed, falling back to disk", "key", key, "error", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		// Let the reader produce its usual diagnostic for the host.
		return content.Read[T](path)
	}

	v, st := content.ReadBytes[T](data, name)
	if st.OK {
		if err := r.client.Set(ctx, key, data, r.cacheTTL).Err(); err != nil {
			r.logger.Warn("Content cache write failed", "key", key, "error", err)
		}
	}
	return v, st
}
