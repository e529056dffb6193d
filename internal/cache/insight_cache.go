package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"skillbridge/internal/model"
)

// InsightCache handles Redis operations for AI-derived recommendations.
// Job matches and learning paths are pure functions of the persisted profile,
// so cached values stay valid until the profile is overwritten.
type InsightCache interface {
	GetJobMatches(ctx context.Context, userID string) (*model.JobMatches, error)
	SetJobMatches(ctx context.Context, userID string, matches *model.JobMatches) error

	GetLearningPath(ctx context.Context, userID string) (*model.LearningPath, error)
	SetLearningPath(ctx context.Context, userID string, path *model.LearningPath) error

	// Invalidate drops cached recommendations, called when a new profile is
	// persisted for the user.
	Invalidate(ctx context.Context, userID string) error
}

type insightCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewInsightCache creates a new insight cache
func NewInsightCache(client *redis.Client) InsightCache {
	return &insightCache{
		client: client,
		ttl:    12 * time.Hour,
	}
}

func (c *insightCache) jobsKey(userID string) string {
	return fmt.Sprintf("user:%s:jobs", userID)
}

func (c *insightCache) learningKey(userID string) string {
	return fmt.Sprintf("user:%s:learning", userID)
}

func (c *insightCache) GetJobMatches(ctx context.Context, userID string) (*model.JobMatches, error) {
	data, err := c.client.Get(ctx, c.jobsKey(userID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var matches model.JobMatches
	if err := json.Unmarshal([]byte(data), &matches); err != nil {
		return nil, err
	}
	return &matches, nil
}

func (c *insightCache) SetJobMatches(ctx context.Context, userID string, matches *model.JobMatches) error {
	data, err := json.Marshal(matches)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.jobsKey(userID), data, c.ttl).Err()
}

func (c *insightCache) GetLearningPath(ctx context.Context, userID string) (*model.LearningPath, error) {
	data, err := c.client.Get(ctx, c.learningKey(userID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var path model.LearningPath
	if err := json.Unmarshal([]byte(data), &path); err != nil {
		return nil, err
	}
	return &path, nil
}

func (c *insightCache) SetLearningPath(ctx context.Context, userID string, path *model.LearningPath) error {
	data, err := json.Marshal(path)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.learningKey(userID), data, c.ttl).Err()
}

func (c *insightCache) Invalidate(ctx context.Context, userID string) error {
	return c.client.Del(ctx, c.jobsKey(userID), c.learningKey(userID)).Err()
}
