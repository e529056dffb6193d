package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"skillbridge/internal/model"
)

// FlowCache handles Redis operations for in-progress assessment flow state
type FlowCache interface {
	Get(ctx context.Context, userID string) (*model.FlowState, error)
	Set(ctx context.Context, userID string, state *model.FlowState) error
	Delete(ctx context.Context, userID string) error
}

type flowCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewFlowCache creates a new flow cache
func NewFlowCache(client *redis.Client) FlowCache {
	return &flowCache{
		client: client,
		ttl:    24 * time.Hour,
	}
}

func (c *flowCache) flowKey(userID string) string {
	return fmt.Sprintf("user:%s:flow", userID)
}

func (c *flowCache) Get(ctx context.Context, userID string) (*model.FlowState, error) {
	data, err := c.client.Get(ctx, c.flowKey(userID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var state model.FlowState
	if err := json.Unmarshal([]byte(data), &state); err != nil {
		return nil, err
	}
	return &state, nil
}

func (c *flowCache) Set(ctx context.Context, userID string, state *model.FlowState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.flowKey(userID), data, c.ttl).Err()
}

func (c *flowCache) Delete(ctx context.Context, userID string) error {
	return c.client.Del(ctx, c.flowKey(userID)).Err()
}
