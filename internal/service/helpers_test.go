package service

import (
	"context"
	"encoding/json"
	"errors"

	"skillbridge/internal/model"
)

// In-memory fakes standing in for Mongo and Redis in service tests.

type memUserRepo struct {
	users map[string]*model.User
	// upsertFailures makes the next N UpsertProfile calls fail.
	upsertFailures int
	upsertCalls    int
}

func newMemUserRepo(users ...*model.User) *memUserRepo {
	r := &memUserRepo{users: map[string]*model.User{}}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *memUserRepo) Create(ctx context.Context, user *model.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *memUserRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	copied := *u
	return &copied, nil
}

func (r *memUserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) UpsertProfile(ctx context.Context, userID, profile string) error {
	r.upsertCalls++
	if r.upsertFailures > 0 {
		r.upsertFailures--
		return errors.New("write concern error")
	}
	u, ok := r.users[userID]
	if !ok {
		u = &model.User{ID: userID}
		r.users[userID] = u
	}
	u.AptitudeProfile = profile
	return nil
}

// memFlowCache round-trips state through JSON to mimic Redis copy semantics.
type memFlowCache struct {
	entries map[string][]byte
}

func newMemFlowCache() *memFlowCache {
	return &memFlowCache{entries: map[string][]byte{}}
}

func (c *memFlowCache) Get(ctx context.Context, userID string) (*model.FlowState, error) {
	data, ok := c.entries[userID]
	if !ok {
		return nil, nil
	}
	var state model.FlowState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

func (c *memFlowCache) Set(ctx context.Context, userID string, state *model.FlowState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return err
	}
	c.entries[userID] = data
	return nil
}

func (c *memFlowCache) Delete(ctx context.Context, userID string) error {
	delete(c.entries, userID)
	return nil
}

type memInsightCache struct {
	jobs        map[string]*model.JobMatches
	paths       map[string]*model.LearningPath
	invalidated int
}

func newMemInsightCache() *memInsightCache {
	return &memInsightCache{
		jobs:  map[string]*model.JobMatches{},
		paths: map[string]*model.LearningPath{},
	}
}

func (c *memInsightCache) GetJobMatches(ctx context.Context, userID string) (*model.JobMatches, error) {
	return c.jobs[userID], nil
}

func (c *memInsightCache) SetJobMatches(ctx context.Context, userID string, matches *model.JobMatches) error {
	c.jobs[userID] = matches
	return nil
}

func (c *memInsightCache) GetLearningPath(ctx context.Context, userID string) (*model.LearningPath, error) {
	return c.paths[userID], nil
}

func (c *memInsightCache) SetLearningPath(ctx context.Context, userID string, path *model.LearningPath) error {
	c.paths[userID] = path
	return nil
}

func (c *memInsightCache) Invalidate(ctx context.Context, userID string) error {
	delete(c.jobs, userID)
	delete(c.paths, userID)
	c.invalidated++
	return nil
}
