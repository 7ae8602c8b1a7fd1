package service

import (
	"context"
	"encoding/json"

	"teamsort/internal/model"
)

// memSessionCache mimics the Redis store, including its JSON
// round-trip, so serialization regressions show up in service tests.
type memSessionCache struct {
	m   map[string]*model.Session
	err error
}

func newMemSessionCache() *memSessionCache {
	return &memSessionCache{m: make(map[string]*model.Session)}
}

func (c *memSessionCache) Set(_ context.Context, session *model.Session) error {
	if c.err != nil {
		return c.err
	}
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	var cp model.Session
	if err := json.Unmarshal(data, &cp); err != nil {
		return err
	}
	c.m[session.ID] = &cp
	return nil
}

func (c *memSessionCache) Get(_ context.Context, id string) (*model.Session, error) {
	if c.err != nil {
		return nil, c.err
	}
	stored, ok := c.m[id]
	if !ok {
		return nil, nil
	}
	data, err := json.Marshal(stored)
	if err != nil {
		return nil, err
	}
	var cp model.Session
	if err := json.Unmarshal(data, &cp); err != nil {
		return nil, err
	}
	return &cp, nil
}

func (c *memSessionCache) Delete(_ context.Context, id string) error {
	delete(c.m, id)
	return nil
}

type memResultRepo struct {
	games     []model.GameResult
	saved     []*model.GameResult
	saveErr   error
	recentErr error
}

func (r *memResultRepo) Save(_ context.Context, result *model.GameResult) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.saved = append(r.saved, result)
	return nil
}

func (r *memResultRepo) Recent(_ context.Context, limit int64) ([]model.GameResult, error) {
	if r.recentErr != nil {
		return nil, r.recentErr
	}
	if int64(len(r.games)) > limit {
		return r.games[:limit], nil
	}
	return r.games, nil
}

type memWeightsCache struct {
	w      map[model.Category]float64
	getErr error
	sets   int
}

func (c *memWeightsCache) Get(_ context.Context) (map[model.Category]float64, error) {
	if c.getErr != nil {
		return nil, c.getErr
	}
	return c.w, nil
}

func (c *memWeightsCache) Set(_ context.Context, weights map[model.Category]float64) error {
	c.w = weights
	c.sets++
	return nil
}
