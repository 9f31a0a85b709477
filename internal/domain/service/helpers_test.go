package service

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/stayvia/stayvia-server/internal/adapters/logger"
)

func testLogger() *logger.Logger {
	return &logger.Logger{SugaredLogger: zap.NewNop().Sugar()}
}

// fakeCache records invalidations and optionally serves canned hits. Safe for
// the concurrent fetches of the feed.
type fakeCache struct {
	mu          sync.Mutex
	invalidated []string
	hits        map[string]func(dest interface{})
	sets        []string
}

func (c *fakeCache) Get(_ context.Context, dest interface{}, name string, _ ...string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if fill, ok := c.hits[name]; ok {
		fill(dest)
		return true, nil
	}
	return false, nil
}

func (c *fakeCache) Set(_ context.Context, _ interface{}, name string, _ ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sets = append(c.sets, name)
	return nil
}

func (c *fakeCache) Invalidate(_ context.Context, name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.invalidated = append(c.invalidated, name)
	return nil
}
