package main

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/decker502/cnake/pkg/components"
	"github.com/decker502/cnake/pkg/config"
	"github.com/decker502/cnake/pkg/entities"
	"github.com/decker502/cnake/pkg/types"
)

func newPilotFixture(t *testing.T, head components.GridPoint) (*config.GameConfig, *entities.Snake, *entities.CheesePool) {
	t.Helper()
	cfg := config.DefaultGameConfig()
	rng := rand.New(rand.NewSource(1))
	s := entities.NewSnake(entities.SnakeOptionsFromConfig(cfg), rng)
	s.Init(head)
	return cfg, s, entities.NewCheesePool(cfg, rng)
}

func TestSteer_TurnsAwayFromWall(t *testing.T) {
	cfg, s, pool := newPilotFixture(t, components.GridPoint{X: 16, Y: 7})

	key, ok := steer(s, pool, cfg.Grid.Cols, cfg.Grid.Rows)
	require.True(t, ok)
	assert.Contains(t, []types.Key{types.KeyUp, types.KeyDown}, key)
}

func TestSteer_HeadsForNearestCheese(t *testing.T) {
	cfg, s, pool := newPilotFixture(t, components.GridPoint{X: 5, Y: 7})
	pool.Get(0).Spawn(5, 2)
	pool.Get(1).Spawn(12, 14)

	key, ok := steer(s, pool, cfg.Grid.Cols, cfg.Grid.Rows)
	require.True(t, ok)
	assert.Equal(t, types.KeyUp, key)
}

func TestSteer_KeepsDirectionWhenAhead(t *testing.T) {
	cfg, s, pool := newPilotFixture(t, components.GridPoint{X: 5, Y: 7})
	pool.Get(0).Spawn(10, 7)

	_, ok := steer(s, pool, cfg.Grid.Cols, cfg.Grid.Rows)
	assert.False(t, ok)
}

func TestNearestCheese_EmptyPool(t *testing.T) {
	_, _, pool := newPilotFixture(t, components.GridPoint{X: 5, Y: 7})
	_, ok := nearestCheese(pool, components.GridPoint{})
	assert.False(t, ok)
}

func TestRun_Smoke(t *testing.T) {
	cfg := config.DefaultGameConfig()
	cfg.Seed = 7

	r := run(cfg, 3000)

	assert.Equal(t, 3000, r.ticks)
	assert.GreaterOrEqual(t, r.maxLength, 2)
	assert.Positive(t, r.maxDrawCmd)
	assert.GreaterOrEqual(t, r.bestScore, r.maxScore)
}
