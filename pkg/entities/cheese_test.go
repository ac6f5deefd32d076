package entities

import (
	"math/rand"
	"testing"

	"github.com/decker502/cnake/pkg/components"
	"github.com/decker502/cnake/pkg/config"
	"github.com/decker502/cnake/pkg/systems"
	"github.com/decker502/cnake/pkg/types"
)

func newTestCheesePool() *CheesePool {
	return NewCheesePool(config.DefaultGameConfig(), rand.New(rand.NewSource(7)))
}

func TestCheese_Lifecycle(t *testing.T) {
	pool := newTestCheesePool()
	c := pool.Get(0)

	if c.IsSpawned() {
		t.Fatal("fresh cheese should be inert")
	}

	c.Spawn(3, 4)
	if !c.IsSpawned() || c.Pos() != (components.GridPoint{X: 3, Y: 4}) {
		t.Fatalf("Spawn: spawned=%v pos=%v", c.IsSpawned(), c.Pos())
	}

	c.Bite()
	if !c.IsSpawned() {
		t.Error("Bite must not change spawned state")
	}

	c.Eat()
	if c.IsSpawned() {
		t.Error("Eat should clear spawned")
	}
}

func TestCheese_BiteEmitsInsideCell(t *testing.T) {
	cfg := config.DefaultGameConfig()
	pool := NewCheesePool(cfg, rand.New(rand.NewSource(3)))
	c := pool.Get(0)
	c.Spawn(2, 5)

	n := c.Bite()
	if n != cfg.Cheese.ParticlesOnBite {
		t.Fatalf("Bite emitted %d, want %d", n, cfg.Cheese.ParticlesOnBite)
	}

	cs := float64(cfg.Grid.CellSize)
	effect := BiteEffectFromConfig(cfg)
	for i := 0; i < n; i++ {
		p := pool.Particles().Get(i)
		if p.X < 2*cs || p.X > 3*cs || p.Y < 5*cs || p.Y > 6*cs {
			t.Errorf("particle %d at (%v,%v) outside cell", i, p.X, p.Y)
		}
		if p.Friction != effect.Friction {
			t.Errorf("particle %d friction = %v, want %v", i, p.Friction, effect.Friction)
		}
		if p.Velocity < effect.Velocity.Min || p.Velocity > effect.Velocity.Max {
			t.Errorf("particle %d velocity %v outside [%v,%v]", i, p.Velocity, effect.Velocity.Min, effect.Velocity.Max)
		}
		if int(p.W) < effect.Size.Min || int(p.W) > effect.Size.Max {
			t.Errorf("particle %d size %v outside range", i, p.W)
		}
	}
}

func TestCheese_BiteOnSaturatedPoolIsDropped(t *testing.T) {
	pool := newTestCheesePool()
	for i := 0; i < systems.ParticlesCapacity; i++ {
		pool.Particles().Emit(systems.ParticleSpec{Lifetime: 100, Friction: 0.5, Rect: types.Rect{W: 1, H: 1}})
	}

	c := pool.Get(0)
	c.Spawn(0, 0)
	if n := c.Bite(); n != 0 {
		t.Errorf("Bite on saturated pool emitted %d", n)
	}
}

func TestBiteEffectFromConfig(t *testing.T) {
	cfg := config.DefaultGameConfig()
	e := BiteEffectFromConfig(cfg)

	if e.Velocity.Min != cfg.Particles.Velocity.Min*cfg.Cheese.VelocityScale {
		t.Errorf("velocity min = %v", e.Velocity.Min)
	}
	if want := int(float64(cfg.Particles.Size.Max) / cfg.Cheese.SizeDivisor); e.Size.Max != want {
		t.Errorf("size max = %d, want %d", e.Size.Max, want)
	}
}

func TestCheesePool_AtAndFirstFree(t *testing.T) {
	pool := newTestCheesePool()

	if got := pool.FirstFree(); got != 0 {
		t.Fatalf("FirstFree = %d, want 0", got)
	}

	pool.Get(0).Spawn(1, 1)
	pool.Get(1).Spawn(2, 2)

	if got := pool.FirstFree(); got != 2 {
		t.Errorf("FirstFree = %d, want 2", got)
	}
	if c := pool.At(components.GridPoint{X: 2, Y: 2}); c != pool.Get(1) {
		t.Errorf("At(2,2) = %p, want cheese 1", c)
	}
	if c := pool.At(components.GridPoint{X: 0, Y: 0}); c != nil {
		t.Error("At on an empty cell should be nil")
	}

	pool.Get(0).Eat()
	if pool.At(components.GridPoint{X: 1, Y: 1}) != nil {
		t.Error("eaten cheese must not be found")
	}
	if got := pool.FirstFree(); got != 0 {
		t.Errorf("FirstFree after eat = %d, want 0", got)
	}
	if got := pool.SpawnedCount(); got != 1 {
		t.Errorf("SpawnedCount = %d, want 1", got)
	}
}

func TestCheesePool_FullPool(t *testing.T) {
	pool := newTestCheesePool()
	for i := 0; i < CheeseCapacity; i++ {
		pool.Get(i).Spawn(i%17, i/17)
	}
	if got := pool.FirstFree(); got != -1 {
		t.Errorf("FirstFree on full pool = %d, want -1", got)
	}
}

func TestCheesePool_ResetAndDraw(t *testing.T) {
	pool := newTestCheesePool()
	pool.Get(0).Spawn(1, 1)
	pool.Get(0).Bite()

	var dl types.DrawList
	pool.Draw(&dl, types.LayerMap)
	if got := dl.Count(types.DrawTexture, types.LayerMap); got != 2 {
		t.Errorf("textures = %d, want cheese and its shadow", got)
	}
	if got := dl.Count(types.DrawFillRect, types.LayerMap); got == 0 {
		t.Error("bite particles not drawn")
	}

	pool.Reset()
	if pool.SpawnedCount() != 0 || pool.Particles().ActiveCount() != 0 {
		t.Error("Reset should clear cheese and particles")
	}

	// cheese must still be wired to the pool after Reset
	pool.Get(3).Spawn(0, 0)
	if n := pool.Get(3).Bite(); n == 0 {
		t.Error("cheese lost its particle pool after Reset")
	}
}

func TestCheesePool_UpdateDecaysParticles(t *testing.T) {
	pool := newTestCheesePool()
	c := pool.Get(0)
	c.Spawn(0, 0)
	c.Bite()

	for i := 0; i < config.DefaultGameConfig().Cheese.Lifetime.Max; i++ {
		pool.Update()
	}
	if got := pool.Particles().ActiveCount(); got != 0 {
		t.Errorf("ActiveCount = %d, want 0", got)
	}
}
