package entities

import (
	"math/rand"

	"github.com/decker502/cnake/pkg/components"
	"github.com/decker502/cnake/pkg/config"
	"github.com/decker502/cnake/pkg/systems"
	"github.com/decker502/cnake/pkg/types"
	"github.com/decker502/cnake/pkg/utils"
)

// CheeseCapacity 奶酪池的固定容量
const CheeseCapacity = 256

// BiteEffect 奶酪被咬时喷出的碎屑参数
type BiteEffect struct {
	Count    int
	Velocity config.FloatRange
	Lifetime config.IntRange
	Size     config.IntRange
	Friction float64
	Color    types.Color
}

// BiteEffectFromConfig 由配置推导碎屑参数：速度放大、尺寸缩小
func BiteEffectFromConfig(cfg *config.GameConfig) BiteEffect {
	p, c := cfg.Particles, cfg.Cheese
	return BiteEffect{
		Count: c.ParticlesOnBite,
		Velocity: config.FloatRange{
			Min: p.Velocity.Min * c.VelocityScale,
			Max: p.Velocity.Max * c.VelocityScale,
		},
		Lifetime: c.Lifetime,
		Size: config.IntRange{
			Min: int(float64(p.Size.Min) / c.SizeDivisor),
			Max: int(float64(p.Size.Max) / c.SizeDivisor),
		},
		Friction: c.Friction,
		Color:    c.ParticleColor.Color(),
	}
}

// Cheese 可被蛇吃掉的奶酪
type Cheese struct {
	at      components.GridPoint
	spawned bool

	pool *CheesePool
}

// Spawn 把奶酪放在 (x, y)，调用方需保证该格空闲
func (c *Cheese) Spawn(x, y int) {
	c.at = components.GridPoint{X: x, Y: y}
	c.spawned = true
}

// Bite 在奶酪所在格内喷出碎屑，不改变奶酪状态
// 粒子池满时多余的碎屑被丢弃。
func (c *Cheese) Bite() int {
	p := c.pool
	e := p.bite
	cs := p.cellSize
	return p.particles.EmitN(e.Count, func() systems.ParticleSpec {
		size := float64(utils.RandIRange(p.rng, e.Size.Min, e.Size.Max))
		return systems.ParticleSpec{
			Velocity: utils.RandFRange(p.rng, e.Velocity.Min, e.Velocity.Max, 2),
			Friction: e.Friction,
			Angle:    float64(utils.RandIRange(p.rng, 0, 360)),
			Lifetime: utils.RandIRange(p.rng, e.Lifetime.Min, e.Lifetime.Max),
			Rect: types.Rect{
				X: float64(utils.RandIRange(p.rng, c.at.X*cs, (c.at.X+1)*cs)),
				Y: float64(utils.RandIRange(p.rng, c.at.Y*cs, (c.at.Y+1)*cs)),
				W: size,
				H: size,
			},
			Color: e.Color,
		}
	})
}

// Eat 奶酪被吃掉
func (c *Cheese) Eat() {
	c.spawned = false
}

// IsSpawned 报告奶酪是否在场上
func (c *Cheese) IsSpawned() bool {
	return c.spawned
}

// Pos 返回奶酪所在格
func (c *Cheese) Pos() components.GridPoint {
	return c.at
}

// Draw 绘制投影和奶酪贴图，未生成的奶酪不绘制
func (c *Cheese) Draw(dl *types.DrawList, layer types.Layer) {
	if !c.spawned {
		return
	}
	cs := float64(c.pool.cellSize)
	r := types.Rect{X: float64(c.at.X) * cs, Y: float64(c.at.Y) * cs, W: cs, H: cs}
	dl.BlitShadow(layer, types.TextureCheese, nil, r, 0, float64(int(c.pool.shadowOffset/1.5)), c.pool.shadowAlpha)
	dl.Blit(layer, types.TextureCheese, nil, r, 0, types.White)
}

// CheesePool 固定容量的奶酪池
//
// 池内所有奶酪共享池自己的粒子系统，奶酪碎屑因此与游戏的蛇粒子分开更新和绘制。
type CheesePool struct {
	cheese    [CheeseCapacity]Cheese
	particles *systems.ParticleSystem

	rng  *rand.Rand
	bite BiteEffect

	cellSize     int
	shadowOffset float64
	shadowAlpha  uint8
}

// NewCheesePool 创建奶酪池
func NewCheesePool(cfg *config.GameConfig, rng *rand.Rand) *CheesePool {
	p := &CheesePool{
		particles:    systems.NewParticleSystem(),
		rng:          rng,
		bite:         BiteEffectFromConfig(cfg),
		cellSize:     cfg.Grid.CellSize,
		shadowOffset: float64(cfg.Effects.ShadowOffset),
		shadowAlpha:  uint8(cfg.Effects.ShadowAlpha),
	}
	p.Reset()
	return p
}

// Reset 清空所有奶酪和碎屑
func (p *CheesePool) Reset() {
	p.particles.Reset()
	for i := range p.cheese {
		p.cheese[i] = Cheese{pool: p}
	}
}

// Update 推进碎屑
func (p *CheesePool) Update() {
	p.particles.Update()
}

// Draw 先绘制碎屑再绘制奶酪
func (p *CheesePool) Draw(dl *types.DrawList, layer types.Layer) {
	p.particles.Draw(dl, layer)
	for i := range p.cheese {
		p.cheese[i].Draw(dl, layer)
	}
}

// At 返回位于 pos 的已生成奶酪，没有时返回 nil
func (p *CheesePool) At(pos components.GridPoint) *Cheese {
	for i := range p.cheese {
		c := &p.cheese[i]
		if c.spawned && c.at == pos {
			return c
		}
	}
	return nil
}

// FirstFree 返回第一个未生成奶酪的下标，池满时返回 -1
func (p *CheesePool) FirstFree() int {
	for i := range p.cheese {
		if !p.cheese[i].spawned {
			return i
		}
	}
	return -1
}

// Get 返回第 i 个奶酪
func (p *CheesePool) Get(i int) *Cheese {
	return &p.cheese[i]
}

// SpawnedCount 返回场上奶酪数量
func (p *CheesePool) SpawnedCount() int {
	n := 0
	for i := range p.cheese {
		if p.cheese[i].spawned {
			n++
		}
	}
	return n
}

// Particles 返回奶酪碎屑共享的粒子系统
func (p *CheesePool) Particles() *systems.ParticleSystem {
	return p.particles
}
