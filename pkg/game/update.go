package game

import (
	"log"

	"github.com/decker502/cnake/pkg/components"
	"github.com/decker502/cnake/pkg/systems"
	"github.com/decker502/cnake/pkg/types"
	"github.com/decker502/cnake/pkg/utils"
)

// Update 推进一帧
//
// 顺序：帧计数、得分快照、除震屏外的计时器、奶酪池；仅在游戏中或死亡时
// 推进震屏计时器、游戏粒子、蛇的舌头，并在游戏中结算移动和碰撞；
// 最后处理计时器驱动的状态切换。
func (g *Game) Update() {
	if g.state == StateQuit {
		return
	}

	g.tick++
	g.previousScore = g.score

	for id := range g.timers {
		if TimerID(id) == TimerShake {
			continue
		}
		g.timers[id].Update()
	}

	g.cheese.Update()

	if g.state == StateGameplay || g.state == StateDead {
		g.timers[TimerShake].Update()
		g.particles.Update()
		g.snake.Update()

		if g.state != StateDead {
			g.updateGameplay()
		}

		g.updateShake()
	}

	if g.timers[TimerFadeIn].JustEnded() {
		g.darkened = false
		g.setState(StateGameplay)
	}

	if g.timers[TimerDead].JustEnded() {
		g.fadeOut()
	}

	if g.timers[TimerTransition].JustEnded() && g.state == StateDead {
		log.Printf("[Game] restart after death, score %d best %d", g.score, g.bestScore)
		g.Restart()
		g.timers[TimerTransition].Start()
	}
}

func (g *Game) updateGameplay() {
	prevHead := g.snake.Head()

	cheese := g.cheese.At(prevHead)
	if cheese != nil {
		cheese.Bite()
	}

	if g.snake.Move(g.cfg.Snake.Speed) && cheese != nil {
		cheese.Eat()
		g.snake.Grow()
		g.addScore()
		g.sound.Play(types.SoundEat)
	}

	if i := g.snake.IndexOfHead(); i > 0 {
		g.emitSnakeParticlesAt(g.snake.At(i), g.cfg.Particles.OnShrink)
		g.timers[TimerShake].Start()
		g.snake.ShrinkTo(i)
		g.sound.Play(types.SoundShrink)
	}

	if !g.snake.Head().In(g.cfg.Grid.Cols, g.cfg.Grid.Rows) {
		g.emitSnakeParticlesAt(prevHead, g.cfg.Particles.OnShrink)
		g.timers[TimerShake].Start()

		g.snake.Kill()
		g.setState(StateDead)
		g.timers[TimerDead].Start()
		g.sound.Play(types.SoundDeath)
	}

	if g.tick%g.cfg.Cheese.SpawnTickDelay == 0 {
		g.spawnCheese()
	}
}

func (g *Game) addScore() {
	g.score++
	if g.score > g.bestScore {
		g.bestScore = g.score
	}
	g.timers[TimerScorePulse].Start()
}

// spawnCheese 池满属于不变量被破坏；找不到空位时跳过本轮
func (g *Game) spawnCheese() {
	i := g.cheese.FirstFree()
	if i < 0 {
		panic("cannot spawn any more cheese")
	}

	pos, ok := g.FindNewCheesePosition()
	if !ok {
		return
	}
	g.cheese.Get(i).Spawn(pos.X, pos.Y)
}

// emitSnakeParticlesAt 在格子 at 内随机位置喷出蛇色粒子
func (g *Game) emitSnakeParticlesAt(at components.GridPoint, count int) {
	p := g.cfg.Particles
	cs := g.cfg.Grid.CellSize
	color := p.Color.Color()

	g.particles.EmitN(count, func() systems.ParticleSpec {
		size := float64(utils.RandIRange(g.rng, p.Size.Min, p.Size.Max))
		return systems.ParticleSpec{
			Velocity: utils.RandFRange(g.rng, p.Velocity.Min, p.Velocity.Max, 2),
			Friction: p.Friction,
			Angle:    float64(utils.RandIRange(g.rng, 0, 359)),
			Lifetime: utils.RandIRange(g.rng, p.Lifetime.Min, p.Lifetime.Max),
			Rect: types.Rect{
				X: float64(utils.RandIRange(g.rng, at.X*cs, (at.X+1)*cs)),
				Y: float64(utils.RandIRange(g.rng, at.Y*cs, (at.Y+1)*cs)),
				W: size,
				H: size,
			},
			Color: color,
		}
	})
}

// updateShake 震屏幅度随计时器线性衰减，每帧随机取偏移
func (g *Game) updateShake() {
	shake := &g.timers[TimerShake]

	size := int(shake.UnitProgress(false) * float64(g.cfg.Effects.ShakeIntensity))
	switch {
	case size > 0:
		g.shakeX = size/2 - g.rng.Intn(size)
		g.shakeY = size/2 - g.rng.Intn(size)
	case shake.JustEnded():
		g.shakeX, g.shakeY = 0, 0
	}
}
