// Package arkanoid implements the game: an arena registry of balls,
// a paddle and bricks driven by a fixed-tick session state machine.
package arkanoid

import (
	"github.com/arcadekit/arkanoid/internal/arena"
	"github.com/arcadekit/arkanoid/internal/config"
	"github.com/arcadekit/arkanoid/internal/core"
	"github.com/arcadekit/arkanoid/internal/geom"
	"github.com/arcadekit/arkanoid/internal/registry"
)

// Session states.
const (
	StatePaused   = "paused"
	StatePlaying  = "playing"
	StateGameOver = "gameover"
	StateVictory  = "victory"
)

// Mode selects the bottom-wall rule.
type Mode int

const (
	// ModeClassic destroys a ball that falls past the bottom; losing
	// every life ends the session.
	ModeClassic Mode = iota
	// ModePractice reflects off the bottom like the other walls, so a
	// ball is never lost.
	ModePractice
)

// configPath stores the custom config path set via CLI.
var configPath string

// difficultyPreset stores the difficulty preset set via CLI.
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// Game implements the arkanoid game logic.
type Game struct {
	mode Mode

	reg *arena.Registry

	state     string
	score     int
	lives     int
	tickCount int

	runtime    core.RuntimeConfig
	cfg        config.ArkanoidConfig
	difficulty *config.DifficultyManager

	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

// New creates a classic-mode game instance.
func New() *Game {
	return &Game{mode: ModeClassic, reg: arena.NewRegistry()}
}

// NewPractice creates a practice-mode game instance.
func NewPractice() *Game {
	return &Game{mode: ModePractice, reg: arena.NewRegistry()}
}

// ID returns the unique identifier for this mode.
func (g *Game) ID() string {
	if g.mode == ModePractice {
		return "practice"
	}
	return "arkanoid"
}

// Title returns the display name for this mode.
func (g *Game) Title() string {
	if g.mode == ModePractice {
		return "Arkanoid (Practice)"
	}
	return "Arkanoid"
}

// Reset initializes or restarts the session. The arena is rebuilt from
// the config and the session starts paused.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadArkanoid(configPath)
	if err != nil {
		cfg = config.DefaultArkanoidConfig()
	}
	if difficultyPreset != "" {
		config.ApplyArkanoidPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	g.minScreenW = 40
	g.minScreenH = 15
	g.screenTooSmall = runtime.ScreenW < g.minScreenW || runtime.ScreenH < g.minScreenH

	g.score = 0
	g.lives = cfg.Gameplay.Lives
	g.tickCount = 0
	g.state = StatePaused

	g.reg.Clear()
	g.reg.Create(arena.NewPaddle(
		geom.Vec2{X: cfg.Arena.Width / 2, Y: cfg.Arena.Height - cfg.Paddle.BottomOffset},
		cfg.Paddle.Width, cfg.Paddle.Height, cfg.Paddle.Speed,
	))
	buildBricks(g.reg, cfg.Bricks)
	g.spawnBall()
}

// spawnBall creates a ball at the arena center. The serve speed is
// sampled from the difficulty manager, so it only changes between
// serves, never mid-flight.
func (g *Game) spawnBall() {
	speed := g.difficulty.BallSpeed(g.cfg.Ball.Speed, g.score, g.tickCount)
	bottom := arena.BottomDestroys
	if g.mode == ModePractice {
		bottom = arena.BottomReflects
	}
	g.reg.Create(arena.NewBall(
		geom.Vec2{X: g.cfg.Arena.Width / 2, Y: g.cfg.Arena.Height / 2},
		geom.Vec2{X: -speed, Y: -speed},
		g.cfg.Ball.Radius, bottom,
	))
}

// arenaBounds returns the playfield extents in logical units.
func (g *Game) arenaBounds() geom.Box {
	return geom.Box{Left: 0, Right: g.cfg.Arena.Width, Top: 0, Bottom: g.cfg.Arena.Height}
}

// Step advances the session by one tick. One tick is an update phase,
// an exhaustive resolution phase and a reap, strictly in that order.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	// Restart works from any state.
	if in.Has(core.ActionRestart) {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	// Pause only toggles between paused and playing.
	if in.Has(core.ActionPause) {
		switch g.state {
		case StatePaused:
			g.state = StatePlaying
		case StatePlaying:
			g.state = StatePaused
		}
	}

	if g.state != StatePlaying {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++

	// Serve and terminal-state checks come first; the tick that sets a
	// terminal state still completes its simulation pass.
	if g.reg.Count(arena.KindBall) == 0 {
		g.lives--
		g.spawnBall()
	}
	if g.reg.Count(arena.KindBrick) == 0 {
		g.state = StateVictory
	}
	if g.lives <= 0 {
		g.state = StateGameOver
	}

	t := arena.Tick{
		Bounds:    g.arenaBounds(),
		MoveLeft:  in.Has(core.ActionLeft),
		MoveRight: in.Has(core.ActionRight),
	}
	g.reg.UpdateAll(t)
	g.resolveCollisions()
	g.reg.RemoveDestroyed()

	return core.StepResult{State: g.State()}
}

// resolveCollisions runs every ball against every brick in creation
// order, then against the paddle. Later resolutions see earlier
// velocity edits within the same tick.
func (g *Game) resolveCollisions() {
	arena.ForKind(g.reg, arena.KindBall, func(ball *arena.Ball) {
		arena.ForKind(g.reg, arena.KindBrick, func(brick *arena.Brick) {
			if brick.Destroyed() {
				return
			}
			if arena.ResolveBrickBall(brick, ball) {
				g.score += g.cfg.Gameplay.HitPoints
				if brick.Destroyed() {
					g.score += g.cfg.Gameplay.DestroyBonus
				}
			}
		})
		arena.ForKind(g.reg, arena.KindPaddle, func(paddle *arena.Paddle) {
			arena.ResolvePaddleBall(paddle, ball)
		})
	})
}

// State returns the current session state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Lives:    g.lives,
		GameOver: g.state == StateGameOver || g.state == StateVictory,
		Won:      g.state == StateVictory,
		Paused:   g.state == StatePaused,
	}
}

// Register the modes with the catalog.
func init() {
	registry.Register("arkanoid", func() registry.Game {
		return New()
	})
	registry.Register("practice", func() registry.Game {
		return NewPractice()
	})
}
