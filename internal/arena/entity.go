// Package arena holds the simulation core: the entity variants that live
// in the playfield, the registry that owns them, and the collision
// resolution rules. It depends only on geom and contains no rendering or
// input handling, so the whole package runs headless in tests.
package arena

import (
	"math"

	"github.com/arcadekit/arkanoid/internal/geom"
)

// Kind identifies one of the closed set of entity variants.
type Kind uint8

const (
	KindBall Kind = iota
	KindPaddle
	KindBrick

	kindCount
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindBall:
		return "ball"
	case KindPaddle:
		return "paddle"
	case KindBrick:
		return "brick"
	default:
		return "unknown"
	}
}

// BoundsPolicy selects what happens when a ball crosses the bottom edge
// of the arena. The other three walls always reflect.
type BoundsPolicy uint8

const (
	// BottomDestroys marks the ball destroyed when it falls past the
	// bottom edge. The classic rule: the host decides what a lost ball
	// costs.
	BottomDestroys BoundsPolicy = iota
	// BottomReflects bounces the ball off the bottom edge like the
	// other walls. Used by practice mode.
	BottomReflects
)

// Tick carries the per-step inputs an entity update may need: the arena
// extents and the paddle movement actions held this step. Passing these
// explicitly keeps entity updates free of ambient state.
type Tick struct {
	Bounds    geom.Box
	MoveLeft  bool
	MoveRight bool
}

// Entity is the uniform lifecycle contract every variant implements.
// Destruction is two-phase: MarkDestroyed only sets a flag, and the
// entity stays visible to iteration until the registry reaps it.
type Entity interface {
	Kind() Kind
	Bounds() geom.Box
	Destroyed() bool
	MarkDestroyed()
	Update(t Tick)
}

// Ball is the moving reflective ball. Pos is the center; the bounding
// box extends Radius in every direction.
type Ball struct {
	Pos    geom.Vec2
	Vel    geom.Vec2
	Radius float64
	Bottom BoundsPolicy

	destroyed bool
}

// NewBall creates a ball at the given center with the given velocity.
func NewBall(pos, vel geom.Vec2, radius float64, bottom BoundsPolicy) *Ball {
	return &Ball{Pos: pos, Vel: vel, Radius: radius, Bottom: bottom}
}

// Kind returns KindBall.
func (b *Ball) Kind() Kind { return KindBall }

// Bounds returns the ball's bounding box.
func (b *Ball) Bounds() geom.Box {
	return geom.Box{
		Left:   b.Pos.X - b.Radius,
		Right:  b.Pos.X + b.Radius,
		Top:    b.Pos.Y - b.Radius,
		Bottom: b.Pos.Y + b.Radius,
	}
}

// Destroyed reports whether the ball has been marked for removal.
func (b *Ball) Destroyed() bool { return b.destroyed }

// MarkDestroyed flags the ball for removal at the next reap.
func (b *Ball) MarkDestroyed() { b.destroyed = true }

// Update moves the ball by its velocity, then resolves wall contact.
// The comparisons are strict: a ball whose edge sits exactly on a wall
// line does not bounce that tick.
func (b *Ball) Update(t Tick) {
	b.Pos = b.Pos.Add(b.Vel)

	box := b.Bounds()
	switch {
	case box.Left < t.Bounds.Left:
		b.Vel.X = math.Abs(b.Vel.X)
	case box.Right > t.Bounds.Right:
		b.Vel.X = -math.Abs(b.Vel.X)
	}
	switch {
	case box.Top < t.Bounds.Top:
		b.Vel.Y = math.Abs(b.Vel.Y)
	case box.Bottom > t.Bounds.Bottom:
		if b.Bottom == BottomReflects {
			b.Vel.Y = -math.Abs(b.Vel.Y)
		} else {
			b.MarkDestroyed()
		}
	}
}

// Paddle is the player-controlled paddle. Pos is the center.
type Paddle struct {
	Pos   geom.Vec2
	Vel   geom.Vec2
	W, H  float64
	Speed float64

	destroyed bool
}

// NewPaddle creates a paddle centered at pos.
func NewPaddle(pos geom.Vec2, w, h, speed float64) *Paddle {
	return &Paddle{Pos: pos, W: w, H: h, Speed: speed}
}

// Kind returns KindPaddle.
func (p *Paddle) Kind() Kind { return KindPaddle }

// Bounds returns the paddle's bounding box.
func (p *Paddle) Bounds() geom.Box {
	return geom.Box{
		Left:   p.Pos.X - p.W/2,
		Right:  p.Pos.X + p.W/2,
		Top:    p.Pos.Y - p.H/2,
		Bottom: p.Pos.Y + p.H/2,
	}
}

// Destroyed reports whether the paddle has been marked for removal.
func (p *Paddle) Destroyed() bool { return p.destroyed }

// MarkDestroyed flags the paddle for removal at the next reap.
func (p *Paddle) MarkDestroyed() { p.destroyed = true }

// Update moves the paddle by its speed while the matching action is
// held and the facing edge has not crossed the arena edge. The velocity
// is recomputed every tick; it is zero when no action is held, which
// the paddle bounce formula reads to add spin.
func (p *Paddle) Update(t Tick) {
	switch {
	case t.MoveLeft && p.Bounds().Left > t.Bounds.Left:
		p.Vel.X = -p.Speed
	case t.MoveRight && p.Bounds().Right < t.Bounds.Right:
		p.Vel.X = p.Speed
	default:
		p.Vel.X = 0
	}
	p.Pos = p.Pos.Add(p.Vel)
}

// Brick is a static destructible brick. Pos is the center.
type Brick struct {
	Pos          geom.Vec2
	W, H         float64
	RequiredHits int

	destroyed bool
}

// NewBrick creates a brick centered at pos that takes requiredHits ball
// contacts before it is destroyed. A requiredHits of 1 destroys the
// brick on first contact.
func NewBrick(pos geom.Vec2, w, h float64, requiredHits int) *Brick {
	return &Brick{Pos: pos, W: w, H: h, RequiredHits: requiredHits}
}

// Kind returns KindBrick.
func (br *Brick) Kind() Kind { return KindBrick }

// Bounds returns the brick's bounding box.
func (br *Brick) Bounds() geom.Box {
	return geom.Box{
		Left:   br.Pos.X - br.W/2,
		Right:  br.Pos.X + br.W/2,
		Top:    br.Pos.Y - br.H/2,
		Bottom: br.Pos.Y + br.H/2,
	}
}

// Destroyed reports whether the brick has been marked for removal.
func (br *Brick) Destroyed() bool { return br.destroyed }

// MarkDestroyed flags the brick for removal at the next reap.
func (br *Brick) MarkDestroyed() { br.destroyed = true }

// Update is a no-op; bricks are static.
func (br *Brick) Update(Tick) {}
