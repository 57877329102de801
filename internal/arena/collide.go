package arena

import (
	"math"

	"github.com/arcadekit/arkanoid/internal/geom"
)

// paddleSpin scales how much of the paddle's own velocity bleeds into
// the bounce direction.
const paddleSpin = 0.05

// ResolvePaddleBall bounces the ball off the paddle when their boxes
// overlap, reports whether a hit occurred. The bounce normal is built
// from where along the paddle the ball struck plus the paddle's own
// motion; the fixed -2 vertical term guarantees the normal is never
// zero-length, so the normalize cannot fail. The ball is repositioned
// above the paddle so residual overlap cannot re-trigger next tick.
func ResolvePaddleBall(p *Paddle, b *Ball) bool {
	if !p.Bounds().Intersects(b.Bounds()) {
		return false
	}

	b.Pos.Y = p.Bounds().Top - 2*b.Radius

	posFactor := (b.Pos.X - p.Pos.X) / p.W
	velFactor := p.Vel.X * paddleSpin
	normal := geom.Vec2{X: posFactor + velFactor, Y: -2}.Normalize()
	b.Vel = b.Vel.Reflect(normal)
	return true
}

// ResolveBrickBall damages the brick and bounces the ball when their
// boxes overlap, reports whether a hit occurred. The bounce axis is the
// one with the smaller penetration. That heuristic is not a true
// time-of-impact test and can pick the wrong axis on a shallow corner
// hit; trajectories depend on it, so it stays as it is.
func ResolveBrickBall(br *Brick, b *Ball) bool {
	bb := br.Bounds()
	kb := b.Bounds()
	if !bb.Intersects(kb) {
		return false
	}

	br.RequiredHits--
	if br.RequiredHits <= 0 {
		br.MarkDestroyed()
	}

	overlapLeft := kb.Right - bb.Left
	overlapRight := bb.Right - kb.Left
	overlapTop := kb.Bottom - bb.Top
	overlapBottom := bb.Bottom - kb.Top

	fromLeft := math.Abs(overlapLeft) < math.Abs(overlapRight)
	fromTop := math.Abs(overlapTop) < math.Abs(overlapBottom)

	minOverlapX := overlapRight
	if fromLeft {
		minOverlapX = overlapLeft
	}
	minOverlapY := overlapBottom
	if fromTop {
		minOverlapY = overlapTop
	}

	if math.Abs(minOverlapX) < math.Abs(minOverlapY) {
		if fromLeft {
			b.Vel.X = -math.Abs(b.Vel.X)
		} else {
			b.Vel.X = math.Abs(b.Vel.X)
		}
	} else {
		if fromTop {
			b.Vel.Y = -math.Abs(b.Vel.Y)
		} else {
			b.Vel.Y = math.Abs(b.Vel.Y)
		}
	}
	return true
}
