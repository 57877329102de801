package arena

import (
	"math"
	"testing"

	"github.com/arcadekit/arkanoid/internal/geom"
)

const velEpsilon = 1e-9

func TestResolvePaddleBallMiss(t *testing.T) {
	p := NewPaddle(geom.Vec2{X: 400, Y: 550}, 75, 20, 8)
	b := NewBall(geom.Vec2{X: 100, Y: 100}, geom.Vec2{X: 3, Y: 8}, 10, BottomDestroys)

	if ResolvePaddleBall(p, b) {
		t.Fatal("disjoint paddle and ball should not resolve")
	}
	if b.Vel.X != 3 || b.Vel.Y != 8 || b.Pos.Y != 100 {
		t.Error("a miss must not mutate the ball")
	}
}

func TestResolvePaddleBallDeadCenter(t *testing.T) {
	// A dead-center hit on a stationary paddle reflects about (0, -1):
	// the vertical velocity flips sign, the horizontal is untouched.
	p := NewPaddle(geom.Vec2{X: 400, Y: 550}, 75, 20, 8)
	b := NewBall(geom.Vec2{X: 400, Y: 545}, geom.Vec2{X: 3, Y: 8}, 10, BottomDestroys)

	if !ResolvePaddleBall(p, b) {
		t.Fatal("overlapping paddle and ball should resolve")
	}
	if math.Abs(b.Vel.X-3) > velEpsilon {
		t.Errorf("vel.X = %v, want 3 (horizontal unaffected by a center hit)", b.Vel.X)
	}
	if math.Abs(b.Vel.Y+8) > velEpsilon {
		t.Errorf("vel.Y = %v, want -8", b.Vel.Y)
	}
	// Repositioned above the paddle's top edge (540 - 2*10).
	if b.Pos.Y != 520 {
		t.Errorf("pos.Y = %v after bounce, want 520", b.Pos.Y)
	}
}

func TestResolvePaddleBallOffCenter(t *testing.T) {
	p := NewPaddle(geom.Vec2{X: 400, Y: 550}, 75, 20, 8)
	b := NewBall(geom.Vec2{X: 430, Y: 545}, geom.Vec2{X: 0, Y: 8}, 10, BottomDestroys)

	speedBefore := b.Vel.Length()
	if !ResolvePaddleBall(p, b) {
		t.Fatal("overlapping paddle and ball should resolve")
	}

	// A hit right of center kicks the ball rightward and upward.
	if b.Vel.X <= 0 {
		t.Errorf("vel.X = %v, want > 0 for a right-of-center hit", b.Vel.X)
	}
	if b.Vel.Y >= 0 {
		t.Errorf("vel.Y = %v, want < 0", b.Vel.Y)
	}
	if math.Abs(b.Vel.Length()-speedBefore) > 1e-9 {
		t.Errorf("speed changed from %v to %v; reflection must preserve it", speedBefore, b.Vel.Length())
	}
}

func TestResolvePaddleBallMovingPaddleAddsSpin(t *testing.T) {
	p := NewPaddle(geom.Vec2{X: 400, Y: 550}, 75, 20, 8)
	p.Vel.X = 8
	b := NewBall(geom.Vec2{X: 400, Y: 545}, geom.Vec2{X: 0, Y: 8}, 10, BottomDestroys)

	ResolvePaddleBall(p, b)
	if b.Vel.X <= 0 {
		t.Errorf("vel.X = %v, want > 0 (rightward paddle motion leans the bounce right)", b.Vel.X)
	}
}

func TestResolveBrickBallMiss(t *testing.T) {
	br := NewBrick(geom.Vec2{X: 400, Y: 300}, 60, 20, 2)
	b := NewBall(geom.Vec2{X: 100, Y: 100}, geom.Vec2{X: 8, Y: 8}, 10, BottomDestroys)

	if ResolveBrickBall(br, b) {
		t.Fatal("disjoint brick and ball should not resolve")
	}
	if br.RequiredHits != 2 {
		t.Error("a miss must not damage the brick")
	}
}

func TestResolveBrickBallVerticalHit(t *testing.T) {
	// Ball centered above the brick: the vertical penetration is
	// smaller, so the bounce is vertical and upward.
	br := NewBrick(geom.Vec2{X: 400, Y: 300}, 60, 20, 2)
	b := NewBall(geom.Vec2{X: 400, Y: 285}, geom.Vec2{X: 0, Y: 8}, 10, BottomDestroys)

	if !ResolveBrickBall(br, b) {
		t.Fatal("overlapping brick and ball should resolve")
	}
	if b.Vel.Y != -8 {
		t.Errorf("vel.Y = %v, want -8 (bounce off the brick's top)", b.Vel.Y)
	}
	if b.Vel.X != 0 {
		t.Errorf("vel.X = %v, want 0 (vertical bounce leaves x alone)", b.Vel.X)
	}
	if br.RequiredHits != 1 {
		t.Errorf("RequiredHits = %d after one hit, want 1", br.RequiredHits)
	}
	if br.Destroyed() {
		t.Error("brick with a hit remaining must not be destroyed")
	}
}

func TestResolveBrickBallHorizontalHit(t *testing.T) {
	// Ball overlapping the brick's left edge: the horizontal
	// penetration is smaller, so the bounce is horizontal and leftward.
	br := NewBrick(geom.Vec2{X: 400, Y: 300}, 60, 20, 2)
	b := NewBall(geom.Vec2{X: 365, Y: 300}, geom.Vec2{X: 8, Y: 0}, 10, BottomDestroys)

	if !ResolveBrickBall(br, b) {
		t.Fatal("overlapping brick and ball should resolve")
	}
	if b.Vel.X != -8 {
		t.Errorf("vel.X = %v, want -8 (bounce off the brick's left side)", b.Vel.X)
	}
	if b.Vel.Y != 0 {
		t.Errorf("vel.Y = %v, want 0 (horizontal bounce leaves y alone)", b.Vel.Y)
	}
}

func TestBrickHitCount(t *testing.T) {
	br := NewBrick(geom.Vec2{X: 400, Y: 300}, 60, 20, 3)

	for hit := 1; hit <= 3; hit++ {
		// A fresh contact each tick, as if the ball came back around.
		b := NewBall(geom.Vec2{X: 400, Y: 285}, geom.Vec2{X: 0, Y: 8}, 10, BottomDestroys)
		if !ResolveBrickBall(br, b) {
			t.Fatalf("hit %d did not resolve", hit)
		}
		if hit < 3 && br.Destroyed() {
			t.Fatalf("brick destroyed after %d hits, want only after 3", hit)
		}
	}
	if !br.Destroyed() {
		t.Error("brick should be destroyed after the third hit")
	}
}

func TestSingleHitBrickDestroysImmediately(t *testing.T) {
	br := NewBrick(geom.Vec2{X: 400, Y: 300}, 60, 20, 1)
	b := NewBall(geom.Vec2{X: 400, Y: 285}, geom.Vec2{X: 0, Y: 8}, 10, BottomDestroys)

	ResolveBrickBall(br, b)
	if !br.Destroyed() {
		t.Error("single-hit brick should be destroyed on first contact")
	}
}
