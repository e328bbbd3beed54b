package core

import (
	"math"
	"math/rand"
	"testing"
)

const eps = 1e-9

// --- Spawn ---

func TestNewPaddle_SpawnPoints(t *testing.T) {
	player := NewPaddle(SidePlayer, BallSpeed)
	if player.X != 10 || player.Y != 344 {
		t.Fatalf("player spawn = (%v,%v), want (10,344)", player.X, player.Y)
	}
	enemy := NewPaddle(SideEnemy, BallSpeed)
	if enemy.X != 1254 || enemy.Y != 344 {
		t.Fatalf("enemy spawn = (%v,%v), want (1254,344)", enemy.X, enemy.Y)
	}
	if enemy.Width != PaddleWidth || enemy.Height != PaddleHeight {
		t.Fatalf("unexpected paddle size %vx%v", enemy.Width, enemy.Height)
	}
}

func TestPaddleReset_ReturnsHome(t *testing.T) {
	p := NewPaddle(SidePlayer, BallSpeed)
	for i := 0; i < 50; i++ {
		p.MoveByInput(0.05, newInput(KeyDown))
	}
	p.Reset()
	hx, hy := p.Home()
	if p.X != hx || p.Y != hy {
		t.Fatalf("reset to (%v,%v), want (%v,%v)", p.X, p.Y, hx, hy)
	}
}

// --- Input ---

func TestMoveByInput_Up(t *testing.T) {
	p := NewPaddle(SidePlayer, BallSpeed)
	p.MoveByInput(0.01, newInput(KeyUp))
	want := 344 - BallSpeed*0.01*2
	if math.Abs(p.Y-want) > eps {
		t.Fatalf("y = %v, want %v", p.Y, want)
	}
}

func TestMoveByInput_NoKeys(t *testing.T) {
	p := NewPaddle(SidePlayer, BallSpeed)
	p.MoveByInput(0.01, newInput())
	if p.Y != 344 {
		t.Fatalf("paddle moved without input: y = %v", p.Y)
	}
}

func TestMoveByInput_StaysInBounds(t *testing.T) {
	for _, k := range []Key{KeyUp, KeyDown} {
		p := NewPaddle(SidePlayer, BallSpeed)
		for i := 0; i < 200; i++ {
			p.MoveByInput(0.05, newInput(k))
			if p.Y < 0 || p.Y > WindowHeight-p.Height {
				t.Fatalf("key %v frame %d: y = %v out of bounds", k, i, p.Y)
			}
		}
	}
}

// --- Bot ---

func TestMoveByBot_TracksBallAbove(t *testing.T) {
	p := NewPaddle(SideEnemy, BallSpeed)
	// Float64 0.75 maps to r = 0.5.
	p.MoveByBot(0.01, 100, &seqRand{values: []float64{0.75}})
	want := 344 - BallSpeed*0.01
	if math.Abs(p.Y-want) > eps {
		t.Fatalf("y = %v, want %v", p.Y, want)
	}
}

func TestMoveByBot_TracksBallBelow(t *testing.T) {
	p := NewPaddle(SideEnemy, BallSpeed)
	p.MoveByBot(0.01, 700, &seqRand{values: []float64{0.75}})
	want := 344 + BallSpeed*0.01
	if math.Abs(p.Y-want) > eps {
		t.Fatalf("y = %v, want %v", p.Y, want)
	}
}

func TestMoveByBot_AlignedDoesNotMove(t *testing.T) {
	p := NewPaddle(SideEnemy, BallSpeed)
	p.MoveByBot(0.01, p.CenterY(), &seqRand{values: []float64{0.99}})
	if p.Y != 344 {
		t.Fatalf("aligned bot moved to %v", p.Y)
	}
}

func TestMoveByBot_JitterIgnoresBall(t *testing.T) {
	p := NewPaddle(SideEnemy, BallSpeed)
	// Float64 0.25 maps to r = -0.5: nudged up although the ball is below.
	p.MoveByBot(0.01, 700, &seqRand{values: []float64{0.25}})
	want := 344 - 0.5*BallSpeed*0.01
	if math.Abs(p.Y-want) > eps {
		t.Fatalf("y = %v, want %v", p.Y, want)
	}
}

func TestMoveByBot_ThresholdIsJitter(t *testing.T) {
	p := NewPaddle(SideEnemy, BallSpeed)
	// r = 0.2 exactly is not above the threshold, so it jitters downward by 0.2 steps.
	p.MoveByBot(0.01, 0, &seqRand{values: []float64{0.6}})
	want := 344 + 0.2*BallSpeed*0.01
	if math.Abs(p.Y-want) > 1e-6 {
		t.Fatalf("y = %v, want %v", p.Y, want)
	}
}

func TestMoveByBot_StaysInBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	p := NewPaddle(SideEnemy, BallSpeed)
	for i := 0; i < 5000; i++ {
		target := 0.0
		if (i/300)%2 == 1 {
			target = WindowHeight
		}
		p.MoveByBot(0.1, target, rng)
		if p.Y < 0 || p.Y > WindowHeight-p.Height {
			t.Fatalf("frame %d: y = %v out of bounds", i, p.Y)
		}
	}
}
