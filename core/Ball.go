package core

import (
	"fmt"
	"strings"
)

// LaunchPolicy decides the ball's direction after it is recentered.
type LaunchPolicy int

const (
	LaunchKeep         LaunchPolicy = iota // keep the direction it had
	LaunchServe                            // always down and to the right
	LaunchRandom                           // each component ±1 at random
	LaunchTowardScorer                     // horizontally toward whoever just scored
)

var launchPolicyNames = map[LaunchPolicy]string{
	LaunchKeep:         "keep",
	LaunchServe:        "serve",
	LaunchRandom:       "random",
	LaunchTowardScorer: "toward-scorer",
}

func (l LaunchPolicy) String() string {
	if name, ok := launchPolicyNames[l]; ok {
		return name
	}
	return fmt.Sprintf("LaunchPolicy(%d)", int(l))
}

func ParseLaunchPolicy(s string) (LaunchPolicy, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for l, name := range launchPolicyNames {
		if name == s {
			return l, nil
		}
	}
	return LaunchKeep, fmt.Errorf("unknown launch policy %q", s)
}

// Contact records what the ball touched during one update.
type Contact uint8

const (
	ContactPaddle Contact = 1 << iota
	ContactWall
	ContactPlayerScored
	ContactEnemyScored
)

func (c Contact) Has(flag Contact) bool { return c&flag != 0 }

// Ball is a circle collided as its enclosing square. X and Y are the square's top-left
// corner; DX and DY are only ever -1 or +1.
type Ball struct {
	X, Y   float64
	Radius float64
	DX, DY float64
	Speed  float64
	Policy LaunchPolicy

	rng Rand
}

func NewBall(speed float64, policy LaunchPolicy, rng Rand) *Ball {
	b := &Ball{Radius: BallRadius, Speed: speed, Policy: policy, rng: rng, DX: 1, DY: 1}
	b.recenter()
	return b
}

func (b *Ball) Diameter() float64 { return b.Radius * 2 }

func (b *Ball) Bounds() Rect {
	return Rect{X: b.X, Y: b.Y, Width: b.Diameter(), Height: b.Diameter()}
}

func (b *Ball) Center() (float64, float64) { return b.X + b.Radius, b.Y + b.Radius }

// Spawn returns the coordinates Reset moves the ball to.
func Spawn() (float64, float64) { return WindowWidth / 2, WindowHeight / 2 }

func (b *Ball) recenter() { b.X, b.Y = Spawn() }

// Reset recenters the ball for a new game. With LaunchTowardScorer there is no scorer,
// so it falls back to a serve.
func (b *Ball) Reset() {
	b.recenter()
	b.launch(SidePlayer, false)
}

func (b *Ball) relaunch(scorer Side) {
	b.recenter()
	b.launch(scorer, true)
}

func (b *Ball) launch(scorer Side, scored bool) {
	switch b.Policy {
	case LaunchServe:
		b.DX, b.DY = 1, 1
	case LaunchRandom:
		b.DX, b.DY = b.coin(), b.coin()
	case LaunchTowardScorer:
		if !scored {
			b.DX, b.DY = 1, 1
			return
		}
		// 球員在左邊
		if scorer == SidePlayer {
			b.DX = -1
		} else {
			b.DX = 1
		}
	}
}

func (b *Ball) coin() float64 {
	if b.rng == nil || b.rng.Float64() < 0.5 {
		return -1
	}
	return 1
}

// Update bounces, moves and scores the ball for one frame. The collision test is a
// discrete box overlap, so a large dt can carry the ball through a paddle.
func (b *Ball) Update(dt float64, player, enemy *Paddle, board *Scoreboard) Contact {
	var contact Contact
	box := b.Bounds()

	//檢查是否有碰到球拍
	if box.Intersects(player.Bounds()) || box.Intersects(enemy.Bounds()) {
		b.DX = -b.DX
		contact |= ContactPaddle
	}
	//檢查有沒有撞到上下牆壁
	if box.Y <= 0 || box.Bottom() >= WindowHeight {
		b.DY = -b.DY
		contact |= ContactWall
	}

	b.X += b.Speed * 2 * b.DX * dt
	b.Y += b.Speed * 2 * b.DY * dt

	if b.X < 0 {
		board.Increment(SideEnemy)
		b.relaunch(SideEnemy)
		contact |= ContactEnemyScored
	} else if b.X+b.Diameter() > WindowWidth {
		board.Increment(SidePlayer)
		b.relaunch(SidePlayer)
		contact |= ContactPlayerScored
	}

	if board.AnyMax() {
		player.Reset()
		enemy.Reset()
	}
	return contact
}
