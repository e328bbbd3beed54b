package core

// botReactThreshold splits the bot's draw: above it the bot tracks the ball, at or below
// it the bot jitters.
const botReactThreshold = 0.2

type Paddle struct {
	Rect
	NickName string
	Speed    float64

	homeX, homeY float64
}

// NewPaddle places a paddle at its side's spawn point. The spawn y is one full paddle
// width (16 px) above the window's vertical center, so the paddle is not centered.
func NewPaddle(side Side, speed float64) *Paddle {
	x := float64(PaddleMargin)
	if side == SideEnemy {
		x = WindowWidth - PaddleWidth - PaddleMargin
	}
	y := float64(WindowHeight/2 - PaddleWidth)

	return &Paddle{
		Rect:     Rect{X: x, Y: y, Width: PaddleWidth, Height: PaddleHeight},
		NickName: side.String(),
		Speed:    speed,
		homeX:    x,
		homeY:    y,
	}
}

func (p *Paddle) Bounds() Rect { return p.Rect }

func (p *Paddle) CenterY() float64 { return p.Y + p.Height/2 }

// Home returns the spawn coordinates.
func (p *Paddle) Home() (float64, float64) { return p.homeX, p.homeY }

func (p *Paddle) Reset() {
	p.X, p.Y = p.homeX, p.homeY
}

// MoveByInput moves the paddle at twice its speed while up or down is held.
func (p *Paddle) MoveByInput(dt float64, in Input) {
	step := p.Speed * dt * 2
	if in.IsKeyPressed(KeyUp) && p.Y > 0 {
		p.Y -= step
	}
	if in.IsKeyPressed(KeyDown) && p.Bottom() < WindowHeight {
		p.Y += step
	}
	p.clamp()
}

// MoveByBot applies one frame of the bot heuristic: mostly a single step toward the
// ball's vertical center, otherwise a random nudge in either direction.
func (p *Paddle) MoveByBot(dt, ballCenterY float64, rng Rand) {
	r := rng.Float64()*2 - 1
	if r > botReactThreshold {
		center := p.CenterY()
		step := p.Speed * dt
		if center < ballCenterY && p.Bottom() < WindowHeight {
			p.Y += step
		} else if center > ballCenterY && p.Y > 0 {
			p.Y -= step
		}
	} else {
		p.Y += r * p.Speed * dt
	}
	p.clamp()
}

// clamp keeps 0 <= y <= WindowHeight-height.
func (p *Paddle) clamp() {
	if p.Y < 0 {
		p.Y = 0
	}
	if limit := WindowHeight - p.Height; p.Y > limit {
		p.Y = limit
	}
}
