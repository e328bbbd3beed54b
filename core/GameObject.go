package core

const WindowWidth = 1280   // 視窗寬度
const WindowHeight = 720   // 視窗高度
const WindowTitle = "Pong!!!"

const PaddleWidth = 16  // 球拍寬度
const PaddleHeight = 64 // 球拍高度
const PaddleMargin = 10 // 球拍與視窗邊緣距離
const BallRadius = 16   // 球半徑
const BallSpeed = 320.0
const MaxScore = 5 // 遊戲結束分數

// Rect is an axis-aligned box in window coordinates, origin top-left.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

func (r Rect) Right() float64  { return r.X + r.Width }
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Intersects reports whether the two boxes share a non-empty area. Touching edges do
// not count.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() &&
		r.Y < o.Bottom() && o.Y < r.Bottom()
}

// Side names the owner of a paddle or a score.
type Side int

const (
	SidePlayer Side = iota
	SideEnemy
)

func (s Side) String() string {
	if s == SidePlayer {
		return "Player"
	}
	return "Enemy"
}
