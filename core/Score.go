package core

type Score struct {
	score    int
	maxScore int
}

func (s *Score) Get() int { return s.score }

func (s *Score) IsMax() bool { return s.score == s.maxScore }

// Update adds a point. It never passes the max.
func (s *Score) Update() {
	if s.score < s.maxScore {
		s.score++
	}
}

func (s *Score) Reset() { s.score = 0 }

// Scoreboard owns the player's and the enemy's scores.
type Scoreboard struct {
	Player Score
	Enemy  Score
}

func NewScoreboard(maxScore int) *Scoreboard {
	if maxScore < 1 {
		maxScore = MaxScore
	}
	return &Scoreboard{
		Player: Score{maxScore: maxScore},
		Enemy:  Score{maxScore: maxScore},
	}
}

func (b *Scoreboard) side(s Side) *Score {
	if s == SidePlayer {
		return &b.Player
	}
	return &b.Enemy
}

func (b *Scoreboard) Increment(s Side) { b.side(s).Update() }

func (b *Scoreboard) Get(s Side) int { return b.side(s).Get() }

func (b *Scoreboard) IsMax(s Side) bool { return b.side(s).IsMax() }

func (b *Scoreboard) AnyMax() bool { return b.Player.IsMax() || b.Enemy.IsMax() }

// Winner returns the side holding the max score. ok is false while nobody has won.
func (b *Scoreboard) Winner() (side Side, ok bool) {
	switch {
	case b.Player.IsMax():
		return SidePlayer, true
	case b.Enemy.IsMax():
		return SideEnemy, true
	}
	return SidePlayer, false
}

func (b *Scoreboard) Max() int { return b.Player.maxScore }

func (b *Scoreboard) Reset() {
	b.Player.Reset()
	b.Enemy.Reset()
}
