package core

import (
	"fmt"
	"image/color"

	"PongBot/logger"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type Scene int

const (
	SceneMainMenu Scene = iota
	SceneGame
	SceneGameOver
)

func (s Scene) String() string {
	switch s {
	case SceneMainMenu:
		return "MainMenu"
	case SceneGame:
		return "Game"
	case SceneGameOver:
		return "GameOver"
	}
	return fmt.Sprintf("Scene(%d)", int(s))
}

// Event is anything that can move the scene machine.
type Event int

const (
	EventStart Event = iota // start key, restart on the game over screen
	EventQuit
	EventMaxScore
)

func (e Event) String() string {
	switch e {
	case EventStart:
		return "start"
	case EventQuit:
		return "quit"
	case EventMaxScore:
		return "max-score"
	}
	return fmt.Sprintf("Event(%d)", int(e))
}

type transition struct {
	next  Scene
	reset bool // reset paddles, ball and scores
	close bool // close the application instead of switching
}

var transitions = map[Scene]map[Event]transition{
	SceneMainMenu: {
		EventStart: {next: SceneGame, reset: true},
		EventQuit:  {close: true},
	},
	SceneGame: {
		EventMaxScore: {next: SceneGameOver},
		EventQuit:     {next: SceneMainMenu, reset: true},
	},
	SceneGameOver: {
		EventStart: {next: SceneGame, reset: true},
		EventQuit:  {next: SceneMainMenu, reset: true},
	},
}

// 閃爍文字的計數器
const blinkStart = 1000
const blinkFadeEnd = 2000
const blinkWrap = 2500

const TitleSize = 64
const PromptSize = 32
const ScoreOffset = 64

var White = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

type GameConfig struct {
	MaxScore  int
	BallSpeed float64
	Launch    LaunchPolicy
}

type Option func(*Game)

func WithSound(s Sound) Option {
	return func(g *Game) {
		if s != nil {
			g.sound = s
		}
	}
}

// WithSessionIDs replaces the uuid generator used to tag each played session.
func WithSessionIDs(next func() string) Option {
	return func(g *Game) { g.nextID = next }
}

// Game is the scene controller. It owns both paddles, the ball and the scoreboard and
// is driven one frame at a time from a single goroutine.
type Game struct {
	Player *Paddle
	Enemy  *Paddle
	Ball   *Ball
	Score  *Scoreboard

	scene   Scene
	closed  bool
	rng     Rand
	sound   Sound
	blink   int
	held    [KeyQuit + 1]bool
	session string
	nextID  func() string
}

func NewGame(cfg GameConfig, rng Rand, opts ...Option) *Game {
	speed := cfg.BallSpeed
	if speed <= 0 {
		speed = BallSpeed
	}
	g := &Game{
		Player: NewPaddle(SidePlayer, speed),
		Enemy:  NewPaddle(SideEnemy, speed),
		Ball:   NewBall(speed, cfg.Launch, rng),
		Score:  NewScoreboard(cfg.MaxScore),
		scene:  SceneMainMenu,
		rng:    rng,
		sound:  nopSound{},
		blink:  blinkStart,
		nextID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Game) Scene() Scene { return g.scene }

// Closed is true once the application should exit.
func (g *Game) Closed() bool { return g.closed }

// Session is the id of the current or last played session, empty before the first.
func (g *Game) Session() string { return g.session }

func (g *Game) fields() logrus.Fields {
	return logrus.Fields{
		"session": g.session,
		"scene":   g.scene.String(),
		"player":  g.Score.Player.Get(),
		"enemy":   g.Score.Enemy.Get(),
	}
}

// Update runs one frame. The win condition is checked before any input of the frame is
// applied, so no extra frame of play follows a winning point.
func (g *Game) Update(dt float64, in Input) {
	if g.closed {
		return
	}
	if in.CloseRequested() {
		g.closed = true
		logger.Log.InfoFields(g.fields(), logger.WindowClosedMsg)
		return
	}

	start, quit := g.pressed(in, KeyStart), g.pressed(in, KeyQuit)

	if g.scene == SceneGame && g.Score.AnyMax() {
		g.Fire(EventMaxScore)
		return
	}

	switch g.scene {
	case SceneMainMenu, SceneGameOver:
		if start {
			g.Fire(EventStart)
		} else if quit {
			g.Fire(EventQuit)
		}
	case SceneGame:
		g.Player.MoveByInput(dt, in)
		_, ballY := g.Ball.Center()
		g.Enemy.MoveByBot(dt, ballY, g.rng)
		g.onContact(g.Ball.Update(dt, g.Player, g.Enemy, g.Score))

		if quit {
			g.Fire(EventQuit)
		}
	}
}

// pressed reports a key going down this frame. A key held across frames fires once.
func (g *Game) pressed(in Input, k Key) bool {
	down := in.IsKeyPressed(k)
	was := g.held[k]
	g.held[k] = down
	return down && !was
}

func (g *Game) onContact(c Contact) {
	if c.Has(ContactPaddle) {
		g.sound.Play(CuePaddle)
	}
	if c.Has(ContactWall) {
		g.sound.Play(CueWall)
	}
	if c.Has(ContactPlayerScored) || c.Has(ContactEnemyScored) {
		g.sound.Play(CueScore)
		logger.Log.DebugFields(g.fields(), logger.PointScoredMsg)
	}
}

// Fire applies ev to the current scene. Events the scene has no row for are ignored
// and reported false.
func (g *Game) Fire(ev Event) bool {
	t, ok := transitions[g.scene][ev]
	if !ok {
		return false
	}
	from := g.scene
	if t.close {
		g.closed = true
		logger.Log.InfoFields(g.fields(), logger.QuitMsg)
		return true
	}
	if t.reset {
		g.Reset()
	}
	g.scene = t.next

	switch {
	case t.next == SceneGame:
		g.session = g.nextID()
		logger.Log.InfoFields(g.fields(), logger.SessionStartMsg)
	case t.next == SceneGameOver:
		g.sound.Play(CueGameOver)
		winner, _ := g.Score.Winner()
		logger.Log.InfoFields(g.fields(), fmt.Sprintf(logger.GameOverMsg, winner))
	}
	logger.Log.DebugFields(logrus.Fields{"from": from.String(), "to": t.next.String(), "event": ev.String()},
		logger.SceneChangeMsg)
	return true
}

// Reset puts paddles and ball at their spawn points and zeroes both scores.
func (g *Game) Reset() {
	g.Player.Reset()
	g.Enemy.Reset()
	g.Ball.Reset()
	g.Score.Reset()
}

func (g *Game) Render(r Renderer) {
	switch g.scene {
	case SceneMainMenu:
		g.renderMainMenu(r)
	case SceneGame:
		r.DrawRect(g.Player.Bounds(), White)
		r.DrawRect(g.Enemy.Bounds(), White)
		x, y := g.Ball.Center()
		r.DrawCircle(x, y, g.Ball.Radius, White)
		g.renderScore(r)
	case SceneGameOver:
		g.renderGameOver(r)
	}
}

func (g *Game) renderScore(r Renderer) {
	r.DrawText(fmt.Sprint(g.Score.Player.Get()), WindowWidth/2-ScoreOffset, 0, TitleSize, White, AlignLeft)
	r.DrawText(fmt.Sprint(g.Score.Enemy.Get()), WindowWidth/2+ScoreOffset, 0, TitleSize, White, AlignLeft)
}

func (g *Game) renderMainMenu(r Renderer) {
	r.DrawText(WindowTitle, WindowWidth/2, WindowHeight/2, TitleSize, White, AlignCenter)
	r.DrawText("Press Space to start | Q to quit", WindowWidth/2-220, WindowHeight/2+40,
		PromptSize, g.blinkColor(), AlignLeft)
}

func (g *Game) renderGameOver(r Renderer) {
	if winner, ok := g.Score.Winner(); ok {
		text := fmt.Sprintf("Winner: %s - %d", winner, g.Score.Get(winner))
		r.DrawText(text, WindowWidth/2, WindowHeight/2, TitleSize, White, AlignCenter)
	}
	r.DrawText("Press Space to restart | Q to quit", WindowWidth/2-250, WindowHeight/2+40,
		PromptSize, g.blinkColor(), AlignLeft)
}

// blinkColor advances the prompt's fade by one rendered frame.
func (g *Game) blinkColor() color.RGBA {
	g.blink++
	if g.blink < blinkFadeEnd {
		v := uint8(255 - g.blink/8)
		return color.RGBA{R: v, G: v, B: v, A: 0xff}
	}
	if g.blink >= blinkWrap {
		g.blink = blinkStart
	}
	return White
}
