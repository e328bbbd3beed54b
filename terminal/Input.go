package terminal

import (
	"time"

	"PongBot/core"
	"github.com/gdamore/tcell"
)

// Terminals only report presses and auto-repeat, never releases, so a key counts as
// held for a while after its last event. HoldWindow is that while once repeats are
// flowing. A scene key waits FirstHoldWindow for its first repeat, which covers the
// usual auto-repeat delay; otherwise a held quit would read as a second press.
const (
	HoldWindow      = 120 * time.Millisecond
	FirstHoldWindow = 600 * time.Millisecond
)

// 鍵盤事件名稱對應到遊戲按鍵
var keyNames = map[string]core.Key{
	"Rune[w]": core.KeyUp,
	"Up":      core.KeyUp,
	"Rune[s]": core.KeyDown,
	"Down":    core.KeyDown,
	"Rune[ ]": core.KeyStart,
	"Rune[W]": core.KeyUp,
	"Rune[S]": core.KeyDown,
	"Rune[q]": core.KeyQuit,
	"Rune[Q]": core.KeyQuit,
}

// Input turns the terminal's key events into held-key state. It is only touched
// from the game loop goroutine; events arrive through a channel.
type Input struct {
	events  chan tcell.Event
	last    map[core.Key]time.Time
	repeat  map[core.Key]bool // 收到過連發事件
	closing bool
	now     func() time.Time
}

func NewInput(now func() time.Time) *Input {
	if now == nil {
		now = time.Now
	}
	return &Input{
		events: make(chan tcell.Event, 64),
		last:   make(map[core.Key]time.Time),
		repeat: make(map[core.Key]bool),
		now:    now,
	}
}

// Listen forwards screen events into the input until the screen is finalized or done
// is closed.
func (in *Input) Listen(screen tcell.Screen, done <-chan struct{}) {
	//建立一個goroutine去監聽鍵盤的事件
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case in.events <- ev:
			case <-done:
				return
			}
		}
	}()
}

// Drain applies every pending event without blocking. It reports whether the
// terminal was resized.
func (in *Input) Drain() (resized bool) {
	for {
		select {
		case ev := <-in.events:
			if _, ok := ev.(*tcell.EventResize); ok {
				resized = true
				continue
			}
			in.Handle(ev)
		default:
			return resized
		}
	}
}

func (in *Input) Handle(ev tcell.Event) {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return
	}
	switch key.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		in.closing = true
		return
	}
	if k, ok := keyNames[key.Name()]; ok {
		in.repeat[k] = in.IsKeyPressed(k)
		in.last[k] = in.now()
	}
}

func (in *Input) IsKeyPressed(k core.Key) bool {
	t, ok := in.last[k]
	return ok && in.now().Sub(t) < in.window(k)
}

// window is how long k stays held after its last event. Paddle keys always use the
// short window so a tap does not keep the paddle moving.
func (in *Input) window(k core.Key) time.Duration {
	if in.repeat[k] {
		return HoldWindow
	}
	switch k {
	case core.KeyStart, core.KeyQuit:
		return FirstHoldWindow
	}
	return HoldWindow
}

func (in *Input) CloseRequested() bool { return in.closing }
