package sound

import (
	"math"
	"sync"
	"time"

	"PongBot/core"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// closeSpeaker releases the audio device.
var closeSpeaker = speaker.Close

type tone struct {
	freq     float64
	duration time.Duration
}

// 每種音效的頻率與長度
var cueTones = map[core.Cue]tone{
	core.CuePaddle:   {freq: 440, duration: 60 * time.Millisecond},
	core.CueWall:     {freq: 330, duration: 40 * time.Millisecond},
	core.CueScore:    {freq: 220, duration: 200 * time.Millisecond},
	core.CueGameOver: {freq: 110, duration: 400 * time.Millisecond},
}

// Player plays game cues through the system speaker. Until Init succeeds it stays
// silent.
type Player struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	volume float64 // in halvings, 0 is unchanged, -1 is half
	ready  bool
}

func New(volume float64) *Player {
	return &Player{mixer: &beep.Mixer{}, volume: volume}
}

// Init opens the speaker. On failure the player stays silent and the error is
// returned for logging.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ready {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.ready = true
	return nil
}

func (p *Player) Play(c core.Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ready {
		return
	}
	s := Cue(c, p.volume)
	if s == nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Close stops every cue and releases the audio device. Init may open it again.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ready {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	closeSpeaker()
	p.ready = false
}

// Cue builds the streamer for c, nil if c has no tone.
func Cue(c core.Cue, volume float64) beep.Streamer {
	t, ok := cueTones[c]
	if !ok {
		return nil
	}
	return &effects.Volume{
		Streamer: Square(t.freq, t.duration, sampleRate),
		Base:     2,
		Volume:   volume,
	}
}

// Square is a square wave at freq lasting d, at a quarter of full scale.
func Square(freq float64, d time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(d)
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		for i := range samples {
			if pos >= total {
				return i, i > 0
			}
			phase := math.Mod(float64(pos)*freq/float64(rate), 1)
			v := 0.25
			if phase >= 0.5 {
				v = -0.25
			}
			samples[i][0], samples[i][1] = v, v
			pos++
		}
		return len(samples), true
	})
}
