package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Player produces short feedback tones for entry events.
// Initialization failure is non-fatal; the pad runs silent.
type Player struct {
	enabled bool
}

// NewPlayer initializes the speaker and returns a player.
// The error is informational only; the returned player is always
// usable and simply stays silent when init failed.
func NewPlayer() (*Player, error) {
	err := speaker.Init(sampleRate, sampleRate.N(time.Second/10))
	return &Player{enabled: err == nil}, err
}

// CommitTone plays a short high blip acknowledging a pushed entry
func (p *Player) CommitTone() {
	p.play(880, 50*time.Millisecond)
}

// ErrorTone plays a low buzz for a rejected keystroke
func (p *Player) ErrorTone() {
	p.play(220, 80*time.Millisecond)
}

func (p *Player) play(freq float64, d time.Duration) {
	if !p.enabled {
		return
	}
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(d), sine))
}

// Close releases the speaker
func (p *Player) Close() {
	if p.enabled {
		speaker.Close()
	}
}
