package main

import (
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

const (
	sampleRate = 48000
	beepVolume = 0.5
)

// Speaker plays the two game sound effects: a low beep when a piece locks
// and a higher one when rows clear. Tones are synthesized once up front.
type Speaker struct {
	ctx   *audio.Context
	lock  *audio.Player
	clear *audio.Player
}

func NewSpeaker() *Speaker {
	ctx := audio.NewContext(sampleRate)
	return &Speaker{
		ctx:   ctx,
		lock:  newBeep(ctx, 300, 100*time.Millisecond),
		clear: newBeep(ctx, 600, 150*time.Millisecond),
	}
}

// newBeep renders a sine tone as 16-bit stereo PCM and wraps it in a player.
func newBeep(ctx *audio.Context, freq float64, d time.Duration) *audio.Player {
	samples := int(float64(sampleRate) * d.Seconds())
	buf := make([]byte, samples*4)
	for i := 0; i < samples; i++ {
		v := int16(beepVolume * math.MaxInt16 * math.Sin(2*math.Pi*freq*float64(i)/sampleRate))
		buf[i*4] = byte(v)
		buf[i*4+1] = byte(v >> 8)
		buf[i*4+2] = byte(v)
		buf[i*4+3] = byte(v >> 8)
	}
	return ctx.NewPlayerFromBytes(buf)
}

func (s *Speaker) PlayLock()  { replay(s.lock) }
func (s *Speaker) PlayClear() { replay(s.clear) }

func replay(p *audio.Player) {
	if err := p.Rewind(); err != nil {
		return
	}
	p.Play()
}
