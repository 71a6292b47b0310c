package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"
	"github.com/fogleman/ease"
	"github.com/iburimskiy/spinning-squares/internal/config"
)

const levelRingSize = 4096

// Chime plays a short tone every time a square completes a revolution.
// The speaker chain is mixer -> tap -> volume -> ctrl.
type Chime struct {
	sampleRate beep.SampleRate
	frequency  float64
	duration   time.Duration

	mixer  *beep.Mixer
	tap    *levelTap
	volume *effects.Volume
	ctrl   *beep.Ctrl

	started bool
}

func NewChime(cfg config.Audio) *Chime {
	c := &Chime{
		sampleRate: beep.SampleRate(cfg.SampleRate),
		frequency:  cfg.Frequency,
		duration:   time.Duration(cfg.Duration * float64(time.Second)),
		mixer:      &beep.Mixer{},
	}
	c.tap = newLevelTap(c.mixer, levelRingSize)
	c.volume = &effects.Volume{
		Streamer: c.tap,
		Base:     2,
		Volume:   volumeExponent(cfg.Volume),
		Silent:   cfg.Volume <= 0,
	}
	c.ctrl = &beep.Ctrl{Streamer: c.volume}
	return c
}

// Start opens the audio device and begins streaming silence.
func (c *Chime) Start() error {
	bufferSize := c.sampleRate.N(time.Second / 20)
	if err := speaker.Init(c.sampleRate, bufferSize); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(c.ctrl)
	c.started = true
	return nil
}

// Ring queues one tone on the mixer.
func (c *Chime) Ring() {
	speaker.Lock()
	c.mixer.Add(Tone(c.sampleRate, c.frequency, c.duration))
	speaker.Unlock()
}

// ToggleMute flips the muted state and returns it.
func (c *Chime) ToggleMute() bool {
	speaker.Lock()
	c.ctrl.Paused = !c.ctrl.Paused
	muted := c.ctrl.Paused
	speaker.Unlock()
	return muted
}

// Level is the recent peak amplitude in [0, 1].
func (c *Chime) Level() float64 {
	return clamp01(c.tap.peak(c.sampleRate.N(time.Second / 30)))
}

func (c *Chime) Close() {
	if !c.started {
		return
	}
	c.started = false
	speaker.Clear()
	speaker.Close()
}

// Tone is a sine wave at freq that fades out over d with an ease-out
// envelope.
func Tone(sr beep.SampleRate, freq float64, d time.Duration) beep.Streamer {
	total := sr.N(d)
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		if pos >= total {
			return 0, false
		}
		for n < len(samples) && pos < total {
			t := float64(pos) / float64(sr)
			env := 1 - ease.OutQuad(float64(pos)/float64(total))
			v := math.Sin(2*math.Pi*freq*t) * env
			samples[n][0], samples[n][1] = v, v
			n++
			pos++
		}
		return n, true
	})
}

// volumeExponent maps a linear gain in (0, 1] onto effects.Volume's base-2
// exponent.
func volumeExponent(gain float64) float64 {
	if gain <= 0 {
		return 0
	}
	return math.Log2(gain)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
