// Package audio plays the shot bell through the system speaker.
package audio

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate   = beep.SampleRate(44100)
	bellFreq     = 880.0
	bellDuration = 60 * time.Millisecond
)

// ToneBell rings a short sine tone instead of the terminal bell.
type ToneBell struct {
	sr beep.SampleRate
}

// NewToneBell initialises the speaker. Callers fall back to the terminal
// bell when it fails.
func NewToneBell() (*ToneBell, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("audio: init speaker: %w", err)
	}
	return &ToneBell{sr: sampleRate}, nil
}

// Beep queues one bell tone; it does not block.
func (b *ToneBell) Beep() error {
	s, err := tone(b.sr, bellFreq, bellDuration)
	if err != nil {
		return err
	}
	speaker.Play(s)
	return nil
}

// Close releases the speaker.
func (b *ToneBell) Close() {
	speaker.Close()
}

func tone(sr beep.SampleRate, freq float64, d time.Duration) (beep.Streamer, error) {
	sine, err := generators.SineTone(sr, freq)
	if err != nil {
		return nil, fmt.Errorf("audio: tone %vHz: %w", freq, err)
	}
	return beep.Take(sr.N(d), sine), nil
}
