package audio

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"gridsnake/game"
)

const sampleRate = beep.SampleRate(44100)

// Cue is a short tone played in response to a game event.
type Cue struct {
	Freq     float64
	Duration time.Duration
	Volume   float64 // in beep's log2 volume units, 0 is unchanged
}

// cues lists the tones for events that make a sound.
var cues = map[game.EventType][]Cue{
	game.EventAte:   {{Freq: 880, Duration: 40 * time.Millisecond, Volume: -1}},
	game.EventGrew:  {{Freq: 660, Duration: 25 * time.Millisecond, Volume: -2}},
	game.EventReset: {{Freq: 330, Duration: 90 * time.Millisecond}, {Freq: 220, Duration: 160 * time.Millisecond}},
}

// CueFor returns the tones for an event type, or nil if it is silent.
func CueFor(t game.EventType) []Cue {
	return cues[t]
}

// Streamer builds a beep streamer that plays the cues one after another.
func Streamer(rate beep.SampleRate, seq []Cue) (beep.Streamer, error) {
	parts := make([]beep.Streamer, 0, len(seq))
	for _, c := range seq {
		tone, err := generators.SineTone(rate, c.Freq)
		if err != nil {
			return nil, fmt.Errorf("tone %.0fHz: %w", c.Freq, err)
		}
		parts = append(parts, &effects.Volume{
			Streamer: beep.Take(rate.N(c.Duration), tone),
			Base:     2,
			Volume:   c.Volume,
		})
	}
	return beep.Seq(parts...), nil
}

// Player turns game events into sound.
type Player interface {
	Play(events []game.Event)
	Close()
}

// NewPlayer opens the speaker. When no audio device is available it returns
// a silent player together with the error so callers can log it and go on.
func NewPlayer() (Player, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/20)); err != nil {
		return Silent{}, fmt.Errorf("audio: %w", err)
	}
	return &speakerPlayer{}, nil
}

type speakerPlayer struct{}

func (p *speakerPlayer) Play(events []game.Event) {
	for _, e := range events {
		seq := CueFor(e.Type)
		if len(seq) == 0 {
			continue
		}
		s, err := Streamer(sampleRate, seq)
		if err != nil {
			continue
		}
		speaker.Play(s)
	}
}

func (p *speakerPlayer) Close() {
	speaker.Close()
}

// Silent drops every event.
type Silent struct{}

func (Silent) Play([]game.Event) {}
func (Silent) Close()            {}
