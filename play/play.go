// Package play sounds an interval as two sine tones, either together or one
// after the other, through SDL audio or a MIDI output.
package play

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Mode selects how the two notes of an interval are sounded.
type Mode uint8

const (
	// Interval plays the root, then the upper note.
	Interval Mode = iota
	// Chord plays both notes at once.
	Chord
)

var modeNames = []string{"interval", "chord"}

// ParseMode returns the mode named s.
func ParseMode(s string) (Mode, error) {
	for i, name := range modeNames {
		if strings.EqualFold(s, name) {
			return Mode(i), nil
		}
	}
	return 0, fmt.Errorf("unknown playback mode %q", s)
}

func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return fmt.Sprintf("Mode(%d)", m)
}

// Player sounds a frequency multiplier above a root. Play blocks until the
// notes have finished or ctx is done.
type Player interface {
	Play(ctx context.Context, multiplier float64, mode Mode) error
}

// Params are the settings shared by all players.
type Params struct {
	Base      float64       // root frequency in Hz
	Duration  time.Duration // length of each note
	Amplitude float64       // peak of each sine, 0 to 1
}

// DefaultParams plays one second of each note above A3 at a comfortable
// level.
var DefaultParams = Params{
	Base:      220,
	Duration:  time.Second,
	Amplitude: 0.2,
}

// Note is one tone of a schedule.
type Note struct {
	Freq     float64
	Start    time.Duration
	Duration time.Duration
}

// Schedule returns the root and upper note of an interval, timed for mode.
func Schedule(mode Mode, p Params, multiplier float64) []Note {
	root := Note{Freq: p.Base, Duration: p.Duration}
	above := Note{Freq: p.Base * multiplier, Duration: p.Duration}
	if mode == Interval {
		above.Start = p.Duration
	}
	return []Note{root, above}
}

// return the time at which the last note of a schedule ends
func length(notes []Note) time.Duration {
	var end time.Duration
	for _, n := range notes {
		if n.Start+n.Duration > end {
			end = n.Start + n.Duration
		}
	}
	return end
}

// wait for d or until ctx is done
func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
