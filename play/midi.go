package play

import (
	"context"
	"math"
	"sort"
	"time"

	"gitlab.com/gomidi/midi/smf"
	"gitlab.com/gomidi/midi/smf/smfwriter"
	"gitlab.com/gomidi/midi/writer"
)

const (
	bendSemitones = 2
	velocity      = 100
	ticksPerBeat  = 960
	exportBPM     = 60 // one beat per second
)

// MIDIPlayer is a Player that sends notes to a MIDI output. Each note gets its
// own channel so that it can be bent to its exact frequency.
type MIDIPlayer struct {
	Params
	Program uint8 // GM program for every channel used
	Writer  writer.ChannelWriter

	// wait is called before every event with the time since the previous
	// one. realtime players sleep; file writers set the delta instead.
	wait func(ctx context.Context, d time.Duration) error
}

// NewMIDIPlayer returns a realtime player writing to wr.
func NewMIDIPlayer(wr writer.ChannelWriter, p Params) *MIDIPlayer {
	return &MIDIPlayer{Params: p, Writer: wr, wait: sleepContext}
}

// type for a note on or off at a point in a schedule
type midiEvent struct {
	at      time.Duration
	channel uint8
	on      bool
	key     uint8
	bend    int16
}

// Play implements Player. If ctx is done before the schedule finishes, notes
// still sounding are turned off.
func (p *MIDIPlayer) Play(ctx context.Context, multiplier float64, mode Mode) error {
	notes := Schedule(mode, p.Params, multiplier)
	if err := p.setupChannels(len(notes)); err != nil {
		return err
	}
	events := midiEvents(notes)
	var now time.Duration
	for i, ev := range events {
		if err := p.wait(ctx, ev.at-now); err != nil {
			p.silence(events[i:])
			return err
		}
		now = ev.at
		if err := writeEvent(p.Writer, ev); err != nil {
			return err
		}
	}
	return nil
}

// send the "pitch bend sensitivity" RPN and program to the first n channels
func (p *MIDIPlayer) setupChannels(n int) error {
	for i := uint8(0); i < uint8(n); i++ {
		p.Writer.SetChannel(i)
		if err := writer.RPN(p.Writer, 0, 0, bendSemitones, 0); err != nil {
			return err
		}
		if err := writer.ProgramChange(p.Writer, p.Program); err != nil {
			return err
		}
	}
	return nil
}

// send the note offs among the remaining events. the caller is already
// returning the cancellation, so write errors here are dropped.
func (p *MIDIPlayer) silence(remaining []midiEvent) {
	for _, ev := range remaining {
		if !ev.on {
			_ = writeEvent(p.Writer, ev)
		}
	}
}

// turn a schedule into time-ordered note ons and offs. at equal times, offs
// come first.
func midiEvents(notes []Note) []midiEvent {
	events := make([]midiEvent, 0, len(notes)*2)
	for i, n := range notes {
		key, bend := pitchToMidi(n.Freq)
		ch := uint8(i)
		events = append(events,
			midiEvent{at: n.Start, channel: ch, on: true, key: key, bend: bend},
			midiEvent{at: n.Start + n.Duration, channel: ch, key: key})
	}
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].at != events[j].at {
			return events[i].at < events[j].at
		}
		return !events[i].on && events[j].on
	})
	return events
}

func writeEvent(wr writer.ChannelWriter, ev midiEvent) error {
	wr.SetChannel(ev.channel)
	if !ev.on {
		return writer.NoteOff(wr, ev.key)
	}
	if err := writer.Pitchbend(wr, ev.bend); err != nil {
		return err
	}
	return writer.NoteOn(wr, ev.key, velocity)
}

// convert a frequency in Hz to the nearest midi note and the bend from it
func pitchToMidi(freq float64) (uint8, int16) {
	semitones := 69 + 12*math.Log2(freq/440)
	note := math.Max(0, math.Min(127, math.Round(semitones)))
	bend := (semitones - note) * 8192 / bendSemitones
	bend = math.Max(-8192, math.Min(8191, bend))
	return uint8(note), int16(bend)
}

// ExportSMF writes the interval to a standard MIDI file, playing it once in
// each of the given modes.
func ExportSMF(path string, multiplier float64, p Params, program uint8, modes ...Mode) error {
	return writer.WriteSMF(path, 1, func(wr *writer.SMF) error {
		if err := writer.TempoBPM(wr, exportBPM); err != nil {
			return err
		}
		mp := &MIDIPlayer{
			Params:  p,
			Program: program,
			Writer:  wr,
			wait: func(_ context.Context, d time.Duration) error {
				wr.SetDelta(ticksFromDuration(d))
				return nil
			},
		}
		for _, mode := range modes {
			if err := mp.Play(context.Background(), multiplier, mode); err != nil {
				return err
			}
		}
		return writer.EndOfTrack(wr)
	}, smfwriter.TimeFormat(smf.MetricTicks(ticksPerBeat)))
}

// convert a duration to ticks at the export tempo. negative durations are
// zero ticks.
func ticksFromDuration(d time.Duration) uint32 {
	if d <= 0 {
		return 0
	}
	return uint32(int64(d) * ticksPerBeat * exportBPM / int64(time.Minute))
}
