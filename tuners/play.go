package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"
	"gitlab.com/gomidi/midi/writer"
	driver "gitlab.com/gomidi/rtmididrv"

	"github.com/jangler/tuners/play"
	"github.com/jangler/tuners/ratio"
)

// septimal minor third
const defaultPlayRatio = "7/6"

// return the modes named by s; "both" plays the interval, then the chord
func parseModes(s string) ([]play.Mode, error) {
	if s == "both" {
		return []play.Mode{play.Interval, play.Chord}, nil
	}
	m, err := play.ParseMode(s)
	if err != nil {
		return nil, wrapExitError(exitCommandError, "bad flags", err)
	}
	return []play.Mode{m}, nil
}

// flags shared by play and export, overriding settings when set
type playFlags struct {
	mode     string
	base     float64
	duration time.Duration
}

func (pf *playFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&pf.mode, "mode", "m", "both", "interval, chord or both")
	cmd.Flags().Float64Var(&pf.base, "base", 0, "root frequency in Hz (default from settings)")
	cmd.Flags().DurationVar(&pf.duration, "duration", 0, "length of each note (default from settings)")
}

// return the playback parameters from settings and flags
func (pf *playFlags) params(cmd *cobra.Command, s *settings) (play.Params, error) {
	p := s.params()
	if cmd.Flags().Changed("base") {
		p.Base = pf.base
	}
	if cmd.Flags().Changed("duration") {
		p.Duration = pf.duration
	}
	if p.Base <= 0 {
		return p, wrapExitError(exitCommandError, "bad flags",
			fmt.Errorf("base frequency %v is not positive", p.Base))
	}
	if p.Duration <= 0 {
		return p, wrapExitError(exitCommandError, "bad flags",
			fmt.Errorf("duration %v is not positive", p.Duration))
	}
	return p, nil
}

// return the ratio to play from the arguments
func playRatio(args []string) (ratio.Ratio[int64], error) {
	if len(args) == 0 {
		return parseRatio(defaultPlayRatio)
	}
	return parseRatio(args[0])
}

func newPlayCommand(opts *rootOptions) *cobra.Command {
	pf := &playFlags{}
	var backend string
	cmd := &cobra.Command{
		Use:   "play [RATIO]",
		Short: "Play an interval above a root",
		Long: "Play an interval above the root frequency as two sine tones, one\n" +
			"after the other, together, or both in turn. RATIO defaults to " + defaultPlayRatio + ".",
		Args: argRange(0, 1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := playRatio(args)
			if err != nil {
				return err
			}
			modes, err := parseModes(pf.mode)
			if err != nil {
				return err
			}
			s := opts.settings
			if cmd.Flags().Changed("backend") {
				s.Backend = backend
			}
			params, err := pf.params(cmd, s)
			if err != nil {
				return err
			}
			p, closePlayer, err := newPlayer(s, params)
			if err != nil {
				return err
			}
			defer closePlayer()
			for _, m := range modes {
				slog.Debug("playing", "ratio", r, "multiplier", r.Float64(),
					"mode", m, "backend", s.Backend)
				if err := p.Play(cmd.Context(), r.Float64(), m); err != nil {
					return err
				}
			}
			return opts.out.success(fmt.Sprintf("played %s", r))
		},
	}
	pf.register(cmd)
	cmd.Flags().StringVarP(&backend, "backend", "b", "", "sdl or midi (default from settings)")
	return cmd
}

// return a player for the configured backend and a function that releases
// its device
func newPlayer(s *settings, p play.Params) (play.Player, func(), error) {
	switch s.Backend {
	case "sdl":
		synth := play.NewSynth(p)
		if s.SampleRate > 0 {
			synth.SampleRate = s.SampleRate
		}
		return synth, func() {}, nil
	case "midi":
		drv, err := driver.New()
		if err != nil {
			return nil, nil, err
		}
		outs, err := drv.Outs()
		if err != nil {
			drv.Close()
			return nil, nil, err
		}
		n := s.MidiOutPortNumber
		if n < 0 || n >= len(outs) {
			drv.Close()
			return nil, nil, wrapExitError(exitCommandError, "bad settings",
				fmt.Errorf("MIDI output port index %d out of range [%d, %d)", n, 0, len(outs)))
		}
		out := outs[n]
		if err := out.Open(); err != nil {
			drv.Close()
			return nil, nil, err
		}
		slog.Debug("opened MIDI output", "port", n, "name", out.String())
		mp := play.NewMIDIPlayer(writer.New(out), p)
		mp.Program = uint8(s.MidiProgram)
		return mp, func() {
			out.Close()
			drv.Close()
		}, nil
	}
	return nil, nil, wrapExitError(exitCommandError, "bad settings",
		fmt.Errorf("unknown backend %q", s.Backend))
}

func newExportCommand(opts *rootOptions) *cobra.Command {
	pf := &playFlags{}
	var path string
	cmd := &cobra.Command{
		Use:   "export RATIO",
		Short: "Write an interval to a standard MIDI file",
		Args:  argRange(1, 1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := parseRatio(args[0])
			if err != nil {
				return err
			}
			modes, err := parseModes(pf.mode)
			if err != nil {
				return err
			}
			s := opts.settings
			p, err := pf.params(cmd, s)
			if err != nil {
				return err
			}
			slog.Debug("exporting", "ratio", r, "path", path, "modes", modes)
			if err := play.ExportSMF(path, r.Float64(), p, uint8(s.MidiProgram), modes...); err != nil {
				return wrapExitError(exitFailure, "export failed", err)
			}
			return opts.out.success(fmt.Sprintf("wrote %s", path))
		},
	}
	pf.register(cmd)
	cmd.Flags().StringVarP(&path, "output", "o", "interval.mid", "output file")
	return cmd
}
