package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
)

var validFormats = []string{"text", "json"}

// flags and state shared by all commands
type rootOptions struct {
	verbose  bool
	format   string
	config   string
	settings *settings
	out      *formatter
}

// create the root command for the program
func newRootCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tuners",
		Short: "Just intonation interval calculator",
		Long: "tuners works with just intervals as exact ratios reduced to one octave.\n" +
			"It can combine them, find their prime limit, and play them.",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.format) {
				return wrapExitError(exitCommandError, "bad flags",
					fmt.Errorf("invalid format %q: must be one of %v", opts.format, validFormats))
			}
			level := slog.LevelInfo
			if opts.verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(),
				&slog.HandlerOptions{Level: level})))
			opts.settings = loadSettings(opts.config, func(s string) {
				slog.Warn(s, "path", opts.config)
			})
			opts.out = &formatter{format: opts.format, w: cmd.OutOrStdout()}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.config, "config", settingsPath, "settings file")
	cmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return wrapExitError(exitCommandError, "bad flags", err)
	})

	cmd.AddCommand(newInfoCommand(opts))
	cmd.AddCommand(newMulCommand(opts))
	cmd.AddCommand(newDivCommand(opts))
	cmd.AddCommand(newPowCommand(opts))
	cmd.AddCommand(newComplementCommand(opts))
	cmd.AddCommand(newEdoCommand(opts))
	cmd.AddCommand(newScaleCommand(opts))
	cmd.AddCommand(newPlayCommand(opts))
	cmd.AddCommand(newExportCommand(opts))

	return cmd
}

func isValidFormat(format string) bool {
	for _, f := range validFormats {
		if f == format {
			return true
		}
	}
	return false
}

// like cobra.RangeArgs, but with a usage exit code
func argRange(min, max int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.RangeArgs(min, max)(cmd, args); err != nil {
			return wrapExitError(exitCommandError, "bad arguments", err)
		}
		return nil
	}
}
