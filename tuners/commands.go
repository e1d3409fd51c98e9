package main

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jangler/tuners/edo"
	"github.com/jangler/tuners/ratio"
)

// summary of one interval
type intervalInfo struct {
	Ratio      ratio.Ratio[int64] `json:"ratio"`
	Cents      float64            `json:"cents"`
	Limit      int64              `json:"limit,omitempty"` // zero for unison
	Complement ratio.Ratio[int64] `json:"complement"`
}

func newIntervalInfo(r ratio.Ratio[int64]) (intervalInfo, error) {
	c, err := r.Complement()
	if err != nil {
		return intervalInfo{}, err
	}
	info := intervalInfo{Ratio: r, Cents: roundCents(r.Cents()), Complement: c}
	if !r.IsUnison() {
		info.Limit = r.Limit()
	}
	return info, nil
}

func (ii intervalInfo) String() string {
	limit := "no limit"
	if ii.Limit != 0 {
		limit = fmt.Sprintf("%d-limit", ii.Limit)
	}
	return fmt.Sprintf("%s: %.3f cents, %s, complement %s", ii.Ratio, ii.Cents, limit, ii.Complement)
}

type intervalList []intervalInfo

func (l intervalList) String() string {
	lines := make([]string, len(l))
	for i, ii := range l {
		lines[i] = ii.String()
	}
	return strings.Join(lines, "\n")
}

// round to the thousandth of a cent
func roundCents(c float64) float64 {
	return math.Round(c*1000) / 1000
}

// parse a ratio argument
func parseRatio(s string) (ratio.Ratio[int64], error) {
	r, err := ratio.Parse[int64](s)
	if err != nil {
		return r, wrapExitError(exitCommandError, "bad ratio", err)
	}
	return r, nil
}

// write the summary of a computed interval
func (opts *rootOptions) writeInterval(r ratio.Ratio[int64], err error) error {
	if err != nil {
		return err
	}
	info, err := newIntervalInfo(r)
	if err != nil {
		return err
	}
	return opts.out.success(info)
}

func newInfoCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "info RATIO...",
		Short: "Show the size, prime limit and complement of intervals",
		Args:  argRange(1, math.MaxInt),
		RunE: func(cmd *cobra.Command, args []string) error {
			list := make(intervalList, 0, len(args))
			for _, arg := range args {
				r, err := parseRatio(arg)
				if err != nil {
					return err
				}
				info, err := newIntervalInfo(r)
				if err != nil {
					return err
				}
				list = append(list, info)
			}
			return opts.out.success(list)
		},
	}
}

// command taking two ratios and combining them
func newBinaryCommand(opts *rootOptions, use, short string,
	op func(a, b ratio.Ratio[int64]) (ratio.Ratio[int64], error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  argRange(2, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := parseRatio(args[0])
			if err != nil {
				return err
			}
			b, err := parseRatio(args[1])
			if err != nil {
				return err
			}
			return opts.writeInterval(op(a, b))
		},
	}
}

func newMulCommand(opts *rootOptions) *cobra.Command {
	return newBinaryCommand(opts, "mul A B", "Stack two intervals",
		ratio.Ratio[int64].Mul)
}

func newDivCommand(opts *rootOptions) *cobra.Command {
	return newBinaryCommand(opts, "div A B", "Find the interval from B up to A",
		ratio.Ratio[int64].Div)
}

func newPowCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "pow RATIO EXP",
		Short: "Stack an interval on itself",
		Long: "Stack an interval on itself EXP times. A negative EXP stacks the\n" +
			"complement; put it after -- so it isn't read as a flag.",
		Example: "  tuners pow 3/2 4\n  tuners pow 3/2 -- -2",
		Args:    argRange(2, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := parseRatio(args[0])
			if err != nil {
				return err
			}
			exp, err := strconv.Atoi(args[1])
			if err != nil {
				return wrapExitError(exitCommandError, "bad exponent", err)
			}
			return opts.writeInterval(r.Pow(exp))
		},
	}
}

func newComplementCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "complement RATIO",
		Short: "Invert an interval within the octave",
		Args:  argRange(1, 1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := parseRatio(args[0])
			if err != nil {
				return err
			}
			return opts.writeInterval(r.Complement())
		},
	}
}

// nearest equal division step to an interval
type edoInfo struct {
	Ratio    ratio.Ratio[int64] `json:"ratio"`
	Interval string             `json:"interval"`
	Error    float64            `json:"error"` // in cents
}

func (ei edoInfo) String() string {
	return fmt.Sprintf("%s ~ %s, %+.3f cents", ei.Ratio, ei.Interval, ei.Error)
}

func newEdoCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "edo DIVISIONS RATIO...",
		Short: "Find the closest steps of an equal division of the octave",
		Args:  argRange(2, math.MaxInt),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil || n <= 0 {
				return wrapExitError(exitCommandError, "bad division count",
					fmt.Errorf("%q is not a positive integer", args[0]))
			}
			e := edo.New(n)
			list := make([]edoInfo, 0, len(args)-1)
			for _, arg := range args[1:] {
				r, err := parseRatio(arg)
				if err != nil {
					return err
				}
				step := e.Nearest(r.Float64())
				list = append(list, edoInfo{
					Ratio:    r,
					Interval: step.String(),
					Error:    roundCents(r.Cents() - 1200*float64(step.Steps())/float64(n)),
				})
			}
			if len(list) == 1 {
				return opts.out.success(list[0])
			}
			return opts.out.success(edoList(list))
		},
	}
}

type edoList []edoInfo

func (l edoList) String() string {
	lines := make([]string, len(l))
	for i, ei := range l {
		lines[i] = ei.String()
	}
	return strings.Join(lines, "\n")
}

// summary of a scala scale
type scaleInfo struct {
	Description string       `json:"description"`
	Degrees     intervalList `json:"degrees"`
	Limit       int64        `json:"limit"`
}

func (si scaleInfo) String() string {
	return fmt.Sprintf("%s\n%s\n%d-limit", si.Description, si.Degrees, si.Limit)
}

func newScaleCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "scale FILE.scl",
		Short: "Show the degrees and prime limit of a Scala scale",
		Args:  argRange(1, 1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return wrapExitError(exitCommandError, "bad scale file", err)
			}
			defer f.Close()
			s, err := ratio.ReadScale(f)
			if err != nil {
				return wrapExitError(exitCommandError, "bad scale file", err)
			}
			info := scaleInfo{Description: s.Description, Limit: s.Limit()}
			for _, deg := range s.Degrees {
				ii, err := newIntervalInfo(deg)
				if err != nil {
					return err
				}
				info.Degrees = append(info.Degrees, ii)
			}
			return opts.out.success(info)
		},
	}
}
