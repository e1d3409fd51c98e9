// Package edo names steps of an equal division of the octave.
package edo

import (
	"fmt"
	"math"
)

// EDO is an equal division of the octave into some number of steps.
type EDO struct {
	divisions int
}

// Interval is a step count within a particular EDO.
type Interval struct {
	edo   *EDO
	steps int
}

// New returns an EDO with the given number of divisions.
func New(divisions int) *EDO {
	return &EDO{divisions: divisions}
}

// Divisions returns the number of steps in an octave of e.
func (e *EDO) Divisions() int {
	return e.divisions
}

// Interval returns the interval of the given number of steps of e.
func (e *EDO) Interval(steps int) Interval {
	return Interval{edo: e, steps: steps}
}

// Nearest returns the interval of e closest in size to a frequency multiplier.
func (e *EDO) Nearest(multiplier float64) Interval {
	return e.Interval(int(math.Round(float64(e.divisions) * math.Log2(multiplier))))
}

// String returns e as "12edo".
func (e *EDO) String() string {
	return fmt.Sprintf("%dedo", e.divisions)
}

// EDO returns the division the interval belongs to.
func (i Interval) EDO() *EDO {
	return i.edo
}

// Steps returns the step count of the interval.
func (i Interval) Steps() int {
	return i.steps
}

// String returns the interval in the usual backslash notation, e.g. "7\12".
func (i Interval) String() string {
	return fmt.Sprintf("%d\\%d", i.steps, i.edo.divisions)
}
