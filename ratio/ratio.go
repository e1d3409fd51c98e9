// Package ratio implements just intervals as exact fractions, normalized to a
// single octave and kept in lowest terms.
//
// Every Ratio is built by Try (or New, or Parse), which scales the fraction by
// powers of two into [1, 2] and then reduces it. The arithmetic methods route
// their results back through Try, so no operation can produce a Ratio that
// breaks those rules.
//
// Arithmetic happens in the integer type the Ratio is instantiated with. When
// a product or power doesn't fit, the operation fails with ErrOverflow rather
// than wrapping around.
package ratio

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// Ratio is an interval n/d with 1 <= n/d <= 2 and gcd(n, d) == 1.
//
// Octave-equivalent fractions share one representative: 1/2, 4/1 and 3/3 are
// all 2/1. The only exception is 1/1 itself, which stays unison.
//
// Ratio has value semantics; two valid Ratios can be compared with == and !=.
// The zero value is not valid.
type Ratio[T constraints.Integer] struct {
	numer T
	denom T
}

// Try returns numer/denom normalized to one octave and reduced to lowest
// terms. It fails with ErrInvalidRatio if either term is not positive and with
// ErrOverflow if normalization does not fit in T.
func Try[T constraints.Integer](numer, denom T) (Ratio[T], error) {
	n, d, err := normalizePair(numer, denom)
	if err != nil {
		return Ratio[T]{}, fmt.Errorf("%d/%d: %w", numer, denom, err)
	}
	n, d = reduce(n, d)
	return Ratio[T]{numer: n, denom: d}, nil
}

// New is like Try but panics on error.
func New[T constraints.Integer](numer, denom T) Ratio[T] {
	r, err := Try(numer, denom)
	if err != nil {
		panic(err)
	}
	return r
}

// Must returns r, or panics if err is non-nil. It wraps calls like
// Must(a.Mul(b)) whose operands are known to be small.
func Must[T constraints.Integer](r Ratio[T], err error) Ratio[T] {
	if err != nil {
		panic(err)
	}
	return r
}

// Num returns the numerator of r.
func (r Ratio[T]) Num() T {
	return r.numer
}

// Den returns the denominator of r.
func (r Ratio[T]) Den() T {
	return r.denom
}

// IsValid reports whether r is normalized and reduced. Values returned by this
// package always are; the zero value is not.
func (r Ratio[T]) IsValid() bool {
	n, d := r.numer, r.denom
	if n <= 0 || d <= 0 || n < d || n-d > d || gcd(n, d) != 1 {
		return false
	}
	return n != d || n == 1
}

// IsUnison reports whether r is 1/1.
func (r Ratio[T]) IsUnison() bool {
	return r.numer == 1 && r.denom == 1
}

// IsOctave reports whether r is 2/1.
func (r Ratio[T]) IsOctave() bool {
	return r.numer == 2 && r.denom == 1
}

// Mul returns the sum of two intervals, r*other.
func (r Ratio[T]) Mul(other Ratio[T]) (Ratio[T], error) {
	n, err := mulChecked(r.numer, other.numer)
	if err != nil {
		return Ratio[T]{}, err
	}
	d, err := mulChecked(r.denom, other.denom)
	if err != nil {
		return Ratio[T]{}, err
	}
	return Try(n, d)
}

// Div returns the difference of two intervals, r/other.
func (r Ratio[T]) Div(other Ratio[T]) (Ratio[T], error) {
	n, err := mulChecked(r.numer, other.denom)
	if err != nil {
		return Ratio[T]{}, err
	}
	d, err := mulChecked(r.denom, other.numer)
	if err != nil {
		return Ratio[T]{}, err
	}
	return Try(n, d)
}

// Complement returns the octave inversion of r, 2/1 divided by r. The
// complement of both 1/1 and 2/1 is 2/1.
func (r Ratio[T]) Complement() (Ratio[T], error) {
	return New[T](2, 1).Div(r)
}

// Neg is the same as Complement: in log-frequency space, negating an interval
// within the octave is inverting it.
func (r Ratio[T]) Neg() (Ratio[T], error) {
	return r.Complement()
}

// Pow returns r stacked exp times. Pow(0) is 1/1, and a negative exp stacks
// the complement of r instead.
//
// The raw terms are raised to exp before normalization, so large exponents
// overflow quickly in narrow types; that case fails with ErrOverflow.
func (r Ratio[T]) Pow(exp int) (Ratio[T], error) {
	switch {
	case exp == 0:
		return Try[T](1, 1)
	case exp == math.MinInt:
		// the complement of any ratio has a numerator of at least 2
		return Ratio[T]{}, fmt.Errorf("%v^%d: %w", r, exp, ErrOverflow)
	case exp < 0:
		c, err := r.Complement()
		if err != nil {
			return Ratio[T]{}, err
		}
		r, exp = c, -exp
	}
	n, err := powChecked(r.numer, exp)
	if err != nil {
		return Ratio[T]{}, err
	}
	d, err := powChecked(r.denom, exp)
	if err != nil {
		return Ratio[T]{}, err
	}
	return Try(n, d)
}

// Limit returns the prime limit of r: the largest prime factor of either
// term. The limit of 1/1 is reported as 2, which means nothing.
//
// Factors are found by trial division, so the cost grows with the largest
// prime factor. Terms with a prime factor near the top of int64 take far too
// long to be practical.
func (r Ratio[T]) Limit() T {
	return max(greatestPrimeFactor(r.numer), greatestPrimeFactor(r.denom))
}

// Float64 returns r as a frequency multiplier.
func (r Ratio[T]) Float64() float64 {
	return float64(r.numer) / float64(r.denom)
}

// Cents returns the size of r in cents.
func (r Ratio[T]) Cents() float64 {
	return 1200 * math.Log2(r.Float64())
}

// String returns r as "n/d".
func (r Ratio[T]) String() string {
	return fmt.Sprintf("%d/%d", r.numer, r.denom)
}

// MarshalText implements encoding.TextMarshaler.
func (r Ratio[T]) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using Parse.
func (r *Ratio[T]) UnmarshalText(b []byte) error {
	v, err := Parse[T](string(b))
	if err != nil {
		return err
	}
	*r = v
	return nil
}
