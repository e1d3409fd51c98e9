package ratio

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// reduce a fraction to lowest terms. b must be nonzero.
func reduce[T constraints.Integer](a, b T) (T, T) {
	g := gcd(a, b)
	return a / g, b / g
}

// euclid's algorithm, remainder form
func gcd[T constraints.Integer](a, b T) T {
	for a%b > 0 {
		a, b = b, a%b
	}
	return b
}

// scale a/b by powers of two until 1 <= a/b <= 2. a pair that lands on 1:1
// becomes 2/1 unless it is 1/1 already.
//
// comparisons are done on differences rather than on 2*b so that nothing but
// the doubling itself can overflow.
func normalizePair[T constraints.Integer](a, b T) (T, T, error) {
	if a <= 0 || b <= 0 {
		return 0, 0, ErrInvalidRatio
	}
	for {
		var err error
		switch {
		case a < b:
			a, err = mulChecked(a, 2)
		case a-b > b:
			b, err = mulChecked(b, 2)
		case a-b == b:
			return a, b, nil
		case a == b:
			if a == 1 && b == 1 {
				return 1, 1, nil
			}
			return 2, 1, nil
		default:
			return a, b, nil
		}
		if err != nil {
			return 0, 0, err
		}
	}
}

// return the largest prime factor of a. returns 2 for a == 1, which is not
// meaningful.
func greatestPrimeFactor[T constraints.Integer](a T) T {
	p := T(2)
	for a > 1 {
		if a%p == 0 {
			a /= p
		} else {
			p++
		}
	}
	return p
}

// multiply two non-negative numbers, failing instead of wrapping
func mulChecked[T constraints.Integer](a, b T) (T, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	c := a * b
	if c/b != a {
		return 0, fmt.Errorf("%d * %d: %w", a, b, ErrOverflow)
	}
	return c, nil
}

// raise a non-negative number to a non-negative power by squaring, failing
// instead of wrapping
func powChecked[T constraints.Integer](a T, exp int) (T, error) {
	r, base := T(1), a
	for e := exp; e > 0; e >>= 1 {
		var err error
		if e&1 == 1 {
			if r, err = mulChecked(r, base); err != nil {
				return 0, fmt.Errorf("%d^%d: %w", a, exp, err)
			}
		}
		// the next square is needed only while higher bits remain
		if e > 1 {
			if base, err = mulChecked(base, base); err != nil {
				return 0, fmt.Errorf("%d^%d: %w", a, exp, err)
			}
		}
	}
	return r, nil
}
