package ratio

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

var ratioRegexp = regexp.MustCompile(`^(\d+)(?:/(\d+))?$`)

// Parse reads a ratio written as "n/d", or as a bare integer "n" meaning n/1,
// and returns it normalized. Terms that don't fit in T fail with ErrOverflow.
func Parse[T constraints.Integer](s string) (Ratio[T], error) {
	m := ratioRegexp.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return Ratio[T]{}, fmt.Errorf("%q: %w", s, ErrSyntax)
	}
	n, err := parseTerm[T](m[1])
	if err != nil {
		return Ratio[T]{}, err
	}
	d := T(1)
	if m[2] != "" {
		if d, err = parseTerm[T](m[2]); err != nil {
			return Ratio[T]{}, err
		}
	}
	return Try(n, d)
}

// parse a string of decimal digits into T
func parseTerm[T constraints.Integer](s string) (T, error) {
	u, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		// the regexp only admits digits, so this is a range error
		return 0, fmt.Errorf("%s: %w", s, ErrOverflow)
	}
	v := T(u)
	if v < 0 || uint64(v) != u {
		return 0, fmt.Errorf("%s: %w", s, ErrOverflow)
	}
	return v, nil
}
