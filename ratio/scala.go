package ratio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Scale is a just intonation scale read from a Scala file. Degrees are listed
// in file order; the implicit 1/1 at the start of every Scala scale is not
// included.
type Scale struct {
	Description string
	Degrees     []Ratio[int64]
}

// ReadScale reads a scale in the Scala .scl format. Every degree must be a
// ratio; degrees written in cents fail with ErrNotRational.
func ReadScale(r io.Reader) (*Scale, error) {
	s := &Scale{}
	scanner := bufio.NewScanner(r)
	i, n := 0, 0
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "!") || (i > 1 && line == "") {
			continue
		}
		switch {
		case i == 0:
			s.Description = line
		case i == 1:
			count, err := strconv.ParseUint(firstField(line), 10, 16)
			if err != nil {
				return nil, fmt.Errorf("degree count %q: %w", line, ErrSyntax)
			}
			n = int(count)
			s.Degrees = make([]Ratio[int64], 0, n)
		case len(s.Degrees) < n:
			deg, err := parseScalaPitch(firstField(line))
			if err != nil {
				return nil, fmt.Errorf("degree %d: %w", len(s.Degrees)+1, err)
			}
			s.Degrees = append(s.Degrees, deg)
		}
		i++
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if i < 2 || len(s.Degrees) < n {
		return nil, fmt.Errorf("read %d of %d degrees: %w", len(s.Degrees), n, ErrSyntax)
	}
	return s, nil
}

// Limit returns the highest prime limit among the degrees of s, ignoring
// unison. It returns 0 if there is nothing else.
func (s *Scale) Limit() int64 {
	var limit int64
	for _, deg := range s.Degrees {
		if !deg.IsUnison() {
			limit = max(limit, deg.Limit())
		}
	}
	return limit
}

// scala treats anything with a period as cents
func parseScalaPitch(s string) (Ratio[int64], error) {
	if strings.Contains(s, ".") {
		return Ratio[int64]{}, fmt.Errorf("%s: %w", s, ErrNotRational)
	}
	return Parse[int64](s)
}

// text up to the first whitespace; scala allows trailing labels
func firstField(s string) string {
	if f := strings.Fields(s); len(f) > 0 {
		return f[0]
	}
	return ""
}
