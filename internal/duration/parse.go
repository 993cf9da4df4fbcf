package duration

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// Kind identifies why a duration string was rejected.
type Kind int

const (
	// Unexpected means a character was neither a digit nor a unit.
	Unexpected Kind = iota + 1
	// Valueless means a unit had no digits in front of it.
	Valueless
)

var (
	ErrUnexpected = errors.New("unexpected character")
	ErrValueless  = errors.New("missing value")
)

// ParseError reports the first offending character of a duration string.
type ParseError struct {
	Kind Kind
	Char rune
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case Unexpected:
		return fmt.Sprintf("unexpected character `%c`", e.Char)
	case Valueless:
		return fmt.Sprintf("missing value before `%c`", e.Char)
	}
	return fmt.Sprintf("invalid duration (kind %d) at `%c`", e.Kind, e.Char)
}

// Is lets callers match on the kind with errors.Is(err, ErrValueless).
func (e *ParseError) Is(target error) bool {
	switch target {
	case ErrUnexpected:
		return e.Kind == Unexpected
	case ErrValueless:
		return e.Kind == Valueless
	}
	return false
}

func unitScale(c rune) (uint64, bool) {
	switch c {
	case 'd':
		return secondsPerDay, true
	case 'h':
		return secondsPerHour, true
	case 'm':
		return secondsPerMinute, true
	case 's':
		return 1, true
	}
	return 0, false
}

// Parse converts a compact duration such as "1h20m4d" into seconds.
// Units are d, h, m and s; they may repeat and appear in any order.
// Digits after the last unit are ignored and an empty string is zero.
// Values too large to represent saturate at Max.
func Parse(input string) (Duration, error) {
	var total Duration
	start := 0
	for i, c := range input {
		if c >= '0' && c <= '9' {
			continue
		}
		scale, ok := unitScale(c)
		if !ok {
			return 0, &ParseError{Kind: Unexpected, Char: c}
		}
		if start == i {
			return 0, &ParseError{Kind: Valueless, Char: c}
		}
		value, err := strconv.ParseUint(input[start:i], 10, 64)
		if err != nil {
			// only digits are in the run, so this is always ErrRange
			value = math.MaxUint64
		}
		total = total.SaturatingAdd(Duration(value).SaturatingMul(scale))
		start = i + 1
	}
	return total, nil
}
