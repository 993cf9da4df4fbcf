package duration

import (
	"math"
	"math/bits"
	"strconv"
	"time"
)

const (
	secondsPerDay    = 60 * 60 * 24
	secondsPerHour   = 60 * 60
	secondsPerMinute = 60
)

// Duration is a non-negative span of whole seconds.
// Arithmetic on it saturates at Max instead of wrapping.
type Duration uint64

// Max is the largest representable duration.
const Max Duration = math.MaxUint64

// Seconds returns the total number of seconds.
func (d Duration) Seconds() uint64 {
	return uint64(d)
}

// SaturatingAdd returns d+o, clamped to Max.
func (d Duration) SaturatingAdd(o Duration) Duration {
	sum, carry := bits.Add64(uint64(d), uint64(o), 0)
	if carry != 0 {
		return Max
	}
	return Duration(sum)
}

// SaturatingMul returns d*n, clamped to Max.
func (d Duration) SaturatingMul(n uint64) Duration {
	hi, lo := bits.Mul64(uint64(d), n)
	if hi != 0 {
		return Max
	}
	return Duration(lo)
}

// Std converts d to a time.Duration, clamping to the largest value time.Duration can hold.
func (d Duration) Std() time.Duration {
	if uint64(d) > uint64(math.MaxInt64/int64(time.Second)) {
		return time.Duration(math.MaxInt64)
	}
	return time.Duration(d) * time.Second
}

// String returns the canonical rendering, e.g. "1d20m".
func (d Duration) String() string {
	return FromDuration(d).String()
}

// Debug returns the raw second count, e.g. "4800s".
func (d Duration) Debug() string {
	return strconv.FormatUint(uint64(d), 10) + "s"
}
