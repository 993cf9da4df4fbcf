package duration

import "strconv"

// Human is a days/hours/minutes/seconds breakdown of a Duration, used for display.
type Human struct {
	Days    uint64
	Hours   uint8
	Minutes uint8
	Seconds uint8
}

// FromSeconds splits secs into days, hours, minutes and seconds.
func FromSeconds(secs uint64) Human {
	days := secs / secondsPerDay
	secs %= secondsPerDay
	hours := secs / secondsPerHour
	secs %= secondsPerHour
	minutes := secs / secondsPerMinute
	secs %= secondsPerMinute
	return Human{
		Days:    days,
		Hours:   uint8(hours),
		Minutes: uint8(minutes),
		Seconds: uint8(secs),
	}
}

// FromDuration splits d into days, hours, minutes and seconds.
func FromDuration(d Duration) Human {
	return FromSeconds(d.Seconds())
}

// TotalSeconds reassembles the total second count, saturating on overflow.
func (h Human) TotalSeconds() uint64 {
	rest := uint64(h.Hours)*secondsPerHour + uint64(h.Minutes)*secondsPerMinute + uint64(h.Seconds)
	return uint64(Duration(h.Days).SaturatingMul(secondsPerDay).SaturatingAdd(Duration(rest)))
}

// String renders h as e.g. "1d20m", omitting zero fields. Zero renders as "0s".
func (h Human) String() string {
	if h == (Human{}) {
		return "0s"
	}
	buf := make([]byte, 0, 24)
	if h.Days != 0 {
		buf = strconv.AppendUint(buf, h.Days, 10)
		buf = append(buf, 'd')
	}
	for _, f := range []struct {
		value uint8
		unit  byte
	}{{h.Hours, 'h'}, {h.Minutes, 'm'}, {h.Seconds, 's'}} {
		if f.value != 0 {
			buf = strconv.AppendUint(buf, uint64(f.value), 10)
			buf = append(buf, f.unit)
		}
	}
	return string(buf)
}
