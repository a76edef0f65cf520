package wmitime

/*
calendar.go defines the minimal backend seam between the wire-format
parsers and the calendar/time library underneath. Exactly three
operations are required of a backend: build a fixed UTC offset,
compose a naive date/time against that offset, and render a value in
the canonical output profile.
*/

import "time"

// maxOffsetSeconds bounds a representable fixed UTC offset at
// strictly under ±24h, the widest magnitude ±HH:MM can render.
const maxOffsetSeconds = 24 * 60 * 60

type calendar interface {
	fixedOffset(seconds int) (*time.Location, error)
	compose(year, month, day, hour, min, sec, usec int, loc *time.Location) (time.Time, error)
	format(t time.Time) (string, error)
}

// backend is the calendar implementation used by every constructor
// and formatter in this package. Single implementation; the seam
// exists so another calendar library could be slotted in without
// touching the parsers.
var backend calendar = stdCalendar{}

/*
stdCalendar implements the calendar seam over the standard library
time package.
*/
type stdCalendar struct{}

func (stdCalendar) fixedOffset(seconds int) (*time.Location, error) {
	if seconds <= -maxOffsetSeconds || maxOffsetSeconds <= seconds {
		return nil, offsetErrorf("offset ", seconds, " seconds exceeds ±24h")
	}
	return time.FixedZone("", seconds), nil
}

func (stdCalendar) compose(year, month, day, hour, min, sec, usec int, loc *time.Location) (time.Time, error) {
	switch {
	case month == 0 || month > 12:
		return time.Time{}, componentErrorf("month", "value ", month, " out of range")
	case day == 0 || day > 31:
		return time.Time{}, componentErrorf("day", "value ", day, " out of range")
	case hour > 23:
		return time.Time{}, componentErrorf("hour", "value ", hour, " out of range")
	case min > 59:
		return time.Time{}, componentErrorf("minute", "value ", min, " out of range")
	case sec > 59:
		return time.Time{}, componentErrorf("second", "value ", sec, " out of range")
	case usec < 0 || usec > 999999:
		return time.Time{}, internalErrorf("subsecond ", usec, " escaped normalization")
	}

	t := time.Date(year, time.Month(month), day, hour, min, sec, usec*1000, loc)

	// time.Date silently normalizes impossible dates (Feb 30 becomes
	// Mar 2); a round trip catches month-length and leap-year overflow.
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day {
		return time.Time{}, componentErrorf("day", "day ", day,
			" does not exist in month ", month)
	}

	return t, nil
}

// format renders the canonical profile YYYY-MM-DDTHH:MM:SS.ssssss±HH:MM
// with zero heap allocations beyond the final string; output is
// byte-for-byte identical to t.Format(dateTimeLayout). The offset is
// always numeric, never the "Z" shorthand.
func (stdCalendar) format(t time.Time) (string, error) {
	year := t.Year()
	if year < 0 || year > 9999 {
		return ``, internalErrorf("year ", year, " not renderable as four digits")
	}

	_, off := t.Zone()
	if off <= -maxOffsetSeconds || maxOffsetSeconds <= off {
		return ``, internalErrorf("offset ", off, " seconds escaped validation")
	}

	var b [32]byte
	put2 := func(i, v int) {
		b[i] = byte('0' + v/10)
		b[i+1] = byte('0' + v%10)
	}

	b[0] = byte('0' + (year/1000)%10)
	b[1] = byte('0' + (year/100)%10)
	b[2] = byte('0' + (year/10)%10)
	b[3] = byte('0' + year%10)
	b[4] = '-'
	put2(5, int(t.Month()))
	b[7] = '-'
	put2(8, t.Day())
	b[10] = 'T'
	put2(11, t.Hour())
	b[13] = ':'
	put2(14, t.Minute())
	b[16] = ':'
	put2(17, t.Second())
	b[19] = '.'

	usec := t.Nanosecond() / 1_000
	for i, p := 20, 100_000; p >= 1; p /= 10 {
		b[i] = byte('0' + (usec/p)%10)
		i++
	}

	sign := byte('+')
	if off < 0 {
		sign = '-'
		off = -off
	}
	b[26] = sign
	put2(27, off/3600)
	b[29] = ':'
	put2(30, (off%3600)/60)

	return string(b[:]), nil
}
