package wmitime

/*
interval.go implements the CIM interval syntax, the sibling wire
encoding ddddddddHHMMSS.ffffff:000 used wherever management data
carries an elapsed duration rather than an instant.
*/

import "time"

// intervalWireLen is the exact length of an interval on the wire:
// 8 day digits, 6 time digits, '.', 6 microsecond digits, ":000".
const intervalWireLen = 25

const maxIntervalDays = 99999999

/*
Interval is an elapsed duration decomposed into the fields of the CIM
interval encoding. Unlike the datetime subsecond field, interval
microseconds are taken at face value on the wire.
*/
type Interval struct {
	Days         int
	Hours        int
	Minutes      int
	Seconds      int
	Microseconds int
}

/*
NewInterval returns an instance of [Interval] alongside an error
following an attempt to marshal x.

string and []byte input is parsed as the 25-character wire encoding,
e.g.:

	00000005121500.000000:000

[time.Duration] input is decomposed into day/time fields; negative
durations are not representable.
*/
func NewInterval(x any) (Interval, error) {
	switch tv := x.(type) {
	case string:
		return parseInterval(tv)
	case []byte:
		return parseInterval(string(tv))
	case Interval:
		return tv, nil
	case time.Duration:
		return fromTimeDuration(tv)
	}

	return Interval{}, errorBadTypeForConstructor("INTERVAL", x)
}

func parseInterval(s string) (Interval, error) {
	if len(s) != intervalWireLen {
		return Interval{}, malformedErrorf(
			"interval must be exactly ", intervalWireLen,
			" characters, got ", len(s))
	}

	var r Interval
	var err error

	if r.Days, err = parseDigits(s, 0, 8, "day"); err != nil {
		return Interval{}, err
	}
	if r.Hours, err = parseDigits(s, 8, 10, "hour"); err != nil {
		return Interval{}, err
	}
	if r.Minutes, err = parseDigits(s, 10, 12, "minute"); err != nil {
		return Interval{}, err
	}
	if r.Seconds, err = parseDigits(s, 12, 14, "second"); err != nil {
		return Interval{}, err
	}

	if s[14] != '.' {
		return Interval{}, malformedErrorf(
			"expected '.' subsecond separator at index 14")
	}

	if r.Microseconds, err = parseDigits(s, 15, 21, "subsecond"); err != nil {
		return Interval{}, err
	}

	if s[21:] != ":000" {
		return Interval{}, malformedErrorf(
			`interval must end with the literal ":000" tail`)
	}

	switch {
	case r.Hours > 23:
		return Interval{}, componentErrorf("hour", "value ", r.Hours, " out of range")
	case r.Minutes > 59:
		return Interval{}, componentErrorf("minute", "value ", r.Minutes, " out of range")
	case r.Seconds > 59:
		return Interval{}, componentErrorf("second", "value ", r.Seconds, " out of range")
	}

	return r, nil
}

// fromTimeDuration decomposes a time.Duration into wire fields.
func fromTimeDuration(td time.Duration) (Interval, error) {
	if td < 0 {
		return Interval{}, malformedErrorf("interval cannot be negative")
	}

	days := int(td / (24 * time.Hour))
	if days > maxIntervalDays {
		return Interval{}, componentErrorf("day",
			"value ", days, " exceeds eight digits")
	}
	td -= time.Duration(days) * 24 * time.Hour

	hours := int(td / time.Hour)
	td -= time.Duration(hours) * time.Hour

	mins := int(td / time.Minute)
	td -= time.Duration(mins) * time.Minute

	secs := int(td / time.Second)
	td -= time.Duration(secs) * time.Second

	return Interval{
		Days:         days,
		Hours:        hours,
		Minutes:      mins,
		Seconds:      secs,
		Microseconds: int(td / time.Microsecond),
	}, nil
}

/*
Duration returns an instance of [time.Duration] based upon the state
of the receiver instance.
*/
func (r Interval) Duration() time.Duration {
	return time.Duration(r.Days)*24*time.Hour +
		time.Duration(r.Hours)*time.Hour +
		time.Duration(r.Minutes)*time.Minute +
		time.Duration(r.Seconds)*time.Second +
		time.Duration(r.Microseconds)*time.Microsecond
}

/*
AddTo returns a new instance of [time.Time] advanced by the receiver
instance.
*/
func (r Interval) AddTo(ref time.Time) time.Time { return ref.Add(r.Duration()) }

/*
String returns the canonical 25-character wire representation of the
receiver instance.
*/
func (r Interval) String() string {
	var b [intervalWireLen]byte
	put2 := func(i, v int) {
		b[i] = byte('0' + v/10)
		b[i+1] = byte('0' + v%10)
	}

	d := r.Days
	for i := 7; i >= 0; i-- {
		b[i] = byte('0' + d%10)
		d /= 10
	}
	put2(8, r.Hours)
	put2(10, r.Minutes)
	put2(12, r.Seconds)
	b[14] = '.'

	u := r.Microseconds
	for i := 20; i >= 15; i-- {
		b[i] = byte('0' + u%10)
		u /= 10
	}
	b[21] = ':'
	b[22], b[23], b[24] = '0', '0', '0'

	return string(b[:])
}

/*
IsZero returns true if every field of the receiver is zero.
*/
func (r Interval) IsZero() bool { return r == Interval{} }
