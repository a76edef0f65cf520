package wmitime

/*
filetime.go bridges Windows FILETIME tick counts, which management
data sources frequently expose alongside CIM datetime strings.
*/

import "time"

// Windows FILETIME epoch: January 1, 1601 UTC. Difference from the
// Unix epoch in 100-nanosecond intervals.
const filetimeUnixDiff = 116444736000000000

/*
FromFiletime returns a [DateTime] carrying a +00:00 offset, converted
from a count of 100-nanosecond intervals since 1601-01-01 UTC. Zero
ticks, or any count preceding the Unix epoch, yield the zero value.
*/
func FromFiletime(ft uint64) DateTime {
	if ft == 0 || ft < filetimeUnixDiff {
		return DateTime{}
	}
	nsec := int64(ft-filetimeUnixDiff) * 100
	return DateTime(time.Unix(0, nsec).In(time.UTC))
}

/*
Filetime returns the receiver instance expressed as a count of
100-nanosecond intervals since 1601-01-01 UTC. The zero instant
yields 0.
*/
func (r DateTime) Filetime() uint64 {
	t := time.Time(r)
	if t.IsZero() {
		return 0
	}
	return uint64(t.UnixNano()/100) + filetimeUnixDiff
}
