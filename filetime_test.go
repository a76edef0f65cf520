package wmitime

import (
	"fmt"
	"testing"
)

func TestFiletime_unixEpoch(t *testing.T) {
	dt := FromFiletime(filetimeUnixDiff)
	if got := dt.String(); got != `1970-01-01T00:00:00.000000+00:00` {
		t.Fatalf("%s failed: got %s", t.Name(), got)
	}
}

func TestFiletime_roundTrip(t *testing.T) {
	for _, ticks := range []uint64{
		filetimeUnixDiff,
		filetimeUnixDiff + 1,
		filetimeUnixDiff + 1234567890123,
		132832835170005000,
	} {
		if got := FromFiletime(ticks).Filetime(); got != ticks {
			t.Fatalf("%s failed [ticks %d]: got %d", t.Name(), ticks, got)
		}
	}
}

func TestFiletime_zeroGuards(t *testing.T) {
	if !FromFiletime(0).IsZero() {
		t.Fatalf("%s failed: zero ticks did not yield zero value", t.Name())
	}
	if !FromFiletime(filetimeUnixDiff - 1).IsZero() {
		t.Fatalf("%s failed: pre-epoch ticks did not yield zero value", t.Name())
	}

	var dt DateTime
	if dt.Filetime() != 0 {
		t.Fatalf("%s failed: zero value did not yield zero ticks", t.Name())
	}
}

func ExampleFromFiletime() {
	fmt.Println(FromFiletime(filetimeUnixDiff))
	// Output: 1970-01-01T00:00:00.000000+00:00
}
