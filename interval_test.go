package wmitime

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"
)

func TestInterval_roundTrip(t *testing.T) {
	for idx, obj := range []struct {
		in   string
		want time.Duration
	}{
		{`00000005121500.000000:000`, 5*24*time.Hour + 12*time.Hour + 15*time.Minute},
		{`00000000000000.000000:000`, 0},
		{`00000000000001.500000:000`, time.Second + 500000*time.Microsecond},
		{`00012345235959.999999:000`, 12345*24*time.Hour + 23*time.Hour +
			59*time.Minute + 59*time.Second + 999999*time.Microsecond},
	} {
		iv, err := NewInterval(obj.in)
		if err != nil {
			t.Fatalf("%s[%d] failed: %v", t.Name(), idx, err)
		}
		if got := iv.Duration(); got != obj.want {
			t.Fatalf("%s[%d] failed:\n\twant: %v\n\tgot:  %v",
				t.Name(), idx, obj.want, got)
		}
		if got := iv.String(); got != obj.in {
			t.Fatalf("%s[%d] failed [re-emit]:\n\twant: %s\n\tgot:  %s",
				t.Name(), idx, obj.in, got)
		}
	}
}

func TestInterval_subsecondFaceValue(t *testing.T) {
	// interval microseconds carry no legacy padding quirk; 500000 on
	// the wire is half a second, not 500 microseconds.
	iv, err := NewInterval(`00000000000000.500000:000`)
	if err != nil {
		t.Fatalf("%s failed: %v", t.Name(), err)
	}
	if iv.Duration() != 500*time.Millisecond {
		t.Fatalf("%s failed: got %v", t.Name(), iv.Duration())
	}
}

func TestInterval_malformed(t *testing.T) {
	for idx, obj := range []struct {
		in   string
		kind error
	}{
		{``, ErrMalformedInput},
		{`00000005121500.000000:00`, ErrMalformedInput},   // short tail
		{`00000005121500.000000:001`, ErrMalformedInput},  // bad tail literal
		{`00000005121500x000000:000`, ErrMalformedInput},  // bad separator
		{`0000000512150x.000000:000`, ErrInvalidDateTimeComponent},
		{`00000005241500.000000:000`, ErrInvalidDateTimeComponent}, // hour 24
		{`00000005126000.000000:000`, ErrInvalidDateTimeComponent}, // minute 60
		{`00000005121560.000000:000`, ErrInvalidDateTimeComponent}, // second 60
	} {
		if _, err := NewInterval(obj.in); !errors.Is(err, obj.kind) {
			t.Fatalf("%s[%d] failed: want %v, got %v",
				t.Name(), idx, obj.kind, err)
		}
	}
}

func TestInterval_invalidHourNamesField(t *testing.T) {
	_, err := NewInterval(`00000005241500.000000:000`)
	if err == nil || !strings.Contains(err.Error(), "hour") {
		t.Fatalf("%s failed: error does not name hour: %v", t.Name(), err)
	}
}

func TestNewInterval_fromDuration(t *testing.T) {
	iv, err := NewInterval(36*time.Hour + 90*time.Second)
	if err != nil {
		t.Fatalf("%s failed: %v", t.Name(), err)
	}

	want := Interval{Days: 1, Hours: 12, Minutes: 1, Seconds: 30}
	if iv != want {
		t.Fatalf("%s failed:\n\twant: %#v\n\tgot:  %#v", t.Name(), want, iv)
	}
	if got := iv.String(); got != `00000001120130.000000:000` {
		t.Fatalf("%s failed: got %s", t.Name(), got)
	}

	if _, err = NewInterval(-time.Second); !errors.Is(err, ErrMalformedInput) {
		t.Fatalf("%s failed [negative]: want ErrMalformedInput, got %v",
			t.Name(), err)
	}
}

func TestNewInterval_badType(t *testing.T) {
	if _, err := NewInterval(3.14); !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("%s failed: want ErrTypeMismatch, got %v", t.Name(), err)
	}
}

func TestInterval_addTo(t *testing.T) {
	dt, err := NewDateTime(`20190113200517.000000+000`)
	if err != nil {
		t.Fatalf("%s failed: %v", t.Name(), err)
	}
	iv, err := NewInterval(`00000001000000.000000:000`)
	if err != nil {
		t.Fatalf("%s failed: %v", t.Name(), err)
	}

	next := DateTime(iv.AddTo(dt.Cast()))
	if got := next.String(); got != `2019-01-14T20:05:17.000000+00:00` {
		t.Fatalf("%s failed: got %s", t.Name(), got)
	}
}

func ExampleNewInterval() {
	iv, err := NewInterval(`00000005121500.000000:000`)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(iv.Duration())
	// Output: 132h15m0s
}
