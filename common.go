package wmitime

/*
common.go contains stdlib aliases and small helpers used by myriad
components throughout this package.
*/

import (
	"reflect"
	"strconv"
	"strings"
)

/*
official import aliases.
*/
var (
	itoa      func(int) string          = strconv.Itoa
	atoi      func(string) (int, error) = strconv.Atoi
	refTypeOf func(any) reflect.Type    = reflect.TypeOf
)

func newStrBuilder() strings.Builder { return strings.Builder{} }

/*
parseDigits interprets s[lo:hi] as an unsigned base-10 integer of
fixed width. Any non-digit byte fails, naming the offending field.
*/
func parseDigits(s string, lo, hi int, field string) (n int, err error) {
	for i := lo; i < hi; i++ {
		b := s[i]
		if b < '0' || '9' < b {
			return 0, componentErrorf(field, "non-digit byte at index ", i)
		}
		n = n*10 + int(b-'0')
	}

	return
}
