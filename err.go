package wmitime

/*
err.go contains error constructors and literals used frequently
throughout this package.
*/

import (
	"errors"
	"sync"
)

var mkerr func(string) error = errors.New

/*
Error kinds. Every failure returned by this package unwraps to exactly
one of these sentinels, so callers may discriminate with [errors.Is].
*/
var (
	// ErrMalformedInput indicates an input string which is too short,
	// or which violates the structural envelope of its wire format.
	ErrMalformedInput error = mkerr("malformed input")

	// ErrInvalidOffset indicates a UTC offset tail which is missing,
	// not parseable as a signed minute count, or out of range.
	ErrInvalidOffset error = mkerr("invalid UTC offset")

	// ErrInvalidDateTimeComponent indicates a fixed-width date/time
	// field containing a non-digit byte or an impossible value. The
	// message names the offending field.
	ErrInvalidDateTimeComponent error = mkerr("invalid date/time component")

	// ErrTypeMismatch indicates a decode adapter received a value
	// which was not a string scalar.
	ErrTypeMismatch error = mkerr("type mismatch")

	// ErrInternalFormat indicates a broken invariant in a constructed
	// value. It never surfaces from externally reachable input.
	ErrInternalFormat error = mkerr("internal formatting failure")
)

/*
types which implement the error interface.
*/
type (
	malformedErr struct{ e error }
	offsetErr    struct{ e error }
	componentErr struct {
		field string
		e     error
	}
	mismatchErr struct{ e error }
	internalErr struct{ e error }
)

func malformedErrorf(m ...any) error { return malformedErr{mkerrf(m...)} }
func offsetErrorf(m ...any) error    { return offsetErr{mkerrf(m...)} }
func internalErrorf(m ...any) error  { return internalErr{mkerrf(m...)} }

func componentErrorf(field string, m ...any) error {
	return componentErr{field, mkerrf(m...)}
}

func (r malformedErr) Error() string { return `MALFORMED INPUT: ` + r.e.Error() }
func (r offsetErr) Error() string    { return `INVALID OFFSET: ` + r.e.Error() }
func (r componentErr) Error() string {
	return `INVALID DATE/TIME COMPONENT [` + r.field + `]: ` + r.e.Error()
}
func (r mismatchErr) Error() string { return `TYPE MISMATCH: ` + r.e.Error() }
func (r internalErr) Error() string { return `INTERNAL ERROR: ` + r.e.Error() }

func (r malformedErr) Unwrap() error { return ErrMalformedInput }
func (r offsetErr) Unwrap() error    { return ErrInvalidOffset }
func (r componentErr) Unwrap() error { return ErrInvalidDateTimeComponent }
func (r mismatchErr) Unwrap() error  { return ErrTypeMismatch }
func (r internalErr) Unwrap() error  { return ErrInternalFormat }

/*
Field returns the name of the offending date/time field (year, month,
day, hour, minute, second or subsecond).
*/
func (r componentErr) Field() string { return r.field }

func errorTypeMismatch(want string, got any) error {
	var g string
	switch tv := got.(type) {
	case nil:
		g = `<nil>`
	case string:
		g = tv
	default:
		g = refTypeOf(tv).String()
	}

	return mismatchErr{mkerrf("expected ", want, ", got ", g)}
}

func errorBadTypeForConstructor(wmiType string, inputType any) error {
	var inName string = "<nil>" // sensible default
	if inputType != nil {
		inName = refTypeOf(inputType).String()
	}
	return mismatchErr{mkerrf("invalid input type for WMI ",
		wmiType, " constructor: ", inName)}
}

var errCache sync.Map

func mkerrf(parts ...any) error {
	if len(parts) == 0 {
		return nil
	}

	if len(parts) == 1 {
		if s, ok := parts[0].(string); ok {
			if v, hit := errCache.Load(s); hit {
				return v.(error)
			}
		} else if parts[0] == nil {
			return nil
		}
	}

	b := newStrBuilder()
	for _, p := range parts {
		switch v := p.(type) {
		case error:
			b.WriteString(v.Error())
		case string:
			b.WriteString(v)
		case int:
			b.WriteString(itoa(v))
		default:
			b.WriteString("<not supported>")
		}
	}
	msg := b.String()

	if v, hit := errCache.Load(msg); hit {
		return v.(error)
	}
	e := mkerr(msg)
	errCache.Store(msg, e)
	return e
}
