package wmitime

/*
adapt.go exposes DateTime and Interval to the marshaling frameworks
used by surrounding systems: JSON, plain text, MessagePack and
database/sql. Decode adapters accept exactly one scalar of string
shape; every other shape is a type mismatch. Encode adapters emit the
canonical string form and do not fail for validly constructed values.
*/

import (
	"database/sql"
	"database/sql/driver"
	"encoding"
	"time"

	"github.com/goccy/go-json"
	"github.com/vmihailenco/msgpack/v5"
	"github.com/vmihailenco/msgpack/v5/msgpcode"
)

const (
	dateTimeShape = "a timestamp in WMI format"
	intervalShape = "an interval in WMI format"
)

var (
	_ json.Marshaler           = DateTime{}
	_ json.Unmarshaler         = (*DateTime)(nil)
	_ encoding.TextMarshaler   = DateTime{}
	_ encoding.TextUnmarshaler = (*DateTime)(nil)
	_ msgpack.CustomEncoder    = DateTime{}
	_ msgpack.CustomDecoder    = (*DateTime)(nil)
	_ driver.Valuer            = DateTime{}
	_ sql.Scanner              = (*DateTime)(nil)

	_ json.Marshaler           = Interval{}
	_ json.Unmarshaler         = (*Interval)(nil)
	_ encoding.TextMarshaler   = Interval{}
	_ encoding.TextUnmarshaler = (*Interval)(nil)
	_ msgpack.CustomEncoder    = Interval{}
	_ msgpack.CustomDecoder    = (*Interval)(nil)
	_ driver.Valuer            = Interval{}
	_ sql.Scanner              = (*Interval)(nil)
)

// jsonShape classifies a raw JSON value by its first byte, for type
// mismatch messages only.
func jsonShape(b []byte) string {
	if len(b) == 0 {
		return "empty input"
	}
	switch b[0] {
	case '{':
		return "a JSON object"
	case '[':
		return "a JSON array"
	case 't', 'f':
		return "a JSON boolean"
	case 'n':
		return "JSON null"
	}
	return "a JSON number"
}

/*
MarshalJSON returns the canonical string form of the receiver as a
JSON string.
*/
func (r DateTime) MarshalJSON() ([]byte, error) {
	s, err := backend.format(time.Time(r))
	if err != nil {
		return nil, err
	}
	return json.Marshal(s)
}

/*
UnmarshalJSON decodes a JSON string holding a WMI-format datetime.
Any non-string JSON value is a type mismatch.
*/
func (r *DateTime) UnmarshalJSON(b []byte) error {
	if len(b) == 0 || b[0] != '"' {
		return errorTypeMismatch(dateTimeShape, jsonShape(b))
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}

	d, err := parseDateTime(s)
	if err != nil {
		return err
	}
	*r = d

	return nil
}

/*
MarshalText returns the canonical string form of the receiver.
*/
func (r DateTime) MarshalText() ([]byte, error) {
	s, err := backend.format(time.Time(r))
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

/*
UnmarshalText decodes a WMI-format datetime string.
*/
func (r *DateTime) UnmarshalText(b []byte) error {
	d, err := parseDateTime(string(b))
	if err != nil {
		return err
	}
	*r = d

	return nil
}

/*
EncodeMsgpack encodes the canonical string form of the receiver onto
the wire.
*/
func (r DateTime) EncodeMsgpack(enc *msgpack.Encoder) error {
	s, err := backend.format(time.Time(r))
	if err != nil {
		return err
	}
	return enc.EncodeString(s)
}

/*
DecodeMsgpack decodes a MessagePack string holding a WMI-format
datetime. Any non-string code is a type mismatch.
*/
func (r *DateTime) DecodeMsgpack(dec *msgpack.Decoder) error {
	c, err := dec.PeekCode()
	if err != nil {
		return err
	}
	if !msgpcode.IsString(c) {
		return errorTypeMismatch(dateTimeShape, "msgpack code "+itoa(int(c)))
	}

	s, err := dec.DecodeString()
	if err != nil {
		return err
	}

	d, err := parseDateTime(s)
	if err != nil {
		return err
	}
	*r = d

	return nil
}

/*
Value returns the canonical string form of the receiver as a database
driver value.
*/
func (r DateTime) Value() (driver.Value, error) {
	s, err := backend.format(time.Time(r))
	if err != nil {
		return nil, err
	}
	return s, nil
}

/*
Scan decodes a database value holding a WMI-format datetime string,
or adopts a [time.Time] column value directly.
*/
func (r *DateTime) Scan(src any) error {
	switch tv := src.(type) {
	case string:
		return r.UnmarshalText([]byte(tv))
	case []byte:
		return r.UnmarshalText(tv)
	case time.Time:
		*r = DateTime(tv)
		return nil
	}

	return errorTypeMismatch(dateTimeShape, src)
}

/*
MarshalJSON returns the canonical wire form of the receiver as a JSON
string.
*/
func (r Interval) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

/*
UnmarshalJSON decodes a JSON string holding a WMI-format interval.
Any non-string JSON value is a type mismatch.
*/
func (r *Interval) UnmarshalJSON(b []byte) error {
	if len(b) == 0 || b[0] != '"' {
		return errorTypeMismatch(intervalShape, jsonShape(b))
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}

	iv, err := parseInterval(s)
	if err != nil {
		return err
	}
	*r = iv

	return nil
}

/*
MarshalText returns the canonical wire form of the receiver.
*/
func (r Interval) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

/*
UnmarshalText decodes a WMI-format interval string.
*/
func (r *Interval) UnmarshalText(b []byte) error {
	iv, err := parseInterval(string(b))
	if err != nil {
		return err
	}
	*r = iv

	return nil
}

/*
EncodeMsgpack encodes the canonical wire form of the receiver.
*/
func (r Interval) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.EncodeString(r.String())
}

/*
DecodeMsgpack decodes a MessagePack string holding a WMI-format
interval. Any non-string code is a type mismatch.
*/
func (r *Interval) DecodeMsgpack(dec *msgpack.Decoder) error {
	c, err := dec.PeekCode()
	if err != nil {
		return err
	}
	if !msgpcode.IsString(c) {
		return errorTypeMismatch(intervalShape, "msgpack code "+itoa(int(c)))
	}

	s, err := dec.DecodeString()
	if err != nil {
		return err
	}

	iv, err := parseInterval(s)
	if err != nil {
		return err
	}
	*r = iv

	return nil
}

/*
Value returns the canonical wire form of the receiver as a database
driver value.
*/
func (r Interval) Value() (driver.Value, error) {
	return r.String(), nil
}

/*
Scan decodes a database value holding a WMI-format interval string.
*/
func (r *Interval) Scan(src any) error {
	switch tv := src.(type) {
	case string:
		return r.UnmarshalText([]byte(tv))
	case []byte:
		return r.UnmarshalText(tv)
	}

	return errorTypeMismatch(intervalShape, src)
}
