//-----------------------------------------------------------------------------
// Copyright (c) 2024-present Odense Bys Museer
//
// This file is part of DWS.
//
// DWS is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package scalar defines the closed set of scalar kinds the writer can emit
// and their canonical, culture-invariant text forms. The canonical text of a
// value is identical in every output representation; quoting and escaping
// are applied by the writer, not here.
package scalar

import (
	"math"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
	inf "gopkg.in/inf.v0"
)

// Kind enumerates the supported scalar kinds.
type Kind uint8

// Constants for Kind
const (
	KindNull Kind = iota
	KindUndefined
	KindBool
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindFloat32
	KindFloat64
	KindDecimal
	KindString
	KindChar
	KindBytes
	KindTime
	KindTimeOffset
	KindDuration
	KindGUID
	KindURI
)

var kindNames = [...]string{
	"null", "undefined", "bool",
	"int8", "int16", "int32", "int64",
	"uint8", "uint16", "uint32", "uint64",
	"float32", "float64", "decimal",
	"string", "char", "bytes",
	"time", "time-offset", "duration", "guid", "uri",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "kind-" + strconv.Itoa(int(k))
}

// Quoted reports whether the JSON form of the kind is a quoted string.
func (k Kind) Quoted() bool {
	switch k {
	case KindString, KindChar, KindBytes, KindTime, KindTimeOffset,
		KindDuration, KindGUID, KindURI:
		return true
	}
	return false
}

// Value is a tagged scalar value. The canonical text is computed at
// construction time, so a Value is immutable and cheap to pass around.
type Value struct {
	kind   Kind
	text   string // canonical text; the raw string for string and char kinds
	bytes  []byte // raw bytes for KindBytes
	absent bool   // a reference kind that carries no value
}

// Kind returns the kind tag of the value.
func (v Value) Kind() Kind { return v.kind }

// Text returns the canonical text of the value. For string and char kinds
// it is the raw, unescaped text. It is empty for byte sequences and for
// absent reference values.
func (v Value) Text() string { return v.text }

// ByteSeq returns the raw bytes of a byte-sequence value.
func (v Value) ByteSeq() []byte { return v.bytes }

// Absent reports whether a reference kind was constructed from a nil
// reference. This is distinct from an explicit null value.
func (v Value) Absent() bool { return v.absent }

// Null returns the explicit null value.
func Null() Value { return Value{kind: KindNull, text: "null"} }

// Undefined returns the undefined placeholder value. Its literal is not
// valid JSON; it is retained for the editing tool.
func Undefined() Value { return Value{kind: KindUndefined, text: "undefined"} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, text: strconv.FormatBool(b)} }

// Int8 returns an 8 bit signed integer value.
func Int8(i int8) Value { return Value{kind: KindInt8, text: strconv.FormatInt(int64(i), 10)} }

// Int16 returns a 16 bit signed integer value.
func Int16(i int16) Value { return Value{kind: KindInt16, text: strconv.FormatInt(int64(i), 10)} }

// Int32 returns a 32 bit signed integer value.
func Int32(i int32) Value { return Value{kind: KindInt32, text: strconv.FormatInt(int64(i), 10)} }

// Int64 returns a 64 bit signed integer value.
func Int64(i int64) Value { return Value{kind: KindInt64, text: strconv.FormatInt(i, 10)} }

// Uint8 returns an 8 bit unsigned integer value.
func Uint8(u uint8) Value { return Value{kind: KindUint8, text: strconv.FormatUint(uint64(u), 10)} }

// Uint16 returns a 16 bit unsigned integer value.
func Uint16(u uint16) Value { return Value{kind: KindUint16, text: strconv.FormatUint(uint64(u), 10)} }

// Uint32 returns a 32 bit unsigned integer value.
func Uint32(u uint32) Value { return Value{kind: KindUint32, text: strconv.FormatUint(uint64(u), 10)} }

// Uint64 returns a 64 bit unsigned integer value.
func Uint64(u uint64) Value { return Value{kind: KindUint64, text: strconv.FormatUint(u, 10)} }

// Byte returns a single byte as an unsigned integer value.
func Byte(b byte) Value { return Uint8(b) }

// Float32 returns a single precision float value.
func Float32(f float32) Value {
	return Value{kind: KindFloat32, text: formatFloat(float64(f), 32)}
}

// Float64 returns a double precision float value.
func Float64(f float64) Value {
	return Value{kind: KindFloat64, text: formatFloat(f, 64)}
}

// formatFloat produces the shortest text that round-trips the value.
// Non-finite values get the JavaScript literals NaN, Infinity and
// -Infinity; they are not valid JSON but the editor understands them.
func formatFloat(f float64, bits int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	return strconv.FormatFloat(f, 'g', -1, bits)
}

// Decimal returns an arbitrary-precision decimal value. A nil decimal is
// an absent reference.
func Decimal(d *inf.Dec) Value {
	if d == nil {
		return Value{kind: KindDecimal, absent: true}
	}
	return Value{kind: KindDecimal, text: d.String()}
}

// String returns a string value.
func String(s string) Value { return Value{kind: KindString, text: s} }

// Char returns a single character value. It is emitted like a one-rune
// string.
func Char(r rune) Value { return Value{kind: KindChar, text: string(r)} }

// Bytes returns a byte-sequence value. The bytes are streamed through the
// base64 encoder when the value is written.
func Bytes(p []byte) Value { return Value{kind: KindBytes, bytes: p} }

// Time returns an absolute-instant timestamp value. The instant is
// normalized to UTC.
func Time(t time.Time) Value {
	return Value{kind: KindTime, text: t.UTC().Format(time.RFC3339Nano)}
}

// TimeOffset returns a timestamp value that keeps its UTC offset.
func TimeOffset(t time.Time) Value {
	return Value{kind: KindTimeOffset, text: t.Format(time.RFC3339Nano)}
}

// Duration returns a duration value.
func Duration(d time.Duration) Value {
	return Value{kind: KindDuration, text: d.String()}
}

// GUID returns a globally-unique identifier value.
func GUID(u uuid.UUID) Value { return Value{kind: KindGUID, text: u.String()} }

// URI returns an absolute-resource-identifier value. A nil URL is an
// absent reference.
func URI(u *url.URL) Value {
	if u == nil {
		return Value{kind: KindURI, absent: true}
	}
	return Value{kind: KindURI, text: u.String()}
}
