package validkit

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// Kind identifies the representable kind of a Value.
type Kind uint8

const (
	KindAbsent Kind = iota
	KindBool
	KindInt
	KindLong
	KindFloat
	KindDouble
	KindText
	KindChar
	KindSeq
)

var kindNames = [...]string{
	KindAbsent: "absent",
	KindBool:   "bool",
	KindInt:    "int",
	KindLong:   "long",
	KindFloat:  "float",
	KindDouble: "double",
	KindText:   "text",
	KindChar:   "char",
	KindSeq:    "seq",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Value is an immutable snapshot of a validated datum, restricted to a closed
// set of kinds. It exists purely for error reporting: violations embed the
// offending value and the constraint's boundary values as Values. It performs
// no validation itself.
type Value struct {
	kind Kind
	b    bool
	n    int64
	f    float64
	s    string
	seq  []Value
}

// Absent returns the Value representing the absence of a value.
func Absent() Value {
	return Value{kind: KindAbsent}
}

// Bool returns a boolean Value.
func Bool(v bool) Value {
	return Value{kind: KindBool, b: v}
}

// Int returns a 32-bit integer Value.
func Int(v int32) Value {
	return Value{kind: KindInt, n: int64(v)}
}

// Long returns a 64-bit integer Value.
func Long(v int64) Value {
	return Value{kind: KindLong, n: v}
}

// Float returns a single-precision floating point Value.
func Float(v float32) Value {
	return Value{kind: KindFloat, f: float64(v)}
}

// Double returns a double-precision floating point Value.
func Double(v float64) Value {
	return Value{kind: KindDouble, f: v}
}

// Text returns a textual Value.
func Text(v string) Value {
	return Value{kind: KindText, s: v}
}

// Char returns a single-character Value.
func Char(v rune) Value {
	return Value{kind: KindChar, n: int64(v)}
}

// Seq returns an ordered sequence Value. The items are copied.
func Seq(items ...Value) Value {
	seq := make([]Value, len(items))
	copy(seq, items)
	return Value{kind: KindSeq, seq: seq}
}

// IntFromInt narrows a platform int into a 32-bit integer Value. It returns
// an error wrapping ErrValueOutOfRange when the value does not fit, never
// truncating silently.
func IntFromInt(v int) (Value, error) {
	if v < math.MinInt32 || v > math.MaxInt32 {
		return Value{}, fmt.Errorf("%w: %d does not fit a 32-bit integer value", ErrValueOutOfRange, v)
	}
	return Int(int32(v)), nil
}

// LongFromUint narrows an unsigned 64-bit integer into a Long Value. It
// returns an error wrapping ErrValueOutOfRange when the magnitude exceeds
// the signed 64-bit range.
func LongFromUint(v uint64) (Value, error) {
	if v > math.MaxInt64 {
		return Value{}, fmt.Errorf("%w: %d does not fit a 64-bit integer value", ErrValueOutOfRange, v)
	}
	return Long(int64(v)), nil
}

// Kind reports the kind of the value.
func (v Value) Kind() Kind {
	return v.kind
}

// IsAbsent reports whether the value represents absence.
func (v Value) IsAbsent() bool {
	return v.kind == KindAbsent
}

// Equal reports whether two values have the same kind and the same wrapped
// primitive. Kinds never compare equal across each other, even when the
// numeric magnitudes would.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindAbsent:
		return true
	case KindBool:
		return v.b == o.b
	case KindInt, KindLong, KindChar:
		return v.n == o.n
	case KindFloat, KindDouble:
		return v.f == o.f
	case KindText:
		return v.s == o.s
	case KindSeq:
		if len(v.seq) != len(o.seq) {
			return false
		}
		for i := range v.seq {
			if !v.seq[i].Equal(o.seq[i]) {
				return false
			}
		}
		return true
	}
	return false
}

// String renders the wrapped primitive for diagnostics.
func (v Value) String() string {
	switch v.kind {
	case KindAbsent:
		return "<absent>"
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindInt, KindLong:
		return strconv.FormatInt(v.n, 10)
	case KindChar:
		return string(rune(v.n))
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 32)
	case KindDouble:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindText:
		return v.s
	case KindSeq:
		parts := make([]string, len(v.seq))
		for i, item := range v.seq {
			parts[i] = item.String()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	}
	return "<unknown>"
}

type valueJSON struct {
	Kind  string          `json:"kind"`
	Value json.RawMessage `json:"value,omitempty"`
}

// MarshalJSON encodes the value as a kind-tagged object so that the closed
// kind set survives a round trip.
func (v Value) MarshalJSON() ([]byte, error) {
	out := valueJSON{Kind: v.kind.String()}
	var err error
	switch v.kind {
	case KindAbsent:
	case KindBool:
		out.Value, err = json.Marshal(v.b)
	case KindInt, KindLong:
		out.Value, err = json.Marshal(v.n)
	case KindChar:
		out.Value, err = json.Marshal(string(rune(v.n)))
	case KindFloat, KindDouble:
		out.Value, err = json.Marshal(v.f)
	case KindText:
		out.Value, err = json.Marshal(v.s)
	case KindSeq:
		out.Value, err = json.Marshal(v.seq)
	}
	if err != nil {
		return nil, err
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes a kind-tagged value object.
func (v *Value) UnmarshalJSON(data []byte) error {
	var in valueJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	switch in.Kind {
	case "absent":
		*v = Absent()
		return nil
	case "bool":
		var b bool
		if err := json.Unmarshal(in.Value, &b); err != nil {
			return err
		}
		*v = Bool(b)
		return nil
	case "int":
		var n int32
		if err := json.Unmarshal(in.Value, &n); err != nil {
			return err
		}
		*v = Int(n)
		return nil
	case "long":
		var n int64
		if err := json.Unmarshal(in.Value, &n); err != nil {
			return err
		}
		*v = Long(n)
		return nil
	case "char":
		var s string
		if err := json.Unmarshal(in.Value, &s); err != nil {
			return err
		}
		runes := []rune(s)
		if len(runes) != 1 {
			return fmt.Errorf("char value must hold exactly one character, got %q", s)
		}
		*v = Char(runes[0])
		return nil
	case "float":
		var f float64
		if err := json.Unmarshal(in.Value, &f); err != nil {
			return err
		}
		*v = Float(float32(f))
		return nil
	case "double":
		var f float64
		if err := json.Unmarshal(in.Value, &f); err != nil {
			return err
		}
		*v = Double(f)
		return nil
	case "text":
		var s string
		if err := json.Unmarshal(in.Value, &s); err != nil {
			return err
		}
		*v = Text(s)
		return nil
	case "seq":
		var seq []Value
		if err := json.Unmarshal(in.Value, &seq); err != nil {
			return err
		}
		*v = Value{kind: KindSeq, seq: seq}
		return nil
	}
	return fmt.Errorf("unknown value kind %q", in.Kind)
}

// valueOf converts an arbitrary Go value into the closed Value kind set for
// embedding in violation parameters. It is used only on the reporting path;
// constraint dispatch never inspects types at runtime. Values that cannot be
// represented losslessly as a numeric kind degrade to their decimal text
// rendering instead of truncating.
func valueOf(v any) Value {
	switch x := v.(type) {
	case Value:
		return x
	case nil:
		return Absent()
	case bool:
		return Bool(x)
	case int:
		if val, err := IntFromInt(x); err == nil {
			return val
		}
		return Long(int64(x))
	case int8:
		return Int(int32(x))
	case int16:
		return Int(int32(x))
	case int32:
		return Int(x)
	case int64:
		return Long(x)
	case uint8:
		return Int(int32(x))
	case uint16:
		return Int(int32(x))
	case uint32:
		return Long(int64(x))
	case uint:
		return uintValue(uint64(x))
	case uint64:
		return uintValue(x)
	case float32:
		return Float(x)
	case float64:
		return Double(x)
	case string:
		return Text(x)
	case Str:
		return Text(string(x))
	case fmt.Stringer:
		return Text(x.String())
	}
	// Defined types (e.g. type Age int) land here; only their underlying
	// primitive kind is consulted.
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return Bool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Long(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return uintValue(rv.Uint())
	case reflect.Float32, reflect.Float64:
		return Double(rv.Float())
	case reflect.String:
		return Text(rv.String())
	case reflect.Slice, reflect.Array:
		items := make([]Value, rv.Len())
		for i := range items {
			items[i] = valueOf(rv.Index(i).Interface())
		}
		return Value{kind: KindSeq, seq: items}
	}
	return Text(fmt.Sprint(v))
}

// uintValue renders an unsigned magnitude as a Long when it fits and as its
// lossless decimal text otherwise.
func uintValue(v uint64) Value {
	if val, err := LongFromUint(v); err == nil {
		return val
	}
	return Text(strconv.FormatUint(v, 10))
}
