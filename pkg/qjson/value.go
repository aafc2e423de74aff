package qjson

import (
	"math"
	"strconv"
)

// Value is a handle onto a sub-slice of a JSON document: a Kind tag plus
// the raw bytes that make up the value, and — for strings — the decoded
// content. Value is produced by Parse, Get and their variants; it never
// copies the source unless a modifier forces a new buffer (see
// applyModifier in modifier.go).
//
// The zero Value has Kind() == NotExist and Exists() == false; every typed
// accessor on it returns its type's zero value, never panics.
type Value struct {
	kind Kind
	raw  string // the value's own bytes: quoted for strings, bracketed for JSON
	str  string // decoded content, valid only when kind == String
	num  float64
	idx  int   // byte offset of raw within the originating document; no constructor here sets it
	idxs []int // element offsets for a query-all or projection result; no constructor here sets it
	err  error // set only by reader-backed constructors
}

// Kind reports the JSON type the Value refers to.
func (v Value) Kind() Kind { return v.kind }

// Exists reports whether the path that produced this Value resolved to
// something. A false return means every typed accessor below yields its
// zero value.
func (v Value) Exists() bool { return v.kind != NotExist }

// Raw returns the value's bytes exactly as they appear in the source: for
// a string this includes the surrounding quotes, for an object or array it
// spans the matching brackets inclusive.
func (v Value) Raw() string { return v.raw }

// Index returns the Value's recorded byte offset within its source
// document. None of Parse, Get, the modifiers or the query/projection
// code records offsets, so every Value they produce reports 0.
func (v Value) Index() int { return v.idx }

// Indexes returns the Value's recorded element offsets. None of Parse,
// Get, the modifiers or the query/projection code records them, so
// every Value they produce, query-all and projection results included,
// reports nil.
func (v Value) Indexes() []int { return v.idxs }

// IsError reports whether this Value carries a construction error, which
// only happens via ParseReader/ParseFile.
// Get never sets this; malformed paths or documents resolve to NotExist.
func (v Value) IsError() bool { return v.err != nil }

// Cause returns the error message carried by a reader-backed Value, or an
// empty string if none.
func (v Value) Cause() string {
	if v.err == nil {
		return ""
	}
	return v.err.Error()
}

// IsArray reports whether the Value is a JSON array.
func (v Value) IsArray() bool {
	return v.kind == JSON && len(v.raw) > 0 && v.raw[0] == '['
}

// IsObject reports whether the Value is a JSON object.
func (v Value) IsObject() bool {
	return v.kind == JSON && len(v.raw) > 0 && v.raw[0] == '{'
}

// IsBool reports whether the Value is the JSON literal true or false.
func (v Value) IsBool() bool { return v.kind == True || v.kind == False }

// Bool coerces the Value to a boolean: True -> true, False -> false,
// Number -> nonzero, String -> case-insensitive "true" or "1", everything
// else (Null, NotExist, Array, Object) -> false.
func (v Value) Bool() bool {
	switch v.kind {
	case True:
		return true
	case False:
		return false
	case Number:
		return v.num != 0
	case String:
		return equalFoldASCII(v.str, "true") || v.str == "1"
	default:
		return false
	}
}

// Int64 parses the decimal prefix of the raw number, saturating at the
// width of int64. True yields 1; False, Null, Array and Object yield 0
// unless their String() form parses as a number.
func (v Value) Int64() int64 {
	switch v.kind {
	case Number:
		n, ok := parseExactInt64(v.raw)
		if ok {
			return n
		}
		f := v.num
		if f >= math.MaxInt64 {
			return math.MaxInt64
		}
		if f <= math.MinInt64 {
			return math.MinInt64
		}
		return int64(f)
	case String:
		n, _ := strconv.ParseInt(v.str, 10, 64)
		return n
	case True:
		return 1
	default:
		return 0
	}
}

// Int returns Int64 narrowed (with saturation) to the platform int width.
func (v Value) Int() int { return int(saturateInt64ToBits(v.Int64(), strconv.IntSize)) }

// Int32 returns Int64 saturated to the range of int32.
func (v Value) Int32() int32 { return int32(saturateInt64ToBits(v.Int64(), 32)) }

// Int16 returns Int64 saturated to the range of int16.
func (v Value) Int16() int16 { return int16(saturateInt64ToBits(v.Int64(), 16)) }

// Int8 returns Int64 saturated to the range of int8.
func (v Value) Int8() int8 { return int8(saturateInt64ToBits(v.Int64(), 8)) }

// saturateInt64ToBits clamps n to the signed range representable in the
// given bit width, leaving 64-bit values untouched.
func saturateInt64ToBits(n int64, bits int) int64 {
	if bits >= 64 {
		return n
	}
	max := int64(1)<<(bits-1) - 1
	min := -(int64(1) << (bits - 1))
	if n > max {
		return max
	}
	if n < min {
		return min
	}
	return n
}

// Uint64 parses the decimal prefix of the raw number as an unsigned
// integer, saturating at zero for negative values and at the width of
// uint64 for overflow. True yields 1; non-numeric kinds yield 0 unless
// their String() form parses as a number.
func (v Value) Uint64() uint64 {
	switch v.kind {
	case Number:
		if n, ok := parseExactUint64(v.raw); ok {
			return n
		}
		f := v.num
		if f <= 0 {
			return 0
		}
		if f >= math.MaxUint64 {
			return math.MaxUint64
		}
		return uint64(f)
	case String:
		n, _ := strconv.ParseUint(v.str, 10, 64)
		return n
	case True:
		return 1
	default:
		return 0
	}
}

// Uint returns Uint64 narrowed (with saturation) to the platform uint width.
func (v Value) Uint() uint { return uint(saturateUint64ToBits(v.Uint64(), strconv.IntSize)) }

// Uint32 returns Uint64 saturated to the range of uint32.
func (v Value) Uint32() uint32 { return uint32(saturateUint64ToBits(v.Uint64(), 32)) }

// Uint16 returns Uint64 saturated to the range of uint16.
func (v Value) Uint16() uint16 { return uint16(saturateUint64ToBits(v.Uint64(), 16)) }

// Uint8 returns Uint64 saturated to the range of uint8.
func (v Value) Uint8() uint8 { return uint8(saturateUint64ToBits(v.Uint64(), 8)) }

func saturateUint64ToBits(n uint64, bits int) uint64 {
	if bits >= 64 {
		return n
	}
	max := uint64(1)<<uint(bits) - 1
	if n > max {
		return max
	}
	return n
}

// Float64 is the IEEE-754 value of the raw number. True yields 1.0; a
// String yields the float64 parse of its decoded content (0.0 if it does
// not parse); any other kind yields 0.0.
func (v Value) Float64() float64 {
	switch v.kind {
	case Number:
		return v.num
	case String:
		f, _ := strconv.ParseFloat(v.str, 64)
		return f
	case True:
		return 1
	default:
		return 0
	}
}

// Float32 narrows Float64 to float32.
func (v Value) Float32() float32 { return float32(v.Float64()) }

// String returns the Value's string view: for a String kind this is the
// decoded content (escapes resolved); for Number/True/False/Null it is the
// raw literal text; for Array/Object it is the raw JSON; NotExist yields "".
func (v Value) String() string {
	switch v.kind {
	case String:
		return v.str
	case Number:
		if v.raw != "" {
			return v.raw
		}
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case True:
		return "true"
	case False:
		return "false"
	case Null:
		return "null"
	case JSON:
		return v.raw
	default:
		return ""
	}
}

// Value decodes the Value into the nearest native Go representation: a
// string, float64, bool, nil, []any or map[string]any. This mirrors what
// encoding/json would produce for the same bytes, without requiring a
// target type.
func (v Value) Value() any {
	switch v.kind {
	case String:
		return v.str
	case Number:
		return v.num
	case True:
		return true
	case False:
		return false
	case Null:
		return nil
	case JSON:
		if v.IsArray() {
			arr := v.Array()
			out := make([]any, len(arr))
			for i, e := range arr {
				out[i] = e.Value()
			}
			return out
		}
		out := make(map[string]any)
		v.Foreach(func(k, val Value) bool {
			out[k.String()] = val.Value()
			return true
		})
		return out
	default:
		return nil
	}
}

// Array returns the Value's elements: for an Array, each element in
// source order; for an Object, each member's value, ignoring keys; for
// NotExist, an empty slice; for anything else, a one-element slice
// containing the Value itself (matching spec.md §4.B).
func (v Value) Array() []Value {
	if v.kind == NotExist {
		return []Value{}
	}
	if !v.IsArray() && !v.IsObject() {
		return []Value{v}
	}
	var out []Value
	v.Foreach(func(_, val Value) bool {
		out = append(out, val)
		return true
	})
	return out
}

// Map returns the Object's members keyed by their decoded name. Calling
// Map on a non-object returns an empty, non-nil map.
func (v Value) Map() map[string]Value {
	out := make(map[string]Value)
	if !v.IsObject() {
		return out
	}
	v.Foreach(func(k, val Value) bool {
		out[k.String()] = val
		return true
	})
	return out
}

// Foreach iterates the Value's children in source order: for an Object it
// calls iterator(key, value) per member; for an Array it calls
// iterator(Value{}, element) per element (the key argument does not
// exist); for any other kind it calls iterator once with the Value itself.
// Iteration stops as soon as iterator returns false.
func (v Value) Foreach(iterator func(key, value Value) bool) {
	if !v.Exists() {
		return
	}
	if v.kind != JSON {
		iterator(Value{}, v)
		return
	}
	json := v.raw
	var obj bool
	var i int
	var key, val Value
	for ; i < len(json); i++ {
		if json[i] == '{' {
			i++
			obj = true
			break
		}
		if json[i] == '[' {
			i++
			break
		}
		if json[i] > ' ' {
			return
		}
	}
	var count int
	for ; i < len(json); i++ {
		if obj {
			if json[i] != '"' {
				continue
			}
			s := i
			i, key = scanValueAt(json, i)
			if obj {
				key.kind = String
				_ = s
			}
			i = skipToColon(json, i)
		}
		for ; i < len(json) && json[i] <= ' '; i++ {
		}
		if i >= len(json) {
			break
		}
		if (!obj && json[i] == ']') || (obj && json[i] == '}') {
			break
		}
		if !obj && json[i] == ',' {
			continue
		}
		i, val = scanValueAt(json, i)
		if !val.Exists() {
			break
		}
		count++
		if !iterator(key, val) {
			break
		}
	}
}

// skipToColon advances from i, just after an object member's key, to the
// next ':' and returns the index just past it. Whitespace between the
// colon and the member's value is left for the caller to skip.
func skipToColon(json string, i int) int {
	for ; i < len(json); i++ {
		if json[i] == ':' {
			return i + 1
		}
	}
	return i
}

// Get evaluates path against this Value's raw bytes, exactly as the
// package-level Get evaluates against a whole document.
func (v Value) Get(path string) Value {
	return Get(v.raw, path)
}

// GetMulti evaluates every path against this Value's raw bytes.
func (v Value) GetMulti(paths ...string) []Value {
	out := make([]Value, len(paths))
	for i, p := range paths {
		out[i] = v.Get(p)
	}
	return out
}

// Less orders two Values by the fixed kind order from spec.md §4.D:
// Null < False < True < Number < String < Array < Object, and within a
// kind by numeric or (optionally case-insensitive) lexicographic value.
func (v Value) Less(other Value, caseSensitive bool) bool {
	if v.kind != other.kind {
		return kindOrder(v.kind) < kindOrder(other.kind)
	}
	switch v.kind {
	case String:
		if caseSensitive {
			return v.str < other.str
		}
		return lessFoldASCII(v.str, other.str)
	case Number:
		return v.num < other.num
	case JSON:
		return v.IsArray() && other.IsObject()
	default:
		return false
	}
}

// kindOrder maps a Kind to its position in the query/sort ordering defined
// by spec.md §4.D. Array and Object share the JSON position after String;
// Less itself places an array before an object.
func kindOrder(k Kind) int {
	switch k {
	case Null:
		return 0
	case False:
		return 1
	case True:
		return 2
	case Number:
		return 3
	case String:
		return 4
	case JSON:
		return 5
	default:
		return -1
	}
}
