package qjson

import (
	"strconv"
	"unicode/utf16"
	"unicode/utf8"
)

// scanValueAt reads one JSON value starting at or after index i (leading
// whitespace is skipped), returning the index of the first byte past the
// value and a Value describing it. If no value begins in json[i:], it
// returns (i, Value{}) — callers treat a non-Exists result as "no value
// here", never as an error; the forgiving scanner does not report errors.
func scanValueAt(json string, i int) (int, Value) {
	for ; i < len(json); i++ {
		if json[i] > ' ' {
			break
		}
	}
	if i >= len(json) {
		return i, Value{}
	}
	switch {
	case json[i] == '"':
		return scanString(json, i)
	case json[i] == '{' || json[i] == '[':
		return scanContainer(json, i)
	case json[i] == 't':
		return scanLiteral(json, i, "true", True)
	case json[i] == 'f':
		return scanLiteral(json, i, "false", False)
	case json[i] == 'n':
		return scanLiteral(json, i, "null", Null)
	case json[i] == '-' || (json[i] >= '0' && json[i] <= '9'):
		return scanNumber(json, i)
	default:
		return i, Value{}
	}
}

// scanString scans a JSON string starting at the opening quote json[i].
// It tolerates an unterminated string by running to the end of input,
// matching the forgiving scanner's "never error" contract.
func scanString(json string, i int) (int, Value) {
	start := i
	i++
	escaped := false
	for ; i < len(json); i++ {
		if json[i] == '\\' {
			escaped = true
			i++
			continue
		}
		if json[i] == '"' {
			i++
			raw := json[start:i]
			content := raw[1 : len(raw)-1]
			str := content
			if escaped {
				str = unescape(content)
			}
			return i, Value{kind: String, raw: raw, str: str}
		}
	}
	raw := json[start:]
	content := raw[1:]
	str := content
	if escaped {
		str = unescape(content)
	}
	return i, Value{kind: String, raw: raw, str: str}
}

// scanContainer scans a balanced object or array starting at json[i],
// which must be '{' or '['. String contents (including escaped quotes and
// brackets inside strings) are skipped without being interpreted as
// structure. An unbalanced container runs to the end of input.
func scanContainer(json string, i int) (int, Value) {
	start := i
	open := json[i]
	var close byte = '}'
	if open == '[' {
		close = ']'
	}
	depth := 0
	for ; i < len(json); i++ {
		switch json[i] {
		case '"':
			i++
			for ; i < len(json); i++ {
				if json[i] == '\\' {
					i++
					continue
				}
				if json[i] == '"' {
					break
				}
			}
			if i >= len(json) {
				return len(json), Value{kind: JSON, raw: json[start:]}
			}
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				i++
				return i, Value{kind: JSON, raw: json[start:i]}
			}
		}
	}
	return len(json), Value{kind: JSON, raw: json[start:]}
}

// scanLiteral matches the lowercase literal lit (true/false/null) at
// json[i]. A tail cut short by the end of input is accepted as the
// literal when every byte present matches; any other mismatch yields
// NotExist with the index one byte past i. Neither case is an error, since
// the forgiving scanner never errors; callers that need strict validation
// use validate.go instead.
func scanLiteral(json string, i int, lit string, kind Kind) (int, Value) {
	start := i
	n := len(lit)
	end := i + n
	if end > len(json) {
		end = len(json)
	}
	if json[i:end] == lit[:end-i] {
		return end, Value{kind: kind, raw: json[start:end]}
	}
	return i + 1, Value{}
}

// scanNumber consumes a JSON number per RFC 8259's grammar, tolerating a
// truncated exponent or fraction (the forgiving scanner stops at the last
// byte that still looks like part of a number rather than erroring).
func scanNumber(json string, i int) (int, Value) {
	start := i
	if i < len(json) && json[i] == '-' {
		i++
	}
	for ; i < len(json) && json[i] >= '0' && json[i] <= '9'; i++ {
	}
	if i < len(json) && json[i] == '.' {
		i++
		for ; i < len(json) && json[i] >= '0' && json[i] <= '9'; i++ {
		}
	}
	if i < len(json) && (json[i] == 'e' || json[i] == 'E') {
		j := i + 1
		if j < len(json) && (json[j] == '+' || json[j] == '-') {
			j++
		}
		if j < len(json) && json[j] >= '0' && json[j] <= '9' {
			i = j
			for ; i < len(json) && json[i] >= '0' && json[i] <= '9'; i++ {
			}
		}
	}
	raw := json[start:i]
	f, _ := strconv.ParseFloat(raw, 64)
	return i, Value{kind: Number, raw: raw, num: f}
}

// skipValueAt advances past one JSON value starting at or after index i
// without materializing a Value, for navigation paths that only need to
// find where a value ends.
func skipValueAt(json string, i int) int {
	j, _ := scanValueAt(json, i)
	return j
}

// unescape resolves the JSON backslash escapes in s (s must not include
// the surrounding quotes), including \uXXXX and UTF-16 surrogate pairs.
// A malformed \u sequence degrades to the Unicode replacement character,
// and an unknown escape yields the byte after the backslash, rather than
// aborting — the forgiving scanner never errors.
func unescape(s string) string {
	if indexByte(s, '\\') < 0 {
		return s
	}
	buf := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' {
			buf = append(buf, s[i])
			continue
		}
		i++
		if i >= len(s) {
			break
		}
		switch s[i] {
		case '"':
			buf = append(buf, '"')
		case '\\':
			buf = append(buf, '\\')
		case '/':
			buf = append(buf, '/')
		case 'b':
			buf = append(buf, '\b')
		case 'f':
			buf = append(buf, '\f')
		case 'n':
			buf = append(buf, '\n')
		case 'r':
			buf = append(buf, '\r')
		case 't':
			buf = append(buf, '\t')
		case 'u':
			r, n := hexToRune(s[i+1:])
			i += n
			if utf16.IsSurrogate(r) {
				if i+6 < len(s) && s[i+1] == '\\' && s[i+2] == 'u' {
					r2, n2 := hexToRune(s[i+3:])
					if dec := utf16.DecodeRune(r, r2); dec != utf8.RuneError {
						r = dec
						i += 2 + n2
					}
				}
			}
			var tmp [utf8.UTFMax]byte
			w := utf8.EncodeRune(tmp[:], r)
			buf = append(buf, tmp[:w]...)
		default:
			buf = append(buf, s[i])
		}
	}
	return string(buf)
}

// hexToRune parses up to 4 hex digits from s as a rune, returning the
// number of bytes consumed (4 on success). An invalid or short sequence
// yields the Unicode replacement character and consumes what it can.
func hexToRune(s string) (rune, int) {
	n := 4
	if len(s) < n {
		n = len(s)
	}
	v, err := strconv.ParseUint(s[:n], 16, 32)
	if err != nil || n < 4 {
		return utf8.RuneError, n
	}
	return rune(v), n
}

// indexByte is a tiny local byte search kept to avoid importing strings
// for unescape and the parseExact helpers; strconv and unicode/utf8/utf16
// above cover the rest of this file's needs.
func indexByte(s string, c byte) int {
	for i := 0; i < len(s); i++ {
		if s[i] == c {
			return i
		}
	}
	return -1
}

// parseExactInt64 parses raw as a base-10 integer with no fractional or
// exponent part, reporting ok=false (rather than an error) when raw is not
// an exact integer literal so callers can fall back to the float path.
func parseExactInt64(raw string) (int64, bool) {
	if indexByte(raw, '.') >= 0 || indexByte(raw, 'e') >= 0 || indexByte(raw, 'E') >= 0 {
		return 0, false
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// parseExactUint64 parses raw as a base-10 unsigned integer with no
// fractional or exponent part.
func parseExactUint64(raw string) (uint64, bool) {
	if indexByte(raw, '.') >= 0 || indexByte(raw, 'e') >= 0 || indexByte(raw, 'E') >= 0 || indexByte(raw, '-') >= 0 {
		return 0, false
	}
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// equalFoldASCII reports whether a and b are equal under ASCII case
// folding, used by Bool's "true"/"True"/"TRUE" coercion.
func equalFoldASCII(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		ca, cb := a[i], b[i]
		if ca >= 'A' && ca <= 'Z' {
			ca += 'a' - 'A'
		}
		if cb >= 'A' && cb <= 'Z' {
			cb += 'a' - 'A'
		}
		if ca != cb {
			return false
		}
	}
	return true
}

// lessFoldASCII compares a and b ASCII-case-insensitively, for Value.Less
// with caseSensitive=false.
func lessFoldASCII(a, b string) bool {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		ca, cb := a[i], b[i]
		if ca >= 'A' && ca <= 'Z' {
			ca += 'a' - 'A'
		}
		if cb >= 'A' && cb <= 'Z' {
			cb += 'a' - 'A'
		}
		if ca != cb {
			return ca < cb
		}
	}
	return len(a) < len(b)
}
