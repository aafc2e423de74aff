package qjson

import (
	"github.com/sivaosorg/unify4g"
)

// Style aliases unify4g's terminal styling table: a pair of ANSI escape
// sequences (start, end) per JSON token class, plus an Append hook that
// colorizeJSON does not call.
type Style = unify4g.Style

// DefaultStyle mirrors a conventional light-terminal palette: blue keys,
// green strings, yellow numbers, magenta literals.
var DefaultStyle = &unify4g.Style{
	Key:      [2]string{"\033[1;34m", "\033[0m"},
	String:   [2]string{"\033[1;32m", "\033[0m"},
	Number:   [2]string{"\033[1;33m", "\033[0m"},
	True:     [2]string{"\033[1;35m", "\033[0m"},
	False:    [2]string{"\033[1;35m", "\033[0m"},
	Null:     [2]string{"\033[1;35m", "\033[0m"},
	Escape:   [2]string{"\033[1;31m", "\033[0m"},
	Brackets: [2]string{"\033[1;37m", "\033[0m"},
	Append:   func(dst []byte, c byte) []byte { return append(dst, c) },
}

// DarkStyle uses muted 256-color tones suited to dark terminal backgrounds.
var DarkStyle = &unify4g.Style{
	Key:      [2]string{"\033[38;5;25m", "\033[0m"},
	String:   [2]string{"\033[38;5;34m", "\033[0m"},
	Number:   [2]string{"\033[38;5;178m", "\033[0m"},
	True:     [2]string{"\033[38;5;127m", "\033[0m"},
	False:    [2]string{"\033[38;5;127m", "\033[0m"},
	Null:     [2]string{"\033[38;5;127m", "\033[0m"},
	Escape:   [2]string{"\033[38;5;124m", "\033[0m"},
	Brackets: [2]string{"\033[38;5;245m", "\033[0m"},
	Append:   func(dst []byte, c byte) []byte { return append(dst, c) },
}

// MonochromeStyle renders every token in shades of gray, for terminals
// without color support or output that will be captured to a log file.
var MonochromeStyle = &unify4g.Style{
	Key:      [2]string{"\033[38;5;235m", "\033[0m"},
	String:   [2]string{"\033[38;5;255m", "\033[0m"},
	Number:   [2]string{"\033[38;5;240m", "\033[0m"},
	True:     [2]string{"\033[38;5;255m", "\033[0m"},
	False:    [2]string{"\033[38;5;232m", "\033[0m"},
	Null:     [2]string{"\033[38;5;243m", "\033[0m"},
	Escape:   [2]string{"\033[38;5;237m", "\033[0m"},
	Brackets: [2]string{"\033[38;5;255m", "\033[0m"},
	Append:   func(dst []byte, c byte) []byte { return append(dst, c) },
}

// StringColored returns the value's raw JSON with ANSI styling applied
// using DefaultStyle. Non-existent values render as an empty string.
func (v Value) StringColored() string {
	return v.WithStringColored(DefaultStyle)
}

// WithStringColored returns the value's raw JSON with ANSI styling applied
// using the given style. A nil style falls back to DefaultStyle.
func (v Value) WithStringColored(style *Style) string {
	if !v.Exists() {
		return ""
	}
	if style == nil {
		style = DefaultStyle
	}
	return string(colorizeJSON([]byte(v.Raw()), style))
}

// colorizeJSON walks raw JSON bytes token by token, wrapping each token in
// the start/end escape pair its class owns in style. Whitespace passes
// through unstyled; brackets, braces, commas and colons get the Brackets
// pair.
func colorizeJSON(raw []byte, style *Style) []byte {
	var out []byte
	i := 0
	for i < len(raw) {
		c := raw[i]
		switch {
		case c == '"':
			j := i + 1
			for j < len(raw) {
				if raw[j] == '\\' && j+1 < len(raw) {
					j += 2
					continue
				}
				if raw[j] == '"' {
					j++
					break
				}
				j++
			}
			if isObjectKey(raw, j) {
				out = appendStyled(out, raw[i:j], style.Key)
			} else {
				out = appendStyled(out, raw[i:j], style.String)
			}
			i = j
		case c == '{' || c == '}' || c == '[' || c == ']' || c == ',' || c == ':':
			out = appendStyled(out, raw[i:i+1], style.Brackets)
			i++
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			out = append(out, c)
			i++
		case c == 't' && hasPrefixAt(string(raw), i, "true"):
			out = appendStyled(out, raw[i:i+4], style.True)
			i += 4
		case c == 'f' && hasPrefixAt(string(raw), i, "false"):
			out = appendStyled(out, raw[i:i+5], style.False)
			i += 5
		case c == 'n' && hasPrefixAt(string(raw), i, "null"):
			out = appendStyled(out, raw[i:i+4], style.Null)
			i += 4
		default:
			j := i
			for j < len(raw) && isNumberByte(raw[j]) {
				j++
			}
			if j > i {
				out = appendStyled(out, raw[i:j], style.Number)
				i = j
				continue
			}
			out = append(out, c)
			i++
		}
	}
	return out
}

// isObjectKey reports whether the string token whose closing quote sits
// just before index end is immediately followed (modulo whitespace) by
// ':'.
func isObjectKey(raw []byte, end int) bool {
	j := end
	for j < len(raw) && (raw[j] == ' ' || raw[j] == '\t' || raw[j] == '\n' || raw[j] == '\r') {
		j++
	}
	return j < len(raw) && raw[j] == ':'
}

func isNumberByte(c byte) bool {
	return (c >= '0' && c <= '9') || c == '-' || c == '+' || c == '.' || c == 'e' || c == 'E'
}

func appendStyled(dst []byte, token []byte, pair [2]string) []byte {
	dst = append(dst, pair[0]...)
	dst = append(dst, token...)
	dst = append(dst, pair[1]...)
	return dst
}
