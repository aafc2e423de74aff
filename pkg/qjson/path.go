package qjson

// This file parses one path segment at a time from the front of a path
// string. It deliberately does not build a complete segment list up
// front: a Count/Projection or Query segment may own the entire
// remainder of the path as its own sub-expression, so segment boundaries
// can only be found by a parser that understands what kind of segment it
// is currently inside. navigate.go drives this one segment at a time.

// readKeySegment reads a plain key (or index, or wildcard key) segment
// from the front of path. It stops at the first unescaped '.' or '|', or
// at the end of the string. A backslash escapes the following byte,
// removing it from consideration as a separator or wildcard and dropping
// the backslash itself from literal.
//
// pattern is the segment text with backslashes kept (suitable for glob
// matching); literal is the same text with backslash-escapes resolved
// (suitable for byte-equal comparison); wild reports whether an unescaped
// '*' or '?' appears in pattern. rest is whatever follows the consumed
// separator, or "" if none was found.
func readKeySegment(path string) (pattern, literal string, wild bool, rest string) {
	var pat, lit []byte
	i := 0
	for ; i < len(path); i++ {
		c := path[i]
		if c == '\\' && i+1 < len(path) {
			pat = append(pat, c, path[i+1])
			lit = append(lit, path[i+1])
			i++
			continue
		}
		if c == '.' || c == '|' {
			break
		}
		if c == '*' || c == '?' {
			wild = true
		}
		pat = append(pat, c)
		lit = append(lit, c)
	}
	if i < len(path) {
		rest = path[i+1:]
	}
	return string(pat), string(lit), wild, rest
}

// allDigits reports whether s is a non-empty run of ASCII decimal digits,
// and returns its value when so; this is the "pure decimal integer ->
// Index(n)" rule from spec.md §4.C, applied only when the current value
// being navigated is an array (see evalKeySegment in navigate.go).
func allDigits(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
		n = n*10 + int(s[i]-'0')
	}
	return n, true
}

// readModifierSegment parses an "@name" or "@name:arg" segment starting
// at path[0] == '@'. The argument, when present, is read as a complete
// JSON value if it begins with '{', '[' or '"'; otherwise it runs as raw
// bytes until the next unescaped '|' or the end of the path (dots inside
// a raw argument are NOT segment separators — only an unescaped pipe
// terminates it, per spec.md's modarg grammar).
func readModifierSegment(path string) (name, arg, rest string) {
	i := 1
	for ; i < len(path); i++ {
		c := path[i]
		if c == ':' || c == '.' || c == '|' {
			break
		}
	}
	name = path[1:i]
	if i >= len(path) || path[i] != ':' {
		if i < len(path) {
			rest = path[i+1:]
		}
		return name, "", rest
	}
	i++ // skip ':'
	argStart := i
	if i < len(path) && (path[i] == '{' || path[i] == '[' || path[i] == '"') {
		end := skipValueAt(path, i)
		arg = path[argStart:end]
		i = end
		if i < len(path) && path[i] == '|' {
			rest = path[i+1:]
		} else if i < len(path) && path[i] == '.' {
			rest = path[i+1:]
		}
		return name, arg, rest
	}
	for ; i < len(path); i++ {
		if path[i] == '\\' && i+1 < len(path) {
			i++
			continue
		}
		if path[i] == '|' {
			break
		}
	}
	arg = path[argStart:i]
	if i < len(path) {
		rest = path[i+1:]
	}
	return name, arg, rest
}

// findMatchingParen returns the index of the ')' matching the '(' at
// path[open], honoring nested parens and quoted strings (a ')' inside a
// string literal does not count). It returns -1 if unbalanced.
func findMatchingParen(path string, open int) int {
	depth := 0
	for i := open; i < len(path); i++ {
		switch path[i] {
		case '"':
			i++
			for ; i < len(path); i++ {
				if path[i] == '\\' {
					i++
					continue
				}
				if path[i] == '"' {
					break
				}
			}
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}
