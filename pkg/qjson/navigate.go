package qjson

import "strconv"

// evalPath evaluates path against cur, one segment at a time: a '@'
// segment goes to the modifier pipeline, a '#' segment to count,
// projection or query handling, and anything else to key/index lookup.
// An empty path returns cur unchanged; a cur that has already resolved to
// NotExist short-circuits immediately (spec.md's Mealy-machine terminal
// rule: once a segment produces NotExist, later segments never run).
func evalPath(cur Value, path string) Value {
	if path == "" {
		return cur
	}
	if !cur.Exists() {
		return Value{}
	}
	switch path[0] {
	case '@':
		return evalModifierSegment(cur, path)
	case '#':
		return evalHashSegment(cur, path)
	default:
		return evalKeySegment(cur, path)
	}
}

// evalKeySegment handles a plain (possibly wildcarded) key segment: an
// Index lookup when cur is an array and the segment is pure decimal, a
// member lookup when cur is an object, and NotExist for every other
// combination (a bare key against an array, or any key against a scalar).
func evalKeySegment(cur Value, path string) Value {
	pattern, literal, wild, rest := readKeySegment(path)
	if cur.IsArray() {
		if n, ok := allDigits(literal); ok {
			return evalPath(indexArray(cur, n), rest)
		}
		return Value{}
	}
	if cur.IsObject() {
		return evalPath(lookupObjectKey(cur, pattern, literal, wild), rest)
	}
	return Value{}
}

// evalModifierSegment parses one "@name[:arg]" segment, applies it, and
// continues evaluating the remainder of the path against the result.
func evalModifierSegment(cur Value, path string) Value {
	name, arg, rest := readModifierSegment(path)
	return evalPath(applyModifier(cur, name, arg), rest)
}

// evalHashSegment handles every form of a segment starting with '#':
// a bare count, a "#.sub" projection, and a "#(...)" or "#(...)#" query.
func evalHashSegment(cur Value, path string) Value {
	if len(path) >= 2 && path[1] == '(' {
		end := findMatchingParen(path, 1)
		if end < 0 {
			return Value{}
		}
		pred := parseFilterQuery(path[2:end])
		i := end + 1
		all := false
		if i < len(path) && path[i] == '#' {
			all = true
			i++
		}
		if i < len(path) && path[i] == '.' {
			return evalQuery(cur, pred, all, path[i+1:], true)
		}
		rest := ""
		if i < len(path) && path[i] == '|' {
			rest = path[i+1:]
		}
		return evalPath(evalQuery(cur, pred, all, "", false), rest)
	}
	if len(path) >= 2 && path[1] == '.' {
		return projection(cur, path[2:])
	}
	rest := ""
	if len(path) >= 2 && path[1] == '|' {
		rest = path[2:]
	}
	return evalPath(countValue(cur), rest)
}

// countValue implements the Count segment: the element count of an array
// or the member count of an object, as an owned Number Value. Count on a
// non-array, non-object value yields NotExist (spec.md §8 boundary case).
func countValue(cur Value) Value {
	if !cur.IsArray() && !cur.IsObject() {
		return Value{}
	}
	n := 0
	cur.Foreach(func(_, _ Value) bool {
		n++
		return true
	})
	s := strconv.Itoa(n)
	return Value{kind: Number, raw: s, num: float64(n)}
}

// projection implements the Projection segment: apply sub to every
// element of an array, or every value of an object (keys discarded), and
// gather the existing results into an owned JSON array. Elements that
// resolve to NotExist contribute nothing, per spec.md's projection law.
func projection(cur Value, sub string) Value {
	if !cur.IsArray() && !cur.IsObject() {
		return Value{}
	}
	var parts []string
	cur.Foreach(func(_, elem Value) bool {
		v := elem
		if sub != "" {
			v = elem.Get(sub)
		}
		if v.Exists() {
			parts = append(parts, v.Raw())
		}
		return true
	})
	return buildArrayValue(parts)
}

// evalQuery implements the Query segment. It evaluates pred against every
// element of cur (an array, or an object treated element-wise by value).
// With all == false, the first matching element becomes the result
// (continuing into `continuation` when hasContinuation is set, exactly
// like Value.Get). With all == true, every matching element — or its
// `continuation` projection — is gathered into an owned JSON array.
func evalQuery(cur Value, pred predicate, all bool, continuation string, hasContinuation bool) Value {
	if !cur.IsArray() && !cur.IsObject() {
		return Value{}
	}
	var matches []Value
	cur.Foreach(func(_, elem Value) bool {
		if pred.evaluate(elem) {
			matches = append(matches, elem)
		}
		return true
	})
	if !all {
		if len(matches) == 0 {
			return Value{}
		}
		first := matches[0]
		if hasContinuation {
			return first.Get(continuation)
		}
		return first
	}
	var parts []string
	for _, m := range matches {
		v := m
		if hasContinuation {
			v = m.Get(continuation)
		}
		if v.Exists() {
			parts = append(parts, v.Raw())
		}
	}
	return buildArrayValue(parts)
}

// indexArray returns the (n+1)th element of an array Value by repeated
// skip, 0-based. An out-of-range n yields NotExist, never the last
// element (spec.md §8 boundary case).
func indexArray(cur Value, n int) Value {
	json := cur.raw
	i := skipSpace(json, 1)
	idx := 0
	for i < len(json) && json[i] != ']' {
		vi, val := scanValueAt(json, i)
		if !val.Exists() {
			return Value{}
		}
		if idx == n {
			return val
		}
		idx++
		i = skipSpace(json, vi)
		if i < len(json) && json[i] == ',' {
			i = skipSpace(json, i+1)
			continue
		}
		break
	}
	return Value{}
}

// lookupObjectKey scans an object's members in source order, returning
// the first one whose decoded name matches: by glob against pattern when
// wild is set, otherwise by byte-equality against literal.
func lookupObjectKey(cur Value, pattern, literal string, wild bool) Value {
	json := cur.raw
	i := skipSpace(json, 1)
	for i < len(json) && json[i] != '}' {
		if json[i] != '"' {
			return Value{}
		}
		ki, key := scanString(json, i)
		i = skipSpace(json, ki)
		if i < len(json) && json[i] == ':' {
			i++
		}
		i = skipSpace(json, i)
		vi, val := scanValueAt(json, i)
		if !val.Exists() {
			return Value{}
		}
		var matched bool
		if wild {
			matched = matchGlob(key.str, pattern)
		} else {
			matched = key.str == literal
		}
		if matched {
			return val
		}
		i = skipSpace(json, vi)
		if i < len(json) && json[i] == ',' {
			i = skipSpace(json, i+1)
			continue
		}
		break
	}
	return Value{}
}

// skipSpace is the forgiving scanner's own whitespace skip. It is kept
// separate from validate.go's skipWS so the forgiving and strict code
// paths never share logic (spec.md §9).
func skipSpace(json string, i int) int {
	for i < len(json) && json[i] <= ' ' {
		i++
	}
	return i
}

// buildArrayValue wraps the given element texts in a new, owned JSON
// array buffer, comma-separated, as Projection and query-all results do.
func buildArrayValue(parts []string) Value {
	n := 2
	for _, p := range parts {
		n += len(p) + 1
	}
	buf := make([]byte, 0, n)
	buf = append(buf, '[')
	for i, p := range parts {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, p...)
	}
	buf = append(buf, ']')
	return Value{kind: JSON, raw: string(buf)}
}

// buildJSONLinesArray treats json as newline/whitespace-delimited JSON
// values (one document per logical "line", though the separator need not
// literally be a newline) and synthesizes an owned array Value from them,
// implementing the JSONLinesRoot segment from spec.md §4.D.
func buildJSONLinesArray(json string) Value {
	var parts []string
	i := skipSpace(json, 0)
	for i < len(json) {
		vi, val := scanValueAt(json, i)
		if !val.Exists() {
			break
		}
		parts = append(parts, val.Raw())
		i = skipSpace(json, vi)
	}
	return buildArrayValue(parts)
}
