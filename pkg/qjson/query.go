package qjson

import "strconv"

// predicate is the parsed form of a "#(...)" query body: compare the
// value found by evaluating subPath against each candidate element to
// literal using op, or — when op is empty — just check that subPath
// exists and is truthy.
type predicate struct {
	subPath string
	op      string
	literal string
	litKind Kind
}

// queryOperators lists recognized operator tokens, longest first so that
// e.g. "!=" is not mistaken for a bare "=" scan (spec.md §4.E).
var queryOperators = []string{"<=", ">=", "!=", "==", "!%", "<", ">", "=", "%"}

// parseFilterQuery splits the text inside "#(...)" into a sub-path, an
// operator, and a literal. A literal is absent when no top-level operator
// is found (inner is then wholly the sub-path, and the predicate is an
// existence/truthy check). Parens nested inside inner (from a query used
// as another query's sub-path, e.g. "nets.#(==\"fb\")") are skipped over
// rather than scanned for operators.
func parseFilterQuery(inner string) predicate {
	depth := 0
	for i := 0; i < len(inner); i++ {
		c := inner[i]
		switch {
		case c == '"':
			i++
			for ; i < len(inner); i++ {
				if inner[i] == '\\' {
					i++
					continue
				}
				if inner[i] == '"' {
					break
				}
			}
		case c == '(':
			depth++
		case c == ')':
			depth--
		case depth == 0:
			if op, ok := matchOperatorAt(inner, i); ok {
				lit, kind := parseQueryLiteral(inner[i+len(op):])
				if op == "==" {
					op = "="
				}
				return predicate{subPath: inner[:i], op: op, literal: lit, litKind: kind}
			}
		}
	}
	return predicate{subPath: inner}
}

func matchOperatorAt(s string, i int) (string, bool) {
	for _, op := range queryOperators {
		if hasPrefixAt(s, i, op) {
			return op, true
		}
	}
	return "", false
}

func hasPrefixAt(s string, i int, prefix string) bool {
	if i+len(prefix) > len(s) {
		return false
	}
	return s[i:i+len(prefix)] == prefix
}

// parseQueryLiteral reads the literal that follows a query operator: a
// quoted string (escapes resolved), the bareword literals true/false/null,
// a number, or — per spec.md §9's Open Question — any other bareword
// treated as a string.
func parseQueryLiteral(s string) (string, Kind) {
	if s == "" {
		return "", NotExist
	}
	if s[0] == '"' {
		end := 1
		for ; end < len(s); end++ {
			if s[end] == '\\' {
				end++
				continue
			}
			if s[end] == '"' {
				break
			}
		}
		if end > len(s) {
			end = len(s)
		}
		content := s[1:end]
		return unescape(content), String
	}
	switch s {
	case "true":
		return "true", True
	case "false":
		return "false", False
	case "null":
		return "null", Null
	}
	if _, err := strconv.ParseFloat(s, 64); err == nil {
		return s, Number
	}
	return s, String
}

// evaluate reports whether elem satisfies p, evaluating p.subPath against
// elem first. An empty p.subPath refers to elem itself (queries like
// "#(=="fb")" compare the element directly, used for arrays of scalars).
func (p predicate) evaluate(elem Value) bool {
	candidate := elem
	if p.subPath != "" {
		candidate = elem.Get(p.subPath)
	}
	if p.op == "" {
		return candidate.Exists() && isTruthy(candidate)
	}
	lit := literalValue(p.literal, p.litKind)
	switch p.op {
	case "=":
		return valuesEqual(candidate, lit)
	case "!=":
		return !valuesEqual(candidate, lit)
	case "<":
		return candidate.Less(lit, true)
	case "<=":
		return candidate.Less(lit, true) || valuesEqual(candidate, lit)
	case ">":
		return lit.Less(candidate, true)
	case ">=":
		return lit.Less(candidate, true) || valuesEqual(candidate, lit)
	case "%":
		return matchGlob(candidate.String(), p.literal)
	case "!%":
		return !matchGlob(candidate.String(), p.literal)
	default:
		return false
	}
}

// literalValue builds a synthetic Value out of a query literal so it can
// be compared against a candidate with the same Less/equality machinery
// used elsewhere.
func literalValue(text string, kind Kind) Value {
	switch kind {
	case String:
		return Value{kind: String, str: text, raw: `"` + text + `"`}
	case Number:
		f, _ := strconv.ParseFloat(text, 64)
		return Value{kind: Number, raw: text, num: f}
	case True:
		return Value{kind: True, raw: "true"}
	case False:
		return Value{kind: False, raw: "false"}
	case Null:
		return Value{kind: Null, raw: "null"}
	default:
		return Value{}
	}
}

// isTruthy reports whether v counts as "truthy" for a no-operator
// existence predicate: non-null, non-false, and — for strings and
// containers — non-empty.
func isTruthy(v Value) bool {
	switch v.kind {
	case Null, False, NotExist:
		return false
	case String:
		return v.str != ""
	case JSON:
		return len(v.Array()) > 0
	default:
		return true
	}
}

// valuesEqual compares two Values by JSON-scalar equality: numbers
// numerically, strings by decoded bytes, booleans/null by kind, and
// containers are never equal to a query literal (queries only ever
// compare against scalars, per spec.md §4.D).
func valuesEqual(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case Number:
		return a.num == b.num
	case String:
		return a.str == b.str
	case True, False, Null:
		return true
	default:
		return false
	}
}

// matchGlob reports whether str matches pattern, where '*' matches any
// run of bytes (including none), '?' matches exactly one byte, and '\'
// escapes the following pattern byte to match it literally.
func matchGlob(str, pattern string) bool {
	si, pi := 0, 0
	starIdx, starMatch := -1, 0
	for si < len(str) {
		if pi < len(pattern) {
			c := pattern[pi]
			if c == '\\' && pi+1 < len(pattern) {
				if str[si] == pattern[pi+1] {
					si++
					pi += 2
					continue
				}
			} else if c == '?' {
				si++
				pi++
				continue
			} else if c == '*' {
				starIdx = pi
				starMatch = si
				pi++
				continue
			} else if str[si] == c {
				si++
				pi++
				continue
			}
		}
		if starIdx != -1 {
			pi = starIdx + 1
			starMatch++
			si = starMatch
			continue
		}
		return false
	}
	for pi < len(pattern) && pattern[pi] == '*' {
		pi++
	}
	return pi == len(pattern)
}
