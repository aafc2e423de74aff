package qjson

// Parse wraps the whole of json as a Value, with kind inferred from its
// first non-whitespace byte. An empty or entirely-whitespace input yields
// NotExist.
func Parse(json string) Value {
	i := skipSpace(json, 0)
	if i >= len(json) {
		return Value{}
	}
	_, v := scanValueAt(json, i)
	return v
}

// ParseBytes is Parse for a []byte document.
func ParseBytes(json []byte) Value {
	return Parse(string(json))
}

// Get evaluates path against json and returns the matching Value, or a
// NotExist Value if nothing matches. Get never panics and never returns a
// Go error: every failure mode — a malformed path, a malformed document,
// an out-of-range index — collapses to NotExist, per spec.md §7.
func Get(json, path string) Value {
	if len(path) >= 2 && path[0] == '.' && path[1] == '.' {
		return evalPath(buildJSONLinesArray(json), path[2:])
	}
	return evalPath(Parse(json), path)
}

// GetBytes is Get for a []byte document.
func GetBytes(json []byte, path string) Value {
	return Get(string(json), path)
}

// GetMulti evaluates every path against json, in order.
func GetMulti(json string, paths ...string) []Value {
	out := make([]Value, len(paths))
	for i, p := range paths {
		out[i] = Get(json, p)
	}
	return out
}

// GetBytesMulti is GetMulti for a []byte document.
func GetBytesMulti(json []byte, paths ...string) []Value {
	return GetMulti(string(json), paths...)
}

// Foreach iterates json as a JSON-Lines stream: each top-level value is
// passed to iterator in turn, stopping early if iterator returns false.
// A single ordinary JSON document is the degenerate one-value case.
func Foreach(json string, iterator func(Value) bool) {
	i := skipSpace(json, 0)
	for i < len(json) {
		next, v := scanValueAt(json, i)
		if !v.Exists() {
			return
		}
		if !iterator(v) {
			return
		}
		i = skipSpace(json, next)
	}
}
