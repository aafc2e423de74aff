package qjson

import (
	"sort"
	"strconv"
	"sync"
)

// Transformer applies a named modifier to a JSON string, given the raw
// text of the value the modifier was invoked on and its (possibly empty)
// argument text. It mirrors the standard library's http.Handler split:
// most callers only need a function, which TransformerFunc adapts.
type Transformer interface {
	Apply(json, arg string) string
}

// TransformerFunc adapts a plain function to the Transformer interface.
type TransformerFunc func(json, arg string) string

// Apply calls f(json, arg).
func (f TransformerFunc) Apply(json, arg string) string { return f(json, arg) }

// transformerRegistry is a concurrency-safe name -> Transformer map. The
// package keeps one global instance; AddTransformer writes to it.
type transformerRegistry struct {
	mu sync.RWMutex
	m  map[string]Transformer
}

func (r *transformerRegistry) register(name string, t Transformer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.m[name] = t
}

func (r *transformerRegistry) lookup(name string) (Transformer, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.m[name]
	return t, ok
}

var globalRegistry = &transformerRegistry{m: make(map[string]Transformer)}

// DisableTransformers, when set true, makes every "@name" modifier
// segment resolve to NotExist without looking anything up — an escape
// hatch for callers evaluating untrusted paths who want to forbid the
// modifier pipeline outright.
var DisableTransformers bool

// AddTransformer registers fn under name, making it available to any path
// that references "@name". Registering under an existing name replaces
// it; built-ins (@reverse, @ugly, @pretty, @this, @valid, @flatten, @join)
// can be overridden the same way.
func AddTransformer(name string, fn TransformerFunc) {
	globalRegistry.register(name, fn)
}

// IsTransformerRegistered reports whether name resolves to a modifier,
// built-in or custom.
func IsTransformerRegistered(name string) bool {
	_, ok := globalRegistry.lookup(name)
	return ok
}

func init() {
	AddTransformer("this", applyThis)
	AddTransformer("valid", applyValid)
	AddTransformer("ugly", applyUgly)
	AddTransformer("pretty", applyPretty)
	AddTransformer("reverse", applyReverse)
	AddTransformer("flatten", applyFlatten)
	AddTransformer("join", applyJoin)
}

// applyModifier resolves name to a registered Transformer, runs it
// against cur's raw bytes with arg, and re-parses the result as a fresh,
// owned Value. An unknown name, or DisableTransformers being set, yields
// NotExist.
func applyModifier(cur Value, name, arg string) Value {
	if DisableTransformers {
		return Value{}
	}
	t, ok := globalRegistry.lookup(name)
	if !ok {
		return Value{}
	}
	return Parse(t.Apply(cur.Raw(), arg))
}

func applyThis(json, arg string) string { return json }

func applyValid(json, arg string) string {
	if Valid(json) {
		return json
	}
	return ""
}

func applyUgly(json, arg string) string { return compactJSON(json) }

func applyReverse(json, arg string) string {
	v := Parse(json)
	switch {
	case v.IsArray():
		var elems []string
		v.Foreach(func(_, e Value) bool {
			elems = append(elems, e.Raw())
			return true
		})
		reverseStrings(elems)
		return "[" + joinStrings(elems, ",") + "]"
	case v.IsObject():
		var members []string
		v.Foreach(func(k, e Value) bool {
			members = append(members, k.raw+":"+e.Raw())
			return true
		})
		reverseStrings(members)
		return "{" + joinStrings(members, ",") + "}"
	default:
		return json
	}
}

func applyFlatten(json, arg string) string {
	v := Parse(json)
	if !v.IsArray() {
		return json
	}
	deep := false
	if arg != "" {
		deep = Parse(arg).Get("deep").Bool()
	}
	var out []string
	var emit func(e Value)
	emit = func(e Value) {
		if e.IsArray() {
			e.Foreach(func(_, sub Value) bool {
				if deep {
					emit(sub)
				} else {
					out = append(out, sub.Raw())
				}
				return true
			})
			return
		}
		out = append(out, e.Raw())
	}
	v.Foreach(func(_, e Value) bool {
		emit(e)
		return true
	})
	return "[" + joinStrings(out, ",") + "]"
}

func applyJoin(json, arg string) string {
	v := Parse(json)
	if !v.IsArray() {
		return json
	}
	preserve := false
	if arg != "" {
		preserve = Parse(arg).Get("preserve").Bool()
	}
	values := make(map[string]string)
	var order []string
	v.Foreach(func(_, e Value) bool {
		if !e.IsObject() {
			return true
		}
		e.Foreach(func(k, val Value) bool {
			key := k.str
			if _, seen := values[key]; seen {
				if !preserve {
					values[key] = val.Raw()
				}
				return true
			}
			values[key] = val.Raw()
			order = append(order, key)
			return true
		})
		return true
	})
	parts := make([]string, len(order))
	for i, k := range order {
		parts[i] = quoteJSONString(k) + ":" + values[k]
	}
	return "{" + joinStrings(parts, ",") + "}"
}

// prettyOptions configures @pretty. applyPretty starts from the built-in
// defaults (two-space indent, no prefix, 80-column inlining, keys kept in
// source order); the zero value has no indent and a width of 0.
type prettyOptions struct {
	indent   string
	prefix   string
	width    int
	sortKeys bool
}

func applyPretty(json, arg string) string {
	v := Parse(json)
	if !v.Exists() {
		return json
	}
	opts := prettyOptions{indent: "  ", width: 80}
	if arg != "" {
		a := Parse(arg)
		if s := a.Get("indent"); s.Exists() {
			opts.indent = s.String()
		}
		if s := a.Get("prefix"); s.Exists() {
			opts.prefix = s.String()
		}
		if w := a.Get("width"); w.Exists() {
			opts.width = int(w.Int64())
		}
		opts.sortKeys = a.Get("sortKeys").Bool()
	}
	return opts.prefix + prettyValue(v, opts, opts.prefix)
}

type member struct {
	key string
	val Value
}

func orderedMembers(v Value, sortKeys bool) []member {
	var out []member
	v.Foreach(func(k, val Value) bool {
		out = append(out, member{key: k.str, val: val})
		return true
	})
	if sortKeys {
		sort.SliceStable(out, func(i, j int) bool { return out[i].key < out[j].key })
	}
	return out
}

// prettyValue renders v with indentation starting at curIndent. When
// opts.sortKeys is off, a container whose compact form fits within
// opts.width (counting curIndent) is emitted on one line instead. When
// opts.sortKeys is on, no container is inlined: every non-empty array
// and object is broken across lines.
func prettyValue(v Value, opts prettyOptions, curIndent string) string {
	switch {
	case v.IsArray():
		elems := v.Array()
		if len(elems) == 0 {
			return "[]"
		}
		if !opts.sortKeys {
			if compact := compactJSON(v.Raw()); len(curIndent)+len(compact) <= opts.width {
				return compact
			}
		}
		inner := curIndent + opts.indent
		lines := make([]string, len(elems))
		for i, e := range elems {
			lines[i] = inner + prettyValue(e, opts, inner)
		}
		return "[\n" + joinStrings(lines, ",\n") + "\n" + curIndent + "]"
	case v.IsObject():
		members := orderedMembers(v, opts.sortKeys)
		if len(members) == 0 {
			return "{}"
		}
		if !opts.sortKeys {
			if compact := compactJSON(v.Raw()); len(curIndent)+len(compact) <= opts.width {
				return compact
			}
		}
		inner := curIndent + opts.indent
		lines := make([]string, len(members))
		for i, m := range members {
			lines[i] = inner + quoteJSONString(m.key) + ": " + prettyValue(m.val, opts, inner)
		}
		return "{\n" + joinStrings(lines, ",\n") + "\n" + curIndent + "}"
	default:
		return v.Raw()
	}
}

// compactJSON strips whitespace outside of string literals from json.
func compactJSON(json string) string {
	buf := make([]byte, 0, len(json))
	for i := 0; i < len(json); i++ {
		c := json[i]
		if c <= ' ' {
			continue
		}
		buf = append(buf, c)
		if c == '"' {
			i++
			for ; i < len(json); i++ {
				buf = append(buf, json[i])
				if json[i] == '\\' && i+1 < len(json) {
					i++
					buf = append(buf, json[i])
					continue
				}
				if json[i] == '"' {
					break
				}
			}
		}
	}
	return string(buf)
}

// quoteJSONString encodes s as a double-quoted JSON string literal,
// escaping the characters RFC 8259 requires.
func quoteJSONString(s string) string {
	buf := make([]byte, 0, len(s)+2)
	buf = append(buf, '"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '"':
			buf = append(buf, '\\', '"')
		case '\\':
			buf = append(buf, '\\', '\\')
		case '\n':
			buf = append(buf, '\\', 'n')
		case '\r':
			buf = append(buf, '\\', 'r')
		case '\t':
			buf = append(buf, '\\', 't')
		default:
			if c < 0x20 {
				buf = append(buf, '\\', 'u')
				hex := strconv.FormatUint(uint64(c), 16)
				for len(hex) < 4 {
					hex = "0" + hex
				}
				buf = append(buf, hex...)
				continue
			}
			buf = append(buf, c)
		}
	}
	buf = append(buf, '"')
	return string(buf)
}

func joinStrings(parts []string, sep string) string {
	if len(parts) == 0 {
		return ""
	}
	n := len(sep) * (len(parts) - 1)
	for _, p := range parts {
		n += len(p)
	}
	buf := make([]byte, 0, n)
	for i, p := range parts {
		if i > 0 {
			buf = append(buf, sep...)
		}
		buf = append(buf, p...)
	}
	return string(buf)
}

func reverseStrings(s []string) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
