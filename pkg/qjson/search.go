package qjson

import (
	"sort"

	"github.com/arjanvelo/qjson/pkg/common"
	"github.com/arjanvelo/qjson/pkg/conv"
)

// Count returns the number of elements in an array or members in an
// object; a scalar counts as one, and NotExist counts as zero.
func Count(v Value) int {
	if !v.Exists() {
		return 0
	}
	if !v.IsArray() && !v.IsObject() {
		return 1
	}
	n := 0
	v.Foreach(func(_, _ Value) bool {
		n++
		return true
	})
	return n
}

// Sum adds the Float64 of every element of v (treating a non-container v
// as its own single element).
func Sum(v Value) float64 {
	var total float64
	for _, e := range v.Array() {
		total += e.Float64()
	}
	return total
}

// Avg is Sum divided by Count, or 0 for an empty sequence.
func Avg(v Value) float64 {
	arr := v.Array()
	if len(arr) == 0 {
		return 0
	}
	var total float64
	for _, e := range arr {
		total += e.Float64()
	}
	return total / float64(len(arr))
}

// Min returns the element that sorts lowest by Value.Less, or NotExist
// for an empty sequence.
func Min(v Value) Value {
	arr := v.Array()
	if len(arr) == 0 {
		return Value{}
	}
	m := arr[0]
	for _, e := range arr[1:] {
		if e.Less(m, true) {
			m = e
		}
	}
	return m
}

// Max returns the element that sorts highest by Value.Less, or NotExist
// for an empty sequence.
func Max(v Value) Value {
	arr := v.Array()
	if len(arr) == 0 {
		return Value{}
	}
	m := arr[0]
	for _, e := range arr[1:] {
		if m.Less(e, true) {
			m = e
		}
	}
	return m
}

// Filter returns the elements of v for which pred reports true, in
// source order.
func Filter(v Value, pred func(Value) bool) []Value {
	var out []Value
	for _, e := range v.Array() {
		if pred(e) {
			out = append(out, e)
		}
	}
	return out
}

// First returns the first element of v for which pred reports true, or
// NotExist if none does.
func First(v Value, pred func(Value) bool) Value {
	for _, e := range v.Array() {
		if pred(e) {
			return e
		}
	}
	return Value{}
}

// Distinct returns the elements of v with duplicates removed, comparing
// elements by their decoded Value() via common.DeepEqual, keeping the
// first occurrence's position.
func Distinct(v Value) []Value {
	var out []Value
	for _, e := range v.Array() {
		dup := false
		ev := e.Value()
		for _, o := range out {
			if common.DeepEqual(ev, o.Value()) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, e)
		}
	}
	return out
}

// GroupBy partitions v's elements by the String() of each element's
// Get(path), preserving each group's member order.
func GroupBy(v Value, path string) map[string][]Value {
	groups := make(map[string][]Value)
	for _, e := range v.Array() {
		key := e.Get(path).String()
		groups[key] = append(groups[key], e)
	}
	return groups
}

// SortBy returns v's elements sorted by Get(path), ascending, using a
// stable sort so elements with equal keys keep their relative order.
func SortBy(v Value, path string, caseSensitive bool) []Value {
	arr := v.Array()
	out := make([]Value, len(arr))
	copy(out, arr)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Get(path).Less(out[j].Get(path), caseSensitive)
	})
	return out
}

// CoerceTo decodes v's native Go representation into into, which must be
// a non-nil pointer, via reflection. It supplements the fixed typed
// accessors (Int64, Float64, ...) for callers that want a value bridged
// into a bool, string, numeric, slice, map or pointer type. Struct
// targets are not decoded: conv.Infer returns an error for them.
func CoerceTo(v Value, into any) error {
	return conv.Infer(into, v.Value())
}

// CollectFloat64 evaluates path against json and returns the Float64 of
// every resulting element, in source order.
func CollectFloat64(json, path string) []float64 {
	arr := Get(json, path).Array()
	out := make([]float64, len(arr))
	for i, e := range arr {
		out[i] = e.Float64()
	}
	return out
}
