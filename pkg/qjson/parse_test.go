package qjson

import "testing"

// TestGetScenarios walks the canonical path/result pairs for docJ.
func TestGetScenarios(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{"dotted field", "name.last", `"Anderson"`},
		{"number field", "age", `37`},
		{"array count", "children.#", `3`},
		{"wildcard key + index", "child*.2", `"Jack"`},
		{"escaped dot in key", `fav\.movie`, `"Deer Hunter"`},
		{"query all, projection", `friends.#(last=="Murphy")#.first`, `["Dale","Jane"]`},
		{"query all, comparison", `friends.#(age>45)#.last`, `["Craig","Murphy"]`},
		{"nested query", `friends.#(nets.#(=="fb"))#.first`, `["Dale","Roger"]`},
		{"pipe into modifier then index", `children|@reverse|0`, `"Jack"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Get(docJ, tt.path).Raw()
			if got != tt.want {
				t.Errorf("Get(docJ, %q).Raw() = %q; want %q", tt.path, got, tt.want)
			}
		})
	}
}

// TestGetJSONLines covers the "..#(...)" JSON-Lines root form.
func TestGetJSONLines(t *testing.T) {
	got := Get(docLines, `..#(name="May").age`)
	if got.Int64() != 57 {
		t.Errorf(`Get(docLines, "..#(name=\"May\").age").Int64() = %d; want 57`, got.Int64())
	}
}

// TestGetEmptyPath checks the boundary behavior: an empty path returns the
// whole input, kind inferred from its first non-whitespace byte.
func TestGetEmptyPath(t *testing.T) {
	v := Get(docJ, "")
	if !v.IsObject() {
		t.Errorf("Get(docJ, \"\").IsObject() = false; want true")
	}
}

// TestGetOutOfRangeIndex checks that an out-of-range array index resolves
// to NotExist, never the last element.
func TestGetOutOfRangeIndex(t *testing.T) {
	v := Get(docJ, "children.5")
	if v.Exists() {
		t.Errorf("Get(docJ, \"children.5\").Exists() = true; want false")
	}
}

// TestGetHashOnScalar checks that '#' against a non-array scalar is NotExist.
func TestGetHashOnScalar(t *testing.T) {
	v := Get(docJ, "age.#")
	if v.Exists() {
		t.Errorf("Get(docJ, \"age.#\").Exists() = true; want false")
	}
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		json string
		kind Kind
	}{
		{`{"a":1}`, JSON},
		{`[1,2]`, JSON},
		{`"hi"`, String},
		{`42`, Number},
		{`-3.14`, Number},
		{`true`, True},
		{`false`, False},
		{`null`, Null},
		{``, NotExist},
		{`   `, NotExist},
	}
	for _, tt := range tests {
		if got := Parse(tt.json).Kind(); got != tt.kind {
			t.Errorf("Parse(%q).Kind() = %v; want %v", tt.json, got, tt.kind)
		}
	}
}

// TestThisIdempotence checks invariant 2 from spec.md §8: get(json,
// "@this|"+path) is equivalent to get(json, path).
func TestThisIdempotence(t *testing.T) {
	paths := []string{"name.last", "children.#", "friends.0.first", "age"}
	for _, p := range paths {
		a := Get(docJ, p).Raw()
		b := Get(docJ, "@this|"+p).Raw()
		if a != b {
			t.Errorf("@this|%s = %q; want %q", p, b, a)
		}
	}
}

func TestForeachJSONLines(t *testing.T) {
	var names []string
	Foreach(docLines, func(v Value) bool {
		names = append(names, v.Get("name").String())
		return true
	})
	want := []string{"Gilbert", "Alexa", "May", "Deloise"}
	if len(names) != len(want) {
		t.Fatalf("Foreach collected %d values; want %d", len(names), len(want))
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("names[%d] = %q; want %q", i, names[i], want[i])
		}
	}
}

func TestForeachStopsEarly(t *testing.T) {
	count := 0
	Foreach(docLines, func(v Value) bool {
		count++
		return count < 2
	})
	if count != 2 {
		t.Errorf("Foreach visited %d values before stopping; want 2", count)
	}
}

func TestGetMulti(t *testing.T) {
	got := GetMulti(docJ, "name.first", "age", "missing.path")
	if got[0].String() != "Tom" {
		t.Errorf("got[0] = %q; want Tom", got[0].String())
	}
	if got[1].Int64() != 37 {
		t.Errorf("got[1] = %d; want 37", got[1].Int64())
	}
	if got[2].Exists() {
		t.Errorf("got[2].Exists() = true; want false")
	}
}
