package qjson

import "testing"

func TestValueZero(t *testing.T) {
	var v Value
	if v.Exists() {
		t.Errorf("zero Value.Exists() = true; want false")
	}
	if v.Kind() != NotExist {
		t.Errorf("zero Value.Kind() = %v; want NotExist", v.Kind())
	}
	if v.String() != "" || v.Int64() != 0 || v.Float64() != 0 || v.Bool() {
		t.Errorf("zero Value typed accessors did not all yield their zero value")
	}
}

func TestValueBool(t *testing.T) {
	tests := []struct {
		json string
		want bool
	}{
		{`true`, true},
		{`false`, false},
		{`1`, true},
		{`0`, false},
		{`"true"`, true},
		{`"TRUE"`, true},
		{`"1"`, true},
		{`"no"`, false},
		{`null`, false},
		{`[1]`, false},
	}
	for _, tt := range tests {
		if got := Parse(tt.json).Bool(); got != tt.want {
			t.Errorf("Parse(%q).Bool() = %v; want %v", tt.json, got, tt.want)
		}
	}
}

func TestValueInt64Saturation(t *testing.T) {
	v := Parse(`99999999999999999999999999`)
	if v.Int64() <= 0 {
		t.Errorf("Int64() on huge number = %d; want a large positive saturated value", v.Int64())
	}
	if v.Int8() != 127 {
		t.Errorf("Int8() on huge number = %d; want 127 (saturated)", v.Int8())
	}
	neg := Parse(`-99999999999999999999999999`)
	if neg.Int8() != -128 {
		t.Errorf("Int8() on huge negative number = %d; want -128 (saturated)", neg.Int8())
	}
}

func TestValueUint64NegativeSaturatesToZero(t *testing.T) {
	v := Parse(`-5`)
	if v.Uint64() != 0 {
		t.Errorf("Uint64() on -5 = %d; want 0", v.Uint64())
	}
}

func TestValueString(t *testing.T) {
	tests := []struct {
		json string
		want string
	}{
		{`"hello"`, "hello"},
		{`42`, "42"},
		{`true`, "true"},
		{`false`, "false"},
		{`null`, "null"},
		{`[1,2]`, "[1,2]"},
	}
	for _, tt := range tests {
		if got := Parse(tt.json).String(); got != tt.want {
			t.Errorf("Parse(%q).String() = %q; want %q", tt.json, got, tt.want)
		}
	}
}

func TestValueStringEscapes(t *testing.T) {
	v := Parse(`"line\nbreak\té"`)
	want := "line\nbreak\té"
	if v.String() != want {
		t.Errorf("decoded string = %q; want %q", v.String(), want)
	}
}

func TestValueArrayOnScalar(t *testing.T) {
	v := Parse(`42`)
	arr := v.Array()
	if len(arr) != 1 || arr[0].Raw() != "42" {
		t.Errorf("Array() on scalar = %v; want single-element slice containing itself", arr)
	}
}

func TestValueArrayOnNotExist(t *testing.T) {
	var v Value
	if got := v.Array(); len(got) != 0 {
		t.Errorf("Array() on NotExist = %v; want empty slice", got)
	}
}

func TestValueMap(t *testing.T) {
	m := Get(docJ, "name").Map()
	if m["first"].String() != "Tom" || m["last"].String() != "Anderson" {
		t.Errorf("Map() = %v; want first=Tom last=Anderson", m)
	}
}

func TestValueForeachArray(t *testing.T) {
	var got []string
	Get(docJ, "children").Foreach(func(_, v Value) bool {
		got = append(got, v.String())
		return true
	})
	want := []string{"Sara", "Alex", "Jack"}
	for i, w := range want {
		if got[i] != w {
			t.Errorf("children[%d] = %q; want %q", i, got[i], w)
		}
	}
}

func TestValueLessOrdering(t *testing.T) {
	null := Parse(`null`)
	f := Parse(`false`)
	tr := Parse(`true`)
	num := Parse(`1`)
	str := Parse(`"a"`)
	obj := Parse(`{}`)
	chain := []Value{null, f, tr, num, str, obj}
	for i := 0; i < len(chain)-1; i++ {
		if !chain[i].Less(chain[i+1], true) {
			t.Errorf("%v should sort before %v", chain[i].Kind(), chain[i+1].Kind())
		}
	}
}

func TestValueLessCaseFold(t *testing.T) {
	a := Parse(`"Banana"`)
	b := Parse(`"apple"`)
	if !b.Less(a, false) {
		t.Errorf("case-insensitive Less: %q should sort before %q", "apple", "Banana")
	}
	if !a.Less(b, true) {
		t.Errorf("case-sensitive Less: %q should sort before %q (uppercase bytes sort first)", "Banana", "apple")
	}
}

func TestValueGetChaining(t *testing.T) {
	v := Get(docJ, "name")
	if v.Get("last").String() != "Anderson" {
		t.Errorf("chained Get = %q; want Anderson", v.Get("last").String())
	}
}
