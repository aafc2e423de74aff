package qjson

import "testing"

func TestApplyThis(t *testing.T) {
	if got := applyThis(`{"a":1}`, ""); got != `{"a":1}` {
		t.Errorf("applyThis = %q; want unchanged", got)
	}
}

func TestApplyValid(t *testing.T) {
	if got := applyValid(`{"a":1}`, ""); got != `{"a":1}` {
		t.Errorf("applyValid on well-formed input = %q; want unchanged", got)
	}
	if got := applyValid(`{a:1}`, ""); got != "" {
		t.Errorf("applyValid on malformed input = %q; want empty", got)
	}
}

func TestApplyUgly(t *testing.T) {
	got := applyUgly(`{ "a" : 1, "b": [1, 2] }`, "")
	want := `{"a":1,"b":[1,2]}`
	if got != want {
		t.Errorf("applyUgly = %q; want %q", got, want)
	}
}

func TestApplyReverseArray(t *testing.T) {
	got := applyReverse(`["a","b","c"]`, "")
	want := `["c","b","a"]`
	if got != want {
		t.Errorf("applyReverse array = %q; want %q", got, want)
	}
}

func TestApplyReverseObject(t *testing.T) {
	got := applyReverse(`{"a":1,"b":2}`, "")
	want := `{"b":2,"a":1}`
	if got != want {
		t.Errorf("applyReverse object = %q; want %q", got, want)
	}
}

func TestApplyReverseScalarUnchanged(t *testing.T) {
	if got := applyReverse(`42`, ""); got != "42" {
		t.Errorf("applyReverse on scalar = %q; want unchanged", got)
	}
}

func TestApplyFlattenOneLevel(t *testing.T) {
	got := applyFlatten(`[[1,2],[3,[4,5]]]`, "")
	want := `[1,2,3,[4,5]]`
	if got != want {
		t.Errorf("applyFlatten (one level default) = %q; want %q", got, want)
	}
}

func TestApplyFlattenDeep(t *testing.T) {
	got := applyFlatten(`[[1,2],[3,[4,5]]]`, `{"deep":true}`)
	want := `[1,2,3,4,5]`
	if got != want {
		t.Errorf("applyFlatten deep = %q; want %q", got, want)
	}
}

func TestApplyJoin(t *testing.T) {
	got := applyJoin(`[{"a":1},{"b":2},{"a":3}]`, "")
	want := `{"a":3,"b":2}`
	if got != want {
		t.Errorf("applyJoin (last wins by default) = %q; want %q", got, want)
	}
}

func TestApplyJoinPreserve(t *testing.T) {
	got := applyJoin(`[{"a":1},{"b":2},{"a":3}]`, `{"preserve":true}`)
	want := `{"a":1,"b":2}`
	if got != want {
		t.Errorf("applyJoin preserve = %q; want %q", got, want)
	}
}

func TestApplyPrettyDefault(t *testing.T) {
	got := applyPretty(`{"a":1}`, "")
	if got != `{"a":1}` {
		t.Errorf("applyPretty on a short object should inline within width: got %q", got)
	}
}

func TestApplyPrettyMultilineWhenWide(t *testing.T) {
	wide := `{"aVeryLongKeyName1":1,"aVeryLongKeyName2":2,"aVeryLongKeyName3":3,"aVeryLongKeyName4":4}`
	got := applyPretty(wide, "")
	if got == wide || got[0] != '{' {
		t.Errorf("applyPretty on a wide object did not break lines: %q", got)
	}
}

func TestApplyPrettySortKeys(t *testing.T) {
	got := applyPretty(`{"b":1,"a":2}`, `{"sortKeys":true,"indent":""}`)
	want := "{\n\"a\": 2,\n\"b\": 1\n}"
	if got != want {
		t.Errorf("applyPretty sortKeys = %q; want %q", got, want)
	}
}

func TestApplyModifierUnknownName(t *testing.T) {
	got := applyModifier(Parse(`{"a":1}`), "nosuchmodifier", "")
	if got.Exists() {
		t.Errorf("applyModifier with unknown name exists; want NotExist")
	}
}

func TestApplyModifierDisableTransformers(t *testing.T) {
	DisableTransformers = true
	defer func() { DisableTransformers = false }()
	got := applyModifier(Parse(`["a","b"]`), "reverse", "")
	if got.Exists() {
		t.Errorf("applyModifier with DisableTransformers exists; want NotExist")
	}
}

func TestAddTransformerCustom(t *testing.T) {
	AddTransformer("shout", func(json, arg string) string {
		v := Parse(json)
		return quoteJSONString(v.String() + "!")
	})
	got := Get(`"hi"`, "@shout")
	if got.String() != "hi!" {
		t.Errorf("custom @shout modifier = %q; want hi!", got.String())
	}
	if !IsTransformerRegistered("shout") {
		t.Errorf("IsTransformerRegistered(shout) = false; want true after AddTransformer")
	}
}

func TestCompactJSONPreservesStringContent(t *testing.T) {
	got := compactJSON(`{ "a" : "  spaced  " }`)
	want := `{"a":"  spaced  "}`
	if got != want {
		t.Errorf("compactJSON = %q; want %q (whitespace inside strings preserved)", got, want)
	}
}

func TestQuoteJSONStringEscapes(t *testing.T) {
	got := quoteJSONString("a\"b\\c\nd")
	want := `"a\"b\\c\nd"`
	if got != want {
		t.Errorf("quoteJSONString = %q; want %q", got, want)
	}
}
