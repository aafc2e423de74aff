package qjson

import "testing"

func TestScanValueAtKinds(t *testing.T) {
	tests := []struct {
		json string
		kind Kind
	}{
		{`"str"`, String},
		{`{"a":1}`, JSON},
		{`[1,2,3]`, JSON},
		{`true`, True},
		{`false`, False},
		{`null`, Null},
		{`3.14`, Number},
		{`-1`, Number},
	}
	for _, tt := range tests {
		_, v := scanValueAt(tt.json, 0)
		if v.kind != tt.kind {
			t.Errorf("scanValueAt(%q) kind = %v; want %v", tt.json, v.kind, tt.kind)
		}
	}
}

func TestScanContainerNestedStrings(t *testing.T) {
	json := `{"a": "}", "b": [1, "]", 2]}`
	end, v := scanContainer(json, 0)
	if end != len(json) {
		t.Errorf("scanContainer end = %d; want %d (brackets inside strings must not count)", end, len(json))
	}
	if v.raw != json {
		t.Errorf("scanContainer raw = %q; want %q", v.raw, json)
	}
}

func TestScanContainerUnbalanced(t *testing.T) {
	json := `{"a": [1, 2`
	end, v := scanContainer(json, 0)
	if end != len(json) {
		t.Errorf("scanContainer on unbalanced input ended at %d; want %d", end, len(json))
	}
	if !v.Exists() {
		t.Errorf("scanContainer on unbalanced input did not produce a value")
	}
}

func TestScanStringUnterminated(t *testing.T) {
	json := `"abc`
	_, v := scanString(json, 0)
	if v.str != "abc" {
		t.Errorf("scanString on unterminated string = %q; want %q", v.str, "abc")
	}
}

func TestScanNumberTruncatedExponent(t *testing.T) {
	// A trailing bare 'e' with no digits should stop before it, never error.
	json := `1e`
	_, v := scanNumber(json, 0)
	if v.raw != "1" {
		t.Errorf("scanNumber(%q) raw = %q; want %q", json, v.raw, "1")
	}
}

func TestUnescapeSurrogatePair(t *testing.T) {
	// The input is the escaped UTF-16 surrogate pair D83D DE00, which
	// encodes U+1F600 GRINNING FACE.
	got := unescape("\x5cud83d\x5cude00")
	want := "\U0001F600"
	if got != want {
		t.Errorf("unescape surrogate pair = %q; want %q", got, want)
	}
}

func TestUnescapeBasicEscapes(t *testing.T) {
	got := unescape(`a\nb\tc\"d`)
	want := "a\nb\tc\"d"
	if got != want {
		t.Errorf("unescape(%q) = %q; want %q", `a\nb\tc\"d`, got, want)
	}
}

func TestParseExactInt64RejectsFloatLiterals(t *testing.T) {
	if _, ok := parseExactInt64("1.5"); ok {
		t.Errorf("parseExactInt64(\"1.5\") ok = true; want false")
	}
	if n, ok := parseExactInt64("42"); !ok || n != 42 {
		t.Errorf("parseExactInt64(\"42\") = (%d, %v); want (42, true)", n, ok)
	}
}

func TestEqualFoldASCII(t *testing.T) {
	if !equalFoldASCII("TRUE", "true") {
		t.Errorf("equalFoldASCII(TRUE, true) = false; want true")
	}
	if equalFoldASCII("true", "false") {
		t.Errorf("equalFoldASCII(true, false) = true; want false")
	}
}
