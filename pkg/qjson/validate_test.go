package qjson

import "testing"

func TestValidWellFormed(t *testing.T) {
	docs := []string{
		`{}`,
		`[]`,
		`null`,
		`true`,
		`false`,
		`0`,
		`-0.5`,
		`1.5e10`,
		`1E-10`,
		`"a string with é and \n escapes"`,
		`{"a": [1, 2, {"b": null}], "c": "d"}`,
		"  \t\n  { \"a\" : 1 } \n  ",
		docJ,
	}
	for _, d := range docs {
		if !Valid(d) {
			t.Errorf("Valid(%q) = false; want true", d)
		}
	}
}

func TestValidMalformed(t *testing.T) {
	docs := []string{
		``,
		`   `,
		`{`,
		`}`,
		`[1,2,]`,
		`{"a":1,}`,
		`{"a" 1}`,
		`{a:1}`,
		`01`,
		`1.`,
		`.5`,
		`1e`,
		`1e+`,
		`"unterminated`,
		`"bad\escape"`,
		`"bad\u12"`,
		`tru`,
		`nul`,
		`{"a":1} trailing`,
		`[1 2]`,
		"\"control\x01char\"",
	}
	for _, d := range docs {
		if Valid(d) {
			t.Errorf("Valid(%q) = true; want false", d)
		}
	}
}

func TestValidBytes(t *testing.T) {
	if !ValidBytes([]byte(`{"x":1}`)) {
		t.Errorf("ValidBytes on well-formed object = false; want true")
	}
	if ValidBytes([]byte(`{x:1}`)) {
		t.Errorf("ValidBytes on malformed object = true; want false")
	}
}

func TestValidRejectsMultipleValues(t *testing.T) {
	if Valid(`1 2`) {
		t.Errorf("Valid(\"1 2\") = true; want false (exactly one value allowed)")
	}
}

func TestValidNestedDepth(t *testing.T) {
	d := `[[[[[1]]]]]`
	if !Valid(d) {
		t.Errorf("Valid(%q) = false; want true", d)
	}
}
