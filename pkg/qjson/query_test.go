package qjson

import "testing"

func TestParseFilterQueryWithOperator(t *testing.T) {
	p := parseFilterQuery(`age>45`)
	if p.subPath != "age" || p.op != ">" || p.literal != "45" || p.litKind != Number {
		t.Errorf("parseFilterQuery(age>45) = %+v", p)
	}
}

func TestParseFilterQueryEqualsNormalized(t *testing.T) {
	p := parseFilterQuery(`last=="Murphy"`)
	if p.op != "=" || p.literal != "Murphy" || p.litKind != String {
		t.Errorf("parseFilterQuery(last==Murphy) = %+v; want op= literal=Murphy", p)
	}
}

func TestParseFilterQueryNoOperator(t *testing.T) {
	p := parseFilterQuery(`first`)
	if p.subPath != "first" || p.op != "" {
		t.Errorf("parseFilterQuery(first) = %+v; want bare existence check", p)
	}
}

func TestParseFilterQueryNestedParens(t *testing.T) {
	p := parseFilterQuery(`nets.#(=="fb")`)
	if p.subPath != `nets.#(=="fb")` || p.op != "" {
		t.Errorf("parseFilterQuery with nested query = %+v; want whole thing as subPath", p)
	}
}

func TestParseFilterQueryBarewordAsString(t *testing.T) {
	p := parseFilterQuery(`status=active`)
	if p.literal != "active" || p.litKind != String {
		t.Errorf("parseFilterQuery bareword literal = %+v; want String kind (Open Question decision)", p)
	}
}

func TestOperatorPrecedenceNotEqualBeforeEqual(t *testing.T) {
	op, ok := matchOperatorAt(`!="x"`, 0)
	if !ok || op != "!=" {
		t.Errorf("matchOperatorAt != mismatched as = : got %q", op)
	}
}

func TestMatchGlobBasics(t *testing.T) {
	tests := []struct {
		str, pattern string
		want         bool
	}{
		{"Jack", "J*k", true},
		{"Jack", "Ja?k", true},
		{"Jack", "Jak", false},
		{"Jack", "*", true},
		{"a.b", `a\.b`, true},
		{"axb", `a\.b`, false},
		{"", "*", true},
		{"", "?", false},
	}
	for _, tt := range tests {
		if got := matchGlob(tt.str, tt.pattern); got != tt.want {
			t.Errorf("matchGlob(%q, %q) = %v; want %v", tt.str, tt.pattern, got, tt.want)
		}
	}
}

func TestIsTruthy(t *testing.T) {
	tests := []struct {
		json string
		want bool
	}{
		{`true`, true},
		{`false`, false},
		{`null`, false},
		{`""`, false},
		{`"x"`, true},
		{`0`, true},
		{`[]`, false},
		{`[1]`, true},
	}
	for _, tt := range tests {
		if got := isTruthy(Parse(tt.json)); got != tt.want {
			t.Errorf("isTruthy(Parse(%q)) = %v; want %v", tt.json, got, tt.want)
		}
	}
}

func TestPredicateEvaluateComparisons(t *testing.T) {
	friend := Get(docJ, "friends.1")
	tests := []struct {
		query string
		want  bool
	}{
		{`age>45`, true},
		{`age<45`, false},
		{`age>=68`, true},
		{`age<=68`, true},
		{`last=="Craig"`, true},
		{`last!="Craig"`, false},
		{`first%"Rog*"`, true},
		{`first!%"Rog*"`, false},
	}
	for _, tt := range tests {
		p := parseFilterQuery(tt.query)
		if got := p.evaluate(friend); got != tt.want {
			t.Errorf("predicate(%q).evaluate(friends.1) = %v; want %v", tt.query, got, tt.want)
		}
	}
}

func TestPredicateEvaluateEmptySubPath(t *testing.T) {
	p := parseFilterQuery(`=="fb"`)
	elem := Parse(`"fb"`)
	if !p.evaluate(elem) {
		t.Errorf("predicate with empty subPath should compare elem directly")
	}
}
