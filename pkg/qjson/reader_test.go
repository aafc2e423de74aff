package qjson

import (
	"os"
	"strings"
	"testing"
)

func TestParseReader(t *testing.T) {
	v := ParseReader(strings.NewReader(docJ))
	if v.IsError() {
		t.Fatalf("ParseReader error: %s", v.Cause())
	}
	if v.Get("name.first").String() != "Tom" {
		t.Errorf("ParseReader then Get = %q; want Tom", v.Get("name.first").String())
	}
}

func TestParseFile(t *testing.T) {
	path := t.TempDir() + "/doc.json"
	if err := os.WriteFile(path, []byte(docJ), 0o644); err != nil {
		t.Fatalf("os.WriteFile: %v", err)
	}
	v := ParseFile(path)
	if v.IsError() {
		t.Fatalf("ParseFile error: %s", v.Cause())
	}
	if v.Get("age").Int64() != 37 {
		t.Errorf("ParseFile then Get(age) = %d; want 37", v.Get("age").Int64())
	}
}

func TestParseFileMissing(t *testing.T) {
	v := ParseFile("/nonexistent/path/does/not/exist.json")
	if !v.IsError() {
		t.Errorf("ParseFile on a missing path did not report an error")
	}
	if v.Cause() == "" {
		t.Errorf("ParseFile error Cause() is empty")
	}
}
