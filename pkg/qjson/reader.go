package qjson

import (
	"io"
	"os"

	"github.com/arjanvelo/qjson/pkg/common"
)

// ParseReader drains in and parses the result as a single JSON document.
// A read error is reported on the returned Value via IsError/Cause rather
// than by a separate error return, keeping ParseReader a drop-in for
// Parse at call sites that do not care to handle I/O failure specially.
func ParseReader(in io.Reader) Value {
	content, err := common.ReadAll(in)
	if err != nil {
		return Value{err: err}
	}
	return Parse(content)
}

// ParseFile opens path, reads it in full, and parses the result as a
// single JSON document. It does not require a particular file extension
// — callers pass whatever path resolves to JSON content. An open or read
// error is reported on the returned Value via IsError/Cause.
func ParseFile(path string) Value {
	f, err := os.Open(path)
	if err != nil {
		return Value{err: err}
	}
	defer f.Close()
	return ParseReader(f)
}
