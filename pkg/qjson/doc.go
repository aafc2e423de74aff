// Package qjson retrieves and transforms values out of a JSON document
// without unmarshalling it into Go types first.
//
// A document is treated as an opaque byte slice. qjson scans it left to
// right, skipping whatever it doesn't need, and returns a Value describing
// the byte range of whatever it does. Selection uses a compact dot-notation
// path language with wildcards, array indexing, array queries, and a chain
// of named modifiers.
//
// # Path syntax
//
//	name.last                          object field access
//	children.2                         array index access
//	children.#                         array length / object member count
//	friends.#.first                    project a field out of every element
//	friends.#(age>45)#.last            query: all matching elements
//	friends.#(last=="Murphy").first    query: first matching element
//	fav\.movie                         escaped '.' inside a key
//	..#(name=="May").age               JSON-Lines root
//	children|@reverse|0                pipe into a modifier, then continue
//
// # Basic usage
//
//	v := qjson.Get(json, "friends.#.first")
//	fmt.Println(v.String()) // ["Dale","Roger","Jane"]
//
// qjson does not validate the document's JSON on the Get path; malformed
// input produces best-effort results or NotExist, never a panic or error.
// Call Valid explicitly when well-formedness must be certain.
//
// qjson is safe for concurrent use by multiple goroutines against the same
// or different inputs; it never mutates the bytes it is given.
package qjson
