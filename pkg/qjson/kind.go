package qjson

// Kind classifies the JSON value a Value refers to.
type Kind int

const (
	// NotExist marks a Value produced by a path that did not resolve.
	NotExist Kind = iota
	// Null is the JSON literal null.
	Null
	// False is the JSON literal false.
	False
	// True is the JSON literal true.
	True
	// Number is any JSON numeric literal.
	Number
	// String is a JSON string, quotes included in Raw().
	String
	// JSON is an object or array; use IsArray/IsObject to tell them apart.
	JSON
)

// String renders the Kind's name, mostly useful for debugging and tests.
func (k Kind) String() string {
	switch k {
	case Null:
		return "Null"
	case False:
		return "False"
	case True:
		return "True"
	case Number:
		return "Number"
	case String:
		return "String"
	case JSON:
		return "JSON"
	default:
		return "NotExist"
	}
}
