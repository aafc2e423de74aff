package common

import (
	"bytes"
	"encoding/json"
	"reflect"
)

// DeepEqual compares two values for equality via JSON serialization.
//
// This function serializes both input values `a` and `b` to JSON format using the `json.Marshal` function.
// It then compares the resulting JSON byte slices using `bytes.Equal`. If the serialized JSON representations
// are identical, the function returns `true`, indicating that the two values are considered equal in terms of their JSON representation.
//
// Parameters:
//   - `a`: The first value to compare. It can be of any type.
//   - `b`: The second value to compare. It can also be of any type.
//
// Returns:
//   - `true` if the JSON representations of `a` and `b` are equal; `false` otherwise.
//
// Example:
//
//	// Comparing two structs with the same data
//	type Person struct {
//	    Name string
//	    Age  int
//	}
//	personA := Person{Name: "Alice", Age: 30}
//	personB := Person{Name: "Alice", Age: 30}
//	isEqual := DeepEqual(personA, personB)
//	// isEqual will be true as both structs serialize to the same JSON
//	// Comparing two different maps
//	mapA := map[string]int{"a": 1, "b": 2}
//	mapB := map[string]int{"a": 1, "b": 3}
//	isEqual = DeepEqual(mapA, mapB)
//	// isEqual will be false as the JSON representations differ
func DeepEqual(a, b any) bool {
	aJSON, err := json.Marshal(a)
	if err != nil {
		return false
	}

	bJSON, err := json.Marshal(b)
	if err != nil {
		return false
	}

	return bytes.Equal(aJSON, bJSON)
}

// IsEmptyValue checks whether the given reflect.Value is considered empty.
//
// An empty value is defined as:
//   - Zero length for arrays, maps, slices, and strings.
//   - False for booleans.
//   - Zero for numeric types (int, uint, float).
//   - Nil for interfaces and pointers.
//   - Zero value for structs.
//
// Parameters:
//   - v: The reflect.Value to check.
//
// Returns:
//   - true if the value is empty, false otherwise.
//
// Example:
//
//	val := reflect.ValueOf("")
//	if IsEmptyValue(val) {
//	    fmt.Println("The value is empty.")
//	} else {
//	    fmt.Println("The value is not empty.")
//	}
func IsEmptyValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Array, reflect.Map, reflect.Slice, reflect.String:
		return v.Len() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Interface, reflect.Ptr:
		return v.IsNil()
	case reflect.Struct:
		return v.IsZero()
	}
	return false
}
