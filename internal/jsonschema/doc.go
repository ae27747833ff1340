// Package jsonschema derives JSON Schema documents from Go types by
// reflection, so tool parameters can be advertised without hand-written
// schemas.
//
// Nested structs are inlined with their own required lists; only
// self-referencing types are hoisted into $defs and referenced with $ref.
// Field metadata comes from the json tag (name, omitempty) and from a
// jsonschema tag:
//
//	Charge float64 `json:"charge" jsonschema:"description=Charge in Coulombs,required"`
//
// The main entry point is [GenerateJSONSchema].
package jsonschema
