// Package swagschema converts Swagger 2.0 (OpenAPI v2) schema objects into
// valid JSON Schema documents.
//
// The library resolves internal $ref pointers restricted to the
// #/definitions/<name> convention used by Swagger documents, strips
// Swagger-only vocabulary (x-nullable, discriminator, readOnly, xml,
// externalDocs, example, and x-* extension keys), and copies every
// transitively referenced definition into the output so downstream tooling
// (example and mock data generators, validators) receives a self-contained,
// strictly valid JSON Schema with no dangling references and no circular
// structures.
//
// # Overview
//
// The library consists of two packages:
//
//   - converter: The conversion engine - reference resolution, cycle-safe
//     dereferencing, Swagger→JSON-Schema node conversion, and definition
//     closure collection
//   - schemaerrors: Structured error types for programmatic error handling
//     via errors.Is() and errors.As()
//
// # Installation
//
// Install the library using go get:
//
//	go get github.com/erraggy/swagschema
//
// # Quick Start
//
// Convert a single Swagger schema against its document:
//
//	import "github.com/erraggy/swagschema/converter"
//
//	result, err := converter.ConvertSchema(schema, root, swaggerRoot)
//	if err != nil {
//		log.Fatal(err)
//	}
//	// result is a JSON-Schema-shaped map; result["definitions"] holds
//	// every definition transitively referenced by the schema.
//
// Convert an entire definitions section, each entry standalone:
//
//	converted, err := converter.ConvertSchemaDefinitions(definitions)
//
// # Scope
//
// The engine operates purely on in-memory JSON-like trees (map[string]any,
// []any, scalars) supplied by the caller. There is no I/O, no document
// loading, and no CLI surface. References outside #/definitions/... (external
// files, arbitrary JSON Pointer paths) are rejected with an error. Circular
// references are not errors: the dereferencer substitutes nil for a reference
// that would reintroduce a path already being expanded.
//
// # Error Handling
//
// All failures propagate synchronously as structured errors from the
// schemaerrors package:
//
//	result, err := converter.ConvertSchema(schema, root, swaggerRoot)
//	if err != nil {
//	    var refErr *schemaerrors.ReferenceError
//	    if errors.As(err, &refErr) {
//	        fmt.Printf("bad reference %q: %s\n", refErr.Ref, refErr.Kind)
//	    }
//	}
//
// # Additional Resources
//
//   - Swagger 2.0 Schema Object: https://spec.openapis.org/oas/v2.0.html#schema-object
//   - JSON Schema (draft-04): https://json-schema.org/specification-links#draft-4
//   - Go Package Documentation: https://pkg.go.dev/github.com/erraggy/swagschema
package swagschema
