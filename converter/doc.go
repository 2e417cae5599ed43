// Package converter transforms Swagger 2.0 (OpenAPI v2) schema objects into
// valid JSON Schema (draft-04 compatible) documents.
//
// The converter strips Swagger-only vocabulary (discriminator, readOnly, xml,
// externalDocs, example, and any x-* extension key), translates the pieces
// that have defined JSON Schema semantics (type: "file" becomes type:
// "string", example becomes a one-element examples array, x-nullable widens
// the type or enum), and copies every definition transitively reachable via
// $ref into the output's definitions map so the result is self-contained.
//
// All input and output are in-memory JSON-like trees: map[string]any for
// objects, []any for arrays, and Go scalars for primitives. The package
// performs no I/O and resolves only internal references of the form
// #/definitions/<name>; anything else is rejected with a
// schemaerrors.ReferenceError.
//
// # Quick Start
//
// Convert a single schema against its enclosing document:
//
//	result, err := converter.ConvertSchema(schema, root, swaggerRoot)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defs, _ := result["definitions"].(map[string]any)
//	fmt.Printf("copied %d definitions\n", len(defs))
//
// Or use a reusable Converter instance:
//
//	c := converter.New()
//	c.CopyDefinitions = false
//	result1, _ := c.ConvertSchema(schema1, root, swaggerRoot)
//	result2, _ := c.ConvertSchema(schema2, root, swaggerRoot)
//
// Convert an entire definitions section, each entry standalone:
//
//	converted, err := converter.ConvertSchemaDefinitions(definitions)
//
// # Circular References
//
// Reference cycles are not errors. Dereference breaks a cycle by
// substituting nil for the reference that would re-enter a path already
// being expanded, and ConvertSchema never inlines a self-referential root:
// it wraps the reference in a single-element allOf instead, because some
// downstream consumers expand a root-level self-reference forever but
// terminate correctly when the same reference sits inside an allOf.
//
// # Definition Names
//
// Swagger documents emitted by code generators frequently carry definition
// ids with characters that are invalid in JSON Pointer references, such as
// Response[User] or Page«Pet». WithNormalizedNames rewrites such ids while
// copying definitions and updates every $ref in the result to match. See
// NamingConfig for the available strategies.
//
// # Related Packages
//
//   - [github.com/erraggy/swagschema/schemaerrors] - Structured error types
//     returned by this package
package converter
