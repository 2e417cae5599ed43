// Package schemaerrors provides structured error types for swagschema.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), allowing callers to distinguish between different categories
// of reference failures and react accordingly.
//
// # Error Categories
//
//   - ReferenceError: malformed or unresolvable $ref values, with a Kind
//     distinguishing invalid roots, invalid targets, and missing definitions
//   - ResourceLimitError: resource exhaustion (schema nesting depth)
//   - ConfigError: invalid converter configuration or input options
//
// # Usage with errors.Is
//
//	result, err := converter.ConvertSchema(schema, root, swaggerRoot)
//	if err != nil {
//	    if errors.Is(err, schemaerrors.ErrReferenceNotFound) {
//	        // The schema points at a definition the document does not carry
//	    }
//	}
//
// # Usage with errors.As
//
//	var refErr *schemaerrors.ReferenceError
//	if errors.As(err, &refErr) {
//	    fmt.Printf("bad reference %q (%s)\n", refErr.Ref, refErr.Kind)
//	}
//
// Circular references are intentionally not an error category: the converter
// treats a reference cycle as a defined outcome (the cycle-breaking nil
// substitution in Dereference), not a failure.
package schemaerrors
