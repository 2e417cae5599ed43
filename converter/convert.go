// This file implements the per-node Swagger → JSON Schema transformation.
// It converts a single schema node and recurses into its structural and
// combinator children, recording every $ref it encounters for the closure
// builder; referenced definitions themselves are copied later, verbatim.

package converter

import (
	"strings"

	"github.com/erraggy/swagschema/schemaerrors"
)

// swaggerOnlyKeys are Swagger 2.0 vocabulary with no JSON Schema meaning.
// They are removed from every converted node. "example" is removed here but
// translated separately into a one-element "examples" array.
var swaggerOnlyKeys = map[string]struct{}{
	"discriminator": {},
	"readOnly":      {},
	"xml":           {},
	"externalDocs":  {},
	"example":       {},
}

// schemaCombinatorKeys hold arrays of subschemas that convert element-wise.
var schemaCombinatorKeys = []string{"allOf", "anyOf", "oneOf"}

// schemaObjectMapKeys hold maps of named subschemas that convert value-wise.
var schemaObjectMapKeys = []string{"properties", "patternProperties"}

// referenceCollector accumulates every $ref string encountered during a
// conversion, in traversal order. It replaces the implicit shared collection
// the recursion would otherwise thread through hidden mutation.
type referenceCollector struct {
	refs []string
}

func (rc *referenceCollector) add(ref string) {
	rc.refs = append(rc.refs, ref)
}

// convertSubSchema converts one Swagger schema node (not its referenced
// children) into a JSON-Schema-shaped node. Reference nodes short-circuit:
// the $ref is recorded and returned bare, and the closure builder fills in
// the referenced definition afterwards.
func (c *Converter) convertSubSchema(schema any, refs *referenceCollector, swaggerRoot map[string]any, depth int) (any, error) {
	if depth > MaxSchemaDepth {
		return nil, &schemaerrors.ResourceLimitError{
			ResourceType: "schema_depth",
			Limit:        MaxSchemaDepth,
			Actual:       int64(depth),
			Message:      "schema too deeply nested",
		}
	}

	node, ok := schema.(map[string]any)
	if !ok {
		// Booleans and other scalars are valid JSON Schema positions
		// (additionalItems: false) and pass through untouched.
		return deepCopyValue(schema), nil
	}

	if ref, isRef := node["$ref"].(string); isRef {
		refs.add(ref)
		return map[string]any{"$ref": ref}, nil
	}

	converted := make(map[string]any, len(node))
	for key, value := range node {
		if _, drop := swaggerOnlyKeys[key]; drop {
			continue
		}
		if strings.HasPrefix(key, "x-") {
			continue
		}
		converted[key] = deepCopyValue(value)
	}

	// Swagger's "file" type is not valid JSON Schema.
	if t, isString := converted["type"].(string); isString && t == "file" {
		converted["type"] = "string"
	}

	// Examples may embed $refs against the Swagger document, not the JSON
	// Schema document, so they are expanded here rather than carried along.
	if example, hasExample := node["example"]; hasExample {
		expanded, err := Dereference(example, swaggerRoot)
		if err != nil {
			return nil, err
		}
		converted["examples"] = []any{expanded}
	}

	// x-nullable widens the type when one is declared; only enum-typed
	// schemas without a type get null appended to the enum. The type branch
	// deliberately wins when both are present.
	if isTruthy(node["x-nullable"]) {
		if t, hasType := converted["type"]; hasType {
			converted["type"] = []any{t, "null"}
		} else if enum, hasEnum := converted["enum"].([]any); hasEnum {
			if !containsNull(enum) {
				converted["enum"] = append(enum, nil)
			}
		} else {
			converted["type"] = "null"
		}
	}

	for _, key := range schemaCombinatorKeys {
		list, isList := converted[key].([]any)
		if !isList {
			continue
		}
		for i, item := range list {
			sub, err := c.convertSubSchema(item, refs, swaggerRoot, depth+1)
			if err != nil {
				return nil, err
			}
			list[i] = sub
		}
	}

	if not, hasNot := converted["not"]; hasNot {
		sub, err := c.convertSubSchema(not, refs, swaggerRoot, depth+1)
		if err != nil {
			return nil, err
		}
		converted["not"] = sub
	}

	if items, hasItems := converted["items"]; hasItems {
		switch typed := items.(type) {
		case []any:
			// Tuple-typed items convert element-wise.
			for i, item := range typed {
				sub, err := c.convertSubSchema(item, refs, swaggerRoot, depth+1)
				if err != nil {
					return nil, err
				}
				typed[i] = sub
			}
		default:
			sub, err := c.convertSubSchema(items, refs, swaggerRoot, depth+1)
			if err != nil {
				return nil, err
			}
			converted["items"] = sub
		}
	}

	// additionalItems and additionalProperties may be booleans, which are
	// valid JSON Schema but not schema nodes to convert.
	if additionalItems, isMap := converted["additionalItems"].(map[string]any); isMap {
		sub, err := c.convertSubSchema(additionalItems, refs, swaggerRoot, depth+1)
		if err != nil {
			return nil, err
		}
		converted["additionalItems"] = sub
	}

	for _, key := range schemaObjectMapKeys {
		props, isMap := converted[key].(map[string]any)
		if !isMap {
			continue
		}
		for name, prop := range props {
			sub, err := c.convertSubSchema(prop, refs, swaggerRoot, depth+1)
			if err != nil {
				return nil, err
			}
			props[name] = sub
		}
	}

	if additionalProperties, isMap := converted["additionalProperties"].(map[string]any); isMap {
		sub, err := c.convertSubSchema(additionalProperties, refs, swaggerRoot, depth+1)
		if err != nil {
			return nil, err
		}
		converted["additionalProperties"] = sub
	}

	return converted, nil
}

// isTruthy mirrors the loose truthiness Swagger tooling applies to
// extension values like x-nullable: true.
func isTruthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case float64:
		return t != 0
	case int:
		return t != 0
	case int64:
		return t != 0
	default:
		return true
	}
}

func containsNull(values []any) bool {
	for _, v := range values {
		if v == nil {
			return true
		}
	}
	return false
}
