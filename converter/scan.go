// This file implements read-only reference scanning over already-resolved
// schema trees. The closure builder scans each definition it copies to learn
// which further definitions the copy pulls in.

package converter

// FindReferences returns every $ref string transitively contained in schema,
// in traversal order. The walk mirrors the conversion recursion shape
// (combinators, items, additionalItems, properties, patternProperties,
// additionalProperties) without transforming anything. A reference node
// terminates its branch: its contents belong to the referenced definition.
func FindReferences(schema any) []string {
	var refs []string
	findReferences(schema, &refs)
	return refs
}

func findReferences(schema any, out *[]string) {
	node, ok := schema.(map[string]any)
	if !ok {
		return
	}

	if ref, isRef := node["$ref"].(string); isRef {
		*out = append(*out, ref)
		return
	}

	for _, key := range schemaCombinatorKeys {
		if list, isList := node[key].([]any); isList {
			for _, item := range list {
				findReferences(item, out)
			}
		}
	}

	if not, hasNot := node["not"]; hasNot {
		findReferences(not, out)
	}

	if items, hasItems := node["items"]; hasItems {
		switch typed := items.(type) {
		case []any:
			for _, item := range typed {
				findReferences(item, out)
			}
		default:
			findReferences(items, out)
		}
	}

	if additionalItems, isMap := node["additionalItems"].(map[string]any); isMap {
		findReferences(additionalItems, out)
	}

	for _, key := range schemaObjectMapKeys {
		if props, isMap := node[key].(map[string]any); isMap {
			for _, prop := range props {
				findReferences(prop, out)
			}
		}
	}

	if additionalProperties, isMap := node["additionalProperties"].(map[string]any); isMap {
		findReferences(additionalProperties, out)
	}
}

// HasReferences reports whether any $ref exists anywhere in the subtree.
// Unlike FindReferences it walks every object value and array element, so it
// also sees references outside recognized schema keywords.
func HasReferences(schema any) bool {
	switch v := schema.(type) {
	case map[string]any:
		if _, isRef := v["$ref"].(string); isRef {
			return true
		}
		for _, item := range v {
			if HasReferences(item) {
				return true
			}
		}
	case []any:
		for _, item := range v {
			if HasReferences(item) {
				return true
			}
		}
	}
	return false
}
