// This file implements batch conversion of a document's entire definitions
// section. Each definition converts standalone: cross-references between
// definitions remain bare $refs instead of being copied into every entry.

package converter

import "fmt"

// ConvertSchemaDefinitions converts every entry of a definitions map
// independently, producing a converted definitions map under the same ids.
// Definition copying is disabled for each entry, so mutual references stay
// as $refs into the surrounding map; the definitions map itself is both the
// resolution root and the Swagger document for example expansion.
func (c *Converter) ConvertSchemaDefinitions(definitions map[string]any) (map[string]any, error) {
	root := map[string]any{"definitions": definitions}

	standalone := *c
	standalone.CopyDefinitions = false
	standalone.NormalizeNames = false

	converted := make(map[string]any, len(definitions))
	for id, schema := range definitions {
		node, ok := schema.(map[string]any)
		if !ok {
			// Boolean and other non-object definitions pass through.
			converted[id] = deepCopyValue(schema)
			continue
		}
		result, err := standalone.ConvertSchema(node, root, root)
		if err != nil {
			return nil, fmt.Errorf("failed to convert definition %q: %w", id, err)
		}
		converted[id] = result
	}
	return converted, nil
}
