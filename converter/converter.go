package converter

// Converter transforms Swagger 2.0 schema objects into JSON Schema. The zero
// value is usable but copies no definitions; New returns the recommended
// defaults.
type Converter struct {
	// CopyDefinitions controls whether every definition transitively
	// reachable from the converted schema is copied into the result's
	// definitions map. When false, cross-references remain as bare $refs.
	CopyDefinitions bool
	// NormalizeNames rewrites definition ids containing characters that are
	// invalid in $ref values (generic names like Response[User]) while
	// copying definitions, updating every $ref in the result to match.
	NormalizeNames bool
	// Naming configures how invalid definition ids are rewritten when
	// NormalizeNames is enabled.
	Naming NamingConfig
	// Logger receives debug output during conversion. Defaults to NopLogger.
	Logger Logger
}

// New creates a new Converter instance with default settings
func New() *Converter {
	return &Converter{
		CopyDefinitions: true,
		Naming:          DefaultNamingConfig(),
		Logger:          NopLogger{},
	}
}

// ConvertSchema is a convenience function that converts a single Swagger
// schema with default settings. It's equivalent to creating a Converter with
// New() and calling ConvertSchema().
//
// Example:
//
//	result, err := converter.ConvertSchema(schema, root, swaggerRoot)
//	if err != nil {
//	    log.Fatal(err)
//	}
func ConvertSchema(schema, root, swaggerRoot map[string]any) (map[string]any, error) {
	return New().ConvertSchema(schema, root, swaggerRoot)
}

// ConvertSchemaDefinitions is a convenience function that converts an entire
// definitions section with default settings, each entry standalone.
func ConvertSchemaDefinitions(definitions map[string]any) (map[string]any, error) {
	return New().ConvertSchemaDefinitions(definitions)
}

// ConvertSchema converts one Swagger schema object into a JSON-Schema-shaped
// tree.
//
// The schema's own nodes are transformed (Swagger-only keys stripped, type
// "file" rewritten, example expanded, x-nullable widened) while referenced
// definitions are collected: when CopyDefinitions is set, the full transitive
// closure of #/definitions/<id> references is resolved against root and each
// definition is copied verbatim - unconverted - into the result's
// "definitions" map, first write winning.
//
// root is the document whose definitions $refs resolve against (a JSON
// Schema root or the Swagger document itself). swaggerRoot is the original
// Swagger document; it is consulted only to expand example values, which may
// reference Swagger definitions.
//
// A result whose top level would be a bare self-referential $ref is wrapped
// in a single-element allOf instead of inlined, so downstream consumers
// cannot expand it forever.
func (c *Converter) ConvertSchema(schema, root, swaggerRoot map[string]any) (map[string]any, error) {
	logger := c.logger()

	collector := &referenceCollector{refs: getReferenceList()}
	defer func() { putReferenceList(collector.refs) }()

	convertedNode, err := c.convertSubSchema(schema, collector, swaggerRoot, 0)
	if err != nil {
		return nil, err
	}
	// map input always converts to a map
	converted := convertedNode.(map[string]any)

	var definitions map[string]any
	if c.CopyDefinitions && len(collector.refs) > 0 {
		definitions = make(map[string]any)
		worklist := collector.refs
		for len(worklist) > 0 {
			ref := worklist[len(worklist)-1]
			worklist = worklist[:len(worklist)-1]

			resolved, err := LookupReferenceDepth(ref, root, definitionDepth)
			if err != nil {
				return nil, err
			}
			if _, copied := definitions[resolved.ID]; copied {
				continue
			}
			node := deepCopyValue(resolved.Value)
			definitions[resolved.ID] = node
			worklist = append(worklist, FindReferences(node)...)
			logger.Debug("copied definition", "id", resolved.ID, "ref", ref)
		}
		collector.refs = worklist
	}

	result, err := c.normalizeRootReference(converted, root, definitions)
	if err != nil {
		return nil, err
	}

	if c.NormalizeNames {
		result, err = c.normalizeDefinitionNames(result)
		if err != nil {
			return nil, err
		}
	}

	return result, nil
}

// normalizeRootReference post-processes a converted schema whose top level is
// itself a bare {$ref}. When the referenced definition contains no further
// references it is inlined outright; otherwise the reference is wrapped in a
// single-element allOf alongside the definitions map. Consumers that expand
// a root-level self-reference forever terminate correctly inside an allOf.
func (c *Converter) normalizeRootReference(converted, root, definitions map[string]any) (map[string]any, error) {
	ref, bare := bareReference(converted)
	if !bare || !c.CopyDefinitions {
		if definitions != nil {
			converted["definitions"] = definitions
		}
		return converted, nil
	}

	resolved, err := LookupReferenceDepth(ref, root, definitionDepth)
	if err != nil {
		return nil, err
	}

	if target, copied := definitions[resolved.ID]; copied && !HasReferences(target) {
		if inlined, isMap := target.(map[string]any); isMap {
			c.logger().Debug("inlined root reference", "ref", ref, "id", resolved.ID)
			return inlined, nil
		}
	}

	wrapper := map[string]any{
		"allOf": []any{map[string]any{"$ref": ref}},
	}
	if definitions != nil {
		wrapper["definitions"] = definitions
	}
	c.logger().Debug("wrapped self-referential root", "ref", ref)
	return wrapper, nil
}

// bareReference reports whether node is exactly {$ref: string}.
func bareReference(node map[string]any) (string, bool) {
	if len(node) != 1 {
		return "", false
	}
	ref, ok := node["$ref"].(string)
	return ref, ok
}

func (c *Converter) logger() Logger {
	if c.Logger == nil {
		return NopLogger{}
	}
	return c.Logger
}
