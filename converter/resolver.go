// This file implements parsing and resolution of internal $ref values.
// Swagger documents reference reusable schemas through the #/definitions/<id>
// convention; the resolver validates that shape and walks the document's
// definitions map to the referenced node.

package converter

import (
	"strconv"
	"strings"

	"github.com/erraggy/swagschema/schemaerrors"
)

const (
	// MaxSchemaDepth is the maximum nesting depth allowed during schema
	// conversion and scanning. This prevents stack overflow from deeply
	// nested (but non-circular) schema trees.
	MaxSchemaDepth = 100

	// definitionDepth is the lookup depth that stops at the owning
	// definition itself: two segments for "#" and "definitions" plus one
	// for the definition id. Sub-path segments beyond it are ignored.
	definitionDepth = 3
)

// ResolvedReference is the result of resolving a $ref against a document.
type ResolvedReference struct {
	// ID is the id of the top-level definition the reference points into,
	// regardless of any sub-path segments the reference carries
	ID string
	// Value is the node the walk stopped at
	Value any
}

// ParseReference extracts the definition id from a bare #/definitions/<id>
// reference. Only the exact three-segment form is accepted: references with
// sub-path segments fail with schemaerrors.ErrInvalidReferenceTarget. Use
// LookupReference to resolve references that address nested structure.
func ParseReference(ref string) (string, error) {
	parts := strings.Split(ref, "/")
	if parts[0] != "#" {
		return "", &schemaerrors.ReferenceError{Ref: ref, Kind: schemaerrors.KindInvalidRoot}
	}
	if len(parts) != 3 || parts[1] != "definitions" {
		return "", &schemaerrors.ReferenceError{Ref: ref, Kind: schemaerrors.KindInvalidTarget}
	}
	return parts[2], nil
}

// LookupReference fully resolves a reference against root's definitions map.
// Unlike ParseReference it tolerates sub-path segments, walking each one as a
// map key (or array index for numeric segments) inside the owning definition.
//
// The root may be a Swagger document or a JSON Schema document; the resolver
// only requires it to expose a definitions map.
func LookupReference(ref string, root map[string]any) (*ResolvedReference, error) {
	return lookupReference(ref, root, 0)
}

// LookupReferenceDepth resolves a reference like LookupReference but stops
// walking once depth segments have been consumed, counting "#" and
// "definitions" as the first two. A depth of 3 therefore resolves to the
// owning definition itself, ignoring any sub-path suffix. A depth of 0 means
// full resolution.
func LookupReferenceDepth(ref string, root map[string]any, depth int) (*ResolvedReference, error) {
	return lookupReference(ref, root, depth)
}

func lookupReference(ref string, root map[string]any, depth int) (*ResolvedReference, error) {
	parts := strings.Split(ref, "/")
	if parts[0] != "#" {
		return nil, &schemaerrors.ReferenceError{Ref: ref, Kind: schemaerrors.KindInvalidRoot}
	}
	if len(parts) < 3 || parts[1] != "definitions" {
		return nil, &schemaerrors.ReferenceError{Ref: ref, Kind: schemaerrors.KindInvalidTarget}
	}

	// The "#" segment is already consumed at this point.
	current := any(root)
	consumed := 1
	for _, segment := range parts[1:] {
		if depth > 0 && consumed >= depth {
			break
		}
		next, ok := walkSegment(current, segment)
		if !ok {
			return nil, &schemaerrors.ReferenceError{
				Ref:     ref,
				Kind:    schemaerrors.KindNotFound,
				Segment: segment,
			}
		}
		current = next
		consumed++
	}

	return &ResolvedReference{ID: parts[2], Value: current}, nil
}

// walkSegment dereferences one path segment: a key for objects, an index
// for arrays per RFC 6901.
func walkSegment(current any, segment string) (any, bool) {
	switch v := current.(type) {
	case map[string]any:
		next, ok := v[segment]
		return next, ok
	case []any:
		index, err := strconv.Atoi(segment)
		if err != nil || index < 0 || index >= len(v) {
			return nil, false
		}
		return v[index], true
	default:
		return nil, false
	}
}
