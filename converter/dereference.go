// This file implements cycle-safe dereferencing of $ref nodes in arbitrary
// JSON-like values. It is used to expand Swagger example values, which may
// themselves reference the Swagger document's definitions.

package converter

import (
	"strconv"
	"strings"
)

// Dereference recursively copies value, replacing every {$ref: string} node
// with the value it resolves to against root's definitions map. Arrays are
// copied element-wise and objects key-wise; scalars and nil pass through
// unchanged.
//
// A reference that would re-enter a path currently being expanded is a
// cycle, not an error: nil is substituted in its place. This bounds the
// recursion to the size of the distinct reference graph. Malformed or
// unresolvable references abort with a schemaerrors.ReferenceError.
func Dereference(value any, root map[string]any) (any, error) {
	return dereferenceValue(value, root, nil, nil)
}

func dereferenceValue(value any, root map[string]any, visitedPaths, path []string) (any, error) {
	switch v := value.(type) {
	case map[string]any:
		if ref, ok := v["$ref"].(string); ok {
			if pathHasCircularReference(visitedPaths, path, ref) {
				return nil, nil
			}
			resolved, err := LookupReference(ref, root)
			if err != nil {
				return nil, err
			}
			// Record the path that reached this reference, then measure
			// nested cycles relative to where the reference points.
			visited := appendPath(visitedPaths, strings.Join(path, "."))
			return dereferenceValue(resolved.Value, root, visited, strings.Split(ref, "/"))
		}
		out := make(map[string]any, len(v))
		for key, item := range v {
			expanded, err := dereferenceValue(item, root, visitedPaths, appendPath(path, key))
			if err != nil {
				return nil, err
			}
			out[key] = expanded
		}
		return out, nil

	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			expanded, err := dereferenceValue(item, root, visitedPaths, appendPath(path, strconv.Itoa(i)))
			if err != nil {
				return nil, err
			}
			out[i] = expanded
		}
		return out, nil

	default:
		return value, nil
	}
}

// pathHasCircularReference reports whether following ref would re-enter a
// path already being expanded. Paths are compared dot-joined against the
// ref's own dot-joined segments.
//
// The comparison is a string-prefix match, so a reference can also collide
// with a sibling definition sharing its id as a prefix: #/definitions/User
// matches a path inside #/definitions/UserList.
func pathHasCircularReference(visitedPaths, path []string, ref string) bool {
	refPath := strings.ReplaceAll(ref, "/", ".")
	if strings.HasPrefix(strings.Join(path, "."), refPath) {
		return true
	}
	for _, visited := range visitedPaths {
		if strings.HasPrefix(visited, refPath) {
			return true
		}
	}
	return false
}

// appendPath returns a new slice so sibling branches never share backing
// storage.
func appendPath(path []string, segment string) []string {
	next := make([]string, len(path)+1)
	copy(next, path)
	next[len(path)] = segment
	return next
}
