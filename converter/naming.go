// This file implements detection and transformation of invalid definition
// names. Third-party code generators often produce Swagger documents with
// definition ids containing unencoded special characters (like Response[User]
// for generic types), which break JSON Pointer references in downstream
// consumers. The closure builder can rewrite such ids and every $ref that
// points at them.

package converter

import (
	"fmt"
	"slices"
	"strings"
	"unicode"

	"github.com/erraggy/swagschema/schemaerrors"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NamingStrategy defines how generic type parameters are formatted when
// transforming invalid definition ids into valid ones.
type NamingStrategy int

const (
	// NamingUnderscore replaces brackets with underscores.
	// Example: Response[User] -> Response_User_
	NamingUnderscore NamingStrategy = iota

	// NamingOf uses "Of" separator between base type and parameters.
	// Example: Response[User] -> ResponseOfUser
	NamingOf

	// NamingFlattened removes brackets entirely.
	// Example: Response[User] -> ResponseUser
	NamingFlattened
)

// String returns the string representation of a NamingStrategy.
func (s NamingStrategy) String() string {
	switch s {
	case NamingUnderscore:
		return "underscore"
	case NamingOf:
		return "of"
	case NamingFlattened:
		return "flattened"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

func (s NamingStrategy) valid() bool {
	switch s {
	case NamingUnderscore, NamingOf, NamingFlattened:
		return true
	}
	return false
}

// ParseNamingStrategy parses a string into a NamingStrategy.
// Supported values: "underscore", "of", "flattened" (case-insensitive).
func ParseNamingStrategy(s string) (NamingStrategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "underscore", "_":
		return NamingUnderscore, nil
	case "of":
		return NamingOf, nil
	case "flattened", "flat":
		return NamingFlattened, nil
	default:
		return NamingUnderscore, &schemaerrors.ConfigError{
			Option:  "NamingStrategy",
			Value:   s,
			Message: "unknown naming strategy",
		}
	}
}

// NamingConfig provides fine-grained control over definition-name rewriting.
type NamingConfig struct {
	// Strategy is the primary naming approach.
	Strategy NamingStrategy

	// Separator is used between base type and parameters for the
	// underscore strategy. Default: "_"
	Separator string

	// ParamSeparator is used between multiple type parameters.
	// Example with ParamSeparator="_": Map[string,int] -> Map_string_int_
	// Default: "_"
	ParamSeparator string

	// PreserveCasing when false converts type parameters to PascalCase.
	// When true, keeps original casing of type parameters.
	PreserveCasing bool
}

// DefaultNamingConfig returns the default naming configuration: underscore
// strategy with "_" separators, parameters converted to PascalCase.
func DefaultNamingConfig() NamingConfig {
	return NamingConfig{
		Strategy:       NamingUnderscore,
		Separator:      "_",
		ParamSeparator: "_",
	}
}

// invalidDefinitionNameChars contains characters that require URL encoding
// in $ref values. Definition ids carrying them break JSON Pointer references
// unless percent-encoded.
var invalidDefinitionNameChars = []rune{
	'[', ']', // square brackets (generics)
	'<', '>', // angle brackets (generics in some languages)
	',',      // comma (multiple type parameters)
	' ',      // space
	'{', '}', // curly braces
	'|',  // pipe
	'\\', // backslash
	'^',  // caret
	'`',  // backtick
}

// hasInvalidDefinitionNameChars returns true if id contains characters that
// are problematic in definition ids.
func hasInvalidDefinitionNameChars(id string) bool {
	if strings.TrimSpace(id) == "" {
		return true
	}
	for _, c := range id {
		if slices.Contains(invalidDefinitionNameChars, c) {
			return true
		}
	}
	return false
}

// parseGenericName extracts the base name and type parameters from a
// generic-style id. If the id is not generic-style, returns the id as base
// with empty params.
//
// Examples:
//
//	"Response[User]" -> ("Response", ["User"])
//	"Map[string,int]" -> ("Map", ["string", "int"])
//	"List<Item>" -> ("List", ["Item"])
//	"PlainName" -> ("PlainName", nil)
func parseGenericName(id string) (base string, params []string) {
	if idx := strings.Index(id, "["); idx != -1 {
		if endIdx := strings.LastIndex(id, "]"); endIdx > idx {
			return id[:idx], splitTypeParams(id[idx+1 : endIdx])
		}
	}
	if idx := strings.Index(id, "<"); idx != -1 {
		if endIdx := strings.LastIndex(id, ">"); endIdx > idx {
			return id[:idx], splitTypeParams(id[idx+1 : endIdx])
		}
	}
	return id, nil
}

// splitTypeParams splits a parameter string by commas, handling nested
// brackets so "User,List[Item],int" yields three parameters.
func splitTypeParams(s string) []string {
	if s == "" {
		return nil
	}

	var params []string
	var current strings.Builder
	depth := 0

	for _, r := range s {
		switch r {
		case '[', '<':
			depth++
			current.WriteRune(r)
		case ']', '>':
			depth--
			current.WriteRune(r)
		case ',':
			if depth == 0 {
				if param := strings.TrimSpace(current.String()); param != "" {
					params = append(params, param)
				}
				current.Reset()
			} else {
				current.WriteRune(r)
			}
		default:
			current.WriteRune(r)
		}
	}

	if param := strings.TrimSpace(current.String()); param != "" {
		params = append(params, param)
	}
	return params
}

// transformDefinitionName applies the naming strategy to generate a valid
// definition id from an invalid generic-style one.
//
// Examples with NamingOf:
//
//	"Response[User]" -> "ResponseOfUser"
//	"Response[List[User]]" -> "ResponseOfListOfUser"
func transformDefinitionName(id string, config NamingConfig) string {
	if strings.TrimSpace(id) == "" {
		return "UnnamedSchema"
	}

	base, params := parseGenericName(id)
	if len(params) == 0 {
		if sanitized := sanitizeDefinitionName(id); sanitized != "" {
			return sanitized
		}
		return "UnnamedSchema"
	}

	transformed := make([]string, len(params))
	for i, param := range params {
		transformed[i] = transformTypeParam(param, config)
	}

	switch config.Strategy {
	case NamingOf:
		return base + "Of" + strings.Join(transformed, config.ParamSeparator+"Of")

	case NamingFlattened:
		return base + strings.Join(transformed, "")

	default: // NamingUnderscore
		sep := config.Separator
		if sep == "" {
			sep = "_"
		}
		paramSep := config.ParamSeparator
		if paramSep == "" {
			paramSep = "_"
		}
		return base + sep + strings.Join(transformed, paramSep) + sep
	}
}

// transformTypeParam transforms a type parameter, recursing into nested
// generic types. Leading pointer asterisks leaked from code generators are
// stripped; package-qualified names (common.Pet) are preserved as-is.
func transformTypeParam(param string, config NamingConfig) string {
	param = strings.TrimLeft(param, "*")

	if strings.Contains(param, ".") && !strings.ContainsAny(param, "[]<>") {
		return param
	}

	transformed := transformDefinitionName(param, config)
	if !config.PreserveCasing {
		transformed = toPascalCase(transformed)
	}
	return transformed
}

// sanitizeDefinitionName replaces invalid characters with underscores. This
// is the fallback for ids that aren't cleanly generic-style but still carry
// problematic characters.
func sanitizeDefinitionName(id string) string {
	var result strings.Builder
	result.Grow(len(id))

	for _, r := range id {
		if isValidDefinitionNameChar(r) {
			result.WriteRune(r)
		} else {
			result.WriteRune('_')
		}
	}

	s := result.String()
	for strings.Contains(s, "__") {
		s = strings.ReplaceAll(s, "__", "_")
	}
	return strings.Trim(s, "_")
}

// isValidDefinitionNameChar returns true if the character is valid in
// definition ids: alphanumeric, underscore, hyphen, and dot.
func isValidDefinitionNameChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '-' || r == '.'
}

// toPascalCase converts a string to PascalCase. Separators (underscore,
// hyphen, dot, slash, space) trigger capitalization.
func toPascalCase(s string) string {
	if s == "" {
		return ""
	}

	// Use golang.org/x/text/cases for proper Unicode title casing
	titleCaser := cases.Title(language.English, cases.NoLower)

	var result strings.Builder
	result.Grow(len(s))

	capitalizeNext := true
	for _, r := range s {
		if r == '_' || r == '-' || r == '.' || r == '/' || r == ' ' {
			capitalizeNext = true
			continue
		}
		if capitalizeNext {
			result.WriteString(titleCaser.String(string(r)))
			capitalizeNext = false
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// normalizeDefinitionNames renames invalid ids in the result's definitions
// map per the converter's NamingConfig and rewrites every $ref in the result
// to match. Renames that would collide with an existing or already-claimed
// id are skipped, leaving the original id in place.
func (c *Converter) normalizeDefinitionNames(result map[string]any) (map[string]any, error) {
	definitions, ok := result["definitions"].(map[string]any)
	if !ok {
		return result, nil
	}

	renames := make(map[string]string)
	claimed := make(map[string]struct{}, len(definitions))
	for id := range definitions {
		claimed[id] = struct{}{}
	}
	for id := range definitions {
		if !hasInvalidDefinitionNameChars(id) {
			continue
		}
		newID := transformDefinitionName(id, c.Naming)
		if newID == id {
			continue
		}
		if _, taken := claimed[newID]; taken {
			c.logger().Warn("skipping definition rename due to collision", "id", id, "target", newID)
			continue
		}
		claimed[newID] = struct{}{}
		renames[id] = newID
	}
	if len(renames) == 0 {
		return result, nil
	}

	for oldID, newID := range renames {
		definitions[newID] = definitions[oldID]
		delete(definitions, oldID)
		c.logger().Debug("renamed definition", "from", oldID, "to", newID)
	}
	rewriteReferences(result, renames)
	return result, nil
}

// rewriteReferences walks value and rewrites the definition id segment of
// every local $ref according to renames. Sub-path suffixes are preserved.
func rewriteReferences(value any, renames map[string]string) {
	switch v := value.(type) {
	case map[string]any:
		if ref, ok := v["$ref"].(string); ok {
			if rewritten, changed := rewriteReference(ref, renames); changed {
				v["$ref"] = rewritten
			}
		}
		for _, item := range v {
			rewriteReferences(item, renames)
		}
	case []any:
		for _, item := range v {
			rewriteReferences(item, renames)
		}
	}
}

func rewriteReference(ref string, renames map[string]string) (string, bool) {
	parts := strings.Split(ref, "/")
	if len(parts) < 3 || parts[0] != "#" || parts[1] != "definitions" {
		return ref, false
	}
	newID, ok := renames[parts[2]]
	if !ok {
		return ref, false
	}
	parts[2] = newID
	return strings.Join(parts, "/"), true
}
