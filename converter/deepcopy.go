package converter

// deepCopyValue recursively deep copies any JSON-compatible value. Converted
// output and copied definitions must never alias the caller's input trees,
// since callers commonly mutate or re-serialize both sides.
func deepCopyValue(v any) any {
	if v == nil {
		return nil
	}
	switch t := v.(type) {
	case string, bool, float64, int, int64, float32, int32, int16, int8, uint, uint64, uint32, uint16, uint8:
		return t // Primitives copy by value
	case []any:
		cp := make([]any, len(t))
		for i, item := range t {
			cp[i] = deepCopyValue(item)
		}
		return cp
	case map[string]any:
		cp := make(map[string]any, len(t))
		for k, item := range t {
			cp[k] = deepCopyValue(item)
		}
		return cp
	default:
		// Unknown type - could be custom values from a decoder
		// Return as-is (shallow copy)
		return v
	}
}
