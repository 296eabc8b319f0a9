package attrs

import "fmt"

// ExtractString extracts a string value from a key-value attribute slice.
// The slice should be formatted as [key1, value1, key2, value2, ...].
// Returns empty string if the key is not found or the value is not a string.
func ExtractString(attrs []any, key string) string {
	for i := 0; i < len(attrs)-1; i += 2 {
		k, ok := attrs[i].(string)
		if !ok {
			continue
		}
		if k == key {
			if v, ok := attrs[i+1].(string); ok {
				return v
			}
		}
	}
	return ""
}

// Fields converts a key-value attribute slice into a string map, rendering
// non-string values with fmt. Keys that are not strings are skipped. Used by
// the audit sink adapter to flatten caller-supplied extras.
func Fields(attrs []any) map[string]string {
	if len(attrs) == 0 {
		return nil
	}
	fields := make(map[string]string, len(attrs)/2)
	for i := 0; i < len(attrs)-1; i += 2 {
		k, ok := attrs[i].(string)
		if !ok {
			continue
		}
		switch v := attrs[i+1].(type) {
		case string:
			fields[k] = v
		case fmt.Stringer:
			fields[k] = v.String()
		default:
			fields[k] = fmt.Sprintf("%v", v)
		}
	}
	return fields
}
