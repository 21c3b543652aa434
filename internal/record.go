package internal

// Accessors for JSON decoded into map[string]any. Each reports false when the
// key is absent or holds a value of another type.

func Float(rec map[string]any, key string) (float64, bool) {
	v, ok := rec[key].(float64)
	return v, ok
}

func String(rec map[string]any, key string) (string, bool) {
	v, ok := rec[key].(string)
	return v, ok
}

func Object(rec map[string]any, key string) (map[string]any, bool) {
	v, ok := rec[key].(map[string]any)
	return v, ok
}

func Array(rec map[string]any, key string) ([]any, bool) {
	v, ok := rec[key].([]any)
	return v, ok
}

// Floats returns the numeric elements of an array; ok is false if any
// element is not a number.
func Floats(rec map[string]any, key string) ([]float64, bool) {
	arr, ok := Array(rec, key)
	if !ok {
		return nil, false
	}
	out := make([]float64, len(arr))
	for i, v := range arr {
		f, ok := v.(float64)
		if !ok {
			return nil, false
		}
		out[i] = f
	}
	return out, true
}

// Strings is Floats for string elements.
func Strings(rec map[string]any, key string) ([]string, bool) {
	arr, ok := Array(rec, key)
	if !ok {
		return nil, false
	}
	out := make([]string, len(arr))
	for i, v := range arr {
		s, ok := v.(string)
		if !ok {
			return nil, false
		}
		out[i] = s
	}
	return out, true
}
