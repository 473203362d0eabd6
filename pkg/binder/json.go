package binder

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
)

// DefaultMaxJSONSize is the default maximum size for JSON request bodies (1MB).
const DefaultMaxJSONSize = 1 << 20 // 1 MB

// jsonValues reads a flat JSON object into form values. Strings, numbers and
// booleans become single values, arrays of them become repeated values and
// null is skipped. Nested objects are rejected.
func jsonValues(r *http.Request) (url.Values, error) {
	body, err := io.ReadAll(io.LimitReader(r.Body, DefaultMaxJSONSize+1))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read request body: %v", ErrFailedToParseJSON, err)
	}
	if len(body) > DefaultMaxJSONSize {
		return nil, fmt.Errorf("%w: request body too large (max %d bytes)", ErrFailedToParseJSON, DefaultMaxJSONSize)
	}
	if len(body) == 0 {
		return nil, fmt.Errorf("%w: empty body", ErrFailedToParseJSON)
	}

	var raw map[string]any
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToParseJSON, err)
	}

	values := make(url.Values, len(raw))
	for key, v := range raw {
		switch v := v.(type) {
		case nil:
		case []any:
			for _, elem := range v {
				s, ok := scalarString(elem)
				if !ok {
					return nil, fmt.Errorf("%w: field %q holds a nested value", ErrFailedToParseJSON, key)
				}
				values.Add(key, s)
			}
		default:
			s, ok := scalarString(v)
			if !ok {
				return nil, fmt.Errorf("%w: field %q holds a nested value", ErrFailedToParseJSON, key)
			}
			values.Set(key, s)
		}
	}
	return values, nil
}

func scalarString(v any) (string, bool) {
	switch v := v.(type) {
	case string:
		return v, true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(v), true
	default:
		return "", false
	}
}
