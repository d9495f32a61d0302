package mcp

import (
	"encoding/json"
	"fmt"

	apperrors "github.com/kolsense/kolsense/internal/pkg/errors"
)

// Param readers for the loosely-typed params map. JSON numbers arrive as
// float64, so the int readers accept both.

func requireString(params map[string]interface{}, key string) (string, error) {
	s := stringParam(params, key)
	if s == "" {
		return "", apperrors.NewValidationError(fmt.Sprintf("Missing required parameter: '%s'", key))
	}
	return s, nil
}

func stringParam(params map[string]interface{}, key string) string {
	if s, ok := params[key].(string); ok {
		return s
	}
	return ""
}

// stringPtrParam distinguishes an absent key from an empty string
func stringPtrParam(params map[string]interface{}, key string) *string {
	if s, ok := params[key].(string); ok {
		return &s
	}
	return nil
}

func intParam(params map[string]interface{}, key string) *int {
	v, ok := params[key]
	if !ok {
		return nil
	}
	var n int
	switch t := v.(type) {
	case float64:
		n = int(t)
	case int:
		n = t
	case json.Number:
		i, err := t.Int64()
		if err != nil {
			return nil
		}
		n = int(i)
	default:
		return nil
	}
	return &n
}

func floatParam(params map[string]interface{}, key string) *float64 {
	v, ok := params[key]
	if !ok {
		return nil
	}
	var f float64
	switch t := v.(type) {
	case float64:
		f = t
	case int:
		f = float64(t)
	case json.Number:
		parsed, err := t.Float64()
		if err != nil {
			return nil
		}
		f = parsed
	default:
		return nil
	}
	return &f
}

// stringList accepts both a JSON array of strings and a bare string, folding
// the latter into a one-element list
func stringList(params map[string]interface{}, key string) []string {
	switch t := params[key].(type) {
	case []interface{}:
		out := make([]string, 0, len(t))
		for _, v := range t {
			if s, ok := v.(string); ok && s != "" {
				out = append(out, s)
			}
		}
		return out
	case []string:
		return t
	case string:
		if t == "" {
			return nil
		}
		return []string{t}
	default:
		return nil
	}
}
