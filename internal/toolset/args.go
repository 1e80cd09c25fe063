package toolset

import (
	"github.com/cockroachdb/errors"
)

func requireString(args map[string]any, key string) (string, error) {
	v, ok := args[key]
	if !ok {
		return "", errors.Newf("missing required argument %q", key)
	}
	s, ok := v.(string)
	if !ok {
		return "", errors.Newf("argument %q must be a string", key)
	}
	return s, nil
}

func requireNumber(args map[string]any, key string) (float64, error) {
	v, ok := args[key]
	if !ok {
		return 0, errors.Newf("missing required argument %q", key)
	}
	n, ok := v.(float64)
	if !ok {
		return 0, errors.Newf("argument %q must be a number", key)
	}
	return n, nil
}

func optionalNumber(args map[string]any, key string, fallback float64) float64 {
	v, ok := args[key]
	if !ok {
		return fallback
	}
	n, ok := v.(float64)
	if !ok {
		return fallback
	}
	return n
}

func optionalNumberPtr(args map[string]any, key string) *float64 {
	v, ok := args[key]
	if !ok {
		return nil
	}
	n, ok := v.(float64)
	if !ok {
		return nil
	}
	return &n
}

func optionalString(args map[string]any, key, fallback string) string {
	v, ok := args[key]
	if !ok {
		return fallback
	}
	s, ok := v.(string)
	if !ok {
		return fallback
	}
	return s
}

func optionalBool(args map[string]any, key string, fallback bool) bool {
	v, ok := args[key]
	if !ok {
		return fallback
	}
	b, ok := v.(bool)
	if !ok {
		return fallback
	}
	return b
}

func requireStringSlice(args map[string]any, key string) ([]string, error) {
	v, ok := args[key]
	if !ok {
		return nil, errors.Newf("missing required argument %q", key)
	}
	raw, ok := v.([]any)
	if !ok {
		return nil, errors.Newf("argument %q must be an array of strings", key)
	}
	out := make([]string, len(raw))
	for i, item := range raw {
		s, ok := item.(string)
		if !ok {
			return nil, errors.Newf("argument %q[%d] must be a string", key, i)
		}
		out[i] = s
	}
	return out, nil
}

func requireIntSlice(args map[string]any, key string) ([]int, error) {
	v, ok := args[key]
	if !ok {
		return nil, errors.Newf("missing required argument %q", key)
	}
	raw, ok := v.([]any)
	if !ok {
		return nil, errors.Newf("argument %q must be an array of integers", key)
	}
	out := make([]int, len(raw))
	for i, item := range raw {
		n, ok := item.(float64)
		if !ok {
			return nil, errors.Newf("argument %q[%d] must be an integer", key, i)
		}
		out[i] = int(n)
	}
	return out, nil
}

func requireInt(args map[string]any, key string) (int, error) {
	n, err := requireNumber(args, key)
	if err != nil {
		return 0, err
	}
	return int(n), nil
}
