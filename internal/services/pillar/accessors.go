package pillar

import (
	"fmt"
	"reflect"

	"github.com/edelwud/pillar-validator/internal/domain"
)

// Truthy reports whether a pillar value counts as set: nil, false, zero
// numbers, empty strings and empty collections do not.
func Truthy(value any) bool {
	if value == nil {
		return false
	}

	switch v := value.(type) {
	case bool:
		return v
	case string:
		return v != ""
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len() > 0
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() != 0
	default:
		return true
	}
}

// IsSet reports whether key holds a truthy value.
func IsSet(p domain.Pillar, key string) bool {
	value, ok := p.Get(key)
	return ok && Truthy(value)
}

// GetString returns the value under key as a string. Missing and nil
// values yield "".
func GetString(p domain.Pillar, key string) string {
	value, ok := p.Get(key)
	if !ok || value == nil {
		return ""
	}
	if s, isString := value.(string); isString {
		return s
	}

	return fmt.Sprint(value)
}

// GetBool returns the value under key and whether it is a boolean.
func GetBool(p domain.Pillar, key string) (bool, bool) {
	value, ok := p.Get(key)
	if !ok {
		return false, false
	}

	b, isBool := value.(bool)
	return b, isBool
}

// GetStringSlice returns the list under key as strings. A scalar is
// treated as a single element list; missing keys yield nil.
func GetStringSlice(p domain.Pillar, key string) []string {
	value, ok := p.Get(key)
	if !ok || value == nil {
		return nil
	}

	switch v := value.(type) {
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if item == nil {
				continue
			}
			out = append(out, fmt.Sprint(item))
		}
		return out
	case []string:
		return append([]string(nil), v...)
	case string:
		if v == "" {
			return nil
		}
		return []string{v}
	default:
		return []string{fmt.Sprint(v)}
	}
}
