package agent

import (
	"fmt"
	"reflect"
)

// contentGetter is satisfied by chat-style message results.
type contentGetter interface {
	GetContent() string
}

// textKeys are tried in order on mapping-shaped results.
var textKeys = []string{"content", "text", "response"}

// Normalize turns an opaque model result into display text:
//
//  1. a GetContent() accessor, or a struct with an exported string field Content
//  2. a map: the first of "content", "text", "response" holding a string
//  3. a string or []byte as-is
//  4. anything else via fmt.Sprint
//
// A nil result, including a typed nil pointer, normalizes to "".
func Normalize(result any) string {
	if rv := reflect.ValueOf(result); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return ""
	}

	switch v := result.(type) {
	case nil:
		return ""
	case contentGetter:
		return v.GetContent()
	case string:
		return v
	case []byte:
		return string(v)
	case map[string]string:
		for _, k := range textKeys {
			if s, ok := v[k]; ok {
				return s
			}
		}
		return fmt.Sprint(v)
	case map[string]any:
		// Only string values count. A non-string "content" (nil, or a list
		// of content parts) moves on to the next key, and a map with no
		// string under any key is printed whole rather than flattened.
		for _, k := range textKeys {
			if s, ok := v[k].(string); ok {
				return s
			}
		}
		return fmt.Sprint(v)
	}

	if s, ok := contentField(result); ok {
		return s
	}
	return fmt.Sprint(result)
}

// contentField reads an exported string field named Content from a struct or
// pointer to struct.
func contentField(result any) (string, bool) {
	rv := reflect.ValueOf(result)
	if rv.Kind() == reflect.Pointer {
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return "", false
	}
	f := rv.FieldByName("Content")
	if !f.IsValid() || f.Kind() != reflect.String || !f.CanInterface() {
		return "", false
	}
	return f.String(), true
}
