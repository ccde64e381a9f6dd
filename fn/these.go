package fn

import (
	"reflect"

	"github.com/tidwall/gjson"
)

// These returns the collection to iterate, optionally nested under a field.
//
//   - where == ""                      => what, unchanged
//   - what holds where (any map, pointer to map, or Attrs) => the stored value
//   - otherwise                        => an empty []any
//
// The empty string counts as "no key", so an explicit "" key is never looked up.
func These(what any, where string) any {
	if where == "" {
		return what
	}

	if a, ok := what.(Attrs); ok {
		if v, ok := a.Get(where); ok {
			return v
		}
		return []any{}
	}

	if m, ok := what.(map[string]any); ok {
		if v, ok := m[where]; ok {
			return v
		}
		return []any{}
	}

	rv := reflect.ValueOf(what)
	if rv.Kind() == reflect.Pointer && !rv.IsNil() {
		rv = rv.Elem()
	}

	if rv.Kind() == reflect.Map {
		if key, ok := mapKey(rv.Type().Key(), where); ok {
			if v := rv.MapIndex(key); v.IsValid() {
				return v.Interface()
			}
		}
	}

	return []any{}
}

// mapKey converts where to a key of type kt: string kinds by conversion,
// interface keys (map[any]any) by assignment.
func mapKey(kt reflect.Type, where string) (reflect.Value, bool) {
	kv := reflect.ValueOf(where)

	switch {
	case kv.Type().AssignableTo(kt):
		key := reflect.New(kt).Elem()
		key.Set(kv)
		return key, true
	case kt.Kind() == reflect.String:
		return kv.Convert(kt), true
	default:
		return reflect.Value{}, false
	}
}

// TheseJSON is These over a raw JSON document.
//
// With where == "" it yields the document's elements. Otherwise it yields the
// elements of the top-level field named exactly where (no path syntax), or an
// empty slice when the field is missing. A scalar yields itself as the only
// element; null yields nothing.
func TheseJSON(doc []byte, where string) []gjson.Result {
	root := gjson.ParseBytes(doc)
	if where == "" {
		return elements(root)
	}

	if !root.IsObject() {
		return []gjson.Result{}
	}

	v, ok := root.Map()[where]
	if !ok {
		return []gjson.Result{}
	}

	return elements(v)
}

func elements(r gjson.Result) []gjson.Result {
	out := r.Array()
	if out == nil {
		return []gjson.Result{}
	}
	return out
}
