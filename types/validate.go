package types

import "reflect"

/*
Valid is the single rule applied before any Put mutates state.

A call is rejected when:
- the key is empty
- the value is nil (including a typed nil such as (*T)(nil) or a nil map/slice)
- the value is an empty string, or an empty slice or map
*/
func Valid(key string, value any) bool {
	if key == "" || value == nil {
		return false
	}

	if s, ok := value.(string); ok {
		return s != ""
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Map, reflect.Slice:
		return !rv.IsNil() && rv.Len() > 0
	case reflect.Pointer, reflect.Func, reflect.Chan:
		return !rv.IsNil()
	}
	return true
}
