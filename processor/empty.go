package processor

import "reflect"

// IsEmpty reports whether v is an empty result: an untyped nil, or an
// interface holding a nil pointer, map, chan, func or interface.
// Nil slices are values.
func IsEmpty(v interface{}) bool {
	if v == nil {
		return true
	}

	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}
