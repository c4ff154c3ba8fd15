// Package state provides the small reactive primitives the store and its
// view host are built on: shallow equality, value cells, and schedulers.
package state

import "reflect"

// EqualFunc compares two values for equality.
type EqualFunc[T any] func(a, b T) bool

// Same reports whether a and b are the same value under shallow identity.
//
// Comparable values use ==. Maps, pointers and channels compare by reference,
// slices by backing array, length and capacity. Funcs and other
// non-comparable values are never the same unless both are nil.
func Same(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	va := reflect.ValueOf(a)
	vb := reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}
	switch va.Kind() {
	case reflect.Map, reflect.Pointer, reflect.Chan, reflect.UnsafePointer:
		return va.UnsafePointer() == vb.UnsafePointer()
	case reflect.Slice:
		if va.IsNil() || vb.IsNil() {
			return va.IsNil() && vb.IsNil()
		}
		return va.UnsafePointer() == vb.UnsafePointer() &&
			va.Len() == vb.Len() &&
			va.Cap() == vb.Cap()
	case reflect.Func:
		return va.IsNil() && vb.IsNil()
	}
	if !va.Comparable() || !vb.Comparable() {
		return false
	}
	return a == b
}

// EqualSame adapts Same into an EqualFunc.
func EqualSame[T any](a, b T) bool {
	return Same(a, b)
}
