// Package hailoutil holds helpers shared by the owning wrappers and the
// command line tools.
package hailoutil

import (
	"errors"
	"reflect"
)

// Destroyer is implemented by every wrapper that owns a HailoRT handle.
type Destroyer interface {
	Destroy() error
}

// DestroyAll destroys resources in order and joins their errors. Typed nil
// values are skipped, so callers can pass partially built sets.
func DestroyAll(resources ...Destroyer) error {
	var err error
	for _, resource := range resources {
		if isNilDestroyer(resource) {
			continue
		}
		if destroyErr := resource.Destroy(); destroyErr != nil {
			err = errors.Join(err, destroyErr)
		}
	}
	return err
}

// DestroyReverse destroys resources last to first, the order in which
// dependent handles must be released.
func DestroyReverse(resources ...Destroyer) error {
	reversed := make([]Destroyer, len(resources))
	for i, r := range resources {
		reversed[len(resources)-1-i] = r
	}
	return DestroyAll(reversed...)
}

func isNilDestroyer(resource Destroyer) bool {
	if resource == nil {
		return true
	}
	value := reflect.ValueOf(resource)
	switch value.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
		return value.IsNil()
	default:
		return false
	}
}
