package config

import (
	"reflect"
	"strings"
)

// Namespace is the root of all builder configuration inside the service
// file's custom block.
const Namespace = "apiCloudFront"

// Resolver looks up dotted paths inside the apiCloudFront configuration
// block. Missing and malformed values never fail a lookup; they degrade to
// the caller's default.
type Resolver struct {
	root map[string]interface{}
}

// NewResolver roots a resolver at custom.apiCloudFront. A service file
// without that block yields a resolver where every path is absent.
func NewResolver(spec *ServiceSpec) *Resolver {
	r := &Resolver{}
	if spec == nil || spec.Custom == nil {
		return r
	}
	if block, ok := spec.Custom[Namespace].(map[string]interface{}); ok {
		r.root = block
	}
	return r
}

// Resolve returns the value at path, or def when the path is absent or the
// value is falsy. With allowEmpty, an explicitly empty value (empty string,
// empty sequence, empty mapping, null) is returned verbatim instead of being
// replaced by the default, so "cleared on purpose" survives resolution.
//
// Precedence matters and must not be reordered: absent beats everything,
// allowEmpty beats the falsy check, and the falsy check only fires when
// allowEmpty is false.
func (r *Resolver) Resolve(path string, def interface{}, allowEmpty bool) interface{} {
	value, found := r.lookup(path)
	if !found {
		return def
	}
	if allowEmpty && isEmpty(value) {
		return value
	}
	if !allowEmpty && isFalsy(value) {
		return def
	}
	return value
}

// lookup walks dot-separated segments through the configuration tree.
func (r *Resolver) lookup(path string) (interface{}, bool) {
	if r.root == nil || path == "" {
		return nil, false
	}

	var current interface{} = r.root
	for _, part := range strings.Split(path, ".") {
		obj, ok := current.(map[string]interface{})
		if !ok {
			return nil, false
		}
		val, ok := obj[part]
		if !ok {
			return nil, false
		}
		current = val
	}

	return current, true
}

// isEmpty reports whether value is an explicitly empty value: null, empty
// string, empty sequence, or empty mapping.
func isEmpty(value interface{}) bool {
	if value == nil {
		return true
	}
	switch v := reflect.ValueOf(value); v.Kind() {
	case reflect.String, reflect.Slice, reflect.Map, reflect.Array:
		return v.Len() == 0
	}
	return false
}

// isFalsy reports whether value would not survive resolution without
// allowEmpty: null, empty string, false, or numeric zero.
func isFalsy(value interface{}) bool {
	if value == nil {
		return true
	}
	switch v := value.(type) {
	case string:
		return v == ""
	case bool:
		return !v
	}
	switch v := reflect.ValueOf(value); v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	}
	return false
}
