package typing

import (
	"encoding/json"
	"reflect"
	"strings"

	"capability-typing/typesys"
)

const (
	// ActualUndefined is reported for absent members.
	ActualUndefined = "Undefined"
	// ActualNull is reported for nil values.
	ActualNull = "Null"
	// ActualArray is reported for sequences, and expected for array members.
	ActualArray = "Array"
	// ActualObject is reported for untyped maps and structs.
	ActualObject = "Object"
)

type undefined struct{}

// Undefined stands in for the value of an absent member.
var Undefined any = undefined{}

// IsDefined reports whether v is neither Undefined nor nil.
func IsDefined(v any) bool {
	return v != Undefined && !isNull(v)
}

func isNull(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)

	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// ObservedTypeName derives the type name of a runtime value from its own type
// identity: generated and tagged values report their short type name,
// primitives their capitalized primitive name and sequences "Array".
func ObservedTypeName(v any) string {
	switch tv := v.(type) {
	case undefined:
		return ActualUndefined
	case nil:
		return ActualNull
	case Typed:
		if isNull(v) {
			return ActualNull
		}

		return typesys.ParseTypeID(tv.TypeName()).Name
	case json.Number:
		return typesys.PrimitiveNumber.String()
	}

	if k, ok := primitiveKindOf(v); ok {
		return k.String()
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer:
		if rv.IsNil() {
			return ActualNull
		}

		return ObservedTypeName(rv.Elem().Interface())
	case reflect.Slice, reflect.Array:
		return ActualArray
	case reflect.Map, reflect.Struct:
		return ActualObject
	default:
		kind := rv.Kind().String()
		return strings.ToUpper(kind[:1]) + kind[1:]
	}
}

// primitiveKindOf classifies untagged Go values. Typed values are never primitives.
func primitiveKindOf(v any) (typesys.PrimitiveKind, bool) {
	if _, ok := v.(Typed); ok {
		return 0, false
	}

	if _, ok := v.(json.Number); ok {
		return typesys.PrimitiveNumber, true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return typesys.PrimitiveNumber, true
	case reflect.String:
		return typesys.PrimitiveString, true
	case reflect.Bool:
		return typesys.PrimitiveBoolean, true
	default:
		return 0, false
	}
}

// indirect dereferences non-nil pointers of untagged values, so that an
// optional *T member holding a value is checked as T. Typed values keep their
// identity for the nominal check.
func indirect(v any) any {
	for {
		if _, ok := v.(Typed); ok {
			return v
		}

		rv := reflect.ValueOf(v)
		if rv.Kind() != reflect.Pointer || rv.IsNil() {
			return v
		}

		v = rv.Elem().Interface()
	}
}

// asSequence returns the reflected sequence for untagged slices and arrays.
func asSequence(v any) (reflect.Value, bool) {
	if _, ok := v.(Typed); ok {
		return reflect.Value{}, false
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return rv, true
	default:
		return reflect.Value{}, false
	}
}
