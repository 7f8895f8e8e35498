package typesys

import "strings"

//go:generate go tool stringer -type=PrimitiveKind -trimprefix=Primitive -output=primitive_string.go

// PrimitiveKind is the runtime category a primitive member is validated against.
type PrimitiveKind int

const (
	_ PrimitiveKind = iota // zero value is not a valid primitive

	PrimitiveNumber
	PrimitiveString
	PrimitiveBoolean
)

// idlPrimitives maps interface definition primitive names onto their runtime category.
var idlPrimitives = map[string]PrimitiveKind{
	"int8":    PrimitiveNumber,
	"int16":   PrimitiveNumber,
	"int32":   PrimitiveNumber,
	"int64":   PrimitiveNumber,
	"uint8":   PrimitiveNumber,
	"uint16":  PrimitiveNumber,
	"uint32":  PrimitiveNumber,
	"uint64":  PrimitiveNumber,
	"float":   PrimitiveNumber,
	"double":  PrimitiveNumber,
	"number":  PrimitiveNumber,
	"string":  PrimitiveString,
	"boolean": PrimitiveBoolean,
	"bool":    PrimitiveBoolean,
}

// ParsePrimitive resolves an interface definition primitive name (e.g. "Int32",
// "Double", "String") to its runtime category.
func ParsePrimitive(name string) (PrimitiveKind, bool) {
	k, ok := idlPrimitives[strings.ToLower(name)]
	return k, ok
}

// IsValid reports whether k is one of the declared kinds.
func (k PrimitiveKind) IsValid() bool {
	return k >= PrimitiveNumber && k <= PrimitiveBoolean
}
