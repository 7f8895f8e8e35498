package typesys

import (
	"fmt"
	"strings"
)

// UnknownStr is the printable name of values outside an enumeration.
const UnknownStr = "unknown"

// TypeID uniquely identifies a named type by its type collection and name.
type TypeID struct {
	Package string // e.g., "joynr.types"
	Name    string // e.g., "DiscoveryEntry"
}

// ParseTypeID splits a fully qualified name at its last dot.
func ParseTypeID(s string) TypeID {
	lastDot := strings.LastIndex(s, ".")
	if lastDot < 0 {
		return TypeID{Name: s}
	}

	return TypeID{Package: s[:lastDot], Name: s[lastDot+1:]}
}

// String returns the fully qualified name.
func (t TypeID) String() string {
	if t.Package == "" {
		return t.Name
	}

	return t.Package + "." + t.Name
}

// IsZero reports whether the id names nothing.
func (t TypeID) IsZero() bool {
	return t.Package == "" && t.Name == ""
}

// TypeKind represents the kind of a declared type.
type TypeKind int

const (
	TypeKindUnknown   TypeKind = iota
	TypeKindPrimitive          // Number, String, Boolean
	TypeKindStruct             // compound type with members
	TypeKindEnum               // enumeration
	TypeKindMap                // string-keyed map
	TypeKindTypedef            // alias for another declared type
	TypeKindArray              // sequence of an element type
)

// String returns a human-readable representation of the TypeKind.
func (k TypeKind) String() string {
	switch k {
	case TypeKindPrimitive:
		return "primitive"
	case TypeKindStruct:
		return "struct"
	case TypeKindEnum:
		return "enum"
	case TypeKindMap:
		return "map"
	case TypeKindTypedef:
		return "typedef"
	case TypeKindArray:
		return "array"
	default:
		return UnknownStr
	}
}

// ParseTypeKind is the inverse of TypeKind.String.
func ParseTypeKind(s string) (TypeKind, error) {
	switch strings.ToLower(s) {
	case "primitive":
		return TypeKindPrimitive, nil
	case "struct":
		return TypeKindStruct, nil
	case "enum":
		return TypeKindEnum, nil
	case "map":
		return TypeKindMap, nil
	case "typedef":
		return TypeKindTypedef, nil
	case "array":
		return TypeKindArray, nil
	default:
		return TypeKindUnknown, fmt.Errorf("unknown type kind %q", s)
	}
}

// IsNamed returns true for kinds that are identified by their TypeID.
func (k TypeKind) IsNamed() bool {
	switch k {
	case TypeKindStruct, TypeKindEnum, TypeKindMap, TypeKindTypedef:
		return true
	default:
		return false
	}
}

// SchemaVersion is the interface version a generated type was compiled with.
// It is fixed at generation time.
type SchemaVersion struct {
	Major uint32 `json:"major" yaml:"major"`
	Minor uint32 `json:"minor" yaml:"minor"`
}

// String returns "major.minor".
func (v SchemaVersion) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// Versioned is implemented by every generated type.
type Versioned interface {
	TypeVersion() SchemaVersion
}

// TypeInfo describes a declared type.
type TypeInfo struct {
	ID         TypeID        // Unique identifier (empty for primitives and arrays)
	Kind       TypeKind      // Kind of type
	Primitive  PrimitiveKind // For primitives, which one
	Underlying *TypeInfo     // For typedefs, the aliased type
	ElemType   *TypeInfo     // For arrays the element type, for maps the value type
	Members    []MemberInfo  // For structs, the ordered member declarations
	Literals   []string      // For enums, the declared literals
	Version    SchemaVersion // Version of the generating interface definition
}

// IsNamed returns true if this type has a name (TypeID is set).
func (t *TypeInfo) IsNamed() bool {
	return t.ID.Name != ""
}

// Name returns the short name used in validation messages.
func (t *TypeInfo) Name() string {
	if t == nil {
		return UnknownStr
	}

	switch t.Kind {
	case TypeKindPrimitive:
		return t.Primitive.String()
	case TypeKindArray:
		return "Array"
	default:
		if t.ID.Name == "" {
			return t.Kind.String()
		}

		return t.ID.Name
	}
}

// String returns a reference string for the type: the qualified name for named
// types, the primitive name for primitives and "<elem>[]" for arrays.
func (t *TypeInfo) String() string {
	if t == nil {
		return UnknownStr
	}

	switch t.Kind {
	case TypeKindPrimitive:
		return t.Primitive.String()
	case TypeKindArray:
		return t.ElemType.String() + "[]"
	default:
		return t.ID.String()
	}
}

// Member returns the member declaration with the given name.
func (t *TypeInfo) Member(name string) (*MemberInfo, bool) {
	for i := range t.Members {
		if t.Members[i].Name == name {
			return &t.Members[i], true
		}
	}

	return nil, false
}

// HasLiteral reports whether an enum declares the literal.
func (t *TypeInfo) HasLiteral(lit string) bool {
	for _, l := range t.Literals {
		if l == lit {
			return true
		}
	}

	return false
}

// MemberInfo describes a struct member declaration.
type MemberInfo struct {
	Name     string    // Member name as declared in the interface definition
	Type     *TypeInfo // Declared type, possibly a typedef or array
	Optional bool      // Whether the member may be absent
	Index    int       // Declaration order
}

// PrimitiveType returns the descriptor of a primitive kind.
func PrimitiveType(k PrimitiveKind) *TypeInfo {
	return &TypeInfo{Kind: TypeKindPrimitive, Primitive: k}
}

// ArrayOf returns an array descriptor of elem.
func ArrayOf(elem *TypeInfo) *TypeInfo {
	return &TypeInfo{Kind: TypeKindArray, ElemType: elem}
}

// TypedefOf returns a typedef descriptor aliasing target.
func TypedefOf(id TypeID, target *TypeInfo, v SchemaVersion) *TypeInfo {
	return &TypeInfo{ID: id, Kind: TypeKindTypedef, Underlying: target, Version: v}
}

// NamedStruct returns a struct descriptor, indexing members in order.
func NamedStruct(id TypeID, v SchemaVersion, members ...MemberInfo) *TypeInfo {
	for i := range members {
		members[i].Index = i
	}

	return &TypeInfo{ID: id, Kind: TypeKindStruct, Members: members, Version: v}
}

// NamedEnum returns an enum descriptor.
func NamedEnum(id TypeID, v SchemaVersion, literals ...string) *TypeInfo {
	return &TypeInfo{ID: id, Kind: TypeKindEnum, Literals: literals, Version: v}
}

// NamedMap returns a map descriptor with string keys and the given value type.
func NamedMap(id TypeID, v SchemaVersion, value *TypeInfo) *TypeInfo {
	return &TypeInfo{ID: id, Kind: TypeKindMap, ElemType: value, Version: v}
}
