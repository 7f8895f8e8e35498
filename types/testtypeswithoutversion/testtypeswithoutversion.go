// Package testtypeswithoutversion holds the generated records of the
// joynr.types.TestTypesWithoutVersion collection, which declares no version.
package testtypeswithoutversion

import "capability-typing/typesys"

// TypeCollection is the interface definition collection of this package.
const TypeCollection = "joynr.types.TestTypesWithoutVersion"

// Collections without a declared version default to 0.0.
const (
	MajorVersion = 0
	MinorVersion = 0
)

var collectionVersion = typesys.SchemaVersion{Major: MajorVersion, Minor: MinorVersion}

// EnumInsideTypeCollectionWithoutVersion is an enumeration.
type EnumInsideTypeCollectionWithoutVersion string

const (
	EnumLiteralA EnumInsideTypeCollectionWithoutVersion = "LITERAL_A"
	EnumLiteralB EnumInsideTypeCollectionWithoutVersion = "LITERAL_B"
)

// TypeName returns the qualified type name.
func (EnumInsideTypeCollectionWithoutVersion) TypeName() string {
	return TypeCollection + ".EnumInsideTypeCollectionWithoutVersion"
}

// TypeVersion returns the collection version the type was generated from.
func (EnumInsideTypeCollectionWithoutVersion) TypeVersion() typesys.SchemaVersion {
	return collectionVersion
}

// MapInsideTypeCollectionWithoutVersion maps strings to strings.
type MapInsideTypeCollectionWithoutVersion map[string]string

// TypeName returns the qualified type name.
func (MapInsideTypeCollectionWithoutVersion) TypeName() string {
	return TypeCollection + ".MapInsideTypeCollectionWithoutVersion"
}

// TypeVersion returns the collection version the type was generated from.
func (MapInsideTypeCollectionWithoutVersion) TypeVersion() typesys.SchemaVersion {
	return collectionVersion
}

// StructInsideTypeCollectionWithoutVersion is a compound type.
type StructInsideTypeCollectionWithoutVersion struct {
	UInt8Element  uint8  `json:"uInt8Element"`
	StringElement string `json:"stringElement"`
}

// TypeName returns the qualified type name.
func (StructInsideTypeCollectionWithoutVersion) TypeName() string {
	return TypeCollection + ".StructInsideTypeCollectionWithoutVersion"
}

// TypeVersion returns the collection version the type was generated from.
func (StructInsideTypeCollectionWithoutVersion) TypeVersion() typesys.SchemaVersion {
	return collectionVersion
}

// Member returns the named member.
func (s StructInsideTypeCollectionWithoutVersion) Member(name string) (any, bool) {
	switch name {
	case "uInt8Element":
		return s.UInt8Element, true
	case "stringElement":
		return s.StringElement, true
	default:
		return nil, false
	}
}
