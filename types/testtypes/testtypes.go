// Package testtypes holds the generated records of the versioned
// joynr.types.TestTypes collection used to exercise the member checker.
package testtypes

import "capability-typing/typesys"

// TypeCollection is the interface definition collection of this package.
const TypeCollection = "joynr.types.TestTypes"

// Version of the joynr.types.TestTypes collection.
const (
	MajorVersion = 49
	MinorVersion = 13
)

var collectionVersion = typesys.SchemaVersion{Major: MajorVersion, Minor: MinorVersion}

// TEnum is an enumeration.
type TEnum string

const (
	TLITERALA TEnum = "TLITERALA"
	TLITERALB TEnum = "TLITERALB"
)

// TypeName returns the qualified type name.
func (TEnum) TypeName() string { return TypeCollection + ".TEnum" }

// TypeVersion returns the collection version the type was generated from.
func (TEnum) TypeVersion() typesys.SchemaVersion { return collectionVersion }

// TStringKeyMap maps strings to strings.
type TStringKeyMap map[string]string

// TypeName returns the qualified type name.
func (TStringKeyMap) TypeName() string { return TypeCollection + ".TStringKeyMap" }

// TypeVersion returns the collection version the type was generated from.
func (TStringKeyMap) TypeVersion() typesys.SchemaVersion { return collectionVersion }

// TStruct is a plain compound type.
type TStruct struct {
	TDouble float64 `json:"tDouble"`
	TInt64  int64   `json:"tInt64"`
	TString string  `json:"tString"`
}

// TypeName returns the qualified type name.
func (TStruct) TypeName() string { return TypeCollection + ".TStruct" }

// TypeVersion returns the collection version the type was generated from.
func (TStruct) TypeVersion() typesys.SchemaVersion { return collectionVersion }

// Member returns the named member.
func (s TStruct) Member(name string) (any, bool) {
	switch name {
	case "tDouble":
		return s.TDouble, true
	case "tInt64":
		return s.TInt64, true
	case "tString":
		return s.TString, true
	default:
		return nil, false
	}
}

type (
	TypeDefForPrimitive     = int32
	TypeDefForTStruct       = TStruct
	TypeDefForTStringKeyMap = TStringKeyMap
	TypeDefForTEnum         = TEnum
)

// TStructWithTypedefMembers declares members through typedefs.
type TStructWithTypedefMembers struct {
	TypeDefForPrimitive            TypeDefForPrimitive       `json:"typeDefForPrimitive"`
	TypeDefForTStruct              TypeDefForTStruct         `json:"typeDefForTStruct"`
	TypeDefForTStringKeyMap        TypeDefForTStringKeyMap   `json:"typeDefForTStringKeyMap"`
	TypeDefForTEnum                TypeDefForTEnum           `json:"typeDefForTEnum"`
	ArrayOfTypeDefForPrimitive     []TypeDefForPrimitive     `json:"arrayOfTypeDefForPrimitive"`
	ArrayOfTypeDefForTStruct       []TypeDefForTStruct       `json:"arrayOfTypeDefForTStruct"`
	ArrayOfTypeDefForTStringKeyMap []TypeDefForTStringKeyMap `json:"arrayOfTypeDefForTStringKeyMap"`
	ArrayOfTypeDefForTEnum         []TypeDefForTEnum         `json:"arrayOfTypeDefForTEnum"`
}

// TypeName returns the qualified type name.
func (TStructWithTypedefMembers) TypeName() string {
	return TypeCollection + ".TStructWithTypedefMembers"
}

// TypeVersion returns the collection version the type was generated from.
func (TStructWithTypedefMembers) TypeVersion() typesys.SchemaVersion { return collectionVersion }

// Member returns the named member.
func (s TStructWithTypedefMembers) Member(name string) (any, bool) {
	switch name {
	case "typeDefForPrimitive":
		return s.TypeDefForPrimitive, true
	case "typeDefForTStruct":
		return s.TypeDefForTStruct, true
	case "typeDefForTStringKeyMap":
		return s.TypeDefForTStringKeyMap, true
	case "typeDefForTEnum":
		return s.TypeDefForTEnum, true
	case "arrayOfTypeDefForPrimitive":
		return s.ArrayOfTypeDefForPrimitive, true
	case "arrayOfTypeDefForTStruct":
		return s.ArrayOfTypeDefForTStruct, true
	case "arrayOfTypeDefForTStringKeyMap":
		return s.ArrayOfTypeDefForTStringKeyMap, true
	case "arrayOfTypeDefForTEnum":
		return s.ArrayOfTypeDefForTEnum, true
	default:
		return nil, false
	}
}
