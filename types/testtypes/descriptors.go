package testtypes

import "capability-typing/typesys"

func id(name string) typesys.TypeID {
	return typesys.TypeID{Package: TypeCollection, Name: name}
}

// Descriptors returns fresh descriptors of every type in the collection.
func Descriptors() []*typesys.TypeInfo {
	number := typesys.PrimitiveType(typesys.PrimitiveNumber)
	str := typesys.PrimitiveType(typesys.PrimitiveString)

	tEnum := typesys.NamedEnum(id("TEnum"), collectionVersion, string(TLITERALA), string(TLITERALB))
	tMap := typesys.NamedMap(id("TStringKeyMap"), collectionVersion, str)
	tStruct := typesys.NamedStruct(id("TStruct"), collectionVersion,
		typesys.MemberInfo{Name: "tDouble", Type: number},
		typesys.MemberInfo{Name: "tInt64", Type: number},
		typesys.MemberInfo{Name: "tString", Type: str},
	)

	defPrimitive := typesys.TypedefOf(id("TypeDefForPrimitive"), number, collectionVersion)
	defStruct := typesys.TypedefOf(id("TypeDefForTStruct"), tStruct, collectionVersion)
	defMap := typesys.TypedefOf(id("TypeDefForTStringKeyMap"), tMap, collectionVersion)
	defEnum := typesys.TypedefOf(id("TypeDefForTEnum"), tEnum, collectionVersion)

	withTypedefs := typesys.NamedStruct(id("TStructWithTypedefMembers"), collectionVersion,
		typesys.MemberInfo{Name: "typeDefForPrimitive", Type: defPrimitive},
		typesys.MemberInfo{Name: "typeDefForTStruct", Type: defStruct},
		typesys.MemberInfo{Name: "typeDefForTStringKeyMap", Type: defMap},
		typesys.MemberInfo{Name: "typeDefForTEnum", Type: defEnum},
		typesys.MemberInfo{Name: "arrayOfTypeDefForPrimitive", Type: typesys.ArrayOf(defPrimitive)},
		typesys.MemberInfo{Name: "arrayOfTypeDefForTStruct", Type: typesys.ArrayOf(defStruct)},
		typesys.MemberInfo{Name: "arrayOfTypeDefForTStringKeyMap", Type: typesys.ArrayOf(defMap)},
		typesys.MemberInfo{Name: "arrayOfTypeDefForTEnum", Type: typesys.ArrayOf(defEnum)},
	)

	return []*typesys.TypeInfo{
		tEnum, tMap, tStruct,
		defPrimitive, defStruct, defMap, defEnum,
		withTypedefs,
	}
}

// Register adds the collection's descriptors to reg.
func Register(reg *typesys.Registry) error {
	if err := reg.Register(Descriptors()...); err != nil {
		return err
	}

	return reg.SetCollectionVersion(TypeCollection, collectionVersion)
}
