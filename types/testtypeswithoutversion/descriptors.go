package testtypeswithoutversion

import "capability-typing/typesys"

func id(name string) typesys.TypeID {
	return typesys.TypeID{Package: TypeCollection, Name: name}
}

// Descriptors returns fresh descriptors of every type in the collection.
func Descriptors() []*typesys.TypeInfo {
	return []*typesys.TypeInfo{
		typesys.NamedEnum(id("EnumInsideTypeCollectionWithoutVersion"), collectionVersion,
			string(EnumLiteralA), string(EnumLiteralB)),
		typesys.NamedMap(id("MapInsideTypeCollectionWithoutVersion"), collectionVersion,
			typesys.PrimitiveType(typesys.PrimitiveString)),
		typesys.NamedStruct(id("StructInsideTypeCollectionWithoutVersion"), collectionVersion,
			typesys.MemberInfo{Name: "uInt8Element", Type: typesys.PrimitiveType(typesys.PrimitiveNumber)},
			typesys.MemberInfo{Name: "stringElement", Type: typesys.PrimitiveType(typesys.PrimitiveString)},
		),
	}
}

// Register adds the collection's descriptors to reg.
func Register(reg *typesys.Registry) error {
	if err := reg.Register(Descriptors()...); err != nil {
		return err
	}

	return reg.SetCollectionVersion(TypeCollection, collectionVersion)
}
