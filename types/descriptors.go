package types

import "capability-typing/typesys"

func id(name string) typesys.TypeID {
	return typesys.TypeID{Package: TypeCollection, Name: name}
}

// Descriptors returns fresh descriptors of every type in the collection.
func Descriptors() []*typesys.TypeInfo {
	var (
		number  = typesys.PrimitiveType(typesys.PrimitiveNumber)
		str     = typesys.PrimitiveType(typesys.PrimitiveString)
		boolean = typesys.PrimitiveType(typesys.PrimitiveBoolean)
	)

	version := typesys.NamedStruct(id("Version"), collectionVersion,
		typesys.MemberInfo{Name: "majorVersion", Type: number},
		typesys.MemberInfo{Name: "minorVersion", Type: number},
	)

	scope := typesys.NamedEnum(id("ProviderScope"), collectionVersion,
		string(ProviderScopeGlobal), string(ProviderScopeLocal))

	customParameter := typesys.NamedStruct(id("CustomParameter"), collectionVersion,
		typesys.MemberInfo{Name: "name", Type: str},
		typesys.MemberInfo{Name: "value", Type: str},
	)

	qos := typesys.NamedStruct(id("ProviderQos"), collectionVersion,
		typesys.MemberInfo{Name: "customParameters", Type: typesys.ArrayOf(customParameter)},
		typesys.MemberInfo{Name: "priority", Type: number},
		typesys.MemberInfo{Name: "scope", Type: scope},
		typesys.MemberInfo{Name: "supportsOnChangeSubscriptions", Type: boolean},
	)

	base := func() []typesys.MemberInfo {
		return []typesys.MemberInfo{
			{Name: "providerVersion", Type: version},
			{Name: "domain", Type: str},
			{Name: "interfaceName", Type: str},
			{Name: "participantId", Type: str},
			{Name: "qos", Type: qos},
			{Name: "lastSeenDateMs", Type: number},
			{Name: "expiryDateMs", Type: number},
			{Name: "publicKeyId", Type: str},
		}
	}

	entry := typesys.NamedStruct(id("DiscoveryEntry"), collectionVersion, base()...)
	global := typesys.NamedStruct(id("GlobalDiscoveryEntry"), collectionVersion,
		append(base(), typesys.MemberInfo{Name: "address", Type: str})...)
	withMeta := typesys.NamedStruct(id("DiscoveryEntryWithMetaInfo"), collectionVersion,
		append(base(), typesys.MemberInfo{Name: "isLocal", Type: boolean})...)

	return []*typesys.TypeInfo{version, scope, customParameter, qos, entry, global, withMeta}
}

// Register adds the collection's descriptors to reg.
func Register(reg *typesys.Registry) error {
	if err := reg.Register(Descriptors()...); err != nil {
		return err
	}

	return reg.SetCollectionVersion(TypeCollection, collectionVersion)
}
