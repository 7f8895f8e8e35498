package types

import "capability-typing/typesys"

// DiscoveryEntry advertises a provider of an interface in a domain.
type DiscoveryEntry struct {
	ProviderVersion Version     `json:"providerVersion"`
	Domain          string      `json:"domain"`
	InterfaceName   string      `json:"interfaceName"`
	ParticipantID   string      `json:"participantId"`
	Qos             ProviderQos `json:"qos"`
	LastSeenDateMs  int64       `json:"lastSeenDateMs"`
	ExpiryDateMs    int64       `json:"expiryDateMs"`
	PublicKeyID     string      `json:"publicKeyId"`
}

// TypeName returns the qualified type name.
func (DiscoveryEntry) TypeName() string { return TypeCollection + ".DiscoveryEntry" }

// TypeVersion returns the collection version the type was generated from.
func (DiscoveryEntry) TypeVersion() typesys.SchemaVersion { return collectionVersion }

// Base returns the base fields. It is promoted to the embedding entry shapes.
func (e DiscoveryEntry) Base() DiscoveryEntry { return e }

// Member returns the named member.
func (e DiscoveryEntry) Member(name string) (any, bool) {
	switch name {
	case "providerVersion":
		return e.ProviderVersion, true
	case "domain":
		return e.Domain, true
	case "interfaceName":
		return e.InterfaceName, true
	case "participantId":
		return e.ParticipantID, true
	case "qos":
		return e.Qos, true
	case "lastSeenDateMs":
		return e.LastSeenDateMs, true
	case "expiryDateMs":
		return e.ExpiryDateMs, true
	case "publicKeyId":
		return e.PublicKeyID, true
	default:
		return nil, false
	}
}

// GlobalDiscoveryEntry is a DiscoveryEntry registered in the global directory
// together with the serialized address of the provider.
type GlobalDiscoveryEntry struct {
	DiscoveryEntry
	Address string `json:"address"`
}

// TypeName returns the qualified type name.
func (GlobalDiscoveryEntry) TypeName() string { return TypeCollection + ".GlobalDiscoveryEntry" }

// Member returns the named member.
func (e GlobalDiscoveryEntry) Member(name string) (any, bool) {
	if name == "address" {
		return e.Address, true
	}

	return e.DiscoveryEntry.Member(name)
}

// DiscoveryEntryWithMetaInfo is a DiscoveryEntry returned to consumers,
// flagged with whether the provider is local.
type DiscoveryEntryWithMetaInfo struct {
	DiscoveryEntry
	IsLocal bool `json:"isLocal"`
}

// TypeName returns the qualified type name.
func (DiscoveryEntryWithMetaInfo) TypeName() string {
	return TypeCollection + ".DiscoveryEntryWithMetaInfo"
}

// Member returns the named member.
func (e DiscoveryEntryWithMetaInfo) Member(name string) (any, bool) {
	if name == "isLocal" {
		return e.IsLocal, true
	}

	return e.DiscoveryEntry.Member(name)
}
