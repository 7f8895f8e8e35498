package types

import "capability-typing/typesys"

// ProviderScope defines where a provider is visible.
type ProviderScope string

const (
	ProviderScopeGlobal ProviderScope = "GLOBAL"
	ProviderScopeLocal  ProviderScope = "LOCAL"
)

// TypeName returns the qualified type name.
func (ProviderScope) TypeName() string { return TypeCollection + ".ProviderScope" }

// TypeVersion returns the collection version the type was generated from.
func (ProviderScope) TypeVersion() typesys.SchemaVersion { return collectionVersion }

// CustomParameter is a named provider qos parameter.
type CustomParameter struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// TypeName returns the qualified type name.
func (CustomParameter) TypeName() string { return TypeCollection + ".CustomParameter" }

// TypeVersion returns the collection version the type was generated from.
func (CustomParameter) TypeVersion() typesys.SchemaVersion { return collectionVersion }

// Member returns the named member.
func (p CustomParameter) Member(name string) (any, bool) {
	switch name {
	case "name":
		return p.Name, true
	case "value":
		return p.Value, true
	default:
		return nil, false
	}
}

// ProviderQos is the quality of service a provider advertises.
type ProviderQos struct {
	CustomParameters              []CustomParameter `json:"customParameters"`
	Priority                      int64             `json:"priority"`
	Scope                         ProviderScope     `json:"scope"`
	SupportsOnChangeSubscriptions bool              `json:"supportsOnChangeSubscriptions"`
}

// TypeName returns the qualified type name.
func (ProviderQos) TypeName() string { return TypeCollection + ".ProviderQos" }

// TypeVersion returns the collection version the type was generated from.
func (ProviderQos) TypeVersion() typesys.SchemaVersion { return collectionVersion }

// Member returns the named member.
func (q ProviderQos) Member(name string) (any, bool) {
	switch name {
	case "customParameters":
		return q.CustomParameters, true
	case "priority":
		return q.Priority, true
	case "scope":
		return q.Scope, true
	case "supportsOnChangeSubscriptions":
		return q.SupportsOnChangeSubscriptions, true
	default:
		return nil, false
	}
}
