package typing

import (
	"encoding/json"
	"maps"
)

// TypeNameKey is the wire member carrying a record's qualified type name.
const TypeNameKey = "_typeName"

// Typed is implemented by every value that belongs to a named generated type.
type Typed interface {
	// TypeName returns the qualified type name, e.g. "joynr.types.DiscoveryEntry".
	TypeName() string
}

// Record is a compound value whose members can be read by declared name.
type Record interface {
	Typed
	// Member returns the member value and whether the member is present.
	Member(name string) (any, bool)
}

// Struct is a dynamically decoded compound value.
type Struct struct {
	Type    string
	Members map[string]any
}

var _ Record = (*Struct)(nil)

// NewStruct creates a Struct of the given type holding a copy of members.
func NewStruct(typeName string, members map[string]any) *Struct {
	s := &Struct{Type: typeName, Members: make(map[string]any, len(members))}
	maps.Copy(s.Members, members)

	return s
}

// TypeName returns the qualified type name.
func (s *Struct) TypeName() string { return s.Type }

// Member returns the named member.
func (s *Struct) Member(name string) (any, bool) {
	v, ok := s.Members[name]
	return v, ok
}

// Set replaces a member value.
func (s *Struct) Set(name string, value any) {
	if s.Members == nil {
		s.Members = make(map[string]any)
	}

	s.Members[name] = value
}

// Delete removes a member.
func (s *Struct) Delete(name string) {
	delete(s.Members, name)
}

// Clone returns a copy that shares no member map with s.
func (s *Struct) Clone() *Struct {
	return NewStruct(s.Type, s.Members)
}

// MarshalJSON writes the members together with the type name.
func (s *Struct) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(s.Members)+1)
	maps.Copy(out, s.Members)
	out[TypeNameKey] = s.Type

	return json.Marshal(out)
}

// Enum is a dynamically decoded enumeration literal.
type Enum struct {
	Type string
	Name string
}

// TypeName returns the qualified enum type name.
func (e Enum) TypeName() string { return e.Type }

// String returns the literal.
func (e Enum) String() string { return e.Name }

// MarshalJSON writes the literal as a string.
func (e Enum) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.Name)
}

// Map is a dynamically decoded string-keyed map value.
type Map struct {
	Type    string
	Entries map[string]any
}

// TypeName returns the qualified map type name.
func (m *Map) TypeName() string { return m.Type }

// MarshalJSON writes the entries together with the type name.
func (m *Map) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(m.Entries)+1)
	maps.Copy(out, m.Entries)
	out[TypeNameKey] = m.Type

	return json.Marshal(out)
}
