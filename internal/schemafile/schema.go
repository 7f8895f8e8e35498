package schemafile

import (
	"strings"
)

// CurrentVersion is the document format version written by Export.
const CurrentVersion = "1"

// Kind names of declared types.
const (
	KindStruct  = "struct"
	KindEnum    = "enum"
	KindMap     = "map"
	KindTypedef = "typedef"
)

// Kinds lists the declarable kinds.
func Kinds() []string {
	return []string{KindStruct, KindEnum, KindMap, KindTypedef}
}

// Document represents the root of an interface definition document.
type Document struct {
	// Version of the document format (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Collections are the declared type collections.
	Collections []Collection `yaml:"collections"`
}

// Collection is a versioned set of types sharing a package name.
type Collection struct {
	// Package is the qualified collection name (e.g. "joynr.types.TestTypes").
	Package string `yaml:"package"`

	// Version of the collection; absent means 0.0.
	Version *VersionDef `yaml:"version,omitempty"`

	Types []TypeDef `yaml:"types,omitempty"`
}

// VersionDef is the declared version of a collection.
type VersionDef struct {
	Major uint32 `yaml:"major"`
	Minor uint32 `yaml:"minor"`
}

// TypeDef declares one named type.
type TypeDef struct {
	Name string `yaml:"name"`
	Kind string `yaml:"kind"`

	// Members of a struct, in declaration order.
	Members []MemberDef `yaml:"members,omitempty"`

	// Literals of an enum.
	Literals []string `yaml:"literals,omitempty"`

	// Value type reference of a map.
	Value string `yaml:"value,omitempty"`

	// Type is the aliased type reference of a typedef.
	Type string `yaml:"type,omitempty"`
}

// MemberDef declares a struct member.
type MemberDef struct {
	Name     string `yaml:"name"`
	Type     string `yaml:"type"`
	Optional bool   `yaml:"optional,omitempty"`
}

// QualifiedName returns "package.name" of a type declared in c.
func (c *Collection) QualifiedName(name string) string {
	if c.Package == "" {
		return name
	}

	return c.Package + "." + name
}

// TypeRef is a parsed type reference.
type TypeRef struct {
	Name string // Referenced primitive or declared type
	Dims int    // Number of "[]" suffixes
}

// ParseTypeRef parses references like "TStruct", "Int32[]" or "a.b.T[][]".
func ParseTypeRef(s string) TypeRef {
	ref := TypeRef{Name: strings.TrimSpace(s)}
	for strings.HasSuffix(ref.Name, "[]") {
		ref.Name = strings.TrimSpace(strings.TrimSuffix(ref.Name, "[]"))
		ref.Dims++
	}

	return ref
}

// String returns the reference in document form.
func (r TypeRef) String() string {
	return r.Name + strings.Repeat("[]", r.Dims)
}

// byteBuffer is the IDL name of Int8[].
const byteBuffer = "bytebuffer"
