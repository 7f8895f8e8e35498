package schemafile

import (
	"slices"
	"strings"

	"capability-typing/typesys"
)

// declared is a type declaration located in a document.
type declared struct {
	collection *Collection
	def        *TypeDef
	qualified  string
	path       string
}

// declIndex maps qualified type names to their first declaration.
type declIndex struct {
	types map[string]*declared
	names []string // sorted qualified names
}

func newDeclIndex(doc *Document) *declIndex {
	ix := &declIndex{types: make(map[string]*declared)}

	for i := range doc.Collections {
		c := &doc.Collections[i]
		for j := range c.Types {
			def := &c.Types[j]
			if def.Name == "" {
				continue
			}

			q := c.QualifiedName(def.Name)
			if _, dup := ix.types[q]; dup {
				continue
			}

			ix.types[q] = &declared{collection: c, def: def, qualified: q, path: typePath(i, j)}
			ix.names = append(ix.names, q)
		}
	}

	slices.Sort(ix.names)

	return ix
}

// resolve finds the declaration a type name refers to from within collection c:
// - "TStruct" declared in c (collection-local)
// - "joynr.types.TestTypes.TStruct" (full)
// - "TestTypes.TStruct" (suffix of the collection name)
// - "TStruct" declared in any collection (name only).
func (ix *declIndex) resolve(name string, c *Collection) (*declared, bool) {
	if name == "" {
		return nil, false
	}

	// 1) collection-local
	if c != nil {
		if d, ok := ix.types[c.QualifiedName(name)]; ok {
			return d, true
		}
	}

	// 2) exact match
	if d, ok := ix.types[name]; ok {
		return d, true
	}

	// 3) suffix or name-only match
	id := typesys.ParseTypeID(name)
	for _, q := range ix.names {
		candidate := typesys.ParseTypeID(q)
		if candidate.Name != id.Name {
			continue
		}

		if id.Package == "" || strings.HasSuffix(candidate.Package, "."+id.Package) {
			return ix.types[q], true
		}
	}

	return nil, false
}

// primitiveOf resolves a primitive reference, including ByteBuffer (Int8[]).
func primitiveOf(ref TypeRef) (*typesys.TypeInfo, bool) {
	if strings.EqualFold(ref.Name, byteBuffer) {
		return typesys.ArrayOf(typesys.PrimitiveType(typesys.PrimitiveNumber)), true
	}

	k, ok := typesys.ParsePrimitive(ref.Name)
	if !ok {
		return nil, false
	}

	return typesys.PrimitiveType(k), true
}

// primitiveNames are the primitive names offered as suggestions.
var primitiveNames = []string{
	"Int8", "Int16", "Int32", "Int64",
	"UInt8", "UInt16", "UInt32", "UInt64",
	"Float", "Double", "Number", "String", "Boolean", "ByteBuffer",
}
