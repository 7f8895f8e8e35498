package schemafile

import (
	"slices"

	"capability-typing/typesys"
)

// Export writes the descriptors of reg as a document. References are written
// with qualified names so the result does not depend on lookup order, and
// types are declared after the types they refer to where possible.
func Export(reg *typesys.Registry) *Document {
	doc := &Document{Version: CurrentVersion}

	for _, info := range reg.Collections() {
		c := Collection{Package: info.Name}
		if info.Version != (typesys.SchemaVersion{}) {
			c.Version = &VersionDef{Major: info.Version.Major, Minor: info.Version.Minor}
		}

		infos := make([]*typesys.TypeInfo, 0, len(info.Types))
		for _, id := range info.Types {
			if t := reg.Get(id); t != nil {
				infos = append(infos, t)
			}
		}

		for _, t := range declarationOrder(infos) {
			c.Types = append(c.Types, exportType(t))
		}

		doc.Collections = append(doc.Collections, c)
	}

	return doc
}

func exportType(t *typesys.TypeInfo) TypeDef {
	def := TypeDef{Name: t.ID.Name, Kind: t.Kind.String()}

	switch t.Kind {
	case typesys.TypeKindStruct:
		for _, m := range t.Members {
			def.Members = append(def.Members, MemberDef{Name: m.Name, Type: refOf(m.Type), Optional: m.Optional})
		}
	case typesys.TypeKindEnum:
		def.Literals = slices.Clone(t.Literals)
	case typesys.TypeKindMap:
		def.Value = refOf(t.ElemType)
	case typesys.TypeKindTypedef:
		def.Type = refOf(t.Underlying)
	}

	return def
}

// refOf returns the document reference of t.
func refOf(t *typesys.TypeInfo) string {
	if t == nil {
		return ""
	}

	switch t.Kind {
	case typesys.TypeKindPrimitive:
		return t.Primitive.String()
	case typesys.TypeKindArray:
		return refOf(t.ElemType) + "[]"
	default:
		return t.ID.String()
	}
}
