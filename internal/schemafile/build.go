package schemafile

import (
	"errors"
	"fmt"
	"slices"

	"capability-typing/typesys"
)

// ErrInvalidDocument is returned by Build when Validate reports errors.
var ErrInvalidDocument = errors.New("invalid schema document")

// builder turns validated declarations into descriptors.
type builder struct {
	index  *declIndex
	shells map[string]*typesys.TypeInfo
}

// Build validates doc and returns a registry holding a descriptor for every
// declared type. Collections are registered with their declared version.
// The returned registry is not sealed.
func Build(doc *Document) (*typesys.Registry, error) {
	if diags := Validate(doc); diags.HasErrors() {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, diags.Error())
	}

	b := &builder{
		index:  newDeclIndex(doc),
		shells: make(map[string]*typesys.TypeInfo),
	}

	// First pass: create a shell per declaration so references can be
	// wired regardless of declaration order.
	for i := range doc.Collections {
		c := &doc.Collections[i]
		v := c.schemaVersion()

		for _, def := range c.Types {
			b.shells[c.QualifiedName(def.Name)] = &typesys.TypeInfo{
				ID:      typesys.TypeID{Package: c.Package, Name: def.Name},
				Kind:    kindOf(def.Kind),
				Version: v,
			}
		}
	}

	// Second pass: fill in members, literals and referenced types.
	reg := typesys.NewRegistry()

	for i := range doc.Collections {
		c := &doc.Collections[i]
		infos := make([]*typesys.TypeInfo, 0, len(c.Types))

		for _, def := range c.Types {
			info := b.shells[c.QualifiedName(def.Name)]
			b.fill(c, &def, info)
			infos = append(infos, info)
		}

		if err := reg.Register(infos...); err != nil {
			return nil, fmt.Errorf("failed to register collection %s: %w", c.Package, err)
		}

		if err := reg.SetCollectionVersion(c.Package, c.schemaVersion()); err != nil {
			return nil, fmt.Errorf("failed to set version of collection %s: %w", c.Package, err)
		}
	}

	return reg, nil
}

func (b *builder) fill(c *Collection, def *TypeDef, info *typesys.TypeInfo) {
	switch info.Kind {
	case typesys.TypeKindStruct:
		for i, m := range def.Members {
			info.Members = append(info.Members, typesys.MemberInfo{
				Name:     m.Name,
				Type:     b.ref(c, m.Type),
				Optional: m.Optional,
				Index:    i,
			})
		}

	case typesys.TypeKindEnum:
		info.Literals = slices.Clone(def.Literals)

	case typesys.TypeKindMap:
		info.ElemType = b.ref(c, def.Value)

	case typesys.TypeKindTypedef:
		info.Underlying = b.ref(c, def.Type)
	}
}

// ref resolves a validated type reference seen from collection c.
func (b *builder) ref(c *Collection, raw string) *typesys.TypeInfo {
	ref := ParseTypeRef(raw)

	t, ok := primitiveOf(ref)
	if !ok {
		d, _ := b.index.resolve(ref.Name, c)
		t = b.shells[d.qualified]
	}

	for range ref.Dims {
		t = typesys.ArrayOf(t)
	}

	return t
}

func kindOf(kind string) typesys.TypeKind {
	switch kind {
	case KindStruct:
		return typesys.TypeKindStruct
	case KindEnum:
		return typesys.TypeKindEnum
	case KindMap:
		return typesys.TypeKindMap
	case KindTypedef:
		return typesys.TypeKindTypedef
	default:
		return typesys.TypeKindUnknown
	}
}

func (c *Collection) schemaVersion() typesys.SchemaVersion {
	if c.Version == nil {
		return typesys.SchemaVersion{}
	}

	return typesys.SchemaVersion{Major: c.Version.Major, Minor: c.Version.Minor}
}
