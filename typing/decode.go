package typing

import (
	"errors"
	"fmt"

	"capability-typing/typesys"
)

var ErrUnknownType = errors.New("unknown type")

// Decoder turns generic document trees (as produced by encoding/json or
// sigs.k8s.io/yaml) into tagged values, guided by declared types. Values that
// do not fit their declared type are left untouched so that the checker can
// report them.
type Decoder struct {
	registry *typesys.Registry
	maxDepth int
}

// NewDecoder creates a Decoder resolving "_typeName" members in reg.
func NewDecoder(reg *typesys.Registry) *Decoder {
	return &Decoder{registry: reg, maxDepth: typesys.DefaultMaxTypedefDepth}
}

// DecodeDocument decodes a top-level record. typeName selects the declared
// type; when empty the document's own "_typeName" member is used.
func (d *Decoder) DecodeDocument(raw any, typeName string) (*Struct, *typesys.TypeInfo, error) {
	if typeName == "" {
		if m, ok := raw.(map[string]any); ok {
			typeName, _ = m[TypeNameKey].(string)
		}
	}

	want, ok := d.registry.Lookup(typeName)
	if !ok {
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownType, typeName)
	}

	resolved, err := typesys.Resolve(want, d.maxDepth)
	if err != nil {
		return nil, nil, err
	}

	if resolved.Kind != typesys.TypeKindStruct {
		return nil, nil, fmt.Errorf("%w: %s", ErrNotAStruct, resolved)
	}

	decoded, err := d.Decode(raw, resolved)
	if err != nil {
		return nil, nil, err
	}

	s, ok := decoded.(*Struct)
	if !ok {
		return nil, nil, fmt.Errorf("document is %s, not an object", ObservedTypeName(raw))
	}

	return s, resolved, nil
}

// Decode converts raw according to want.
func (d *Decoder) Decode(raw any, want *typesys.TypeInfo) (any, error) {
	resolved, err := typesys.Resolve(want, d.maxDepth)
	if err != nil {
		return nil, err
	}

	if resolved == nil {
		return raw, nil
	}

	switch resolved.Kind {
	case typesys.TypeKindStruct:
		return d.decodeStruct(raw, resolved)

	case typesys.TypeKindMap:
		m, ok := raw.(map[string]any)
		if !ok {
			return raw, nil
		}

		out := &Map{Type: resolved.ID.String(), Entries: make(map[string]any, len(m))}
		for k, v := range m {
			if k == TypeNameKey {
				continue
			}

			dv, err := d.Decode(v, resolved.ElemType)
			if err != nil {
				return nil, fmt.Errorf("%s[%q]: %w", resolved.ID.Name, k, err)
			}

			out.Entries[k] = dv
		}

		return out, nil

	case typesys.TypeKindEnum:
		if s, ok := raw.(string); ok && resolved.HasLiteral(s) {
			return Enum{Type: resolved.ID.String(), Name: s}, nil
		}

		return raw, nil

	case typesys.TypeKindArray:
		items, ok := raw.([]any)
		if !ok {
			return raw, nil
		}

		out := make([]any, len(items))
		for i, item := range items {
			dv, err := d.Decode(item, resolved.ElemType)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}

			out[i] = dv
		}

		return out, nil

	default:
		return raw, nil
	}
}

func (d *Decoder) decodeStruct(raw any, declared *typesys.TypeInfo) (any, error) {
	m, ok := raw.(map[string]any)
	if !ok {
		return raw, nil
	}

	target := declared

	// A "_typeName" naming another registered struct dispatches to that type.
	if name, ok := m[TypeNameKey].(string); ok && name != declared.ID.String() {
		actual, found := d.registry.Lookup(name)
		if !found || actual.Kind != typesys.TypeKindStruct {
			return &Struct{Type: name, Members: withoutTypeName(m)}, nil
		}

		target = actual
	}

	out := &Struct{Type: target.ID.String(), Members: make(map[string]any, len(m))}
	for k, v := range m {
		if k == TypeNameKey {
			continue
		}

		member, declaredMember := target.Member(k)
		if !declaredMember {
			out.Members[k] = v
			continue
		}

		dv, err := d.Decode(v, member.Type)
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", target.ID.Name, k, err)
		}

		out.Members[k] = dv
	}

	return out, nil
}

func withoutTypeName(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		if k != TypeNameKey {
			out[k] = v
		}
	}

	return out
}
