package capabilities

import (
	"fmt"
	"reflect"

	"github.com/invopop/jsonschema"

	"capability-typing/types"
)

// Shape names an entry shape.
type Shape string

const (
	ShapeBase   Shape = "base"
	ShapeGlobal Shape = "global"
	ShapeMeta   Shape = "meta"
)

// Shapes lists the known shapes.
func Shapes() []Shape {
	return []Shape{ShapeBase, ShapeGlobal, ShapeMeta}
}

// ParseShape accepts a shape name or the type name of the shape.
func ParseShape(s string) (Shape, error) {
	switch s {
	case string(ShapeBase), "DiscoveryEntry", types.DiscoveryEntry{}.TypeName():
		return ShapeBase, nil
	case string(ShapeGlobal), "GlobalDiscoveryEntry", types.GlobalDiscoveryEntry{}.TypeName():
		return ShapeGlobal, nil
	case string(ShapeMeta), "DiscoveryEntryWithMetaInfo", types.DiscoveryEntryWithMetaInfo{}.TypeName():
		return ShapeMeta, nil
	default:
		return "", fmt.Errorf("unknown entry shape %q", s)
	}
}

func (s Shape) goType() reflect.Type {
	switch s {
	case ShapeGlobal:
		return reflect.TypeOf(types.GlobalDiscoveryEntry{})
	case ShapeMeta:
		return reflect.TypeOf(types.DiscoveryEntryWithMetaInfo{})
	default:
		return reflect.TypeOf(types.DiscoveryEntry{})
	}
}

// EntrySchema returns the JSON schema of an entry shape. The base fields of
// the embedded DiscoveryEntry are inlined, as they are on the wire.
func EntrySchema(shape Shape) ([]byte, error) {
	r := &jsonschema.Reflector{
		ExpandedStruct: true,
		Mapper: func(t reflect.Type) *jsonschema.Schema {
			if t == reflect.TypeOf(types.ProviderScope("")) {
				return &jsonschema.Schema{
					Type: "string",
					Enum: []any{string(types.ProviderScopeGlobal), string(types.ProviderScopeLocal)},
				}
			}

			return nil
		},
	}

	schema := r.ReflectFromType(shape.goType())
	schema.Title = shape.goType().Name()

	data, err := schema.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("failed to create json schema for %s: %w", shape, err)
	}

	return data, nil
}
