package typesys

import (
	"errors"
	"fmt"
)

// DefaultMaxTypedefDepth bounds typedef-of-typedef chains.
const DefaultMaxTypedefDepth = 32

var (
	ErrTypedefCycle      = errors.New("typedef chain does not terminate")
	ErrUnresolvedTypedef = errors.New("typedef has no underlying type")
)

// Resolve substitutes typedefs by their underlying type until a non-typedef
// descriptor is reached. Arrays are returned as they are; use ResolveElem for
// their element type.
func Resolve(t *TypeInfo, maxDepth int) (*TypeInfo, error) {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxTypedefDepth
	}

	current := t
	for depth := 0; current != nil && current.Kind == TypeKindTypedef; depth++ {
		if depth >= maxDepth {
			return nil, fmt.Errorf("%w: %s exceeds depth %d", ErrTypedefCycle, t.ID, maxDepth)
		}

		if current.Underlying == nil {
			return nil, fmt.Errorf("%w: %s", ErrUnresolvedTypedef, current.ID)
		}

		current = current.Underlying
	}

	return current, nil
}

// ResolveElem resolves t and, if it is an array, resolves its element type.
// It returns the resolved type and the resolved element (nil for non-arrays).
func ResolveElem(t *TypeInfo, maxDepth int) (resolved, elem *TypeInfo, err error) {
	resolved, err = Resolve(t, maxDepth)
	if err != nil {
		return nil, nil, err
	}

	if resolved == nil || resolved.Kind != TypeKindArray {
		return resolved, nil, nil
	}

	elem, err = Resolve(resolved.ElemType, maxDepth)
	if err != nil {
		return nil, nil, err
	}

	return resolved, elem, nil
}
