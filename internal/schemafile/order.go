package schemafile

import (
	"errors"
	"fmt"
	"slices"

	"capability-typing/typesys"
)

var errCycle = errors.New("cycle detected")

// dependencyOrder returns indices so that every node follows its dependencies.
//
// Nodes are by index; depsFn(i) yields indices that must come before i.
// When several nodes are available the smallest index is taken, so an
// already ordered input is returned unchanged.
func dependencyOrder(n int, depsFn func(i int) []int) ([]int, error) {
	if n <= 0 {
		return nil, nil
	}

	indeg := make([]int, n)
	out := make([][]int, n)

	for i := range n {
		for _, d := range depsFn(i) {
			if d < 0 || d >= n {
				return nil, fmt.Errorf("dependency index out of range: %d depends on %d", i, d)
			}

			indeg[i]++
			out[d] = append(out[d], i)
		}
	}

	var ready []int

	for i := range n {
		if indeg[i] == 0 {
			ready = append(ready, i)
		}
	}

	order := make([]int, 0, n)

	for len(ready) > 0 {
		i := ready[0]
		ready = ready[1:]

		order = append(order, i)
		for _, j := range out[i] {
			indeg[j]--
			if indeg[j] == 0 {
				k, _ := slices.BinarySearch(ready, j)
				ready = slices.Insert(ready, k, j)
			}
		}
	}

	if len(order) != n {
		return nil, errCycle
	}

	return order, nil
}

// declarationOrder orders the types of one collection so that referenced
// types of the same collection are declared first. Types referring to each
// other keep their registration order.
func declarationOrder(infos []*typesys.TypeInfo) []*typesys.TypeInfo {
	index := make(map[typesys.TypeID]int, len(infos))
	for i, t := range infos {
		index[t.ID] = i
	}

	order, err := dependencyOrder(len(infos), func(i int) []int {
		var deps []int
		for _, ref := range referencedTypes(infos[i]) {
			if j, ok := index[ref]; ok && j != i && !slices.Contains(deps, j) {
				deps = append(deps, j)
			}
		}

		return deps
	})
	if err != nil {
		return infos
	}

	out := make([]*typesys.TypeInfo, 0, len(infos))
	for _, i := range order {
		out = append(out, infos[i])
	}

	return out
}

// referencedTypes returns the named types t refers to directly.
func referencedTypes(t *typesys.TypeInfo) []typesys.TypeID {
	var refs []typesys.TypeID

	add := func(ref *typesys.TypeInfo) {
		for ref != nil && ref.Kind == typesys.TypeKindArray {
			ref = ref.ElemType
		}

		if ref != nil && ref.IsNamed() {
			refs = append(refs, ref.ID)
		}
	}

	switch t.Kind {
	case typesys.TypeKindStruct:
		for _, m := range t.Members {
			add(m.Type)
		}
	case typesys.TypeKindMap:
		add(t.ElemType)
	case typesys.TypeKindTypedef:
		add(t.Underlying)
	}

	return refs
}
