package typesys

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"
)

var (
	ErrRegistrySealed = errors.New("type registry is sealed")
	ErrDuplicateType  = errors.New("type is already registered")
	ErrUnnamedType    = errors.New("only named types can be registered")
)

// Registry maps type names to descriptors. It is populated at startup and
// sealed before validation starts; lookups are safe for concurrent use.
type Registry struct {
	mu     sync.RWMutex
	sealed bool
	// types maps TypeID to TypeInfo for all named types.
	types map[TypeID]*TypeInfo
	// collections maps type collection (package) names to their info.
	collections map[string]*CollectionInfo
}

// CollectionInfo holds the named types declared in one type collection.
type CollectionInfo struct {
	Name    string        // Type collection / package name
	Version SchemaVersion // Version of the collection
	Types   []TypeID      // Named types declared in this collection
}

// NewRegistry creates a new empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		types:       make(map[TypeID]*TypeInfo),
		collections: make(map[string]*CollectionInfo),
	}
}

// Register adds named descriptors to the registry.
func (r *Registry) Register(infos ...*TypeInfo) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sealed {
		return ErrRegistrySealed
	}

	// The batch is checked as a whole so that an error leaves the registry unchanged.
	batch := make(map[TypeID]struct{}, len(infos))
	for _, info := range infos {
		if info == nil || !info.IsNamed() || !info.Kind.IsNamed() {
			return fmt.Errorf("%w: %s", ErrUnnamedType, info)
		}

		_, exists := r.types[info.ID]
		_, repeated := batch[info.ID]
		if exists || repeated {
			return fmt.Errorf("%w: %q", ErrDuplicateType, info.ID)
		}

		batch[info.ID] = struct{}{}
	}

	for _, info := range infos {
		r.types[info.ID] = info

		c, ok := r.collections[info.ID.Package]
		if !ok {
			c = &CollectionInfo{Name: info.ID.Package, Version: info.Version}
			r.collections[info.ID.Package] = c
		}

		c.Types = append(c.Types, info.ID)
	}

	return nil
}

// MustRegister is Register that panics on error.
func (r *Registry) MustRegister(infos ...*TypeInfo) {
	if err := r.Register(infos...); err != nil {
		panic(err)
	}
}

// Seal makes the registry read-only.
func (r *Registry) Seal() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sealed = true
}

// IsSealed reports whether Seal was called.
func (r *Registry) IsSealed() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sealed
}

// Get returns the TypeInfo for a given TypeID, or nil if not found.
func (r *Registry) Get(id TypeID) *TypeInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.types[id]
}

// Len returns the number of registered types.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.types)
}

// Types returns all registered descriptors ordered by qualified name.
func (r *Registry) Types() []*TypeInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := slices.SortedFunc(maps.Keys(r.types), compareIDs)

	out := make([]*TypeInfo, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.types[id])
	}

	return out
}

// Collections returns the type collections ordered by name.
func (r *Registry) Collections() []CollectionInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := slices.Sorted(maps.Keys(r.collections))

	out := make([]CollectionInfo, 0, len(names))
	for _, n := range names {
		c := *r.collections[n]
		c.Types = slices.Clone(c.Types)
		out = append(out, c)
	}

	return out
}

// SetCollectionVersion records the version of a type collection.
func (r *Registry) SetCollectionVersion(name string, v SchemaVersion) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sealed {
		return ErrRegistrySealed
	}

	c, ok := r.collections[name]
	if !ok {
		c = &CollectionInfo{Name: name}
		r.collections[name] = c
	}

	c.Version = v

	return nil
}

// Lookup resolves a type name like:
// - "joynr.types.DiscoveryEntry" (full)
// - "types.DiscoveryEntry" (suffix of the collection name)
// - "DiscoveryEntry" (name only).
//
// Ambiguous short forms resolve to the first match in qualified-name order.
func (r *Registry) Lookup(name string) (*TypeInfo, bool) {
	if r == nil || name == "" {
		return nil, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	id := ParseTypeID(name)

	// 1) exact match
	if t, ok := r.types[id]; ok {
		return t, true
	}

	// 2) suffix or name-only match
	for _, candidate := range slices.SortedFunc(maps.Keys(r.types), compareIDs) {
		if candidate.Name != id.Name {
			continue
		}

		if id.Package == "" || strings.HasSuffix(candidate.Package, "."+id.Package) {
			return r.types[candidate], true
		}
	}

	return nil, false
}

// Names returns all qualified names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.types))
	for id := range r.types {
		names = append(names, id.String())
	}

	slices.Sort(names)

	return names
}

func compareIDs(a, b TypeID) int {
	return strings.Compare(a.String(), b.String())
}
