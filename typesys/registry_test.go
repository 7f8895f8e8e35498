package typesys

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTestRegistry(t *testing.T) *Registry {
	t.Helper()

	v := SchemaVersion{Major: 49, Minor: 13}
	reg := NewRegistry()
	require.NoError(t, reg.Register(
		NamedStruct(TypeID{Package: "joynr.types.TestTypes", Name: "TStruct"}, v,
			MemberInfo{Name: "tDouble", Type: PrimitiveType(PrimitiveNumber)},
			MemberInfo{Name: "tString", Type: PrimitiveType(PrimitiveString)},
		),
		NamedEnum(TypeID{Package: "joynr.types.TestTypes", Name: "TEnum"}, v, "TLITERALA", "TLITERALB"),
		NamedStruct(TypeID{Package: "joynr.types.Other", Name: "TStruct"}, SchemaVersion{}),
	))

	return reg
}

func TestRegistry_LookupForms(t *testing.T) {
	reg := buildTestRegistry(t)

	full, ok := reg.Lookup("joynr.types.TestTypes.TStruct")
	require.True(t, ok)
	assert.Equal(t, "joynr.types.TestTypes", full.ID.Package)

	suffix, ok := reg.Lookup("TestTypes.TStruct")
	require.True(t, ok)
	assert.Same(t, full, suffix)

	other, ok := reg.Lookup("Other.TStruct")
	require.True(t, ok)
	assert.Equal(t, "joynr.types.Other", other.ID.Package)

	// Bare names resolve deterministically to the first qualified name.
	bare, ok := reg.Lookup("TStruct")
	require.True(t, ok)
	assert.Equal(t, "joynr.types.Other.TStruct", bare.ID.String())

	_, ok = reg.Lookup("types.Missing")
	assert.False(t, ok)

	_, ok = reg.Lookup("")
	assert.False(t, ok)
}

func TestRegistry_Duplicate(t *testing.T) {
	reg := buildTestRegistry(t)

	err := reg.Register(NamedEnum(TypeID{Package: "joynr.types.TestTypes", Name: "TEnum"}, SchemaVersion{}))
	require.ErrorIs(t, err, ErrDuplicateType)
}

func TestRegistry_FailedBatchLeavesRegistryUnchanged(t *testing.T) {
	id := func(name string) TypeID { return TypeID{Package: "p", Name: name} }

	tests := []struct {
		name  string
		batch []*TypeInfo
		err   error
	}{
		{
			name: "duplicate within batch",
			batch: []*TypeInfo{
				NamedStruct(id("B"), SchemaVersion{}),
				NamedStruct(id("A"), SchemaVersion{}),
				NamedEnum(id("A"), SchemaVersion{}, "X"),
			},
			err: ErrDuplicateType,
		},
		{
			name: "duplicate of registered type",
			batch: []*TypeInfo{
				NamedStruct(id("C"), SchemaVersion{}),
				NamedStruct(id("Existing"), SchemaVersion{}),
			},
			err: ErrDuplicateType,
		},
		{
			name: "unnamed after named",
			batch: []*TypeInfo{
				NamedStruct(id("D"), SchemaVersion{}),
				PrimitiveType(PrimitiveString),
			},
			err: ErrUnnamedType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := NewRegistry()
			require.NoError(t, reg.Register(NamedStruct(id("Existing"), SchemaVersion{})))

			require.ErrorIs(t, reg.Register(tt.batch...), tt.err)
			assert.Equal(t, 1, reg.Len())
			assert.Equal(t, []string{"p.Existing"}, reg.Names())

			cols := reg.Collections()
			require.Len(t, cols, 1)
			assert.Len(t, cols[0].Types, 1)
		})
	}
}

func TestRegistry_RejectsUnnamed(t *testing.T) {
	reg := NewRegistry()

	require.ErrorIs(t, reg.Register(PrimitiveType(PrimitiveNumber)), ErrUnnamedType)
	require.ErrorIs(t, reg.Register(ArrayOf(PrimitiveType(PrimitiveString))), ErrUnnamedType)
}

func TestRegistry_Seal(t *testing.T) {
	reg := buildTestRegistry(t)
	reg.Seal()

	assert.True(t, reg.IsSealed())
	err := reg.Register(NamedEnum(TypeID{Package: "x", Name: "E"}, SchemaVersion{}))
	require.ErrorIs(t, err, ErrRegistrySealed)
	require.ErrorIs(t, reg.SetCollectionVersion("x", SchemaVersion{Major: 1}), ErrRegistrySealed)

	// reads keep working
	_, ok := reg.Lookup("TEnum")
	assert.True(t, ok)
}

func TestRegistry_Collections(t *testing.T) {
	reg := buildTestRegistry(t)

	cols := reg.Collections()
	require.Len(t, cols, 2)
	assert.Equal(t, "joynr.types.Other", cols[0].Name)
	assert.Equal(t, "joynr.types.TestTypes", cols[1].Name)
	assert.Equal(t, SchemaVersion{Major: 49, Minor: 13}, cols[1].Version)
	assert.Len(t, cols[1].Types, 2)

	assert.Equal(t, []string{
		"joynr.types.Other.TStruct",
		"joynr.types.TestTypes.TEnum",
		"joynr.types.TestTypes.TStruct",
	}, reg.Names())
	assert.Equal(t, 3, reg.Len())
}

func TestRegistry_ConcurrentLookup(t *testing.T) {
	reg := buildTestRegistry(t)
	reg.Seal()

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for range 100 {
				_, ok := reg.Lookup("TestTypes.TEnum")
				assert.True(t, ok)
			}
		}()
	}

	wg.Wait()
}
