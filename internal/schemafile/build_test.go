package schemafile

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"capability-typing/types"
	"capability-typing/types/testtypes"
	"capability-typing/typesys"
	"capability-typing/typing"
)

func TestBuild_MatchesGeneratedDescriptors(t *testing.T) {
	doc, err := LoadFile(filepath.Join("testdata", "testtypes.yaml"))
	require.NoError(t, err)

	reg, err := Build(doc)
	require.NoError(t, err)

	for _, want := range testtypes.Descriptors() {
		t.Run(want.ID.Name, func(t *testing.T) {
			got := reg.Get(want.ID)
			require.NotNil(t, got)
			assert.Equal(t, want, got)
		})
	}

	cols := reg.Collections()
	require.Len(t, cols, 1)
	assert.Equal(t, typesys.SchemaVersion{Major: testtypes.MajorVersion, Minor: testtypes.MinorVersion}, cols[0].Version)
	assert.False(t, reg.IsSealed())
}

func TestBuild_SharesNamedDescriptors(t *testing.T) {
	doc, err := LoadFile(filepath.Join("testdata", "testtypes.yaml"))
	require.NoError(t, err)

	reg, err := Build(doc)
	require.NoError(t, err)

	tStruct, ok := reg.Lookup("TestTypes.TStruct")
	require.True(t, ok)

	def, ok := reg.Lookup("TypeDefForTStruct")
	require.True(t, ok)
	assert.Same(t, tStruct, def.Underlying)
}

func TestBuild_ForwardReferencesAndByteBuffer(t *testing.T) {
	doc := mustParse(t, `
collections:
  - package: a
    version: {major: 1, minor: 2}
    types:
      - name: Outer
        kind: struct
        members:
          - {name: inner, type: Inner, optional: true}
          - {name: payload, type: ByteBuffer}
          - {name: grid, type: "Int32[][]"}
      - {name: Inner, kind: map, value: Boolean}
`)

	reg, err := Build(doc)
	require.NoError(t, err)

	outer := reg.Get(typesys.TypeID{Package: "a", Name: "Outer"})
	require.NotNil(t, outer)
	assert.Equal(t, typesys.SchemaVersion{Major: 1, Minor: 2}, outer.Version)

	inner, ok := outer.Member("inner")
	require.True(t, ok)
	assert.True(t, inner.Optional)
	assert.Same(t, reg.Get(typesys.TypeID{Package: "a", Name: "Inner"}), inner.Type)

	payload, ok := outer.Member("payload")
	require.True(t, ok)
	assert.Equal(t, "Number[]", payload.Type.String())

	grid, ok := outer.Member("grid")
	require.True(t, ok)
	assert.Equal(t, "Number[][]", grid.Type.String())
	assert.Equal(t, 2, grid.Index)
}

func TestBuild_InvalidDocument(t *testing.T) {
	_, err := Build(mustParse(t, "collections:\n  - package: a\n    types:\n      - {name: D, kind: typedef, type: Nope}"))
	require.ErrorIs(t, err, ErrInvalidDocument)
	assert.Contains(t, err.Error(), CodeUnknownType)

	_, err = Build(nil)
	require.ErrorIs(t, err, ErrInvalidDocument)
}

func TestBuild_CheckerUsesBuiltDescriptors(t *testing.T) {
	doc, err := LoadFile(filepath.Join("testdata", "testtypes.yaml"))
	require.NoError(t, err)

	reg, err := Build(doc)
	require.NoError(t, err)
	reg.Seal()

	desc, ok := reg.Lookup("TStruct")
	require.True(t, ok)

	checker := typing.NewChecker()
	instance := testtypes.TStruct{TDouble: 1.5, TInt64: 2, TString: "s"}
	require.NoError(t, checker.CheckMembers(instance, desc, checker.CheckProperty))
}

func TestExport_RoundTrip(t *testing.T) {
	src := typesys.NewRegistry()
	require.NoError(t, types.Register(src))
	require.NoError(t, testtypes.Register(src))

	doc := Export(src)
	assert.Equal(t, CurrentVersion, doc.Version)
	require.Len(t, doc.Collections, 2)
	assert.Equal(t, types.TypeCollection, doc.Collections[0].Package)
	assert.Nil(t, doc.Collections[0].Version)
	assert.Equal(t, &VersionDef{Major: 49, Minor: 13}, doc.Collections[1].Version)

	data, err := Marshal(doc)
	require.NoError(t, err)
	require.NoError(t, CheckStructure(data))

	parsed, err := Parse(data)
	require.NoError(t, err)

	reg, err := Build(parsed)
	require.NoError(t, err)

	for _, want := range src.Types() {
		assert.Equal(t, want, reg.Get(want.ID), want.ID.String())
	}
}

func TestExport_References(t *testing.T) {
	reg := typesys.NewRegistry()
	require.NoError(t, testtypes.Register(reg))

	doc := Export(reg)
	byName := map[string]TypeDef{}
	for _, def := range doc.Collections[0].Types {
		byName[def.Name] = def
	}

	assert.Equal(t, KindTypedef, byName["TypeDefForPrimitive"].Kind)
	assert.Equal(t, "Number", byName["TypeDefForPrimitive"].Type)
	assert.Equal(t, "String", byName["TStringKeyMap"].Value)
	assert.Equal(t, []string{"TLITERALA", "TLITERALB"}, byName["TEnum"].Literals)
	assert.Equal(t, "joynr.types.TestTypes.TypeDefForTEnum[]",
		byName["TStructWithTypedefMembers"].Members[7].Type)
}
