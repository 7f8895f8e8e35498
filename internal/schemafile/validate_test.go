package schemafile

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"capability-typing/internal/diagnostic"
)

func mustParse(t *testing.T, data string) *Document {
	t.Helper()

	doc, err := Parse([]byte(data))
	require.NoError(t, err)

	return doc
}

func findError(t *testing.T, diags *diagnostic.Diagnostics, code string) diagnostic.Diagnostic {
	t.Helper()

	for _, d := range diags.Errors {
		if d.Code == code {
			return d
		}
	}

	require.Failf(t, "missing diagnostic", "no error with code %s in %v", code, diags.Codes())

	return diagnostic.Diagnostic{}
}

func TestValidate_Testdata(t *testing.T) {
	doc, err := LoadFile(filepath.Join("testdata", "testtypes.yaml"))
	require.NoError(t, err)

	diags := Validate(doc)
	assert.True(t, diags.IsValid(), diags.Error())
	assert.Empty(t, diags.Warnings)
}

func TestValidate_NilDocument(t *testing.T) {
	diags := Validate(nil)
	assert.Equal(t, []string{CodeDocumentNil}, diags.Codes())
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name      string
		doc       string
		code      string
		typeName  string
		fieldPath string
	}{
		{
			name: "unsupported version",
			doc:  "version: \"2\"\ncollections: []",
			code: CodeUnsupportedVersion, fieldPath: "version",
		},
		{
			name: "missing package",
			doc:  "collections:\n  - types: [{name: E, kind: enum, literals: [X]}]",
			code: CodeMissingPackage, fieldPath: "collections[0]",
		},
		{
			name: "missing type name",
			doc:  "collections:\n  - package: a\n    types: [{kind: enum, literals: [X]}]",
			code: CodeMissingTypeName, fieldPath: "collections[0].types[0]",
		},
		{
			name: "duplicate type across collections entries",
			doc: "collections:\n  - package: a\n    types: [{name: E, kind: enum, literals: [X]}]\n" +
				"  - package: a\n    types: [{name: E, kind: enum, literals: [Y]}]",
			code: CodeDuplicateType, typeName: "a.E", fieldPath: "collections[1].types[0]",
		},
		{
			name: "duplicate member",
			doc:  "collections:\n  - package: a\n    types:\n      - {name: S, kind: struct, members: [{name: m, type: String}, {name: m, type: Int32}]}",
			code: CodeDuplicateMember, typeName: "a.S", fieldPath: "collections[0].types[0].members[1]",
		},
		{
			name: "missing member type",
			doc:  "collections:\n  - package: a\n    types:\n      - {name: S, kind: struct, members: [{name: m}]}",
			code: CodeMissingType, typeName: "a.S", fieldPath: "collections[0].types[0].members[0]",
		},
		{
			name: "missing map value",
			doc:  "collections:\n  - package: a\n    types:\n      - {name: M, kind: map}",
			code: CodeMissingType, typeName: "a.M", fieldPath: "collections[0].types[0].value",
		},
		{
			name: "missing typedef target",
			doc:  "collections:\n  - package: a\n    types:\n      - {name: D, kind: typedef}",
			code: CodeMissingType, typeName: "a.D", fieldPath: "collections[0].types[0].type",
		},
		{
			name: "empty enum",
			doc:  "collections:\n  - package: a\n    types:\n      - {name: E, kind: enum}",
			code: CodeEmptyEnum, typeName: "a.E", fieldPath: "collections[0].types[0]",
		},
		{
			name: "duplicate literal",
			doc:  "collections:\n  - package: a\n    types:\n      - {name: E, kind: enum, literals: [X, Y, X]}",
			code: CodeDuplicateLiteral, typeName: "a.E", fieldPath: "collections[0].types[0]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := Validate(mustParse(t, tt.doc))

			d := findError(t, diags, tt.code)
			assert.Equal(t, tt.typeName, d.Type)
			assert.Equal(t, tt.fieldPath, d.FieldPath)
		})
	}
}

func TestValidate_UnknownKindSuggestsKind(t *testing.T) {
	diags := Validate(mustParse(t, "collections:\n  - package: a\n    types:\n      - {name: S, kind: strcut}"))

	d := findError(t, diags, CodeUnknownKind)
	assert.Equal(t, "collections[0].types[0].kind", d.FieldPath)
	require.NotEmpty(t, d.Suggestions)
	assert.Equal(t, KindStruct, d.Suggestions[0])
}

func TestValidate_UnknownTypeSuggestsDeclared(t *testing.T) {
	doc, err := LoadFile(filepath.Join("testdata", "testtypes.yaml"))
	require.NoError(t, err)

	doc.Collections[0].Types[3].Type = "TStrct"

	diags := Validate(doc)
	d := findError(t, diags, CodeUnknownType)
	assert.Equal(t, "joynr.types.TestTypes.TypeDefForPrimitive", d.Type)
	assert.Equal(t, "collections[0].types[3].type", d.FieldPath)
	assert.Contains(t, d.Suggestions, "joynr.types.TestTypes.TStruct")
	assert.Contains(t, d.String(), "did you mean")
}

func TestValidate_UnknownPrimitiveSuggestsPrimitive(t *testing.T) {
	diags := Validate(mustParse(t, "collections:\n  - package: a\n    types:\n      - {name: D, kind: typedef, type: Strng}"))

	d := findError(t, diags, CodeUnknownType)
	require.NotEmpty(t, d.Suggestions)
	assert.Equal(t, "String", d.Suggestions[0])
}

func TestValidate_ResolvesAcrossCollections(t *testing.T) {
	doc := mustParse(t, `
collections:
  - package: joynr.types
    types:
      - {name: S, kind: struct, members: [{name: e, type: TestTypes.E}, {name: f, type: "E[]"}]}
  - package: joynr.types.TestTypes
    types:
      - {name: E, kind: enum, literals: [X]}
`)

	assert.True(t, Validate(doc).IsValid())
}

func TestValidate_TypedefCycle(t *testing.T) {
	doc := mustParse(t, `
collections:
  - package: a
    types:
      - {name: B, kind: typedef, type: A}
      - {name: A, kind: typedef, type: B}
      - {name: C, kind: typedef, type: A}
      - {name: Self, kind: typedef, type: Self}
      - {name: ArrayOfSelf, kind: typedef, type: "ArrayOfSelf[]"}
`)

	diags := Validate(doc)
	assert.Equal(t, []string{CodeTypedefCycle, CodeTypedefCycle}, diags.Codes())
	assert.Contains(t, diags.Errors[0].Message, "a.A -> a.B -> a.A")
	assert.Equal(t, "collections[0].types[1].type", diags.Errors[0].FieldPath)
	assert.Contains(t, diags.Errors[1].Message, "a.Self -> a.Self")
}

func TestValidate_Warnings(t *testing.T) {
	doc := mustParse(t, `
collections:
  - package: empty
  - package: a
    types:
      - {name: E, kind: enum, literals: [X], value: String}
`)

	diags := Validate(doc)
	assert.True(t, diags.IsValid())
	require.Len(t, diags.Warnings, 2)
	assert.Equal(t, CodeEmptyCollection, diags.Warnings[0].Code)
	assert.Equal(t, CodeUnusedField, diags.Warnings[1].Code)
}
