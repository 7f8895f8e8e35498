package analyze

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"capability-typing/types"
	"capability-typing/types/testtypes"
	"capability-typing/types/testtypesoptional"
	"capability-typing/types/testtypeswithoutversion"
	"capability-typing/typesys"
	"capability-typing/typing"
)

func TestAnalyzer_LoadPackages(t *testing.T) {
	analyzer := NewAnalyzer()
	reg, err := analyzer.LoadPackages("capability-typing/types/testtypes", "capability-typing/types/testtypeswithoutversion")
	require.NoError(t, err)
	require.NotNil(t, reg)

	pkgs := analyzer.Packages()
	require.Len(t, pkgs, 2)
	assert.Equal(t, "joynr.types.TestTypes", pkgs[0].Collection)
	assert.Equal(t, typesys.SchemaVersion{Major: 49, Minor: 13}, pkgs[0].Version)
	assert.Equal(t, "joynr.types.TestTypesWithoutVersion", pkgs[1].Collection)
	assert.Equal(t, typesys.SchemaVersion{}, pkgs[1].Version)

	cols := reg.Collections()
	require.Len(t, cols, 2)
	assert.Equal(t, typesys.SchemaVersion{Major: 49, Minor: 13}, cols[0].Version)
}

// The analyzer derives the same descriptors the generated packages declare.
func TestAnalyzer_MatchesGeneratedDescriptors(t *testing.T) {
	tests := []struct {
		pattern     string
		descriptors []*typesys.TypeInfo
	}{
		{"capability-typing/types", types.Descriptors()},
		{"capability-typing/types/testtypes", testtypes.Descriptors()},
		{"capability-typing/types/testtypeswithoutversion", testtypeswithoutversion.Descriptors()},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			reg, err := NewAnalyzer().LoadPackages(tt.pattern)
			require.NoError(t, err)
			assert.Equal(t, len(tt.descriptors), reg.Len())

			for _, want := range tt.descriptors {
				got := reg.Get(want.ID)
				require.NotNil(t, got, want.ID.String())
				assert.Equal(t, want, got, want.ID.String())
			}
		})
	}
}

func TestAnalyzer_TypedefsAndArrays(t *testing.T) {
	reg, err := NewAnalyzer().LoadPackages("capability-typing/types/testtypes")
	require.NoError(t, err)

	def, ok := reg.Lookup("TypeDefForTStruct")
	require.True(t, ok)
	assert.Equal(t, typesys.TypeKindTypedef, def.Kind)
	assert.Equal(t, "joynr.types.TestTypes.TStruct", def.Underlying.ID.String())

	withTypedefs, ok := reg.Lookup("TStructWithTypedefMembers")
	require.True(t, ok)

	member, ok := withTypedefs.Member("arrayOfTypeDefForTEnum")
	require.True(t, ok)
	assert.Equal(t, typesys.TypeKindArray, member.Type.Kind)
	assert.Equal(t, "TypeDefForTEnum", member.Type.ElemType.Name())
	assert.Equal(t, "joynr.types.TestTypes.TypeDefForTEnum[]", member.Type.String())

	enum, ok := reg.Lookup("TEnum")
	require.True(t, ok)
	assert.Equal(t, []string{"TLITERALA", "TLITERALB"}, enum.Literals)
}

func TestAnalyzer_EmbeddedBaseFields(t *testing.T) {
	reg, err := NewAnalyzer().LoadPackages("capability-typing/types")
	require.NoError(t, err)

	global, ok := reg.Lookup("GlobalDiscoveryEntry")
	require.True(t, ok)
	require.Len(t, global.Members, 9)
	assert.Equal(t, "providerVersion", global.Members[0].Name)
	assert.Equal(t, "address", global.Members[8].Name)
	assert.Equal(t, 8, global.Members[8].Index)
}

func TestAnalyzer_DescriptorsCheckGeneratedValues(t *testing.T) {
	reg, err := NewAnalyzer().LoadPackages("capability-typing/types/testtypes")
	require.NoError(t, err)
	reg.Seal()

	desc, ok := reg.Lookup("TStructWithTypedefMembers")
	require.True(t, ok)

	checker := typing.NewChecker()
	value := testtypes.TStructWithTypedefMembers{
		TypeDefForTEnum:          testtypes.TLITERALB,
		ArrayOfTypeDefForTStruct: []testtypes.TypeDefForTStruct{{TString: "x"}},
	}

	require.NoError(t, checker.CheckMembers(value, desc, checker.CheckProperty))
}

func TestAnalyzer_SkipsUnsupportedDeclarations(t *testing.T) {
	analyzer := NewAnalyzer()
	reg, err := analyzer.LoadPackages("capability-typing/address")
	require.NoError(t, err)

	// Address is an interface and has no descriptor
	_, ok := reg.Lookup("Address")
	assert.False(t, ok)

	mqtt, ok := reg.Lookup("joynr.system.RoutingTypes.MqttAddress")
	require.True(t, ok)
	assert.Equal(t, typesys.TypeKindStruct, mqtt.Kind)

	protocol, ok := reg.Lookup("WebSocketProtocol")
	require.True(t, ok)
	assert.Equal(t, typesys.TypeKindEnum, protocol.Kind)
	assert.Equal(t, []string{"WS", "WSS"}, protocol.Literals)
}

func TestAnalyzer_LoadError(t *testing.T) {
	_, err := NewAnalyzer().LoadPackages("capability-typing/does/not/exist")
	require.Error(t, err)
}

func TestParseJSONTag(t *testing.T) {
	tests := []struct {
		name     string
		tag      string
		embedded bool
		expected jsonField
	}{
		{"tagged", `json:"participantId"`, false, jsonField{Name: "participantId"}},
		{"omitempty", `json:"qos,omitempty"`, false, jsonField{Name: "qos", OmitEmpty: true}},
		{"untagged", ``, false, jsonField{Name: "Domain"}},
		{"skipped", `json:"-"`, false, jsonField{Skip: true}},
		{"embedded", ``, true, jsonField{Inline: true}},
		{"embedded tagged", `json:"entry"`, true, jsonField{Name: "entry"}},
		{"options only", `json:",omitempty"`, false, jsonField{Name: "Domain", OmitEmpty: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseJSONTag("Domain", reflect.StructTag(tt.tag), tt.embedded))
		})
	}
}

// Pointer fields become optional members, and the checker accepts them when set.
func TestAnalyzer_PointerMembersPassChecker(t *testing.T) {
	reg, err := NewAnalyzer().LoadPackages("capability-typing/types/testtypesoptional")
	require.NoError(t, err)

	desc, ok := reg.Lookup("joynr.types.TestTypesOptional.Settings")
	require.True(t, ok)

	var optionalMembers []string
	for _, m := range desc.Members {
		if m.Optional {
			optionalMembers = append(optionalMembers, m.Name)
		}
	}

	assert.Equal(t, []string{"name", "tags", "retries"}, optionalMembers)

	tags, ok := desc.Member("tags")
	require.True(t, ok)
	assert.Equal(t, "String[]", tags.Type.String())

	name := "subscription"
	list := []string{"a"}
	retries := int32(3)
	checker := typing.NewChecker()

	require.NoError(t, checker.CheckMembers(
		testtypesoptional.Settings{Label: "l", Name: &name, Tags: &list, Retries: &retries}, desc, checker.CheckProperty))
	require.NoError(t, checker.CheckMembers(testtypesoptional.Settings{Label: "l"}, desc, checker.CheckProperty))
}
