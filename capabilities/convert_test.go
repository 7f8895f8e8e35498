package capabilities

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"capability-typing/address"
	"capability-typing/types"
	"capability-typing/typesys"
	"capability-typing/typing"
)

type fixture struct {
	now               int64
	serializedAddress string

	entry       types.DiscoveryEntry
	global      types.GlobalDiscoveryEntry
	localMeta   types.DiscoveryEntryWithMetaInfo
	globalMeta  types.DiscoveryEntryWithMetaInfo
	mqttAddress address.MqttAddress
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	now := time.Now().UnixMilli()
	mqtt := address.MqttAddress{}

	serialized, err := address.Serialize(mqtt)
	require.NoError(t, err)

	entry := types.DiscoveryEntry{
		ProviderVersion: types.Version{MajorVersion: 47, MinorVersion: 11},
		Domain:          "providerDomain",
		InterfaceName:   "interfaceName",
		ParticipantID:   "providerParticipantId",
		Qos:             types.ProviderQos{Scope: types.ProviderScopeGlobal},
		LastSeenDateMs:  now,
		ExpiryDateMs:    now + 60000,
		PublicKeyID:     "testPublicKeyId",
	}

	return fixture{
		now:               now,
		serializedAddress: serialized,
		entry:             entry,
		global:            types.GlobalDiscoveryEntry{DiscoveryEntry: entry, Address: serialized},
		localMeta:         types.DiscoveryEntryWithMetaInfo{DiscoveryEntry: entry, IsLocal: true},
		globalMeta:        types.DiscoveryEntryWithMetaInfo{DiscoveryEntry: entry, IsLocal: false},
		mqttAddress:       mqtt,
	}
}

func secondEntry(f fixture) types.DiscoveryEntry {
	e := f.entry
	e.Domain = "providerDomain2"
	e.ParticipantID = "providerParticipantId2"
	e.LastSeenDateMs = 4711
	e.ExpiryDateMs = 4712
	e.PublicKeyID = "testPublicKeyId2"

	return e
}

func TestToGlobalDiscoveryEntry(t *testing.T) {
	f := newFixture(t)

	for _, src := range []BaseEntry{f.entry, f.localMeta, f.globalMeta, f.global} {
		got := ToGlobalDiscoveryEntry(src, f.serializedAddress)

		assert.Equal(t, f.global, got)
		assert.Equal(t, "joynr.types.GlobalDiscoveryEntry", got.TypeName())
		assert.Equal(t, f.serializedAddress, got.Address)
		assert.Equal(t, f.entry, got.Base())
	}

	// the address of a global input is overwritten, not kept
	got := ToGlobalDiscoveryEntry(f.global, "other")
	assert.Equal(t, "other", got.Address)
}

func TestToGlobalDiscoveryEntryWithAddress(t *testing.T) {
	f := newFixture(t)

	got, err := ToGlobalDiscoveryEntryWithAddress(f.localMeta, f.mqttAddress)
	require.NoError(t, err)
	assert.Equal(t, f.global, got)
	assert.Equal(t, `{"_typeName":"joynr.system.RoutingTypes.MqttAddress","brokerUri":"","topic":""}`, got.Address)

	_, err = ToGlobalDiscoveryEntryWithAddress(f.entry, nil)
	require.ErrorIs(t, err, address.ErrUnknownAddressType)
	assert.Contains(t, err.Error(), "providerParticipantId")
}

func TestToDiscoveryEntryWithMetaInfo(t *testing.T) {
	f := newFixture(t)

	for _, src := range []BaseEntry{f.entry, f.global, f.localMeta, f.globalMeta} {
		local := ToDiscoveryEntryWithMetaInfo(true, src)
		assert.Equal(t, f.localMeta, local)
		assert.True(t, local.IsLocal)

		remote := ToDiscoveryEntryWithMetaInfo(false, src)
		assert.Equal(t, f.globalMeta, remote)
		assert.Equal(t, f.entry, remote.Base())
	}

	// isLocal is caller supplied even when the input carries an address
	assert.True(t, ToDiscoveryEntryWithMetaInfo(true, f.global).IsLocal)
	assert.False(t, ToDiscoveryEntryWithMetaInfo(false, f.localMeta).IsLocal)
}

func TestToDiscoveryEntryWithMetaInfoSlice(t *testing.T) {
	f := newFixture(t)
	entries := []types.DiscoveryEntry{f.entry, secondEntry(f)}

	for _, isLocal := range []bool{true, false} {
		got := ToDiscoveryEntryWithMetaInfoSlice(isLocal, entries)
		require.Len(t, got, len(entries))

		for i := range entries {
			assert.Equal(t, ToDiscoveryEntryWithMetaInfo(isLocal, entries[i]), got[i])
			assert.Equal(t, isLocal, got[i].IsLocal)
		}
	}

	globals := []types.GlobalDiscoveryEntry{
		ToGlobalDiscoveryEntry(secondEntry(f), "a"),
		ToGlobalDiscoveryEntry(f.entry, "b"),
	}
	got := ToDiscoveryEntryWithMetaInfoSlice(false, globals)
	require.Len(t, got, 2)
	assert.Equal(t, "providerParticipantId2", got[0].ParticipantID)
	assert.Equal(t, "providerParticipantId", got[1].ParticipantID)

	assert.Nil(t, ToDiscoveryEntryWithMetaInfoSlice[types.DiscoveryEntry](true, nil))
	assert.Empty(t, ToDiscoveryEntryWithMetaInfoSlice(true, []types.DiscoveryEntry{}))
	assert.NotNil(t, ToDiscoveryEntryWithMetaInfoSlice(true, []types.DiscoveryEntry{}))
}

func TestToDiscoveryEntryWithMetaInfoSet(t *testing.T) {
	f := newFixture(t)

	dup := f.entry
	dup.Domain = "duplicateDomain"

	got := ToDiscoveryEntryWithMetaInfoSet(true, []types.DiscoveryEntry{f.entry, secondEntry(f), dup})
	require.Len(t, got, 2)
	assert.Equal(t, "providerDomain", got[0].Domain)
	assert.Equal(t, "providerDomain2", got[1].Domain)

	assert.Nil(t, ToDiscoveryEntryWithMetaInfoSet[types.GlobalDiscoveryEntry](true, nil))
}

func TestToDiscoveryEntry(t *testing.T) {
	f := newFixture(t)

	assert.Equal(t, f.entry, ToDiscoveryEntry(f.global))
	assert.Equal(t, f.entry, ToDiscoveryEntry(f.localMeta))

	got := ToDiscoveryEntries([]types.DiscoveryEntryWithMetaInfo{f.localMeta, f.globalMeta})
	assert.Equal(t, []types.DiscoveryEntry{f.entry, f.entry}, got)
	assert.Nil(t, ToDiscoveryEntries[types.DiscoveryEntry](nil))
}

func TestConversions_ShareNoStorage(t *testing.T) {
	f := newFixture(t)
	f.entry.Qos.CustomParameters = []types.CustomParameter{{Name: "k", Value: "v"}}

	global := ToGlobalDiscoveryEntry(f.entry, f.serializedAddress)
	meta := ToDiscoveryEntryWithMetaInfo(true, f.entry)

	global.Qos.CustomParameters[0].Value = "changed"
	meta.Domain = "changed"
	meta.ProviderVersion.MajorVersion = 1

	assert.Equal(t, "v", f.entry.Qos.CustomParameters[0].Value)
	assert.Equal(t, "v", meta.Qos.CustomParameters[0].Value)
	assert.Equal(t, "providerDomain", f.entry.Domain)
	assert.Equal(t, int32(47), f.entry.ProviderVersion.MajorVersion)
}

func TestConversions_AbsentFieldsPropagate(t *testing.T) {
	partial := types.DiscoveryEntry{ParticipantID: "p"}

	got := ToGlobalDiscoveryEntry(partial, "")
	assert.Equal(t, partial, got.DiscoveryEntry)
	assert.Nil(t, got.Qos.CustomParameters)
}

func TestConversions_ResultsPassTheChecker(t *testing.T) {
	f := newFixture(t)

	reg := typesys.NewRegistry()
	require.NoError(t, types.Register(reg))
	reg.Seal()

	checker := typing.NewChecker()
	results := []typing.Record{
		ToGlobalDiscoveryEntry(f.localMeta, f.serializedAddress),
		ToDiscoveryEntryWithMetaInfo(true, f.global),
		ToDiscoveryEntry(f.globalMeta),
	}

	for _, rec := range results {
		desc, ok := reg.Lookup(rec.TypeName())
		require.True(t, ok)
		require.NoError(t, checker.CheckMembers(rec, desc, checker.CheckProperty))
	}
}

func TestTouchAndIsExpired(t *testing.T) {
	f := newFixture(t)

	assert.False(t, IsExpired(f.global, f.now))
	assert.True(t, IsExpired(f.global, f.now+60001))

	Touch(&f.global.DiscoveryEntry, f.now+60000, f.now+120000)
	assert.Equal(t, f.now+60000, f.global.LastSeenDateMs)
	assert.False(t, IsExpired(f.global, f.now+60001))

	// the source entry embedded by value is unaffected
	assert.Equal(t, f.now, f.entry.LastSeenDateMs)
}

func TestGlobalDiscoveryEntry_WireForm(t *testing.T) {
	f := newFixture(t)

	data, err := json.Marshal(ToGlobalDiscoveryEntry(f.entry, f.serializedAddress))
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(data, &fields))
	assert.Equal(t, "providerParticipantId", fields["participantId"])
	assert.Equal(t, f.serializedAddress, fields["address"])
	assert.NotContains(t, fields, "DiscoveryEntry")
}
