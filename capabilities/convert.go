package capabilities

import (
	"fmt"
	"slices"

	"capability-typing/address"
	"capability-typing/types"
)

// BaseEntry is implemented by every capability entry shape.
type BaseEntry interface {
	Base() types.DiscoveryEntry
}

// Entry is the set of capability entry shapes.
type Entry interface {
	types.DiscoveryEntry | types.GlobalDiscoveryEntry | types.DiscoveryEntryWithMetaInfo
	BaseEntry
}

var (
	_ BaseEntry = types.DiscoveryEntry{}
	_ BaseEntry = types.GlobalDiscoveryEntry{}
	_ BaseEntry = types.DiscoveryEntryWithMetaInfo{}
)

// baseOf copies the base fields of entry. Shape-specific fields are not read.
func baseOf(entry BaseEntry) types.DiscoveryEntry {
	base := entry.Base()
	base.Qos.CustomParameters = slices.Clone(base.Qos.CustomParameters)

	return base
}

// ToDiscoveryEntry drops the shape-specific field of entry.
func ToDiscoveryEntry(entry BaseEntry) types.DiscoveryEntry {
	return baseOf(entry)
}

// ToDiscoveryEntries converts every element of entries, preserving order.
func ToDiscoveryEntries[E Entry](entries []E) []types.DiscoveryEntry {
	if entries == nil {
		return nil
	}

	out := make([]types.DiscoveryEntry, len(entries))
	for i, e := range entries {
		out[i] = baseOf(e)
	}

	return out
}

// ToGlobalDiscoveryEntry copies the base fields of entry and sets the
// serialized transport address. The address is stored as given.
func ToGlobalDiscoveryEntry(entry BaseEntry, addr string) types.GlobalDiscoveryEntry {
	return types.GlobalDiscoveryEntry{
		DiscoveryEntry: baseOf(entry),
		Address:        addr,
	}
}

// ToGlobalDiscoveryEntryWithAddress serializes addr and converts entry with it.
func ToGlobalDiscoveryEntryWithAddress(entry BaseEntry, addr address.Address) (types.GlobalDiscoveryEntry, error) {
	serialized, err := address.Serialize(addr)
	if err != nil {
		return types.GlobalDiscoveryEntry{}, fmt.Errorf("participant %s: %w", entry.Base().ParticipantID, err)
	}

	return ToGlobalDiscoveryEntry(entry, serialized), nil
}

// ToDiscoveryEntryWithMetaInfo copies the base fields of entry and sets
// isLocal. isLocal is never derived from the entry itself.
func ToDiscoveryEntryWithMetaInfo(isLocal bool, entry BaseEntry) types.DiscoveryEntryWithMetaInfo {
	return types.DiscoveryEntryWithMetaInfo{
		DiscoveryEntry: baseOf(entry),
		IsLocal:        isLocal,
	}
}

// ToDiscoveryEntryWithMetaInfoSlice converts every element of entries. The
// result has the same length and order as entries; nil stays nil.
func ToDiscoveryEntryWithMetaInfoSlice[E Entry](isLocal bool, entries []E) []types.DiscoveryEntryWithMetaInfo {
	if entries == nil {
		return nil
	}

	out := make([]types.DiscoveryEntryWithMetaInfo, len(entries))
	for i, e := range entries {
		out[i] = ToDiscoveryEntryWithMetaInfo(isLocal, e)
	}

	return out
}

// ToDiscoveryEntryWithMetaInfoSet converts entries like
// ToDiscoveryEntryWithMetaInfoSlice but keeps only the first entry of every
// participant id.
func ToDiscoveryEntryWithMetaInfoSet[E Entry](isLocal bool, entries []E) []types.DiscoveryEntryWithMetaInfo {
	if entries == nil {
		return nil
	}

	seen := make(map[string]struct{}, len(entries))
	out := make([]types.DiscoveryEntryWithMetaInfo, 0, len(entries))

	for _, e := range entries {
		id := e.Base().ParticipantID
		if _, dup := seen[id]; dup {
			continue
		}

		seen[id] = struct{}{}
		out = append(out, ToDiscoveryEntryWithMetaInfo(isLocal, e))
	}

	return out
}

// Touch refreshes the liveness timestamps of entry in place. Pass the
// embedded DiscoveryEntry of the other shapes.
func Touch(entry *types.DiscoveryEntry, lastSeenDateMs, expiryDateMs int64) {
	entry.LastSeenDateMs = lastSeenDateMs
	entry.ExpiryDateMs = expiryDateMs
}

// IsExpired reports whether the entry's expiry date lies before nowMs.
func IsExpired(entry BaseEntry, nowMs int64) bool {
	return entry.Base().ExpiryDateMs < nowMs
}
