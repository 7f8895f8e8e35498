// Package capabilities converts capability entries between their three shapes:
// DiscoveryEntry, GlobalDiscoveryEntry and DiscoveryEntryWithMetaInfo.
//
// Every conversion copies the base fields of its input and only adds, removes
// or overwrites the shape-specific field. Conversions are pure: inputs are
// never mutated and results share no backing storage with their inputs.
package capabilities
