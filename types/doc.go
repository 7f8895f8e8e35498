// Package types holds the generated records of the joynr.types type
// collection that describe provider capabilities.
//
// DiscoveryEntry carries the base fields shared by every capability record.
// GlobalDiscoveryEntry adds the serialized transport address used by the
// global directory, and DiscoveryEntryWithMetaInfo adds whether the provider
// is reachable without crossing a remote directory. Both embed DiscoveryEntry
// by value.
package types
