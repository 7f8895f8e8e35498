package types

import (
	"fmt"

	"github.com/Masterminds/semver/v3"

	"capability-typing/typesys"
)

// TypeCollection is the interface definition collection of this package.
const TypeCollection = "joynr.types"

// Version of the joynr.types collection.
const (
	MajorVersion = 0
	MinorVersion = 0
)

var collectionVersion = typesys.SchemaVersion{Major: MajorVersion, Minor: MinorVersion}

// Version is the interface version advertised by a provider.
type Version struct {
	MajorVersion int32 `json:"majorVersion"`
	MinorVersion int32 `json:"minorVersion"`
}

// TypeName returns the qualified type name.
func (Version) TypeName() string { return TypeCollection + ".Version" }

// TypeVersion returns the collection version the type was generated from.
func (Version) TypeVersion() typesys.SchemaVersion { return collectionVersion }

// Member returns the named member.
func (v Version) Member(name string) (any, bool) {
	switch name {
	case "majorVersion":
		return v.MajorVersion, true
	case "minorVersion":
		return v.MinorVersion, true
	default:
		return nil, false
	}
}

// String returns "major.minor".
func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.MajorVersion, v.MinorVersion)
}

// Compatible reports whether a provider with version v can serve a consumer
// that requires version required: same major version and at least the
// required minor version.
func (v Version) Compatible(required Version) bool {
	provided, err := semver.NewVersion(fmt.Sprintf("%d.%d.0", v.MajorVersion, v.MinorVersion))
	if err != nil {
		return false
	}

	constraint, err := semver.NewConstraint(fmt.Sprintf(">= %d.%d.0, < %d.0.0",
		required.MajorVersion, required.MinorVersion, int64(required.MajorVersion)+1))
	if err != nil {
		return false
	}

	return constraint.Check(provided)
}
