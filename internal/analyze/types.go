package analyze

import (
	"reflect"
	"strings"

	"capability-typing/typesys"
)

// Constant names a generated package declares its type collection with.
const (
	CollectionConst   = "TypeCollection"
	MajorVersionConst = "MajorVersion"
	MinorVersionConst = "MinorVersion"
)

// PackageInfo holds information about a loaded package.
type PackageInfo struct {
	Path       string                // Import path
	Name       string                // Package name
	Collection string                // Type collection the package was generated from
	Version    typesys.SchemaVersion // Version of the type collection
	Types      []typesys.TypeID      // Named types defined in this package
}

// jsonField is the parsed json tag of a struct field.
type jsonField struct {
	Name      string
	OmitEmpty bool
	Skip      bool
	Inline    bool // embedded without a tag name; members are promoted
}

// parseJSONTag returns the member name of a field as it appears on the wire.
func parseJSONTag(fieldName string, tag reflect.StructTag, embedded bool) jsonField {
	raw := tag.Get("json")
	if raw == "-" {
		return jsonField{Skip: true}
	}

	name, opts, _ := strings.Cut(raw, ",")

	f := jsonField{Name: name}
	for opt := range strings.SplitSeq(opts, ",") {
		if opt == "omitempty" || opt == "omitzero" {
			f.OmitEmpty = true
		}
	}

	switch {
	case f.Name != "":
	case embedded:
		f.Inline = true
	default:
		f.Name = fieldName
	}

	return f
}
