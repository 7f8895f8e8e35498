// Package testtypesoptional holds a generated test record whose optional
// members are pointers.
package testtypesoptional

// TypeCollection is the interface definition collection of this package.
const TypeCollection = "joynr.types.TestTypesOptional"

// Version of the joynr.types.TestTypesOptional collection.
const (
	MajorVersion = 1
	MinorVersion = 0
)

// Settings has optional members modelled as pointers.
type Settings struct {
	Label   string    `json:"label"`
	Name    *string   `json:"name"`
	Tags    *[]string `json:"tags"`
	Retries *int32    `json:"retries,omitempty"`
}

// TypeName returns the qualified type name.
func (Settings) TypeName() string { return TypeCollection + ".Settings" }

// Member returns the named member.
func (s Settings) Member(name string) (any, bool) {
	switch name {
	case "label":
		return s.Label, true
	case "name":
		return s.Name, true
	case "tags":
		return s.Tags, true
	case "retries":
		return s.Retries, true
	default:
		return nil, false
	}
}
