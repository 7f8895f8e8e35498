// Package analyze derives type descriptors from generated Go packages.
//
// It uses golang.org/x/tools/go/packages with go/types to map the declared
// Go types of a package onto the descriptors the runtime checker understands:
//
//   - named structs: struct descriptors, members named by their json tag
//   - named string types with constants: enumerations
//   - named string-keyed maps: map descriptors
//   - type aliases (type X = Y): typedefs
//   - slices and arrays: array descriptors
//
// The package constants TypeCollection, MajorVersion and MinorVersion name the
// type collection and its version.
package analyze
