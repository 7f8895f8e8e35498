// Package typesys describes the declared types of generated records.
//
// Generated types are compiled from interface definitions into a closed set
// of descriptors that the runtime checker understands:
//
//   - Primitive: Number, String or Boolean
//   - Struct: named compound type with ordered member declarations
//   - Enum: named set of literals
//   - Map: named string-keyed map with a value type
//   - Typedef: named alias for another declared type
//   - Array: sequence of an element type
//
// Key types:
//   - TypeID: type collection (package) + type name
//   - TypeInfo: descriptor of a single declared type
//   - Registry: name -> descriptor lookup, populated at startup and sealed
package typesys
