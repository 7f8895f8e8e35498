// Package schemafile handles interface definition documents: YAML (or JSON)
// files declaring type collections with their structs, enums, maps and
// typedefs.
//
// Example document:
//
//	version: "1"
//	collections:
//	  - package: joynr.types.TestTypes
//	    version: {major: 49, minor: 13}
//	    types:
//	      - name: TStruct
//	        kind: struct
//	        members:
//	          - {name: tDouble, type: Double}
//	          - {name: tString, type: String}
//	      - name: TEnum
//	        kind: enum
//	        literals: [TLITERALA, TLITERALB]
//	      - name: TStringKeyMap
//	        kind: map
//	        value: String
//	      - name: TypeDefForTStruct
//	        kind: typedef
//	        type: TStruct
//
// Type references are primitive names (Int8..Int64, UInt8..UInt64, Float,
// Double, Number, String, Boolean, ByteBuffer), declared type names (full,
// collection suffix or bare) and "T[]" for arrays of T.
//
// Processing steps:
//  1. CheckStructure: JSON schema check of the raw document
//  2. Parse / LoadFile: decode into a Document
//  3. Validate: semantic checks, reported as diagnostics
//  4. Build: descriptors in a typesys.Registry
//
// Export turns a registry back into a Document.
package schemafile
