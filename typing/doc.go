// Package typing validates runtime values against declared member types.
//
// Values crossing a process or transport boundary are decoded into tagged
// values (generated records, or the dynamic Struct, Enum and Map types of this
// package). Each tagged value carries its type name, so member types are
// checked nominally by comparing names rather than by structure.
//
//	checker := typing.NewChecker()
//	err := checker.CheckMembers(instance, descriptor, checker.CheckPropertyIfDefined)
//
// The first mismatching member is reported as a *TypeMismatchError:
//
//	members.typeDefForPrimitive is not of type Number. Actual type is String
package typing
