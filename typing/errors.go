package typing

import (
	"errors"
	"fmt"
)

var (
	ErrTypeMismatch    = errors.New("type mismatch")
	ErrNotAStruct      = errors.New("schema is not a struct type")
	ErrUnsupportedKind = errors.New("unsupported declared type")
)

// TypeMismatchError reports the first member whose runtime type does not match
// its declared type.
type TypeMismatchError struct {
	Path     string // e.g. "members.typeDefForPrimitive"
	Expected string // e.g. "Number", "TStruct", "Array"
	Actual   string // e.g. "String"
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("%s is not of type %s. Actual type is %s", e.Path, e.Expected, e.Actual)
}

// Is makes errors.Is(err, ErrTypeMismatch) hold.
func (e *TypeMismatchError) Is(target error) bool {
	return target == ErrTypeMismatch
}

func mismatch(path, expected string, value any) *TypeMismatchError {
	return &TypeMismatchError{Path: path, Expected: expected, Actual: ObservedTypeName(value)}
}
