package typing

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/rs/zerolog"

	"capability-typing/typesys"
)

// CheckFunc checks a single value against its declared type. The path names
// the value in error messages. CheckMembers passes Undefined for absent members.
type CheckFunc func(value any, want *typesys.TypeInfo, path string) error

// Checker validates values against declared types. A Checker holds no mutable
// state and may be shared between goroutines.
type Checker struct {
	maxDepth int
	logger   zerolog.Logger
}

// Option configures a Checker.
type Option func(*Checker)

// WithMaxTypedefDepth bounds typedef-of-typedef chains.
func WithMaxTypedefDepth(depth int) Option {
	return func(c *Checker) {
		c.maxDepth = depth
	}
}

// WithLogger sets the logger used for mismatch diagnostics.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Checker) {
		c.logger = logger
	}
}

// NewChecker creates a Checker.
func NewChecker(opts ...Option) *Checker {
	c := &Checker{
		maxDepth: typesys.DefaultMaxTypedefDepth,
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// CheckMembers verifies, in declaration order, that every declared member of
// instance matches its declared type, using check for each member. It stops
// at the first mismatch. Optional members are only checked when defined.
func (c *Checker) CheckMembers(instance Record, schema *typesys.TypeInfo, check CheckFunc) error {
	if schema == nil || schema.Kind != typesys.TypeKindStruct {
		return fmt.Errorf("%w: %s", ErrNotAStruct, schema)
	}

	if check == nil {
		check = c.CheckProperty
	}

	for i := range schema.Members {
		member := &schema.Members[i]

		value, ok := instance.Member(member.Name)
		if !ok {
			value = Undefined
		}

		if member.Optional && !IsDefined(value) {
			continue
		}

		if err := check(value, member.Type, "members."+member.Name); err != nil {
			return err
		}
	}

	return nil
}

// CheckProperty is the strict CheckFunc: absent and nil values are mismatches.
func (c *Checker) CheckProperty(value any, want *typesys.TypeInfo, path string) error {
	err := c.checkValue(value, want, path)
	if err != nil {
		c.logMismatch(value, want, path, err)
	}

	return err
}

// CheckPropertyIfDefined is the lenient CheckFunc: absent and nil values pass.
func (c *Checker) CheckPropertyIfDefined(value any, want *typesys.TypeInfo, path string) error {
	if !IsDefined(value) {
		return nil
	}

	return c.CheckProperty(value, want, path)
}

// checkValue resolves typedefs of want and compares value against the result.
// Mismatches inside arrays are reported at path, without element index.
func (c *Checker) checkValue(value any, want *typesys.TypeInfo, path string) error {
	resolved, err := typesys.Resolve(want, c.maxDepth)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	if resolved == nil {
		return fmt.Errorf("%s: %w: no declared type", path, ErrUnsupportedKind)
	}

	value = indirect(value)

	switch resolved.Kind {
	case typesys.TypeKindArray:
		seq, ok := asSequence(value)
		if !ok {
			return mismatch(path, ActualArray, value)
		}

		for i := range seq.Len() {
			if err := c.checkValue(seq.Index(i).Interface(), resolved.ElemType, path); err != nil {
				return err
			}
		}

		return nil

	case typesys.TypeKindPrimitive:
		if k, ok := primitiveKindOf(value); !ok || k != resolved.Primitive {
			return mismatch(path, resolved.Name(), value)
		}

		return nil

	case typesys.TypeKindStruct, typesys.TypeKindEnum, typesys.TypeKindMap:
		typed, ok := value.(Typed)
		if !ok || isNull(value) || typed.TypeName() != resolved.ID.String() {
			return mismatch(path, resolved.Name(), value)
		}

		return nil

	default:
		return fmt.Errorf("%s: %w: %s", path, ErrUnsupportedKind, resolved.Kind)
	}
}

func (c *Checker) logMismatch(value any, want *typesys.TypeInfo, path string, err error) {
	e := c.logger.Debug()
	if !e.Enabled() {
		return
	}

	e.Str("path", path).
		Str("declared", want.String()).
		Str("value", spew.Sdump(value)).
		Err(err).
		Msg("member type check failed")
}
