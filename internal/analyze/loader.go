package analyze

import (
	"cmp"
	"errors"
	"fmt"
	"go/constant"
	"go/types"
	"reflect"
	"slices"

	"github.com/rs/zerolog"
	"golang.org/x/tools/go/packages"

	"capability-typing/typesys"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

var ErrUnsupportedType = errors.New("type has no interface definition equivalent")

// Analyzer loads generated Go packages and derives type descriptors from them.
type Analyzer struct {
	logger    zerolog.Logger
	registry  *typesys.Registry
	packages  map[string]*PackageInfo
	typeCache map[types.Object]*typesys.TypeInfo // handles recursive types
	enums     map[*types.TypeName][]string
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithLogger sets the logger for skipped declarations.
func WithLogger(logger zerolog.Logger) Option {
	return func(a *Analyzer) {
		a.logger = logger
	}
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer(opts ...Option) *Analyzer {
	a := &Analyzer{
		logger:    zerolog.Nop(),
		registry:  typesys.NewRegistry(),
		packages:  make(map[string]*PackageInfo),
		typeCache: make(map[types.Object]*typesys.TypeInfo),
		enums:     make(map[*types.TypeName][]string),
	}
	for _, opt := range opts {
		opt(a)
	}

	return a
}

// LoadPackages loads the specified packages and registers their named types.
// Patterns are standard Go package patterns (e.g., "./types/...").
func (a *Analyzer) LoadPackages(patterns ...string) (*typesys.Registry, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	// Check for package errors
	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %w", errors.Join(errs...))
	}

	for _, pkg := range pkgs {
		if err := a.processPackage(pkg.Types); err != nil {
			return nil, fmt.Errorf("failed to process package %s: %w", pkg.PkgPath, err)
		}
	}

	return a.registry, nil
}

// Registry returns the descriptors registered so far.
func (a *Analyzer) Registry() *typesys.Registry {
	return a.registry
}

// Packages returns the processed packages ordered by import path.
func (a *Analyzer) Packages() []*PackageInfo {
	out := make([]*PackageInfo, 0, len(a.packages))
	for _, p := range a.packages {
		out = append(out, p)
	}

	slices.SortFunc(out, func(x, y *PackageInfo) int { return cmp.Compare(x.Path, y.Path) })

	return out
}

// processPackage registers the exported named types of a package.
func (a *Analyzer) processPackage(pkg *types.Package) error {
	if _, done := a.packages[pkg.Path()]; done {
		return nil
	}

	pkgInfo := &PackageInfo{
		Path:       pkg.Path(),
		Name:       pkg.Name(),
		Collection: collectionOf(pkg),
		Version:    versionOf(pkg),
	}
	a.packages[pkg.Path()] = pkgInfo

	scope := pkg.Scope()
	for _, name := range scope.Names() {
		// Only process exported type names (not variables, constants, functions)
		typeName, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || !typeName.Exported() {
			continue
		}

		info, err := a.analyzeTypeName(typeName, NewTypePath(name))
		if errors.Is(err, ErrUnsupportedType) {
			a.logger.Debug().Str("type", pkg.Path()+"."+name).Err(err).Msg("skipping declaration")
			continue
		}
		if err != nil {
			return err
		}

		pkgInfo.Types = append(pkgInfo.Types, info.ID)
	}

	for _, id := range pkgInfo.Types {
		if err := a.registry.Register(a.typeCache[scope.Lookup(id.Name)]); err != nil {
			return err
		}
	}

	if len(pkgInfo.Types) > 0 {
		return a.registry.SetCollectionVersion(pkgInfo.Collection, pkgInfo.Version)
	}

	return nil
}

// analyzeTypeName returns the descriptor of a declared type or alias.
func (a *Analyzer) analyzeTypeName(obj *types.TypeName, path *TypePath) (*typesys.TypeInfo, error) {
	// Check cache to handle recursive types
	if cached, ok := a.typeCache[obj]; ok {
		return cached, nil
	}

	pkg := obj.Pkg()
	if pkg == nil {
		return nil, fmt.Errorf("%w: predeclared %s at %s", ErrUnsupportedType, obj.Name(), path)
	}

	info := &typesys.TypeInfo{
		ID:      typesys.TypeID{Package: collectionOf(pkg), Name: obj.Name()},
		Version: versionOf(pkg),
	}

	// Pre-cache to handle recursive types (we'll fill in details)
	a.typeCache[obj] = info

	var err error
	if alias, ok := obj.Type().(*types.Alias); ok {
		info.Kind = typesys.TypeKindTypedef
		info.Underlying, err = a.analyzeType(alias.Rhs(), path)
	} else {
		err = a.analyzeNamedType(obj, info, path)
	}

	if err != nil {
		delete(a.typeCache, obj)
		return nil, err
	}

	return info, nil
}

// analyzeNamedType fills info from the underlying type of a defined type.
func (a *Analyzer) analyzeNamedType(obj *types.TypeName, info *typesys.TypeInfo, path *TypePath) error {
	switch ut := obj.Type().Underlying().(type) {
	case *types.Struct:
		info.Kind = typesys.TypeKindStruct
		return a.analyzeStructFields(ut, info, path)

	case *types.Map:
		key, ok := ut.Key().Underlying().(*types.Basic)
		if !ok || key.Info()&types.IsString == 0 {
			return fmt.Errorf("%w: map key %s at %s", ErrUnsupportedType, ut.Key(), path)
		}

		info.Kind = typesys.TypeKindMap
		elem, err := a.analyzeType(ut.Elem(), path.Field("value"))
		info.ElemType = elem

		return err

	case *types.Basic:
		// type TEnum string with declared constants is an enumeration
		if literals := a.enumLiterals(obj); len(literals) > 0 {
			info.Kind = typesys.TypeKindEnum
			info.Literals = literals

			return nil
		}

		prim, err := primitiveOf(ut, path)
		if err != nil {
			return err
		}

		info.Kind = typesys.TypeKindTypedef
		info.Underlying = typesys.PrimitiveType(prim)

		return nil

	case *types.Slice, *types.Array:
		info.Kind = typesys.TypeKindTypedef
		elem, err := a.analyzeType(ut, path)
		info.Underlying = elem

		return err

	default:
		return fmt.Errorf("%w: %s at %s", ErrUnsupportedType, ut, path)
	}
}

// analyzeType returns the descriptor of a member type.
func (a *Analyzer) analyzeType(t types.Type, path *TypePath) (*typesys.TypeInfo, error) {
	switch tt := t.(type) {
	case *types.Alias:
		return a.analyzeTypeName(tt.Obj(), path)

	case *types.Named:
		return a.analyzeTypeName(tt.Obj(), path)

	case *types.Basic:
		prim, err := primitiveOf(tt, path)
		if err != nil {
			return nil, err
		}

		return typesys.PrimitiveType(prim), nil

	case *types.Pointer:
		return a.analyzeType(tt.Elem(), path.Pointer())

	case *types.Slice:
		elem, err := a.analyzeType(tt.Elem(), path.Slice())
		if err != nil {
			return nil, err
		}

		return typesys.ArrayOf(elem), nil

	case *types.Array:
		elem, err := a.analyzeType(tt.Elem(), path.Slice())
		if err != nil {
			return nil, err
		}

		return typesys.ArrayOf(elem), nil

	default:
		// Anonymous maps, interfaces, channels, etc. have no equivalent
		return nil, fmt.Errorf("%w: %s at %s", ErrUnsupportedType, t, path)
	}
}

// analyzeStructFields extracts members from a struct type. Fields of embedded
// structs without a json name are promoted, as encoding/json does.
func (a *Analyzer) analyzeStructFields(st *types.Struct, info *typesys.TypeInfo, path *TypePath) error {
	for i := range st.NumFields() {
		field := st.Field(i)
		if !field.Exported() {
			continue
		}

		tag := parseJSONTag(field.Name(), reflect.StructTag(st.Tag(i)), field.Embedded())
		if tag.Skip {
			continue
		}

		if tag.Inline {
			embedded, ok := field.Type().Underlying().(*types.Struct)
			if !ok {
				return fmt.Errorf("%w: embedded %s at %s", ErrUnsupportedType, field.Type(), path)
			}

			if err := a.analyzeStructFields(embedded, info, path); err != nil {
				return err
			}

			continue
		}

		memberType, err := a.analyzeType(field.Type(), path.Field(tag.Name))
		if err != nil {
			return err
		}

		_, isPointer := field.Type().(*types.Pointer)

		info.Members = append(info.Members, typesys.MemberInfo{
			Name:     tag.Name,
			Type:     memberType,
			Optional: tag.OmitEmpty || isPointer,
			Index:    len(info.Members),
		})
	}

	return nil
}

// enumLiterals returns the string constants of type obj in declaration order.
func (a *Analyzer) enumLiterals(obj *types.TypeName) []string {
	if literals, ok := a.enums[obj]; ok {
		return literals
	}

	scope := obj.Pkg().Scope()

	var consts []*types.Const
	for _, name := range scope.Names() {
		c, ok := scope.Lookup(name).(*types.Const)
		if !ok || c.Val().Kind() != constant.String {
			continue
		}

		if named, ok := c.Type().(*types.Named); ok && named.Obj() == obj {
			consts = append(consts, c)
		}
	}

	slices.SortFunc(consts, func(x, y *types.Const) int { return cmp.Compare(x.Pos(), y.Pos()) })

	literals := make([]string, 0, len(consts))
	for _, c := range consts {
		literals = append(literals, constant.StringVal(c.Val()))
	}

	a.enums[obj] = literals

	return literals
}

func primitiveOf(b *types.Basic, path *TypePath) (typesys.PrimitiveKind, error) {
	switch info := b.Info(); {
	case info&types.IsBoolean != 0:
		return typesys.PrimitiveBoolean, nil
	case info&types.IsString != 0:
		return typesys.PrimitiveString, nil
	case info&(types.IsInteger|types.IsFloat) != 0:
		return typesys.PrimitiveNumber, nil
	default:
		return 0, fmt.Errorf("%w: %s at %s", ErrUnsupportedType, b, path)
	}
}

// collectionOf returns the TypeCollection constant of pkg, or its import path.
func collectionOf(pkg *types.Package) string {
	if c, ok := pkg.Scope().Lookup(CollectionConst).(*types.Const); ok && c.Val().Kind() == constant.String {
		return constant.StringVal(c.Val())
	}

	return pkg.Path()
}

// versionOf returns the MajorVersion/MinorVersion constants of pkg.
func versionOf(pkg *types.Package) typesys.SchemaVersion {
	return typesys.SchemaVersion{
		Major: uintConst(pkg, MajorVersionConst),
		Minor: uintConst(pkg, MinorVersionConst),
	}
}

func uintConst(pkg *types.Package, name string) uint32 {
	c, ok := pkg.Scope().Lookup(name).(*types.Const)
	if !ok || c.Val().Kind() != constant.Int {
		return 0
	}

	v, exact := constant.Uint64Val(c.Val())
	if !exact || v > uint64(^uint32(0)) {
		return 0
	}

	return uint32(v)
}
