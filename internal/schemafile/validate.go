package schemafile

import (
	"fmt"
	"slices"
	"strings"

	"capability-typing/internal/diagnostic"
	"capability-typing/internal/match"
)

// Diagnostic codes reported by Validate.
const (
	CodeDocumentNil        = "document_is_nil"
	CodeUnsupportedVersion = "unsupported_version"
	CodeMissingPackage     = "missing_package"
	CodeEmptyCollection    = "empty_collection"
	CodeMissingTypeName    = "missing_type_name"
	CodeDuplicateType      = "duplicate_type"
	CodeUnknownKind        = "unknown_kind"
	CodeDuplicateMember    = "duplicate_member"
	CodeMissingType        = "missing_type"
	CodeUnknownType        = "unknown_type"
	CodeEmptyEnum          = "empty_enum"
	CodeDuplicateLiteral   = "duplicate_literal"
	CodeTypedefCycle       = "typedef_cycle"
	CodeUnusedField        = "unused_field"
)

// Validate checks a document for problems that prevent building descriptors.
// It does not check the document structure; see CheckStructure.
func Validate(doc *Document) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if doc == nil {
		res.AddError(CodeDocumentNil, "schema document is nil", "", "")
		return res
	}

	if doc.Version != "" && doc.Version != CurrentVersion {
		res.AddError(CodeUnsupportedVersion,
			fmt.Sprintf("unsupported document version %q, want %q", doc.Version, CurrentVersion), "", "version")
	}

	ix := newDeclIndex(doc)
	validateDeclarations(res, doc)

	for i := range doc.Collections {
		c := &doc.Collections[i]
		for j := range c.Types {
			validateType(res, ix, c, &c.Types[j], typePath(i, j))
		}
	}

	validateTypedefCycles(res, ix)

	return res
}

// validateDeclarations reports missing names and duplicate declarations.
func validateDeclarations(res *diagnostic.Diagnostics, doc *Document) {
	seen := map[string]string{}

	for i := range doc.Collections {
		c := &doc.Collections[i]
		colPath := fmt.Sprintf("collections[%d]", i)

		if c.Package == "" {
			res.AddError(CodeMissingPackage, "collection has no package name", "", colPath)
		}

		if len(c.Types) == 0 {
			res.AddWarning(CodeEmptyCollection, "collection declares no types", c.Package, colPath)
		}

		for j := range c.Types {
			def := &c.Types[j]
			if def.Name == "" {
				res.AddError(CodeMissingTypeName, "type has no name", "", typePath(i, j))
				continue
			}

			q := c.QualifiedName(def.Name)
			if first, dup := seen[q]; dup {
				res.AddError(CodeDuplicateType,
					fmt.Sprintf("type %q is already declared at %s", q, first), q, typePath(i, j))

				continue
			}

			seen[q] = typePath(i, j)
		}
	}
}

func validateType(res *diagnostic.Diagnostics, ix *declIndex, c *Collection, def *TypeDef, path string) {
	q := c.QualifiedName(def.Name)

	switch def.Kind {
	case KindStruct:
		seen := map[string]struct{}{}
		for k, m := range def.Members {
			memberPath := fmt.Sprintf("%s.members[%d]", path, k)
			if _, dup := seen[m.Name]; dup {
				res.AddError(CodeDuplicateMember, fmt.Sprintf("member %q is declared twice", m.Name), q, memberPath)
			}

			seen[m.Name] = struct{}{}
			validateRef(res, ix, c, m.Type, q, memberPath)
		}

	case KindEnum:
		if len(def.Literals) == 0 {
			res.AddError(CodeEmptyEnum, "enumeration declares no literals", q, path)
		}

		seen := map[string]struct{}{}
		for _, lit := range def.Literals {
			if _, dup := seen[lit]; dup {
				res.AddError(CodeDuplicateLiteral, fmt.Sprintf("literal %q is declared twice", lit), q, path)
			}

			seen[lit] = struct{}{}
		}

	case KindMap:
		validateRef(res, ix, c, def.Value, q, path+".value")
	case KindTypedef:
		validateRef(res, ix, c, def.Type, q, path+".type")
	default:
		res.AddError(CodeUnknownKind, fmt.Sprintf("unknown kind %q", def.Kind), q, path+".kind",
			match.RankCandidates(def.Kind, Kinds()).AboveThreshold(match.DefaultMinScore).Names()...)

		return
	}

	warnUnused(res, def, q, path)
}

// warnUnused reports fields that the declared kind ignores.
func warnUnused(res *diagnostic.Diagnostics, def *TypeDef, typeName, path string) {
	set := map[string]bool{
		"members":  def.Members != nil,
		"literals": def.Literals != nil,
		"value":    def.Value != "",
		"type":     def.Type != "",
	}

	used := map[string]string{
		KindStruct:  "members",
		KindEnum:    "literals",
		KindMap:     "value",
		KindTypedef: "type",
	}[def.Kind]

	for _, field := range []string{"members", "literals", "value", "type"} {
		if set[field] && field != used {
			res.AddWarning(CodeUnusedField, fmt.Sprintf("%s is ignored for kind %s", field, def.Kind), typeName, path+"."+field)
		}
	}
}

// validateRef reports empty and unresolvable type references.
func validateRef(res *diagnostic.Diagnostics, ix *declIndex, c *Collection, raw, typeName, path string) {
	ref := ParseTypeRef(raw)
	if ref.Name == "" {
		res.AddError(CodeMissingType, "type reference is empty", typeName, path)
		return
	}

	if _, ok := primitiveOf(ref); ok {
		return
	}

	if _, ok := ix.resolve(ref.Name, c); ok {
		return
	}

	known := append(slices.Clone(primitiveNames), ix.names...)
	res.AddError(CodeUnknownType, fmt.Sprintf("unknown type %q", ref.Name), typeName, path,
		match.Suggest(ref.Name, known)...)
}

// validateTypedefCycles reports typedef chains that never reach a non-typedef.
// Each cycle is reported once, at its first declaration in name order.
func validateTypedefCycles(res *diagnostic.Diagnostics, ix *declIndex) {
	for _, q := range ix.names {
		start := ix.types[q]
		if start.def.Kind != KindTypedef {
			continue
		}

		chain := []string{start.qualified}
		current := start

		for {
			ref := ParseTypeRef(current.def.Type)
			if ref.Dims > 0 {
				break
			}

			next, ok := ix.resolve(ref.Name, current.collection)
			if !ok || next.def.Kind != KindTypedef {
				break
			}

			if next == start {
				if isFirstInCycle(q, chain) {
					res.AddError(CodeTypedefCycle,
						"typedef chain does not terminate: "+strings.Join(append(chain, q), " -> "), q, start.path+".type")
				}

				break
			}

			if slices.Contains(chain, next.qualified) {
				// start leads into a cycle it is not part of
				break
			}

			chain = append(chain, next.qualified)
			current = next
		}
	}
}

func isFirstInCycle(q string, cycle []string) bool {
	return slices.Min(cycle) == q
}

func typePath(collection, typ int) string {
	return fmt.Sprintf("collections[%d].types[%d]", collection, typ)
}
