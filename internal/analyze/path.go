package analyze

import (
	"strings"

	"capability-typing/typesys"
)

// TypePath builds a readable path string for a member.
// Examples:
//   - "TStruct" for a type
//   - "TStruct.tDouble" for a member
//   - "TStructWithTypedefMembers.arrayOfTypeDefForTStruct[]" for array elements
//   - "TStructWithTypedefMembers.arrayOfTypeDefForTStruct[].tDouble" for members of elements
type TypePath struct {
	parts []string
}

// NewTypePath creates a new TypePath from a root type name.
func NewTypePath(root string) *TypePath {
	return &TypePath{
		parts: []string{root},
	}
}

// Field appends a member name to the path.
func (p *TypePath) Field(name string) *TypePath {
	return &TypePath{
		parts: append(append([]string{}, p.parts...), name),
	}
}

// Slice appends an element indicator "[]" to the path.
func (p *TypePath) Slice() *TypePath {
	return p.suffix("[]")
}

// Pointer marks the last part as optional with "*".
func (p *TypePath) Pointer() *TypePath {
	if len(p.parts) == 0 {
		return &TypePath{parts: []string{"*"}}
	}

	newParts := make([]string, len(p.parts))
	copy(newParts, p.parts)
	newParts[len(newParts)-1] = "*" + newParts[len(newParts)-1]

	return &TypePath{parts: newParts}
}

func (p *TypePath) suffix(s string) *TypePath {
	if len(p.parts) == 0 {
		return &TypePath{parts: []string{s}}
	}

	newParts := make([]string, len(p.parts))
	copy(newParts, p.parts)
	newParts[len(newParts)-1] += s

	return &TypePath{parts: newParts}
}

// String returns the full path string.
func (p *TypePath) String() string {
	return strings.Join(p.parts, ".")
}

// MemberPaths returns every member path reachable from a struct descriptor,
// mapped to the declared member type. Typedefs are followed, recursion stops
// at maxDepth nested structs.
func MemberPaths(root *typesys.TypeInfo, maxDepth int) map[string]*typesys.TypeInfo {
	result := make(map[string]*typesys.TypeInfo)
	if root == nil {
		return result
	}

	rootName := root.ID.Name
	if rootName == "" {
		rootName = "root"
	}

	collectMemberPaths(root, NewTypePath(rootName), result, 0, maxDepth)

	return result
}

func collectMemberPaths(t *typesys.TypeInfo, path *TypePath, result map[string]*typesys.TypeInfo, depth, maxDepth int) {
	if depth > maxDepth {
		return
	}

	resolved, err := typesys.Resolve(t, 0)
	if err != nil || resolved == nil {
		return
	}

	switch resolved.Kind {
	case typesys.TypeKindStruct:
		for i := range resolved.Members {
			member := &resolved.Members[i]
			memberPath := path.Field(member.Name)

			result[memberPath.String()] = member.Type
			collectMemberPaths(member.Type, memberPath, result, depth+1, maxDepth)
		}

	case typesys.TypeKindArray:
		collectMemberPaths(resolved.ElemType, path.Slice(), result, depth, maxDepth)

	default:
		// Primitives, enums and maps have no members
	}
}
