package match

import (
	"strings"
	"unicode"
)

// NormalizeIdent case-folds an identifier and drops '_', '-' and spaces.
func NormalizeIdent(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '_' || r == '-' || r == ' ' {
			return -1
		}

		return unicode.ToLower(r)
	}, s)
}

// NormalizeTypeRef reduces a type reference to its bare, normalized name:
// array suffixes and the type collection are dropped.
//   - "joynr.types.TestTypes.TStruct[]" -> "tstruct"
//   - "TypeDefForTEnum" -> "typedeffortenum"
func NormalizeTypeRef(ref string) string {
	ref = strings.TrimSpace(ref)
	for strings.HasSuffix(ref, "[]") {
		ref = strings.TrimSuffix(ref, "[]")
	}

	if i := strings.LastIndex(ref, "."); i >= 0 {
		ref = ref[i+1:]
	}

	return NormalizeIdent(ref)
}
