// Package resolver classifies tokenized field types as primitive or
// compound and fully qualifies compound references against the declaring
// package.
package resolver

import (
	"strings"

	"github.com/golangros/gorosidl/ifc"
	"github.com/golangros/gorosidl/internal/scanner"
)

const msgNamespace = "/msg/"

// Resolve tokenizes one raw field line and resolves its type against the
// declaring package. ok is false when the line carries no field (comment,
// constant, blank, or otherwise insignificant). The returned name may be
// empty when the line held only a type token.
//
// Primitive tokens pass through untouched. Compound tokens lacking a
// package qualifier default to the declaring package; qualified tokens
// are used verbatim. Array-ness survives as a single marker with no size
// information.
func Resolve(line, declaringPackage string) (name string, t ifc.Type, ok bool) {
	typeToken, name := scanner.Split(line)
	if typeToken == "" {
		return "", ifc.Type{}, false
	}

	if ifc.IsPrimitive(typeToken) {
		base := strings.TrimSuffix(typeToken, "[]")
		return name, ifc.Type{
			Kind:    ifc.Primitive,
			Name:    base,
			IsArray: base != typeToken,
		}, true
	}

	ref := strings.ReplaceAll(typeToken, "[]", "")
	isArray := ref != typeToken

	pkg, iface := declaringPackage, ref
	if i := strings.Index(ref, msgNamespace); i >= 0 {
		pkg, iface = ref[:i], ref[i+len(msgNamespace):]
	}
	return name, ifc.Type{
		Kind:    ifc.Reference,
		Name:    iface,
		Package: pkg,
		IsArray: isArray,
	}, true
}
