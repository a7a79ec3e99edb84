// Package resource implements Minecraft-style namespaced identifiers
// ("namespace:path"), as used to name block states throughout a
// Litematica schematic.
package resource

import (
	"strings"

	"github.com/brinewood/ritematica/errs"
)

// DefaultNamespace is used when parsing an identifier with no explicit
// namespace ("stone" is equivalent to "minecraft:stone").
const DefaultNamespace = "minecraft"

// ID is a namespaced identifier of the form "namespace:path".
type ID struct {
	namespace string
	path      string
}

// New validates and builds an ID from its two parts.
func New(namespace, path string) (ID, error) {
	if !isValidNamespace(namespace) {
		return ID{}, errs.New(errs.InvalidID, "resource.New", invalidNamespace(namespace))
	}
	if !isValidPath(path) {
		return ID{}, errs.New(errs.InvalidID, "resource.New", invalidPath(path))
	}
	return ID{namespace: namespace, path: path}, nil
}

// Minecraft builds an ID in the default "minecraft" namespace.
func Minecraft(path string) (ID, error) {
	return New(DefaultNamespace, path)
}

// MustParse is like Parse but panics on error. Intended for tests and
// package-level literals where the input is known to be valid.
func MustParse(s string) ID {
	id, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return id
}

// Parse splits s at the first ':' into namespace and path. An id with no
// ':' is treated as a bare path in the default namespace.
func Parse(s string) (ID, error) {
	if idx := strings.IndexByte(s, ':'); idx >= 0 {
		return New(s[:idx], s[idx+1:])
	}
	return New(DefaultNamespace, s)
}

// Namespace returns the namespace component.
func (id ID) Namespace() string { return id.namespace }

// Path returns the path component.
func (id ID) Path() string { return id.path }

// String renders the canonical "namespace:path" form.
func (id ID) String() string {
	return id.namespace + ":" + id.path
}

// Compare orders a before b lexicographically by namespace then path.
// It matches the ordering used by Rust's derived Ord in the original
// implementation.
func Compare(a, b ID) int {
	if c := strings.Compare(a.namespace, b.namespace); c != 0 {
		return c
	}
	return strings.Compare(a.path, b.path)
}

// Less reports whether id sorts before other.
func (id ID) Less(other ID) bool {
	return Compare(id, other) < 0
}

func isValidNamespace(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !isNamespaceRune(r) {
			return false
		}
	}
	return true
}

func isValidPath(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !isPathRune(r) {
			return false
		}
	}
	return true
}

func isNamespaceRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z':
		return true
	case r >= 'A' && r <= 'Z':
		return true
	case r >= '0' && r <= '9':
		return true
	case r == '_' || r == '-' || r == '.':
		return true
	default:
		return false
	}
}

func isPathRune(r rune) bool {
	return isNamespaceRune(r) || r == '/'
}

func invalidNamespace(s string) error {
	return &validationError{what: "namespace", value: s}
}

func invalidPath(s string) error {
	return &validationError{what: "path", value: s}
}

type validationError struct {
	what  string
	value string
}

func (e *validationError) Error() string {
	return "invalid " + e.what + ": " + "\"" + e.value + "\""
}
