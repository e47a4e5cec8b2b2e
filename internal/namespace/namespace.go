// Package namespace classifies destination field paths into the common ECS
// namespace or the vendor-specific RSA namespace.
package namespace

import "strings"

// DefaultPrefix marks RSA custom fields.
const DefaultPrefix = "rsa."

// Namespace identifies one of the two disjoint destination namespaces.
type Namespace int

const (
	ECS Namespace = iota
	RSA
)

// String returns the namespace name.
func (n Namespace) String() string {
	switch n {
	case ECS:
		return "ecs"
	case RSA:
		return "rsa"
	default:
		return "unknown"
	}
}

// Predicate selects destination paths.
type Predicate func(path string) bool

// Classifier splits destination paths by a reserved prefix. Paths are not
// otherwise validated: empty segments are accepted as-is.
type Classifier struct {
	prefix string
}

// NewClassifier returns a Classifier treating paths with prefix as RSA fields.
func NewClassifier(prefix string) Classifier {
	return Classifier{prefix: prefix}
}

// Default returns the Classifier for the "rsa." prefix.
func Default() Classifier {
	return NewClassifier(DefaultPrefix)
}

// Prefix returns the reserved RSA prefix.
func (c Classifier) Prefix() string {
	return c.prefix
}

// IsRSA reports whether path belongs to the RSA namespace.
func (c Classifier) IsRSA(path string) bool {
	return strings.HasPrefix(path, c.prefix)
}

// IsECS reports whether path belongs to the ECS namespace.
func (c Classifier) IsECS(path string) bool {
	return !c.IsRSA(path)
}

// Of returns the namespace of path.
func (c Classifier) Of(path string) Namespace {
	if c.IsRSA(path) {
		return RSA
	}

	return ECS
}

// Predicate returns the path filter for ns.
func (c Classifier) Predicate(ns Namespace) Predicate {
	if ns == RSA {
		return c.IsRSA
	}

	return c.IsECS
}
