package kind

import "fmt"

// Class describes one category of identifiable entities by its short
// alphanumeric prefix (for example "Cust" for customers).
//
// Exactly one Class should exist per entity kind for the lifetime of the
// process. Declare it once as a package-level variable and return it from
// the entity type's IDClass method:
//
//	var ClassCustomer = kind.NewClass("Cust")
//
//	type Customer struct {
//		Name string `json:"name"`
//	}
//
//	func (Customer) IDClass() kind.Class { return ClassCustomer }
//
// Never map the same class to two entity types; give each class to the most
// natural type for it. A Class is an immutable value and is safe to share
// across any number of goroutines.
type Class struct {
	prefix string
}

// NewClass creates a Class with the given prefix. It panics when the prefix
// is empty or contains a character outside [A-Za-z0-9]: a malformed class is
// a programming error caught at startup, not a runtime condition.
func NewClass(prefix string) Class {
	if prefix == "" {
		panic("kind: class prefix must not be empty")
	}
	for i := 0; i < len(prefix); i++ {
		if !isASCIIAlphanumeric(prefix[i]) {
			panic(fmt.Sprintf("kind: invalid character %q in class prefix %q", prefix[i], prefix))
		}
	}
	return Class{prefix: prefix}
}

// Prefix returns the registered prefix.
func (c Class) Prefix() string {
	return c.prefix
}

// String returns the registered prefix.
func (c Class) String() string {
	return c.prefix
}

// StripPrefix removes the class prefix and the underscore separator from a
// public identifier, returning the bare value part (the database form).
//
// The prefix comparison is ASCII case-insensitive, character by character.
// StripPrefix returns ErrWrongClass when the input is shorter than the prefix
// or any character differs, and ErrInvalidFormat when the prefix matches but
// the underscore separator is missing. The remainder is returned unvalidated;
// checking it is the parser's job.
func (c Class) StripPrefix(publicID string) (string, error) {
	if len(publicID) < len(c.prefix) {
		return "", ErrWrongClass
	}
	for i := 0; i < len(c.prefix); i++ {
		if lowerASCII(publicID[i]) != lowerASCII(c.prefix[i]) {
			return "", ErrWrongClass
		}
	}
	if len(publicID) == len(c.prefix) || publicID[len(c.prefix)] != '_' {
		return "", ErrInvalidFormat
	}
	return publicID[len(c.prefix)+1:], nil
}

func isASCIIAlphanumeric(b byte) bool {
	return b >= '0' && b <= '9' || b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z'
}

func lowerASCII(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}
