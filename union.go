package kind

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Union is a declared, ordered set of classes over which a discriminated
// identifier can range. Declare it once, next to the classes it covers:
//
//	var PetID = kind.NewUnion(ClassDog, ClassCat)
//
// and parse values whose class is any one of the declared kinds:
//
//	id, err := PetID.ParsePublic("Dog_453d6f99-ce09-4dd7-bde9-73c1d2dbc1d0")
//
// A Union is immutable and safe for concurrent use.
type Union struct {
	classes []Class
}

// NewUnion declares a union over the given classes. Declaration order is the
// order ParsePublic tries each class. NewUnion panics when the list is empty
// or two classes share a prefix: like NewClass, a malformed declaration is a
// programming error surfaced at startup.
func NewUnion(classes ...Class) Union {
	if len(classes) == 0 {
		panic("kind: union must declare at least one class")
	}
	seen := make(map[string]struct{}, len(classes))
	for _, c := range classes {
		p := strings.ToLower(c.Prefix())
		if _, dup := seen[p]; dup {
			panic(fmt.Sprintf("kind: duplicate class %q in union", c.Prefix()))
		}
		seen[p] = struct{}{}
	}
	return Union{classes: append([]Class(nil), classes...)}
}

// Classes returns the declared classes in declaration order.
func (u Union) Classes() []Class {
	return append([]Class(nil), u.classes...)
}

// ParsePublic parses a public identifier whose class may be any of the
// declared ones. Classes are tried in declaration order; the first whose
// prefix matches decides the outcome. A recognized-but-malformed value fails
// immediately with ErrInvalidFormat rather than being tried against the
// remaining classes, so a typo in a known class's value cannot be mistaken
// for a different class. When no declared class matches, ParsePublic fails
// with ErrWrongClass.
func (u Union) ParsePublic(s string) (AnyID, error) {
	for _, c := range u.classes {
		rest, err := c.StripPrefix(s)
		if errors.Is(err, ErrWrongClass) {
			continue
		}
		if err != nil {
			return AnyID{}, err
		}
		value, err := parseHyphenated(rest)
		if err != nil {
			return AnyID{}, err
		}
		return AnyID{class: c, uuid: value}, nil
	}
	return AnyID{}, ErrWrongClass
}

// AnyID is a discriminated identifier: one value of exactly one class out of
// a declared Union. It is only built by a successful Union.ParsePublic (or by
// Erase), so holding an AnyID implies its class and value were verified
// together. AnyID is a comparable value: two are equal when both class and
// value match.
//
// Recover the typed identifier with As:
//
//	if dogID, ok := kind.As[Dog](id); ok { ... }
type AnyID struct {
	class Class
	uuid  uuid.UUID
}

// Erase drops the compile-time class of a typed identifier, keeping it as the
// runtime discriminant.
func Erase[T Identifiable](id ID[T]) AnyID {
	return AnyID{class: ClassOf[T](), uuid: id.uuid}
}

// As recovers the typed identifier when a holds the class declared by T.
func As[T Identifiable](a AnyID) (ID[T], bool) {
	if a.class != ClassOf[T]() {
		return ID[T]{}, false
	}
	return ID[T]{uuid: a.uuid}, true
}

// Class returns the class of the held identifier.
func (a AnyID) Class() Class {
	return a.class
}

// Is reports whether the held identifier belongs to the given class.
func (a AnyID) Is(c Class) bool {
	return a.class == c
}

// UUID returns the raw 128-bit value.
func (a AnyID) UUID() uuid.UUID {
	return a.uuid
}

// PublicID renders the public form of whichever variant is held; the output
// is identical to what the typed identifier itself would render.
func (a AnyID) PublicID() string {
	return a.class.prefix + "_" + a.uuid.String()
}

// String returns the public form.
func (a AnyID) String() string {
	return a.PublicID()
}

// IsZero reports whether a is the zero value, which no successful parse
// produces.
func (a AnyID) IsZero() bool {
	return a.class == Class{}
}
