package kind

import (
	"bytes"

	"github.com/google/uuid"
)

// Identifiable is implemented by entity types that can be referred to with a
// typed identifier. The identifier may or may not be stored inside the entity
// itself.
//
// IDClass must be declared with a value receiver and must return the same
// Class for every instance; the usual shape is a one-liner returning a
// package-level Class built with NewClass.
type Identifiable interface {
	IDClass() Class
}

// ID is a 128-bit identifier bound to the entity type it identifies. The type
// parameter prevents an identifier of one entity kind from being passed where
// another kind is expected, even though both travel as plain strings or
// database values.
//
// An ID has two textual representations:
//
//   - the public form, "<prefix>_<hyphenated hex>", produced by PublicID and
//     String, used in JSON, URLs, logs, and anywhere outside the database;
//   - the database form, the bare hyphenated hex value, produced by DBID,
//     used only against a storage column whose schema already fixes the type.
//
// IDs are immutable values: copy them freely, compare them with ==, and use
// them as map keys. Two IDs are equal exactly when their underlying values
// are equal, however they were constructed.
type ID[T Identifiable] struct {
	uuid uuid.UUID
}

// ClassOf returns the class declared by entity type T.
func ClassOf[T Identifiable]() Class {
	var zero T
	return zero.IDClass()
}

// NewID mints a fresh identifier for T using the fully random UUID layout of
// RFC 4122 section 4.4: version and variant bits fixed, every other bit drawn
// from the process-wide random source.
func NewID[T Identifiable]() ID[T] {
	return ID[T]{uuid: uuid.New()}
}

// FromUUID builds an identifier from a raw UUID with no class check.
//
// This is the trusted constructor for codecs whose source is already bound to
// the right type, such as a database column constrained by schema. Never feed
// it values that crossed a trust boundary as text; those must go through
// ParsePublic so the class is verified.
func FromUUID[T Identifiable](u uuid.UUID) ID[T] {
	return ID[T]{uuid: u}
}

// ParsePublic parses an identifier from its public form, verifying both the
// class prefix and the value layout.
//
// This is the only parse path that validates class membership, and therefore
// the only one that should face input the caller does not already trust (API
// payloads, user-supplied references). Failures surface unchanged:
// ErrWrongClass when the prefix belongs to another class, ErrInvalidFormat
// when the separator or the hex layout is malformed.
func ParsePublic[T Identifiable](s string) (ID[T], error) {
	rest, err := ClassOf[T]().StripPrefix(s)
	if err != nil {
		return ID[T]{}, err
	}
	u, err := parseHyphenated(rest)
	if err != nil {
		return ID[T]{}, err
	}
	return ID[T]{uuid: u}, nil
}

// ParseDB parses an identifier from its database form, with no class check:
// the class is not embedded in this representation, so verifying it is
// structurally impossible here. That is a deliberate trust boundary, not an
// oversight — a column scoped to one entity type by schema cannot hold
// another class. Never expose this path to untrusted input; use ParsePublic
// there instead.
//
// ParseDB fails only with ErrInvalidFormat.
func ParseDB[T Identifiable](s string) (ID[T], error) {
	u, err := parseHyphenated(s)
	if err != nil {
		return ID[T]{}, err
	}
	return ID[T]{uuid: u}, nil
}

// parseHyphenated accepts the bare hyphenated form and nothing else: exactly
// 36 characters with dashes at the standard positions, hex case-insensitive.
// uuid.Parse alone would also take braced, URN, and compact layouts, which
// are not valid in either encoding.
func parseHyphenated(s string) (uuid.UUID, error) {
	if len(s) != 36 {
		return uuid.UUID{}, ErrInvalidFormat
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return uuid.UUID{}, ErrInvalidFormat
	}
	return u, nil
}

// Class returns the class of the identifier, as declared by T.
func (id ID[T]) Class() Class {
	return ClassOf[T]()
}

// UUID returns the raw 128-bit value. The bits carry no meaning beyond
// uniqueness.
func (id ID[T]) UUID() uuid.UUID {
	return id.uuid
}

// PublicID returns the public form, "<prefix>_<hyphenated hex>", with the
// prefix in its registered case and the hex in canonical lower case.
func (id ID[T]) PublicID() string {
	return ClassOf[T]().prefix + "_" + id.uuid.String()
}

// DBID returns the database form: the bare hyphenated hex value with no
// prefix. Use it only when binding to a column whose schema already fixes the
// entity type; everywhere else, PublicID.
func (id ID[T]) DBID() string {
	return id.uuid.String()
}

// String returns the public form.
func (id ID[T]) String() string {
	return id.PublicID()
}

// IsZero reports whether the identifier is the zero value. A zero ID is never
// produced by NewID or a successful parse.
func (id ID[T]) IsZero() bool {
	return id.uuid == uuid.UUID{}
}

// Compare orders two identifiers by their raw 128-bit values, returning -1,
// 0, or +1. This order agrees with lexicographic comparison of both textual
// forms: the hex rendering is byte-order preserving, and the class prefix is
// a shared constant that cannot change relative order within a type.
func (id ID[T]) Compare(other ID[T]) int {
	return bytes.Compare(id.uuid[:], other.uuid[:])
}

// Less reports whether id orders before other. See Compare.
func (id ID[T]) Less(other ID[T]) bool {
	return id.Compare(other) < 0
}
