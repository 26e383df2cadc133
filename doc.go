// Package kind provides strongly-typed 128-bit identifiers: an ID carries
// the entity class it identifies in its type, so an identifier for one kind
// of entity cannot be silently substituted for another, even though both
// travel as plain strings or database values.
//
// A typed ID also protects every string-based boundary, such as REST or
// GraphQL, by prefixing the public representation with a short class prefix.
//
// # Declaring a class
//
// Each entity type declares its class once, as a package-level value, and
// returns it from IDClass:
//
//	var ClassCustomer = kind.NewClass("Cust")
//
//	type Customer struct {
//		Name string `json:"name"`
//	}
//
//	func (Customer) IDClass() kind.Class { return ClassCustomer }
//
// # Two representations
//
// An identifier renders two ways. The public form carries the class prefix
// and is the one to use in JSON, URLs, logs, and every boundary outside the
// storage layer:
//
//	id, _ := kind.ParseDB[Customer]("371c35ec-34d9-4315-ab31-7ea8889a419a")
//	id.PublicID() // "Cust_371c35ec-34d9-4315-ab31-7ea8889a419a"
//
// The database form is the bare value with no prefix, used only against a
// column whose schema already fixes the entity type:
//
//	id.DBID() // "371c35ec-34d9-4315-ab31-7ea8889a419a"
//
// Parsing mirrors the same split. ParsePublic verifies the class and is the
// entry point for untrusted input; parsing a customer's public id as a
// contract id fails with ErrWrongClass:
//
//	_, err := kind.ParsePublic[Contract]("Cust_371c35ec-34d9-4315-ab31-7ea8889a419a")
//	errors.Is(err, kind.ErrWrongClass) // true
//
// The prefix check is ASCII case-insensitive, so "cust_…" and "CUST_…" parse
// to the same identifier. ParseDB performs no class check, because the class
// is not embedded in that form; keep it away from untrusted input.
//
// # Composition
//
// Ided pairs an entity with its identifier and serializes the entity's
// fields flattened beside an "id" field. Union declares a fixed list of
// classes and parses "any one of these kinds" into an AnyID, guessing the
// class from the prefix.
//
// Schema descriptions of the public form for documentation tooling live in
// the schema and openapi subpackages; native Postgres binding lives in pgid.
package kind
