// Package pgid binds typed identifiers to pgx's native UUID type.
//
// A column declared as uuid in Postgres already scopes its rows to one entity
// type, so values moving through this package take the trusted path: no class
// check happens on decode, mirroring kind.ParseDB. Keep these conversions on
// the storage side of the application; anything user-facing goes through the
// public form.
//
// Binding a single id:
//
//	row := conn.QueryRow(ctx, `SELECT name FROM customers WHERE id = $1`, pgid.UUID(id))
//
// Binding a set of ids with the ANY operator:
//
//	rows, err := conn.Query(ctx, `SELECT ... WHERE id = ANY($1)`, pgid.UUIDs(ids))
package pgid

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/zero-day-ai/kind"
)

// UUID converts a typed identifier into a pgtype.UUID for use as a query
// argument.
func UUID[T kind.Identifiable](id kind.ID[T]) pgtype.UUID {
	return pgtype.UUID{Bytes: [16]byte(id.UUID()), Valid: true}
}

// ID converts a scanned pgtype.UUID into a typed identifier. NULL values
// yield kind.ErrEmptyDBID.
func ID[T kind.Identifiable](u pgtype.UUID) (kind.ID[T], error) {
	if !u.Valid {
		return kind.ID[T]{}, kind.ErrEmptyDBID
	}
	return kind.FromUUID[T](uuid.UUID(u.Bytes)), nil
}

// UUIDs converts a slice of typed identifiers for binding, typically with the
// ANY operator.
func UUIDs[T kind.Identifiable](ids []kind.ID[T]) []pgtype.UUID {
	out := make([]pgtype.UUID, len(ids))
	for i, id := range ids {
		out[i] = UUID(id)
	}
	return out
}

// IDs converts a slice of scanned pgtype.UUID values into typed identifiers,
// failing on the first NULL with kind.ErrEmptyDBID.
func IDs[T kind.Identifiable](us []pgtype.UUID) ([]kind.ID[T], error) {
	out := make([]kind.ID[T], len(us))
	for i, u := range us {
		id, err := ID[T](u)
		if err != nil {
			return nil, err
		}
		out[i] = id
	}
	return out, nil
}
