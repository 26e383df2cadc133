package kind

import (
	"database/sql/driver"

	"github.com/google/uuid"
)

// Value implements driver.Valuer, emitting the database form. The class
// prefix is never stored: the column's schema already scopes the type.
func (id ID[T]) Value() (driver.Value, error) {
	return id.DBID(), nil
}

// Scan implements sql.Scanner. Accepted sources are the hyphenated string
// form, its []byte equivalent, a raw 16-byte value, and uuid.UUID.
//
// Like ParseDB, Scan is a trusted path: the column is already scoped to one
// entity type, so no class check happens here. NULL and empty values yield
// ErrEmptyDBID; anything else malformed yields ErrInvalidFormat.
func (id *ID[T]) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		return ErrEmptyDBID
	case uuid.UUID:
		*id = FromUUID[T](v)
		return nil
	case string:
		if v == "" {
			return ErrEmptyDBID
		}
		parsed, err := ParseDB[T](v)
		if err != nil {
			return err
		}
		*id = parsed
		return nil
	case []byte:
		if len(v) == 0 {
			return ErrEmptyDBID
		}
		if len(v) == 16 {
			u, err := uuid.FromBytes(v)
			if err != nil {
				return ErrInvalidFormat
			}
			*id = FromUUID[T](u)
			return nil
		}
		return id.Scan(string(v))
	default:
		return ErrInvalidFormat
	}
}
