package kind

import "log/slog"

// MarshalText renders the public form, so encoding/json and every other
// TextMarshaler-aware encoder serializes identifiers as class-prefixed
// strings.
func (id ID[T]) MarshalText() ([]byte, error) {
	return []byte(id.PublicID()), nil
}

// UnmarshalText parses the public form through ParsePublic: the class is
// verified, making this safe for untrusted input such as JSON payloads.
func (id *ID[T]) UnmarshalText(text []byte) error {
	parsed, err := ParsePublic[T](string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// LogValue renders the public form in structured logs.
func (id ID[T]) LogValue() slog.Value {
	return slog.StringValue(id.PublicID())
}

// MarshalText renders the public form of whichever variant is held.
func (a AnyID) MarshalText() ([]byte, error) {
	return []byte(a.PublicID()), nil
}

// LogValue renders the public form in structured logs.
func (a AnyID) LogValue() slog.Value {
	return slog.StringValue(a.PublicID())
}
