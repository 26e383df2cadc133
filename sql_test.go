package kind

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestID_Value(t *testing.T) {
	id, err := ParseDB[Customer](testDBID)
	require.NoError(t, err)

	v, err := id.Value()
	require.NoError(t, err)
	// The db form only: the column's schema carries the class.
	assert.Equal(t, testDBID, v)
}

func TestID_Scan(t *testing.T) {
	want, err := ParseDB[Customer](testDBID)
	require.NoError(t, err)

	tests := []struct {
		name string
		src  any
	}{
		{"string", testDBID},
		{"byte string", []byte(testDBID)},
		{"raw bytes", func() any { u := uuid.MustParse(testDBID); return u[:] }()},
		{"uuid", uuid.MustParse(testDBID)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var id ID[Customer]
			require.NoError(t, id.Scan(tt.src))
			assert.Equal(t, want, id)
		})
	}
}

func TestID_ScanEmpty(t *testing.T) {
	var id ID[Customer]
	require.ErrorIs(t, id.Scan(nil), ErrEmptyDBID)
	require.ErrorIs(t, id.Scan(""), ErrEmptyDBID)
	require.ErrorIs(t, id.Scan([]byte{}), ErrEmptyDBID)
}

func TestID_ScanMalformed(t *testing.T) {
	var id ID[Customer]
	require.ErrorIs(t, id.Scan("not-a-uuid"), ErrInvalidFormat)
	require.ErrorIs(t, id.Scan(42), ErrInvalidFormat)
	// The public form is not a database value.
	require.ErrorIs(t, id.Scan(testPublicID), ErrInvalidFormat)
}

func TestID_ValueScanRoundTrip(t *testing.T) {
	id := NewID[Customer]()

	v, err := id.Value()
	require.NoError(t, err)

	var back ID[Customer]
	require.NoError(t, back.Scan(v))
	assert.Equal(t, id, back)
}
