package kind

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIded_Accessors(t *testing.T) {
	id := NewID[Customer]()
	ided := NewIded(id, Customer{Name: "John"})

	assert.Equal(t, id, ided.ID())
	assert.Equal(t, "John", ided.Entity().Name)

	ided.EntityMut().Name = "Jane"
	assert.Equal(t, "Jane", ided.Entity().Name)

	gotID, entity := ided.Dismantle()
	assert.Equal(t, id, gotID)
	assert.Equal(t, "Jane", entity.Name)

	assert.Equal(t, "Jane", ided.TakeEntity().Name)
}

func TestIded_EqualityIsIdentityBased(t *testing.T) {
	id := NewID[Customer]()
	other := NewID[Customer]()

	// Same id, different payloads: the same entity.
	a := NewIded(id, Customer{Name: "John"})
	b := NewIded(id, Customer{Name: "Jane"})
	assert.True(t, a.Equal(b))

	// Different ids, equal payloads: not the same entity.
	c := NewIded(other, Customer{Name: "John"})
	assert.False(t, a.Equal(c))
}

func TestSortIdedByEntity(t *testing.T) {
	// Ordering is payload-based, the opposite of Equal: ids never
	// participate.
	s := []Ided[Customer, Customer]{
		NewIded(NewID[Customer](), Customer{Name: "Charlie"}),
		NewIded(NewID[Customer](), Customer{Name: "Alice"}),
		NewIded(NewID[Customer](), Customer{Name: "Bob"}),
	}

	SortIdedByEntity(s, func(a, b Customer) bool { return a.Name < b.Name })

	names := []string{s[0].Entity().Name, s[1].Entity().Name, s[2].Entity().Name}
	assert.Equal(t, []string{"Alice", "Bob", "Charlie"}, names)
}

func TestIded_MarshalJSON(t *testing.T) {
	id, err := ParseDB[Customer](testDBID)
	require.NoError(t, err)
	ided := NewIded(id, Customer{Name: "John"})

	out, err := json.Marshal(ided)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"Cust_371c35ec-34d9-4315-ab31-7ea8889a419a","name":"John"}`, string(out))
}

func TestIded_UnmarshalJSON(t *testing.T) {
	input := `{
		"id": "Cust_371c35ec-34d9-4315-ab31-7ea8889a419a",
		"name": "John"
	}`

	var ided Ided[Customer, Customer]
	require.NoError(t, json.Unmarshal([]byte(input), &ided))
	assert.Equal(t, "John", ided.Entity().Name)
	assert.Equal(t, testPublicID, ided.ID().PublicID())
}

func TestIded_JSONRoundTrip(t *testing.T) {
	ided := NewIded(NewID[Customer](), Customer{Name: "John"})

	out, err := json.Marshal(ided)
	require.NoError(t, err)

	var back Ided[Customer, Customer]
	require.NoError(t, json.Unmarshal(out, &back))
	assert.True(t, ided.Equal(back))
	assert.Equal(t, ided.Entity(), back.Entity())
}

func TestIded_UnmarshalJSONChecksClass(t *testing.T) {
	// The id field goes through the untrusted parse path.
	input := `{
		"id": "Cont_371c35ec-34d9-4315-ab31-7ea8889a419a",
		"name": "John"
	}`

	var ided Ided[Customer, Customer]
	err := json.Unmarshal([]byte(input), &ided)
	require.ErrorIs(t, err, ErrWrongClass)
}

func TestIded_UnmarshalJSONMissingID(t *testing.T) {
	var ided Ided[Customer, Customer]
	err := json.Unmarshal([]byte(`{"name":"John"}`), &ided)
	require.ErrorIs(t, err, ErrInvalidFormat)
}

func TestIded_MarshalJSONRequiresObjectEntity(t *testing.T) {
	ided := NewIded(NewID[Customer](), 42)
	_, err := json.Marshal(ided)
	require.Error(t, err)
}
