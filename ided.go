package kind

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Ided (short for "identified") pairs an entity with its identifier. The
// usual shape wraps an entity with its own id, as in Ided[Invoice, Invoice],
// but the entity type may also differ from the identified one, as in
// Ided[Invoice, InvoiceExpanded], when the payload is an expanded view keyed
// by the base type's id.
//
// Equality is identity-based while ordering is payload-based, and the two
// deliberately disagree:
//
//   - Equal compares ids only. Two Ided values with the same id are the same
//     even when their entities differ — this is what deduplication wants.
//   - SortIdedByEntity orders by the entity only; the id plays no part.
//
// For set and map semantics, use the id itself as the key: ID is comparable.
type Ided[T Identifiable, E any] struct {
	id     ID[T]
	entity E
}

// NewIded wraps an entity with its identifier.
func NewIded[T Identifiable, E any](id ID[T], entity E) Ided[T, E] {
	return Ided[T, E]{id: id, entity: entity}
}

// ID returns the identifier.
func (d Ided[T, E]) ID() ID[T] {
	return d.id
}

// Entity returns a copy of the wrapped entity.
func (d Ided[T, E]) Entity() E {
	return d.entity
}

// EntityMut returns a pointer to the wrapped entity for in-place mutation.
func (d *Ided[T, E]) EntityMut() *E {
	return &d.entity
}

// TakeEntity returns the wrapped entity, discarding the id.
func (d Ided[T, E]) TakeEntity() E {
	return d.entity
}

// Dismantle splits the pair into its identifier and entity.
func (d Ided[T, E]) Dismantle() (ID[T], E) {
	return d.id, d.entity
}

// Equal reports whether both values identify the same entity. Only the ids
// are compared; the entities may differ.
func (d Ided[T, E]) Equal(other Ided[T, E]) bool {
	return d.id == other.id
}

// SortIdedByEntity sorts the slice in place by its entities using the given
// ordering. Ids never participate in ordering, mirroring how they never
// participate in Equal's inverse: identity decides sameness, payload decides
// rank.
func SortIdedByEntity[T Identifiable, E any](s []Ided[T, E], less func(a, b E) bool) {
	sort.Slice(s, func(i, j int) bool {
		return less(s[i].entity, s[j].entity)
	})
}

// MarshalJSON flattens the entity's fields into one object and adds an "id"
// field holding the public form:
//
//	{"id":"Cust_371c35ec-34d9-4315-ab31-7ea8889a419a","name":"John"}
//
// The entity must itself marshal to a JSON object, and must not define its
// own "id" field: the identifier wins that key.
func (d Ided[T, E]) MarshalJSON() ([]byte, error) {
	raw, err := json.Marshal(d.entity)
	if err != nil {
		return nil, err
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("kind: Ided entity must marshal to a JSON object: %w", err)
	}
	if fields == nil {
		fields = make(map[string]json.RawMessage, 1)
	}
	idRaw, err := json.Marshal(d.id.PublicID())
	if err != nil {
		return nil, err
	}
	fields["id"] = idRaw
	return json.Marshal(fields)
}

// UnmarshalJSON reads the flattened form produced by MarshalJSON. The "id"
// field is parsed through ParsePublic, so the class is verified; the
// remaining fields are decoded into the entity. A missing "id" field fails
// with ErrInvalidFormat.
func (d *Ided[T, E]) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	idRaw, ok := fields["id"]
	if !ok {
		return ErrInvalidFormat
	}
	var public string
	if err := json.Unmarshal(idRaw, &public); err != nil {
		return ErrInvalidFormat
	}
	id, err := ParsePublic[T](public)
	if err != nil {
		return err
	}
	var entity E
	if err := json.Unmarshal(data, &entity); err != nil {
		return err
	}
	d.id = id
	d.entity = entity
	return nil
}
