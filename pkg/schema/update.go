package schema

import (
	"fmt"
	"slices"
)

// ComponentUpdate is the raw form of a component update: the fields that
// changed, the events that fired and the ids of fields reset to their empty
// value. A field id is never both present in Fields and cleared.
type ComponentUpdate struct {
	fields  *Object
	events  *Object
	cleared map[FieldID]struct{}
}

func NewComponentUpdate() *ComponentUpdate {
	return &ComponentUpdate{
		fields:  NewObject(),
		events:  NewObject(),
		cleared: make(map[FieldID]struct{}),
	}
}

// ensure makes the zero ComponentUpdate usable.
func (u *ComponentUpdate) ensure() {
	if u.fields == nil {
		u.fields = NewObject()
	}
	if u.events == nil {
		u.events = NewObject()
	}
	if u.cleared == nil {
		u.cleared = make(map[FieldID]struct{})
	}
}

func (u *ComponentUpdate) Fields() *Object {
	u.ensure()
	return u.fields
}

// Events holds one occurrence per fired event, keyed by event index.
func (u *ComponentUpdate) Events() *Object {
	u.ensure()
	return u.events
}

// Clear marks id as reset to its empty value and drops any value written for it.
func (u *ComponentUpdate) Clear(id FieldID) {
	u.ensure()
	mustValidField(id)
	u.fields.Remove(id)
	u.cleared[id] = struct{}{}
}

func (u *ComponentUpdate) IsCleared(id FieldID) bool {
	u.ensure()
	_, ok := u.cleared[id]
	return ok && !u.fields.Has(id)
}

func (u *ComponentUpdate) ClearedFields() []FieldID {
	u.ensure()
	ids := make([]FieldID, 0, len(u.cleared))
	for id := range u.cleared {
		if !u.fields.Has(id) {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)
	return ids
}

func (u *ComponentUpdate) IsEmpty() bool {
	u.ensure()
	return u.fields.IsEmpty() && u.events.IsEmpty() && len(u.ClearedFields()) == 0
}

// Merge folds other into u as if other had been applied after u.
func (u *ComponentUpdate) Merge(other *ComponentUpdate) {
	u.ensure()
	other.ensure()
	for _, id := range other.fields.FieldIDs() {
		u.fields.Replace(id, other.fields)
		delete(u.cleared, id)
	}
	for _, id := range other.ClearedFields() {
		u.Clear(id)
	}
	for _, id := range other.events.FieldIDs() {
		u.events.Append(id, other.events)
	}
}

func (u *ComponentUpdate) Clone() *ComponentUpdate {
	u.ensure()
	out := &ComponentUpdate{
		fields:  u.fields.Clone(),
		events:  u.events.Clone(),
		cleared: make(map[FieldID]struct{}, len(u.cleared)),
	}
	for id := range u.cleared {
		out.cleared[id] = struct{}{}
	}
	return out
}

func (u *ComponentUpdate) Marshal() []byte {
	u.ensure()
	envelope := NewObject()
	if !u.fields.IsEmpty() {
		envelope.AppendObject(updateFieldsID, u.fields)
	}
	if !u.events.IsEmpty() {
		envelope.AppendObject(updateEventsID, u.events)
	}
	for _, id := range u.ClearedFields() {
		envelope.AddVarint(updateClearedID, uint64(id))
	}
	return envelope.Marshal()
}

func (u *ComponentUpdate) Unmarshal(b []byte) error {
	envelope, err := Unmarshal(b)
	if err != nil {
		return err
	}

	decoded := NewComponentUpdate()
	if envelope.Has(updateFieldsID) {
		if decoded.fields, err = envelope.GetObject(updateFieldsID); err != nil {
			return AtField(err, updateFieldsID)
		}
	}
	if envelope.Has(updateEventsID) {
		if decoded.events, err = envelope.GetObject(updateEventsID); err != nil {
			return AtField(err, updateEventsID)
		}
	}
	for i := 0; i < envelope.Count(updateClearedID); i++ {
		raw, err := envelope.Varint(updateClearedID, i)
		if err != nil {
			return AtIndex(AtField(err, updateClearedID), i)
		}
		id := FieldID(raw)
		if raw > uint64(MaxFieldID) || !id.Valid() {
			return NewSchemaError(fmt.Sprintf("cleared field id %d out of range", raw), nil)
		}
		if decoded.fields.Has(id) {
			return NewSchemaError(fmt.Sprintf("field %d is both set and cleared", id), nil)
		}
		decoded.cleared[id] = struct{}{}
	}

	*u = *decoded
	return nil
}

// WriteUpdate stores an optional field value in an update. None writes
// nothing; an empty option, list or map marks the field cleared.
func WriteUpdate[T any](cu *ComponentUpdate, id FieldID, f Field[T], v Option[T]) {
	value, ok := v.Get()
	if !ok {
		return
	}
	if e, ok := f.(Emptier[T]); ok && e.IsEmpty(value) {
		cu.Clear(id)
		return
	}
	f.Add(cu.Fields(), id, value)
}

// ReadUpdate is the inverse of WriteUpdate: a present field decodes to
// Some(value), a cleared one to Some(def()) and an absent one to None.
func ReadUpdate[T any](cu *ComponentUpdate, id FieldID, f Field[T], def func() T) (Option[T], error) {
	if cu.Fields().Has(id) {
		v, err := f.Get(cu.Fields(), id)
		if err != nil {
			return None[T](), AtField(err, id)
		}
		return Some(v), nil
	}
	if cu.IsCleared(id) {
		return Some(def()), nil
	}
	return None[T](), nil
}

// SerializeUpdate encodes a typed update.
func SerializeUpdate(v UpdateCodec) []byte {
	cu := NewComponentUpdate()
	v.IntoUpdate(cu)
	return cu.Marshal()
}

// DeserializeUpdate decodes bytes produced by SerializeUpdate.
func DeserializeUpdate[U any, PU interface {
	*U
	UpdateCodec
}](b []byte) (U, error) {
	var v U
	cu := NewComponentUpdate()
	if err := cu.Unmarshal(b); err != nil {
		return v, err
	}
	if err := PU(&v).FromUpdate(cu); err != nil {
		return v, err
	}
	return v, nil
}
