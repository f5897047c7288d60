package schema

import (
	"fmt"
	"slices"
)

type wireKind uint8

const (
	kindVarint wireKind = iota
	kindFixed32
	kindFixed64
	kindBytes
)

func (k wireKind) String() string {
	switch k {
	case kindVarint:
		return "varint"
	case kindFixed32:
		return "fixed32"
	case kindFixed64:
		return "fixed64"
	default:
		return "bytes"
	}
}

// value is one occurrence of a field. Length-delimited values hold either raw
// bytes or a nested object; raw bytes become an object the first time they
// are read as one, and the object is authoritative from then on.
type value struct {
	kind wireKind
	num  uint64
	raw  []byte
	obj  *Object
}

func (v value) clone() value {
	out := value{kind: v.kind, num: v.num}
	if v.obj != nil {
		out.obj = v.obj.Clone()
	} else if v.raw != nil {
		out.raw = slices.Clone(v.raw)
	}
	return out
}

// Object is a multimap from field id to an ordered list of wire values. Repeated
// ids encode lists; zero occurrences means absent. An Object is not safe for
// concurrent use, not even for reads, since nested objects are parsed lazily.
type Object struct {
	fields map[FieldID][]value
}

func NewObject() *Object {
	return &Object{fields: make(map[FieldID][]value)}
}

func (o *Object) ensure() {
	if o.fields == nil {
		o.fields = make(map[FieldID][]value)
	}
}

func (o *Object) add(id FieldID, v value) {
	mustValidField(id)
	o.ensure()
	o.fields[id] = append(o.fields[id], v)
}

// Count returns the number of occurrences of id.
func (o *Object) Count(id FieldID) int {
	return len(o.fields[id])
}

func (o *Object) Has(id FieldID) bool {
	return len(o.fields[id]) > 0
}

// FieldIDs returns the ids present in the object in ascending order.
func (o *Object) FieldIDs() []FieldID {
	ids := make([]FieldID, 0, len(o.fields))
	for id, values := range o.fields {
		if len(values) > 0 {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)
	return ids
}

func (o *Object) IsEmpty() bool {
	for _, values := range o.fields {
		if len(values) > 0 {
			return false
		}
	}
	return true
}

// Remove drops every occurrence of id.
func (o *Object) Remove(id FieldID) {
	delete(o.fields, id)
}

// Clear drops every field.
func (o *Object) Clear() {
	clear(o.fields)
}

func (o *Object) Clone() *Object {
	out := &Object{fields: make(map[FieldID][]value, len(o.fields))}
	for id, values := range o.fields {
		cloned := make([]value, len(values))
		for i, v := range values {
			cloned[i] = v.clone()
		}
		out.fields[id] = cloned
	}
	return out
}

// Replace overwrites the occurrences of id with copies of the occurrences in
// src. When src has none, id is removed.
func (o *Object) Replace(id FieldID, src *Object) {
	values := src.fields[id]
	if len(values) == 0 {
		o.Remove(id)
		return
	}
	o.ensure()
	cloned := make([]value, len(values))
	for i, v := range values {
		cloned[i] = v.clone()
	}
	o.fields[id] = cloned
}

// Append copies the occurrences of id in src after the existing ones.
func (o *Object) Append(id FieldID, src *Object) {
	for _, v := range src.fields[id] {
		o.add(id, v.clone())
	}
}

func (o *Object) AddVarint(id FieldID, v uint64) {
	o.add(id, value{kind: kindVarint, num: v})
}

func (o *Object) AddFixed32(id FieldID, v uint32) {
	o.add(id, value{kind: kindFixed32, num: uint64(v)})
}

func (o *Object) AddFixed64(id FieldID, v uint64) {
	o.add(id, value{kind: kindFixed64, num: v})
}

// AddBytes appends a copy of b.
func (o *Object) AddBytes(id FieldID, b []byte) {
	raw := make([]byte, len(b))
	copy(raw, b)
	o.add(id, value{kind: kindBytes, raw: raw})
}

// AppendObject appends child as a nested object. child is stored as is, not copied.
func (o *Object) AppendObject(id FieldID, child *Object) {
	o.add(id, value{kind: kindBytes, obj: child})
}

// AddObject appends an empty nested object and returns it for filling in.
func (o *Object) AddObject(id FieldID) *Object {
	child := NewObject()
	o.add(id, value{kind: kindBytes, obj: child})
	return child
}

func (o *Object) at(id FieldID, i int, kind wireKind) (*value, error) {
	values := o.fields[id]
	if i < 0 || i >= len(values) {
		return nil, NewIndexOutOfBounds(i, len(values))
	}
	v := &values[i]
	if v.kind != kind {
		return nil, NewSchemaError(fmt.Sprintf("field %d: expected %s, found %s", id, kind, v.kind), nil)
	}
	return v, nil
}

func (o *Object) Varint(id FieldID, i int) (uint64, error) {
	v, err := o.at(id, i, kindVarint)
	if err != nil {
		return 0, err
	}
	return v.num, nil
}

func (o *Object) Fixed32(id FieldID, i int) (uint32, error) {
	v, err := o.at(id, i, kindFixed32)
	if err != nil {
		return 0, err
	}
	return uint32(v.num), nil
}

func (o *Object) Fixed64(id FieldID, i int) (uint64, error) {
	v, err := o.at(id, i, kindFixed64)
	if err != nil {
		return 0, err
	}
	return v.num, nil
}

// Bytes returns occurrence i of a length-delimited field. The slice aliases the
// object's storage; nested objects are returned in their encoded form.
func (o *Object) Bytes(id FieldID, i int) ([]byte, error) {
	v, err := o.at(id, i, kindBytes)
	if err != nil {
		return nil, err
	}
	if v.obj != nil {
		return v.obj.Marshal(), nil
	}
	if v.raw == nil {
		return []byte{}, nil
	}
	return v.raw, nil
}

func (o *Object) ObjectCount(id FieldID) int {
	return o.Count(id)
}

// IndexObject returns occurrence i of id as a nested object, parsing it on
// first access.
func (o *Object) IndexObject(id FieldID, i int) (*Object, error) {
	v, err := o.at(id, i, kindBytes)
	if err != nil {
		return nil, err
	}
	if v.obj == nil {
		child := NewObject()
		if err := child.Unmarshal(v.raw); err != nil {
			return nil, err
		}
		v.obj = child
		v.raw = nil
	}
	return v.obj, nil
}

// GetObject returns the last occurrence of id as a nested object. When id is
// absent an empty object is added and returned.
func (o *Object) GetObject(id FieldID) (*Object, error) {
	n := o.Count(id)
	if n == 0 {
		return o.AddObject(id), nil
	}
	return o.IndexObject(id, n-1)
}
