package schema

import (
	"cmp"
	"slices"
)

var (
	_ Field[Option[int32]]      = OptionalField[int32]{}
	_ Emptier[[]int32]          = ListField[int32]{}
	_ Field[map[string]float32] = MapField[string, float32]{}
)

// OptionalField stores Some(v) as one occurrence of v and None as no occurrence.
type OptionalField[T any] struct {
	inner IndexedField[T]
}

func Optional[T any](inner IndexedField[T]) OptionalField[T] {
	return OptionalField[T]{inner: inner}
}

func (f OptionalField[T]) Get(o *Object, id FieldID) (Option[T], error) {
	n := f.inner.Count(o, id)
	if n == 0 {
		return None[T](), nil
	}
	v, err := f.inner.Index(o, id, n-1)
	if err != nil {
		return None[T](), err
	}
	return Some(v), nil
}

func (f OptionalField[T]) Add(o *Object, id FieldID, v Option[T]) {
	if inner, ok := v.Get(); ok {
		f.inner.Add(o, id, inner)
	}
}

func (f OptionalField[T]) IsEmpty(v Option[T]) bool {
	return v.IsNone()
}

// Count panics: an optional value cannot be an element of another collection.
func (f OptionalField[T]) Count(*Object, FieldID) int {
	panic("schema: optional fields cannot be indexed")
}

// Index panics for the same reason as Count.
func (f OptionalField[T]) Index(*Object, FieldID, int) (Option[T], error) {
	panic("schema: optional fields cannot be indexed")
}

// ListField stores each element as its own occurrence, in order. An empty
// list is indistinguishable from an absent one and decodes as nil.
type ListField[T any] struct {
	inner IndexedField[T]
}

func List[T any](inner IndexedField[T]) ListField[T] {
	return ListField[T]{inner: inner}
}

func (f ListField[T]) Get(o *Object, id FieldID) ([]T, error) {
	n := f.inner.Count(o, id)
	if n == 0 {
		return nil, nil
	}
	out := make([]T, 0, n)
	for i := 0; i < n; i++ {
		v, err := f.inner.Index(o, id, i)
		if err != nil {
			return nil, AtIndex(err, i)
		}
		out = append(out, v)
	}
	return out, nil
}

func (f ListField[T]) Add(o *Object, id FieldID, v []T) {
	for _, elem := range v {
		f.inner.Add(o, id, elem)
	}
}

func (f ListField[T]) IsEmpty(v []T) bool {
	return len(v) == 0
}

// MapField stores each entry as a nested object with the key under
// MapKeyFieldID and the value under MapValueFieldID. Entries are written in
// ascending key order; on decode a repeated key keeps its last value.
type MapField[K comparable, V any] struct {
	key     IndexedField[K]
	value   IndexedField[V]
	compare func(a, b K) int
}

func Map[K cmp.Ordered, V any](key IndexedField[K], value IndexedField[V]) MapField[K, V] {
	return MapFunc(key, value, cmp.Compare[K])
}

// MapFunc is Map for key types that are not cmp.Ordered, such as bool.
func MapFunc[K comparable, V any](key IndexedField[K], value IndexedField[V], compare func(a, b K) int) MapField[K, V] {
	return MapField[K, V]{key: key, value: value, compare: compare}
}

func (f MapField[K, V]) Get(o *Object, id FieldID) (map[K]V, error) {
	n := o.Count(id)
	if n == 0 {
		return nil, nil
	}
	out := make(map[K]V, n)
	for i := 0; i < n; i++ {
		entry, err := o.IndexObject(id, i)
		if err != nil {
			return nil, AtIndex(err, i)
		}
		k, err := f.key.Get(entry, MapKeyFieldID)
		if err != nil {
			return nil, AtIndex(AtField(err, MapKeyFieldID), i)
		}
		v, err := f.value.Get(entry, MapValueFieldID)
		if err != nil {
			return nil, AtIndex(AtField(err, MapValueFieldID), i)
		}
		out[k] = v
	}
	return out, nil
}

func (f MapField[K, V]) Add(o *Object, id FieldID, m map[K]V) {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, f.compare)
	for _, k := range keys {
		entry := o.AddObject(id)
		f.key.Add(entry, MapKeyFieldID, k)
		f.value.Add(entry, MapValueFieldID, m[k])
	}
}

func (f MapField[K, V]) IsEmpty(m map[K]V) bool {
	return len(m) == 0
}

// CompareBool orders false before true.
func CompareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	default:
		return 1
	}
}
