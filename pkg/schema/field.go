package schema

// Field reads and writes one logical value of type T under a field id.
type Field[T any] interface {
	// Get decodes the value stored under id. For singular fields the last
	// occurrence wins; an absent field is a MissingField error.
	Get(o *Object, id FieldID) (T, error)
	// Add appends v under id. Adding never fails.
	Add(o *Object, id FieldID, v T)
}

// IndexedField is a Field whose values can repeat, which makes it usable as
// the element of a List, Optional or Map.
type IndexedField[T any] interface {
	Field[T]
	Count(o *Object, id FieldID) int
	Index(o *Object, id FieldID, i int) (T, error)
}

// Emptier is implemented by fields whose "empty" value is encoded as the
// absence of the field (options, lists, maps).
type Emptier[T any] interface {
	IsEmpty(v T) bool
}

// codec is the IndexedField used by every scalar, enum and nested adapter.
type codec[T any] struct {
	add   func(o *Object, id FieldID, v T)
	index func(o *Object, id FieldID, i int) (T, error)
}

func (c codec[T]) Add(o *Object, id FieldID, v T) {
	c.add(o, id, v)
}

func (c codec[T]) Count(o *Object, id FieldID) int {
	return o.Count(id)
}

func (c codec[T]) Index(o *Object, id FieldID, i int) (T, error) {
	return c.index(o, id, i)
}

func (c codec[T]) Get(o *Object, id FieldID) (T, error) {
	n := o.Count(id)
	if n == 0 {
		var zero T
		return zero, NewMissingField(id)
	}
	return c.index(o, id, n-1)
}

// GetOrDefault decodes id with f, or returns def() when id has no
// occurrences. Generated records read singular fields through it, so data
// with a cleared field decodes to that field's default.
func GetOrDefault[T any](o *Object, id FieldID, f Field[T], def func() T) (T, error) {
	if o.Count(id) == 0 {
		return def(), nil
	}
	return f.Get(o, id)
}
