package schema

// ObjectField is implemented by generated records: they know how to write
// their fields into an Object and read them back.
type ObjectField interface {
	IntoObject(o *Object)
	FromObject(o *Object) error
}

// Nested returns the codec for a record type. Each occurrence is one nested
// object; PT is inferred, so callers write Nested[Coordinates]().
func Nested[T any, PT interface {
	*T
	ObjectField
}]() IndexedField[T] {
	return codec[T]{
		add: func(o *Object, id FieldID, v T) {
			PT(&v).IntoObject(o.AddObject(id))
		},
		index: func(o *Object, id FieldID, i int) (T, error) {
			var v T
			inner, err := o.IndexObject(id, i)
			if err != nil {
				return v, err
			}
			if err := PT(&v).FromObject(inner); err != nil {
				return v, err
			}
			return v, nil
		},
	}
}
