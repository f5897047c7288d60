package schema

import "math"

// Discriminant is implemented by generated enums: a uint32 based type whose
// Valid method accepts exactly the declared values.
type Discriminant interface {
	~uint32
	Valid() bool
}

// Enum returns the codec for an enum type. Values are varints; anything that
// is not a declared value decodes to an UnknownDiscriminant error.
func Enum[E Discriminant]() IndexedField[E] {
	name := typeName[E]()
	return codec[E]{
		add: func(o *Object, id FieldID, v E) { o.AddVarint(id, uint64(v)) },
		index: func(o *Object, id FieldID, i int) (E, error) {
			raw, err := o.Varint(id, i)
			if err != nil {
				return 0, err
			}
			if raw > math.MaxUint32 {
				return 0, NewUnknownDiscriminant(raw, name)
			}
			v := E(raw)
			if !v.Valid() {
				return 0, NewUnknownDiscriminant(raw, name)
			}
			return v, nil
		},
	}
}
