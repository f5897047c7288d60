package schema

// Option holds a value that may be absent. The zero Option is None.
type Option[T any] struct {
	value T
	ok    bool
}

func Some[T any](v T) Option[T] {
	return Option[T]{value: v, ok: true}
}

func None[T any]() Option[T] {
	return Option[T]{}
}

func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

func (o Option[T]) IsSome() bool {
	return o.ok
}

func (o Option[T]) IsNone() bool {
	return !o.ok
}

// OrElse returns the held value, or def when the option is None.
func (o Option[T]) OrElse(def T) T {
	if o.ok {
		return o.value
	}
	return def
}

// MustGet panics when the option is None.
func (o Option[T]) MustGet() T {
	if !o.ok {
		panic("schema: MustGet on None option")
	}
	return o.value
}

// Zero returns the zero value of T. Generated code passes it as the default
// for cleared fields.
func Zero[T any]() T {
	var zero T
	return zero
}
