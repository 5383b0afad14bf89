package option

type Option[T any] struct {
	value  T
	isSome bool
}

func None[T any]() Option[T] {
	return Option[T]{}
}

func Some[T any](value T) Option[T] {
	return Option[T]{value: value, isSome: true}
}

func (x Option[T]) IsSome() bool {
	return x.isSome
}

func (x Option[T]) IsNone() bool {
	return !x.isSome
}

func (x Option[T]) Get() T {
	if !x.isSome {
		panic("option is none")
	}
	return x.value
}

// Lookup returns the value and whether it is present.
func (x Option[T]) Lookup() (T, bool) {
	return x.value, x.isSome
}

// Or returns the value or fallback when none.
func (x Option[T]) Or(fallback T) T {
	if !x.isSome {
		return fallback
	}
	return x.value
}

func Map[T, U any](x Option[T], fn func(T) U) Option[U] {
	if !x.isSome {
		return None[U]()
	}
	return Some(fn(x.value))
}
