package users

// Optional distinguishes an absent value from a present zero value.
type Optional[T any] struct {
	value   T
	present bool
}

// Some wraps a present value.
func Some[T any](value T) Optional[T] {
	return Optional[T]{value: value, present: true}
}

// None returns an absent value.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// Get returns the wrapped value and whether it is present.
func (optional Optional[T]) Get() (T, bool) {
	return optional.value, optional.present
}

// OrElse returns the wrapped value or fallback when absent.
func (optional Optional[T]) OrElse(fallback T) T {
	if optional.present {
		return optional.value
	}
	return fallback
}
