package updateversion

// Option represents an optional configuration value: either Some(value) or
// None. It makes "explicitly supplied" versus "defaulted" a first-class
// distinction instead of relying on zero-value sentinels.
type Option[T any] struct {
	value T
	ok    bool
}

// Some wraps a present value.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, ok: true}
}

// None returns the absent value. The zero Option is also absent.
func None[T any]() Option[T] {
	return Option[T]{}
}

// Get returns the wrapped value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

// IsSet reports whether a value is present.
func (o Option[T]) IsSet() bool {
	return o.ok
}
