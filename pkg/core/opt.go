package core

// Opt is an optional property value: either present with a value or absent.
// The zero Opt is absent. Opt values of comparable types compare with ==.
type Opt[T comparable] struct {
	value T
	ok    bool
}

// Some returns a present Opt holding v.
func Some[T comparable](v T) Opt[T] {
	return Opt[T]{value: v, ok: true}
}

// None returns an absent Opt.
func None[T comparable]() Opt[T] {
	return Opt[T]{}
}

// Get returns the value and whether it is present.
func (o Opt[T]) Get() (T, bool) {
	return o.value, o.ok
}

// IsSet reports whether the value is present.
func (o Opt[T]) IsSet() bool {
	return o.ok
}

// Or returns the value if present, def otherwise.
func (o Opt[T]) Or(def T) T {
	if o.ok {
		return o.value
	}
	return def
}

// Any returns the value boxed, or nil when absent. A nil attribute value
// asks the toolkit to restore the class default.
func (o Opt[T]) Any() any {
	if !o.ok {
		return nil
	}
	return o.value
}
