package cache

// Keyer turns a value into a cache key.
type Keyer[T any] interface {
	Key(T) string
}

// KeyFunc adapts a plain function to [Keyer].
type KeyFunc[T any] func(T) string

// Key calls f.
func (f KeyFunc[T]) Key(v T) string { return f(v) }

// ScopedKeyer wraps a Keyer with a prefix for namespace isolation.
// Engines that share one store but resolve against different themes use the
// theme fingerprint as prefix:
//
//	keyer := NewScopedKeyer(engine.InputKeyer, "theme:"+fingerprint+":")
type ScopedKeyer[T any] struct {
	inner  Keyer[T]
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer[T any](inner Keyer[T], prefix string) *ScopedKeyer[T] {
	return &ScopedKeyer[T]{
		inner:  inner,
		prefix: prefix,
	}
}

// Prefix returns the scope prefix.
func (k *ScopedKeyer[T]) Prefix() string { return k.prefix }

// Key generates a prefixed key.
func (k *ScopedKeyer[T]) Key(v T) string {
	return k.prefix + k.inner.Key(v)
}
