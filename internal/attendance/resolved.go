package attendance

// Source labels which link in a resolution chain produced a value, so callers
// and tests can assert whether the primary key, the fallback key, or a default
// won a join.
type Source string

// Resolution sources.
const (
	SourcePrimary  Source = "primary"
	SourceFallback Source = "fallback"
	SourceDefault  Source = "default"
)

// Resolved wraps a resolved value together with the source that produced it.
type Resolved[T any] struct {
	Value  T
	Source Source
}

// ResolvePrimary marks v as resolved through the authoritative key.
func ResolvePrimary[T any](v T) Resolved[T] {
	return Resolved[T]{Value: v, Source: SourcePrimary}
}

// ResolveFallback marks v as resolved through the fallback key.
func ResolveFallback[T any](v T) Resolved[T] {
	return Resolved[T]{Value: v, Source: SourceFallback}
}

// ResolveDefault marks v as a default used when no key matched.
func ResolveDefault[T any](v T) Resolved[T] {
	return Resolved[T]{Value: v, Source: SourceDefault}
}
