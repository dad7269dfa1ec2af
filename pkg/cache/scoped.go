package cache

// ScopedKeyer wraps a Keyer with a prefix so several puzzle days or users
// can share one backend without their entries colliding.
//
// Example usage:
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "day16:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// SolveKey generates a prefixed key for solver results.
func (k *ScopedKeyer) SolveKey(mazeHash string, opts SolveKeyOpts) string {
	return k.prefix + k.inner.SolveKey(mazeHash, opts)
}

// ArtifactKey generates a prefixed key for rendered artifacts.
func (k *ScopedKeyer) ArtifactKey(mazeHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(mazeHash, opts)
}
