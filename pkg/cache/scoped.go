package cache

// ScopedKeyer wraps a Keyer with a prefix so several tenants can share one
// backend. The HTTP server scopes its keys this way, which keeps them apart
// from the keys of CLI runs against the same Redis instance.
//
//	k := NewScopedKeyer(NewDefaultKeyer(), "serve:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// A nil inner keyer means the DefaultKeyer.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// TypingsKey generates a prefixed declarations key.
func (k *ScopedKeyer) TypingsKey(inputHash string, opts TypingsKeyOpts) string {
	return k.prefix + k.inner.TypingsKey(inputHash, opts)
}

// GraphKey generates a prefixed graph-dump key.
func (k *ScopedKeyer) GraphKey(inputHash string, opts GraphKeyOpts) string {
	return k.prefix + k.inner.GraphKey(inputHash, opts)
}
