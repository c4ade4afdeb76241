package cache

// ScopedKeyer prefixes every key of an inner Keyer. The API server scopes
// keys per deployment so several servers can share one Redis database.
//
//	keyer := cache.NewScopedKeyer(cache.NewDefaultKeyer(), "isogrid:prod:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer returns a keyer that prepends prefix. A nil inner keyer
// selects [DefaultKeyer].
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// BoundsKey implements [Keyer].
func (k *ScopedKeyer) BoundsKey(tilesHash string, opts ViewKeyOpts) string {
	return k.prefix + k.inner.BoundsKey(tilesHash, opts)
}

// FitKey implements [Keyer].
func (k *ScopedKeyer) FitKey(tilesHash string, opts FitKeyOpts) string {
	return k.prefix + k.inner.FitKey(tilesHash, opts)
}

// SnapshotKey implements [Keyer].
func (k *ScopedKeyer) SnapshotKey(sceneHash string, opts SnapshotKeyOpts) string {
	return k.prefix + k.inner.SnapshotKey(sceneHash, opts)
}
