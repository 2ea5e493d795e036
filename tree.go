package hamt

// Tree is the outward-facing handle onto a persistent hash array mapped
// trie. Its zero value is not usable; construct one with Empty or
// FromSeq. Every Tree is immutable: Set and Delete return a new Tree,
// leaving the receiver and everyone else still holding it untouched.
type Tree[K comparable, V any] struct {
	root *node[K, V]
	size int
	cfg  config[K]
}

// Empty returns a new, empty Tree configured by opts. Passing the zero
// Options works for string and fixed-width integer keys; any other key
// type must set Options.Hash.
func Empty[K comparable, V any](opts Options[K]) *Tree[K, V] {
	return &Tree[K, V]{root: nil, size: 0, cfg: resolveOptions(opts)}
}

// Pair is one element of the finite sequence FromSeq builds a Tree from.
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

// FromSeq builds a Tree from a finite sequence of pairs. A duplicate key
// in pairs produces a single entry holding the last value for that key,
// the same rule Set already applies.
func FromSeq[K comparable, V any](pairs []Pair[K, V], opts Options[K]) *Tree[K, V] {
	t := Empty[K, V](opts)
	for _, p := range pairs {
		t = t.Set(p.Key, p.Value)
	}
	return t
}

// Get looks up key, returning its value and true, or the zero value and
// false if key is absent.
func (t *Tree[K, V]) Get(key K) (V, bool) {
	if t.root == nil {
		return zeroed[V](), false
	}
	hash := t.cfg.hash(key)
	return get(t.root, key, hash, 0, t.cfg)
}

// Contains reports whether key is present.
func (t *Tree[K, V]) Contains(key K) bool {
	_, ok := t.Get(key)
	return ok
}

// Set returns a new Tree with key mapped to value, replacing any prior
// value for key. The receiver is left unchanged.
func (t *Tree[K, V]) Set(key K, value V) *Tree[K, V] {
	e := entry[K, V]{key: key, value: value}
	hash := t.cfg.hash(key)

	if t.root == nil {
		return &Tree[K, V]{root: newLeaf(e), size: 1, cfg: t.cfg}
	}

	newRoot, delta := insert(t.root, e, hash, 0, t.cfg)
	return &Tree[K, V]{root: newRoot, size: t.size + delta, cfg: t.cfg}
}

// Delete returns a new Tree with key absent. If key was already absent,
// Delete returns the receiver itself, unchanged and identical.
func (t *Tree[K, V]) Delete(key K) *Tree[K, V] {
	if t.root == nil {
		return t
	}

	hash := t.cfg.hash(key)
	newRoot, removed := delete_(t.root, key, hash, 0, t.cfg)
	if !removed {
		return t
	}

	return &Tree[K, V]{root: newRoot, size: t.size - 1, cfg: t.cfg}
}

// Size returns the number of entries in the tree, in O(1).
func (t *Tree[K, V]) Size() int {
	return t.size
}

// IsEmpty reports whether the tree has no entries.
func (t *Tree[K, V]) IsEmpty() bool {
	return t.size == 0
}

// Iterate returns a fresh, finite, non-restartable walk over every
// (key, value) pair in the tree. Order is stable for this Tree value but
// is otherwise implementation-defined: it follows slot order within each
// node, not key order.
func (t *Tree[K, V]) Iterate() *Iterator[K, V] {
	it := &Iterator[K, V]{}
	if t.root != nil {
		it.stack = append(it.stack, frame[K, V]{n: t.root})
	}
	return it
}

// ForEach calls fn once per (key, value) pair, stopping early if fn
// returns false.
func (t *Tree[K, V]) ForEach(fn func(K, V) bool) {
	it := t.Iterate()
	for it.Next() {
		if !fn(it.Key(), it.Value()) {
			return
		}
	}
}

// Equals reports whether t and other hold the same set of (key, value)
// pairs, comparing values with valueEqual. It checks size first, then
// takes a fast path when the two trees share a root pointer (true for a
// tree compared with itself, or with the tree Delete returns for an
// absent key; Set and a successful Delete always allocate a new root),
// falling back to iteration plus lookup otherwise.
func (t *Tree[K, V]) Equals(other *Tree[K, V], valueEqual func(V, V) bool) bool {
	if t.size != other.size {
		return false
	}
	if t.root == other.root {
		return true
	}

	equal := true
	t.ForEach(func(k K, v V) bool {
		ov, found := other.Get(k)
		if !found || !valueEqual(v, ov) {
			equal = false
			return false
		}
		return true
	})
	return equal
}
