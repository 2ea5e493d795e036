package hamt

import "github.com/sirgallo/hamt/internal/bitops"

// get descends the trie rooted at n looking for key, consuming hash one
// branch-index at a time starting at level. It never allocates.
func get[K comparable, V any](n *node[K, V], key K, hash uint64, level int, cfg config[K]) (V, bool) {
	for {
		switch n.kind {
		case kindLeaf:
			if cfg.equal(n.leaf.key, key) {
				return n.leaf.value, true
			}
			return zeroed[V](), false

		case kindCollision:
			if hash != n.hash {
				return zeroed[V](), false
			}
			for _, e := range n.entries {
				if cfg.equal(e.key, key) {
					return e.value, true
				}
			}
			return zeroed[V](), false

		case kindBitmap:
			idx := cfg.sliceIndex(hash, level)
			if !bitops.IsSet(n.bitmap, idx) {
				return zeroed[V](), false
			}

			pos := bitops.Position(n.bitmap, idx)
			if pos < 0 || pos >= len(n.slots) {
				corrupted("hamt: bitmap node slot %d out of range (len %d) — empty or malformed bitmap node", pos, len(n.slots))
			}

			n = n.slots[pos]
			level++

		default:
			corrupted("hamt: unrecognized node kind %d encountered during lookup", n.kind)
		}
	}
}
