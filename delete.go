package hamt

import "github.com/sirgallo/hamt/internal/bitops"

// delete returns (nil, true) when n itself disappears entirely, (x, true)
// when n is replaced by x (a leaf, bitmap, or collision node — whichever
// the collapse rules produce), or (n, false) when key was never present,
// in which case the caller must keep n unchanged and identical.
func delete_[K comparable, V any](n *node[K, V], key K, hash uint64, level int, cfg config[K]) (*node[K, V], bool) {
	switch n.kind {
	case kindLeaf:
		if cfg.equal(n.leaf.key, key) {
			return nil, true
		}
		return n, false

	case kindCollision:
		if hash != n.hash {
			return n, false
		}

		idx := -1
		for i, e := range n.entries {
			if cfg.equal(e.key, key) {
				idx = i
				break
			}
		}
		if idx == -1 {
			return n, false
		}

		if len(n.entries) == 2 {
			survivor := n.entries[1-idx]
			return newLeaf(survivor), true
		}

		entries := bitops.ShrinkTable(n.entries, idx)
		return newCollision(n.hash, entries), true

	case kindBitmap:
		idx := cfg.sliceIndex(hash, level)
		if !bitops.IsSet(n.bitmap, idx) {
			return n, false
		}

		pos := bitops.Position(n.bitmap, idx)
		child := n.slots[pos]

		if child.kind == kindLeaf {
			if !cfg.equal(child.leaf.key, key) {
				return n, false
			}
			return dropSlot(n, idx, pos)
		}

		newChild, removed := delete_(child, key, hash, level+1, cfg)
		if !removed {
			return n, false
		}

		if newChild == nil {
			return dropSlot(n, idx, pos)
		}

		// Hoisting is only sound for a leaf: a bitmap or collision
		// sub-node's slots are indexed against level+1, so hoisting it
		// up to replace n (indexed against level) would leave it
		// answering to the wrong hash slice. Only a single remaining
		// leaf can take n's place directly; anything else stays behind
		// its single-slot wrapper.
		if len(n.slots) == 1 && newChild.kind == kindLeaf {
			return newChild, true
		}

		slots := bitops.ReplaceAt(n.slots, pos, newChild)
		return &node[K, V]{kind: kindBitmap, bitmap: n.bitmap, slots: slots}, true

	default:
		corrupted("hamt: unrecognized node kind %d encountered during delete", n.kind)
		return nil, false
	}
}

// dropSlot removes the slot at pos from a bitmap node, applying the
// canonical collapse rule: three or more slots just shrinks the table,
// exactly one empties the node entirely (the caller — the parent bitmap
// node, or Tree.Delete at the root — decides what an empty result means
// for it), and exactly two collapses into whichever slot remains — but
// only by hoisting it bare when that survivor is a leaf. A surviving
// bitmap or collision sub-node keeps its own branch bit behind a
// single-slot wrapper, since its slots are indexed one level deeper than
// n is.
func dropSlot[K comparable, V any](n *node[K, V], idx int, pos int) (*node[K, V], bool) {
	switch len(n.slots) {
	case 1:
		return nil, true
	case 2:
		survivor := n.slots[1-pos]
		if survivor.kind == kindLeaf {
			return survivor, true
		}
		return &node[K, V]{kind: kindBitmap, bitmap: bitops.ClearBit(n.bitmap, idx), slots: []*node[K, V]{survivor}}, true
	default:
		slots := bitops.ShrinkTable(n.slots, pos)
		return &node[K, V]{kind: kindBitmap, bitmap: bitops.ClearBit(n.bitmap, idx), slots: slots}, true
	}
}
